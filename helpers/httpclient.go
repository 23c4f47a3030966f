package helpers

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"code.cloudfoundry.org/cfhttp"

	"github.com/shanakama/smart-auto-scaler/models"
)

// CreateHTTPClient builds the outbound client for the scaler backend. Mutual
// TLS is used when a cert/key pair is configured; skipSSLValidation only
// disables verification, it never disables TLS itself.
func CreateHTTPClient(tlsCerts *models.TLSCerts, skipSSLValidation bool) (*http.Client, error) {
	if tlsCerts != nil && (tlsCerts.CertFile == "" || tlsCerts.KeyFile == "") {
		tlsCerts = nil
	}
	client := cfhttp.NewClient()
	if tlsCerts != nil {
		tlsConfig, err := cfhttp.NewTLSConfig(tlsCerts.CertFile, tlsCerts.KeyFile, tlsCerts.CACertFile)
		if err != nil {
			return nil, err
		}
		tlsConfig.InsecureSkipVerify = skipSSLValidation
		client.Transport.(*http.Transport).TLSClientConfig = tlsConfig
		client.Transport.(*http.Transport).DialContext = (&net.Dialer{
			Timeout: 30 * time.Second,
		}).DialContext
	} else if skipSSLValidation {
		client.Transport.(*http.Transport).TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return client, nil
}
