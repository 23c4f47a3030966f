package helpers

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"regexp"
	"time"

	"code.cloudfoundry.org/lager"
)

const privateDataPlaceholder = "[PRIVATE DATA HIDDEN]"

// DebugLoggingTransport wraps a RoundTripper and dumps every request and
// response pair at debug level, with credentials scrubbed.
type DebugLoggingTransport struct {
	rt     http.RoundTripper
	logger lager.Logger
}

func NewDebugLoggingTransport(rt http.RoundTripper, logger lager.Logger) *DebugLoggingTransport {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &DebugLoggingTransport{
		rt:     rt,
		logger: logger,
	}
}

func (t *DebugLoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	t.dumpRequest(req)
	resp, err := t.rt.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	t.dumpResponse(resp, start)
	return resp, nil
}

func (t *DebugLoggingTransport) dumpRequest(req *http.Request) {
	dumpedRequest, err := httputil.DumpRequest(req, true)
	if err != nil {
		t.logger.Error("failed-to-dump-request", err)
		return
	}
	t.logger.Debug("request", lager.Data{"dump": Sanitize(string(dumpedRequest))})
}

func (t *DebugLoggingTransport) dumpResponse(resp *http.Response, start time.Time) {
	dumpedResponse, err := httputil.DumpResponse(resp, true)
	if err != nil {
		t.logger.Error("failed-to-dump-response", err)
		return
	}
	t.logger.Debug("response", lager.Data{
		"elapsed_ms": time.Since(start).Seconds() * 1000,
		"dump":       Sanitize(string(dumpedResponse)),
	})
}

func Sanitize(input string) string {
	re := regexp.MustCompile(`(?m)^Authorization: .*`)
	sanitized := re.ReplaceAllString(input, "Authorization: "+privateDataPlaceholder)

	re = regexp.MustCompile(`password=[^&]*&`)
	sanitized = re.ReplaceAllString(sanitized, "password="+privateDataPlaceholder+"&")

	sanitized = sanitizeJSON("token", sanitized)
	sanitized = sanitizeJSON("password", sanitized)

	return sanitized
}

func sanitizeJSON(propertySubstring string, json string) string {
	regex := regexp.MustCompile(fmt.Sprintf(`(?i)"([^"]*%s[^"]*)":\s*"[^\,]*"`, propertySubstring))
	return regex.ReplaceAllString(json, fmt.Sprintf(`"$1":"%s"`, privateDataPlaceholder))
}
