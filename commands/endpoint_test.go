package commands

import (
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
)

var _ = Describe("Stored endpoint override", func() {
	var (
		tmpHome      string
		previousHome string
		logger       lager.Logger
	)

	BeforeEach(func() {
		var err error
		tmpHome, err = ioutil.TempDir("", "scalerctl-home")
		Expect(err).NotTo(HaveOccurred())
		previousHome = os.Getenv("HOME")
		os.Setenv("HOME", tmpHome)

		logger = lagertest.NewTestLogger("endpoint")
	})

	AfterEach(func() {
		os.Setenv("HOME", previousHome)
		os.RemoveAll(tmpHome)
	})

	Context("when nothing has been stored", func() {
		It("reads as absent", func() {
			override, err := readEndpoint(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(override).To(BeNil())
		})

		It("clears without complaint", func() {
			Expect(clearEndpoint(logger)).To(Succeed())
		})
	})

	Context("after storing an endpoint", func() {
		BeforeEach(func() {
			err := writeEndpoint(endpointOverride{URL: "https://scaler.example.com", SkipSSLValidation: true}, logger)
			Expect(err).NotTo(HaveOccurred())
		})

		It("reads it back", func() {
			override, err := readEndpoint(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(override).To(Equal(&endpointOverride{URL: "https://scaler.example.com", SkipSSLValidation: true}))
		})

		It("keeps the file private", func() {
			info, err := os.Stat(filepath.Join(tmpHome, ".scalerctl", "endpoint.json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0600)))
		})

		It("clears it", func() {
			Expect(clearEndpoint(logger)).To(Succeed())

			override, err := readEndpoint(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(override).To(BeNil())
		})
	})

	Context("when the stored file is corrupted", func() {
		BeforeEach(func() {
			path := filepath.Join(tmpHome, ".scalerctl", "endpoint.json")
			Expect(os.MkdirAll(filepath.Dir(path), 0700)).To(Succeed())
			Expect(ioutil.WriteFile(path, []byte("{{{"), 0600)).To(Succeed())
		})

		It("fails", func() {
			_, err := readEndpoint(logger)
			Expect(err).To(HaveOccurred())
		})
	})
})
