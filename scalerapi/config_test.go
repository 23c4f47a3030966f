package scalerapi_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/shanakama/smart-auto-scaler/scalerapi"
)

var _ = Describe("Config", func() {
	var (
		conf *Config
		err  error
	)

	BeforeEach(func() {
		conf = &Config{URL: DefaultURL}
	})

	JustBeforeEach(func() {
		err = conf.Validate()
	})

	Context("when the config is valid", func() {
		It("should not error", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("when api url is empty", func() {
		BeforeEach(func() {
			conf.URL = ""
		})

		It("should error", func() {
			Expect(err).To(MatchError("Configuration error: api url is empty"))
		})
	})

	Context("when api url is not a valid url", func() {
		BeforeEach(func() {
			conf.URL = "%zzzzz"
		})

		It("should error", func() {
			Expect(err).To(MatchError(MatchRegexp("Configuration error: api url is not a valid url: .*")))
		})
	})

	Context("when api url scheme is not http or https", func() {
		BeforeEach(func() {
			conf.URL = "ftp://localhost:5404"
		})

		It("should error", func() {
			Expect(err).To(MatchError("Configuration error: api url scheme must be http or https"))
		})
	})

	Context("when api url has a trailing slash", func() {
		BeforeEach(func() {
			conf.URL = "https://localhost:5404/"
		})

		It("should trim it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(conf.URL).To(Equal("https://localhost:5404"))
		})
	})
})
