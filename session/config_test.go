package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/shanakama/smart-auto-scaler/session"
)

var _ = Describe("AuthConfig", func() {
	var (
		conf *AuthConfig
		err  error
	)

	BeforeEach(func() {
		conf = &AuthConfig{}
	})

	JustBeforeEach(func() {
		err = conf.Validate()
	})

	Context("when nothing is configured", func() {
		It("should not error", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("when both username and username_hash are set", func() {
		BeforeEach(func() {
			conf.Username = "admin"
			conf.UsernameHash = "$2a$04$Pv3rrGhGRTXcfbQbEModveEPbtnBQcIWTHUdVGLKWIWQNqvyXhuwe"
		})

		It("should error", func() {
			Expect(err).To(MatchError("Configuration error: both auth username and username_hash are set, please provide only one of them"))
		})
	})

	Context("when both password and password_hash are set", func() {
		BeforeEach(func() {
			conf.Password = "admin"
			conf.PasswordHash = "$2a$04$Pv3rrGhGRTXcfbQbEModveEPbtnBQcIWTHUdVGLKWIWQNqvyXhuwe"
		})

		It("should error", func() {
			Expect(err).To(MatchError("Configuration error: both auth password and password_hash are set, please provide only one of them"))
		})
	})

	Context("when username_hash is not a bcrypt hash", func() {
		BeforeEach(func() {
			conf.UsernameHash = "not-a-hash"
		})

		It("should error", func() {
			Expect(err).To(MatchError("Configuration error: auth username_hash is not a valid bcrypt hash"))
		})
	})

	Context("when password_hash is not a bcrypt hash", func() {
		BeforeEach(func() {
			conf.PasswordHash = "not-a-hash"
		})

		It("should error", func() {
			Expect(err).To(MatchError("Configuration error: auth password_hash is not a valid bcrypt hash"))
		})
	})
})
