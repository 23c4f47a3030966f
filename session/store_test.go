package session_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/shanakama/smart-auto-scaler/session"
)

var _ = Describe("FileStore", func() {
	var (
		tmpDir      string
		sessionFile string
		store       Store
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = ioutil.TempDir("", "session")
		Expect(err).NotTo(HaveOccurred())
		sessionFile = filepath.Join(tmpDir, "scalerctl", "session.json")
		store = NewFileStore(sessionFile, lagertest.NewTestLogger("store"))
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("Read", func() {
		Context("when the session file does not exist", func() {
			It("should read as logged out", func() {
				state, err := store.Read()
				Expect(err).NotTo(HaveOccurred())
				Expect(state.IsAuthenticated).To(BeFalse())
				Expect(state.Username).To(BeEmpty())
			})
		})

		Context("when the session file is corrupted", func() {
			BeforeEach(func() {
				Expect(os.MkdirAll(filepath.Dir(sessionFile), 0700)).To(Succeed())
				Expect(ioutil.WriteFile(sessionFile, []byte("{{{"), 0600)).To(Succeed())
			})

			It("should read as logged out", func() {
				state, err := store.Read()
				Expect(err).NotTo(HaveOccurred())
				Expect(state.IsAuthenticated).To(BeFalse())
			})
		})
	})

	Describe("Write", func() {
		It("should persist exactly the two session keys", func() {
			err := store.Write(State{IsAuthenticated: true, Username: "admin"})
			Expect(err).NotTo(HaveOccurred())

			bytes, err := ioutil.ReadFile(sessionFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(bytes)).To(MatchJSON(`{"isAuthenticated": true, "username": "admin"}`))
		})

		It("should restrict the file to the owner", func() {
			Expect(store.Write(State{IsAuthenticated: true, Username: "admin"})).To(Succeed())

			info, err := os.Stat(sessionFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0600)))
		})

		It("should round trip through Read", func() {
			Expect(store.Write(State{IsAuthenticated: true, Username: "operator"})).To(Succeed())

			state, err := store.Read()
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(Equal(State{IsAuthenticated: true, Username: "operator"}))
		})
	})

	Describe("Clear", func() {
		Context("when a session is persisted", func() {
			BeforeEach(func() {
				Expect(store.Write(State{IsAuthenticated: true, Username: "admin"})).To(Succeed())
			})

			It("should remove the session file", func() {
				Expect(store.Clear()).To(Succeed())
				_, err := os.Stat(sessionFile)
				Expect(os.IsNotExist(err)).To(BeTrue())
			})
		})

		Context("when there is nothing to clear", func() {
			It("should not error", func() {
				Expect(store.Clear()).To(Succeed())
			})
		})
	})
})
