package authcmder_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	authcmder "github.com/papercomputeco/mem/cmd/mem/auth"
	"github.com/papercomputeco/mem/pkg/credentials"
)

var _ = Describe("Auth Command", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "auth-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	// The data-dir flag normally comes from the root command; standalone
	// tests register it themselves.
	newCmd := func() *cobra.Command {
		cmd := authcmder.NewAuthCmd()
		cmd.PersistentFlags().String("data-dir", "", "Override the data directory")
		return cmd
	}

	Describe("NewAuthCmd", func() {
		It("creates a command with expected properties", func() {
			cmd := authcmder.NewAuthCmd()
			Expect(cmd.Use).To(Equal("auth"))
			Expect(cmd.Short).NotTo(BeEmpty())
		})

		It("has --remove flag", func() {
			Expect(authcmder.NewAuthCmd().Flags().Lookup("remove")).NotTo(BeNil())
		})

		It("has --show-path flag", func() {
			Expect(authcmder.NewAuthCmd().Flags().Lookup("show-path")).NotTo(BeNil())
		})

		It("rejects positional arguments", func() {
			cmd := newCmd()
			cmd.SetArgs([]string{"extra"})
			Expect(cmd.Execute()).To(HaveOccurred())
		})
	})

	Describe("--show-path flag", func() {
		It("succeeds without a stored key", func() {
			cmd := newCmd()
			cmd.SetArgs([]string{"--show-path", "--data-dir", tmpDir})
			Expect(cmd.Execute()).To(Succeed())
		})
	})

	Describe("--remove flag", func() {
		It("removes a stored key", func() {
			mgr := credentials.NewManager(tmpDir)
			Expect(mgr.Set("sk-test")).To(Succeed())

			cmd := newCmd()
			cmd.SetArgs([]string{"--remove", "--data-dir", tmpDir})
			Expect(cmd.Execute()).To(Succeed())

			_, err := mgr.Get()
			Expect(err).To(MatchError(credentials.ErrNotConfigured))
		})

		It("fails when no key is stored", func() {
			cmd := newCmd()
			cmd.SetArgs([]string{"--remove", "--data-dir", tmpDir})
			Expect(cmd.Execute()).To(MatchError(credentials.ErrNotConfigured))
		})
	})
})
