package datadir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/mem/pkg/datadir"
)

var _ = Describe("Manager", func() {
	var (
		tmpDir  string
		manager *datadir.Manager
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "datadir-test-*")
		Expect(err).NotTo(HaveOccurred())

		manager = datadir.NewManager()
	})

	AfterEach(func() {
		os.Unsetenv(datadir.EnvVar)
		os.RemoveAll(tmpDir)
	})

	Describe("Target", func() {
		It("uses the override when provided", func() {
			want := filepath.Join(tmpDir, "override")

			got, err := manager.Target(want)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		})

		It("falls back to the environment variable", func() {
			want := filepath.Join(tmpDir, "from-env")
			Expect(os.Setenv(datadir.EnvVar, want)).To(Succeed())

			got, err := manager.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		})

		It("prefers the override over the environment variable", func() {
			Expect(os.Setenv(datadir.EnvVar, filepath.Join(tmpDir, "from-env"))).To(Succeed())
			want := filepath.Join(tmpDir, "override")

			got, err := manager.Target(want)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		})

		It("defaults to .mem under the home directory", func() {
			GinkgoT().Setenv("HOME", tmpDir)

			got, err := manager.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(filepath.Join(tmpDir, ".mem")))
		})

		It("creates the directory when it does not exist", func() {
			target := filepath.Join(tmpDir, "nested", "data")

			got, err := manager.Target(target)
			Expect(err).NotTo(HaveOccurred())

			info, err := os.Stat(got)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})

		It("returns an absolute path", func() {
			got, err := manager.Target(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.IsAbs(got)).To(BeTrue())
		})
	})
})
