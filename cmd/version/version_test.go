package versioncmder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	versioncmder "github.com/papercomputeco/mem/cmd/version"
)

var _ = Describe("Version Command", func() {
	It("creates a command with expected properties", func() {
		cmd := versioncmder.NewVersionCmd()
		Expect(cmd.Use).To(Equal("version"))
		Expect(cmd.Short).NotTo(BeEmpty())
	})

	It("runs without error", func() {
		cmd := versioncmder.NewVersionCmd()
		cmd.SetArgs([]string{})
		Expect(cmd.Execute()).To(Succeed())
	})
})
