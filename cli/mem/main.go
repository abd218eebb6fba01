package main

import (
	"os"

	memcmder "github.com/papercomputeco/mem/cmd/mem"
)

func main() {
	cmd := memcmder.NewMemCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
