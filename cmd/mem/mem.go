// Package memcmder
package memcmder

import (
	"github.com/spf13/cobra"

	authcmder "github.com/papercomputeco/mem/cmd/mem/auth"
	configcmder "github.com/papercomputeco/mem/cmd/mem/config"
	getcmder "github.com/papercomputeco/mem/cmd/mem/get"
	insertcmder "github.com/papercomputeco/mem/cmd/mem/insert"
	listcmder "github.com/papercomputeco/mem/cmd/mem/list"
	servecmder "github.com/papercomputeco/mem/cmd/mem/serve"
	versioncmder "github.com/papercomputeco/mem/cmd/version"
	"github.com/papercomputeco/mem/pkg/datadir"
)

const memLongDesc string = `Mem is a personal semantic memory store.

Save short snippets together with a natural-language description, then
recall them later by meaning rather than exact keywords:

  mem insert "buy milk" "grocery reminder"
  mem get "grocery reminder"
  mem list "reminders" --count 5

Memories live in a single JSON file under ~/.mem (override with the
` + datadir.EnvVar + ` environment variable or --data-dir). Store an OpenAI
API key first with:

  mem auth`

const memShortDesc string = "Mem - personal semantic memory"

func NewMemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mem",
		Short: memShortDesc,
		Long:  memLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("data-dir", "", "Override the data directory (default $"+datadir.EnvVar+" or ~/.mem)")

	// Add subcommands
	cmd.AddCommand(insertcmder.NewInsertCmd())
	cmd.AddCommand(getcmder.NewGetCmd())
	cmd.AddCommand(listcmder.NewListCmd())
	cmd.AddCommand(authcmder.NewAuthCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
