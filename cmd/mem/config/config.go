// Package configcmder provides the config command group for reading and
// writing config.toml in the data directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage mem configuration.

Configuration lives in config.toml in the data directory. Values can also
be overridden per invocation with MEM_ environment variables
(e.g. MEM_EMBEDDING_MODEL).

Note: embedding.model and embedding.dimensions are fixed for the lifetime
of a data file. Changing them against an existing store makes every
operation fail the shape check; stored embeddings are never recomputed.`

const configShortDesc string = "Manage mem configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
