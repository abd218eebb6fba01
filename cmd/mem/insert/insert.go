// Package insertcmder provides the insert command for storing a new memory.
package insertcmder

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/mem/pkg/cliui"
	"github.com/papercomputeco/mem/pkg/logger"
	storeutils "github.com/papercomputeco/mem/pkg/store/utils"
)

type insertCommander struct {
	memory      string
	description string

	dataDir string
	debug   bool
	logger  *slog.Logger
}

const insertLongDesc string = `Insert a memory into the store.

The memory text is saved verbatim. The description is embedded and used
for semantic retrieval later, so describe what the memory is about rather
than repeating it.

Examples:
  mem insert "buy milk" "grocery reminder"
  mem insert "the wifi password is hunter2" "home wifi password"`

const insertShortDesc string = "Insert a memory into the store"

func NewInsertCmd() *cobra.Command {
	cmder := &insertCommander{}

	cmd := &cobra.Command{
		Use:   "insert <memory> <description>",
		Short: insertShortDesc,
		Long:  insertLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmder.memory = args[0]
			cmder.description = args[1]

			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			cmder.dataDir, _ = cmd.Flags().GetString("data-dir")

			return cmder.run(cmd.Context())
		},
	}

	return cmd
}

func (c *insertCommander) run(ctx context.Context) error {
	c.logger = logger.New(
		logger.WithPretty(true),
		logger.WithDebug(c.debug),
		logger.WithWriter(os.Stderr),
	)

	st, err := storeutils.NewStore(&storeutils.NewStoreOpts{
		DataDir: c.dataDir,
		Logger:  c.logger,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	err = cliui.Step(os.Stdout, "Embedding description and saving memory", func() error {
		return st.Insert(ctx, c.memory, c.description)
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n  %s Memory inserted!\n\n", cliui.SuccessMark)

	return nil
}
