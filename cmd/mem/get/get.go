// Package getcmder provides the get command for recalling the single best
// matching memory.
package getcmder

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

type getCommander struct {
	description string

	dataDir string
	debug   bool
	logger  *slog.Logger
}

const getLongDesc string = `Get a memory from the store.

Embeds the query description and returns the stored memory whose
description is most semantically similar. Prints "No memory found!" when
the store is empty.

Examples:
  mem get "grocery reminder"
  mem get "that wifi password"`

const getShortDesc string = "Get a memory from the store"

func NewGetCmd() *cobra.Command {
	cmder := &getCommander{}

	cmd := &cobra.Command{
		Use:   "get <description>",
		Short: getShortDesc,
		Long:  getLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmder.description = args[0]

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

func (c *getCommander) run(ctx context.Context) error {
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

	memory, err := st.Get(ctx, c.description)
	if err != nil {
		return err
	}

	if memory == nil {
		fmt.Println("No memory found!")
		return nil
	}

	fmt.Printf("\n  %s\n  %s  %s\n\n",
		cliui.ValueStyle.Render(memory.Value),
		cliui.ScoreStyle.Render(fmt.Sprintf("score: %.4f", memory.Score)),
		cliui.DimStyle.Render(memory.Description),
	)

	return nil
}
