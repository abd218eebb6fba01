// Package listcmder provides the list command for ranking stored memories
// against a query description.
package listcmder

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/mem/pkg/cliui"
	"github.com/papercomputeco/mem/pkg/logger"
	"github.com/papercomputeco/mem/pkg/store"
	storeutils "github.com/papercomputeco/mem/pkg/store/utils"
	"github.com/papercomputeco/mem/pkg/utils"
)

var rankStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)

// maxFieldLen caps how much of a value or description a list row shows.
const maxFieldLen = 100

type listCommander struct {
	description string
	count       int

	dataDir string
	debug   bool
	logger  *slog.Logger
}

const listLongDesc string = `List memories from the store.

Embeds the query description and returns stored memories ranked by
semantic similarity, best first. Ties keep their original insertion
order. Prints "No memories found!" when the store is empty.

Examples:
  mem list "reminders"
  mem list "anything about passwords" --count 3`

const listShortDesc string = "List memories from the store"

func NewListCmd() *cobra.Command {
	cmder := &listCommander{}

	cmd := &cobra.Command{
		Use:   "list <description>",
		Short: listShortDesc,
		Long:  listLongDesc,
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

	cmd.Flags().IntVarP(&cmder.count, "count", "c", 10, "Maximum number of memories to list")

	return cmd
}

func (c *listCommander) run(ctx context.Context) error {
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

	memories, err := st.List(ctx, c.description, c.count)
	if err != nil {
		return err
	}

	if len(memories) == 0 {
		fmt.Println("No memories found!")
		return nil
	}

	fmt.Printf("\n%s %s\n\n",
		cliui.HeaderStyle.Render("Memories for:"),
		cliui.KeyStyle.Render(fmt.Sprintf("%q", c.description)),
	)

	for i, memory := range memories {
		fmt.Println(renderMemory(i+1, memory))
	}

	fmt.Println()

	return nil
}

// renderMemory formats one ranked result, truncating long values and
// descriptions so a single row stays readable.
func renderMemory(rank int, memory store.ScoredMemory) string {
	return fmt.Sprintf("  %s  %s  %s\n      %s",
		rankStyle.Render(fmt.Sprintf("#%d", rank)),
		cliui.ScoreStyle.Render(fmt.Sprintf("score: %.4f", memory.Score)),
		cliui.ValueStyle.Render(utils.Truncate(memory.Value, maxFieldLen)),
		cliui.DimStyle.Render(utils.Truncate(memory.Description, maxFieldLen)),
	)
}
