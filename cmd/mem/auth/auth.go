// Package authcmder provides the auth command for storing the OpenAI API key.
package authcmder

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/papercomputeco/mem/pkg/cliui"
	"github.com/papercomputeco/mem/pkg/credentials"
	"github.com/papercomputeco/mem/pkg/datadir"
)

const authLongDesc string = `Store the OpenAI API key used for embeddings.

The key is written as plain text to openai_api_key.txt in the data
directory and read whenever a command needs to embed text.

Examples:
  mem auth                   Prompt for the API key
  echo $KEY | mem auth       Pipe the API key from stdin
  mem auth --show-path       Print the key file location
  mem auth --remove          Delete the stored key`

const authShortDesc string = "Store the OpenAI API key"

func NewAuthCmd() *cobra.Command {
	var removeFlag bool
	var showPathFlag bool

	cmd := &cobra.Command{
		Use:   "auth",
		Short: authShortDesc,
		Long:  authLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")

			switch {
			case showPathFlag:
				return runShowPath(dataDir)
			case removeFlag:
				return runRemove(dataDir)
			default:
				return runAuth(dataDir)
			}
		},
	}

	cmd.Flags().BoolVar(&removeFlag, "remove", false, "Remove the stored API key")
	cmd.Flags().BoolVar(&showPathFlag, "show-path", false, "Print the API key file location")

	return cmd
}

func runAuth(dataDir string) error {
	apiKey, err := readAPIKey()
	if err != nil {
		return err
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("API key cannot be empty")
	}

	mgr, err := newManager(dataDir)
	if err != nil {
		return err
	}

	if err := mgr.Set(apiKey); err != nil {
		return err
	}

	fmt.Printf("\n  %s Stored OpenAI API key %s\n\n",
		cliui.SuccessMark,
		cliui.DimStyle.Render("("+mgr.Path()+")"),
	)

	return nil
}

func runShowPath(dataDir string) error {
	mgr, err := newManager(dataDir)
	if err != nil {
		return err
	}

	fmt.Println(mgr.Path())

	return nil
}

func runRemove(dataDir string) error {
	mgr, err := newManager(dataDir)
	if err != nil {
		return err
	}

	if err := mgr.Remove(); err != nil {
		return err
	}

	fmt.Printf("\n  %s Removed stored API key.\n\n", cliui.SuccessMark)

	return nil
}

func newManager(dataDir string) (*credentials.Manager, error) {
	target, err := datadir.NewManager().Target(dataDir)
	if err != nil {
		return nil, err
	}

	return credentials.NewManager(target), nil
}

// readAPIKey reads an API key from stdin. If stdin is a pipe, it reads the
// first line. Otherwise, it prompts interactively with hidden input.
func readAPIKey() (string, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}

	// Piped input
	if (fi.Mode() & os.ModeCharDevice) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return "", errors.New("no input received on stdin")
	}

	// Interactive terminal
	fmt.Print("Enter OpenAI API key: ")

	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println() // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}

	return string(keyBytes), nil
}
