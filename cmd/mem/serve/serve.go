// Package servecmder provides the serve command for exposing the memory
// store over MCP.
package servecmder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/mem/pkg/config"
	"github.com/papercomputeco/mem/pkg/logger"
	"github.com/papercomputeco/mem/pkg/mcp"
	storeutils "github.com/papercomputeco/mem/pkg/store/utils"
)

type serveCommander struct {
	listen  string
	logFile string

	dataDir string
	debug   bool
	logger  *slog.Logger
}

const serveLongDesc string = `Run the mem MCP server.

Exposes memory_insert, memory_get, and memory_list tools over the MCP
streamable HTTP transport, backed by the same store file the CLI uses.
An agent pointed at this server can save and recall memories on your
behalf.

Examples:
  mem serve
  mem serve --listen :9090
  mem serve --log-file /var/log/mem.log`

const serveShortDesc string = "Run the mem MCP server"

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")

			cfger, err := config.NewConfiger(dataDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			cfg, err := cfger.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("listen") {
				cmder.listen = cfg.Serve.Listen
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			cmder.dataDir, _ = cmd.Flags().GetString("data-dir")

			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", config.DefaultServeListen, "Address for the MCP server to listen on")
	cmd.Flags().StringVar(&cmder.logFile, "log-file", "", "Also write JSON logs to this file (terminal gets pretty output)")

	return cmd
}

func (c *serveCommander) run() error {
	if c.logFile != "" {
		f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", c.logFile, err)
		}
		defer f.Close()

		c.logger = logger.Multi(
			logger.New(
				logger.WithPretty(true),
				logger.WithDebug(c.debug),
				logger.WithWriter(os.Stderr),
			),
			logger.New(
				logger.WithJSON(true),
				logger.WithDebug(c.debug),
				logger.WithWriter(f),
			),
		)
	} else {
		c.logger = logger.New(
			logger.WithJSON(true),
			logger.WithDebug(c.debug),
		)
	}

	st, err := storeutils.NewStore(&storeutils.NewStoreOpts{
		DataDir: c.dataDir,
		Logger:  c.logger,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	server, err := mcp.NewServer(mcp.Config{
		Store:  st,
		Logger: c.logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              c.listen,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		c.logger.Info("starting MCP server", "listen", c.listen)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
