package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/historyquest/historyquest/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST and websocket server",
	Long:  `Starts the HistoryQuest server exposing the script library and the generation pipeline over a REST API and a websocket status stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gen, err := createGeneratorFromConfig(cfg)
		if err != nil {
			return err
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: cfg.Server.AllowAll,
			Samples:  cfg.Samples,
			LogReqs:  verbose,
		}, openStore(cfg), gen)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "historyquest server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Data dir: %s\n", cfg.DataDir)
		fmt.Fprintf(os.Stderr, "  Agent mode: %s\n", cfg.AgentMode)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8675, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
