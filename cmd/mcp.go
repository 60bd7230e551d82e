package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/historyquest/historyquest/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing script generation and library tools for AI agents like Claude Code.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gen, err := createGeneratorFromConfig(cfg)
		if err != nil {
			return err
		}
		st := openStore(cfg)

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "historyquest MCP server started on stdio (library=%d scripts)\n", st.Len())

		srv := mcpserver.NewServer(st, gen, cfg.Samples)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
