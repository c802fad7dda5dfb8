package main

import (

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/notjagan/teamtype/pkg/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE:  runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dex, closeDex, err := openDex(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDex()

	server := mcp.NewServer(dex, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
