package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/notjagan/teamtype/pkg/team"
)

type Server struct {
	dex team.Dex
	mcp *sdk.Server
}

// NewServer returns a server for the analysis tools. dex may be nil, in which
// case members must be given by type.
func NewServer(dex team.Dex, version string) *Server {
	s := &Server{
		dex: dex,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "teamtype",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
