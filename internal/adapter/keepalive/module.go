package keepalive

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/ecosystuz/tezkor-backend/internal/config"
)

// Module exposes keep-alive client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.SelfPingURL == "" {
		return Disabled(), nil
	}
	return NewHTTPClient(p.Config.SelfPingURL, p.Logger)
}
