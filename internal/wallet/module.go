package wallet

import (
	"go.uber.org/fx"

	"github.com/emergentai/landing/internal/config"
)

// StatusPath is where the browser library reports status changes.
const StatusPath = "/wallet/status"

var Module = fx.Module("wallet",
	fx.Provide(
		NewStore,
		NewConnectButtonFromConfig,
		NewSessionProvider,
		func(p *SessionProvider) Provider { return p },
		func(p *SessionProvider) Watcher { return p },
		func(p *SessionProvider) Reporter { return p },
	),
)

// NewConnectButtonFromConfig builds the connect button mount point.
func NewConnectButtonFromConfig(cfg *config.Config) *ConnectButton {
	return &ConnectButton{
		ClientID:       cfg.Wallet.ClientID,
		Theme:          cfg.Wallet.Theme,
		StatusEndpoint: StatusPath,
		StatusEvent:    cfg.Wallet.StatusEvent,
	}
}
