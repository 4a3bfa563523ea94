package wallet

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ConnectButtonID is the element id the browser library mounts into.
const ConnectButtonID = "connect-wallet"

// DefaultStatusEvent is dispatched on the mount point when no other event
// name is configured.
const DefaultStatusEvent = "wallet:status"

// ConnectButton is the mount point for the browser wallet library. The
// library owns everything rendered inside it.
//
// Status reaches the server through a DOM contract: the library dispatches
// a CustomEvent named StatusEvent on the mount point, with detail.status set
// to one of unknown, disconnected, connecting or connected. The page script
// relays it to StatusEndpoint. A library that never dispatches the event
// leaves every session unknown, so Dashboard never shows.
type ConnectButton struct {
	ClientID       string
	Theme          string
	StatusEndpoint string
	StatusEvent    string
}

// Node renders the mount point. The fallback label shows until the library
// takes over, or for good when no library is configured.
func (b *ConnectButton) Node() g.Node {
	event := b.StatusEvent
	if event == "" {
		event = DefaultStatusEvent
	}

	return Div(
		ID(ConnectButtonID),
		g.Attr("data-wallet-connect", ""),
		g.If(b.ClientID != "", g.Attr("data-client-id", b.ClientID)),
		g.Attr("data-theme", b.Theme),
		g.Attr("data-status-endpoint", b.StatusEndpoint),
		g.Attr("data-status-event", event),
		Button(
			Type("button"),
			Class("connectButton"),
			Disabled(),
			g.Text("Connect Wallet"),
		),
	)
}
