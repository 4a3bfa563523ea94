package wallet

import (
	"context"

	g "maragu.dev/gomponents"
)

// Provider is the wallet-connection capability the navbar renders against.
type Provider interface {
	// Status returns the connection status for the session in ctx.
	Status(ctx context.Context) ConnectionStatus

	// ConnectButton returns the opaque connect control.
	ConnectButton() g.Node
}

// Watcher is implemented by providers that can push status changes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan ConnectionStatus, bool)
}

// Reporter records statuses pushed by the browser library.
type Reporter interface {
	Report(ctx context.Context, status ConnectionStatus) (bool, error)
}

// SessionProvider answers from the Store using the session id in the context.
type SessionProvider struct {
	store  *Store
	button *ConnectButton
}

func NewSessionProvider(store *Store, button *ConnectButton) *SessionProvider {
	return &SessionProvider{store: store, button: button}
}

// Status returns StatusUnknown when ctx carries no session.
func (p *SessionProvider) Status(ctx context.Context) ConnectionStatus {
	id, ok := SessionFromContext(ctx)
	if !ok {
		return StatusUnknown
	}
	p.store.Touch(id)
	return p.store.Get(id)
}

func (p *SessionProvider) ConnectButton() g.Node {
	return p.button.Node()
}

// Watch subscribes to the session in ctx. It returns false without a session.
func (p *SessionProvider) Watch(ctx context.Context) (<-chan ConnectionStatus, bool) {
	id, ok := SessionFromContext(ctx)
	if !ok {
		return nil, false
	}
	return p.store.Subscribe(ctx, id), true
}

// Report records a status pushed by the browser for the session in ctx.
func (p *SessionProvider) Report(ctx context.Context, status ConnectionStatus) (bool, error) {
	id, ok := SessionFromContext(ctx)
	if !ok {
		return false, ErrNoSession
	}
	return p.store.Set(id, status), nil
}
