// Package wallettest provides a controllable wallet.Provider for tests.
package wallettest

import (
	"context"
	"sync"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/landing/internal/wallet"
)

// ButtonTestID marks the stub connect button.
const ButtonTestID = "connect-stub"

// Provider reports whatever status was last set, for every session.
type Provider struct {
	mu      sync.Mutex
	status  wallet.ConnectionStatus
	reports []wallet.ConnectionStatus
	subs    []chan wallet.ConnectionStatus
}

func New(status wallet.ConnectionStatus) *Provider {
	return &Provider{status: status}
}

func (p *Provider) Status(context.Context) wallet.ConnectionStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

func (p *Provider) ConnectButton() g.Node {
	return Button(g.Attr("data-testid", ButtonTestID), g.Text("stub"))
}

// SetStatus changes the status and notifies watchers.
func (p *Provider) SetStatus(status wallet.ConnectionStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = status
	for _, ch := range p.subs {
		ch <- status
	}
}

// Watch returns a channel fed by SetStatus. It is never closed; callers stop
// on ctx.
func (p *Provider) Watch(ctx context.Context) (<-chan wallet.ConnectionStatus, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan wallet.ConnectionStatus, 16)
	p.subs = append(p.subs, ch)
	return ch, true
}

// Report records the status and applies it.
func (p *Provider) Report(_ context.Context, status wallet.ConnectionStatus) (bool, error) {
	p.mu.Lock()
	p.reports = append(p.reports, status)
	changed := p.status != status
	p.mu.Unlock()

	if changed {
		p.SetStatus(status)
	}
	return changed, nil
}

// Reports returns every status passed to Report.
func (p *Provider) Reports() []wallet.ConnectionStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]wallet.ConnectionStatus(nil), p.reports...)
}
