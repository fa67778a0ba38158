// Package client builds and caches the shared SDK client and session for
// curbctl commands.
package client

import (
	"fmt"
	"sync"

	curbwise "github.com/curbwise/curbwise-go"
)

// Provider lazily constructs one Client/Session pair per process. Commands
// share the pair so the hydrated session gates every call the way a page
// load would.
type Provider struct {
	serverURL string
	verbose   bool

	once    sync.Once
	client  *curbwise.Client
	session *curbwise.Session
	err     error
}

// NewProvider returns a provider for the given server URL.
func NewProvider(serverURL string, verbose bool) *Provider {
	return &Provider{serverURL: serverURL, verbose: verbose}
}

// Session returns the shared, already-hydrated session and its client.
func (p *Provider) Session() (*curbwise.Session, *curbwise.Client, error) {
	p.once.Do(func() {
		client, err := curbwise.NewClient(curbwise.Config{
			BaseURL:   p.serverURL,
			Telemetry: telemetryHooks(p.verbose),
			UserAgent: "curbctl/" + curbwise.Version,
		})
		if err != nil {
			p.err = err
			return
		}
		store, err := curbwise.NewFileSnapshotStore()
		if err != nil {
			p.err = fmt.Errorf("failed to create session store: %w", err)
			return
		}
		session, err := curbwise.NewSession(client, store)
		if err != nil {
			p.err = err
			return
		}
		session.Initialize()
		p.client = client
		p.session = session
	})
	return p.session, p.client, p.err
}

// Authenticated returns the session and client, failing when no credential
// survived hydration.
func (p *Provider) Authenticated() (*curbwise.Session, *curbwise.Client, error) {
	session, client, err := p.Session()
	if err != nil {
		return nil, nil, err
	}
	if !session.State().Authenticated() {
		return nil, nil, fmt.Errorf("not logged in (run 'curbctl auth login')")
	}
	return session, client, nil
}
