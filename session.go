package curbwise

import (
	"context"
	"sync"
)

// SessionStatus names the lifecycle states of the client session.
type SessionStatus string

const (
	// SessionUninitialized is the state before Initialize has been called.
	SessionUninitialized SessionStatus = "uninitialized"
	// SessionHydrating means the persisted snapshot is being restored.
	SessionHydrating SessionStatus = "hydrating"
	// SessionAuthenticated means a credential is held. The principal may
	// still be pending; check SessionState.Principal.
	SessionAuthenticated SessionStatus = "authenticated"
	// SessionUnauthenticated means no usable credential is held.
	SessionUnauthenticated SessionStatus = "unauthenticated"
)

// SessionState is an immutable snapshot of the session store. Principal is
// nil while the identity has not been fetched yet (principal-pending).
type SessionState struct {
	Status    SessionStatus
	Token     string
	Principal *Principal
	Loading   bool
	LastError string
}

// Authenticated reports whether a credential is held and no validation
// attempt for it has failed.
func (s SessionState) Authenticated() bool {
	return s.Status == SessionAuthenticated && s.Token != ""
}

// Observer receives every state transition. Callbacks run synchronously on
// the goroutine that caused the transition.
type Observer func(SessionState)

// Session owns the client-side authentication state and its lifecycle. It is
// the sole writer of the credential and principal; the bound Client reads the
// credential through the TokenSource interface and never writes back.
//
// Construct one Session per Client and pass it to whatever needs it; there is
// deliberately no package-level instance.
type Session struct {
	mu        sync.Mutex
	client    *Client
	store     SnapshotStore
	state     SessionState
	observers []Observer
	initOnce  sync.Once
}

// NewSession builds a session store bound to client, hydrating from and
// persisting to store. Passing a nil store keeps the session memory-only.
func NewSession(client *Client, store SnapshotStore) (*Session, error) {
	if client == nil {
		return nil, ConfigError{Reason: "client required"}
	}
	if store == nil {
		store = NewMemorySnapshotStore()
	}
	s := &Session{
		client: client,
		store:  store,
		state:  SessionState{Status: SessionUninitialized},
	}
	client.UseTokenSource(s)
	return s, nil
}

// Token implements TokenSource for the bound client.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Authenticated() {
		return ""
	}
	return s.state.Token
}

// State returns a copy of the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers an observer for state transitions and returns an
// unsubscribe function.
func (s *Session) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
	idx := len(s.observers) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < len(s.observers) {
			s.observers[idx] = nil
		}
	}
}

// mutate applies fn to the state under the lock, then notifies observers
// outside it so a callback may re-enter the session.
func (s *Session) mutate(fn func(*SessionState)) SessionState {
	s.mu.Lock()
	fn(&s.state)
	state := s.state
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()
	for _, fn := range observers {
		if fn != nil {
			fn(state)
		}
	}
	return state
}

// Initialize hydrates the session from the persisted snapshot. It is
// idempotent: only the first call does any work. A persisted credential is
// trusted optimistically (principal-pending) without a network round trip;
// revalidation happens on the first protected call. Any load or parse fault
// is treated as "no snapshot".
func (s *Session) Initialize() SessionState {
	s.initOnce.Do(func() {
		s.mutate(func(st *SessionState) {
			st.Status = SessionHydrating
		})
		snap, err := s.store.Load()
		if err != nil || !snap.Authenticated || snap.Token == "" {
			if err != nil {
				s.client.telemetry.log(context.Background(), LogLevelError, "session_hydrate_failed", map[string]any{
					"error": err.Error(),
				})
			}
			s.mutate(func(st *SessionState) {
				*st = SessionState{Status: SessionUnauthenticated}
			})
			return
		}
		s.mutate(func(st *SessionState) {
			*st = SessionState{Status: SessionAuthenticated, Token: snap.Token}
		})
	})
	return s.State()
}

// Login exchanges credentials for a bearer token, persists it, and records
// the principal from the response. On failure the session stays
// unauthenticated, LastError carries the human-readable message, and the
// error is returned for form-level display.
//
// Concurrent calls are not coalesced; the last writer wins. Callers are
// expected to disable the control while Loading is set.
func (s *Session) Login(ctx context.Context, username, password string) error {
	s.mutate(func(st *SessionState) {
		st.Loading = true
		st.LastError = ""
	})
	resp, err := s.client.Auth.Login(ctx, username, password)
	if err != nil {
		s.mutate(func(st *SessionState) {
			*st = SessionState{Status: SessionUnauthenticated, LastError: err.Error()}
		})
		return err
	}
	user := resp.User
	s.mutate(func(st *SessionState) {
		*st = SessionState{
			Status:    SessionAuthenticated,
			Token:     resp.AccessToken,
			Principal: &user,
		}
	})
	if err := s.store.Save(Snapshot{Token: resp.AccessToken, Authenticated: true}); err != nil {
		s.client.telemetry.log(ctx, LogLevelError, "session_persist_failed", map[string]any{
			"error": err.Error(),
		})
	}
	return nil
}

// Logout discards the credential in memory and in the persisted snapshot and
// resets to unauthenticated. It always succeeds and is idempotent. The token
// is not revoked server-side: the backend issues short-lived stateless
// bearer tokens and exposes no revocation endpoint.
func (s *Session) Logout() {
	if err := s.store.Clear(); err != nil {
		s.client.telemetry.log(context.Background(), LogLevelError, "session_clear_failed", map[string]any{
			"error": err.Error(),
		})
	}
	s.mutate(func(st *SessionState) {
		*st = SessionState{Status: SessionUnauthenticated}
	})
}

// FetchPrincipal resolves the identity behind the held credential. Any
// failure tears the whole session down to unauthenticated with no error
// recorded: an expired token silently drops the session instead of surfacing
// an error loop to the caller.
func (s *Session) FetchPrincipal(ctx context.Context) error {
	if s.Token() == "" {
		return ConfigError{Reason: "no credential held"}
	}
	s.mutate(func(st *SessionState) {
		st.Loading = true
	})
	user, err := s.client.Auth.Me(ctx)
	if err != nil {
		s.client.telemetry.log(ctx, LogLevelInfo, "session_stale_credential_dropped", map[string]any{
			"error": err.Error(),
		})
		if clearErr := s.store.Clear(); clearErr != nil {
			s.client.telemetry.log(ctx, LogLevelError, "session_clear_failed", map[string]any{
				"error": clearErr.Error(),
			})
		}
		s.mutate(func(st *SessionState) {
			*st = SessionState{Status: SessionUnauthenticated}
		})
		return nil
	}
	s.mutate(func(st *SessionState) {
		st.Loading = false
		st.Principal = &user
	})
	return nil
}

// ClearError drops LastError without touching the rest of the state.
func (s *Session) ClearError() {
	s.mutate(func(st *SessionState) {
		st.LastError = ""
	})
}
