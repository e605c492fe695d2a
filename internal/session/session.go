// Package session implements the client-side identity bootstrap: it
// resolves a locally cached credential into a server-confirmed identity
// at start-up, and keeps the cached view of progress subordinate to the
// server copy. The cache is a pre-fetch placeholder only; once
// validation completes, server data replaces it wholesale.
package session

import (
	"context"
	"errors"
	"sync"

	"lingua_edu_backend/internal/model"
)

// State of the bootstrap machine.
type State int

const (
	Unauthenticated State = iota
	Validating
	Authenticated
	Invalid
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Validating:
		return "validating"
	case Authenticated:
		return "authenticated"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// ErrCredentialRejected marks a credential the identity collaborator
// refused (expired or malformed), as opposed to a transport failure.
var ErrCredentialRejected = errors.New("credential rejected")

// CredentialStore is the local credential and user cache, the analogue
// of the web client's browser storage.
type CredentialStore interface {
	Token() (string, bool)
	CachedUser() (*model.User, bool)
	Save(token string, user *model.User)
	Clear()
}

// IdentityAPI is the opaque authentication collaborator.
type IdentityAPI interface {
	// Authenticate validates a token, returning the resolved identity
	// or ErrCredentialRejected.
	Authenticate(ctx context.Context, token string) (userID uint, email string, err error)
	GetCurrentUser(ctx context.Context, token string) (*model.User, error)
}

// ProgressAPI fetches the server-authoritative progress records.
type ProgressAPI interface {
	FetchAll(ctx context.Context, token string) ([]model.Progress, error)
}

// Manager drives the bootstrap state machine. It replaces ambient
// current-user globals: handlers and view-models receive it explicitly.
type Manager struct {
	mu       sync.Mutex
	state    State
	store    CredentialStore
	identity IdentityAPI
	progress ProgressAPI

	token   string
	user    *model.User
	records []model.Progress
}

func NewManager(store CredentialStore, identity IdentityAPI, progress ProgressAPI) *Manager {
	return &Manager{
		state:    Unauthenticated,
		store:    store,
		identity: identity,
		progress: progress,
	}
}

// Start runs the bootstrap. With no cached token the machine stays
// Unauthenticated. Otherwise it validates the token: acceptance loads
// the server user and the full progress set; rejection clears the cache
// and parks the machine in Invalid, which is terminal until an explicit
// SignIn.
func (m *Manager) Start(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Invalid {
		return m.state, nil
	}

	token, ok := m.store.Token()
	if !ok {
		m.state = Unauthenticated
		return m.state, nil
	}

	m.state = Validating
	// Cached user serves as a display placeholder until the server
	// answers; it is never trusted past that point.
	if cached, ok := m.store.CachedUser(); ok {
		m.user = cached
	}

	_, _, err := m.identity.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, ErrCredentialRejected) {
			m.store.Clear()
			m.user = nil
			m.records = nil
			m.state = Invalid
			return m.state, nil
		}
		// Transport failure: not a verdict on the credential.
		m.state = Unauthenticated
		return m.state, err
	}

	user, err := m.identity.GetCurrentUser(ctx, token)
	if err != nil {
		m.state = Unauthenticated
		return m.state, err
	}

	m.token = token
	m.user = user
	m.state = Authenticated
	m.store.Save(token, user)

	// Authoritative refresh: the server copy replaces any cached
	// progress wholesale.
	records, err := m.progress.FetchAll(ctx, token)
	if err != nil {
		return m.state, err
	}
	m.records = records

	return m.state, nil
}

// SignIn installs a freshly issued credential (from an explicit login)
// and moves straight to Authenticated.
func (m *Manager) SignIn(ctx context.Context, token string, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.user = user
	m.state = Authenticated
	m.store.Save(token, user)

	records, err := m.progress.FetchAll(ctx, token)
	if err != nil {
		return err
	}
	m.records = records
	return nil
}

// Logout clears the cached credential and user record.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store.Clear()
	m.token = ""
	m.user = nil
	m.records = nil
	m.state = Unauthenticated
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Records returns the last server-fetched progress set.
func (m *Manager) Records() []model.Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Progress, len(m.records))
	copy(out, m.records)
	return out
}

// LessonProgress looks up one lesson's record in the fetched set.
func (m *Manager) LessonProgress(lessonID string) (model.Progress, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.records {
		if record.LessonID == lessonID {
			return record, true
		}
	}
	return model.Progress{}, false
}
