package admin

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SessionKey is the cookie and storage key the console keeps the signed-in
// user under.
const SessionKey = "cmsUser"

// Roles accepted by the dashboard gate.
const (
	RoleAdmin    = "admin"
	RoleMarketer = "marketer"
	RoleSales    = "sales"
)

// Session is the signed-in console user.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// CanViewDashboard reports whether this session's role may open the sales
// dashboard. Role matching is case-insensitive.
func (s Session) CanViewDashboard() bool {
	switch strings.ToLower(s.Role) {
	case RoleAdmin, RoleMarketer, RoleSales:
		return true
	}
	return false
}

// SessionStore keeps sessions addressable by an opaque token.
type SessionStore interface {
	Create(s Session) (token string, err error)
	Get(token string) (Session, bool)
	Delete(token string)
}

// MemorySessionStore is an in-process SessionStore keyed by random UUIDs.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session)}
}

func (m *MemorySessionStore) Create(s Session) (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.sessions[token.String()] = s
	m.mu.Unlock()
	return token.String(), nil
}

func (m *MemorySessionStore) Get(token string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

func (m *MemorySessionStore) Delete(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
