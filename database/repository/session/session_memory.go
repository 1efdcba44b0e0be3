package sessionRepo

import (
	"encoding/json"
	"sync"
	"time"

	"petalflow/models"
)

// MemorySessionRepo is an in-process SessionRepository used in tests and
// local development without Redis. Sessions are stored as JSON copies so
// callers never share pointers with the repository.
type MemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewMemorySessionRepo creates an in-memory session repository.
func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{sessions: make(map[string][]byte)}
}

// Get retrieves a stored session copy.
func (r *MemorySessionRepo) Get(sessionID string) (*models.OnboardingSession, error) {
	r.mu.RLock()
	data, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var session models.OnboardingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Save stores a session copy.
func (r *MemorySessionRepo) Save(session *models.OnboardingSession) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.sessions[session.SessionID] = data
	r.mu.Unlock()
	return nil
}

// Delete removes a session.
func (r *MemorySessionRepo) Delete(sessionID string) error {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	return nil
}
