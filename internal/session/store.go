// Package session holds the per-operator working state between HTTP calls:
// the uploaded clip, the editable task batch, and the last created database.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"meeting-assistant/internal/model"
)

// DefaultCapacity bounds the number of live sessions. Sessions are ephemeral;
// the oldest is evicted when the cap is reached.
const DefaultCapacity = 128

// ErrNotFound is returned when a session id is unknown or evicted.
var ErrNotFound = errors.New("session not found")

// Store is an in-memory, LRU-bounded session store.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *model.Session]
}

// New creates a session store with the given capacity (<=0 uses the default).
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, *model.Session](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

// Create opens a new session and returns it.
func (s *Store) Create() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.cache.Add(sess.ID, sess)
	return sess
}

// Get returns the session with the given id.
func (s *Store) Get(id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// SetAudio replaces the session's audio clip and its metadata.
func (s *Store) SetAudio(id string, audio []byte, info model.AudioInfo) error {
	return s.update(id, func(sess *model.Session) {
		sess.Audio = audio
		sess.AudioInfo = info
	})
}

// SetTasks replaces the session's task batch wholesale.
func (s *Store) SetTasks(id string, tasks []model.TaskRecord) error {
	return s.update(id, func(sess *model.Session) {
		sess.Tasks = tasks
	})
}

// SetDatabaseID records the id of the last database created for the session.
func (s *Store) SetDatabaseID(id, databaseID string) error {
	return s.update(id, func(sess *model.Session) {
		sess.DatabaseID = databaseID
	})
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func (s *Store) update(id string, fn func(*model.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(id)
	if !ok {
		return ErrNotFound
	}
	fn(sess)
	return nil
}
