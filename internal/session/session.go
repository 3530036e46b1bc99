package session

import (
	gosync "sync"
	"time"

	"todo-planner-api/internal/cache"
	"todo-planner-api/internal/drag"
	"todo-planner-api/internal/realtime"
	"todo-planner-api/internal/store"
	"todo-planner-api/internal/sync"

	"github.com/rs/zerolog"
)

// Idle sessions are dropped after this long; the next request reloads the
// user's collections from the store.
const sessionTTL = 30 * time.Minute

// Session is one user's server-side working set: their optimistic state
// behind the sync gateway plus the in-progress drag gesture. The mutex keeps
// single-writer model: one gesture or mutation at a time.
type Session struct {
	mu      gosync.Mutex
	Gateway *sync.Gateway
	Drag    *drag.Coordinator
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Manager hands out per-user sessions, creating and loading them on first
// access and expiring them through the TTL cache.
type Manager struct {
	mu       gosync.Mutex
	sessions *cache.TTLCache[string, *Session]
	store    store.Store
	log      zerolog.Logger
}

var managerInstance *Manager
var once gosync.Once

// Init installs the singleton manager. Call once at startup (or per test
// with a fresh store via NewManager + SetManager).
func Init(st store.Store, logger zerolog.Logger) {
	once.Do(func() {
		managerInstance = NewManager(st, logger)
	})
}

func NewManager(st store.Store, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: cache.NewTTLCache[string, *Session](),
		store:    st,
		log:      logger,
	}
}

// SetManager swaps the singleton; used by tests to rebind to a fresh store.
func SetManager(m *Manager) {
	managerInstance = m
}

// GetManager returns the singleton manager.
func GetManager() *Manager {
	return managerInstance
}

// Session returns the user's session, creating and loading it if absent.
// Each access slides the expiry window.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions.Get(userID); ok {
		m.sessions.Set(userID, s, sessionTTL)
		return s
	}

	notify := func(event, id string) {
		realtime.GetHub().Notify(userID, event, id)
	}
	s := &Session{
		Gateway: sync.New(userID, m.store, m.log, notify),
		Drag:    drag.New(),
	}
	s.Gateway.Load(time.Now())
	m.sessions.Set(userID, s, sessionTTL)
	return s
}

// Drop discards a user's session (e.g. after a purge in tests).
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions.Delete(userID)
}
