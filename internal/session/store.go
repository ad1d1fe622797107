package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 12 * time.Hour

// Session is the per-browser state that follows a signed-in user between
// requests. It is created at login and removed at logout or expiry.
type Session struct {
	ID        string
	UserID    int64
	Username  string
	Page      Page
	AdminMenu AdminMenu
	UserMenu  UserMenu
	Flash     string
	CreatedAt time.Time
	LastSeen  time.Time
}

// Location is the URL of the screen the session is currently on.
func (s Session) Location() string {
	switch s.Page {
	case PageAdminDashboard:
		return s.AdminMenu.Path()
	case PageUserDashboard:
		return s.UserMenu.Path()
	case PageDashboard:
		return "/dashboard"
	case PageRegister:
		return "/register"
	default:
		return "/login"
	}
}

// Store keeps sessions in memory. Idle sessions expire after ttl.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a session for a freshly authenticated user on the dashboard.
func (s *Store) Create(userID int64, username string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Page:      PageDashboard,
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return *sess
}

// Get returns a copy of the session and refreshes its idle timer.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(id)
	if !ok {
		return Session{}, false
	}
	sess.LastSeen = s.now()
	return *sess, true
}

// Update applies fn to the stored session. It reports false when the
// session no longer exists.
func (s *Store) Update(id string, fn func(*Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(id)
	if !ok {
		return false
	}
	fn(sess)
	return true
}

// PopFlash returns and clears the pending flash message.
func (s *Store) PopFlash(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(id)
	if !ok {
		return ""
	}
	flash := sess.Flash
	sess.Flash = ""
	return flash
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) live(id string) (*Session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.LastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

func (s *Store) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
