package server

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/brettbedarf/pycommander/internal/util"
	"github.com/google/uuid"
)

// Session is one browser tab's command history. History is newest first,
// the order the terminal UI walks it with the arrow keys.
type Session struct {
	ID      string
	Created time.Time

	lastUsed atomic.Int64 // unix nanos

	mu      sync.Mutex
	history []string
	limit   int
}

func newSession(limit int, now time.Time) *Session {
	s := &Session{
		ID:      uuid.New().String(),
		Created: now,
		limit:   limit,
	}
	s.lastUsed.Store(now.UnixNano())
	return s
}

// LastUsed is the last time the session was created, read or recorded to
func (s *Session) LastUsed() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

// Record prepends a command line, dropping the oldest entries beyond the
// session's limit. Blank lines are ignored.
func (s *Session) Record(command string) {
	if command == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]string{command}, s.history...)
	if s.limit > 0 && len(s.history) > s.limit {
		s.history = s.history[:s.limit]
	}
}

// History returns a copy of the recorded commands, newest first
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// NewSession registers and returns a fresh session. Idle sessions are
// dropped first, then the least recently used ones while the store is at
// its configured capacity.
func (s *Server) NewSession() *Session {
	now := s.now()
	s.pruneSessions(now)

	sess := newSession(s.cfg.HistoryLimit, now)
	s.sessions.Store(sess.ID, sess)
	return sess
}

// Session looks up a live session by id and marks it used
func (s *Server) Session(id string) (*Session, bool) {
	sess, ok := s.sessions.Load(id)
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(sess, now) {
		s.sessions.Delete(id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

func (s *Server) expired(sess *Session, now time.Time) bool {
	return s.cfg.SessionTTL > 0 && now.Sub(sess.LastUsed()) > s.cfg.SessionTTL
}

func (s *Server) pruneSessions(now time.Time) {
	logger := util.GetLogger("Server.Sessions")

	expired := 0
	s.sessions.Range(func(id string, sess *Session) bool {
		if s.expired(sess, now) {
			s.sessions.Delete(id)
			expired++
		}
		return true
	})

	evicted := 0
	for s.cfg.MaxSessions > 0 && s.sessions.Size() >= s.cfg.MaxSessions {
		var oldest *Session
		s.sessions.Range(func(_ string, sess *Session) bool {
			if oldest == nil || sess.LastUsed().Before(oldest.LastUsed()) {
				oldest = sess
			}
			return true
		})
		if oldest == nil {
			break
		}
		s.sessions.Delete(oldest.ID)
		evicted++
	}

	if expired > 0 || evicted > 0 {
		logger.Debug().Int("expired", expired).Int("evicted", evicted).Msg("Pruned sessions")
	}
}
