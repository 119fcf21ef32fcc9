package server

import (
	"sync"
	"testing"
	"time"

	"github.com/brettbedarf/pycommander/config"
	"github.com/brettbedarf/pycommander/filesystem"
	"github.com/brettbedarf/pycommander/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newSessionTestServer(maxSessions int, ttl time.Duration) (*Server, *fakeClock) {
	cfg := config.NewConfig(&config.ConfigOverride{
		MaxSessions: util.Pointer(maxSessions),
		SessionTTL:  util.Pointer(config.Duration(ttl)),
	})
	srv := New(cfg, filesystem.NewDefaultFS(), nil)
	clock := &fakeClock{t: time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)}
	srv.now = clock.Now
	return srv, clock
}

func TestSession_Record(t *testing.T) {
	t.Parallel()

	s := newSession(2, time.Now())
	s.Record("ls")
	s.Record("")
	s.Record("pwd")
	s.Record("date")

	assert.Equal(t, []string{"date", "pwd"}, s.History())
}

func TestSession_HistoryIsCopy(t *testing.T) {
	t.Parallel()

	s := newSession(0, time.Now())
	s.Record("ls")
	h := s.History()
	h[0] = "rm README.md"

	assert.Equal(t, []string{"ls"}, s.History())
}

func TestSession_ConcurrentRecord(t *testing.T) {
	t.Parallel()

	s := newSession(0, time.Now())
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Record("pwd")
		}()
	}
	wg.Wait()

	assert.Len(t, s.History(), 50)
}

func TestServer_NewSession_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()
	srv, clock := newSessionTestServer(3, 0)

	var ids []string
	for range 3 {
		ids = append(ids, srv.NewSession().ID)
		clock.Advance(time.Second)
	}
	// reading the first session makes the second the least recently used
	_, ok := srv.Session(ids[0])
	require.True(t, ok)
	clock.Advance(time.Second)

	fresh := srv.NewSession()

	assert.Equal(t, 3, srv.sessions.Size())
	_, ok = srv.Session(ids[1])
	assert.False(t, ok, "least recently used session must be evicted")
	for _, id := range []string{ids[0], ids[2], fresh.ID} {
		_, ok := srv.Session(id)
		assert.True(t, ok, id)
	}
}

func TestServer_NewSession_StaysBounded(t *testing.T) {
	t.Parallel()
	srv, _ := newSessionTestServer(10, 0)

	for range 100 {
		srv.NewSession()
	}

	assert.Equal(t, 10, srv.sessions.Size())
}

func TestServer_Session_IdleExpiry(t *testing.T) {
	t.Parallel()
	srv, clock := newSessionTestServer(0, time.Hour)

	idle := srv.NewSession()
	active := srv.NewSession()
	clock.Advance(40 * time.Minute)
	_, ok := srv.Session(active.ID)
	require.True(t, ok)
	clock.Advance(40 * time.Minute)

	_, ok = srv.Session(idle.ID)
	assert.False(t, ok, "idle past the ttl")
	_, ok = srv.Session(active.ID)
	assert.True(t, ok, "used within the ttl")

	clock.Advance(2 * time.Hour)
	srv.NewSession()
	assert.Equal(t, 1, srv.sessions.Size(), "expired sessions are pruned on create")
}
