package selector

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Factory builds the selector of a new session. onSelect is the parent
// view's callback and must end up in Options.OnSelect.
type Factory func(onSelect func(id int64)) *Selector

// Session is one browser's selector plus the draft comodato it feeds.
type Session struct {
	ID       string
	Selector *Selector

	mu        sync.Mutex
	clienteID int64
	lastSeen  time.Time
}

// ClienteID returns the client chosen for the draft, or 0 when none is.
func (s *Session) ClienteID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clienteID
}

func (s *Session) setClienteID(id int64) {
	s.mu.Lock()
	s.clienteID = id
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store keeps one Session per browser session id and expires the idle ones.
type Store struct {
	factory Factory
	idle    time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates a new Store. Sessions idle for longer than idle are
// removed by Sweep.
func NewStore(factory Factory, idle time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		factory:  factory,
		idle:     idle,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it on first use. The session is
// marked as seen before the store lock is released, so a concurrent Sweep
// never evicts it.
func (st *Store) Get(id string) *Session {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		sess = &Session{ID: id, lastSeen: now}
		sess.Selector = st.factory(sess.setClienteID)
		st.sessions[id] = sess
		return sess
	}
	sess.touch(now)
	return sess
}

// Lookup returns the session for id without creating or touching it.
func (st *Store) Lookup(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than the store's timeout, closing
// their selectors. It returns how many were removed.
func (st *Store) Sweep() int {
	now := st.now()

	st.mu.Lock()
	var expired []*Session
	for id, sess := range st.sessions {
		if sess.idleSince(now) > st.idle {
			expired = append(expired, sess)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, sess := range expired {
		sess.Selector.Close()
	}
	if len(expired) > 0 {
		st.logger.Debug("expired selector sessions", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps idle sessions every interval until ctx is done, then closes
// every remaining selector and waits for their fetches.
func (st *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			st.closeAll()
			return nil
		case <-ticker.C:
			st.Sweep()
		}
	}
}

func (st *Store) closeAll() {
	st.mu.Lock()
	sessions := make([]*Session, 0, len(st.sessions))
	for _, sess := range st.sessions {
		sessions = append(sessions, sess)
	}
	st.mu.Unlock()

	for _, sess := range sessions {
		sess.Selector.Close()
		sess.Selector.Wait()
	}
}
