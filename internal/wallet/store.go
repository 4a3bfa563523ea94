package wallet

import (
	"context"
	"sync"
	"time"
)

type session struct {
	status   ConnectionStatus
	lastSeen time.Time
	subs     map[chan ConnectionStatus]struct{}
}

// Store keeps the last reported status per session and fans changes out to
// subscribers. It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Get returns the status for id, StatusUnknown when none was reported.
func (s *Store) Get(id string) ConnectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok && sess.status != "" {
		return sess.status
	}
	return StatusUnknown
}

// Set records status for id and reports whether it changed.
// Subscribers are only notified on change.
func (s *Store) Set(id string, status ConnectionStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(id)
	sess.lastSeen = s.now()

	prev := sess.status
	if prev == "" {
		prev = StatusUnknown
	}
	if prev == status {
		return false
	}
	sess.status = status

	for ch := range sess.subs {
		publish(ch, status)
	}
	return true
}

// Touch marks id as active without changing its status.
func (s *Store) Touch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(id).lastSeen = s.now()
}

// Subscribe returns a channel that receives every status change for id.
// The channel holds only the latest value; a slow reader skips intermediate
// states. It is closed once ctx is done.
func (s *Store) Subscribe(ctx context.Context, id string) <-chan ConnectionStatus {
	ch := make(chan ConnectionStatus, 1)

	s.mu.Lock()
	sess := s.session(id)
	sess.lastSeen = s.now()
	sess.subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		defer s.mu.Unlock()
		if sess, ok := s.sessions[id]; ok {
			delete(sess.subs, ch)
			sess.lastSeen = s.now()
		}
		close(ch)
	}()

	return ch
}

// Sweep drops sessions idle for longer than idle that have no live
// subscribers, and returns how many were removed.
func (s *Store) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for id, sess := range s.sessions {
		if len(sess.subs) == 0 && sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// session returns the entry for id, creating it. Caller holds s.mu.
func (s *Store) session(id string) *session {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{subs: make(map[chan ConnectionStatus]struct{})}
		s.sessions[id] = sess
	}
	return sess
}

// publish replaces whatever is buffered in ch with status. Caller holds s.mu,
// which makes this the only sender.
func publish(ch chan ConnectionStatus, status ConnectionStatus) {
	select {
	case <-ch:
	default:
	}
	ch <- status
}
