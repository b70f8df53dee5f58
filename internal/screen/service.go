package screen

import (
	"context"
	"log"
	"sync"

	"github.com/nekogravitycat/userdeck/internal/user"
)

// Screen is the single user-browsing screen. It loads one batch of users
// when started and afterwards only its pagination position changes.
// A Screen is safe for concurrent use.
type Screen struct {
	repo      user.Repository
	batchSize int

	startOnce sync.Once
	done      chan struct{}

	mu      sync.RWMutex
	state   State
	message string
	users   []user.User
	pager   Pager
	cancel  context.CancelFunc
	closed  bool
}

// New creates a Screen in the loading state. Nothing is fetched until Start.
func New(repo user.Repository, batchSize int) *Screen {
	return &Screen{
		repo:      repo,
		batchSize: batchSize,
		done:      make(chan struct{}),
		state:     StateLoading,
	}
}

// Start mounts the screen: it launches the one and only fetch in the
// background and returns immediately. Calls after the first are no-ops.
func (s *Screen) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			close(s.done)
			return
		}
		fetchCtx, cancel := context.WithCancel(ctx)
		s.cancel = cancel
		s.mu.Unlock()

		go s.load(fetchCtx, cancel)
	})
}

func (s *Screen) load(ctx context.Context, cancel context.CancelFunc) {
	defer close(s.done)
	defer cancel()

	users, err := s.repo.FetchBatch(ctx, s.batchSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		// Unmounted while the request was in flight; drop the result.
		return
	}

	switch {
	case err != nil:
		log.Printf("warning: failed to load users: %v", err)
		s.state = StateError
		s.message = MsgFetchFailed
	case len(users) == 0:
		s.state = StateError
		s.message = MsgNoData
	default:
		s.state = StateReady
		s.users = users
		s.pager = NewPager(len(users))
		log.Printf("loaded %d users", len(users))
	}
}

// Wait blocks until the fetch has settled or ctx is done.
// It returns ErrClosed if the screen was closed first.
func (s *Screen) Wait(ctx context.Context) error {
	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Close unmounts the screen. An in-flight fetch is canceled and its
// result is discarded. Close is idempotent.
func (s *Screen) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancel := s.cancel
	s.mu.Unlock()

	// Never started: release waiters and turn Start into a no-op.
	s.startOnce.Do(func() { close(s.done) })

	if cancel != nil {
		cancel()
	}
}

// Render returns a snapshot of the current view.
func (s *Screen) Render() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked()
}

// Prev moves to the previous user. It returns ErrNotReady unless users are shown.
func (s *Screen) Prev() (View, error) {
	return s.move((*Pager).Prev)
}

// Next moves to the next user. It returns ErrNotReady unless users are shown.
func (s *Screen) Next() (View, error) {
	return s.move((*Pager).Next)
}

// UserAt returns the user at position i regardless of the current position.
// It returns ErrNotReady unless users are shown and ErrIndexOutOfRange
// when i is outside the batch.
func (s *Screen) UserAt(i int) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateReady {
		return user.User{}, ErrNotReady
	}
	if i < 0 || i >= len(s.users) {
		return user.User{}, ErrIndexOutOfRange
	}
	return s.users[i], nil
}

func (s *Screen) move(step func(*Pager)) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return s.viewLocked(), ErrNotReady
	}
	step(&s.pager)
	return s.viewLocked(), nil
}

func (s *Screen) viewLocked() View {
	switch s.state {
	case StateError:
		return View{State: StateError, Message: s.message}
	case StateReady:
		u := s.users[s.pager.Index()]
		return View{
			State:   StateReady,
			User:    &u,
			Index:   s.pager.Index(),
			Total:   s.pager.Len(),
			CanPrev: s.pager.CanPrev(),
			CanNext: s.pager.CanNext(),
		}
	default:
		return View{State: StateLoading}
	}
}
