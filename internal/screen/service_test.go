package screen

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/userdeck/internal/user"
)

type repoFunc func(ctx context.Context, size int) ([]user.User, error)

func (f repoFunc) FetchBatch(ctx context.Context, size int) ([]user.User, error) {
	return f(ctx, size)
}

func makeUsers(n int) []user.User {
	users := make([]user.User, n)
	for i := range users {
		users[i] = user.User{
			ID:        i + 1,
			UID:       fmt.Sprintf("uid-%d", i+1),
			Username:  fmt.Sprintf("user%d", i+1),
			FirstName: "First",
			LastName:  fmt.Sprintf("Last%d", i+1),
		}
	}
	return users
}

func startAndWait(t *testing.T, s *Screen) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.Start(context.Background())
	require.NoError(t, s.Wait(ctx))
}

func TestScreenLoadsUsers(t *testing.T) {
	var gotSize int
	s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
		gotSize = size
		return makeUsers(3), nil
	}), 80)

	assert.Equal(t, StateLoading, s.Render().State, "Screen should start in loading state")

	startAndWait(t, s)
	assert.Equal(t, 80, gotSize, "Batch size should be passed to the repository")

	v := s.Render()
	require.True(t, v.Ready())
	assert.Equal(t, 1, v.User.ID)
	assert.Equal(t, 0, v.Index)
	assert.Equal(t, 3, v.Total)
	assert.False(t, v.CanPrev)
	assert.True(t, v.CanNext)
	assert.Empty(t, v.Message)
}

func TestScreenNavigation(t *testing.T) {
	s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
		return makeUsers(3), nil
	}), 3)
	startAndWait(t, s)

	v, err := s.Next()
	require.NoError(t, err)
	v, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Index)
	assert.Equal(t, 3, v.User.ID)
	assert.True(t, v.CanPrev)
	assert.False(t, v.CanNext)

	v, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Index, "Next at the last user should not move")

	v, err = s.Prev()
	require.NoError(t, err)
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, v, s.Render(), "Render should match the view returned by the move")
}

func TestScreenSingleUser(t *testing.T) {
	s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
		return makeUsers(1), nil
	}), 1)
	startAndWait(t, s)

	v := s.Render()
	require.True(t, v.Ready())
	assert.False(t, v.CanPrev)
	assert.False(t, v.CanNext)
}

func TestScreenErrors(t *testing.T) {
	tests := []struct {
		name    string
		users   []user.User
		err     error
		message string
	}{
		{"Fetch Failure", nil, user.ErrFetchFailed, MsgFetchFailed},
		{"Failure With Partial Data", makeUsers(2), user.ErrFetchFailed, MsgFetchFailed},
		{"Empty Result", []user.User{}, nil, MsgNoData},
		{"Nil Result", nil, nil, MsgNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
				return tt.users, tt.err
			}), 10)
			startAndWait(t, s)

			v := s.Render()
			assert.Equal(t, StateError, v.State)
			assert.Equal(t, tt.message, v.Message)
			assert.Nil(t, v.User)
			assert.False(t, v.Ready())

			_, err := s.Next()
			assert.ErrorIs(t, err, ErrNotReady)
			_, err = s.Prev()
			assert.ErrorIs(t, err, ErrNotReady)
		})
	}
}

func TestScreenNavigationWhileLoading(t *testing.T) {
	s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
		return makeUsers(2), nil
	}), 2)

	v, err := s.Next()
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, StateLoading, v.State)
}

func TestScreenStartOnce(t *testing.T) {
	calls := 0
	s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
		calls++
		return makeUsers(2), nil
	}), 2)

	startAndWait(t, s)
	s.Start(context.Background())
	s.Start(context.Background())
	require.NoError(t, s.Wait(context.Background()))

	assert.Equal(t, 1, calls, "Only one fetch should ever be issued")
}

func TestScreenClose(t *testing.T) {
	t.Run("Cancels In-Flight Fetch", func(t *testing.T) {
		entered := make(chan struct{})
		s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
			close(entered)
			<-ctx.Done()
			return makeUsers(2), ctx.Err()
		}), 2)

		s.Start(context.Background())
		<-entered
		s.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.ErrorIs(t, s.Wait(ctx), ErrClosed)
		assert.Equal(t, StateLoading, s.Render().State, "A closed screen should ignore the late result")
	})

	t.Run("Before Start", func(t *testing.T) {
		called := false
		s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
			called = true
			return nil, nil
		}), 2)

		s.Close()
		s.Close()
		s.Start(context.Background())

		assert.ErrorIs(t, s.Wait(context.Background()), ErrClosed)
		assert.False(t, called, "Start after Close should not fetch")
	})

	t.Run("After Load Keeps View", func(t *testing.T) {
		s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
			return makeUsers(2), nil
		}), 2)
		startAndWait(t, s)
		s.Close()

		assert.True(t, s.Render().Ready())
	})
}

func TestScreenWaitTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
		<-release
		return nil, errors.New("late")
	}), 2)
	s.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Wait(ctx), context.DeadlineExceeded)
	assert.Equal(t, StateLoading, s.Render().State)
}

func TestScreenUserAt(t *testing.T) {
	s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
		return makeUsers(3), nil
	}), 3)

	_, err := s.UserAt(0)
	assert.ErrorIs(t, err, ErrNotReady, "UserAt should fail while loading")

	startAndWait(t, s)
	_, err = s.Next()
	require.NoError(t, err)

	u, err := s.UserAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID, "UserAt should not depend on the current position")

	u, err = s.UserAt(2)
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)

	for _, i := range []int{-1, 3, 100} {
		_, err := s.UserAt(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
	}

	assert.Equal(t, 1, s.Render().Index, "UserAt should not move the screen")
}

func TestScreenUserAtAfterError(t *testing.T) {
	s := New(repoFunc(func(ctx context.Context, size int) ([]user.User, error) {
		return nil, user.ErrFetchFailed
	}), 3)
	startAndWait(t, s)

	_, err := s.UserAt(0)
	assert.ErrorIs(t, err, ErrNotReady)
}
