package screen

import (
	"errors"

	"github.com/nekogravitycat/userdeck/internal/user"
)

// State is the view the screen currently shows.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

// User-facing messages for the error view.
const (
	MsgFetchFailed = "Failed to fetch user data."
	MsgNoData      = "No user data available."
)

var (
	ErrNotReady        = errors.New("no user data to navigate")
	ErrClosed          = errors.New("screen is closed")
	ErrIndexOutOfRange = errors.New("user index out of range")
)

// View is an immutable snapshot of what the screen renders.
type View struct {
	State   State
	Message string

	// Populated only in StateReady.
	User    *user.User
	Index   int
	Total   int
	CanPrev bool
	CanNext bool
}

// Ready reports whether the view shows a record.
func (v View) Ready() bool {
	return v.State == StateReady && v.User != nil
}
