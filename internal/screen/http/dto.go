package http

import (
	"github.com/nekogravitycat/userdeck/internal/screen"
	"github.com/nekogravitycat/userdeck/internal/user"
)

// AvatarRequest defines query parameters for the avatar endpoint.
type AvatarRequest struct {
	Index *int `form:"i" binding:"omitempty,min=0"`
}

// UserResponse is the shape of the current user in API responses.
type UserResponse struct {
	ID        int          `json:"id"`
	UID       string       `json:"uid"`
	Password  string       `json:"password"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	Avatar    string       `json:"avatar"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	FullName  string       `json:"full_name"`
	Fields    []user.Field `json:"fields"`
}

// ScreenResponse is the rendered screen. Only the fields of the current
// state are set.
type ScreenResponse struct {
	State   screen.State  `json:"state"`
	Message string        `json:"message,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
	Index   int           `json:"index"`
	Total   int           `json:"total"`
	CanPrev bool          `json:"can_prev"`
	CanNext bool          `json:"can_next"`
}

// NewScreenResponse converts a screen.View to the API representation.
func NewScreenResponse(v screen.View) ScreenResponse {
	resp := ScreenResponse{
		State:   v.State,
		Message: v.Message,
	}
	if !v.Ready() {
		return resp
	}

	u := v.User
	resp.User = &UserResponse{
		ID:        u.ID,
		UID:       u.UID,
		Password:  u.Password,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Fields:    u.Fields(),
	}
	resp.Index = v.Index
	resp.Total = v.Total
	resp.CanPrev = v.CanPrev
	resp.CanNext = v.CanNext

	return resp
}
