package user

import (
	"errors"
	"strconv"
)

var (
	ErrFetchFailed = errors.New("failed to fetch users")
	ErrInvalidSize = errors.New("batch size must be at least 1")
)

// User is one generated profile as returned by the random user API.
// Records are read-only once fetched.
type User struct {
	ID        int    `json:"id"`
	UID       string `json:"uid"`
	Password  string `json:"password"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Field is a labeled value shown in the details list.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Fields returns the details list in display order.
func (u User) Fields() []Field {
	return []Field{
		{Label: "ID", Value: strconv.Itoa(u.ID)},
		{Label: "UID", Value: u.UID},
		{Label: "Password", Value: u.Password},
		{Label: "Username", Value: u.Username},
		{Label: "Email", Value: u.Email},
	}
}
