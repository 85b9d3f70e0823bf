// Package session models the user the monitor is acting for. The zero value
// is None, meaning nobody is logged in.
package session

import (
	"fmt"
	"strings"

	"github.com/gabapcia/txproof/internal/pkg/validator"
)

// Role is the permission level of a session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Session identifies the logged-in user.
type Session struct {
	Username string `json:"username" validate:"notblank"`
	Role     Role   `json:"role" validate:"oneof=admin user"`
}

// None is the logged-out session.
var None = Session{}

// New builds a validated Session.
func New(username string, role Role) (Session, error) {
	s := Session{
		Username: strings.TrimSpace(username),
		Role:     Role(strings.ToLower(strings.TrimSpace(string(role)))),
	}

	if err := validator.Validate(s); err != nil {
		return None, fmt.Errorf("invalid session: %w", err)
	}

	return s, nil
}

// IsNone reports whether nobody is logged in.
func (s Session) IsNone() bool {
	return s == None
}

// IsAdmin reports whether the session may run administrative actions such as
// on-demand proof verification.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
