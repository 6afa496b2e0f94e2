package models

// Role is the closed set of user roles known to the platform.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleReader    Role = "READER"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is the authenticated identity returned by GET /auth/me.
type User struct {
	ID       string `json:"idUser"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl,omitempty"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
