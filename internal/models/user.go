// ABOUTME: User model and Role enum for the WorkoutPlan service.
// ABOUTME: Roles mirror the server's user/trainer distinction.
package models

// Role represents a user's role on the WorkoutPlan service.
type Role string

const (
	RoleUser    Role = "user"
	RoleTrainer Role = "trainer"
)

// IsValidRole checks if a string is a valid role.
func IsValidRole(s string) bool {
	return s == string(RoleUser) || s == string(RoleTrainer)
}

// User represents a user account as returned by the server.
type User struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role,omitempty"`
}

// EntityID returns the server-assigned id.
func (u User) EntityID() int { return u.UserID }
