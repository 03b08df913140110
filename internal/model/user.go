package model

// Role is user access level
type Role string

const (
	// RoleAdmin has access to all resources
	RoleAdmin Role = "admin"
	// RoleEmployee has access to own resources only
	RoleEmployee Role = "employee"
)

// User is user model entity
type User struct {
	ID           string `json:"id" bson:"_id"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"passwordHash"`
	Role         Role   `json:"role" bson:"role"`
}
