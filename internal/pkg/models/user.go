package models

// UserInfo is the read-only projection of the external identity service
// that the core consumes: who a user is and whether their identity
// documents have been verified.
type UserInfo struct {
	ID         string `json:"id" db:"id"`
	FullName   string `json:"full_name" db:"full_name"`
	Email      string `json:"email,omitempty" db:"email"`
	Phone      string `json:"phone,omitempty" db:"phone"`
	IsVerified bool   `json:"is_verified" db:"is_verified"`
}
