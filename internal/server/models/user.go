package models

// User is a registered dashboard identity. Username and email are both
// unique across the store; records are never updated or deleted.
type User struct {
	ID           string `json:"id,omitempty"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
