package models

// User is the DB-shaped representation of a user row.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"` // Unique
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	IsStaff      bool   `db:"is_staff"`
	AuditFields
}
