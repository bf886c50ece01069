package domain

// User is a registered customer or staff member.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Email        string `json:"email"`  // Unique
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsStaff      bool   `json:"isStaff"` // Staff users may approve loans
	AuditFields
}
