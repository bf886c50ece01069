package mapping

import (
	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/retailbank/bank_backend/internal/models"
)

// ToModelUser converts a domain.User to its DB representation.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		IsStaff:      d.IsStaff,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a DB user row to its domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		IsStaff:      m.IsStaff,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
