package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailbank/bank_backend/internal/apperrors"
	"github.com/retailbank/bank_backend/internal/core/domain"
	portsrepo "github.com/retailbank/bank_backend/internal/core/ports/repositories"
	"github.com/retailbank/bank_backend/internal/platform/config"
	"github.com/retailbank/bank_backend/internal/utils"
)

// Bootstrap ensures the staff user and the bank-owner reservoir account
// exist. Loan disbursement draws from the reservoir, so a bank without it
// cannot originate loans. Safe to run on every startup.
func Bootstrap(ctx context.Context, cfg *config.Config, repos *portsrepo.RepositoryProvider, logger *slog.Logger) error {
	admin, err := ensureAdminUser(ctx, cfg, repos, logger)
	if err != nil {
		return err
	}
	return ensureBankOwnerAccount(ctx, cfg, repos, admin, logger)
}

func ensureAdminUser(ctx context.Context, cfg *config.Config, repos *portsrepo.RepositoryProvider, logger *slog.Logger) (*domain.User, error) {
	existing, err := repos.UserRepo.FindUserByEmail(ctx, cfg.SeedAdminEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	if cfg.SeedAdminPassword == "" {
		return nil, fmt.Errorf("SEED_ADMIN_PASSWORD must be set to bootstrap the admin user")
	}

	hash, err := utils.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Email:        cfg.SeedAdminEmail,
		Name:         "Bank Administrator",
		PasswordHash: hash,
		IsStaff:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	admin.CreatedBy = admin.UserID
	admin.LastUpdatedBy = admin.UserID

	if err := repos.UserRepo.SaveUser(ctx, admin); err != nil {
		// A concurrent instance may have won the race
		if errors.Is(err, apperrors.ErrDuplicate) {
			return repos.UserRepo.FindUserByEmail(ctx, cfg.SeedAdminEmail)
		}
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Seeded admin user", slog.String("email", cfg.SeedAdminEmail))
	return &admin, nil
}

func ensureBankOwnerAccount(ctx context.Context, cfg *config.Config, repos *portsrepo.RepositoryProvider, admin *domain.User, logger *slog.Logger) error {
	_, err := repos.AccountRepo.FindBankOwnerAccount(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up bank owner account: %w", err)
	}

	reserve, err := decimal.NewFromString(cfg.SeedReserveBalance)
	if err != nil {
		return fmt.Errorf("invalid SEED_RESERVE_BALANCE %q: %w", cfg.SeedReserveBalance, err)
	}

	accountNumber, err := utils.GenerateAccountNumber()
	if err != nil {
		return fmt.Errorf("failed to generate reservoir account number: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		AccountNumber:  accountNumber,
		UserID:         admin.UserID,
		Balance:        reserve,
		Status:         domain.AccountActive,
		AccountType:    domain.AccountIndividual,
		CurrencyCode:   "USD",
		OverdraftLimit: decimal.Zero,
		IsBankOwner:    true,
		OpenedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     admin.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: admin.UserID,
		},
	}

	if err := repos.AccountRepo.SaveAccount(ctx, account); err != nil {
		// The partial unique index rejects a second bank-owner row, so a
		// concurrent instance winning the race is fine.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create bank owner account: %w", err)
	}

	logger.Info("Seeded bank owner account",
		slog.String("account_id", account.AccountID),
		slog.String("balance", reserve.String()))
	return nil
}
