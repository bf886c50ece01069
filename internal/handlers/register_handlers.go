package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
	"github.com/retailbank/bank_backend/internal/middleware"
	"github.com/retailbank/bank_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerHomeRoutes(r)
	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the JWT-protected /api/v1 group and delegates
// to the entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, services.Account, services.Ledger)
	registerTransactionRoutes(v1, services.Ledger)
	registerLoanRoutes(v1, services.Loan)
	registerAdminRoutes(v1, services.Loan)
	registerUserRoutes(v1, services.User)
}
