package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
	"github.com/retailbank/bank_backend/internal/dto"
	"github.com/retailbank/bank_backend/internal/middleware"
)

// loanHandler handles the customer-facing loan endpoints.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// registerLoanRoutes registers routes for requesting and inspecting loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := &loanHandler{loanService: loanService}

	loans := rg.Group("/loans/:accountID")
	{
		loans.POST("/request-loan", h.requestLoan)
		loans.GET("/get-customer-loan", h.listCustomerLoans)
	}
}

func (h *loanHandler) requestLoan(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	var req dto.RequestLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	loan, err := h.loanService.RequestLoan(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RequestLoanResponse{
		LoanID:         loan.LoanID,
		MonthlyPayment: loan.MonthlyPayment,
		StartDate:      loan.StartDate,
		EndDate:        loan.EndDate,
	})
}

func (h *loanHandler) listCustomerLoans(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	loans, err := h.loanService.ListCustomerLoans(c.Request.Context(), c.Param("accountID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans, true))
}

// adminLoanHandler handles the staff-only loan administration endpoints.
type adminLoanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// registerAdminRoutes registers the staff-only administration routes.
func registerAdminRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := &adminLoanHandler{loanService: loanService}

	admin := rg.Group("/admin", middleware.RequireStaff())
	{
		admin.GET("/loan-requests", h.listPendingLoans)
		admin.POST("/loans/:loanID/approve-loan", h.approveLoan)
	}
}

func (h *adminLoanHandler) listPendingLoans(c *gin.Context) {
	loans, err := h.loanService.ListPendingLoans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans, false))
}

func (h *adminLoanHandler) approveLoan(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	loan, err := h.loanService.ApproveLoan(c.Request.Context(), c.Param("loanID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(*loan, false))
}
