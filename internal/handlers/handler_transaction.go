package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
	"github.com/retailbank/bank_backend/internal/dto"
	"github.com/retailbank/bank_backend/internal/middleware"
)

// transactionHandler handles the balance-mutating endpoints.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerTransactionRoutes registers the deposit, withdraw, transfer and
// balance routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &transactionHandler{ledgerService: ledgerService}

	txns := rg.Group("/transactions/:accountID")
	{
		txns.PATCH("/deposit", h.deposit)
		txns.PATCH("/withdraw", h.withdraw)
		txns.PATCH("/transfer", h.transfer)
		txns.GET("/balance", h.getBalance)
	}
}

func (h *transactionHandler) deposit(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	newBalance, err := h.ledgerService.Deposit(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OperationResponse{
		Detail:     "deposit successful",
		NewBalance: newBalance,
	})
}

func (h *transactionHandler) withdraw(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	newBalance, err := h.ledgerService.Withdraw(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OperationResponse{
		Detail:     "withdrawal successful",
		NewBalance: newBalance,
	})
}

func (h *transactionHandler) transfer(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	newBalance, err := h.ledgerService.Transfer(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OperationResponse{
		Detail:     "transfer successful",
		NewBalance: newBalance,
	})
}

func (h *transactionHandler) getBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), c.Param("accountID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Balance:  balance.Amount,
		Currency: balance.Currency,
	})
}
