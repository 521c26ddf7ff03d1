// Package http provides HTTP handlers for the vault operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/panvault/internal/auth/http"
	"github.com/allisson/panvault/internal/httputil"
	"github.com/allisson/panvault/internal/tokenization/http/dto"
	tokenizationUseCase "github.com/allisson/panvault/internal/tokenization/usecase"
	customValidation "github.com/allisson/panvault/internal/validation"
)

// VaultHandler handles HTTP requests for tokenize, detokenize, charge and purchase listing.
// Authentication is resolved by the middleware; the outcome is handed to the use case so
// that refusals are audited there.
type VaultHandler struct {
	vaultUseCase tokenizationUseCase.VaultUseCase
	logger       *slog.Logger
}

// NewVaultHandler creates a new vault handler with required dependencies.
func NewVaultHandler(
	vaultUseCase tokenizationUseCase.VaultUseCase,
	logger *slog.Logger,
) *VaultHandler {
	return &VaultHandler{
		vaultUseCase: vaultUseCase,
		logger:       logger,
	}
}

// TokenizeHandler stores a PAN and returns its token.
// POST /tokenize - Returns 200 OK with {"token"}.
func (h *VaultHandler) TokenizeHandler(c *gin.Context) {
	var req dto.TokenizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	ctx := c.Request.Context()
	token, err := h.vaultUseCase.Tokenize(ctx, authHTTP.IsAuthorized(ctx), *req.PAN)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenizeResponse{Token: token})
}

// DetokenizeHandler returns the PAN stored under a token.
// POST /detokenize - Returns 200 OK with {"pan"}.
func (h *VaultHandler) DetokenizeHandler(c *gin.Context) {
	var req dto.DetokenizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	ctx := c.Request.Context()
	pan, err := h.vaultUseCase.Detokenize(ctx, authHTTP.IsAuthorized(ctx), *req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DetokenizeResponse{PAN: pan})
}

// ChargeHandler records a charge against a token.
// POST /charge - Returns 200 OK with the charge receipt.
func (h *VaultHandler) ChargeHandler(c *gin.Context) {
	var req dto.ChargeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	ctx := c.Request.Context()
	receipt, err := h.vaultUseCase.Charge(ctx, authHTTP.IsAuthorized(ctx), *req.Token, *req.Amount)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapReceiptToChargeResponse(receipt))
}

// ListPurchasesHandler lists ledger records in append order.
// GET /purchases?token=&offset=0&limit=100 - Returns 200 OK with {"data":[...]}.
func (h *VaultHandler) ListPurchasesHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	ctx := c.Request.Context()
	records, err := h.vaultUseCase.ListPurchases(
		ctx,
		authHTTP.IsAuthorized(ctx),
		c.Query("token"),
		offset,
		limit,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPurchasesToListResponse(records))
}
