package handlers

import (
	"errors"
	"net/http"

	request "hvac_service/internal/adapter/http/dto/request"
	response "hvac_service/internal/adapter/http/dto/response"
	"hvac_service/internal/usecase"
	"hvac_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuoteID      = pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Quote id must be a positive integer", http.StatusBadRequest)
	errInvalidApprovalBody = pkg.NewDomainErrorSimple("INVALID_APPROVAL_INPUT", "user_id must be a positive integer", http.StatusBadRequest)
	errInvalidRejectBody   = pkg.NewDomainErrorSimple("INVALID_REJECT_INPUT", "Invalid reject payload", http.StatusBadRequest)
)

// QuoteHandler exposes the approval workflow to the quoting screens.
type QuoteHandler struct {
	usecase usecase.IQuoteApprovalUseCase
}

func NewQuoteHandler(uc usecase.IQuoteApprovalUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ApproveQuote godoc
// @Summary      Approve a quote
// @Description  Validates the quote, provisions equipment or reserves a unit for service, creates the work order and marks the quote approved, all in one transaction.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      int                          true  "Quote ID"
// @Param        body  body      request.ApproveQuoteRequest  true  "Approving user"
// @Success      200   {object}  response.ApprovalResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /quotes/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	quoteID, err := request.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidQuoteID.HTTPStatus, errInvalidQuoteID.ToHTTPError())
		return
	}

	var payload request.ApproveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalBody.HTTPStatus, errInvalidApprovalBody.ToHTTPError())
		return
	}
	userID, err := payload.ResolveUserID()
	if err != nil {
		c.JSON(errInvalidApprovalBody.HTTPStatus, errInvalidApprovalBody.ToHTTPError())
		return
	}

	result, err := h.usecase.Approve(c.Request.Context(), quoteID, userID)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalResult(result))
}

// RejectQuote godoc
// @Summary      Reject a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      int                         true   "Quote ID"
// @Param        body  body      request.RejectQuoteRequest  false  "Rejection reason"
// @Success      200   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	quoteID, err := request.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidQuoteID.HTTPStatus, errInvalidQuoteID.ToHTTPError())
		return
	}

	var payload request.RejectQuoteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRejectBody.HTTPStatus, errInvalidRejectBody.ToHTTPError())
			return
		}
	}

	quote, err := h.usecase.Reject(c.Request.Context(), quoteID, payload.ResolveReason())
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// DeleteQuote godoc
// @Summary      Soft-delete a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      int  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/delete [patch]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	quoteID, err := request.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidQuoteID.HTTPStatus, errInvalidQuoteID.ToHTTPError())
		return
	}

	quote, err := h.usecase.Delete(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// mapApprovalError renders use case errors for both the quote and inventory endpoints.
func mapApprovalError(err error) *pkg.AppError {
	var stockErr *usecase.InsufficientStockError
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidInventoryItemID), errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("INVENTORY_ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyApproved):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_APPROVED", "Quote already approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyDeleted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_DELETED", "Quote already deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyTerminal):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrApprovalInProgress):
		return pkg.NewDomainErrorSimple("APPROVAL_IN_PROGRESS", "Quote approval already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateWorkOrder):
		return pkg.NewDomainErrorSimple("WORK_ORDER_EXISTS", "A work order already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Record changed concurrently, retry the operation", http.StatusConflict)
	case errors.As(err, &stockErr):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", stockErr.Error(), http.StatusUnprocessableEntity).
			WithDetails(map[string]any{
				"inventory_item_id": stockErr.ItemID,
				"item":              stockErr.ItemName,
				"available":         stockErr.Available,
				"requested":         stockErr.Requested,
			})
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", validationErr.Reason, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoEligibleEquipment), errors.Is(err, usecase.ErrNoEquipmentCreated), errors.Is(err, usecase.ErrValidationFailed):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
