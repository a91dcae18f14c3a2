package handlers

import (
	"net/http"

	request "hvac_service/internal/adapter/http/dto/request"
	response "hvac_service/internal/adapter/http/dto/response"
	"hvac_service/internal/usecase"
	"hvac_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidItemID       = pkg.NewDomainErrorSimple("INVALID_INVENTORY_ITEM_ID", "Inventory item id must be a positive integer", http.StatusBadRequest)
	errInvalidQuantity     = pkg.NewDomainErrorSimple("INVALID_QUANTITY", "quantity must be a positive integer", http.StatusBadRequest)
	errInvalidRestockInput = pkg.NewDomainErrorSimple("INVALID_RESTOCK_INPUT", "Invalid restock payload", http.StatusBadRequest)
)

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

// CheckAvailability godoc
// @Summary      Check whether an item can cover a quantity
// @Tags         inventory
// @Produce      json
// @Param        id        path      int  true   "Inventory item ID"
// @Param        quantity  query     int  false  "Units requested (default 1)"
// @Success      200       {object}  response.AvailabilityResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /inventory/{id}/availability [get]
func (h *InventoryHandler) CheckAvailability(c *gin.Context) {
	itemID, err := request.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidItemID.HTTPStatus, errInvalidItemID.ToHTTPError())
		return
	}
	quantity, err := request.ParseQuantity(c.DefaultQuery("quantity", "1"))
	if err != nil {
		c.JSON(errInvalidQuantity.HTTPStatus, errInvalidQuantity.ToHTTPError())
		return
	}

	availability, err := h.usecase.CheckStock(c.Request.Context(), itemID, quantity)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAvailability(availability, quantity))
}

// Restock godoc
// @Summary      Add units to an inventory item
// @Description  Increments stock and marks the item available.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Inventory item ID"
// @Param        body  body      request.RestockRequest  true  "Units received"
// @Success      200   {object}  response.InventoryItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /inventory/{id}/restock [post]
func (h *InventoryHandler) Restock(c *gin.Context) {
	itemID, err := request.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidItemID.HTTPStatus, errInvalidItemID.ToHTTPError())
		return
	}

	var payload request.RestockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRestockInput.HTTPStatus, errInvalidRestockInput.ToHTTPError())
		return
	}
	quantity, err := payload.ResolveQuantity()
	if err != nil {
		c.JSON(errInvalidQuantity.HTTPStatus, errInvalidQuantity.ToHTTPError())
		return
	}

	item, err := h.usecase.Restock(c.Request.Context(), itemID, quantity)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}
