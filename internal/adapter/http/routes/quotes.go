package routes

import (
	"hvac_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathInventory = "/inventory"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, inventoryHandler *handlers.InventoryHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/delete", quoteHandler.DeleteQuote)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.GET("/:id/availability", inventoryHandler.CheckAvailability)
		inventory.POST("/:id/restock", inventoryHandler.Restock)
	}
}
