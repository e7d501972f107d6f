package handlers

import (
	"log"

	"commerce/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WatchlistHandler handles HTTP requests for the user's watchlist.
type WatchlistHandler struct {
	watchlistService *services.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService *services.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// RegisterRoutes registers the watchlist routes; all of them require auth.
func (h *WatchlistHandler) RegisterRoutes(router fiber.Router) {
	watchlistRoutes := router.Group("/watchlist")
	watchlistRoutes.Get("/", h.HandleGetWatchlist)
	watchlistRoutes.Post("/:listingID", h.HandleAdd)
	watchlistRoutes.Delete("/:listingID", h.HandleRemove)
}

// HandleGetWatchlist returns the user's tracked listings, most recently
// added first.
func (h *WatchlistHandler) HandleGetWatchlist(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	listings, err := h.watchlistService.WatchlistFor(userID)
	if err != nil {
		log.Printf("Error getting watchlist for user %s: %v", userID, err)
		return respondBusinessError(c, err)
	}
	return c.JSON(listings)
}

// HandleAdd tracks a listing. Repeating the add succeeds without effect.
func (h *WatchlistHandler) HandleAdd(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}
	listingID := c.Params("listingID")

	if err := h.watchlistService.AddToWatchlist(userID, listingID); err != nil {
		log.Printf("Error adding listing %s to watchlist: %v", listingID, err)
		return respondBusinessError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "This item has been added to your watchlist",
	})
}

// HandleRemove stops tracking a listing. Removing an untracked listing
// succeeds without effect.
func (h *WatchlistHandler) HandleRemove(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}
	listingID := c.Params("listingID")

	if err := h.watchlistService.RemoveFromWatchlist(userID, listingID); err != nil {
		log.Printf("Error removing listing %s from watchlist: %v", listingID, err)
		return respondBusinessError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "This item has been removed from your watchlist",
	})
}
