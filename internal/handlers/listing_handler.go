package handlers

import (
	"log"

	"commerce/internal/models"
	"commerce/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ListingHandler handles HTTP requests for listings, bids, and comments.
type ListingHandler struct {
	listingService   *services.ListingService
	auctionService   *services.AuctionService
	commentService   *services.CommentService
	watchlistService *services.WatchlistService
	validate         *validator.Validate
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(
	listingService *services.ListingService,
	auctionService *services.AuctionService,
	commentService *services.CommentService,
	watchlistService *services.WatchlistService,
) *ListingHandler {
	return &ListingHandler{
		listingService:   listingService,
		auctionService:   auctionService,
		commentService:   commentService,
		watchlistService: watchlistService,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the public listing routes with the Fiber app.
func (h *ListingHandler) RegisterRoutes(router fiber.Router) {
	listingRoutes := router.Group("/listings")
	listingRoutes.Get("/", h.HandleGetActiveListings)
	listingRoutes.Get("/closed", h.HandleGetClosedListings)
	listingRoutes.Get("/:id", h.HandleGetListing)
	listingRoutes.Get("/:id/bids", h.HandleGetBids)
}

// RegisterProtectedRoutes registers the mutating listing routes, which must
// sit behind the auth middleware.
func (h *ListingHandler) RegisterProtectedRoutes(router fiber.Router) {
	listingRoutes := router.Group("/listings")
	listingRoutes.Post("/", h.HandleCreateListing)
	listingRoutes.Post("/:id/close", h.HandleCloseListing)
	listingRoutes.Post("/:id/bids", h.HandlePlaceBid)
	listingRoutes.Post("/:id/comments", h.HandlePostComment)
}

// HandleGetActiveListings retrieves all open listings.
func (h *ListingHandler) HandleGetActiveListings(c *fiber.Ctx) error {
	listings, err := h.listingService.GetActiveListings()
	if err != nil {
		log.Printf("Error getting active listings: %v", err)
		return respondBusinessError(c, err)
	}
	return c.JSON(listings)
}

// HandleGetClosedListings retrieves all closed listings.
func (h *ListingHandler) HandleGetClosedListings(c *fiber.Ctx) error {
	listings, err := h.listingService.GetClosedListings()
	if err != nil {
		log.Printf("Error getting closed listings: %v", err)
		return respondBusinessError(c, err)
	}
	return c.JSON(listings)
}

// HandleGetListing renders the listing detail: the listing itself, its
// derived price facts, its comments, and whether the viewer watches it.
func (h *ListingHandler) HandleGetListing(c *fiber.Ctx) error {
	listingID := c.Params("id")

	listing, err := h.listingService.GetListingByID(listingID)
	if err != nil {
		return respondBusinessError(c, err)
	}

	facts, err := h.auctionService.GetPriceFacts(listingID)
	if err != nil {
		log.Printf("Error deriving price facts for listing %s: %v", listingID, err)
		return respondBusinessError(c, err)
	}

	comments, err := h.commentService.GetCommentsForListing(listingID)
	if err != nil {
		log.Printf("Error getting comments for listing %s: %v", listingID, err)
		return respondBusinessError(c, err)
	}

	// Viewer identity is optional here; the detail page works logged out.
	inWatchlist := false
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		inWatchlist, err = h.watchlistService.IsWatchlisted(userID, listingID)
		if err != nil {
			log.Printf("Error checking watchlist for listing %s: %v", listingID, err)
			return respondBusinessError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"listing":      listing,
		"price":        facts,
		"comments":     comments,
		"in_watchlist": inWatchlist,
	})
}

// CreateListingRequest represents the request body for creating a listing.
type CreateListingRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=150"`
	Description   string  `json:"description" validate:"max=2000"`
	StartingPrice string  `json:"starting_price" validate:"required"`
	CategoryID    *string `json:"category_id" validate:"omitempty,uuid"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
}

// HandleCreateListing creates a new listing owned by the authenticated user.
func (h *ListingHandler) HandleCreateListing(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create listing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	startingPrice, err := decimal.NewFromString(req.StartingPrice)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid starting price",
			"error":   err.Error(),
		})
	}

	listing := models.Listing{
		OwnerID:       userID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: startingPrice,
		ImageURL:      req.ImageURL,
	}
	if err := h.listingService.CreateListing(&listing); err != nil {
		log.Printf("Error creating listing: %v", err)
		return respondBusinessError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(listing)
}

// HandleCloseListing ends the auction for a listing the user owns.
func (h *ListingHandler) HandleCloseListing(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}
	listingID := c.Params("id")

	if err := h.auctionService.CloseListing(listingID, userID); err != nil {
		log.Printf("Error closing listing %s: %v", listingID, err)
		return respondBusinessError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Listing closed",
	})
}

// PlaceBidRequest represents the request body for placing a bid.
type PlaceBidRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// HandlePlaceBid submits a bid on a listing for the authenticated user.
func (h *ListingHandler) HandlePlaceBid(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}
	listingID := c.Params("id")

	var req PlaceBidRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing bid request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid bid amount",
		})
	}

	bid, err := h.auctionService.PlaceBid(listingID, userID, amount)
	if err != nil {
		log.Printf("Error placing bid on listing %s: %v", listingID, err)
		return respondBusinessError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(bid)
}

// HandleGetBids retrieves a listing's bid history, oldest first.
func (h *ListingHandler) HandleGetBids(c *fiber.Ctx) error {
	listingID := c.Params("id")
	bids, err := h.auctionService.GetBidsForListing(listingID)
	if err != nil {
		log.Printf("Error getting bids for listing %s: %v", listingID, err)
		return respondBusinessError(c, err)
	}
	return c.JSON(bids)
}

// PostCommentRequest represents the request body for posting a comment.
type PostCommentRequest struct {
	Body string `json:"body"`
}

// HandlePostComment records a comment on a listing.
func (h *ListingHandler) HandlePostComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}
	listingID := c.Params("id")

	var req PostCommentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing comment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	comment, err := h.commentService.PostComment(listingID, userID, req.Body)
	if err != nil {
		log.Printf("Error posting comment on listing %s: %v", listingID, err)
		return respondBusinessError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
