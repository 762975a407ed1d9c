package api

import (
	"errors"
	"net/http"

	reqdto "club-portal/internal/handler/dto/request"
	resdto "club-portal/internal/handler/dto/response"
	"club-portal/internal/handler/middleware"
	"club-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GearHandler struct {
	gearUseCase usecase.GearUseCase
}

func NewGearHandler(gearUseCase usecase.GearUseCase) *GearHandler {
	return &GearHandler{
		gearUseCase: gearUseCase,
	}
}

// @Summary List gear
// @Description In-stock merchandise, one card per product name with its sizes
// @Tags gear
// @Produce json
// @Success 200 {array} resdto.GearListItemResponse
// @Router /gear [get]
func (h *GearHandler) ListGear(c *gin.Context) {
	items, err := h.gearUseCase.ListGear(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.GearListItemResponse, len(items))
	for i, rm := range items {
		response[i] = resdto.FromGearListItem(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary View cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *GearHandler) ViewCart(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(h.gearUseCase.ViewCart(sessionID)))
}

// @Summary Add to cart
// @Description Admit a quantity while the cart total stays within current inventory
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item and quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *GearHandler) AddToCart(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cart, err := h.gearUseCase.AddToCart(c.Request.Context(), sessionID, req.Key(), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gear item not found",
			})
		case errors.Is(err, usecase.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
		case errors.Is(err, usecase.ErrInsufficientInventory):
			c.JSON(http.StatusConflict, gin.H{
				"error": "The amount requested is more than the amount we currently have",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

// @Summary Remove one unit
// @Description Decrement the matching line by one; inventory is untouched
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.RemoveCartItemRequest true "Item to decrement"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/remove-one [post]
func (h *GearHandler) RemoveOneFromCart(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RemoveCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cart := h.gearUseCase.RemoveOneFromCart(sessionID, req.Key())
	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *GearHandler) ClearCart(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.gearUseCase.ClearCart(sessionID)
	c.JSON(http.StatusOK, resdto.FromCart(h.gearUseCase.ViewCart(sessionID)))
}

// @Summary Checkout
// @Description Freeze the cart into the payment form fields for the gateway
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Router /cart/checkout [get]
func (h *GearHandler) Checkout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	checkout, err := h.gearUseCase.Checkout(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckout(checkout))
}
