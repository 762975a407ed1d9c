package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"club-portal/internal/domain/kitchen"
	reqdto "club-portal/internal/handler/dto/request"
	resdto "club-portal/internal/handler/dto/response"
	"club-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type KitchenHandler struct {
	kitchenUseCase usecase.KitchenUseCase
}

func NewKitchenHandler(kitchenUseCase usecase.KitchenUseCase) *KitchenHandler {
	return &KitchenHandler{
		kitchenUseCase: kitchenUseCase,
	}
}

// @Summary Weekly menu
// @Description Menu for the week containing today
// @Tags kitchen
// @Produce json
// @Success 200 {object} resdto.WeekResponse
// @Router /kitchen/menu [get]
func (h *KitchenHandler) WeeklyMenu(c *gin.Context) {
	week, err := h.kitchenUseCase.WeeklyMenu(c.Request.Context())
	h.respondWeek(c, week, err)
}

// @Summary Weekly menu for a date
// @Description Menu for the week containing the given date
// @Tags kitchen
// @Produce json
// @Param date path string true "Anchor date (YYYY-MM-DD)"
// @Success 200 {object} resdto.WeekResponse
// @Failure 400 {object} map[string]string
// @Router /kitchen/menu/{date} [get]
func (h *KitchenHandler) WeeklyMenuForDate(c *gin.Context) {
	anchor, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}
	week, err := h.kitchenUseCase.WeeklyMenuFor(c.Request.Context(), anchor)
	h.respondWeek(c, week, err)
}

func (h *KitchenHandler) respondWeek(c *gin.Context, week kitchen.Week, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeek(week))
}

// @Summary Signup availability
// @Description Which future dates still have sophomore capacity, with hover text per day
// @Tags kitchen
// @Produce json
// @Success 200 {object} resdto.AvailabilityResponse
// @Router /kitchen/availability [get]
func (h *KitchenHandler) Availability(c *gin.Context) {
	view, err := h.kitchenUseCase.Availability(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(view))
}

// @Summary Meal counts for a day
// @Description Attendance and limit per meal kind; (-1,-1) marks a kind with no meal
// @Tags kitchen
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month"
// @Param day path int true "Day"
// @Success 200 {object} kitchen.MealCounts
// @Failure 400 {object} map[string]string
// @Router /kitchen/meals/{year}/{month}/{day} [get]
func (h *KitchenHandler) MealCounts(c *gin.Context) {
	year, errY := strconv.Atoi(c.Param("year"))
	month, errM := strconv.Atoi(c.Param("month"))
	day, errD := strconv.Atoi(c.Param("day"))
	if errY != nil || errM != nil || errD != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Year, month and day must be integers",
		})
		return
	}

	counts, err := h.kitchenUseCase.MealCounts(c.Request.Context(), year, month, day)
	if err != nil {
		switch {
		case errors.Is(err, kitchen.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid calendar date",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Meal signup
// @Description Sign a prospective up for a meal while it has sophomore capacity
// @Tags kitchen
// @Accept json
// @Produce json
// @Param request body reqdto.MealSignupRequest true "Signup request"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /kitchen/signup [post]
func (h *KitchenHandler) Signup(c *gin.Context) {
	var req reqdto.MealSignupRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entry, err := h.kitchenUseCase.Signup(c.Request.Context(), req.NetID, req.MealID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProspectiveNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Prospective not found",
			})
		case errors.Is(err, usecase.ErrNotProspective):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Meal signup is only open to prospectives",
			})
		case errors.Is(err, usecase.ErrMealNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Meal not found",
			})
		case errors.Is(err, usecase.ErrMealFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Meal has reached its sophomore limit",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEntry(entry))
}
