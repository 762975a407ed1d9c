package api

import (
	"errors"
	"net/http"

	resdto "club-portal/internal/handler/dto/response"
	"club-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberUseCase  usecase.MemberUseCase
	kitchenUseCase usecase.KitchenUseCase
}

func NewMemberHandler(memberUseCase usecase.MemberUseCase, kitchenUseCase usecase.KitchenUseCase) *MemberHandler {
	return &MemberHandler{
		memberUseCase:  memberUseCase,
		kitchenUseCase: kitchenUseCase,
	}
}

// @Summary Member directory
// @Tags members
// @Produce json
// @Success 200 {array} resdto.PersonResponse
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberUseCase.ListMembers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PersonResponse, len(members))
	for i, rm := range members {
		response[i] = resdto.FromPerson(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Prospective profile
// @Description A prospective's record plus the meals they ate this month
// @Tags members
// @Produce json
// @Param netid path string true "NetID"
// @Success 200 {object} resdto.ProspectiveProfileResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /prospectives/{netid} [get]
func (h *MemberHandler) ProspectiveProfile(c *gin.Context) {
	profile, err := h.kitchenUseCase.ProspectiveProfile(c.Request.Context(), c.Param("netid"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProspectiveNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Prospective not found",
			})
		case errors.Is(err, usecase.ErrNotProspective):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Person is not in the prospective pipeline",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProspectiveProfile(profile))
}
