package request

import "github.com/google/uuid"

// MealSignupRequest identifies the prospective by netid: the portal sits
// behind the university SSO proxy, which is outside this service.
type MealSignupRequest struct {
	NetID  string    `json:"netid" binding:"required,alphanum"`
	MealID uuid.UUID `json:"mealId" binding:"required"`
}
