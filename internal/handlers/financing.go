// internal/handlers/financing.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kserge2001/AfricanEstates/internal/services"
	"github.com/kserge2001/AfricanEstates/internal/utils"
)

type FinancingHandler struct {
	financingService *services.FinancingService
}

func NewFinancingHandler(financingService *services.FinancingService) *FinancingHandler {
	return &FinancingHandler{
		financingService: financingService,
	}
}

// POST /api/financing
func (h *FinancingHandler) SubmitRequest(c *gin.Context) {
	var req services.FinancingRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid financing request", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	receipt, err := h.financingService.Submit(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to submit financing request")
		return
	}

	utils.CreatedResponse(c, receipt)
}
