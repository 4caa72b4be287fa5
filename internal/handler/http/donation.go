package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HaqueArif/shine-on-server/internal/domain"
	"github.com/HaqueArif/shine-on-server/internal/service"
)

// DonationHandler serves the donation endpoints.
type DonationHandler struct {
	donationService *service.DonationService
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(donationService *service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

// Report handles GET /api/auth/donate: month-by-month totals over the
// rolling three-month window plus the full raw record list.
func (h *DonationHandler) Report(c *gin.Context) {
	monthlyData, data, err := h.donationService.Report(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	if data == nil {
		data = []domain.Donation{}
	}
	c.JSON(http.StatusOK, gin.H{
		"monthlyData": monthlyData,
		"data":        data,
	})
}

// Create handles POST /api/auth/donate. The whole body becomes donationInfo.
func (h *DonationHandler) Create(c *gin.Context) {
	var donationInfo map[string]any
	if err := c.ShouldBindJSON(&donationInfo); err != nil {
		logrus.WithError(err).Warn("Handler.CreateDonation: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.donationService.Create(c.Request.Context(), donationInfo); err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "New supply added successful",
	})
}
