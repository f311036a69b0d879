package complaint_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/Aphia-Commerce/aphia-api/services"
	"github.com/gin-gonic/gin"
)

// ResolveComplaint godoc
// @Summary Resolve a complaint
// @Description Mark a complaint resolved by ticket number and notify the complainant
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ticketNo path string true "Ticket number"
// @Param payload body models.ResolveComplaintRequest true "Resolution message"
// @Success 200 {object} models.ApiResponse "Complaint resolved successfully"
// @Failure 400 {object} models.ApiResponse "Missing resolution message"
// @Failure 404 {object} models.ApiResponse "Complaint not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /complaints/{ticketNo}/resolve [patch]
func ResolveComplaint(c *gin.Context) {
	var req models.ResolveComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide required field"))
		return
	}

	ticketNo := c.Param("ticketNo")
	if ticketNo == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide Ticket No"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	complaint, err := complaints.GetByTicket(ctx, ticketNo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Complaint not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	if user, err := users.GetByID(ctx, complaint.UserID); err != nil {
		log.Printf("[complaint.resolve] could not load user %s for resolution email: %v", complaint.UserID, err)
	} else {
		mailer.DispatchAsync("complaint_resolved", services.BuildComplaintResolvedEmail(user, ticketNo, req.Message))
	}

	matched, err := complaints.MarkResolved(ctx, ticketNo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Complaint not found"))
		return
	}

	log.Printf("[complaint.resolve] ✅ ticket %s resolved", ticketNo)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Complaint resolved successfully"))
}
