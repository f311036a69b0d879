package complaint_controller

import (
	"log"
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/services"
	"github.com/Aphia-Commerce/aphia-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type makeComplaintRequest struct {
	Description string `json:"description"`
	OrderNo     string `json:"order_no"`
}

// MakeComplaint godoc
// @Summary File a complaint
// @Description File a complaint and receive a ticket number; the complainant is notified by email
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param complaint body makeComplaintRequest true "Complaint details"
// @Success 201 {object} models.ApiResponse "Complaint received"
// @Failure 400 {object} models.ApiResponse "Missing required fields"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /complaints [post]
func MakeComplaint(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req makeComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if req.Description == "" || req.OrderNo != "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide required fields"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	complaint := models.Complaint{
		UserID:      userID,
		Description: req.Description,
		OrderNo:     req.OrderNo,
		TicketNo:    utils.NewTicketNo(),
	}

	if err := complaints.Create(ctx, &complaint); err != nil {
		log.Printf("[complaint.create] ❌ failed to create complaint: %v", err)
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	mailer.DispatchAsync("complaint_received", services.BuildComplaintReceivedEmail(user, complaint.TicketNo))

	log.Printf("[complaint.create] ✅ ticket %s opened by user %s", complaint.TicketNo, userID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, gin.H{
		"info":      "Your complaint has been received",
		"ticket_no": complaint.TicketNo,
	}))
}
