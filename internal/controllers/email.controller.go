package controllers

import (
	"log"
	"net/http"

	"recipehub/internal/utils"

	"github.com/gin-gonic/gin"
)

type EmailController struct {
	mailConfig utils.MailConfig
}

func NewEmailController() *EmailController {
	return &EmailController{mailConfig: utils.LoadMailConfig()}
}

type TestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// SendTestEmail sends a throwaway message so operators can verify the SMTP
// configuration. Unlike the notification paths, failures surface here.
func (ec *EmailController) SendTestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := utils.SendEmail(ec.mailConfig, req.To, "Test Email", "This is a test email sent from RecipeHub."); err != nil {
		log.Printf("Test email to %s failed: %v", req.To, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send test email",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Test email sent successfully",
		"data":    nil,
	})
}
