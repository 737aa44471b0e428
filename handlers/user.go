package handlers

import (
	"errors"
	"net/http"

	"farmmarket/config"
	"farmmarket/models"
	"farmmarket/services/notification"
	"farmmarket/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account registration and authentication over HTTP.
type UserHandler struct {
	Service       user.UserService
	Notifications notification.NotificationService
}

func NewUserHandler(svc user.UserService, notifSvc notification.NotificationService) *UserHandler {
	return &UserHandler{Service: svc, Notifications: notifSvc}
}

// RegisterHandler creates a new account and sends the welcome notification.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.RegisterUser(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.sendWelcome(c, resp.User)

	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) sendWelcome(c *gin.Context, u *models.User) {
	base := config.AppConfig.FrontendURL

	// Data keys follow the seeded welcome templates per role.
	templateName := "welcome_buyer"
	data := map[string]any{
		"buyerName":      u.Name,
		"marketplaceUrl": base + "/products",
	}
	if u.Role == "farmer" {
		templateName = "welcome_farmer"
		data = map[string]any{
			"farmerName": u.Name,
			"guideUrl":   base + "/farmers/guide",
		}
	}

	// Welcome email failures never block registration.
	h.Notifications.SendNotification(c.Request.Context(), u.ID, notification.SendInput{
		Channel:      models.ChannelEmail,
		Category:     models.CategoryAccount,
		TemplateName: templateName,
		TemplateData: data,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates a user and returns a session token.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated user's profile.
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	u, err := h.Service.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, u)
}
