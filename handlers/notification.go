package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"farmmarket/models"
	"farmmarket/services/notification"
	"farmmarket/services/tasks"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

// NotificationHandler exposes the notification pipeline over HTTP.
type NotificationHandler struct {
	Service  notification.NotificationService
	Reminder *asynq.Client
}

func NewNotificationHandler(svc notification.NotificationService, reminder *asynq.Client) *NotificationHandler {
	return &NotificationHandler{Service: svc, Reminder: reminder}
}

// currentUserID pulls the authenticated user ID set by the JWT middleware.
func currentUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	if !exists || raw == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return "", false
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in context"})
		return "", false
	}
	return userID, true
}

type sendNotificationRequest struct {
	UserID            string            `json:"userId" binding:"required"`
	Channel           string            `json:"channel" binding:"required,oneof=email push in_app"`
	Category          string            `json:"category" binding:"required,oneof=order product account marketing system"`
	Title             string            `json:"title"`
	Message           string            `json:"message"`
	TemplateName      string            `json:"templateName"`
	TemplateData      map[string]any    `json:"templateData"`
	Data              map[string]string `json:"data"`
	RecipientOverride string            `json:"recipientOverride"`
}

// SendNotificationHandler creates and dispatches a single notification.
func (h *NotificationHandler) SendNotificationHandler(c *gin.Context) {
	var req sendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notif, err := h.Service.SendNotification(c.Request.Context(), req.UserID, notification.SendInput{
		Channel:           models.NotificationChannel(req.Channel),
		Category:          models.NotificationCategory(req.Category),
		Title:             req.Title,
		Message:           req.Message,
		TemplateName:      req.TemplateName,
		TemplateData:      req.TemplateData,
		Data:              req.Data,
		RecipientOverride: req.RecipientOverride,
	})
	if err != nil {
		if errors.Is(err, notification.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if notif == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Notification blocked by user preferences"})
		return
	}

	c.JSON(http.StatusCreated, notif)
}

type bulkNotificationRequest struct {
	UserIDs      []string          `json:"userIds" binding:"required,min=1"`
	Channel      string            `json:"channel" binding:"required,oneof=email push in_app"`
	Category     string            `json:"category" binding:"required,oneof=order product account marketing system"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	TemplateName string            `json:"templateName"`
	TemplateData map[string]any    `json:"templateData"`
	Data         map[string]string `json:"data"`
}

// SendBulkNotificationHandler sends the same notification to many users.
func (h *NotificationHandler) SendBulkNotificationHandler(c *gin.Context) {
	var req bulkNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notifs, err := h.Service.SendBulkNotification(c.Request.Context(), req.UserIDs, notification.SendInput{
		Channel:      models.NotificationChannel(req.Channel),
		Category:     models.NotificationCategory(req.Category),
		Title:        req.Title,
		Message:      req.Message,
		TemplateName: req.TemplateName,
		TemplateData: req.TemplateData,
		Data:         req.Data,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": len(notifs), "notifications": notifs})
}

// ListNotificationsHandler returns the caller's notifications newest-first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts := notification.ListOptions{
		Channel:    models.NotificationChannel(c.Query("channel")),
		Category:   models.NotificationCategory(c.Query("category")),
		UnreadOnly: c.Query("unreadOnly") == "true",
	}
	if limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64); err == nil {
		opts.Limit = limit
	}
	if offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64); err == nil {
		opts.Offset = offset
	}

	notifs, err := h.Service.GetUserNotifications(c.Request.Context(), userID, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifs})
}

// UnreadCountHandler returns the caller's unread in-app count.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.Service.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}

// MarkAsReadHandler marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkAsReadHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	updated, err := h.Service.MarkAsRead(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// GetPreferencesHandler returns the caller's notification preferences.
func (h *NotificationHandler) GetPreferencesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	prefs, err := h.Service.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferencesHandler partially updates the caller's preferences.
func (h *NotificationHandler) UpdatePreferencesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var upd models.PreferencesUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.Service.UpdatePreferences(c.Request.Context(), userID, upd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

type registerDeviceTokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform" binding:"required,oneof=android ios web"`
}

// RegisterDeviceTokenHandler registers a push device token for the caller.
func (h *NotificationHandler) RegisterDeviceTokenHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req registerDeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Service.RegisterDeviceToken(c.Request.Context(), userID, req.Token, req.Platform)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, token)
}

type scheduleReminderRequest struct {
	UserID       string `json:"userId" binding:"required"`
	Channel      string `json:"channel" binding:"required,oneof=email push in_app"`
	Category     string `json:"category" binding:"required,oneof=order product account marketing system"`
	Title        string `json:"title" binding:"required"`
	Body         string `json:"body" binding:"required"`
	TemplateName string `json:"templateName"`
	FireAt       string `json:"fireAt" binding:"required"` // RFC 3339
}

// ScheduleReminderHandler enqueues a reminder notification for later delivery.
func (h *NotificationHandler) ScheduleReminderHandler(c *gin.Context) {
	var req scheduleReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fireAt, err := time.Parse(time.RFC3339, req.FireAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fireAt must be an RFC 3339 timestamp"})
		return
	}

	payload := models.ReminderPayload{
		UserID:       req.UserID,
		Channel:      models.NotificationChannel(req.Channel),
		Category:     models.NotificationCategory(req.Category),
		Title:        req.Title,
		Body:         req.Body,
		TemplateName: req.TemplateName,
		FireDate:     fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	info, err := h.Reminder.Enqueue(task, opts...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"taskId": info.ID, "fireAt": payload.FireDate})
}
