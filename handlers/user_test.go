package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"farmmarket/config"
	"farmmarket/models"
	"farmmarket/services/notification"
	"farmmarket/services/user"

	"github.com/gin-gonic/gin"
)

type stubUserService struct{}

func (s *stubUserService) RegisterUser(ctx context.Context, reg models.UserRegistration) (*user.AuthResponse, error) {
	role := reg.Role
	if role == "" {
		role = "buyer"
	}
	u := &models.User{
		ID:        "u-" + role,
		Name:      reg.Name,
		Email:     reg.Email,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return &user.AuthResponse{Token: "token", User: u}, nil
}

func (s *stubUserService) AuthenticateUser(ctx context.Context, email, password string) (*user.AuthResponse, error) {
	return nil, user.ErrInvalidCredentials
}

func (s *stubUserService) GetUserByID(id string) (*models.User, error) { return nil, nil }

func (s *stubUserService) ListUsers(ctx context.Context) ([]models.User, error) { return nil, nil }

// recordingNotifier captures SendNotification calls so tests can inspect
// what the handler hands to the orchestrator.
type recordingNotifier struct {
	mu     sync.Mutex
	userID string
	input  notification.SendInput
}

func (r *recordingNotifier) SendNotification(ctx context.Context, userID string, in notification.SendInput) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userID = userID
	r.input = in
	return &models.Notification{ID: "n1", UserID: userID}, nil
}

func (r *recordingNotifier) SendBulkNotification(ctx context.Context, userIDs []string, in notification.SendInput) ([]models.Notification, error) {
	return nil, nil
}

func (r *recordingNotifier) GetUserNotifications(ctx context.Context, userID string, opts notification.ListOptions) ([]models.Notification, error) {
	return nil, nil
}

func (r *recordingNotifier) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (r *recordingNotifier) MarkAsRead(ctx context.Context, notificationID, userID string) (bool, error) {
	return false, nil
}

func (r *recordingNotifier) GetPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error) {
	return nil, nil
}

func (r *recordingNotifier) UpdatePreferences(ctx context.Context, userID string, upd models.PreferencesUpdate) (*models.NotificationPreferences, error) {
	return nil, nil
}

func (r *recordingNotifier) RegisterDeviceToken(ctx context.Context, userID, token, platform string) (*models.DeviceToken, error) {
	return nil, nil
}

func (r *recordingNotifier) SeedDefaultTemplates(ctx context.Context) error { return nil }

func (r *recordingNotifier) captured() (string, notification.SendInput) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.userID, r.input
}

func registerUser(t *testing.T, notifier *recordingNotifier, role string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewUserHandler(&stubUserService{}, notifier)
	router := gin.New()
	router.POST("/api/users/register", h.RegisterHandler)

	body, _ := json.Marshal(models.UserRegistration{
		Name:     "Amina Hassan",
		Email:    "amina@example.com",
		Password: "hunter2hunter2",
		Role:     role,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func findTemplate(t *testing.T, name string) *models.NotificationTemplate {
	t.Helper()
	for _, tmpl := range notification.DefaultTemplates() {
		if tmpl.Name == name {
			return &tmpl
		}
	}
	t.Fatalf("template %q not in the default catalog", name)
	return nil
}

func TestRegisterSendsRenderableWelcome(t *testing.T) {
	config.AppConfig.FrontendURL = "https://farmersmarketplace.com"

	cases := []struct {
		role     string
		template string
	}{
		{"buyer", "welcome_buyer"},
		{"farmer", "welcome_farmer"},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			notifier := &recordingNotifier{}
			w := registerUser(t, notifier, tc.role)
			if w.Code != http.StatusCreated {
				t.Fatalf("register status = %d, want %d", w.Code, http.StatusCreated)
			}

			userID, in := notifier.captured()
			if userID != "u-"+tc.role {
				t.Fatalf("welcome sent to %q, want %q", userID, "u-"+tc.role)
			}
			if in.Channel != models.ChannelEmail || in.Category != models.CategoryAccount {
				t.Fatalf("welcome channel/category = %s/%s", in.Channel, in.Category)
			}
			if in.TemplateName != tc.template {
				t.Fatalf("welcome template = %q, want %q", in.TemplateName, tc.template)
			}

			// The data the handler passes must satisfy the seeded template:
			// a failed render falls back to the generic subject with raw
			// placeholders in the body.
			tmpl := findTemplate(t, in.TemplateName)
			subject, msg := notification.Render(tmpl, in.TemplateData)
			if subject != "Welcome to Farmers Marketplace!" {
				t.Fatalf("rendered subject = %q, want the welcome subject", subject)
			}
			if strings.Contains(msg, "{{") {
				t.Fatalf("rendered body still has placeholders: %q", msg)
			}
			if !strings.Contains(msg, "Amina Hassan") {
				t.Fatalf("rendered body does not mention the user: %q", msg)
			}
		})
	}
}
