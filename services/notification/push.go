package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"farmmarket/config"
	"farmmarket/utils"

	"go.uber.org/zap"
)

// fcmEndpoint is the legacy FCM send gateway.
const fcmEndpoint = "https://fcm.googleapis.com/fcm/send"

// PushProvider hands a push notification to the platform transport.
type PushProvider interface {
	Send(token, platform, title, body string, data map[string]string) bool
}

// FCMPushProvider delivers Android pushes through the legacy FCM HTTP
// gateway. iOS and web delivery are placeholders: they log and report a
// deterministic success without performing real delivery.
type FCMPushProvider struct {
	ServerKey string
	Endpoint  string
	Client    *http.Client
}

// NewFCMPushProvider builds a push provider from the loaded config.
func NewFCMPushProvider() *FCMPushProvider {
	return &FCMPushProvider{
		ServerKey: config.AppConfig.FCMServerKey,
		Endpoint:  fcmEndpoint,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Send dispatches per platform. Unsupported platforms and transport errors
// are logged and reported as false, never raised.
func (p *FCMPushProvider) Send(token, platform, title, body string, data map[string]string) bool {
	logger := utils.GetLogger()

	switch strings.ToLower(platform) {
	case "android":
		return p.sendFCM(token, title, body, data)
	case "ios":
		logger.Info("APNS notification would be sent",
			zap.String("token", token), zap.String("title", title))
		return true
	case "web":
		logger.Info("Web push notification would be sent",
			zap.String("token", token), zap.String("title", title))
		return true
	default:
		logger.Warn("Unsupported push platform", zap.String("platform", platform))
		return false
	}
}

type fcmPayload struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (p *FCMPushProvider) sendFCM(token, title, body string, data map[string]string) bool {
	logger := utils.GetLogger()

	if p.ServerKey == "" {
		logger.Warn("FCM server key not configured")
		return false
	}

	if data == nil {
		data = map[string]string{}
	}
	payload, err := json.Marshal(fcmPayload{
		To:           token,
		Notification: fcmNotification{Title: title, Body: body},
		Data:         data,
	})
	if err != nil {
		logger.Error("Failed to encode FCM payload", zap.Error(err))
		return false
	}

	req, err := http.NewRequest(http.MethodPost, p.Endpoint, bytes.NewReader(payload))
	if err != nil {
		logger.Error("Failed to build FCM request", zap.Error(err))
		return false
	}
	req.Header.Set("Authorization", "key="+p.ServerKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		logger.Error("Failed to send push notification", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
