package notification

import (
	"context"

	"trailhub/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService delivers push notifications to user devices.
type NotificationService interface {
	// SendToToken pushes a notification to one FCM registration token.
	// Delivery is best effort; failures are logged, never returned.
	SendToToken(token, title, body string, data map[string]string)
}

// FCMNotificationService sends pushes through Firebase Cloud Messaging.
type FCMNotificationService struct {
	Client *messaging.Client
}

// NewFCMNotificationService creates the service on the shared FCM client.
func NewFCMNotificationService() *FCMNotificationService {
	return &FCMNotificationService{Client: utils.FCMClient}
}

func (s *FCMNotificationService) SendToToken(token, title, body string, data map[string]string) {
	logger := utils.GetLogger()

	if s.Client == nil || token == "" {
		return
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.Client.Send(context.Background(), msg); err != nil {
		logger.Warn("push notification failed", zap.Error(err))
	}
}
