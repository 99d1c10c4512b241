package utils

import (
	"context"

	"trailhub/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FCMClient stays nil when Firebase is not configured; push notifications
// are then skipped.
var FCMClient *messaging.Client

// FirebaseInit sets up the Firebase messaging client. Missing or invalid
// credentials are not fatal, the marketplace runs without push.
func FirebaseInit() {
	logger := GetLogger()

	credentials := config.AppConfig.FirebaseCredentialsFile
	if credentials == "" {
		logger.Warn("Firebase credentials not configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentials))
	if err != nil {
		logger.Error("Failed to initialize Firebase app", zap.Error(err))
		return
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		logger.Error("Failed to create Firebase messaging client", zap.Error(err))
		return
	}
	FCMClient = client
}
