package notification

import (
	"context"

	artisanRepo "artisanhub/database/repository/artisan"
	studentRepo "artisanhub/database/repository/student"
	"artisanhub/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotifier resolves a target id to a student or artisan account and
// delivers the message as an FCM push plus an email.
type DefaultNotifier struct {
	Students studentRepo.StudentRepository
	Artisans artisanRepo.ArtisanRepository
	FCM      *messaging.Client
}

// Notify sends the message to whichever account the target id resolves to.
// Errors are logged and swallowed.
func (n *DefaultNotifier) Notify(ctx context.Context, targetID, message string) {
	logger := utils.GetLogger()

	email, fcmToken, ok := n.resolve(targetID)
	if !ok {
		logger.Warn("notification target not found", zap.String("targetId", targetID))
		return
	}

	if n.FCM != nil && fcmToken != "" {
		msg := &messaging.Message{
			Token: fcmToken,
			Notification: &messaging.Notification{
				Title: "ArtisanHub",
				Body:  message,
			},
		}
		if _, err := n.FCM.Send(ctx, msg); err != nil {
			logger.Warn("failed to send push notification",
				zap.String("targetId", targetID), zap.Error(err))
		}
	}

	if email != "" {
		if err := utils.SendNotificationEmail(email, message); err != nil {
			logger.Warn("failed to send notification email",
				zap.String("targetId", targetID), zap.Error(err))
		}
	}
}

// resolve looks the target up as a student first, then as an artisan.
func (n *DefaultNotifier) resolve(targetID string) (email, fcmToken string, ok bool) {
	if s, err := n.Students.GetByID(targetID); err == nil && s != nil {
		return s.Email, s.FCMToken, true
	}
	if a, err := n.Artisans.GetByID(targetID); err == nil && a != nil {
		return a.Email, a.FCMToken, true
	}
	return "", "", false
}
