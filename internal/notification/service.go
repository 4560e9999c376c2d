package notification

import (
	"context"
	"log"
	"time"

	"examhall/internal/config"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService handles scheduling and sending duty/report notices.
type NotificationService struct {
	repo         *NotificationRepository
	emailService *config.EmailService
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo *NotificationRepository, emailService *config.EmailService) *NotificationService {
	return &NotificationService{repo: repo, emailService: emailService}
}

// ScheduleNotification saves a new notification to the DB.
func (s *NotificationService) ScheduleNotification(ctx context.Context, n *Notification) error {
	n.Status = "scheduled"
	n.CreatedAt = time.Now()
	n.UpdatedAt = time.Now()
	return s.repo.CreateNotification(ctx, n)
}

// SendDueNotifications finds and sends all notifications that are due.
func (s *NotificationService) SendDueNotifications(ctx context.Context) {
	notifications, err := s.repo.GetPendingNotifications(ctx)
	if err != nil {
		log.Println("failed to fetch pending notifications:", err)
		return
	}
	for _, n := range notifications {
		if n.SendTime.After(time.Now()) {
			continue
		}
		sentTo := s.sendNotification(n)
		if err := s.repo.UpdateNotificationStatus(ctx, n.ID, "sent", sentTo); err != nil {
			log.Printf("failed to mark notification %v sent: %v", n.ID, err)
		}
	}
}

// sendNotification mails the notice to every non-empty recipient address,
// skipping blanks rather than failing the whole batch (spec §7: a row with
// no email on file is noted, not fatal to the run).
func (s *NotificationService) sendNotification(n *Notification) []string {
	var sentTo []string
	for _, email := range n.Recipients {
		if email == "" {
			continue
		}
		if err := s.emailService.SendEmail(email, n.Subject, n.Message); err != nil {
			log.Printf("failed to send notice to %s: %v", email, err)
			continue
		}
		sentTo = append(sentTo, email)
	}
	return sentTo
}

// ListNotifications fetches every stored notification.
func (s *NotificationService) ListNotifications(ctx context.Context) ([]*Notification, error) {
	return s.repo.ListNotifications(ctx)
}

// DeleteNotification deletes a notification by ObjectID
func (s *NotificationService) DeleteNotification(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteNotification(ctx, id)
}
