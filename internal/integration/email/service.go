// Package email provides email queueing and delivery.
package email

import (
	"context"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// Service enqueues outbound emails. Delivery happens asynchronously in the
// worker, so use cases never block on a provider call.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	return s.enqueue(ctx, entity.TemplatePasswordReset, input.UserEmail, input.UserName,
		"Reset your password - SpendWise",
		map[string]interface{}{
			"user_name":  input.UserName,
			"reset_url":  input.ResetURL,
			"expires_in": input.ExpiresIn,
		})
}

// QueueAchievementEarnedEmail queues a notification for a newly earned achievement.
func (s *Service) QueueAchievementEarnedEmail(ctx context.Context, input adapter.QueueAchievementEarnedInput) error {
	return s.enqueue(ctx, entity.TemplateAchievementEarned, input.UserEmail, input.UserName,
		fmt.Sprintf("You earned the %s badge - SpendWise", input.AchievementTitle),
		map[string]interface{}{
			"user_name":         input.UserName,
			"achievement_title": input.AchievementTitle,
			"achievement_icon":  input.AchievementIcon,
			"app_url":           s.appBaseURL,
		})
}

func (s *Service) enqueue(ctx context.Context, template entity.EmailTemplateType, to, name, subject string, data map[string]interface{}) error {
	job := entity.NewEmailJob(template, to, name, subject, data)
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s email", template),
			err,
		)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
