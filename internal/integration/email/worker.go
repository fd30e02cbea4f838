package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/email/templates"
)

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// Worker drains the email queue. It polls for pending jobs, renders their
// templates and hands them to the sender. A job that fails temporarily is
// rescheduled by the entity's retry policy; a permanent failure parks it.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	cfg      WorkerConfig
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, cfg WorkerConfig) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		cfg:      cfg,
	}
}

// Start runs the polling loop until the context is cancelled. One batch is
// processed immediately so queued mail does not wait a full interval after
// startup.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.cfg.PollInterval,
		"batch_size", w.cfg.BatchSize,
	)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.drain(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain processes one batch of pending jobs.
func (w *Worker) drain(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.cfg.BatchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.deliver(ctx, job)
	}
}

func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.render(job)
	if err != nil {
		// A template that does not render today will not render tomorrow.
		logger.Error("Failed to render email template", "error", err)
		w.fail(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)
		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure
		w.fail(ctx, job, err, permanent)
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}
	logger.Info("Email sent successfully", "resend_id", result.ResendID)
}

// render binds the job's stored template data to the typed template input.
func (w *Worker) render(job *entity.EmailJob) (html, text string, err error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplatePasswordReset:
		data = templates.PasswordResetData{
			UserName:  stringField(job.TemplateData, "user_name"),
			ResetURL:  stringField(job.TemplateData, "reset_url"),
			ExpiresIn: stringField(job.TemplateData, "expires_in"),
		}
	case entity.TemplateAchievementEarned:
		data = templates.AchievementEarnedData{
			UserName:         stringField(job.TemplateData, "user_name"),
			AchievementTitle: stringField(job.TemplateData, "achievement_title"),
			AchievementIcon:  stringField(job.TemplateData, "achievement_icon"),
			AppURL:           stringField(job.TemplateData, "app_url"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			domainerror.ErrInvalidTemplate,
		)
	}

	return w.renderer.Render(string(job.TemplateType), data)
}

func (w *Worker) fail(ctx context.Context, job *entity.EmailJob, cause error, permanent bool) {
	job.MarkFailed(cause, permanent)
	if err := w.queue.Update(ctx, job); err != nil {
		slog.Error("Failed to update job after failure", "job_id", job.ID, "error", err)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func stringField(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
