package jobs

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPromotionSchedule runs the expiry at the top of every hour.
const DefaultPromotionSchedule = "0 0 * * * *"

// PromotionExpirer lifts ended promotions.
type PromotionExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePromotionsCommand) (int, error)
}

// PromotionExpiryJob un-promotes restaurants whose paid promotion ended.
type PromotionExpiryJob struct {
	handler  PromotionExpirer
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

// NewPromotionExpiryJob creates the job. schedule is a six field cron
// expression with seconds; an empty schedule means DefaultPromotionSchedule.
func NewPromotionExpiryJob(handler PromotionExpirer, schedule string, logger *slog.Logger) *PromotionExpiryJob {
	if schedule == "" {
		schedule = DefaultPromotionSchedule
	}
	return &PromotionExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "promotion_expiry_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *PromotionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running expiry to finish.
func (j *PromotionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Promotion expiry job stopped")
}

func (j *PromotionExpiryJob) run(ctx context.Context) {
	cmd, err := commands.NewExpirePromotionsCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Promotions expired", "restaurants", expired)
	}
}
