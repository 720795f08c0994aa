package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"eats/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPromotionExpirer struct{ mock.Mock }

func (m *MockPromotionExpirer) Handle(ctx context.Context, cmd commands.ExpirePromotionsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPromotionExpiryJob_RunUsesCurrentTime(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	expirer := &MockPromotionExpirer{}
	expirer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExpirePromotionsCommand) bool {
		return cmd.Now().Equal(now)
	})).Return(2, nil).Once()

	job := NewPromotionExpiryJob(expirer, "", discardLogger())
	job.now = func() time.Time { return now }

	job.run(t.Context())

	expirer.AssertExpectations(t)
}

func TestPromotionExpiryJob_RunSurvivesHandlerError(t *testing.T) {
	expirer := &MockPromotionExpirer{}
	expirer.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("database is down")).Once()

	job := NewPromotionExpiryJob(expirer, "", discardLogger())

	assert.NotPanics(t, func() { job.run(t.Context()) })
	expirer.AssertExpectations(t)
}

func TestNewPromotionExpiryJob_DefaultSchedule(t *testing.T) {
	job := NewPromotionExpiryJob(&MockPromotionExpirer{}, "", discardLogger())

	assert.Equal(t, DefaultPromotionSchedule, job.schedule)
}

func TestPromotionExpiryJob_StartRejectsInvalidSchedule(t *testing.T) {
	job := NewPromotionExpiryJob(&MockPromotionExpirer{}, "every hour", discardLogger())

	require.Error(t, job.Start())
}

func TestPromotionExpiryJob_RunsOnSchedule(t *testing.T) {
	expirer := &MockPromotionExpirer{}
	called := make(chan struct{}, 10)
	expirer.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Run(func(mock.Arguments) {
		called <- struct{}{}
	})

	job := NewPromotionExpiryJob(expirer, "* * * * * *", discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}
