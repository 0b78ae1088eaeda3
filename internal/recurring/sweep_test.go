package recurring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/studyflow-app/studyflow/internal/apperror"
	"github.com/studyflow-app/studyflow/internal/config"
	mock_recurring "github.com/studyflow-app/studyflow/internal/mocks/recurring"
	"github.com/studyflow-app/studyflow/internal/recurring"
)

func sweepConfig() config.SweepConfig {
	return config.SweepConfig{CronSpec: "*/15 * * * *", BatchSize: 100}
}

func TestSweeper_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("generates tasks and dispatches reminders", func(t *testing.T) {
		e, m := newEngine(t)
		m.bindings.EXPECT().FindDue(ctx, gomock.Any(), 100).Return(nil, nil)

		dispatch := mock_recurring.NewMockReminderDispatch(gomock.NewController(t))
		dispatch.EXPECT().DispatchDue(ctx, 100).Return(2, nil)

		s := recurring.NewSweeper(e, dispatch, sweepConfig(), zap.NewNop())
		require.NoError(t, s.RunOnce(ctx))
	})

	t.Run("runs without a notifier", func(t *testing.T) {
		e, m := newEngine(t)
		m.bindings.EXPECT().FindDue(ctx, gomock.Any(), 100).Return(nil, nil)

		s := recurring.NewSweeper(e, nil, sweepConfig(), zap.NewNop())
		require.NoError(t, s.RunOnce(ctx))
	})

	t.Run("propagates engine failure", func(t *testing.T) {
		e, m := newEngine(t)
		m.bindings.EXPECT().FindDue(ctx, gomock.Any(), 100).
			Return(nil, apperror.Persistence("load due recurring bindings", errors.New("bad connection")))

		s := recurring.NewSweeper(e, nil, sweepConfig(), zap.NewNop())
		err := s.RunOnce(ctx)
		var perr *apperror.PersistenceError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("propagates dispatch failure", func(t *testing.T) {
		e, m := newEngine(t)
		m.bindings.EXPECT().FindDue(ctx, gomock.Any(), 100).Return(nil, nil)

		dispatch := mock_recurring.NewMockReminderDispatch(gomock.NewController(t))
		dispatch.EXPECT().DispatchDue(ctx, 100).Return(0, errors.New("notifier unreachable"))

		s := recurring.NewSweeper(e, dispatch, sweepConfig(), zap.NewNop())
		assert.Error(t, s.RunOnce(ctx))
	})
}

func TestSweeper_Start_InvalidCronSpec(t *testing.T) {
	e, _ := newEngine(t)
	s := recurring.NewSweeper(e, nil, config.SweepConfig{CronSpec: "not a cron spec", BatchSize: 10}, zap.NewNop())
	assert.Error(t, s.Start())
}
