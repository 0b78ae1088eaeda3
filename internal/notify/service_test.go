package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/studyflow-app/studyflow/internal/apperror"
	mock_notify "github.com/studyflow-app/studyflow/internal/mocks/notify"
	mock_reminder "github.com/studyflow-app/studyflow/internal/mocks/reminder"
	"github.com/studyflow-app/studyflow/internal/notify"
	"github.com/studyflow-app/studyflow/internal/reminder"
)

func dueReminders() []reminder.Reminder {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return []reminder.Reminder{
		{ID: "r1", UserID: "u1", SessionID: "s1", RemindAt: base},
		{ID: "r2", UserID: "u1", SessionID: "s2", RemindAt: base.Add(time.Hour)},
	}
}

func TestService_DispatchDue(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers and closes every due reminder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_reminder.NewMockRepository(ctrl)
		dispatcher := mock_notify.NewMockDispatcher(ctrl)

		due := dueReminders()
		repo.EXPECT().FindDue(ctx, gomock.Any(), 100).Return(due, nil)
		dispatcher.EXPECT().Dispatch(ctx, due[0]).Return(nil)
		repo.EXPECT().MarkNotified(ctx, "r1").Return(nil)
		dispatcher.EXPECT().Dispatch(ctx, due[1]).Return(nil)
		repo.EXPECT().MarkNotified(ctx, "r2").Return(nil)

		s := notify.NewService(repo, dispatcher, zap.NewNop())
		count, err := s.DispatchDue(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("a failed delivery stays pending for the next sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_reminder.NewMockRepository(ctrl)
		dispatcher := mock_notify.NewMockDispatcher(ctrl)

		due := dueReminders()
		repo.EXPECT().FindDue(ctx, gomock.Any(), 100).Return(due, nil)
		dispatcher.EXPECT().Dispatch(ctx, due[0]).Return(errors.New("notifier unreachable"))
		dispatcher.EXPECT().Dispatch(ctx, due[1]).Return(nil)
		repo.EXPECT().MarkNotified(ctx, "r2").Return(nil)

		s := notify.NewService(repo, dispatcher, zap.NewNop())
		count, err := s.DispatchDue(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_reminder.NewMockRepository(ctrl)
		dispatcher := mock_notify.NewMockDispatcher(ctrl)

		repo.EXPECT().FindDue(ctx, gomock.Any(), 100).
			Return(nil, apperror.Persistence("load due reminders", errors.New("bad connection")))

		s := notify.NewService(repo, dispatcher, zap.NewNop())
		_, err := s.DispatchDue(ctx, 100)
		var perr *apperror.PersistenceError
		require.ErrorAs(t, err, &perr)
	})
}
