package main

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/studyflow-app/studyflow/internal/config"
	"github.com/studyflow-app/studyflow/internal/performance"
	"github.com/studyflow-app/studyflow/internal/reminder"
)

func newRemindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage spaced-repetition reminder schedules",
	}
	cmd.AddCommand(newRemindScheduleCommand(), newRemindCancelCommand())
	return cmd
}

func newRemindScheduleCommand() *cobra.Command {
	var (
		sessionID     string
		userID        string
		topic         string
		sessionDate   string
		tier          string
		difficulty    string
		intervals     []int
		preferredHour int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule adaptive review reminders for a study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().UTC()
			if sessionDate != "" {
				var err error
				date, err = time.Parse(time.RFC3339, sessionDate)
				if err != nil {
					return fmt.Errorf("--date must be RFC 3339: %w", err)
				}
			}

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			prefs := &reminder.Preferences{
				Tier:            tier,
				CustomIntervals: intervals,
				Difficulty:      difficulty,
			}
			if cmd.Flags().Changed("hour") {
				prefs.PreferredHour = &preferredHour
			}

			scheduler := newScheduler(cfg, db)
			reminders, err := scheduler.ScheduleReminders(cmd.Context(), sessionID, userID, date, topic, prefs)
			if err != nil {
				return fmt.Errorf("scheduler.ScheduleReminders() > %w", err)
			}

			for _, r := range reminders {
				fmt.Printf("%s  %s (%s)\n", r.RemindAt.Format(time.RFC3339), r.Title, r.Priority)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "study session ID")
	cmd.Flags().StringVar(&userID, "user", "", "owning user ID")
	cmd.Flags().StringVar(&topic, "topic", "", "session topic used in reminder titles")
	cmd.Flags().StringVar(&sessionDate, "date", "", "session date, RFC 3339 (defaults to now)")
	cmd.Flags().StringVar(&tier, "tier", reminder.TierFree, "interval tier (free, premium)")
	cmd.Flags().StringVar(&difficulty, "difficulty", reminder.DifficultyModerate, "difficulty setting (conservative, moderate, aggressive)")
	cmd.Flags().IntSliceVar(&intervals, "intervals", nil, "custom interval days overriding the tier")
	cmd.Flags().IntVar(&preferredHour, "hour", 0, "preferred local hour for reminders (0-23)")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func newRemindCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel SESSION_ID",
		Short: "Cancel all pending reminders for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			scheduler := newScheduler(cfg, db)
			if err := scheduler.CancelRemindersForSession(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("scheduler.CancelRemindersForSession() > %w", err)
			}

			fmt.Printf("cancelled pending reminders for session %s\n", args[0])
			return nil
		},
	}
}

func newScheduler(cfg *config.Config, db *sqlx.DB) *reminder.Scheduler {
	return reminder.NewScheduler(
		reminder.NewDBRepository(db),
		performance.NewAnalyticsEngine(performance.NewDBRecordRepository(db)),
		reminder.NewDBTimezoneService(db),
		cfg.Scheduler,
		logger,
	)
}
