package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyflow-app/studyflow/internal/bootstrap"
	"github.com/studyflow-app/studyflow/internal/notify"
	"github.com/studyflow-app/studyflow/internal/recurring"
	"github.com/studyflow-app/studyflow/internal/reminder"
)

func newSweepCommand() *cobra.Command {
	var daemon bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Generate due recurring tasks and dispatch due reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			var dispatch recurring.ReminderDispatch
			if cfg.Notifier.BaseURL != "" {
				dispatch = notify.NewService(
					reminder.NewDBRepository(db),
					notify.NewHTTPDispatcher(cfg.Notifier),
					logger,
				)
			} else {
				logger.Warn("notifier base_url not configured, reminders will not be dispatched")
			}

			sweeper := recurring.NewSweeper(newRecurringEngine(cfg, db), dispatch, cfg.Sweep, logger)

			if !daemon {
				return sweeper.RunOnce(cmd.Context())
			}

			app := bootstrap.New(logger)
			app.AddShutdownHook(sweeper.Stop)
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				if err := sweeper.Start(); err != nil {
					return fmt.Errorf("sweeper.Start() > %w", err)
				}
				<-ctx.Done()
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&daemon, "daemon", false, "run continuously on the configured cron schedule")
	return cmd
}
