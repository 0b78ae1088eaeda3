package main

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/studyflow-app/studyflow/internal/config"
	"github.com/studyflow-app/studyflow/internal/recurring"
	"github.com/studyflow-app/studyflow/internal/task"
)

func newRecurringCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring task patterns",
	}
	cmd.AddCommand(
		newRecurringCreateCommand(),
		newRecurringGenerateCommand(),
		newRecurringDeactivateCommand(),
	)
	return cmd
}

func newRecurringCreateCommand() *cobra.Command {
	var (
		userID        string
		title         string
		taskType      string
		name          string
		frequency     string
		interval      int
		days          []int
		dayOfMonth    int
		endsAt        string
		maxOccurrence int
		timezone      string
		startDate     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recurring pattern and bind it to a task template",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().UTC()
			if startDate != "" {
				var err error
				start, err = time.Parse(time.RFC3339, startDate)
				if err != nil {
					return fmt.Errorf("--start must be RFC 3339: %w", err)
				}
			}

			spec := recurring.PatternSpec{
				Name:           name,
				Frequency:      recurring.Frequency(frequency),
				IntervalValue:  interval,
				DayOfMonth:     dayOfMonth,
				MaxOccurrences: maxOccurrence,
				Timezone:       timezone,
			}
			for _, d := range days {
				spec.DaysOfWeek = append(spec.DaysOfWeek, time.Weekday(d))
			}
			if endsAt != "" {
				ends, err := time.Parse(time.RFC3339, endsAt)
				if err != nil {
					return fmt.Errorf("--ends must be RFC 3339: %w", err)
				}
				spec.EndsAt = &ends
			}

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			engine := newRecurringEngine(cfg, db)
			b, err := engine.CreateRecurringTask(cmd.Context(), userID, title, task.Type(taskType), spec, start)
			if err != nil {
				return fmt.Errorf("engine.CreateRecurringTask() > %w", err)
			}

			fmt.Printf("created binding %s, first generation at %s\n",
				b.ID, b.NextGenerationAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "owning user ID")
	cmd.Flags().StringVar(&title, "title", "", "template title for generated tasks")
	cmd.Flags().StringVar(&taskType, "type", string(task.TypeStudySession), "task type for generated tasks")
	cmd.Flags().StringVar(&name, "name", "", "pattern name")
	cmd.Flags().StringVar(&frequency, "frequency", "", "frequency (daily, weekly, monthly, custom)")
	cmd.Flags().IntVar(&interval, "interval", 1, "interval between occurrences (days, weeks or months depending on frequency)")
	cmd.Flags().IntSliceVar(&days, "days", nil, "weekdays for weekly patterns (0=Sunday .. 6=Saturday)")
	cmd.Flags().IntVar(&dayOfMonth, "day-of-month", 0, "day of month for monthly patterns")
	cmd.Flags().StringVar(&endsAt, "ends", "", "end date, RFC 3339")
	cmd.Flags().IntVar(&maxOccurrence, "max", 0, "maximum number of generated tasks")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "pattern timezone")
	cmd.Flags().StringVar(&startDate, "start", "", "start date, RFC 3339 (defaults to now)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("frequency")

	return cmd
}

func newRecurringGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate BINDING_ID",
		Short: "Materialize all overdue task instances for a binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			engine := newRecurringEngine(cfg, db)
			tasks, err := engine.GenerateNextTasks(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("engine.GenerateNextTasks() > %w", err)
			}

			for _, t := range tasks {
				fmt.Printf("%s  %s due %s\n", t.ID, t.Title, t.DueAt.Format(time.RFC3339))
			}
			fmt.Printf("generated %d tasks\n", len(tasks))
			return nil
		},
	}
}

func newRecurringDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate BINDING_ID",
		Short: "Stop generating tasks for a binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			engine := newRecurringEngine(cfg, db)
			if err := engine.DeactivateBinding(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("engine.DeactivateBinding() > %w", err)
			}

			fmt.Printf("deactivated binding %s\n", args[0])
			return nil
		},
	}
}

func newRecurringEngine(cfg *config.Config, db *sqlx.DB) *recurring.Engine {
	return recurring.NewEngine(
		recurring.NewDBPatternRepository(db),
		recurring.NewDBBindingRepository(db),
		task.NewDBRepository(db),
		recurring.NewDBDateService(db),
		newScheduler(cfg, db),
		logger,
	)
}
