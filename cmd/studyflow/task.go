package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studyflow-app/studyflow/internal/dependency"
	"github.com/studyflow-app/studyflow/internal/task"
)

func newTaskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks and their dependencies",
	}
	cmd.AddCommand(newTaskAddCommand(), newTaskCompleteCommand())
	return cmd
}

func newTaskAddCommand() *cobra.Command {
	var (
		userID    string
		title     string
		taskType  string
		dueAt     string
		dependsOn []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task, optionally gated on prerequisite tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := time.Parse(time.RFC3339, dueAt)
			if err != nil {
				return fmt.Errorf("--due must be RFC 3339: %w", err)
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			t := &task.Task{
				ID:     uuid.NewString(),
				UserID: userID,
				Type:   task.Type(taskType),
				Title:  title,
				DueAt:  due,
			}
			edges, err := parseDependencyFlags(t.ID, dependsOn)
			if err != nil {
				return err
			}

			manager := dependency.NewGraphManager(
				task.NewDBRepository(db), dependency.NewDBEdgeRepository(db), logger)
			created, err := manager.CreateWithDependencies(cmd.Context(), t, edges)
			if err != nil {
				return fmt.Errorf("manager.CreateWithDependencies() > %w", err)
			}

			fmt.Printf("created task %s (status %s)\n", created.ID, created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "owning user ID")
	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&taskType, "type", string(task.TypeAssignment), "task type (assignment, lecture, study_session)")
	cmd.Flags().StringVar(&dueAt, "due", "", "due date, RFC 3339")
	cmd.Flags().StringArrayVar(&dependsOn, "depends-on", nil, "prerequisite as TASK_ID[:TYPE], repeatable (types: blocking, suggested, parallel)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newTaskCompleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete TASK_ID",
		Short: "Complete a task and unlock its dependents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			manager := dependency.NewGraphManager(
				task.NewDBRepository(db), dependency.NewDBEdgeRepository(db), logger)
			if err := manager.Complete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("manager.Complete() > %w", err)
			}

			fmt.Printf("completed task %s\n", args[0])
			return nil
		},
	}
	return cmd
}

// parseDependencyFlags turns --depends-on values of the form
// "TASK_ID" or "TASK_ID:TYPE" into edges. The type defaults to
// blocking.
func parseDependencyFlags(taskID string, values []string) ([]dependency.Edge, error) {
	edges := make([]dependency.Edge, 0, len(values))
	for _, v := range values {
		id, typeName, found := strings.Cut(v, ":")
		depType := dependency.TypeBlocking
		if found {
			switch dependency.Type(typeName) {
			case dependency.TypeBlocking, dependency.TypeSuggested, dependency.TypeParallel:
				depType = dependency.Type(typeName)
			default:
				return nil, fmt.Errorf("unknown dependency type %q", typeName)
			}
		}
		edges = append(edges, dependency.Edge{
			TaskID:      taskID,
			DependsOnID: id,
			Type:        depType,
		})
	}
	return edges, nil
}
