package dependency

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/studyflow-app/studyflow/internal/apperror"
	"github.com/studyflow-app/studyflow/internal/task"
)

// ValidationResult is the structured outcome of Validate. Rule
// violations never surface as errors; only store failures do.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
	Cycles   [][]string
}

// GraphManager validates dependency edge sets, creates tasks together
// with their prerequisites, and propagates completion through the
// graph.
type GraphManager struct {
	tasks  task.Repository
	edges  EdgeRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewGraphManager creates a new GraphManager.
func NewGraphManager(tasks task.Repository, edges EdgeRepository, logger *zap.Logger) *GraphManager {
	return &GraphManager{
		tasks:  tasks,
		edges:  edges,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Validate checks an edge set for self-dependencies, missing or
// foreign-owned prerequisites, and cycles. It always returns a
// structured result for rule violations; the error return is reserved
// for store failures while resolving prerequisite tasks.
func (m *GraphManager) Validate(ctx context.Context, edges []Edge, userID string) (*ValidationResult, error) {
	result := &ValidationResult{IsValid: true}

	seen := make(map[string]struct{}, len(edges))
	var targetIDs []string
	for _, e := range edges {
		if e.TaskID == e.DependsOnID {
			result.Errors = append(result.Errors,
				fmt.Sprintf("task %s cannot depend on itself", e.TaskID))
		}
		key := e.TaskID + "->" + e.DependsOnID
		if _, dup := seen[key]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate dependency %s -> %s", e.TaskID, e.DependsOnID))
		}
		seen[key] = struct{}{}
		if e.AutoComplete && !e.Gates() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("auto_complete on %s dependency %s -> %s has no gating effect", e.Type, e.TaskID, e.DependsOnID))
		}
		targetIDs = append(targetIDs, e.DependsOnID)
	}

	if len(targetIDs) > 0 {
		targets, err := m.tasks.FindByIDs(ctx, targetIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve prerequisite tasks: %w", err)
		}
		byID := make(map[string]task.Task, len(targets))
		for _, t := range targets {
			byID[t.ID] = t
		}
		for _, e := range edges {
			prereq, ok := byID[e.DependsOnID]
			if !ok {
				result.Errors = append(result.Errors,
					fmt.Sprintf("prerequisite %s does not exist", e.DependsOnID))
				continue
			}
			if prereq.UserID != userID {
				result.Errors = append(result.Errors,
					fmt.Sprintf("prerequisite %s is not owned by user %s", e.DependsOnID, userID))
			}
		}
	}

	result.Cycles = detectCycles(edges)
	for _, cycle := range result.Cycles {
		result.Errors = append(result.Errors,
			fmt.Sprintf("circular dependency detected: %s", cycleString(cycle)))
	}

	result.IsValid = len(result.Errors) == 0
	return result, nil
}

// CreateWithDependencies validates the edge set, persists the task and
// its edges, and computes the task's initial status. A rule violation
// fails closed with a *apperror.ValidationError listing every
// violation.
//
// The task insert and the edge batch are separate store calls. If the
// edge batch fails after the task row was written, the task is removed
// again as a compensating action; if that also fails the orphan is
// logged and reported.
func (m *GraphManager) CreateWithDependencies(ctx context.Context, t *task.Task, edges []Edge) (*task.Task, error) {
	result, err := m.Validate(ctx, edges, t.UserID)
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		return nil, &apperror.ValidationError{Errors: result.Errors, Cycles: result.Cycles}
	}

	status, err := m.initialStatus(ctx, edges)
	if err != nil {
		return nil, err
	}
	t.Status = status

	if err := m.tasks.Create(ctx, t); err != nil {
		return nil, err
	}

	if len(edges) > 0 {
		rows := make([]*Edge, 0, len(edges))
		for i := range edges {
			e := edges[i]
			e.TaskID = t.ID
			rows = append(rows, &e)
		}
		if err := m.edges.CreateBatch(ctx, rows); err != nil {
			if delErr := m.tasks.Delete(ctx, t.ID); delErr != nil {
				m.logger.Error("orphaned task after edge insert failure",
					zap.String("task_id", t.ID),
					zap.Error(delErr))
				return nil, fmt.Errorf("create edges for task %s (task row could not be removed): %w", t.ID, err)
			}
			return nil, err
		}
	}

	return t, nil
}

// Complete marks the task completed, unlocks dependents whose blocking
// prerequisites are now all satisfied, and cascades through
// auto-complete edges. Completing an already-completed task is a
// no-op.
func (m *GraphManager) Complete(ctx context.Context, taskID string) error {
	return m.complete(ctx, taskID, make(map[string]struct{}))
}

func (m *GraphManager) complete(ctx context.Context, taskID string, visited map[string]struct{}) error {
	if _, ok := visited[taskID]; ok {
		return nil
	}
	visited[taskID] = struct{}{}

	t, err := m.tasks.Find(ctx, taskID)
	if err != nil {
		return err
	}
	if t.IsCompleted() {
		return nil
	}

	if err := m.tasks.MarkCompleted(ctx, taskID, m.now()); err != nil {
		return err
	}
	m.logger.Info("task completed",
		zap.String("task_id", taskID),
		zap.String("user_id", t.UserID))

	if err := m.unlockDependents(ctx, taskID); err != nil {
		return err
	}

	// Cascading auto-completion: completing this task may complete the
	// prerequisites it was flagged to carry along.
	prereqs, err := m.edges.FindPrerequisites(ctx, taskID)
	if err != nil {
		return err
	}
	for _, e := range prereqs {
		if !e.AutoComplete {
			continue
		}
		if err := m.complete(ctx, e.DependsOnID, visited); err != nil {
			return err
		}
	}
	return nil
}

// unlockDependents re-evaluates every task holding an edge pointing at
// completedID and transitions it from blocked to available when all of
// its blocking prerequisites are satisfied.
func (m *GraphManager) unlockDependents(ctx context.Context, completedID string) error {
	incoming, err := m.edges.FindDependents(ctx, completedID)
	if err != nil {
		return err
	}

	checked := make(map[string]struct{}, len(incoming))
	for _, edge := range incoming {
		if _, done := checked[edge.TaskID]; done {
			continue
		}
		checked[edge.TaskID] = struct{}{}

		dependent, err := m.tasks.Find(ctx, edge.TaskID)
		if err != nil {
			return err
		}
		if dependent.Status != task.StatusBlocked {
			continue
		}

		satisfied, err := m.blockingSatisfied(ctx, edge.TaskID)
		if err != nil {
			return err
		}
		if satisfied {
			if err := m.tasks.UpdateStatus(ctx, edge.TaskID, task.StatusAvailable); err != nil {
				return err
			}
			m.logger.Info("task unlocked", zap.String("task_id", edge.TaskID))
		}
	}
	return nil
}

// blockingSatisfied reports whether every blocking prerequisite of
// taskID is completed. Suggested and parallel edges never gate.
func (m *GraphManager) blockingSatisfied(ctx context.Context, taskID string) (bool, error) {
	edges, err := m.edges.FindPrerequisites(ctx, taskID)
	if err != nil {
		return false, err
	}

	var blockingIDs []string
	for _, e := range edges {
		if e.Gates() {
			blockingIDs = append(blockingIDs, e.DependsOnID)
		}
	}
	if len(blockingIDs) == 0 {
		return true, nil
	}

	prereqs, err := m.tasks.FindByIDs(ctx, blockingIDs)
	if err != nil {
		return false, err
	}
	completed := make(map[string]bool, len(prereqs))
	for _, p := range prereqs {
		completed[p.ID] = p.IsCompleted()
	}
	for _, id := range blockingIDs {
		if !completed[id] {
			return false, nil
		}
	}
	return true, nil
}

// initialStatus is blocked when the edge set contains at least one
// blocking edge whose prerequisite is not yet completed.
func (m *GraphManager) initialStatus(ctx context.Context, edges []Edge) (task.Status, error) {
	var blockingIDs []string
	for _, e := range edges {
		if e.Gates() {
			blockingIDs = append(blockingIDs, e.DependsOnID)
		}
	}
	if len(blockingIDs) == 0 {
		return task.StatusAvailable, nil
	}

	prereqs, err := m.tasks.FindByIDs(ctx, blockingIDs)
	if err != nil {
		return "", err
	}
	for _, p := range prereqs {
		if !p.IsCompleted() {
			return task.StatusBlocked, nil
		}
	}
	return task.StatusAvailable, nil
}
