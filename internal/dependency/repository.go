package dependency

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/studyflow-app/studyflow/internal/apperror"
	"github.com/studyflow-app/studyflow/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dependency/mock_repository.go -package=mock_dependency

// EdgeRepository defines operations for managing dependency edges.
type EdgeRepository interface {
	CreateBatch(ctx context.Context, edges []*Edge) error
	FindPrerequisites(ctx context.Context, taskID string) ([]Edge, error)
	FindDependents(ctx context.Context, taskID string) ([]Edge, error)
	DeleteForTask(ctx context.Context, taskID string) error
}

// DBEdgeRepository implements EdgeRepository using MySQL.
type DBEdgeRepository struct {
	db *sqlx.DB
}

// NewDBEdgeRepository creates a new DBEdgeRepository.
func NewDBEdgeRepository(db *sqlx.DB) *DBEdgeRepository {
	return &DBEdgeRepository{db: db}
}

// CreateBatch inserts all edges in a single transaction using a
// multi-row INSERT.
func (r *DBEdgeRepository) CreateBatch(ctx context.Context, edges []*Edge) error {
	if len(edges) == 0 {
		return nil
	}

	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"task_id", "depends_on_id", "dependency_type", "auto_complete"}
		query := database.BuildMultiRowInsert("task_dependencies", columns, len(edges))

		var args []interface{}
		for _, e := range edges {
			args = append(args, e.TaskID, e.DependsOnID, e.Type, e.AutoComplete)
		}
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return apperror.Persistence("insert dependency edges", err)
	}
	return nil
}

// FindPrerequisites returns the outgoing edges of taskID, i.e. the
// tasks it depends on.
func (r *DBEdgeRepository) FindPrerequisites(ctx context.Context, taskID string) ([]Edge, error) {
	var edges []Edge
	err := r.db.SelectContext(ctx, &edges,
		"SELECT * FROM task_dependencies WHERE task_id = ? ORDER BY id", taskID)
	if err != nil {
		return nil, apperror.Persistence("load prerequisites", err)
	}
	return edges, nil
}

// FindDependents returns the incoming edges of taskID, i.e. the edges
// of tasks that depend on it.
func (r *DBEdgeRepository) FindDependents(ctx context.Context, taskID string) ([]Edge, error) {
	var edges []Edge
	err := r.db.SelectContext(ctx, &edges,
		"SELECT * FROM task_dependencies WHERE depends_on_id = ? ORDER BY id", taskID)
	if err != nil {
		return nil, apperror.Persistence("load dependents", err)
	}
	return edges, nil
}

// DeleteForTask removes every edge touching taskID, in either
// direction. Called when the owning task is deleted.
func (r *DBEdgeRepository) DeleteForTask(ctx context.Context, taskID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM task_dependencies WHERE task_id = ? OR depends_on_id = ?", taskID, taskID)
	if err != nil {
		return apperror.Persistence("delete edges for task", err)
	}
	return nil
}
