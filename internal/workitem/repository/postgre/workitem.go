package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github-task-bridge/internal/model"
	"github-task-bridge/internal/workitem/repository"
)

type workItemRepository struct {
	pool *pgxpool.Pool
}

// New creates a Postgres-backed work item repository.
func New(pool *pgxpool.Pool) repository.WorkItemRepository {
	return &workItemRepository{pool: pool}
}

const getByReferenceQuery = `
SELECT id, project_id, reference, title, category_id, owner_id
FROM tasks
WHERE project_id = $1 AND reference = $2`

func (r *workItemRepository) GetByReference(ctx context.Context, projectID int64, reference string) (*model.WorkItem, error) {
	var item model.WorkItem
	err := r.pool.QueryRow(ctx, getByReferenceQuery, projectID, reference).Scan(
		&item.ID,
		&item.ProjectID,
		&item.Reference,
		&item.Title,
		&item.CategoryID,
		&item.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query task by reference: %w", err)
	}
	return &item, nil
}
