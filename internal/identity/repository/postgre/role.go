package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github-task-bridge/internal/identity/repository"
)

type projectRoleRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRoleRepository creates a Postgres-backed project role reader.
func NewProjectRoleRepository(pool *pgxpool.Pool) repository.ProjectRoleRepository {
	return &projectRoleRepository{pool: pool}
}

// Members and managers may own work items; viewers may not.
const isAssignableQuery = `
SELECT EXISTS (
	SELECT 1
	FROM project_user_roles
	WHERE project_id = $1 AND user_id = $2 AND role IN ('project-member', 'project-manager')
)`

func (r *projectRoleRepository) IsAssignable(ctx context.Context, projectID, userID int64) (bool, error) {
	var assignable bool
	if err := r.pool.QueryRow(ctx, isAssignableQuery, projectID, userID).Scan(&assignable); err != nil {
		return false, fmt.Errorf("query project role: %w", err)
	}
	return assignable, nil
}
