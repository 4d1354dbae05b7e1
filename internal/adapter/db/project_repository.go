package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/ports"
)

const (
	projectColumns = `
  p.id,
  p.name,
  p.deadline,
  p.status,
  p.image_url,
  p.client_id,
  c.name AS client_name`

	projectBaseQuery = `
FROM projects p
INNER JOIN clients c ON c.id = p.client_id`

	getProjectQuery = `
SELECT` + projectColumns + projectBaseQuery + `
WHERE p.id = ?;
`

	listTasksByProjectsQuery = `
SELECT id, title, assigned_user, due_date, is_completed, project_id
FROM tasks
WHERE project_id IN (?)
ORDER BY id;
`

	insertProjectQuery = `
INSERT INTO projects (name, deadline, status, image_url, client_id)
VALUES (?, ?, ?, ?, ?);
`

	insertTaskQuery = `
INSERT INTO tasks (title, assigned_user, due_date, is_completed, project_id)
VALUES (?, ?, ?, ?, ?);
`

	// MySQL error for a failed foreign key check on insert/update.
	mysqlErrNoReferencedRow = 1452
)

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID         uint64         `db:"id"`
	Name       string         `db:"name"`
	Deadline   time.Time      `db:"deadline"`
	Status     bool           `db:"status"`
	ImageURL   sql.NullString `db:"image_url"`
	ClientID   uint64         `db:"client_id"`
	ClientName string         `db:"client_name"`
}

type taskRow struct {
	ID           uint64    `db:"id"`
	Title        string    `db:"title"`
	AssignedUser string    `db:"assigned_user"`
	DueDate      time.Time `db:"due_date"`
	IsCompleted  bool      `db:"is_completed"`
	ProjectID    uint64    `db:"project_id"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) FilterProjects(ctx context.Context, filter domain.ProjectFilter) (domain.ProjectPage, error) {
	where, args := buildProjectPredicates(filter)

	var total int
	countQuery := "SELECT COUNT(*)" + projectBaseQuery + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return domain.ProjectPage{}, err
	}

	pageQuery := "SELECT" + projectColumns + projectBaseQuery + where + "\nORDER BY p.id\nLIMIT ? OFFSET ?;"
	pageArgs := append(args, filter.PageSize, filter.Offset())

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, pageQuery, pageArgs...); err != nil {
		return domain.ProjectPage{}, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}

	if err := r.attachTasks(ctx, projects); err != nil {
		return domain.ProjectPage{}, err
	}

	return domain.ProjectPage{
		TotalFoundRecords: total,
		Projects:          projects,
	}, nil
}

func (r *ProjectRepository) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, getProjectQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	projects := []domain.Project{mapProjectRowToDomainProject(row)}
	if err := r.attachTasks(ctx, projects); err != nil {
		return domain.Project{}, err
	}

	return projects[0], nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, input domain.CreateProjectInput) (uint64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, insertProjectQuery,
		input.Name,
		input.Deadline,
		input.Status,
		input.ImageURL,
		input.ClientID,
	)
	if err != nil {
		return 0, mapForeignKeyError(err)
	}

	projectID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := insertTasks(ctx, tx, uint64(projectID), input.Tasks); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return uint64(projectID), nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists int
	if err := tx.GetContext(ctx, &exists, "SELECT 1 FROM projects WHERE id = ? FOR UPDATE", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProjectNotFound
		}
		return err
	}

	updateQuery := "UPDATE projects SET name = ?, deadline = ?, status = ?, client_id = ?"
	updateArgs := []interface{}{input.Name, input.Deadline, input.Status, input.ClientID}
	if input.ImageURL != nil {
		updateQuery += ", image_url = ?"
		updateArgs = append(updateArgs, *input.ImageURL)
	}
	updateQuery += " WHERE id = ?"
	updateArgs = append(updateArgs, id)

	if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		return mapForeignKeyError(err)
	}

	// Tasks are replaced wholesale on every edit, not diffed.
	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE project_id = ?", id); err != nil {
		return err
	}
	if err := insertTasks(ctx, tx, id, input.Tasks); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func buildProjectPredicates(filter domain.ProjectFilter) (string, []interface{}) {
	conditions := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)

	if filter.ClientID != nil {
		conditions = append(conditions, "p.client_id = ?")
		args = append(args, *filter.ClientID)
	}
	if filter.From != nil {
		conditions = append(conditions, "p.deadline >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, "p.deadline <= ?")
		args = append(args, *filter.To)
	}
	if filter.Status != nil {
		conditions = append(conditions, "p.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.SearchTerm != "" {
		conditions = append(conditions, "(LOWER(p.name) LIKE ? OR LOWER(c.name) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.SearchTerm) + "%"
		args = append(args, pattern, pattern)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "\nWHERE " + strings.Join(conditions, " AND "), args
}

func (r *ProjectRepository) attachTasks(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	projectIDs := make([]uint64, 0, len(projects))
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	query, inArgs, err := sqlx.In(listTasksByProjectsQuery, projectIDs)
	if err != nil {
		return err
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), inArgs...); err != nil {
		return err
	}

	tasksByProject := make(map[uint64][]domain.Task, len(projects))
	for _, row := range rows {
		tasksByProject[row.ProjectID] = append(tasksByProject[row.ProjectID], domain.Task{
			ID:           row.ID,
			Title:        row.Title,
			AssignedUser: row.AssignedUser,
			DueDate:      row.DueDate,
			IsCompleted:  row.IsCompleted,
			ProjectID:    row.ProjectID,
		})
	}

	for i := range projects {
		projects[i].Tasks = tasksByProject[projects[i].ID]
	}

	return nil
}

func insertTasks(ctx context.Context, tx *sqlx.Tx, projectID uint64, tasks []domain.TaskInput) error {
	for _, task := range tasks {
		_, err := tx.ExecContext(ctx, insertTaskQuery,
			task.Title,
			task.AssignedUser,
			task.DueDate,
			task.IsCompleted,
			projectID,
		)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
	}
	return nil
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:         row.ID,
		Name:       row.Name,
		Deadline:   row.Deadline,
		Status:     row.Status,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
	}

	if row.ImageURL.Valid {
		value := row.ImageURL.String
		project.ImageURL = &value
	}

	return project
}

func mapForeignKeyError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrNoReferencedRow {
		return domain.ErrClientNotFound
	}
	return err
}
