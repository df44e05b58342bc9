package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sredemo/internal/core/domain"
)

const todoColumns = "id, title, description, completed, created_at, updated_at"

// TodoRepo implements domain.TodoRepository for PostgreSQL. Every operation
// is a single autocommitted statement on its own connection.
type TodoRepo struct {
	conn *Connector
}

func NewTodoRepo(conn *Connector) *TodoRepo {
	return &TodoRepo{conn: conn}
}

// List returns all todos, most recently created first. Rows with identical
// created_at may come back in either order; no secondary sort key is defined.
func (r *TodoRepo) List(ctx context.Context) ([]domain.Todo, error) {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	todos := []domain.Todo{}
	query := fmt.Sprintf("SELECT %s FROM todos ORDER BY created_at DESC", todoColumns)
	if err := db.SelectContext(ctx, &todos, query); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Create inserts a todo and scans the generated id and timestamps back.
func (r *TodoRepo) Create(ctx context.Context, title, description string, completed bool) (*domain.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &domain.ValidationError{Reason: "title is required"}
	}

	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := fmt.Sprintf(`
		INSERT INTO todos (title, description, completed)
		VALUES ($1, $2, $3)
		RETURNING %s`, todoColumns)

	var todo domain.Todo
	if err := db.GetContext(ctx, &todo, query, title, description, completed); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return &todo, nil
}

// GetByID fetches a single todo or reports domain.ErrNotFound.
func (r *TodoRepo) GetByID(ctx context.Context, id int) (*domain.Todo, error) {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s FROM todos WHERE id = $1", todoColumns)

	var todo domain.Todo
	if err := db.GetContext(ctx, &todo, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get todo %d: %w", id, err)
	}
	return &todo, nil
}

// Update changes only the fields present in the patch and always refreshes
// updated_at. An empty patch is rejected before any connection is opened.
func (r *TodoRepo) Update(ctx context.Context, id int, patch domain.TodoPatch) (*domain.Todo, error) {
	query, args, err := buildUpdateQuery(id, patch)
	if err != nil {
		return nil, err
	}

	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var todo domain.Todo
	if err := db.GetContext(ctx, &todo, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update todo %d: %w", id, err)
	}
	return &todo, nil
}

// Delete removes the row, reporting domain.ErrNotFound when nothing matched.
func (r *TodoRepo) Delete(ctx context.Context, id int) error {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildUpdateQuery accumulates the present patch fields into a parameterized
// SET clause. Only fixed column names are interpolated into the SQL text;
// every value travels as a positional argument.
func buildUpdateQuery(id int, patch domain.TodoPatch) (string, []interface{}, error) {
	set := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return "", nil, &domain.ValidationError{Reason: "title cannot be empty"}
		}
		args = append(args, *patch.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.Completed != nil {
		args = append(args, *patch.Completed)
		set = append(set, fmt.Sprintf("completed = $%d", len(args)))
	}

	if len(set) == 0 {
		return "", nil, domain.ErrNoFields
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE todos SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), todoColumns)
	return query, args, nil
}
