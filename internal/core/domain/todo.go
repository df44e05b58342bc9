package domain

import (
	"context"
	"time"
)

// Todo is the sole resource this service manages.
type Todo struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TodoPatch carries the optional fields of a partial update.
// A nil pointer means "leave this column unchanged".
type TodoPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Empty reports whether the patch carries no fields at all.
func (p TodoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// TodoRepository is the persistence boundary for todos. Every operation is a
// single statement against its own short-lived connection.
type TodoRepository interface {
	List(ctx context.Context) ([]Todo, error)
	Create(ctx context.Context, title, description string, completed bool) (*Todo, error)
	GetByID(ctx context.Context, id int) (*Todo, error)
	Update(ctx context.Context, id int, patch TodoPatch) (*Todo, error)
	Delete(ctx context.Context, id int) error
}
