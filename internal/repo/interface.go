package repo

import (
	"context"

	"github.com/BuzzLyutic/task-list-api/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, title string) (model.Task, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (model.Task, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
