package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/task-list-api/internal/model"
)

var ErrorNotFound = errors.New("not found")

const taskColumns = "id, title, completed, created_at"

type TaskRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo { // Конструктор
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Create(ctx context.Context, title string) (model.Task, error) {
	var t model.Task
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title)
		VALUES ($1)
		RETURNING `+taskColumns, title).Scan(
		&t.ID, &t.Title, &t.Completed, &t.CreatedAt,
	)
	return t, err
}

// SetCompleted меняет только completed, title и created_at не трогаются
func (r *TaskRepo) SetCompleted(ctx context.Context, id int64, completed bool) (model.Task, error) {
	var t model.Task
	err := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET completed = $2
		WHERE id = $1
		RETURNING `+taskColumns, id, completed).Scan(
		&t.ID, &t.Title, &t.Completed, &t.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TaskRepo) Ping(ctx context.Context) error {
	var one int
	return r.pool.QueryRow(ctx, "SELECT 1").Scan(&one)
}
