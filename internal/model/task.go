package model

import "time"

type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTaskInput - тело POST /tasks. Указатель отличает отсутствующий
// или null заголовок от пустой строки
type CreateTaskInput struct {
	Title *string `json:"title"`
}

type UpdateTaskInput struct {
	Completed *bool `json:"completed"`
}

type Health struct {
	OK bool `json:"ok"`
	DB bool `json:"db"`
}
