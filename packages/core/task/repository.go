package task

import Error "classroom/packages/common/errors"

type Repository interface {
	creator
	seeker
	updater
	deleter
}

type creator interface {
	// Returns id of the new task.
	CreateTask(title string, description string) (int64, *Error.Status)
}

type seeker interface {
	// Returns tasks with specified status (all tasks if status is nil), newest first.
	GetTasks(status *Status) ([]*Task, *Error.Status)

	GetTaskByID(id int64) (*Task, *Error.Status)

	GetTaskStats() (*Stats, *Error.Status)
}

type updater interface {
	CompleteTask(id int64) *Error.Status
}

type deleter interface {
	DeleteTask(id int64) *Error.Status
}
