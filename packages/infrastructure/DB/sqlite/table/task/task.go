package tasktable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	"classroom/packages/core/task"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
)

type Manager struct {
	//
}

func NewManager() *Manager {
	return new(Manager)
}

func (m *Manager) CreateTask(title string, description string) (int64, *Error.Status) {
	title, err := task.ValidateTitle(title)
	if err != nil {
		return 0, err
	}

	return executor.Insert(query.New(
		`INSERT INTO tasks (title, description, status, created_at) VALUES (?, ?, ?, ?);`,
		title, description, string(task.PendingStatus), util.Timestamp(),
	))
}

const selectTask = `SELECT id, title, description, status, created_at, completed_at FROM tasks `

func scanTask(s executor.Scanner) (*task.Task, error) {
	t := new(task.Task)
	var status string
	err := s.Scan(&t.ID, &t.Title, &t.Description, &status, &t.CreatedAt, &t.CompletedAt)
	t.Status = task.Status(status)
	return t, err
}

func (m *Manager) GetTasks(status *task.Status) ([]*task.Task, *Error.Status) {
	if status != nil {
		return executor.Collect(
			query.New(selectTask+`WHERE status = ? ORDER BY created_at DESC, id DESC;`, string(*status)),
			scanTask,
		)
	}

	return executor.Collect(
		query.New(selectTask+`ORDER BY created_at DESC, id DESC;`),
		scanTask,
	)
}

func (m *Manager) GetTaskByID(id int64) (*task.Task, *Error.Status) {
	t, err := executor.Row(query.New(selectTask+`WHERE id = ?;`, id), scanTask)
	if err != nil {
		if err == Error.StatusNotFound {
			return nil, task.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (m *Manager) GetTaskStats() (*task.Stats, *Error.Status) {
	return executor.Row(
		query.New(
			`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
			FROM tasks;`,
			string(task.PendingStatus), string(task.DoneStatus),
		),
		func(s executor.Scanner) (*task.Stats, error) {
			stats := new(task.Stats)
			err := s.Scan(&stats.Total, &stats.Pending, &stats.Done)
			return stats, err
		},
	)
}

func (m *Manager) CompleteTask(id int64) *Error.Status {
	return executor.AffectedOrNotFound(
		query.New(
			`UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?;`,
			string(task.DoneStatus), util.Timestamp(), id,
		),
		task.ErrNotFound,
	)
}

func (m *Manager) DeleteTask(id int64) *Error.Status {
	return executor.AffectedOrNotFound(
		query.New(`DELETE FROM tasks WHERE id = ?;`, id),
		task.ErrNotFound,
	)
}
