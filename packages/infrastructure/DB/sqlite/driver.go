package sqlite

import (
	"classroom/packages/common/logger"
	"classroom/packages/infrastructure/DB/sqlite/connection"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	ClientTable "classroom/packages/infrastructure/DB/sqlite/table/client"
	CommentTable "classroom/packages/infrastructure/DB/sqlite/table/comment"
	PostTable "classroom/packages/infrastructure/DB/sqlite/table/post"
	TaskTable "classroom/packages/infrastructure/DB/sqlite/table/task"
	UserTable "classroom/packages/infrastructure/DB/sqlite/table/user"
	"classroom/packages/infrastructure/DB/sqlite/transaction"
	"errors"
)

var dbLogger = logger.NewSource("DB", logger.Default)

type (
	userTable    = UserTable.Manager
	postTable    = PostTable.Manager
	commentTable = CommentTable.Manager
	taskTable    = TaskTable.Manager
	clientTable  = ClientTable.Manager
)

type sqlite struct {
	manager *connection.Manager

	*userTable
	*postTable
	*commentTable
	*taskTable
	*clientTable
}

var driver *sqlite

func InitDriver() *sqlite {
	posts := PostTable.NewManager()

	driver = &sqlite{
		manager:      connection.New(),
		userTable:    UserTable.NewManager(),
		postTable:    posts,
		commentTable: CommentTable.NewManager(posts),
		taskTable:    TaskTable.NewManager(),
		clientTable:  ClientTable.NewManager(),
	}

	return driver
}

// Opens DB without applying migrations.
func (s *sqlite) Open() error {
	if err := s.manager.Connect(); err != nil {
		return err
	}

	executor.Init(s.manager)
	transaction.Init(s.manager)

	return nil
}

// Opens DB and applies all pending migrations.
func (s *sqlite) Connect() error {
	if err := s.Open(); err != nil {
		return err
	}

	if err := (Migrate{}).Latest(); err != nil {
		dbLogger.Error("Failed to migrate DB schema", err.Error(), nil)
		return errors.Join(err, s.manager.Disconnect())
	}

	return nil
}

func (s *sqlite) Disconnect() error {
	return s.manager.Disconnect()
}

func (s *sqlite) IsConnected() bool {
	return s.manager.IsConnected()
}
