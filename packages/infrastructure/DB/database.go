package DB

import (
	"classroom/packages/core/client"
	"classroom/packages/core/comment"
	"classroom/packages/core/post"
	"classroom/packages/core/task"
	"classroom/packages/core/user"
	"classroom/packages/infrastructure/DB/sqlite"
)

type database interface {
	connector
	user.Repository
	post.Repository
	comment.Repository
	task.Repository
	client.Repository
}

type connector interface {
	// Opens DB without applying migrations.
	Open() error
	// Opens DB and applies all pending migrations.
	Connect() error
	Disconnect() error
	IsConnected() bool
}

// Implements all entities "Repository" interfaces
var Database database = sqlite.InitDriver()

var Migrate = sqlite.Migrate{}
