package postdto

type Basic struct {
	ID        int64  `json:"id"`
	AuthorID  int64  `json:"author_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Post joined with it's author.
type Full struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  *string `json:"updated_at"`
	AuthorID   int64   `json:"author_id"`
	AuthorName string  `json:"author_name"`
}

// Nil field means that it must stay unchanged.
type Changes struct {
	Title   *string
	Content *string
}

func (dto *Changes) IsEmpty() bool {
	return dto.Title == nil && dto.Content == nil
}
