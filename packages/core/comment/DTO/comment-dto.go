package commentdto

type Basic struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	AuthorID  int64  `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Comment joined with it's author.
type Full struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
}
