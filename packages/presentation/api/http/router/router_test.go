package router

import (
	"bytes"
	"classroom/packages/common/config"
	"classroom/packages/infrastructure/DB"
	"classroom/packages/infrastructure/auth/authn"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	t      *testing.T
	router *echo.Echo
}

func newTestServer(t *testing.T, configure func(c *config.Configs)) *testServer {
	t.Helper()

	c := config.Defaults()
	c.Path = filepath.Join(t.TempDir(), "blog.db")
	c.ShowLogs = false
	c.RateLimiting = false
	if configure != nil {
		configure(c)
	}
	config.Apply(c)
	config.Secret.JWTSecret = []byte("router-test-secret-key")

	authn.HashCost = bcrypt.MinCost

	require.NoError(t, DB.Database.Connect())
	t.Cleanup(func() {
		assert.NoError(t, DB.Database.Disconnect())
	})

	return &testServer{t: t, router: Create()}
}

type result struct {
	code   int
	header http.Header
	raw    string
	body   map[string]any
}

func (s *testServer) raw(method string, path string, contentType string, body string, accessToken string) *result {
	s.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if accessToken != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	res := &result{
		code:   rec.Code,
		header: rec.Header(),
		raw:    rec.Body.String(),
	}

	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) &&
		bytes.HasPrefix(bytes.TrimSpace(rec.Body.Bytes()), []byte("{")) {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &res.body))
	}

	return res
}

func (s *testServer) do(method string, path string, body any, accessToken string) *result {
	s.t.Helper()

	if body == nil {
		return s.raw(method, path, "", "", accessToken)
	}

	encoded, err := json.MarshalToString(body)
	require.NoError(s.t, err)

	return s.raw(method, path, echo.MIMEApplicationJSON, encoded, accessToken)
}

func (s *testServer) register(nome string, email string) (string, int64) {
	s.t.Helper()

	res := s.do(http.MethodPost, "/auth/register", map[string]string{
		"nome":  nome,
		"email": email,
		"senha": "segredo123",
	}, "")
	require.Equal(s.t, http.StatusCreated, res.code, res.raw)

	usuario := res.body["usuario"].(map[string]any)

	return res.body["token"].(string), int64(usuario["id"].(float64))
}

func (s *testServer) createPost(accessToken string, title string, content string) int64 {
	s.t.Helper()

	res := s.do(http.MethodPost, "/posts", map[string]string{"title": title, "content": content}, accessToken)
	require.Equal(s.t, http.StatusCreated, res.code, res.raw)

	return int64(res.body["post"].(map[string]any)["id"].(float64))
}

func path(format string, id int64) string {
	return strings.Replace(format, ":id", strconv.FormatInt(id, 10), 1)
}

func TestServiceRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("health", func(t *testing.T) {
		res := s.do(http.MethodGet, "/health", nil, "")
		assert.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, "healthy", res.body["status"])
		assert.NotEmpty(t, res.body["timestamp"])
		assert.Equal(t, "nosniff", res.header.Get("X-Content-Type-Options"))
		assert.NotEmpty(t, res.header.Get(echo.HeaderXRequestID))
	})

	t.Run("greeting", func(t *testing.T) {
		res := s.do(http.MethodGet, "/saudacao", nil, "")
		assert.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, "Olá! Bem-vindo ao servidor.", res.body["mensagem"])
	})

	t.Run("unknown route", func(t *testing.T) {
		res := s.do(http.MethodGet, "/nope", nil, "")
		assert.Equal(t, http.StatusNotFound, res.code)
		assert.Equal(t, "Rota não encontrada", res.body["erro"])
	})

	t.Run("docs are hidden outside of debug mode", func(t *testing.T) {
		res := s.do(http.MethodGet, "/docs/index.html", nil, "")
		assert.Equal(t, http.StatusNotFound, res.code)
	})
}

func TestDocs(t *testing.T) {
	s := newTestServer(t, nil)

	config.Debug.Enabled = true
	t.Cleanup(func() { config.Debug.Enabled = false })
	s.router = Create()

	res := s.raw(http.MethodGet, "/docs/doc.json", "", "", "")
	assert.Equal(t, http.StatusOK, res.code)
	assert.Contains(t, res.raw, "Classroom blog API")
	assert.Contains(t, res.raw, "/posts/{id}/comments")
}

func TestAuth(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("register", func(t *testing.T) {
		res := s.do(http.MethodPost, "/auth/register", map[string]string{
			"nome":  "Ana Souza",
			"email": " Ana@Example.com ",
			"senha": "segredo123",
		}, "")

		require.Equal(t, http.StatusCreated, res.code, res.raw)
		assert.Equal(t, "Usuário criado", res.body["mensagem"])
		assert.NotEmpty(t, res.body["token"])

		usuario := res.body["usuario"].(map[string]any)
		assert.Equal(t, "ana@example.com", usuario["email"])
		assert.Equal(t, "Ana Souza", usuario["nome"])
		assert.NotContains(t, usuario, "password_hash")
		assert.Equal(t, "no-store, max-age=0", res.header.Get("Cache-Control"))
	})

	t.Run("register errors", func(t *testing.T) {
		tests := []struct {
			name    string
			body    map[string]string
			code    int
			message string
		}{
			{"short name", map[string]string{"nome": "A", "email": "a@example.com", "senha": "segredo123"}, http.StatusBadRequest, "Nome inválido (mínimo 2 caracteres)"},
			{"invalid email", map[string]string{"nome": "Ana", "email": "ana.example.com", "senha": "segredo123"}, http.StatusBadRequest, "Email inválido"},
			{"short password", map[string]string{"nome": "Ana", "email": "a@example.com", "senha": "123"}, http.StatusBadRequest, "Senha inválida (mínimo 6 caracteres)"},
			{"duplicate email", map[string]string{"nome": "Ana", "email": "ana@example.com", "senha": "segredo123"}, http.StatusConflict, "Email já cadastrado"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				res := s.do(http.MethodPost, "/auth/register", test.body, "")
				assert.Equal(t, test.code, res.code)
				assert.Equal(t, test.message, res.body["erro"])
			})
		}
	})

	t.Run("register with non-string fields", func(t *testing.T) {
		res := s.raw(http.MethodPost, "/auth/register", echo.MIMEApplicationJSON,
			`{"nome":123,"email":"num@example.com","senha":"segredo123"}`, "")
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Nome inválido (mínimo 2 caracteres)", res.body["erro"])

		res = s.raw(http.MethodPost, "/auth/register", echo.MIMEApplicationJSON,
			`{"nome":"Ana","email":"num@example.com","senha":123456}`, "")
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Senha inválida (mínimo 6 caracteres)", res.body["erro"])
	})

	t.Run("long password", func(t *testing.T) {
		password := strings.Repeat("a", 80)

		res := s.do(http.MethodPost, "/auth/register", map[string]string{
			"nome":  "Longa Senha",
			"email": "longa@example.com",
			"senha": password,
		}, "")
		require.Equal(t, http.StatusCreated, res.code, res.raw)

		res = s.do(http.MethodPost, "/auth/login", map[string]string{
			"email": "longa@example.com",
			"senha": password,
		}, "")
		assert.Equal(t, http.StatusOK, res.code, res.raw)

		res = s.do(http.MethodPost, "/auth/login", map[string]string{
			"email": "longa@example.com",
			"senha": strings.Repeat("a", 79) + "b",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, res.code)
	})

	t.Run("non-JSON body", func(t *testing.T) {
		res := s.raw(http.MethodPost, "/auth/register", "text/plain", "nome=Ana", "")
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Conteúdo deve ser JSON", res.body["erro"])
	})

	t.Run("malformed JSON", func(t *testing.T) {
		res := s.raw(http.MethodPost, "/auth/login", echo.MIMEApplicationJSON, `{"email":`, "")
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "JSON inválido", res.body["erro"])
	})

	t.Run("login", func(t *testing.T) {
		res := s.do(http.MethodPost, "/auth/login", map[string]string{
			"email": "ANA@example.com",
			"senha": "segredo123",
		}, "")

		require.Equal(t, http.StatusOK, res.code, res.raw)
		assert.Equal(t, "Login bem-sucedido", res.body["mensagem"])
		assert.NotEmpty(t, res.body["token"])
		assert.Equal(t, "ana@example.com", res.body["usuario"].(map[string]any)["email"])
	})

	t.Run("login without credentials", func(t *testing.T) {
		res := s.do(http.MethodPost, "/auth/login", map[string]string{"email": "ana@example.com"}, "")
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Email e senha são obrigatórios", res.body["erro"])
	})

	t.Run("unknown email", func(t *testing.T) {
		res := s.do(http.MethodPost, "/auth/login", map[string]string{
			"email": "ghost@example.com",
			"senha": "segredo123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, res.code)
		assert.Equal(t, "Credenciais inválidas", res.body["erro"])

		// Unknown emails never get locked
		for range config.Auth.MaxLoginAttempts + 1 {
			res = s.do(http.MethodPost, "/auth/login", map[string]string{
				"email": "ghost@example.com",
				"senha": "segredo123",
			}, "")
			assert.Equal(t, http.StatusUnauthorized, res.code)
		}
	})

	t.Run("lockout", func(t *testing.T) {
		s.register("Bruno Lima", "bruno@example.com")

		wrong := map[string]string{"email": "bruno@example.com", "senha": "errada123"}

		for range config.Auth.MaxLoginAttempts - 1 {
			res := s.do(http.MethodPost, "/auth/login", wrong, "")
			assert.Equal(t, http.StatusUnauthorized, res.code)
		}

		res := s.do(http.MethodPost, "/auth/login", wrong, "")
		assert.Equal(t, http.StatusLocked, res.code)
		assert.Contains(t, res.body["erro"], "Conta bloqueada")

		res = s.do(http.MethodPost, "/auth/login", map[string]string{
			"email": "bruno@example.com",
			"senha": "segredo123",
		}, "")
		assert.Equal(t, http.StatusLocked, res.code)
	})
}

func TestMe(t *testing.T) {
	s := newTestServer(t, nil)

	accessToken, id := s.register("Ana Souza", "ana@example.com")

	t.Run("authenticated", func(t *testing.T) {
		res := s.do(http.MethodGet, "/me", nil, accessToken)
		require.Equal(t, http.StatusOK, res.code, res.raw)
		assert.Equal(t, float64(id), res.body["id"])
		assert.Equal(t, "Ana Souza", res.body["nome"])
		assert.NotEmpty(t, res.body["created_at"])
	})

	t.Run("missing token", func(t *testing.T) {
		res := s.do(http.MethodGet, "/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, res.code)
		assert.Equal(t, "Token ausente", res.body["erro"])
	})

	t.Run("invalid token", func(t *testing.T) {
		res := s.do(http.MethodGet, "/me", nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, res.code)
		assert.Equal(t, "Token inválido ou expirado", res.body["erro"])
	})
}

func TestPosts(t *testing.T) {
	s := newTestServer(t, nil)

	ana, _ := s.register("Ana Souza", "ana@example.com")
	bruno, _ := s.register("Bruno Lima", "bruno@example.com")

	first := s.createPost(ana, "Primeiro post", "Olá mundo do Go")
	second := s.createPost(ana, "Segundo post", "Falando sobre SQLite")
	third := s.createPost(bruno, "Post do Bruno", "Conteúdo qualquer")

	t.Run("create requires token", func(t *testing.T) {
		res := s.do(http.MethodPost, "/posts", map[string]string{"title": "Título", "content": "Conteúdo"}, "")
		assert.Equal(t, http.StatusUnauthorized, res.code)
	})

	t.Run("create validation", func(t *testing.T) {
		res := s.do(http.MethodPost, "/posts", map[string]string{"title": "Oi", "content": "Conteúdo"}, ana)
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Title inválido (mínimo 3 caracteres)", res.body["erro"])

		res = s.do(http.MethodPost, "/posts", map[string]string{"title": "Título", "content": "Oi"}, ana)
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Conteúdo inválido (mínimo 5 caracteres)", res.body["erro"])
	})

	t.Run("list", func(t *testing.T) {
		res := s.do(http.MethodGet, "/posts?page=1&per_page=2", nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, float64(3), res.body["total"])
		assert.Equal(t, float64(2), res.body["per_page"])

		posts := res.body["posts"].([]any)
		require.Len(t, posts, 2)
		assert.Equal(t, float64(third), posts[0].(map[string]any)["id"])
		assert.Equal(t, "Bruno Lima", posts[0].(map[string]any)["author_name"])
	})

	t.Run("list clamps pagination", func(t *testing.T) {
		res := s.do(http.MethodGet, "/posts?page=0&per_page=1000", nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, float64(1), res.body["page"])
		assert.Equal(t, float64(config.Posts.MaxPageSize), res.body["per_page"])

		res = s.do(http.MethodGet, "/posts?page=9223372036854775807", nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, float64(math.MaxInt/config.Posts.MaxPageSize+1), res.body["page"])
		assert.Equal(t, float64(3), res.body["total"])
		assert.Empty(t, res.body["posts"])

		res = s.do(http.MethodGet, "/posts?page=abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Parâmetros de paginação inválidos", res.body["erro"])
	})

	t.Run("search", func(t *testing.T) {
		res := s.do(http.MethodGet, "/posts/search?q=sqlite", nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Contains(t, res.raw, "Segundo post")
		assert.NotContains(t, res.raw, "Primeiro post")

		res = s.do(http.MethodGet, "/posts/search?q=nada-aqui", nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.JSONEq(t, "[]", res.raw)

		res = s.do(http.MethodGet, "/posts/search?q=%20", nil, "")
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Parâmetro 'q' é obrigatório", res.body["erro"])
	})

	t.Run("get", func(t *testing.T) {
		res := s.do(http.MethodGet, path("/posts/:id", first), nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, "Primeiro post", res.body["title"])
		assert.Nil(t, res.body["updated_at"])

		res = s.do(http.MethodGet, "/posts/999", nil, "")
		assert.Equal(t, http.StatusNotFound, res.code)
		assert.Equal(t, "Post não encontrado", res.body["erro"])

		res = s.do(http.MethodGet, "/posts/abc", nil, "")
		assert.Equal(t, http.StatusNotFound, res.code)
	})

	t.Run("update", func(t *testing.T) {
		res := s.do(http.MethodPut, path("/posts/:id", first), map[string]string{"title": "Título novo"}, bruno)
		assert.Equal(t, http.StatusForbidden, res.code)
		assert.Equal(t, "Apenas o autor pode editar este post", res.body["erro"])

		res = s.do(http.MethodPut, "/posts/999", map[string]string{"title": "Título novo"}, ana)
		assert.Equal(t, http.StatusNotFound, res.code)

		res = s.do(http.MethodPut, path("/posts/:id", first), map[string]string{"title": "x", "content": "y"}, ana)
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Nada para atualizar (title mínimo 3 chars, content mínimo 5 chars)", res.body["erro"])

		res = s.do(http.MethodPut, path("/posts/:id", first), map[string]string{"title": "Título novo", "content": "y"}, ana)
		require.Equal(t, http.StatusOK, res.code, res.raw)
		assert.Equal(t, "Post atualizado", res.body["mensagem"])

		res = s.do(http.MethodGet, path("/posts/:id", first), nil, "")
		assert.Equal(t, "Título novo", res.body["title"])
		assert.Equal(t, "Olá mundo do Go", res.body["content"])
		assert.NotNil(t, res.body["updated_at"])
	})

	t.Run("comments", func(t *testing.T) {
		commentsPath := path("/posts/:id/comments", second)

		res := s.do(http.MethodPost, commentsPath, map[string]string{"content": "  "}, bruno)
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Conteúdo do comentário é obrigatório", res.body["erro"])

		res = s.do(http.MethodPost, "/posts/999/comments", map[string]string{"content": "Oi"}, bruno)
		assert.Equal(t, http.StatusNotFound, res.code)

		res = s.do(http.MethodPost, commentsPath, map[string]string{"content": "Muito bom!"}, bruno)
		require.Equal(t, http.StatusCreated, res.code, res.raw)
		assert.Equal(t, "Comentário criado", res.body["mensagem"])
		brunoComment := int64(res.body["comment"].(map[string]any)["id"].(float64))

		res = s.do(http.MethodPost, commentsPath, map[string]string{"content": "Obrigada!"}, ana)
		require.Equal(t, http.StatusCreated, res.code)
		anaComment := int64(res.body["comment"].(map[string]any)["id"].(float64))

		res = s.do(http.MethodGet, commentsPath, nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, float64(second), res.body["post_id"])

		comments := res.body["comments"].([]any)
		require.Len(t, comments, 2)
		assert.Equal(t, "Muito bom!", comments[0].(map[string]any)["content"])
		assert.Equal(t, "Bruno Lima", comments[0].(map[string]any)["author_name"])

		// Bruno is neither author of Ana's comment nor of the post
		res = s.do(http.MethodDelete, path("/comments/:id", anaComment), nil, bruno)
		assert.Equal(t, http.StatusForbidden, res.code)
		assert.Equal(t, "Somente o autor do comentário ou o autor do post pode excluir", res.body["erro"])

		// Post author can delete any comment of the post
		res = s.do(http.MethodDelete, path("/comments/:id", brunoComment), nil, ana)
		assert.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, "Comentário excluído", res.body["mensagem"])

		res = s.do(http.MethodDelete, path("/comments/:id", brunoComment), nil, ana)
		assert.Equal(t, http.StatusNotFound, res.code)
		assert.Equal(t, "Comentário não encontrado", res.body["erro"])
	})

	t.Run("delete", func(t *testing.T) {
		res := s.do(http.MethodDelete, path("/posts/:id", second), nil, bruno)
		assert.Equal(t, http.StatusForbidden, res.code)
		assert.Equal(t, "Apenas o autor pode excluir este post", res.body["erro"])

		res = s.do(http.MethodDelete, path("/posts/:id", second), nil, ana)
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, "Post excluído", res.body["mensagem"])

		res = s.do(http.MethodGet, path("/posts/:id/comments", second), nil, "")
		assert.Equal(t, http.StatusNotFound, res.code)

		res = s.do(http.MethodDelete, path("/posts/:id", second), nil, ana)
		assert.Equal(t, http.StatusNotFound, res.code)
	})
}

func TestUsers(t *testing.T) {
	s := newTestServer(t, nil)

	_, anaID := s.register("Ana Souza", "ana@example.com")
	_, brunoID := s.register(`Bruno "Bru" Lima`, "bruno@example.com")

	t.Run("list", func(t *testing.T) {
		res := s.do(http.MethodGet, "/users?per_page=500", nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, float64(100), res.body["per_page"])
		assert.Equal(t, float64(2), res.body["total"])

		users := res.body["users"].([]any)
		require.Len(t, users, 2)
		assert.Equal(t, float64(brunoID), users[0].(map[string]any)["id"])
		assert.NotContains(t, res.raw, "password")

		res = s.do(http.MethodGet, "/users?per_page=x", nil, "")
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.Equal(t, "Parâmetros de paginação inválidos", res.body["erro"])
	})

	t.Run("get", func(t *testing.T) {
		res := s.do(http.MethodGet, path("/users/:id", anaID), nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, "ana@example.com", res.body["email"])

		res = s.do(http.MethodGet, "/users/999", nil, "")
		assert.Equal(t, http.StatusNotFound, res.code)
		assert.Equal(t, "Usuário não encontrado", res.body["erro"])
	})

	t.Run("export", func(t *testing.T) {
		res := s.do(http.MethodGet, "/export/csv", nil, "")
		require.Equal(t, http.StatusOK, res.code)
		assert.Equal(t, "text/csv; charset=utf-8", res.header.Get(echo.HeaderContentType))

		lines := strings.Split(res.raw, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "id,nome,email,created_at", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], strconv.FormatInt(anaID, 10)+`,"Ana Souza",ana@example.com,`))
		assert.True(t, strings.HasPrefix(lines[2], strconv.FormatInt(brunoID, 10)+`,"Bruno ""Bru"" Lima",bruno@example.com,`))
	})
}

func TestAuthRateLimiting(t *testing.T) {
	s := newTestServer(t, func(c *config.Configs) {
		c.RateLimiting = true
	})

	body := map[string]string{"email": "ghost@example.com"}

	// Limiter allows burst of 3 requests
	for range 3 {
		res := s.do(http.MethodPost, "/auth/login", body, "")
		assert.Equal(t, http.StatusBadRequest, res.code)
	}

	res := s.do(http.MethodPost, "/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, res.code)
	assert.NotEmpty(t, res.header.Get("Retry-After"))
	assert.NotEmpty(t, res.body["erro"])

	res = s.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, res.code)
}
