package router

import (
	"classroom/packages/presentation/api/http/response"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

// Compatible with encoding/json, except that HTML characters are not escaped
// (post and comment content is returned as is).
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// echo.JSONSerializer and echo.Binder backed by jsoniter.
// Only JSON request bodies are accepted.
type codec struct{}

func (codec) Serialize(ctx echo.Context, v any, indent string) error {
	enc := json.NewEncoder(ctx.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(v)
}

func (codec) Deserialize(ctx echo.Context, v any) error {
	req := ctx.Request()

	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return response.ContentMustBeJSON
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return response.FailedToReadRequestBody
	}

	if err := json.Unmarshal(body, v); err != nil {
		return response.FailedToDecodeRequestBody
	}

	return nil
}

func (c codec) Bind(v any, ctx echo.Context) error {
	return c.Deserialize(ctx, v)
}

var (
	_ echo.JSONSerializer = codec{}
	_ echo.Binder         = codec{}
)
