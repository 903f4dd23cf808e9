package openlibrary

import (
	"classroom/packages/common/config"
	"classroom/packages/common/logger"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/tidwall/gjson"
)

var log = logger.NewSource("OPEN LIBRARY", logger.Default)

const DefaultLimit = 5
const maxSubjects = 3

const UnknownTitle = "Desconhecido"
const NoSynopsis = "Sinopse não disponível"

type Book struct {
	Title    string   `json:"titulo"`
	Authors  []string `json:"autores"`
	Subjects []string `json:"generos"`
	Synopsis string   `json:"sinopse"`
	// 0 if unknown
	Year   int     `json:"ano"`
	Rating float64 `json:"rating"`
}

type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return "erro na API: status " + strconv.Itoa(e.Status)
}

type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "erro de conexão: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

type Client struct {
	http      *http.Client
	searchURL string
	breaker   *gobreaker.CircuitBreaker[[]Book]
}

func NewClient(searchURL string, timeout time.Duration, failures uint32, cooldown time.Duration) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		searchURL: searchURL,
		breaker: gobreaker.NewCircuitBreaker[[]Book](gobreaker.Settings{
			Name:        "Open Library",
			MaxRequests: 1,
			Timeout:     cooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
		}),
	}
}

// Creates client using endpoint and timeouts from config.API.
func New() *Client {
	return NewClient(
		config.API.OpenLibraryURL,
		config.API.Timeout(),
		config.API.BreakerFailures,
		config.API.BreakerCooldown(),
	)
}

func toStrings(values []gjson.Result) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = v.String()
	}
	return res
}

func parseBook(doc gjson.Result) Book {
	book := Book{
		Title:    doc.Get("title").String(),
		Authors:  toStrings(doc.Get("author_name").Array()),
		Subjects: toStrings(doc.Get("subject").Array()),
		Synopsis: doc.Get("first_sentence.0").String(),
		Year:     int(doc.Get("first_publish_year").Int()),
		Rating:   doc.Get("ratings_average").Float(),
	}

	if book.Title == "" {
		book.Title = UnknownTitle
	}
	if book.Synopsis == "" {
		book.Synopsis = NoSynopsis
	}
	if len(book.Subjects) > maxSubjects {
		book.Subjects = book.Subjects[:maxSubjects]
	}

	return book
}

// Searches books by title. Non-positive limit is replaced with DefaultLimit.
func (c *Client) Search(ctx context.Context, title string, limit int) ([]Book, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	log.Trace("Searching '"+title+"'...", nil)

	params := url.Values{}
	params.Set("title", title)
	params.Set("limit", strconv.Itoa(limit))

	books, err := c.breaker.Execute(func() ([]Book, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}

		res, err := c.http.Do(req)
		if err != nil {
			return nil, &ConnectionError{Err: err}
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return nil, &APIError{Status: res.StatusCode}
		}

		body, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, &ConnectionError{Err: err}
		}

		docs := gjson.GetBytes(body, "docs").Array()
		if len(docs) > limit {
			docs = docs[:limit]
		}

		books := make([]Book, len(docs))
		for i, doc := range docs {
			books[i] = parseBook(doc)
		}

		return books, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		log.Error("Request blocked by circuit breaker", err.Error(), nil)
		return nil, &ConnectionError{Err: err}
	}
	if err != nil {
		log.Error("Failed to search '"+title+"'", err.Error(), nil)
		return nil, err
	}

	log.Trace("Searching '"+title+"': OK", logger.Meta{"results": len(books)})

	return books, nil
}

// Same as Search, but falls back to local catalog on any error.
// fromCatalog reports whether results came from the catalog.
func (c *Client) SearchWithFallback(ctx context.Context, title string, limit int) (books []Book, fromCatalog bool) {
	books, err := c.Search(ctx, title, limit)
	if err != nil {
		log.Warning("Using local catalog: "+err.Error(), nil)
		return SearchCatalog(title), true
	}
	return books, false
}
