package shopping

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"strings"
	"sync"
)

var ErrEmptyItem = Error.NewStatusError(
	"Item não pode estar vazio",
	http.StatusBadRequest,
)
var ErrItemNotFound = Error.NewStatusError(
	"Item não está na lista",
	http.StatusNotFound,
)

// Shopping list, items keep insertion order. Safe for concurrent use.
type List struct {
	mu    sync.RWMutex
	items []string
}

func NewList() *List {
	return new(List)
}

func (l *List) Add(item string) *Error.Status {
	item = strings.TrimSpace(item)
	if item == "" {
		return ErrEmptyItem
	}

	l.mu.Lock()
	l.items = append(l.items, item)
	l.mu.Unlock()

	return nil
}

// Removes first occurrence of item (case-insensitive).
func (l *List) Remove(item string) *Error.Status {
	item = strings.TrimSpace(item)

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, v := range l.items {
		if strings.EqualFold(v, item) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}

	return ErrItemNotFound
}

func (l *List) Items() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]string, len(l.items))
	copy(items, l.items)

	return items
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.items)
}
