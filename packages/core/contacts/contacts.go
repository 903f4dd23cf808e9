package contacts

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"sort"
	"strings"
	"sync"
)

type Contact struct {
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
}

var ErrInvalidContact = Error.NewStatusError(
	"Nome e telefone são obrigatórios",
	http.StatusBadRequest,
)
var ErrContactExists = Error.NewStatusError(
	"Contato já existe",
	http.StatusConflict,
)
var ErrContactNotFound = Error.NewStatusError(
	"Contato não encontrado",
	http.StatusNotFound,
)

// Contacts book indexed by name. Safe for concurrent use.
type Book struct {
	mu       sync.RWMutex
	contacts map[string]string
}

func NewBook() *Book {
	return &Book{contacts: make(map[string]string)}
}

// Book pre-filled with a couple of sample contacts.
func NewSampleBook() *Book {
	b := NewBook()
	b.contacts["Marcos"] = "11-99999-8888"
	b.contacts["Carla"] = "21-98765-4321"
	return b
}

func (b *Book) Add(name string, phone string) *Error.Status {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" || phone == "" {
		return ErrInvalidContact
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.contacts[name]; exists {
		return ErrContactExists
	}

	b.contacts[name] = phone

	return nil
}

func (b *Book) Remove(name string) *Error.Status {
	name = strings.TrimSpace(name)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.contacts[name]; !exists {
		return ErrContactNotFound
	}

	delete(b.contacts, name)

	return nil
}

// Returns contacts whose name contains query (case-insensitive), sorted by name.
func (b *Book) Find(query string) []Contact {
	query = strings.ToLower(strings.TrimSpace(query))

	b.mu.RLock()
	defer b.mu.RUnlock()

	res := []Contact{}
	for name, phone := range b.contacts {
		if strings.Contains(strings.ToLower(name), query) {
			res = append(res, Contact{name, phone})
		}
	}

	sortByName(res)

	return res
}

func (b *Book) List() []Contact {
	b.mu.RLock()
	defer b.mu.RUnlock()

	res := make([]Contact, 0, len(b.contacts))
	for name, phone := range b.contacts {
		res = append(res, Contact{name, phone})
	}

	sortByName(res)

	return res
}

func sortByName(contacts []Contact) {
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Name < contacts[j].Name
	})
}
