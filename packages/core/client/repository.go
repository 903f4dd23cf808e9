package client

import Error "classroom/packages/common/errors"

type Repository interface {
	creator
	seeker
	updater
	deleter
	filter
	aggregator
}

type creator interface {
	// Returns id of the new client.
	CreateClient(data *New) (int64, *Error.Status)

	// Inserts all valid clients in a single transaction.
	// Invalid and duplicate entries are skipped.
	// Returns amount of inserted clients.
	CreateClients(batch []*New) (int, *Error.Status)

	// Inserts sample clients. Returns amount of inserted clients.
	SeedClients() (int, *Error.Status)
}

type seeker interface {
	GetClients() ([]*Client, *Error.Status)

	GetClientByID(id int64) (*Client, *Error.Status)

	GetClientByEmail(email string) (*Client, *Error.Status)

	GetClientsByName(nome string) ([]*Client, *Error.Status)

	SearchClients(f *Filter) ([]*Client, *Error.Status)

	CountClients() (int, *Error.Status)

	GetClientStats() (*Stats, *Error.Status)
}

type updater interface {
	UpdateClient(id int64, changes *Changes) *Error.Status
}

type deleter interface {
	DeleteClient(id int64) *Error.Status

	DeleteClientByEmail(email string) *Error.Status

	// Returns amount of deleted clients.
	ClearClients() (int, *Error.Status)
}

// All filters return clients ordered by name unless stated otherwise.
type filter interface {
	NameStartsWith(letter string) ([]*Client, *Error.Status)

	NameContains(s string) ([]*Client, *Error.Status)

	EmailDomain(domain string) ([]*Client, *Error.Status)

	ByCity(city string) ([]*Client, *Error.Status)

	ByActive(active bool) ([]*Client, *Error.Status)

	ByCriteria(c *Criteria) ([]*Client, *Error.Status)

	// Ordered by city, then by name.
	InCities(cities []string) ([]*Client, *Error.Status)

	NameStartsWithOrCity(letter string, city string) ([]*Client, *Error.Status)

	// Ordered by name length (longest first).
	NameMinLength(n int) ([]*Client, *Error.Status)

	WithPhone(hasPhone bool) ([]*Client, *Error.Status)

	Sorted(order Order) ([]*Client, *Error.Status)
}

type aggregator interface {
	// Ordered by total (descending).
	CountByCity() ([]Group, *Error.Status)

	// Ordered by letter.
	CountByInitial() ([]Group, *Error.Status)

	// Cities which have at least n clients, ordered by total (descending).
	CitiesWithAtLeast(n int) ([]Group, *Error.Status)

	CountStartingWith(letter string) (int, *Error.Status)
}
