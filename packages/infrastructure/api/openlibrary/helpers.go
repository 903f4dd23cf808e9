package openlibrary

import (
	"slices"
	"strings"
)

// Case-insensitive substring match on any subject.
func FilterBySubject(books []Book, subject string) []Book {
	subject = strings.ToLower(subject)

	res := []Book{}
	for _, book := range books {
		if slices.ContainsFunc(book.Subjects, func(s string) bool {
			return strings.Contains(strings.ToLower(s), subject)
		}) {
			res = append(res, book)
		}
	}
	return res
}

func FilterByRating(books []Book, minRating float64) []Book {
	res := []Book{}
	for _, book := range books {
		if book.Rating >= minRating {
			res = append(res, book)
		}
	}
	return res
}

func sorted(books []Book, desc bool, key func(Book) float64) []Book {
	res := slices.Clone(books)

	slices.SortStableFunc(res, func(a, b Book) int {
		ka, kb := key(a), key(b)
		if desc {
			ka, kb = kb, ka
		}
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})

	return res
}

// Returns sorted copy of books.
func SortByRating(books []Book, desc bool) []Book {
	return sorted(books, desc, func(b Book) float64 { return b.Rating })
}

// Returns sorted copy of books. Unknown year counts as 0.
func SortByYear(books []Book, desc bool) []Book {
	return sorted(books, desc, func(b Book) float64 { return float64(b.Year) })
}

func AverageRating(books []Book) float64 {
	if len(books) == 0 {
		return 0
	}

	var sum float64
	for _, book := range books {
		sum += book.Rating
	}

	return sum / float64(len(books))
}

// Returns first book with the highest rating.
func Best(books []Book) (Book, bool) {
	if len(books) == 0 {
		return Book{}, false
	}
	best := books[0]
	for _, book := range books[1:] {
		if book.Rating > best.Rating {
			best = book
		}
	}
	return best, true
}

// Returns first book with the lowest rating.
func Worst(books []Book) (Book, bool) {
	if len(books) == 0 {
		return Book{}, false
	}
	worst := books[0]
	for _, book := range books[1:] {
		if book.Rating < worst.Rating {
			worst = book
		}
	}
	return worst, true
}
