package commands

import (
	"classroom/packages/infrastructure/api/openlibrary"
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var ErrInvalidSort = errors.New("ordenação inválida, opções: rating, year")

func newBooksCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Busca de livros (Open Library)",
	}

	cmd.AddCommand(newBooksSearchCommand(ctx))

	return cmd
}

type bookSearchOptions struct {
	limit     int
	genre     string
	minRating float64
	sort      string
	asc       bool
}

func newBooksSearchCommand(ctx context.Context) *cobra.Command {
	opts := new(bookSearchOptions)

	cmd := &cobra.Command{
		Use:   "search <titulo>",
		Short: "Buscar livros pelo título",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			books, fromCatalog := openlibrary.New().SearchWithFallback(ctx, strings.Join(args, " "), opts.limit)
			if fromCatalog {
				warning(out, "API indisponível, usando catálogo local")
			}

			books, err := refineBooks(books, opts)
			if err != nil {
				return err
			}

			rows := make([][]string, len(books))
			for i, b := range books {
				year := "-"
				if b.Year != 0 {
					year = strconv.Itoa(b.Year)
				}
				rows[i] = []string{
					b.Title,
					strings.Join(b.Authors, ", "),
					year,
					strconv.FormatFloat(b.Rating, 'f', 1, 64),
					strings.Join(b.Subjects, ", "),
				}
			}

			renderTable(out, []string{"Título", "Autores", "Ano", "Nota", "Gêneros"}, rows)

			if len(books) == 0 {
				return nil
			}

			best, _ := openlibrary.Best(books)
			worst, _ := openlibrary.Worst(books)

			renderPairs(out, [][2]string{
				{"Nota média", strconv.FormatFloat(openlibrary.AverageRating(books), 'f', 2, 64)},
				{"Melhor avaliado", best.Title},
				{"Pior avaliado", worst.Title},
			})

			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", openlibrary.DefaultLimit, "quantidade máxima de resultados")
	cmd.Flags().StringVar(&opts.genre, "genre", "", "filtrar por gênero")
	cmd.Flags().Float64Var(&opts.minRating, "min-rating", 0, "nota mínima")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "ordenar por rating ou year")
	cmd.Flags().BoolVar(&opts.asc, "asc", false, "ordem crescente")

	return cmd
}

func refineBooks(books []openlibrary.Book, opts *bookSearchOptions) ([]openlibrary.Book, error) {
	if opts.genre != "" {
		books = openlibrary.FilterBySubject(books, opts.genre)
	}
	if opts.minRating > 0 {
		books = openlibrary.FilterByRating(books, opts.minRating)
	}

	switch opts.sort {
	case "":
	case "rating":
		books = openlibrary.SortByRating(books, !opts.asc)
	case "year":
		books = openlibrary.SortByYear(books, !opts.asc)
	default:
		return nil, ErrInvalidSort
	}

	return books, nil
}
