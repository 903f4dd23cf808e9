package openmeteo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type currentProvider interface {
	Current(ctx context.Context, city string, country string) (*Weather, error)
}

type Comparison struct {
	City    string
	Weather *Weather
	Err     error
}

// Fetches current weather for all cities in parallel.
// Result has the same order as cities, failed cities have non-nil Err.
func Compare(ctx context.Context, provider currentProvider, cities []string) []Comparison {
	res := make([]Comparison, len(cities))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, city := range cities {
		g.Go(func() error {
			w, err := provider.Current(ctx, city, "")
			res[i] = Comparison{City: city, Weather: w, Err: err}
			return nil
		})
	}

	g.Wait()

	return res
}

// Returns weather of all successfully fetched cities.
func Succeeded(comparisons []Comparison) []*Weather {
	res := []*Weather{}
	for _, c := range comparisons {
		if c.Err == nil {
			res = append(res, c.Weather)
		}
	}
	return res
}
