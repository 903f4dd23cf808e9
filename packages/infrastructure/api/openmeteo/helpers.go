package openmeteo

import "strings"

// Returns weather with temperature in range [low, high].
func FilterByTemperature(list []*Weather, low float64, high float64) []*Weather {
	res := []*Weather{}
	for _, w := range list {
		if w.Temperature >= low && w.Temperature <= high {
			res = append(res, w)
		}
	}
	return res
}

// Case-insensitive match on description.
func FilterByCondition(list []*Weather, keyword string) []*Weather {
	keyword = strings.ToLower(keyword)

	res := []*Weather{}
	for _, w := range list {
		if strings.Contains(strings.ToLower(w.Description), keyword) {
			res = append(res, w)
		}
	}
	return res
}

func pick(list []*Weather, better func(a, b *Weather) bool) (*Weather, bool) {
	if len(list) == 0 {
		return nil, false
	}

	best := list[0]
	for _, w := range list[1:] {
		if better(w, best) {
			best = w
		}
	}

	return best, true
}

func Hottest(list []*Weather) (*Weather, bool) {
	return pick(list, func(a, b *Weather) bool { return a.Temperature > b.Temperature })
}

func Coldest(list []*Weather) (*Weather, bool) {
	return pick(list, func(a, b *Weather) bool { return a.Temperature < b.Temperature })
}

// Returns 0 for empty list.
func AverageTemperature(list []*Weather) float64 {
	if len(list) == 0 {
		return 0
	}

	var sum float64
	for _, w := range list {
		sum += w.Temperature
	}

	return sum / float64(len(list))
}
