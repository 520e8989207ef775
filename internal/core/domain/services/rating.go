package services

import "math"

// RestaurantRating is a restaurant's review aggregate, always derived from
// the full review set rather than incrementally mutated.
type RestaurantRating struct {
	Rating      float64
	ReviewCount int
}

// RecomputeRating derives the rating aggregate from the given review ratings.
// The average is rounded to one decimal place. An empty review set yields a
// zero rating with zero count.
func RecomputeRating(ratings []int) RestaurantRating {
	if len(ratings) == 0 {
		return RestaurantRating{}
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	avg := float64(sum) / float64(len(ratings))
	return RestaurantRating{
		Rating:      math.Round(avg*10) / 10,
		ReviewCount: len(ratings),
	}
}
