package directory

import (
	"math"
	"strconv"

	"bcpartners_backend/internal/models"
)

// AverageRating reduces a listing's reviews to the publicly displayed score:
// the arithmetic mean of approved ratings rounded to one decimal place, plus
// the count of reviews that were aggregated. Pending reviews are skipped, so
// the caller may pass a mixed set. An empty (or all-pending) set yields
// (0, 0) rather than a division-by-zero failure.
func AverageRating(reviews []models.Review) (avg float64, count int) {
	sum := 0
	for _, r := range reviews {
		if r.Status != models.ReviewStatusApproved {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return 0, 0
	}
	avg = math.Round(float64(sum)/float64(count)*10) / 10
	return avg, count
}

// FormatRating renders an average the way the site shows it ("4.0").
// Zero is the defined placeholder for "no rating yet".
func FormatRating(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}
