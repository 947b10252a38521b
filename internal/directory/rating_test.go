package directory

import (
	"testing"

	"bcpartners_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func approved(rating int) models.Review {
	return models.Review{Rating: rating, Status: models.ReviewStatusApproved}
}

func pending(rating int) models.Review {
	return models.Review{Rating: rating, Status: models.ReviewStatusPending}
}

func TestAverageRating_Mean(t *testing.T) {
	tests := []struct {
		name      string
		reviews   []models.Review
		wantAvg   float64
		wantCount int
	}{
		{"empty set", nil, 0, 0},
		{"single review", []models.Review{approved(5)}, 5.0, 1},
		{"rounds to one decimal", []models.Review{approved(5), approved(4), approved(4)}, 4.3, 3},
		{"half rounds up", []models.Review{approved(4), approved(5)}, 4.5, 2},
		{"repeating third", []models.Review{approved(1), approved(1), approved(2)}, 1.3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, count := AverageRating(tt.reviews)
			assert.Equal(t, tt.wantAvg, avg)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestAverageRating_ExcludesPending(t *testing.T) {
	// Spec scenario: approved 4 + pending 2 displays as 4.0.
	avg, count := AverageRating([]models.Review{approved(4), pending(2)})
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 1, count)
}

func TestAverageRating_AllPendingIsPlaceholder(t *testing.T) {
	avg, count := AverageRating([]models.Review{pending(5), pending(5)})
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.0", FormatRating(4))
	assert.Equal(t, "4.3", FormatRating(4.3))
	assert.Equal(t, "0.0", FormatRating(0))
}
