package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"bcpartners_backend/internal/models"
	"bcpartners_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReview_Submit_ForcesPending checks the moderation invariant: a
// client-supplied status is ignored and the review always enters pending.
func TestReview_Submit_ForcesPending(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	slug := fmt.Sprintf("review-co-%d", time.Now().UnixNano())
	listing := helpers.CreateListing(t, tx, slug, "Review Co", models.TierGold, []string{"ERP"})

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/"+slug+"/reviews", "", map[string]interface{}{
		"rating":            5,
		"reviewer_name":     "Sam Taylor",
		"reviewer_industry": "Retail",
		"title":             "Great rollout",
		"body":              "Smooth implementation from start to finish.",
		"status":            "approved",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Submission should succeed, got: "+bodyStr)
	assert.Contains(t, bodyStr, `"status":"pending"`)

	// The pending review is invisible on the public detail view.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/listings/"+slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"review_count":0`)
	assert.NotContains(t, bodyStr, "Sam Taylor")

	var count int64
	require.NoError(t, tx.Model(&models.Review{}).Where("listing_id = ?", listing.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReview_Submit_Validation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	slug := fmt.Sprintf("strict-co-%d", time.Now().UnixNano())
	helpers.CreateListing(t, tx, slug, "Strict Co", models.TierMember, nil)

	// Rating outside 1..5.
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/"+slug+"/reviews", "", map[string]interface{}{
		"rating":            6,
		"reviewer_name":     "Sam",
		"reviewer_industry": "Retail",
		"title":             "Over the top",
		"body":              "Too good to be true.",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "rating")

	// Missing required fields.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/"+slug+"/reviews", "", map[string]interface{}{
		"rating": 4,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "reviewer_name")

	// Unrecognized status value is rejected, not silently dropped.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/"+slug+"/reviews", "", map[string]interface{}{
		"rating":            4,
		"reviewer_name":     "Sam",
		"reviewer_industry": "Retail",
		"title":             "Fine",
		"body":              "Fine.",
		"status":            "published",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "status")

	// Unknown listing.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/no-such-partner/reviews", "", map[string]interface{}{
		"rating":            4,
		"reviewer_name":     "Sam",
		"reviewer_industry": "Retail",
		"title":             "Fine",
		"body":              "Fine.",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestReview_ApproveFlow walks the queue: pending listed, approval makes
// the review public and counted, approving twice fails.
func TestReview_ApproveFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginOperator(t, ts, tx)
	slug := fmt.Sprintf("approve-co-%d", time.Now().UnixNano())
	listing := helpers.CreateListing(t, tx, slug, "Approve Co", models.TierVerified, nil)
	review := helpers.CreateReview(t, tx, listing.ID, 4, models.ReviewStatusPending)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/reviews/pending", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, review.ID)
	assert.Contains(t, bodyStr, "Approve Co")

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPatch, "/api/v1/admin/reviews/"+review.ID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Approve should succeed, got: "+bodyStr)

	// Now public and counted.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/listings/"+slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"review_count":1`)
	assert.Contains(t, bodyStr, `"rating_text":"4.0"`)

	// Second approval is an invalid transition.
	res, _ = ts.SendRequest(t, tx, http.MethodPatch, "/api/v1/admin/reviews/"+review.ID+"/approve", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// The queue is empty again.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/reviews/pending", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, review.ID)
}

// TestReview_Reject_HardDeletes checks that rejection removes the record
// outright; there is no rejected state to resurrect.
func TestReview_Reject_HardDeletes(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginOperator(t, ts, tx)
	listing := helpers.CreateListing(t, tx, fmt.Sprintf("reject-co-%d", time.Now().UnixNano()), "Reject Co", models.TierMember, nil)
	review := helpers.CreateReview(t, tx, listing.ID, 2, models.ReviewStatusPending)

	res, _ := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/admin/reviews/"+review.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, tx.Model(&models.Review{}).Where("id = ?", review.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Deleting again reports not found.
	res, _ = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/admin/reviews/"+review.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
