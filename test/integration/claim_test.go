package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"bcpartners_backend/internal/models"
	"bcpartners_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClaim_Submit_ForcesPending mirrors the review invariant for claims.
func TestClaim_Submit_ForcesPending(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	slug := fmt.Sprintf("claim-co-%d", time.Now().UnixNano())
	helpers.CreateListing(t, tx, slug, "Claim Co", models.TierMember, nil)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/"+slug+"/claims", "", map[string]interface{}{
		"contact_name": "Alex Chen",
		"work_email":   "alex@claimco.com",
		"message":      "We run this practice, please transfer the listing.",
		"status":       "reviewed",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Submission should succeed, got: "+bodyStr)
	assert.Contains(t, bodyStr, `"status":"pending"`)
}

func TestClaim_Submit_Validation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	slug := fmt.Sprintf("claimval-co-%d", time.Now().UnixNano())
	helpers.CreateListing(t, tx, slug, "ClaimVal Co", models.TierMember, nil)

	// Bad email.
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/"+slug+"/claims", "", map[string]interface{}{
		"contact_name": "Alex",
		"work_email":   "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "work_email")

	// Missing contact name.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/"+slug+"/claims", "", map[string]interface{}{
		"work_email": "alex@claimco.com",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "contact_name")

	// Unrecognized status value.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/listings/"+slug+"/claims", "", map[string]interface{}{
		"contact_name": "Alex",
		"work_email":   "alex@claimco.com",
		"status":       "granted",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "status")
}

// TestClaim_QueueAndDismiss checks the queue lifecycle: a dismissed claim
// leaves the queue but stays in the store as reviewed.
func TestClaim_QueueAndDismiss(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginOperator(t, ts, tx)
	listing := helpers.CreateListing(t, tx, fmt.Sprintf("queue-co-%d", time.Now().UnixNano()), "Queue Co", models.TierVerified, nil)
	claim := helpers.CreateClaim(t, tx, listing.ID, models.ClaimStatusPending)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/claims/pending", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, claim.ID)
	assert.Contains(t, bodyStr, "Queue Co")

	res, _ = ts.SendRequest(t, tx, http.MethodPatch, "/api/v1/admin/claims/"+claim.ID+"/reviewed", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Gone from the queue, retained in the store.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/claims/pending", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, claim.ID)

	var reloaded models.Claim
	require.NoError(t, tx.First(&reloaded, "id = ?", claim.ID).Error)
	assert.Equal(t, models.ClaimStatusReviewed, reloaded.Status)

	// Dismissing twice is an invalid transition.
	res, _ = ts.SendRequest(t, tx, http.MethodPatch, "/api/v1/admin/claims/"+claim.ID+"/reviewed", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestClaim_Reply_BuildsMailto checks the reply convenience link.
func TestClaim_Reply_BuildsMailto(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginOperator(t, ts, tx)
	listing := helpers.CreateListing(t, tx, fmt.Sprintf("reply-co-%d", time.Now().UnixNano()), "Reply Co", models.TierGold, nil)
	claim := helpers.CreateClaim(t, tx, listing.ID, models.ClaimStatusPending)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/claims/"+claim.ID+"/reply", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Mailto string `json:"mailto"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))

	assert.True(t, strings.HasPrefix(resp.Mailto, "mailto:jordan@claimant.com?"), "got: "+resp.Mailto)
	assert.Contains(t, resp.Mailto, "subject=")
	assert.Contains(t, resp.Mailto, "Reply%20Co")
	assert.NotContains(t, resp.Mailto, "+")
}
