package validator

import (
	"testing"

	"bcpartners_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidate_ReviewSubmission(t *testing.T) {
	v := New()

	valid := dto.CreateReviewRequest{
		Rating:           4,
		ReviewerName:     "Sam Taylor",
		ReviewerIndustry: "Retail",
		Title:            "Good partner",
		Body:             "Delivered on time.",
	}
	assert.NoError(t, v.Validate(&valid))

	tests := []struct {
		name      string
		mutate    func(r *dto.CreateReviewRequest)
		wantField string
	}{
		{"rating zero", func(r *dto.CreateReviewRequest) { r.Rating = 0 }, "rating"},
		{"rating too high", func(r *dto.CreateReviewRequest) { r.Rating = 6 }, "rating"},
		{"missing name", func(r *dto.CreateReviewRequest) { r.ReviewerName = "" }, "reviewer_name"},
		{"missing industry", func(r *dto.CreateReviewRequest) { r.ReviewerIndustry = "" }, "reviewer_industry"},
		{"missing title", func(r *dto.CreateReviewRequest) { r.Title = "" }, "title"},
		{"missing body", func(r *dto.CreateReviewRequest) { r.Body = "" }, "body"},
		{"unknown status", func(r *dto.CreateReviewRequest) { r.Status = "published" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(&req)
			require.Error(t, err)

			vErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Contains(t, vErr.Errors, tt.wantField)
		})
	}

	// Known status values pass validation; the service discards them anyway.
	for _, status := range []string{"pending", "approved"} {
		req := valid
		req.Status = status
		assert.NoError(t, v.Validate(&req), "status %q should pass", status)
	}
}

func TestValidate_ClaimSubmission(t *testing.T) {
	v := New()

	valid := dto.CreateClaimRequest{
		ContactName: "Alex Chen",
		WorkEmail:   "alex@claimco.com",
	}
	assert.NoError(t, v.Validate(&valid))

	// Message is optional.
	withMessage := valid
	withMessage.Message = "We own this practice."
	assert.NoError(t, v.Validate(&withMessage))

	bad := valid
	bad.WorkEmail = "not-an-email"
	err := v.Validate(&bad)
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["work_email"])

	missing := valid
	missing.ContactName = ""
	err = v.Validate(&missing)
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "contact_name")

	// Status must be a known value when present.
	badStatus := valid
	badStatus.Status = "granted"
	err = v.Validate(&badStatus)
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Equal(t, "Must be one of: pending, reviewed", vErr.Errors["status"])

	okStatus := valid
	okStatus.Status = "reviewed"
	assert.NoError(t, v.Validate(&okStatus))
}

func TestValidate_ListingUpdate_TierRule(t *testing.T) {
	v := New()

	// No fields set is structurally valid; the service rejects empty updates.
	assert.NoError(t, v.Validate(&dto.UpdateListingRequest{}))

	for _, tier := range []string{"Gold", "Verified", "Member"} {
		req := dto.UpdateListingRequest{Tier: strPtr(tier)}
		assert.NoError(t, v.Validate(&req), "tier %q should pass", tier)
	}

	bad := dto.UpdateListingRequest{Tier: strPtr("Platinum")}
	err := v.Validate(&bad)
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be one of: Gold, Verified, Member", vErr.Errors["tier"])

	// Lowercase labels do not pass; tiers are stored capitalized.
	lower := dto.UpdateListingRequest{Tier: strPtr("gold")}
	assert.Error(t, v.Validate(&lower))

	badURL := dto.UpdateListingRequest{LogoURL: strPtr("not a url")}
	err = v.Validate(&badURL)
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Equal(t, "Must be a valid URL", vErr.Errors["logo_url"])
}

func TestValidate_Login(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.LoginRequest{Email: "op@test.com", Password: "secret"}))

	err := v.Validate(&dto.LoginRequest{Email: "nope", Password: "secret"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")

	err = v.Validate(&dto.LoginRequest{Email: "op@test.com"})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "password")
}
