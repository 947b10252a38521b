package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"bcpartners_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateOperator inserts a moderation account with a hashed password.
func CreateOperator(t *testing.T, tx *gorm.DB, email, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err, "Failed to hash operator password")

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
	}
	require.NoError(t, tx.Create(user).Error, "Failed to create operator")
	return user
}

// CreateAndLoginOperator creates a unique operator and logs in through the
// API, returning the bearer token.
func CreateAndLoginOperator(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("operator_%d@test.com", time.Now().UnixNano())
	password := "password123"
	user := CreateOperator(t, tx, email, password)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateListing inserts a listing with the given tier and service tags.
// The ranking priority is written the way a tier change would write it.
func CreateListing(t *testing.T, tx *gorm.DB, slug, name string, tier models.PartnerTier, services []string) *models.Listing {
	weights := map[models.PartnerTier]int{
		models.TierGold:     3,
		models.TierVerified: 2,
		models.TierMember:   1,
	}

	listing := &models.Listing{
		Slug:            slug,
		Name:            name,
		Description:     "Test description for " + name,
		Type:            "Reseller",
		Tier:            tier,
		LogoURL:         "https://cdn.test.com/" + slug + ".png",
		WebsiteURL:      "https://" + slug + ".test.com",
		RankingPriority: weights[tier],
	}
	require.NoError(t, listing.SetServiceList(services))
	require.NoError(t, tx.Create(listing).Error, "Failed to create listing")
	return listing
}

// CreateReview inserts a review directly with the given status.
func CreateReview(t *testing.T, tx *gorm.DB, listingID string, rating int, status models.ReviewStatus) *models.Review {
	review := &models.Review{
		ListingID:        listingID,
		Rating:           rating,
		ReviewerName:     "Test Reviewer",
		ReviewerIndustry: "Manufacturing",
		Title:            "Solid partner",
		Body:             "They delivered what they promised.",
		Status:           status,
	}
	require.NoError(t, tx.Create(review).Error, "Failed to create review")
	return review
}

// CreateClaim inserts an ownership claim directly with the given status.
func CreateClaim(t *testing.T, tx *gorm.DB, listingID string, status models.ClaimStatus) *models.Claim {
	claim := &models.Claim{
		ListingID:   listingID,
		ContactName: "Jordan Smith",
		WorkEmail:   "jordan@claimant.com",
		Message:     "This is our listing, please get in touch.",
		Status:      status,
	}
	require.NoError(t, tx.Create(claim).Error, "Failed to create claim")
	return claim
}
