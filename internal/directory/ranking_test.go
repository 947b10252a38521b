package directory

import (
	"testing"

	"bcpartners_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTierWeight_TotalOrder(t *testing.T) {
	assert.Greater(t, TierWeight(models.TierGold), TierWeight(models.TierVerified))
	assert.Greater(t, TierWeight(models.TierVerified), TierWeight(models.TierMember))
	assert.Greater(t, TierWeight(models.TierMember), TierWeight(models.PartnerTier("")))
	assert.Equal(t, 0, TierWeight(models.PartnerTier("Platinum")))
}

func TestBadgeFor_UnknownTierFallsBack(t *testing.T) {
	assert.Equal(t, "gold", BadgeFor(models.TierGold).Style)
	assert.Equal(t, "verified", BadgeFor(models.TierVerified).Style)

	// Unknown/empty tiers render the lowest treatment, never an error.
	assert.Equal(t, "member", BadgeFor(models.PartnerTier("")).Style)
	assert.Equal(t, "member", BadgeFor(models.PartnerTier("Silver")).Style)
}

func TestFeatureGates_MemberNeverShowsLogoOrWebsite(t *testing.T) {
	// Populated data columns do not override the tier policy.
	assert.True(t, ShowLogo(models.TierGold))
	assert.True(t, ShowLogo(models.TierVerified))
	assert.False(t, ShowLogo(models.TierMember))
	assert.False(t, ShowLogo(models.PartnerTier("")))

	assert.True(t, ShowWebsite(models.TierGold))
	assert.False(t, ShowWebsite(models.TierMember))
	assert.False(t, ShowWebsite(models.PartnerTier("unknown")))
}

func TestSortListings_TierThenName(t *testing.T) {
	listings := []models.Listing{
		{Name: "Zeta", Tier: models.TierMember},
		{Name: "beta", Tier: models.TierGold},
		{Name: "Alpha", Tier: models.TierVerified},
		{Name: "acme", Tier: models.TierGold},
	}

	SortListings(listings)

	names := []string{listings[0].Name, listings[1].Name, listings[2].Name, listings[3].Name}
	assert.Equal(t, []string{"acme", "beta", "Alpha", "Zeta"}, names)
}

func TestSortListings_GoldNeverSortsAfterLowerTiers(t *testing.T) {
	listings := []models.Listing{
		{Name: "AAA Member", Tier: models.TierMember},
		{Name: "ZZZ Gold", Tier: models.TierGold},
		{Name: "MMM Verified", Tier: models.TierVerified},
	}

	SortListings(listings)

	assert.Equal(t, models.TierGold, listings[0].Tier)
	assert.Equal(t, models.TierVerified, listings[1].Tier)
	assert.Equal(t, models.TierMember, listings[2].Tier)
}

func TestSortListings_StableForEqualKeys(t *testing.T) {
	// Same tier, same lowercased name: incoming order is preserved.
	a := models.Listing{Name: "Acme", Tier: models.TierGold, Description: "first"}
	b := models.Listing{Name: "acme", Tier: models.TierGold, Description: "second"}
	listings := []models.Listing{a, b}

	SortListings(listings)

	assert.Equal(t, "first", listings[0].Description)
	assert.Equal(t, "second", listings[1].Description)
}
