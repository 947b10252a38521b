package directory

import (
	"testing"

	"bcpartners_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func makeListing(t *testing.T, name string, tier models.PartnerTier, typ, description string, services ...string) models.Listing {
	t.Helper()
	l := models.Listing{
		Name:        name,
		Description: description,
		Type:        typ,
		Tier:        tier,
	}
	if err := l.SetServiceList(services); err != nil {
		t.Fatalf("failed to encode services for %s: %v", name, err)
	}
	return l
}

func sampleListings(t *testing.T) []models.Listing {
	return []models.Listing{
		makeListing(t, "Innovia", models.TierGold, "Reseller", "Full-service implementation partner", "ERP", "Implementation"),
		makeListing(t, "ArcherPoint", models.TierVerified, "ISV", "Upgrades and add-ons for Business Central", "ISV"),
		makeListing(t, "Sikich", models.TierMember, "Reseller", "Consulting and managed services", "Consulting", "ERP"),
	}
}

func TestFilter_NoQueryNoTag_ReturnsEverything(t *testing.T) {
	listings := sampleListings(t)

	assert.Len(t, Filter(listings, "", ""), 3)
	assert.Len(t, Filter(listings, "", "All"), 3)
	assert.Len(t, Filter(listings, "", "all"), 3)
}

func TestFilter_ByTag(t *testing.T) {
	listings := sampleListings(t)

	got := Filter(listings, "", "ISV")
	assert.Len(t, got, 1)
	assert.Equal(t, "ArcherPoint", got[0].Name)

	got = Filter(listings, "", "ERP")
	assert.Len(t, got, 2)

	// Tag membership is exact, not substring.
	assert.Empty(t, Filter(listings, "", "IS"))
}

func TestFilter_ByQuery(t *testing.T) {
	listings := sampleListings(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name case-insensitively", "innovia", []string{"Innovia"}},
		{"matches description", "add-ons", []string{"ArcherPoint"}},
		{"matches type label", "reseller", []string{"Innovia", "Sikich"}},
		{"no match", "zzz", nil},
		{"whitespace trimmed", "  Sikich  ", []string{"Sikich"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(listings, tt.query, "")
			names := make([]string, 0, len(got))
			for _, l := range got {
				names = append(names, l.Name)
			}
			if tt.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

func TestFilter_TagAndQueryMustBothMatch(t *testing.T) {
	listings := sampleListings(t)

	// "ERP" tag matches Innovia and Sikich; query narrows to Sikich.
	got := Filter(listings, "consulting", "ERP")
	assert.Len(t, got, 1)
	assert.Equal(t, "Sikich", got[0].Name)

	// Tag matches but query does not: empty result.
	assert.Empty(t, Filter(listings, "archerpoint", "ERP"))
}

func TestFilter_IsIdempotentAndSubset(t *testing.T) {
	listings := sampleListings(t)

	once := Filter(listings, "er", "ERP")
	twice := Filter(once, "er", "ERP")
	assert.Equal(t, once, twice)
	assert.LessOrEqual(t, len(once), len(listings))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	listings := sampleListings(t)
	before := make([]string, len(listings))
	for i, l := range listings {
		before[i] = l.Name
	}

	Filter(listings, "innovia", "")

	for i, l := range listings {
		assert.Equal(t, before[i], l.Name)
	}
}

func TestDeriveTags_SortedDedupedOrderIndependent(t *testing.T) {
	listings := sampleListings(t)
	want := []string{"Consulting", "ERP", "ISV", "Implementation"}

	assert.Equal(t, want, DeriveTags(listings))

	// Reversed input produces the same derived set.
	reversed := []models.Listing{listings[2], listings[1], listings[0]}
	assert.Equal(t, want, DeriveTags(reversed))
}

func TestDeriveTags_EmptyAndMissingServices(t *testing.T) {
	assert.Empty(t, DeriveTags(nil))

	// A listing with no services column contributes nothing.
	listings := []models.Listing{{Name: "Bare"}}
	assert.Empty(t, DeriveTags(listings))
}

func TestFilter_SpecScenario(t *testing.T) {
	listings := []models.Listing{
		makeListing(t, "Innovia", models.TierGold, "", "", "ERP"),
		makeListing(t, "ArcherPoint", models.TierVerified, "", "", "ISV"),
	}

	got := Filter(listings, "", "ISV")
	assert.Len(t, got, 1)
	assert.Equal(t, "ArcherPoint", got[0].Name)

	SortListings(listings)
	assert.Equal(t, "Innovia", listings[0].Name)
	assert.Equal(t, "ArcherPoint", listings[1].Name)
}
