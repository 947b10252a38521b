package directory

import (
	"sort"
	"strings"

	"bcpartners_backend/internal/models"
)

// Badge describes the visual treatment of a tier on the public site.
type Badge struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

// TierWeight maps a tier to its sort weight. Gold outranks Verified outranks
// Member; an unrecognized or empty tier sorts last and must not fail.
func TierWeight(tier models.PartnerTier) int {
	switch tier {
	case models.TierGold:
		return 3
	case models.TierVerified:
		return 2
	case models.TierMember:
		return 1
	default:
		return 0
	}
}

// BadgeFor returns the badge for a tier. Unknown tiers fall back to the
// lowest-priority treatment instead of erroring the render.
func BadgeFor(tier models.PartnerTier) Badge {
	switch tier {
	case models.TierGold:
		return Badge{Label: "GOLD PARTNER", Style: "gold"}
	case models.TierVerified:
		return Badge{Label: "VERIFIED", Style: "verified"}
	case models.TierMember:
		return Badge{Label: "MEMBER", Style: "member"}
	default:
		return Badge{Label: "MEMBER", Style: "member"}
	}
}

// ShowLogo reports whether a listing's logo image may be rendered.
// Member (and unknown) tiers never show a logo even when the column is
// populated; this is a tier policy, not a data-completeness check.
func ShowLogo(tier models.PartnerTier) bool {
	return tier == models.TierGold || tier == models.TierVerified
}

// ShowWebsite reports whether the outbound website link may be rendered.
// Same gate as the logo: a paid-tier feature.
func ShowWebsite(tier models.PartnerTier) bool {
	return tier == models.TierGold || tier == models.TierVerified
}

// SortListings orders listings for display: tier weight descending, then
// name ascending (case-insensitive) as the deterministic tiebreak. The sort
// is stable so equal keys keep their incoming order.
func SortListings(listings []models.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		wi, wj := TierWeight(listings[i].Tier), TierWeight(listings[j].Tier)
		if wi != wj {
			return wi > wj
		}
		return strings.ToLower(listings[i].Name) < strings.ToLower(listings[j].Name)
	})
}
