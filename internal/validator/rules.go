package validator

import (
	"log"

	"bcpartners_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-partner-tier", validatePartnerTier)
	mustRegister("is-review-status", validateReviewStatus)
	mustRegister("is-claim-status", validateClaimStatus)
}

func validatePartnerTier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is 'required's job
	}
	switch models.PartnerTier(value) {
	case models.TierGold, models.TierVerified, models.TierMember:
		return true
	default:
		return false
	}
}

func validateReviewStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ReviewStatus(value) {
	case models.ReviewStatusPending, models.ReviewStatusApproved:
		return true
	default:
		return false
	}
}

func validateClaimStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ClaimStatus(value) {
	case models.ClaimStatusPending, models.ClaimStatusReviewed:
		return true
	default:
		return false
	}
}
