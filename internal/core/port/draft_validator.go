package port

import "skidmo-client/internal/core/domain"

// DraftValidatorPort checks a listing draft before any network call. A nil or
// empty result means the draft is publishable; otherwise every invalid field
// is reported at once.
type DraftValidatorPort interface {
	ValidateDraft(d domain.ListingDraft) domain.ValidationErrors
}
