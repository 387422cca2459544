package forms

import (
	"strconv"
	"strings"

	"skidmo-client/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

// Attachment limits enforced before any network call.
const (
	MaxPhotos = 50
	MaxVideos = 1
)

// DraftValidator checks a listing draft with go-playground/validator and
// translates every failure into the field -> message map the screens render.
// All invalid fields are reported together, never just the first one.
type DraftValidator struct {
	validate *validator.Validate
}

func NewDraftValidator() *DraftValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(listingDraftRules, domain.ListingDraft{})
	return &DraftValidator{validate: v}
}

// ValidateDraft returns nil when the draft is publishable.
func (dv *DraftValidator) ValidateDraft(d domain.ListingDraft) domain.ValidationErrors {
	err := dv.validate.Struct(d)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ValidationErrors{"form": err.Error()}
	}

	out := make(domain.ValidationErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe.Field(), fe.Tag())
	}
	return out
}

// listingDraftRules holds every draft rule in one place: the same rules apply
// to long-term and short-term drafts, and the per-variant requirements hang
// off the draft's property type.
func listingDraftRules(sl validator.StructLevel) {
	d := sl.Current().Interface().(domain.ListingDraft)

	if strings.TrimSpace(d.Address) == "" {
		sl.ReportError(d.Address, "address", "Address", "required", "")
	}

	price := strings.TrimSpace(d.Price)
	if price == "" {
		sl.ReportError(d.Price, "price", "Price", "required", "")
	} else if v, err := strconv.ParseFloat(price, 64); err != nil || v <= 0 {
		sl.ReportError(d.Price, "price", "Price", "positive", "")
	}

	if strings.TrimSpace(d.Bathrooms) == "" {
		sl.ReportError(d.Bathrooms, "bathrooms", "Bathrooms", "required", "")
	}

	switch d.PropertyType {
	case domain.TypeHouse, domain.TypeBoarding, domain.TypeApartment:
		if strings.TrimSpace(d.Rooms) == "" {
			sl.ReportError(d.Rooms, "rooms", "Rooms", "required", "")
		}
	case domain.TypeLodgeHotel:
		if strings.TrimSpace(d.RoomType) == "" {
			sl.ReportError(d.RoomType, "roomType", "RoomType", "required", "")
		}
		if strings.TrimSpace(d.BedType) == "" {
			sl.ReportError(d.BedType, "bedType", "BedType", "required", "")
		}
	}

	if len(d.PhotoURIs) == 0 {
		sl.ReportError(d.PhotoURIs, "photos", "PhotoURIs", "required", "")
	} else if len(d.PhotoURIs) > MaxPhotos {
		sl.ReportError(d.PhotoURIs, "photos", "PhotoURIs", "max", "")
	}

	if len(d.VideoURIs) > MaxVideos {
		sl.ReportError(d.VideoURIs, "videos", "VideoURIs", "max", "")
	}

	if !d.TermsAccepted {
		sl.ReportError(d.TermsAccepted, "terms", "TermsAccepted", "accepted", "")
	}
}

var draftMessages = map[string]string{
	"address/required":   "Address is required",
	"price/required":     "Price is required",
	"price/positive":     "Price must be a positive number",
	"bathrooms/required": "Number of bathrooms is required",
	"rooms/required":     "Number of rooms is required",
	"roomType/required":  "Room type is required",
	"bedType/required":   "Bed type is required",
	"photos/required":    "At least one photo is required",
	"photos/max":         "A maximum of 50 photos is allowed",
	"videos/max":         "Only one video is allowed",
	"terms/accepted":     "You must agree to the terms and conditions",
}

func messageFor(field, tag string) string {
	if msg, ok := draftMessages[field+"/"+tag]; ok {
		return msg
	}
	return "Invalid value"
}
