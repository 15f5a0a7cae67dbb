package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
)

const (
	// MaxTitleLength bounds content titles.
	MaxTitleLength = 500
	// MaxTags bounds the number of tags per content item.
	MaxTags = 20
	// MaxListLimit bounds page sizes for list and search.
	MaxListLimit = 100
)

var sortKeys = []interface{}{"created_at", "updated_at", "published_at", "title", "views", "likes"}

// Validator provides validation methods for inbound requests. Validation
// always runs before the orchestrator is involved; an input that fails here
// never reaches the primary store.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreate validates a content creation input.
func (v *Validator) ValidateCreate(in *domain.CreateInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, MaxTitleLength).Error("title_too_long"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
		),
		validation.Field(&in.Tags,
			validation.Length(0, MaxTags).Error("too_many_tags"),
		),
		validation.Field(&in.CategoryID,
			validation.NilOrNotEmpty.Error("category_id_empty"),
			validation.When(in.CategoryID != nil, validation.By(uuidRule)),
		),
	)
}

// ValidateUpdate validates a content update input. All fields are optional,
// but a supplied field must still be well formed.
func (v *Validator) ValidateUpdate(in *domain.UpdateInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.NilOrNotEmpty.Error("title_empty"),
			validation.When(in.Title != nil, validation.Length(1, MaxTitleLength).Error("title_too_long")),
		),
		validation.Field(&in.Body,
			validation.NilOrNotEmpty.Error("body_empty"),
		),
		validation.Field(&in.Tags,
			validation.Length(0, MaxTags).Error("too_many_tags"),
		),
		validation.Field(&in.CategoryID,
			validation.When(in.CategoryID != nil && *in.CategoryID != "", validation.By(uuidRule)),
		),
	)
	if err != nil {
		return err
	}

	// Status, when supplied, must name a known lifecycle state. Deleted is
	// reserved for the delete path.
	if in.Status != nil {
		if !domain.IsValidStatus(*in.Status) || *in.Status == string(domain.StatusDeleted) {
			return validation.Errors{
				"status": validation.NewError("invalid_status", "status must be one of: draft, published, archived"),
			}
		}
	}

	return nil
}

// ValidateListFilter validates and normalizes list parameters in place.
func (v *Validator) ValidateListFilter(f *domain.ListFilter) error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}
	if f.SortDir == "" {
		f.SortDir = domain.SortDesc
	}

	if f.Status != "" && !domain.IsValidStatus(f.Status) {
		return validation.Errors{
			"status": validation.NewError("invalid_status", "unknown status filter"),
		}
	}
	if f.SortDir != domain.SortAsc && f.SortDir != domain.SortDesc {
		return validation.Errors{
			"sort_dir": validation.NewError("invalid_sort_dir", "sort direction must be asc or desc"),
		}
	}

	if err := validation.Validate(f.SortBy, validation.In(sortKeys...)); err != nil {
		return validation.Errors{
			"sort_by": validation.NewError("invalid_sort_key", "unknown sort key"),
		}
	}
	return nil
}

// uuidRule validates a *string or string field as a UUID.
func uuidRule(value interface{}) error {
	var s string
	switch v := value.(type) {
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	case string:
		s = v
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	return validation.Validate(s, is.UUID.Error("invalid_uuid"))
}
