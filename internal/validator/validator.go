package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/vasantha-kumar-s/bloggy/internal/domain"
)

var (
	validRoles    = []interface{}{domain.RoleAdmin, domain.RoleUser, domain.RoleModerator}
	validStatuses = []interface{}{
		domain.StatusPending,
		domain.StatusProcessing,
		domain.StatusReview,
		domain.StatusApproved,
		domain.StatusRejected,
	}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUser validates a User entity.
func (v *Validator) ValidateUser(u *domain.User) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&u.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&u.Role,
			validation.Required.Error("role_required"),
			validation.In(validRoles...).Error("invalid_role"),
		),
	)
}

// ValidateDocument validates a submitted Document. Submissions carry
// title, body and author only; derived fields are set by the pipeline.
func (v *Validator) ValidateDocument(d *domain.Document) error {
	err := validation.ValidateStruct(d,
		validation.Field(&d.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&d.Author,
			validation.Required.Error("author_required"),
		),
		validation.Field(&d.Status,
			validation.In(validStatuses...).Error("invalid_status"),
		),
	)
	if err != nil {
		return err
	}

	// Bodies may be empty but not whitespace-only noise beyond the cap.
	if len(d.Body) > 1<<20 {
		return validation.Errors{
			"body": validation.NewError("body_too_large", "body exceeds 1 MiB"),
		}
	}

	return nil
}

// ValidateStatusTransition validates a moderation action against the
// document's current status. Moderators may only act on documents the
// pipeline has finished with.
func (v *Validator) ValidateStatusTransition(current, next domain.Status) error {
	if !domain.IsValidStatus(next) {
		return validation.Errors{
			"status": validation.NewError("invalid_status", "unknown target status"),
		}
	}
	switch current {
	case domain.StatusPending, domain.StatusProcessing:
		return validation.Errors{
			"status": validation.NewError("document_not_analyzed", "document has not finished analysis"),
		}
	}
	if next == domain.StatusPending || next == domain.StatusProcessing {
		return validation.Errors{
			"status": validation.NewError("invalid_transition", "cannot move a document back into the pipeline"),
		}
	}
	return nil
}

// ValidateComment validates a Comment entity.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Body,
			validation.Required.Error("body_required"),
			validation.By(wordCountRule(500)),
		),
		validation.Field(&c.DocumentID,
			validation.Required.Error("document_id_required"),
		),
		validation.Field(&c.UserID,
			validation.Required.Error("user_id_required"),
		),
	)
}

// ValidateFollow validates a Follow entity.
func (v *Validator) ValidateFollow(f *domain.Follow) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.FollowerID,
			validation.Required.Error("follower_id_required"),
		),
		validation.Field(&f.AuthorName,
			validation.Required.Error("author_name_required"),
		),
	)
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		wordCount := len(strings.Fields(strings.TrimSpace(s)))
		if wordCount > maxWords {
			return validation.NewError("body_exceeds_500_words", "body exceeds 500 words")
		}
		return nil
	}
}

// FieldErrors flattens ozzo validation errors into a field->reason map
// suitable for API responses.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
		return out
	}
	out["unknown"] = err.Error()
	return out
}
