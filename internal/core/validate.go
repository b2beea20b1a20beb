package core

import (
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateInput checks an untrusted TransactionInput against every field rule
// and returns its canonical Draft form. All violated rules are collected into
// a single ValidationError so the caller gets feedback on every failing field,
// not just the first.
//
// A valid draft has a known kind, a positive amount with at most two decimal
// places, a trimmed non-empty category, a trimmed description with
// empty-after-trim normalized to absent, and either an empty date or a real
// calendar date in YYYY-MM-DD form. Defaulting an absent date is the caller's
// job, not the validator's.
func ValidateInput(in TransactionInput) (Draft, error) {
	var fields []FieldError

	kind := Kind(in.Kind)
	if !kind.Valid() {
		fields = append(fields, FieldError{
			Field:  "type",
			Reason: "type must be 'income' or 'expense'",
		})
	}

	switch {
	case !in.Amount.IsPositive():
		fields = append(fields, FieldError{
			Field:  "amount",
			Reason: "amount must be greater than 0",
		})
	case !in.Amount.Equal(in.Amount.Round(2)):
		// Three or more decimal places are ambiguous; reject rather than
		// silently truncate.
		fields = append(fields, FieldError{
			Field:  "amount",
			Reason: "amount must have at most 2 decimal places",
		})
	}

	category := strings.TrimSpace(in.Category)
	switch {
	case len(in.Category) > 100:
		fields = append(fields, FieldError{
			Field:  "category",
			Reason: "category must be at most 100 characters",
		})
	case category == "":
		fields = append(fields, FieldError{
			Field:  "category",
			Reason: "category is required and cannot be only whitespace",
		})
	}

	description := strings.TrimSpace(in.Description)
	if len(in.Description) > 500 {
		fields = append(fields, FieldError{
			Field:  "description",
			Reason: "description must be at most 500 characters",
		})
	}

	if in.Date != "" {
		if !datePattern.MatchString(in.Date) {
			fields = append(fields, FieldError{
				Field:  "date",
				Reason: "date must be in YYYY-MM-DD format",
			})
		} else if _, err := time.Parse(DateLayout, in.Date); err != nil {
			fields = append(fields, FieldError{
				Field:  "date",
				Reason: "date is not a valid calendar date",
			})
		}
	}

	if len(fields) > 0 {
		return Draft{}, &ValidationError{Fields: fields}
	}

	return Draft{
		Kind:        kind,
		Amount:      in.Amount,
		Category:    category,
		Description: description,
		Date:        in.Date,
	}, nil
}
