package usecase

import (
	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
)

var supportedLanguages = map[string]struct{}{
	"ru": {},
	"en": {},
	"uz": {},
}

// ValidateLanguage reports whether lang is one of the bot interface languages.
func ValidateLanguage(lang string) bool {
	_, ok := supportedLanguages[lang]
	return ok
}

type requiredField struct {
	name  string
	empty bool
}

// requireFields collects the names of missing required fields into a
// ValidationError, or returns nil when all are present.
func requireFields(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if f.empty {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return domainErrors.NewValidation(missing...)
}
