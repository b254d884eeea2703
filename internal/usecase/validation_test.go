package usecase

import (
	"testing"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
)

func TestValidateLanguage(t *testing.T) {
	for _, lang := range []string{"ru", "en", "uz"} {
		if !ValidateLanguage(lang) {
			t.Fatalf("expected %q to be supported", lang)
		}
	}
	for _, lang := range []string{"", "de", "RU", "uzb"} {
		if ValidateLanguage(lang) {
			t.Fatalf("expected %q to be rejected", lang)
		}
	}
}

func TestRequireFieldsAllPresent(t *testing.T) {
	if err := requireFields(requiredField{"name", false}, requiredField{"phone", false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireFieldsCollectsMissing(t *testing.T) {
	err := requireFields(
		requiredField{"chatId", true},
		requiredField{"serviceType", false},
		requiredField{"location", true},
	)
	verr, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 2 || verr.Fields[0] != "chatId" || verr.Fields[1] != "location" {
		t.Fatalf("unexpected missing fields %v", verr.Fields)
	}
}
