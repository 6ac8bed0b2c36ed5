package util

import (
	"errors"
	"strings"
	"testing"
)

type sampleDTO struct {
	Score int    `validate:"gte=0,lte=100"`
	Month int    `validate:"gte=0,lte=11"`
	Email string `validate:"required,email"`
}

func TestValidateDTOCollectsAllIssues(t *testing.T) {
	err := ValidateDTO(&sampleDTO{Score: 120, Month: 14, Email: "nope"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err type = %T, want *ValidationError", err)
	}

	msg := err.Error()
	for _, field := range []string{"Score", "Month", "Email"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("message %q should mention field %s", msg, field)
		}
	}
}

func TestValidateDTOPassesValidInput(t *testing.T) {
	err := ValidateDTO(&sampleDTO{Score: 88, Month: 3, Email: "ok@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
