package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRuleViolation_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *RuleViolation
		want error
	}{
		{
			name: "validation kind unwraps to ErrValidation",
			err:  Validationf("name must be between %d and %d characters", 3, 50),
			want: ErrValidation,
		},
		{
			name: "not-found kind unwraps to ErrNotFound",
			err:  NotFoundf("member %s not found", "m-1"),
			want: ErrNotFound,
		},
		{
			name: "conflict kind unwraps to ErrConflict",
			err:  Conflictf("item with title %q already exists", "Login flow"),
			want: ErrConflict,
		},
		{
			name: "state kind unwraps to ErrState",
			err:  Statef("sprint already started"),
			want: ErrState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.want)
			}
			// Unwraps to exactly one sentinel.
			for _, other := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrState} {
				if other != tt.want && errors.Is(tt.err, other) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, other)
				}
			}
		})
	}
}

func TestRuleViolation_MessageFormatting(t *testing.T) {
	t.Parallel()

	err := Conflictf("member with email %q already exists", "ann@example.com")
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Error() = %q, want substring %q", err.Error(), "already exists")
	}
	if !strings.Contains(err.Error(), "ann@example.com") {
		t.Errorf("Error() = %q, want substring %q", err.Error(), "ann@example.com")
	}
}

func TestRuleViolation_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	inner := NotFoundf("sprint %s not found", "s-1")
	wrapped := fmt.Errorf("loading sprint: %w", inner)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is(wrapped, ErrNotFound) = false, want true")
	}

	var rv *RuleViolation
	if !errors.As(wrapped, &rv) {
		t.Fatalf("errors.As(wrapped, *RuleViolation) = false, got %T", wrapped)
	}
	if rv.Kind != KindNotFound {
		t.Errorf("Kind = %q, want %q", rv.Kind, KindNotFound)
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrValidation", ErrValidation},
		{"ErrNotFound", ErrNotFound},
		{"ErrConflict", ErrConflict},
		{"ErrState", ErrState},
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
