package backlog

import (
	"strings"
	"testing"
)

func TestNewTitle_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"2 chars fails", "ab", true},
		{"3 chars passes", "abc", false},
		{"200 chars passes", strings.Repeat("t", 200), false},
		{"201 chars fails", strings.Repeat("t", 201), true},
		{"whitespace-only fails", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTitle(tt.input)
			if tt.wantErr != (err != nil) {
				t.Errorf("NewTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestTitle_EqualFold(t *testing.T) {
	t.Parallel()

	a, _ := NewTitle("Login flow")
	b, _ := NewTitle("LOGIN FLOW")
	if !a.EqualFold(b) {
		t.Error("EqualFold should match case-insensitively")
	}
	c, _ := NewTitle("Logout flow")
	if a.EqualFold(c) {
		t.Error("EqualFold should not match different titles")
	}
}

func TestNewDescription_Bounds(t *testing.T) {
	t.Parallel()

	if _, err := NewDescription(""); err != nil {
		t.Errorf("NewDescription(empty) error = %v, want nil", err)
	}
	if _, err := NewDescription(strings.Repeat("d", 2000)); err != nil {
		t.Errorf("NewDescription(2000 chars) error = %v, want nil", err)
	}
	if _, err := NewDescription(strings.Repeat("d", 2001)); err == nil {
		t.Error("NewDescription(2001 chars) = nil error, want error")
	}
}

func TestNewAcceptanceCriteria(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantSet bool
	}{
		{"empty is allowed and unset", "", false, false},
		{"whitespace-only collapses to unset", "   ", false, false},
		{"9 chars fails", strings.Repeat("a", 9), true, false},
		{"10 chars passes", strings.Repeat("a", 10), false, true},
		{"5000 chars passes", strings.Repeat("a", 5000), false, true},
		{"5001 chars fails", strings.Repeat("a", 5001), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewAcceptanceCriteria(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewAcceptanceCriteria(%d chars) = nil error, want error", len(tt.input))
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAcceptanceCriteria(%d chars) error = %v, want nil", len(tt.input), err)
			}
			if got.IsSet() != tt.wantSet {
				t.Errorf("IsSet() = %v, want %v", got.IsSet(), tt.wantSet)
			}
		})
	}
}

func TestNewStoryPoints_FibonacciDomain(t *testing.T) {
	t.Parallel()

	valid := map[int]bool{1: true, 2: true, 3: true, 5: true, 8: true, 13: true, 21: true, 34: true, 55: true, 89: true}
	for v := -1; v <= 100; v++ {
		_, err := NewStoryPoints(v)
		if valid[v] && err != nil {
			t.Errorf("NewStoryPoints(%d) error = %v, want nil", v, err)
		}
		if !valid[v] && err == nil {
			t.Errorf("NewStoryPoints(%d) = nil error, want error", v)
		}
	}

	// Round-trip.
	p, err := NewStoryPoints(8)
	if err != nil {
		t.Fatalf("NewStoryPoints(8) error = %v", err)
	}
	if p.Points() != 8 {
		t.Errorf("Points() = %d, want 8", p.Points())
	}
}

func TestStoryPoints_Complexity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		points int
		want   Complexity
	}{
		{1, ComplexityLow},
		{3, ComplexityLow},
		{5, ComplexityModerate},
		{8, ComplexityModerate},
		{13, ComplexityHigh},
		{21, ComplexityHigh},
		{34, ComplexityVeryHigh},
		{89, ComplexityVeryHigh},
	}

	for _, tt := range tests {
		p, err := NewStoryPoints(tt.points)
		if err != nil {
			t.Fatalf("NewStoryPoints(%d) error = %v", tt.points, err)
		}
		if got := p.Complexity(); got != tt.want {
			t.Errorf("StoryPoints(%d).Complexity() = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestNewPriority_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{1000, false},
		{1001, true},
	}

	for _, tt := range tests {
		_, err := NewPriority(tt.value)
		if tt.wantErr != (err != nil) {
			t.Errorf("NewPriority(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}

	low, _ := NewPriority(1)
	high, _ := NewPriority(10)
	if !low.Before(high) {
		t.Error("Priority(1).Before(Priority(10)) = false, want true")
	}
	if high.Before(low) {
		t.Error("Priority(10).Before(Priority(1)) = true, want false")
	}
}

func TestNewItemType(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"user_story", "technical_task", "bug", "spike", "epic"} {
		if _, err := NewItemType(s); err != nil {
			t.Errorf("NewItemType(%q) error = %v, want nil", s, err)
		}
	}
	if _, err := NewItemType("chore"); err == nil {
		t.Error("NewItemType(chore) = nil error, want error")
	}
}
