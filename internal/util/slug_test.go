package util

import "testing"

func TestSlug(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces", "E-Commerce Platform", "e-commerce-platform"},
		{"underscores", "launch_plan_v2", "launch-plan-v2"},
		{"punctuation dropped", "Q3 Roadmap (draft)!", "q3-roadmap-draft"},
		{"collapses hyphens", "a  --  b", "a-b"},
		{"trims hyphens", "  edge  ", "edge"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Slug(tc.input)
			if result != tc.expected {
				t.Errorf("Slug(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("E-Commerce Platform", "gantt", "svg"); got != "e-commerce-platform-gantt.svg" {
		t.Errorf("unexpected file name %q", got)
	}
	if got := FileName("???", "gantt", "svg"); got != "gantt.svg" {
		t.Errorf("expected fallback file name, got %q", got)
	}
}
