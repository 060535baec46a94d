package components

import (
	"strings"
	"testing"
)

func TestRenderScrollbar_ZeroHeight(t *testing.T) {
	result := RenderScrollbar(0, 100, 0)
	if result != "" {
		t.Errorf("expected empty string for zero height, got %q", result)
	}
}

func TestRenderScrollbar_ContentFitsInViewport(t *testing.T) {
	result := RenderScrollbar(10, 5, 0)
	lines := strings.Split(result, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line != " " {
			t.Errorf("line %d: expected blank gutter space, got %q", i, line)
		}
	}
}

func TestRenderScrollbar_ThumbAtTop(t *testing.T) {
	lines := strings.Split(RenderScrollbar(10, 100, 0), "\n")
	if lines[0] != "█" {
		t.Errorf("expected thumb █ at line 0, got %q", lines[0])
	}
	for i := 1; i < 10; i++ {
		if lines[i] != "│" {
			t.Errorf("line %d: expected track │, got %q", i, lines[i])
		}
	}
}

func TestRenderScrollbar_ThumbAtBottom(t *testing.T) {
	lines := strings.Split(RenderScrollbar(10, 100, 90), "\n")
	if lines[9] != "█" {
		t.Errorf("expected thumb █ at line 9, got %q", lines[9])
	}
}

func TestRenderScrollbar_LargerThumb(t *testing.T) {
	// Half the content visible: thumb covers half the track.
	result := RenderScrollbar(10, 20, 0)
	if got := strings.Count(result, "█"); got != 5 {
		t.Errorf("expected thumb of 5, got %d", got)
	}
}

func TestRenderPanBar_Fits(t *testing.T) {
	result := RenderPanBar(20, 10, 0)
	if result != strings.Repeat(" ", 20) {
		t.Errorf("expected blank bar, got %q", result)
	}
}

func TestRenderPanBar_Positions(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		wantLeft int
	}{
		{"left edge", 0, 0},
		{"right edge", 30, 12},
		{"middle", 15, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 20 visible of 50 columns: thumb is 8 wide.
			result := []rune(RenderPanBar(20, 50, tt.offset))
			if len(result) != 20 {
				t.Fatalf("expected width 20, got %d", len(result))
			}
			left := strings.Index(string(result), "━")
			if got := len([]rune(string(result)[:left])); got != tt.wantLeft {
				t.Errorf("expected thumb at %d, got %d (%q)", tt.wantLeft, got, string(result))
			}
			if got := strings.Count(string(result), "━"); got != 8 {
				t.Errorf("expected thumb of 8, got %d", got)
			}
		})
	}
}

func TestRenderPanBar_ZeroWidth(t *testing.T) {
	if got := RenderPanBar(0, 50, 0); got != "" {
		t.Errorf("expected empty bar, got %q", got)
	}
}
