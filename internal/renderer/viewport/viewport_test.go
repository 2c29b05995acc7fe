package viewport

import (
	"testing"
)

func TestNewViewport(t *testing.T) {
	v := NewViewport(80, 24)

	if v.Width() != 80 || v.Height() != 24 {
		t.Errorf("size = %dx%d, want 80x24", v.Width(), v.Height())
	}
	if v.TopLine() != 1 {
		t.Errorf("expected top line 1, got %d", v.TopLine())
	}
	if v.ScrollOff() != DefaultScrollOff {
		t.Errorf("expected scroll-off %d, got %d", DefaultScrollOff, v.ScrollOff())
	}

	v = NewViewport(0, -5)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("size should clamp to 1x1, got %dx%d", v.Width(), v.Height())
	}
}

func TestViewportVisibleLineRange(t *testing.T) {
	v := NewViewport(80, 10)

	first, last := v.VisibleLineRange(100)
	if first != 1 || last != 10 {
		t.Errorf("range = %d..%d, want 1..10", first, last)
	}

	first, last = v.VisibleLineRange(4)
	if first != 1 || last != 4 {
		t.Errorf("short document range = %d..%d, want 1..4", first, last)
	}

	v.ScrollTo(50, 100)
	if row := v.LineToScreenRow(52); row != 2 {
		t.Errorf("LineToScreenRow(52) = %d, want 2", row)
	}
	if row := v.LineToScreenRow(49); row != -1 {
		t.Errorf("LineToScreenRow(49) = %d, want -1", row)
	}
}

func TestViewportFollow(t *testing.T) {
	tests := []struct {
		name    string
		top     int
		cursor  int
		wantTop int
		moved   bool
	}{
		{"cursor in view", 1, 5, 1, false},
		{"cursor near bottom", 1, 8, 2, true},
		{"cursor far below", 1, 20, 14, true},
		{"cursor at end", 1, 100, 91, true},
		{"cursor near top", 50, 51, 48, true},
		{"cursor at start", 50, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(80, 10)
			v.ScrollTo(tt.top, 100)

			moved := v.Follow(tt.cursor, 100)
			if moved != tt.moved {
				t.Errorf("Follow moved = %v, want %v", moved, tt.moved)
			}
			if v.TopLine() != tt.wantTop {
				t.Errorf("top = %d, want %d", v.TopLine(), tt.wantTop)
			}
			if !v.IsLineVisible(tt.cursor) {
				t.Errorf("cursor line %d not visible", tt.cursor)
			}
		})
	}
}

func TestViewportFollowSmallWindow(t *testing.T) {
	v := NewViewport(80, 3)
	v.Follow(10, 20)
	if !v.IsLineVisible(10) {
		t.Errorf("cursor line not visible with top %d", v.TopLine())
	}
}

func TestViewportScrollUpDown(t *testing.T) {
	v := NewViewport(80, 10)

	if v.ScrollUp(1) {
		t.Error("ScrollUp at the top should not move")
	}
	if v.ScrollDown(2, 100) {
		t.Error("ScrollDown should keep scroll-off lines above the cursor")
	}
	if !v.ScrollDown(5, 100) || v.TopLine() != 2 {
		t.Errorf("ScrollDown should move to 2, top = %d", v.TopLine())
	}
	if v.ScrollUp(8) {
		t.Error("ScrollUp should keep scroll-off lines below the cursor")
	}
	if !v.ScrollUp(5) || v.TopLine() != 1 {
		t.Errorf("ScrollUp should move to 1, top = %d", v.TopLine())
	}

	v.ScrollTo(5, 5)
	if v.ScrollDown(9, 5) {
		t.Error("ScrollDown past the last line should not move")
	}
}

func TestViewportFollowColumn(t *testing.T) {
	v := NewViewport(10, 5)

	if v.FollowColumn(3) {
		t.Error("visible column should not scroll")
	}
	if !v.FollowColumn(15) || v.LeftColumn() != 6 {
		t.Errorf("left = %d, want 6", v.LeftColumn())
	}
	if !v.FollowColumn(2) || v.LeftColumn() != 2 {
		t.Errorf("left = %d, want 2", v.LeftColumn())
	}
}

func TestViewportCenterOn(t *testing.T) {
	v := NewViewport(80, 10)
	v.CenterOn(50, 100)
	if v.TopLine() != 45 {
		t.Errorf("top = %d, want 45", v.TopLine())
	}
	v.CenterOn(2, 100)
	if v.TopLine() != 1 {
		t.Errorf("top = %d, want 1", v.TopLine())
	}
}
