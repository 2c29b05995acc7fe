package mode

import (
	"errors"
	"testing"

	"github.com/dshills/vedit/internal/engine/buffer"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Normal, "normal"},
		{Insert, "insert"},
		{Command, "command"},
		{Search, "search"},
		{Select, "select"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCursorStyle(t *testing.T) {
	if Normal.CursorStyle() != CursorBlock {
		t.Error("normal mode should use a block cursor")
	}
	if Insert.CursorStyle() != CursorBar {
		t.Error("insert mode should use a bar cursor")
	}
	if CursorStyle(9).String() != "unknown" {
		t.Error("unexpected cursor style name")
	}
}

func TestAllowed(t *testing.T) {
	kinds := []Kind{Normal, Insert, Command, Search, Select}
	for _, from := range kinds {
		for _, to := range kinds {
			want := (from == Normal) != (to == Normal)
			if got := Allowed(from, to); got != want {
				t.Errorf("Allowed(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestModePayload(t *testing.T) {
	s := SearchMode("foo")
	if s.Text() != "foo" {
		t.Errorf("Text() = %q, want foo", s.Text())
	}
	if got := s.WithText("bar").Text(); got != "bar" {
		t.Errorf("WithText = %q, want bar", got)
	}
	if got := NormalMode().WithText("x").Text(); got != "" {
		t.Errorf("normal mode should not hold text, got %q", got)
	}

	ranges := []buffer.Range{buffer.NewRange(buffer.NewPos(1, 1), buffer.NewPos(1, 3))}
	sel := SelectMode(ranges)
	ranges[0].End.Col = 9
	if got := sel.Ranges()[0].End.Col; got != 3 {
		t.Errorf("SelectMode should copy ranges, got end col %d", got)
	}

	if !InsertMode().AllowsLineEnd() || NormalMode().AllowsLineEnd() {
		t.Error("only insert mode allows the line-end column")
	}
	if !SearchMode("a").Equal(SearchMode("a")) || SearchMode("a").Equal(SearchMode("b")) {
		t.Error("Equal should compare payloads")
	}
}

func TestMachineSwitch(t *testing.T) {
	m := NewMachine()

	var changes []string
	m.OnChange(func(from, to Mode) {
		changes = append(changes, from.String()+">"+to.String())
	})

	if err := m.Switch(InsertMode()); err != nil {
		t.Fatalf("Switch(insert): %v", err)
	}
	if !m.Current().Is(Insert) || !m.Previous().Is(Normal) {
		t.Fatalf("current = %s, previous = %s", m.Current(), m.Previous())
	}

	err := m.Switch(CommandMode())
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("insert to command: err = %v, want ErrInvalidTransition", err)
	}

	if !m.Cancel() {
		t.Fatal("Cancel from insert should change mode")
	}
	if m.Cancel() {
		t.Error("Cancel from normal should be a no-op")
	}

	if err := m.Switch(NormalMode()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("normal to normal: err = %v", err)
	}

	want := []string{"normal>insert", "insert>normal"}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("changes[%d] = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestMachineUpdate(t *testing.T) {
	m := NewMachine()
	if err := m.Switch(SearchMode("")); err != nil {
		t.Fatal(err)
	}

	if err := m.Update(m.Current().WithText("ab")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if m.Current().Text() != "ab" {
		t.Errorf("Text() = %q, want ab", m.Current().Text())
	}

	if err := m.Update(CommandMode()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Update with another kind: err = %v", err)
	}

	m.Reset()
	if !m.Current().Is(Normal) {
		t.Errorf("Reset should return to normal, got %s", m.Current())
	}
}
