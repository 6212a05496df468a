package collapselines

import "testing"

func TestApply_CollapsesBlankLines(t *testing.T) {
	r := &Rule{}
	got := r.Apply("first\n\n\nsecond")
	if got != "first\nsecond" {
		t.Errorf("got %q, want %q", got, "first\nsecond")
	}
}

func TestApply_CollapsesCRLF(t *testing.T) {
	r := &Rule{}
	got := r.Apply("first\r\n\r\nsecond")
	if got != "first\nsecond" {
		t.Errorf("got %q, want %q", got, "first\nsecond")
	}
}

func TestApply_SingleNewlineKept(t *testing.T) {
	r := &Rule{}
	got := r.Apply("first\nsecond")
	if got != "first\nsecond" {
		t.Errorf("got %q, want %q", got, "first\nsecond")
	}
}

func TestApply_NoLineBreaks(t *testing.T) {
	r := &Rule{}
	in := "no breaks here"
	if got := r.Apply(in); got != in {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestApply_Idempotent(t *testing.T) {
	r := &Rule{}
	once := r.Apply("a\r\n\r\n\nb\n\nc")
	twice := r.Apply(once)
	if once != twice {
		t.Errorf("not idempotent: %q then %q", once, twice)
	}
}

func TestApply_CustomSeparator(t *testing.T) {
	r := &Rule{Separator: " "}
	got := r.Apply("first\n\nsecond")
	if got != "first second" {
		t.Errorf("got %q, want %q", got, "first second")
	}
}

func TestApplySettings_ValidSeparator(t *testing.T) {
	r := &Rule{Separator: "\n"}
	if err := r.ApplySettings(map[string]any{"separator": " "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Separator != " " {
		t.Errorf("expected separator %q, got %q", " ", r.Separator)
	}
}

func TestApplySettings_EmptySeparator(t *testing.T) {
	r := &Rule{Separator: "\n"}
	if err := r.ApplySettings(map[string]any{"separator": ""}); err == nil {
		t.Fatal("expected error for empty separator")
	}
}

func TestApplySettings_UnknownKey(t *testing.T) {
	r := &Rule{Separator: "\n"}
	if err := r.ApplySettings(map[string]any{"eol": "\n"}); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
