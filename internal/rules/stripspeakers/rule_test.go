package stripspeakers

import "testing"

func TestApply_RemovesSpeakerPrefix(t *testing.T) {
	r := &Rule{}
	got := r.Apply("  HAMLET. To be, or not to be.")
	if got != " To be, or not to be." {
		t.Errorf("got %q, want %q", got, " To be, or not to be.")
	}
}

func TestApply_MixedCaseSpeaker(t *testing.T) {
	r := &Rule{}
	got := r.Apply("  Ophelia. My lord.")
	if got != " My lord." {
		t.Errorf("got %q, want %q", got, " My lord.")
	}
}

func TestApply_OnlyAtLineStart(t *testing.T) {
	r := &Rule{}
	in := "he said  HAMLET. loudly"
	if got := r.Apply(in); got != in {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestApply_MultipleLines(t *testing.T) {
	r := &Rule{}
	in := "  HAMLET. Words, words, words.\n  POLONIUS. What is the matter?"
	want := " Words, words, words.\n What is the matter?"
	if got := r.Apply(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApply_WrongIndentKept(t *testing.T) {
	// A prefix with a different indent than configured is not a speaker
	// line.
	r := &Rule{}
	in := "    HAMLET. deeper indent"
	if got := r.Apply(in); got != in {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestApply_UnindentedNameKept(t *testing.T) {
	r := &Rule{}
	in := "HAMLET. no indent"
	if got := r.Apply(in); got != in {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestApply_CustomIndent(t *testing.T) {
	r := &Rule{Indent: 4}
	got := r.Apply("    HAMLET. To be.")
	if got != " To be." {
		t.Errorf("got %q, want %q", got, " To be.")
	}
}

func TestApplySettings_ValidIndent(t *testing.T) {
	r := &Rule{Indent: 2}
	if err := r.ApplySettings(map[string]any{"indent": 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Indent != 4 {
		t.Errorf("expected Indent=4, got %d", r.Indent)
	}
}

func TestApplySettings_InvalidIndentType(t *testing.T) {
	r := &Rule{Indent: 2}
	if err := r.ApplySettings(map[string]any{"indent": "two"}); err == nil {
		t.Fatal("expected error for non-int indent")
	}
}

func TestApplySettings_IndentBelowOne(t *testing.T) {
	r := &Rule{Indent: 2}
	if err := r.ApplySettings(map[string]any{"indent": 0}); err == nil {
		t.Fatal("expected error for indent 0")
	}
}

func TestApplySettings_UnknownKey(t *testing.T) {
	r := &Rule{Indent: 2}
	if err := r.ApplySettings(map[string]any{"width": 2}); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestDefaultSettings_StripSpeakers(t *testing.T) {
	r := &Rule{}
	ds := r.DefaultSettings()
	if ds["indent"] != 2 {
		t.Errorf("expected indent=2, got %v", ds["indent"])
	}
}
