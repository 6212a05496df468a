package metrics

import (
	"strings"
	"testing"
)

func TestAll_SortedByID(t *testing.T) {
	defs := All()
	if len(defs) == 0 {
		t.Fatal("no metrics registered")
	}
	for i := 1; i < len(defs); i++ {
		if defs[i-1].ID >= defs[i].ID {
			t.Errorf("not sorted: %s before %s", defs[i-1].ID, defs[i].ID)
		}
	}
}

func TestDefaults_SubsetOfAll(t *testing.T) {
	defaults := Defaults()
	if len(defaults) == 0 {
		t.Fatal("no default metrics")
	}
	for _, def := range defaults {
		if !def.Default {
			t.Errorf("%s returned by Defaults but not marked default", def.Name)
		}
	}
}

func TestLookup_ByName(t *testing.T) {
	def, ok := Lookup("grade-level")
	if !ok {
		t.Fatal("grade-level not found")
	}
	if def.ID != "MET001" {
		t.Errorf("got %s, want MET001", def.ID)
	}
}

func TestLookup_ByIDCaseInsensitive(t *testing.T) {
	def, ok := Lookup("met003")
	if !ok {
		t.Fatal("met003 not found")
	}
	if def.Name != "words" {
		t.Errorf("got %s, want words", def.Name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("nope"); ok {
		t.Error("expected lookup miss")
	}
}

func TestResolve_EmptyGivesDefaults(t *testing.T) {
	defs, err := Resolve(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != len(Defaults()) {
		t.Errorf("got %d defs, want %d", len(defs), len(Defaults()))
	}
}

func TestResolve_DeduplicatesSelection(t *testing.T) {
	defs, err := Resolve([]string{"words", "MET003", "words"})
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 1 {
		t.Errorf("got %d defs, want 1", len(defs))
	}
}

func TestResolve_UnknownNameListsAvailable(t *testing.T) {
	_, err := Resolve([]string{"bogus"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "grade-level") {
		t.Errorf("error should list available metrics: %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" words, sentences ,,syllables ")
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	if got[0] != "words" || got[1] != "sentences" || got[2] != "syllables" {
		t.Errorf("got %v", got)
	}
}

func TestSplitList_Empty(t *testing.T) {
	if got := SplitList("  "); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestParseOrder(t *testing.T) {
	if o, err := ParseOrder(""); err != nil || o != OrderDesc {
		t.Errorf("empty: got %v, %v", o, err)
	}
	if o, err := ParseOrder("ASC"); err != nil || o != OrderAsc {
		t.Errorf("ASC: got %v, %v", o, err)
	}
	if _, err := ParseOrder("sideways"); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestGradeLevelMetric_ZeroWordsUnavailable(t *testing.T) {
	def, _ := Lookup("grade-level")
	doc := NewDocument("Empty", "... !!!", nil)
	v, err := def.Compute(doc)
	if err != nil {
		t.Fatal(err)
	}
	if v.Available {
		t.Error("expected unavailable grade level for zero-word document")
	}
}

func TestGradeLevelMetric_KnownValue(t *testing.T) {
	def, _ := Lookup("grade-level")
	doc := NewDocument("Mat", "The cat sat on the mat.", nil)
	v, err := def.Compute(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Available {
		t.Fatal("expected available value")
	}
	want := 0.39*6 + 11.8*1 - 15.59
	if diff := v.Number - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got %f, want %f", v.Number, want)
	}
}
