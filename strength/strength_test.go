package strength

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestEvaluate_Empty(t *testing.T) {
	level, sugg := Evaluate("")
	if level != Weak {
		t.Fatalf("expected Weak, got %s", level)
	}
	want := []string{
		Suggestion(CriterionLength),
		Suggestion(CriterionUppercase),
		Suggestion(CriterionLowercase),
		Suggestion(CriterionDigit),
		Suggestion(CriterionSymbol),
	}
	if !reflect.DeepEqual(sugg, want) {
		t.Fatalf("unexpected suggestions: %v", sugg)
	}
}

func TestEvaluate_AllCriteriaMet(t *testing.T) {
	level, sugg := Evaluate("Ab3!ab12")
	if level != Strong {
		t.Fatalf("expected Strong, got %s", level)
	}
	if sugg == nil || len(sugg) != 0 {
		t.Fatalf("expected empty non-nil suggestions, got %#v", sugg)
	}
}

func TestEvaluate_LengthOnly(t *testing.T) {
	res := Canonical.Evaluate("abcdefgh")
	// lowercase is present too, so score is 2
	if res.Level != Weak {
		t.Fatalf("expected Weak, got %s", res.Level)
	}
	if len(res.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %v", res.Suggestions)
	}
	want := []Criterion{CriterionUppercase, CriterionDigit, CriterionSymbol}
	if !reflect.DeepEqual(res.Unmet, want) {
		t.Fatalf("unexpected unmet criteria: %v", res.Unmet)
	}
}

func TestEvaluate_MissingSymbol(t *testing.T) {
	level, sugg := Evaluate("Abcdefg1")
	if level != Medium {
		t.Fatalf("expected Medium, got %s", level)
	}
	if len(sugg) != 1 || sugg[0] != Suggestion(CriterionSymbol) {
		t.Fatalf("expected only the symbol suggestion, got %v", sugg)
	}
}

func TestEvaluate_Tiers(t *testing.T) {
	cases := []struct {
		in    string
		score int
		level Level
	}{
		{"a", 1, Weak},
		{"aA", 2, Weak},
		{"aA1", 3, Medium},
		{"aA1!", 4, Medium},
		{"aaaaaaaA1", 4, Medium},
		{"aaaaaA1!", 5, Strong},
	}
	for _, c := range cases {
		res := Canonical.Evaluate(c.in)
		if res.Score != c.score || res.Level != c.level {
			t.Fatalf("%q: expected %d/%s, got %d/%s", c.in, c.score, c.level, res.Score, res.Level)
		}
	}
}

func TestEvaluate_LengthCountsRunes(t *testing.T) {
	// 7 runes, 14 bytes
	if CriterionLength.Met("ççççççç") {
		t.Fatalf("7 runes must not satisfy the length criterion")
	}
	if !CriterionLength.Met("çççççççç") {
		t.Fatalf("8 runes must satisfy the length criterion")
	}
}

func TestEvaluate_NonASCIILettersIgnored(t *testing.T) {
	res := Canonical.Evaluate("ÇĞİÖŞÜçğ")
	if res.Score != 1 {
		t.Fatalf("expected only the length point, got %d (%v)", res.Score, res.Unmet)
	}
	if CriterionDigit.Met("١٢٣") {
		t.Fatalf("non-ASCII digits must not count")
	}
}

func TestEvaluate_EverySymbolCounts(t *testing.T) {
	for _, r := range Symbols {
		if !CriterionSymbol.Met(string(r)) {
			t.Fatalf("symbol %q not recognized", r)
		}
	}
	for _, s := range []string{"-", "_", "+", "=", "'", "~", "`", "[", "]", ";", "/", "\\", " "} {
		if CriterionSymbol.Met(s) {
			t.Fatalf("%q must not count as a symbol", s)
		}
	}
}

func TestEvaluate_Monotonic(t *testing.T) {
	steps := []string{"", "a", "aA", "aA1", "aA1!", "aA1!aaaa"}
	prev := Weak
	for _, s := range steps {
		level, _ := Evaluate(s)
		if level < prev {
			t.Fatalf("tier dropped from %s to %s at %q", prev, level, s)
		}
		prev = level
	}
	if prev != Strong {
		t.Fatalf("expected to reach Strong, got %s", prev)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	in := strings.Repeat("x", 10000) + "Q9"
	l1, s1 := Evaluate(in)
	l2, s2 := Evaluate(in)
	if l1 != l2 || !reflect.DeepEqual(s1, s2) {
		t.Fatalf("repeated evaluation differs")
	}
}

func TestEvaluate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if level, _ := Evaluate("Abcdefg1"); level != Medium {
				t.Errorf("expected Medium, got %s", level)
			}
		}()
	}
	wg.Wait()
}

func TestSimplifiedPolicy(t *testing.T) {
	cases := []struct {
		in    string
		level Level
	}{
		{"", Weak},
		{"abcdefgh", Weak},
		{"abcdefgH", Medium},
		{"Abcdefg1", Strong},
		{"A1", Medium},
	}
	for _, c := range cases {
		res := Simplified.Evaluate(c.in)
		if res.Level != c.level {
			t.Fatalf("%q: expected %s, got %s", c.in, c.level, res.Level)
		}
		if len(res.Suggestions) != 0 {
			t.Fatalf("simplified policy must not emit suggestions, got %v", res.Suggestions)
		}
	}
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	if err != nil || p.Name != PolicyCanonical {
		t.Fatalf("expected canonical policy by default, got %v %v", p.Name, err)
	}
	p, err = PolicyByName(PolicySimplified)
	if err != nil || p.Name != PolicySimplified {
		t.Fatalf("expected simplified policy, got %v %v", p.Name, err)
	}
	if _, err = PolicyByName("paranoid"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestLevelText(t *testing.T) {
	data, err := json.Marshal(map[string]Level{"level": Medium})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"level":"Medium"}` {
		t.Fatalf("unexpected json: %s", data)
	}
	var out map[string]Level
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["level"] != Medium {
		t.Fatalf("expected Medium, got %s", out["level"])
	}
	if _, err := ParseLevel("Ultra"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
