package i18n

import (
	"testing"

	"github.com/velora-app/velora-api/strength"
)

func TestT_Turkish(t *testing.T) {
	if got := T("tr", "strength.Strong"); got != "Güçlü" {
		t.Fatalf("expected Güçlü, got %q", got)
	}
	if got := T("tr-TR,tr;q=0.9,en;q=0.8", "strength.Weak"); got != "Zayıf" {
		t.Fatalf("expected Zayıf for Accept-Language header, got %q", got)
	}
}

func TestT_FallbackToEnglish(t *testing.T) {
	if got := T("de", "strength.Medium"); got != "Medium" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if got := T("", "message.welcome"); got != "Welcome to Velora!" {
		t.Fatalf("expected English default, got %q", got)
	}
}

func TestT_UnknownID(t *testing.T) {
	if got := T("en", "no.such.message"); got != "no.such.message" {
		t.Fatalf("expected id echoed back, got %q", got)
	}
}

func TestSuggestions_MatchEvaluatorOrder(t *testing.T) {
	res := strength.Canonical.Evaluate("")
	en := Suggestions("en", res)
	if len(en) != len(res.Suggestions) {
		t.Fatalf("expected %d suggestions, got %d", len(res.Suggestions), len(en))
	}
	for i := range en {
		if en[i] != res.Suggestions[i] {
			t.Fatalf("english suggestion %d differs: %q vs %q", i, en[i], res.Suggestions[i])
		}
	}
	tr := Suggestions("tr", res)
	if tr[0] != "Şifre en az 8 karakter olmalı." {
		t.Fatalf("unexpected turkish suggestion: %q", tr[0])
	}
}

func TestSuggestions_SimplifiedPolicyStaysEmpty(t *testing.T) {
	res := strength.Simplified.Evaluate("")
	got := Suggestions("en", res)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty suggestions, got %#v", got)
	}
}

func TestLevelLabel(t *testing.T) {
	if got := LevelLabel("tr", strength.Medium); got != "Orta" {
		t.Fatalf("expected Orta, got %q", got)
	}
}
