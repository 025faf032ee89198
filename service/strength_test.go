package service

import (
	"testing"

	"github.com/velora-app/velora-api/strength"
)

func TestStrengthService_Report(t *testing.T) {
	svc, err := NewStrengthService("")
	if err != nil {
		t.Fatalf("NewStrengthService: %v", err)
	}
	report := svc.Report("en", "abcdefgh")
	if report.Strength != strength.Weak || report.Score != 2 || report.MaxScore != 5 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Policy != strength.PolicyCanonical || len(report.Suggestions) != 3 {
		t.Fatalf("unexpected report %+v", report)
	}
	if tr := svc.Report("tr", "Ab3!ab12"); tr.StrengthLabel != "Güçlü" || len(tr.Suggestions) != 0 {
		t.Fatalf("unexpected turkish report %+v", tr)
	}
}

func TestStrengthService_UnknownPolicy(t *testing.T) {
	if _, err := NewStrengthService("paranoid"); err == nil {
		t.Fatalf("expected unknown policy to be rejected")
	}
}

func TestStrengthService_Simplified(t *testing.T) {
	svc, err := NewStrengthService(strength.PolicySimplified)
	if err != nil {
		t.Fatalf("NewStrengthService: %v", err)
	}
	if svc.PolicyName() != strength.PolicySimplified {
		t.Fatalf("unexpected policy %s", svc.PolicyName())
	}
	report := svc.Report("en", "A1")
	if report.Strength != strength.Medium || report.MaxScore != 3 {
		t.Fatalf("unexpected report %+v", report)
	}
}
