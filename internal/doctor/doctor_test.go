package doctor

import (
	"encoding/json"
	"strings"
	"testing"
)

func stubCheck(t *testing.T, name string, res *CheckResult) *MockCheck {
	t.Helper()
	c := NewMockCheck(t)
	c.EXPECT().Run().Return(res)
	c.EXPECT().Name().Return(name).Maybe()
	c.EXPECT().Category().Return("runtime").Maybe()
	return c
}

func result(name string, s Severity) *CheckResult {
	return &CheckResult{Name: name, Category: "runtime", Status: s, Message: name}
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []Severity
		want      Summary
		wantWorst Severity
	}{
		{name: "no checks", want: Summary{}, wantWorst: SeverityPass},
		{
			name:      "all pass",
			statuses:  []Severity{SeverityPass, SeverityPass},
			want:      Summary{Passed: 2},
			wantWorst: SeverityPass,
		},
		{
			name:      "info does not raise the outcome past info",
			statuses:  []Severity{SeverityPass, SeverityInfo},
			want:      Summary{Passed: 1, Info: 1},
			wantWorst: SeverityInfo,
		},
		{
			name:      "mixed",
			statuses:  []Severity{SeverityWarning, SeverityPass, SeverityError, SeverityWarning},
			want:      Summary{Passed: 1, Warnings: 2, Errors: 1},
			wantWorst: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var checks []Check
			for i, s := range tt.statuses {
				name := string(rune('a' + i))
				checks = append(checks, stubCheck(t, name, result(name, s)))
			}

			report := NewRunner(checks...).Run()

			if len(report.Results) != len(tt.statuses) {
				t.Fatalf("Results = %d, want %d", len(report.Results), len(tt.statuses))
			}
			for i, res := range report.Results {
				if want := string(rune('a' + i)); res.Name != want {
					t.Errorf("Results[%d].Name = %q, want %q", i, res.Name, want)
				}
			}
			if report.Summary != tt.want {
				t.Errorf("Summary = %+v, want %+v", report.Summary, tt.want)
			}
			if got := report.Worst(); got != tt.wantWorst {
				t.Errorf("Worst() = %v, want %v", got, tt.wantWorst)
			}
			if report.HasErrors() != (tt.want.Errors > 0) || report.HasWarnings() != (tt.want.Warnings > 0) {
				t.Errorf("HasErrors/HasWarnings disagree with summary %+v", report.Summary)
			}
			if report.Timestamp.IsZero() {
				t.Error("Timestamp not set")
			}
		})
	}
}

func TestRunner_Run_NilResult(t *testing.T) {
	c := NewMockCheck(t)
	c.EXPECT().Run().Return(nil)
	c.EXPECT().Name().Return("library")
	c.EXPECT().Category().Return("runtime")

	report := NewRunner(c).Run()

	got := report.Results[0]
	if got.Name != "library" || got.Status != SeverityError {
		t.Errorf("nil result recorded as %+v", got)
	}
	if report.Summary.Errors != 1 {
		t.Errorf("Summary.Errors = %d, want 1", report.Summary.Errors)
	}
}

func TestCheckResult_Problem(t *testing.T) {
	for s, want := range map[Severity]bool{
		SeverityPass:    false,
		SeverityInfo:    false,
		SeverityWarning: true,
		SeverityError:   true,
	} {
		if got := result("x", s).Problem(); got != want {
			t.Errorf("Problem() for %v = %v, want %v", s, got, want)
		}
	}
}

func TestSeverity_Text(t *testing.T) {
	for _, s := range []Severity{SeverityPass, SeverityInfo, SeverityWarning, SeverityError} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", s, err)
		}
		var back Severity
		if err := back.UnmarshalText(b); err != nil || back != s {
			t.Errorf("UnmarshalText(%q) = %v, %v", b, back, err)
		}
	}

	if Severity(9).String() != "unknown" {
		t.Errorf("String() of out-of-range severity = %q", Severity(9).String())
	}
	if _, err := Severity(-1).MarshalText(); err == nil {
		t.Error("MarshalText should reject unknown severities")
	}
	var s Severity
	if err := s.UnmarshalText([]byte("fatal")); err == nil {
		t.Error("UnmarshalText should reject unknown names")
	}
}

func TestReport_JSON(t *testing.T) {
	report := NewRunner(stubCheck(t, "active-runtime", &CheckResult{
		Name:     "active-runtime",
		Category: "runtime",
		Status:   SeverityWarning,
		Message:  "no active runtime",
		FixHint:  "Run: xrpick activate",
	})).Run()

	b, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(b)
	for _, want := range []string{`"status":"warning"`, `"fix_hint":"Run: xrpick activate"`, `"warnings":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON missing %s: %s", want, out)
		}
	}
	if strings.Contains(out, `"details"`) {
		t.Errorf("empty details should be omitted: %s", out)
	}
}
