package errors

import (
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"wrapped message", NewUserError(New("no runtime named steam"), "Run: xrpick list"), "no runtime named steam"},
		{"status only", Status(ExitSystem), "exit code 2"},
		{"config", NewConfigError(New("bad list_format")), "bad list_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := New("registry access denied")
	tests := []struct {
		name           string
		err            *ExitError
		wantCode       int
		wantSuggestion string
	}{
		{"user", NewUserError(cause, "pick by number"), ExitUser, "pick by number"},
		{"system", NewSystemError(cause, "run elevated"), ExitSystem, "run elevated"},
		{"config", NewConfigError(cause), ExitUser, "Run: xrpick doctor"},
		{"status", Status(ExitUser), ExitUser, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", tt.err.Suggestion, tt.wantSuggestion)
			}
		})
	}
}

func TestExitError_Chain(t *testing.T) {
	marked := Mark(New("two runtimes match \"mon\""), ErrAmbiguousSelection)
	exit := NewUserError(Wrap(marked, "activate"), "Run: xrpick list")
	outer := fmt.Errorf("command failed: %w", exit)

	if !Is(outer, ErrAmbiguousSelection) {
		t.Error("sentinel should be visible through ExitError and fmt wrapping")
	}
	if Is(outer, ErrInvalidSelection) {
		t.Error("unrelated sentinel matched")
	}

	var got *ExitError
	if !As(outer, &got) || got != exit {
		t.Fatalf("As() did not find the ExitError")
	}
	if Unwrap(exit) == nil {
		t.Error("Unwrap() returned nil for a wrapped error")
	}
	if Status(ExitUser).Unwrap() != nil {
		t.Error("status-only error should unwrap to nil")
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", New("boom"), ExitUser},
		{"system", NewSystemError(New("io"), ""), ExitSystem},
		{"wrapped system", Wrap(NewSystemError(New("io"), ""), "refresh"), ExitSystem},
		{"status", Status(ExitSystem), ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSuggestionAndStatusOnly(t *testing.T) {
	err := Wrap(NewUserError(ErrNotFound, "Run: xrpick extra list"), "remove")
	if got := Suggestion(err); got != "Run: xrpick extra list" {
		t.Errorf("Suggestion() = %q", got)
	}
	if Suggestion(New("plain")) != "" {
		t.Error("plain errors have no suggestion")
	}
	if StatusOnly(err) {
		t.Error("an ExitError with a cause is not status-only")
	}
	if !StatusOnly(Status(ExitUser)) {
		t.Error("Status() should be status-only")
	}
	if StatusOnly(nil) {
		t.Error("nil is not status-only")
	}
}

func TestExitCodeValues(t *testing.T) {
	if ExitSuccess != 0 || ExitUser != 1 || ExitSystem != 2 {
		t.Errorf("exit codes = %d/%d/%d, want 0/1/2", ExitSuccess, ExitUser, ExitSystem)
	}
}
