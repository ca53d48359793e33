package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestReporter_Report(t *testing.T) {
	bad := &Result{Path: "/opt/rt/old.json"}
	bad.AddError(FieldFileFormatVersion, "unsupported, want 1.0.0", "0.90.0")
	bad.AddWarning(FieldName, "not set", nil)

	good := &Result{Path: "/opt/rt/good.json"}
	good.AddInfo(FieldLibraryPath, "64-bit library", "/opt/rt/lib/rt.so")

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatText).Report(bad, good); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"/opt/rt/old.json",
			"1 error(s)",
			"1 warning(s)",
			"file_format_version: unsupported, want 1.0.0 [0.90.0]",
			"/opt/rt/good.json",
			"✓ valid",
			"64-bit library [/opt/rt/lib/rt.so]",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q\nGot:\n%s", want, output)
			}
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatJSON).Report(bad, good); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		var decoded []Result
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode JSON output: %v", err)
		}
		if len(decoded) != 2 || len(decoded[0].Issues) != 2 {
			t.Fatalf("decoded = %+v", decoded)
		}
		if decoded[0].Issues[0].Severity != SeverityError || decoded[0].Issues[0].Field != FieldFileFormatVersion {
			t.Errorf("first issue = %+v", decoded[0].Issues[0])
		}
		if !strings.Contains(buf.String(), `"severity": "warning"`) {
			t.Errorf("severity not rendered by name:\n%s", buf.String())
		}
	})

	t.Run("empty json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatJSON).Report(); err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("got %q, want []", buf.String())
		}
	})
}
