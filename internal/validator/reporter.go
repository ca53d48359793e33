package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/xrpick/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation results to the output.
func (r *Reporter) Report(results ...*Result) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(results)
	default:
		for _, res := range results {
			if res != nil {
				r.reportText(res)
			}
		}
		return nil
	}
}

// reportJSON writes the results as a JSON array.
func (r *Reporter) reportJSON(results []*Result) error {
	if results == nil {
		results = []*Result{}
	}
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(results), "encoding JSON report")
}

// reportText writes one result as human-readable text.
func (r *Reporter) reportText(result *Result) {
	fmt.Fprintln(r.out, result.Path)

	if !result.HasErrors() && !result.HasWarnings() {
		fmt.Fprintf(r.out, "  %s\n", color.GreenString("✓ valid"))
		for _, info := range result.Infos() {
			r.printIssue(info, color.FgCyan)
		}
		fmt.Fprintln(r.out)
		return
	}

	errs := result.Errors()
	warnings := result.Warnings()

	summary := []string{}
	if len(errs) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(errs)))
	}
	if len(warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
	}
	fmt.Fprintf(r.out, "  %s\n", strings.Join(summary, ", "))

	for _, e := range errs {
		r.printIssue(e, color.FgRed)
	}
	for _, w := range warnings {
		r.printIssue(w, color.FgYellow)
	}
	for _, info := range result.Infos() {
		r.printIssue(info, color.FgCyan)
	}
	fmt.Fprintln(r.out)
}

// printIssue writes "  • field: message [value]".
func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	var sb strings.Builder
	sb.WriteString("  • ")
	if i.Field != "" {
		sb.WriteString(printer(i.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	if i.Value != nil {
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%v]", i.Value))
	}

	fmt.Fprintln(r.out, sb.String())
}
