package doctor

import "time"

// Check is one diagnostic. Run never returns an error; failures are
// reported through the result's Status.
type Check interface {
	Name() string
	Category() string
	Run() *CheckResult
}

// Runner runs checks in the order given.
type Runner struct {
	checks []Check
}

func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks}
}

// Run executes every check. A check that returns nil is recorded as an
// error so a broken check cannot report a healthy system.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}
	for _, c := range r.checks {
		res := c.Run()
		if res == nil {
			res = &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityError,
				Message:  "check produced no result",
			}
		}
		report.Results = append(report.Results, res)
		report.Summary.count(res.Status)
	}
	return report
}

// Report is the outcome of a doctor run.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// Worst returns the highest severity among the results, SeverityPass for
// an empty report.
func (r *Report) Worst() Severity {
	worst := SeverityPass
	for _, res := range r.Results {
		worst = max(worst, res.Status)
	}
	return worst
}

func (r *Report) HasErrors() bool   { return r.Summary.Errors > 0 }
func (r *Report) HasWarnings() bool { return r.Summary.Warnings > 0 }
