package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

const (
	Title       = "Recently Added Devices"
	Placeholder = "No new devices added today"
)

type Policy string

const (
	SuccessesOnly   Policy = "successes"
	IncludeFailures Policy = "all"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", SuccessesOnly:
		return SuccessesOnly, nil
	case IncludeFailures:
		return IncludeFailures, nil
	default:
		return "", fmt.Errorf("unknown report policy %q, expected %q or %q", s, SuccessesOnly, IncludeFailures)
	}
}

type Row struct {
	Index       string
	DisplayName string
	Status      domain.OutcomeStatus
	Detail      string
}

type Report struct {
	Title       string
	Filename    string
	Market      string
	Rows        []Row
	Failures    []Row
	Summary     []string
	Total       int
	Placeholder bool
}

type Formatter struct {
	policy Policy
}

func NewFormatter(policy Policy) *Formatter {
	return &Formatter{policy: policy}
}

func (f *Formatter) Format(result *domain.BatchResult) *Report {
	successes := result.Successes()

	r := &Report{
		Title:    Title,
		Filename: result.Filename,
		Market:   result.Market,
		Total:    len(successes),
	}

	if len(successes) == 0 {
		r.Placeholder = true
		r.Rows = []Row{{DisplayName: Placeholder}}
	}

	for i, o := range successes {
		r.Rows = append(r.Rows, Row{
			Index:       strconv.Itoa(i + 1),
			DisplayName: o.Record.DisplayName,
			Status:      o.Status,
		})
	}

	if f.policy == IncludeFailures {
		for i, o := range result.Failures() {
			r.Failures = append(r.Failures, Row{
				Index:       strconv.Itoa(i + 1),
				DisplayName: o.Record.DisplayName,
				Status:      o.Status,
				Detail:      failureDetail(o),
			})
		}
	}

	r.Summary = append(r.Summary, fmt.Sprintf("New Device Total: %d", r.Total))

	if n := result.Rejected(); n > 0 {
		r.Summary = append(r.Summary, fmt.Sprintf("Rejected: %d", n))
	}

	if n := result.Errored(); n > 0 {
		r.Summary = append(r.Summary, fmt.Sprintf("Transport Errors: %d", n))
	}

	if n := result.SkippedCount(); n > 0 {
		r.Summary = append(r.Summary, fmt.Sprintf("Skipped Rows: %d", n))
	}

	if result.Aborted {
		r.Summary = append(r.Summary, "Processing was interrupted before the end of the file")
	}

	return r
}

func failureDetail(o *domain.CallOutcome) string {
	if o.Status == domain.OutcomeRejected {
		return fmt.Sprintf("HTTP %d: %s", o.StatusCode, o.Detail())
	}

	return o.Detail()
}

// Render returns the report as plain text tables followed by the summary.
func (r *Report) Render() string {
	var b strings.Builder

	t := table.NewWriter()
	t.SetTitle(r.Title)
	t.AppendHeader(table.Row{"#", "Device Name"})

	for i, row := range r.Rows {
		t.AppendRow(table.Row{row.Index, row.DisplayName})
		if i < len(r.Rows)-1 {
			t.AppendSeparator()
		}
	}

	b.WriteString(t.Render())
	b.WriteString("\n")

	if len(r.Failures) > 0 {
		ft := table.NewWriter()
		ft.SetTitle("Failed Devices")
		ft.AppendHeader(table.Row{"#", "Device Name", "Outcome", "Detail"})
		ft.SetColumnConfigs([]table.ColumnConfig{{Number: 4, WidthMax: 80}})

		for _, row := range r.Failures {
			ft.AppendRow(table.Row{row.Index, row.DisplayName, string(row.Status), row.Detail})
		}

		b.WriteString("\n")
		b.WriteString(ft.Render())
		b.WriteString("\n")
	}

	for _, line := range r.Summary {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Report) String() string {
	return r.Render()
}
