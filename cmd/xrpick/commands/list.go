package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/cli"
	"github.com/thoreinstein/xrpick/internal/config"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/paths"
)

var (
	listFormat string
	listExtra  []string
)

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "",
		"output format: table, json, yaml, toml (default from config list_format)")
	listCmd.Flags().StringArrayVar(&listExtra, "extra", nil,
		"additional manifest to include for this run (repeatable)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available OpenXR runtimes",
	Long: `List every OpenXR runtime found on this machine, in a stable order.

Each runtime shows its list index, name, whether it is active, and the
manifests and libraries it owns. Manifests that could not be used are
listed after the table.`,
	Example: `  # Table output
  xrpick list

  # Machine-readable output
  xrpick list --format json

  # Include a manifest outside the standard locations
  xrpick list --extra ~/src/monado/build/openxr_monado-dev.json

See Also: xrpick show, xrpick activate`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// listOutput is the structured form of the list command.
type listOutput struct {
	Runtimes []cli.RuntimeInfo `json:"runtimes" yaml:"runtimes" toml:"runtimes"`
	Errors   []manifestProblem `json:"errors,omitempty" yaml:"errors,omitempty" toml:"errors,omitempty"`
	Active   []string          `json:"active" yaml:"active" toml:"active"`
}

// manifestProblem is a manifest skipped during discovery.
type manifestProblem struct {
	Path  string `json:"path" yaml:"path" toml:"path"`
	Error string `json:"error" yaml:"error" toml:"error"`
}

func runList(cmd *cobra.Command, _ []string) error {
	format := listFormat
	if format == "" {
		format = cfg.ListFormat
	}
	if !config.ValidFormat(format) {
		return errors.NewUserError(
			errors.Mark(errors.Newf("unknown format %q", format), config.ErrInvalidFormat),
			"use one of: table, json, yaml, toml")
	}

	h, err := loadHost(cmd, listExtra)
	if err != nil {
		return err
	}
	return writeList(cmd.OutOrStdout(), h, config.Format(format))
}

func writeList(w io.Writer, h cli.Host, format config.Format) error {
	runtimes := h.Runtimes()
	if format != config.FormatTable {
		out := listOutput{Runtimes: runtimes, Active: h.ActiveManifests()}
		for _, e := range h.Errors() {
			out.Errors = append(out.Errors, manifestProblem{Path: e.Path, Error: e.Err.Error()})
		}
		if out.Runtimes == nil {
			out.Runtimes = []cli.RuntimeInfo{}
		}
		if out.Active == nil {
			out.Active = []string{}
		}
		return writeStructured(w, format, out)
	}

	st := newStyles(w)
	if len(runtimes) == 0 {
		fmt.Fprintln(w, "No OpenXR runtimes found.")
	} else {
		fmt.Fprintln(w, runtimeTable(st, runtimes))
	}

	if errs := h.Errors(); len(errs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.warn.Render(fmt.Sprintf("Skipped %d manifest(s):", len(errs))))
		for _, e := range errs {
			fmt.Fprintf(w, "  %s\n    %s\n", paths.Simplify(e.Path), st.muted.Render(e.Err.Error()))
		}
	}

	fmt.Fprintln(w)
	active := h.ActiveManifests()
	if len(active) == 0 {
		fmt.Fprintln(w, st.muted.Render("No active runtime configured."))
		return nil
	}
	fmt.Fprintln(w, st.header.Render("Active manifest(s):"))
	for _, m := range active {
		fmt.Fprintf(w, "  %s\n", m)
	}
	return nil
}

func runtimeTable(st styles, runtimes []cli.RuntimeInfo) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.border).
		Headers("#", "NAME", "STATE", "MANIFEST", "LIBRARY").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, rt := range runtimes {
		manifests := make([]string, len(rt.Manifests))
		for i, m := range rt.Manifests {
			manifests[i] = paths.Simplify(m)
		}
		t.Row(
			strconv.Itoa(rt.Index),
			rt.Name,
			st.stateLabel(rt.State),
			strings.Join(manifests, "\n"),
			strings.Join(rt.Libraries, "\n"),
		)
	}
	return t.Render()
}
