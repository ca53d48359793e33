package commands

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/xrpick/internal/config"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// styles renders terminal output. Colors are dropped when the writer is
// not a terminal.
type styles struct {
	header lipgloss.Style
	active lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
	ok     lipgloss.Style
	border lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		active: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("8")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("3")),
		err:    r.NewStyle().Foreground(lipgloss.Color("1")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("2")),
		border: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// stateLabel renders an active state for a table cell.
func (s styles) stateLabel(state platform.ActiveState) string {
	if !state.IsActive() {
		return s.muted.Render("-")
	}
	return s.active.Render(state.String())
}

// writeStructured encodes v in one of the machine-readable formats.
func writeStructured(w io.Writer, format config.Format, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding JSON")
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case config.FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(v), "encoding TOML")
	}
	return errors.Newf("unsupported output format %q", format)
}
