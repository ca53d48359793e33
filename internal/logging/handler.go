package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/thoreinstein/xrpick/internal/paths"
)

// palette holds the colors used by Handler. A nil palette means plain output.
type palette struct {
	time, key                      *color.Color
	trace, debug, info, warn, fail *color.Color
}

func newPalette() *palette {
	return &palette{
		time:  color.New(color.FgHiBlack),
		key:   color.New(color.FgCyan),
		trace: color.New(color.FgHiBlack),
		debug: color.New(color.FgMagenta),
		info:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed, color.Bold),
	}
}

func (p *palette) level(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return p.fail
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// Handler is the terminal slog.Handler: one line per record with a short
// timestamp, padded level and key=value attributes. Paths under the home
// directory are shown as ~/...
type Handler struct {
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	colors *palette
	prefix string
	preset string
}

// NewHandler returns a Handler writing to out. Colors are enabled only when
// out is a terminal that allows them.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{out: out, mu: &sync.Mutex{}, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	if SupportsColor(out) {
		h.colors = newPalette()
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(h.paint(h.timeColor(), r.Time.Format(time.Kitchen)))
		b.WriteByte(' ')
	}
	b.WriteString(h.levelLabel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	b.WriteString(h.preset)
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// levelLabel pads to five columns before coloring so alignment survives
// the escape codes.
func (h *Handler) levelLabel(l slog.Level) string {
	name := l.String()
	if l == LevelTrace {
		name = "TRACE"
	}
	name = fmt.Sprintf("%-5s", name)
	if h.colors == nil {
		return name
	}
	return h.colors.level(l).Sprint(name)
}

func (h *Handler) timeColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.time
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) writeAttr(b *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	var key *color.Color
	if h.colors != nil {
		key = h.colors.key
	}
	fmt.Fprintf(b, " %s=%s", h.paint(key, h.prefix+a.Key), formatValue(a.Value))
}

// formatValue renders v on a single line. String slices are comma joined
// and values that would be ambiguous, such as Windows "Program Files"
// paths, are quoted.
func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindString:
		s = paths.Simplify(v.String())
	case slog.KindAny:
		if ss, ok := v.Any().([]string); ok {
			parts := make([]string, len(ss))
			for i, p := range ss {
				parts[i] = paths.Simplify(p)
			}
			s = strings.Join(parts, ",")
			break
		}
		s = fmt.Sprint(v.Any())
	default:
		s = v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.preset)
	for _, a := range attrs {
		h.writeAttr(&b, a)
	}
	c := *h
	c.preset = b.String()
	return &c
}

// WithGroup prefixes later keys with "name.". Attributes added before the
// group keep their original keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix = h.prefix + name + "."
	return &c
}
