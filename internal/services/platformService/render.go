package platformservice

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Format selects how a Snapshot is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want one of text, table, json, yaml)", s)
	}
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// Render writes s to w in the given format.
func Render(w io.Writer, s Snapshot, format Format) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, s.Format())
		return err
	case FormatTable:
		_, err := io.WriteString(w, s.Table()+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Format renders s as aligned "Label: value" lines under a heading.
func (s Snapshot) Format() string {
	var builder strings.Builder

	width := 0
	for _, p := range properties {
		width = max(width, len(p.label))
	}

	builder.WriteString(headingStyle.Render("Platform Information:"))
	builder.WriteString("\n")
	for _, p := range properties {
		builder.WriteString(fmt.Sprintf("  %-*s %s\n", width+1, p.label+":", p.value(s)))
	}

	return builder.String()
}

// Table renders s as a two-column table.
func (s Snapshot) Table() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Property", "Value"})

	for _, p := range properties {
		v := p.value(s)
		if p.key == "logicalDrives" {
			v = strings.Join(s.LogicalDrives, "\n")
		}
		t.AppendRow(table.Row{p.label, v})
	}

	return t.Render()
}

// RenderProperties writes only the named properties of s (keys or aliases).
// Every name is resolved before anything is written, so an unknown name
// produces no output. Text output is one "key: value" line per name in the
// order given; json and yaml emit an object keyed by canonical name.
func RenderProperties(w io.Writer, s Snapshot, names []string, format Format) error {
	selected := make([]property, 0, len(names))
	for _, name := range names {
		p, ok := lookupProperty(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
		}
		selected = append(selected, p)
	}

	switch format {
	case FormatText, "":
		var builder strings.Builder
		for _, p := range selected {
			builder.WriteString(fmt.Sprintf("%s: %s\n", p.key, p.value(s)))
		}
		_, err := io.WriteString(w, builder.String())
		return err
	case FormatTable:
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Property", "Value"})
		for _, p := range selected {
			v := p.value(s)
			if p.key == "logicalDrives" {
				v = strings.Join(s.LogicalDrives, "\n")
			}
			t.AppendRow(table.Row{p.label, v})
		}
		_, err := io.WriteString(w, t.Render()+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s.fields(selected))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s.fields(selected)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// fields maps each selected canonical key to its typed Snapshot value.
func (s Snapshot) fields(selected []property) map[string]any {
	v := reflect.ValueOf(s)
	t := v.Type()

	out := make(map[string]any, len(selected))
	for _, p := range selected {
		for i := 0; i < t.NumField(); i++ {
			tag, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
			if tag == p.key {
				out[p.key] = v.Field(i).Interface()
				break
			}
		}
	}
	return out
}
