// Package palette implements the single-selection color picker.
package palette

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownSwatch is returned when a selection names no swatch.
var ErrUnknownSwatch = errors.New("unknown swatch")

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Swatch is one selectable color.
type Swatch struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// Defaults is the built-in swatch set.
func Defaults() []Swatch {
	return []Swatch{
		{Name: "Cyan", Color: "#00d4ff"},
		{Name: "Green", Color: "#00ff88"},
		{Name: "Pink", Color: "#ff006e"},
		{Name: "Yellow", Color: "#ffd60a"},
		{Name: "Purple", Color: "#8338ec"},
		{Name: "Orange", Color: "#fb5607"},
	}
}

// Validate checks that every swatch has a hex color and that names are unique.
func Validate(swatches []Swatch) error {
	if len(swatches) == 0 {
		return errors.New("no swatches defined")
	}
	seen := make(map[string]struct{}, len(swatches))
	for i, s := range swatches {
		if !hexColor.MatchString(strings.TrimSpace(s.Color)) {
			return fmt.Errorf("swatch %d: invalid color %q", i+1, s.Color)
		}
		key := strings.ToLower(strings.TrimSpace(s.Name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("swatch %d: duplicate name %q", i+1, s.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Picker holds at most one selected swatch. Nothing is selected initially.
type Picker struct {
	swatches []Swatch
	selected int
	cursor   int
}

// New builds a picker over swatches, falling back to Defaults when empty.
func New(swatches []Swatch) *Picker {
	if len(swatches) == 0 {
		swatches = Defaults()
	}
	dup := make([]Swatch, len(swatches))
	copy(dup, swatches)
	for i := range dup {
		dup[i].Color = strings.ToLower(strings.TrimSpace(dup[i].Color))
		if strings.TrimSpace(dup[i].Name) == "" {
			dup[i].Name = dup[i].Color
		}
	}
	return &Picker{swatches: dup, selected: -1}
}

// Swatches returns a copy of the swatch set.
func (p *Picker) Swatches() []Swatch {
	dup := make([]Swatch, len(p.swatches))
	copy(dup, p.swatches)
	return dup
}

// Len returns the number of swatches.
func (p *Picker) Len() int { return len(p.swatches) }

// Selected returns the selected swatch.
func (p *Picker) Selected() (Swatch, bool) {
	if p.selected < 0 {
		return Swatch{}, false
	}
	return p.swatches[p.selected], true
}

// SelectedIndex returns the selected index or -1.
func (p *Picker) SelectedIndex() int { return p.selected }

// IsSelected reports whether index i is the selection.
func (p *Picker) IsSelected(i int) bool { return i >= 0 && i == p.selected }

// Select replaces the selection with swatch i.
func (p *Picker) Select(i int) (Swatch, error) {
	if i < 0 || i >= len(p.swatches) {
		return Swatch{}, fmt.Errorf("select %d: %w", i+1, ErrUnknownSwatch)
	}
	p.selected = i
	p.cursor = i
	return p.swatches[i], nil
}

// SelectByName selects the swatch whose name or color matches, ignoring case.
func (p *Picker) SelectByName(name string) (Swatch, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, s := range p.swatches {
		if strings.ToLower(s.Name) == want || s.Color == want {
			return p.Select(i)
		}
	}
	return Swatch{}, fmt.Errorf("select %q: %w", name, ErrUnknownSwatch)
}

// Cursor returns the focused swatch index.
func (p *Picker) Cursor() int { return p.cursor }

// MoveCursor shifts focus by delta, wrapping at both ends.
func (p *Picker) MoveCursor(delta int) int {
	n := len(p.swatches)
	p.cursor = ((p.cursor+delta)%n + n) % n
	return p.cursor
}

// SelectCursor selects the focused swatch.
func (p *Picker) SelectCursor() (Swatch, error) {
	return p.Select(p.cursor)
}
