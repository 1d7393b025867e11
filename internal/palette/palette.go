package palette

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmpty is returned when a palette ends up with no entries, either
// because the source file contained none or because a selection filter
// removed them all.
var ErrEmpty = errors.New("palette is empty")

// Color represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where 0 is no intensity and 255
// is full intensity for that channel.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#rrggbb" form, suitable for SVG fill
// attributes and palette files.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Entry is one named reference color that source pixels are snapped to.
type Entry struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// Palette is an ordered, non-empty sequence of entries. Entry names are
// unique case-insensitively; order matters because nearest-color ties
// resolve to the earliest entry.
type Palette []Entry

var hexToken = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ParseHex parses a 6-digit hex color such as "1A2B3C" or "#1a2b3c".
//
// The leading "#" is optional and hex digits are case-insensitive. Any
// other length or non-hex character is a configuration error.
func ParseHex(s string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexToken.MatchString(trimmed) {
		return Color{}, fmt.Errorf("invalid hex color: %q", s)
	}

	c, err := colorful.Hex("#" + strings.ToLower(trimmed))
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Nearest returns the entry whose color minimizes squared Euclidean
// distance in RGB space to c.
//
// Ties resolve to the first entry achieving the minimum, in palette
// order, so the result is deterministic for a fixed palette. The
// palette must be non-empty; Nearest panics on an empty palette because
// emptiness is rejected at load time.
func (p Palette) Nearest(c Color) Entry {
	best := p[0]
	bestDist := distSq(c, p[0].Color)
	for _, e := range p[1:] {
		if d := distSq(c, e.Color); d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

// distSq is the squared Euclidean distance between two colors in RGB
// space. Perceptual metrics are deliberately out of scope; dot patterns
// quantize against raw channel values.
func distSq(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// Filter returns the entries whose names appear in the given selection,
// matched case-insensitively, preserving palette order.
//
// Returns ErrEmpty if the selection removes every entry. An empty
// selection returns the palette unchanged.
func (p Palette) Filter(names []string) (Palette, error) {
	if len(names) == 0 {
		return p, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(strings.TrimSpace(n))] = true
	}

	var out Palette
	for _, e := range p {
		if wanted[strings.ToLower(e.Name)] {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no palette entries match selection %v: %w", names, ErrEmpty)
	}
	return out, nil
}

// Find returns the entry with the given name (case-insensitive) and
// whether it exists.
func (p Palette) Find(name string) (Entry, bool) {
	for _, e := range p {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a color name to a URL-safe identifier: lowercase,
// every run of characters outside [a-z0-9] collapsed to a single
// hyphen, leading and trailing hyphens trimmed.
//
// Slugify is idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(name string) string {
	return strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(name), "-"), "-")
}
