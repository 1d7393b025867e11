package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// fileEntry is the JSON palette file schema: a flat array of objects
// with a name and a hex code.
type fileEntry struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// LoadFile reads a palette from disk.
//
// Two formats are supported, selected by file extension:
//   - ".json": an array of {"name": ..., "hex": ...} objects.
//   - anything else: a Markdown table with Name and Hex columns, as
//     published in filament vendor color charts.
//
// Entry names must be unique case-insensitively. Returns ErrEmpty if
// the file yields no entries.
func LoadFile(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var pal Palette
	if strings.EqualFold(filepath.Ext(path), ".json") {
		pal, err = parseJSON(data)
	} else {
		pal, err = parseMarkdown(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse palette %s: %w", path, err)
	}

	if len(pal) == 0 {
		return nil, fmt.Errorf("palette file %s: %w", path, ErrEmpty)
	}
	if err := checkUnique(pal); err != nil {
		return nil, fmt.Errorf("palette file %s: %w", path, err)
	}
	return pal, nil
}

func parseJSON(data []byte) (Palette, error) {
	var raw []fileEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	pal := make(Palette, 0, len(raw))
	for _, item := range raw {
		if item.Name == "" {
			return nil, fmt.Errorf("palette entry with hex %q has no name", item.Hex)
		}
		c, err := ParseHex(item.Hex)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", item.Name, err)
		}
		pal = append(pal, Entry{Name: item.Name, Color: c})
	}
	return pal, nil
}

var mdHexToken = regexp.MustCompile(`#?[0-9A-Fa-f]{6}`)

// parseMarkdown extracts (name, hex) pairs from a Markdown table.
//
// Any line without a "|" is skipped, as are header rows whose first
// cell is "name" and separator rows. The name is the first cell; the
// hex code is the first 6-hex-digit token found in the first subsequent
// cell containing a "#". Rows without a hex token are skipped rather
// than rejected, so prose around the table is harmless.
func parseMarkdown(text string) (Palette, error) {
	var pal Palette
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		// Leading "|" produces an empty first cell.
		if parts[0] == "" {
			parts = parts[1:]
		}
		if len(parts) < 2 || strings.EqualFold(parts[0], "name") {
			continue
		}

		name := parts[0]
		var token string
		for _, cell := range parts[1:] {
			if strings.Contains(cell, "#") {
				token = mdHexToken.FindString(cell)
				break
			}
		}
		if token == "" {
			continue
		}

		c, err := ParseHex(token)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		pal = append(pal, Entry{Name: name, Color: c})
	}
	return pal, nil
}

func checkUnique(pal Palette) error {
	seen := make(map[string]bool, len(pal))
	for _, e := range pal {
		key := strings.ToLower(e.Name)
		if seen[key] {
			return fmt.Errorf("duplicate palette entry name %q", e.Name)
		}
		seen[key] = true
	}
	return nil
}
