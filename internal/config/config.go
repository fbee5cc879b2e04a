package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gaffkit/screenstats/internal/imaging"
)

// ErrNoROIs reports a coordinate map that declares no stats at all. An
// empty map is a configuration mistake, not an extraction result.
var ErrNoROIs = errors.New("coordinate map declares no stats")

// ValidationError identifies the screen and stat whose declaration failed
// validation, so a long map can be fixed without hunting.
type ValidationError struct {
	Screen string
	Stat   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Stat == "" {
		return fmt.Sprintf("coordinate map: screen %q: %s", e.Screen, e.Reason)
	}
	return fmt.Sprintf("coordinate map: screen %q, stat %q: %s", e.Screen, e.Stat, e.Reason)
}

// ValueKind selects how an assembled symbol sequence is interpreted.
type ValueKind string

const (
	KindInteger    ValueKind = "integer"
	KindDecimal    ValueKind = "decimal"
	KindPercentage ValueKind = "percentage"
	KindText       ValueKind = "text"
)

func (k ValueKind) valid() bool {
	switch k {
	case KindInteger, KindDecimal, KindPercentage, KindText:
		return true
	}
	return false
}

// Rect is a stat's region of interest in capture pixel coordinates.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Bounds converts the rect to the image coordinate convention.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Stat is one declared region of interest.
type Stat struct {
	Key       string
	Rect      Rect
	Kind      ValueKind
	Color     string
	Tolerance float64
}

// Profile derives the binarisation profile for this stat. Load has already
// validated the colour string, so a parse failure here falls back to the
// default profile rather than erroring twice.
func (s Stat) Profile() imaging.Profile {
	if s.Color == "" || s.Color == "default" {
		return imaging.DefaultProfile()
	}
	target, err := imaging.ParseHexColor(s.Color)
	if err != nil {
		return imaging.DefaultProfile()
	}
	return imaging.ColorProfile(target, s.Tolerance)
}

// Screen is one named capture layout with its stats in declaration order.
type Screen struct {
	Name  string
	Stats []Stat
}

// Capture declares the expected capture dimensions. Zero means undeclared
// and disables bounds validation against it.
type Capture struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Map is a validated coordinate map.
type Map struct {
	Capture Capture

	screens map[string]*Screen
	order   []string
}

// Screen looks up a screen layout by name.
func (m *Map) Screen(name string) (*Screen, bool) {
	s, ok := m.screens[name]
	return s, ok
}

// ScreenNames returns the declared screen names in document order.
func (m *Map) ScreenNames() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Load reads, parses and validates a coordinate map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coordinate map: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates coordinate map YAML.
func Parse(data []byte) (*Map, error) {
	var raw struct {
		Capture Capture   `yaml:"capture"`
		Screens yaml.Node `yaml:"screens"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse coordinate map: %w", err)
	}

	m := &Map{Capture: raw.Capture, screens: make(map[string]*Screen)}
	if err := m.decodeScreens(&raw.Screens); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeScreens walks the screens mapping node by hand. Decoding through a
// Go map would lose the stat declaration order the batch contract depends
// on.
func (m *Map) decodeScreens(node *yaml.Node) error {
	if node.Kind == 0 || node.Tag == "!!null" {
		return ErrNoROIs
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("coordinate map: screens must be a mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if _, dup := m.screens[name]; dup {
			return &ValidationError{Screen: name, Reason: "declared twice"}
		}
		screen := &Screen{Name: name}
		if err := decodeStats(screen, node.Content[i+1]); err != nil {
			return err
		}
		m.screens[name] = screen
		m.order = append(m.order, name)
	}
	return nil
}

func decodeStats(screen *Screen, node *yaml.Node) error {
	var raw struct {
		Stats yaml.Node `yaml:"stats"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("coordinate map: screen %q: %w", screen.Name, err)
	}
	if raw.Stats.Kind == 0 || raw.Stats.Tag == "!!null" {
		return &ValidationError{Screen: screen.Name, Reason: "declares no stats"}
	}
	if raw.Stats.Kind != yaml.MappingNode {
		return &ValidationError{Screen: screen.Name, Reason: "stats must be a mapping"}
	}

	for i := 0; i+1 < len(raw.Stats.Content); i += 2 {
		key := raw.Stats.Content[i].Value
		var rs struct {
			Rect      Rect    `yaml:"rect"`
			Kind      string  `yaml:"kind"`
			Color     string  `yaml:"color"`
			Tolerance float64 `yaml:"tolerance"`
		}
		if err := raw.Stats.Content[i+1].Decode(&rs); err != nil {
			return &ValidationError{Screen: screen.Name, Stat: key, Reason: err.Error()}
		}
		kind := ValueKind(rs.Kind)
		if rs.Kind == "" {
			kind = KindInteger
		}
		screen.Stats = append(screen.Stats, Stat{
			Key:       key,
			Rect:      rs.Rect,
			Kind:      kind,
			Color:     rs.Color,
			Tolerance: rs.Tolerance,
		})
	}
	return nil
}

func (m *Map) validate() error {
	total := 0
	for _, name := range m.order {
		screen := m.screens[name]
		if len(screen.Stats) == 0 {
			return &ValidationError{Screen: name, Reason: "declares no stats"}
		}
		seen := make(map[string]bool, len(screen.Stats))
		for _, stat := range screen.Stats {
			if seen[stat.Key] {
				return &ValidationError{Screen: name, Stat: stat.Key, Reason: "declared twice"}
			}
			seen[stat.Key] = true
			if err := validateStat(name, stat, m.Capture); err != nil {
				return err
			}
			total++
		}
	}
	if total == 0 {
		return ErrNoROIs
	}
	return nil
}

func validateStat(screen string, stat Stat, capture Capture) error {
	fail := func(reason string) error {
		return &ValidationError{Screen: screen, Stat: stat.Key, Reason: reason}
	}

	if !stat.Kind.valid() {
		return fail(fmt.Sprintf("unknown kind %q", stat.Kind))
	}
	if stat.Rect.W <= 0 || stat.Rect.H <= 0 {
		return fail(fmt.Sprintf("rect %dx%d has no area", stat.Rect.W, stat.Rect.H))
	}
	if stat.Rect.X < 0 || stat.Rect.Y < 0 {
		return fail("rect origin is negative")
	}
	if capture.Width > 0 && capture.Height > 0 {
		if stat.Rect.X+stat.Rect.W > capture.Width || stat.Rect.Y+stat.Rect.H > capture.Height {
			return fail(fmt.Sprintf("rect exceeds declared %dx%d capture", capture.Width, capture.Height))
		}
	}
	if stat.Color != "" && stat.Color != "default" {
		if _, err := imaging.ParseHexColor(stat.Color); err != nil {
			return fail(fmt.Sprintf("bad color %q", stat.Color))
		}
	}
	if stat.Tolerance < 0 {
		return fail("negative tolerance")
	}
	return nil
}

// StatKeys returns every stat key declared across all screens, sorted and
// de-duplicated. Useful for schema checks against stored match data.
func (m *Map) StatKeys() []string {
	set := make(map[string]bool)
	for _, screen := range m.screens {
		for _, stat := range screen.Stats {
			set[stat.Key] = true
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
