package career

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	registryFile = "careers.json"
	matchesFile  = "matches.json"
	playersFile  = "players.json"
)

// ErrNotFound reports a career ID the registry does not know.
var ErrNotFound = errors.New("career not found")

// Detail is one registry entry.
type Detail struct {
	ID          string    `json:"id"`
	ClubName    string    `json:"club_name"`
	ManagerName string    `json:"manager_name"`
	CreatedAt   time.Time `json:"created_at"`
	Folder      string    `json:"folder"`
}

// MatchRecord is one recorded match with the extracted stat values for
// both sides, keyed by the coordinate map's stat keys.
type MatchRecord struct {
	ID       string             `json:"id"`
	HomeTeam string             `json:"home_team"`
	AwayTeam string             `json:"away_team"`
	PlayedAt time.Time          `json:"played_at"`
	Home     map[string]float64 `json:"home"`
	Away     map[string]float64 `json:"away"`
}

// PlayerSnapshot is one player's extracted ratings at a point in time.
type PlayerSnapshot struct {
	Name       string             `json:"name"`
	TakenAt    time.Time          `json:"taken_at"`
	Attributes map[string]float64 `json:"attributes"`
}

// Store manages the careers registry under a root directory.
type Store struct {
	dir string
}

// NewStore opens (or initialises) a store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store root.
func (s *Store) Dir() string { return s.dir }

// List returns every registered career in registration order.
func (s *Store) List() ([]Detail, error) {
	var details []Detail
	if err := readJSON(filepath.Join(s.dir, registryFile), &details); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return details, nil
}

// Create registers a new career and creates its folder. The ID is derived
// from the club name, disambiguated if taken.
func (s *Store) Create(clubName, managerName string) (*Career, error) {
	if strings.TrimSpace(clubName) == "" {
		return nil, fmt.Errorf("club name is required")
	}

	details, err := s.List()
	if err != nil {
		return nil, err
	}

	id := slug(clubName)
	for n := 2; taken(details, id); n++ {
		id = fmt.Sprintf("%s-%d", slug(clubName), n)
	}

	detail := Detail{
		ID:          id,
		ClubName:    clubName,
		ManagerName: managerName,
		CreatedAt:   time.Now().UTC(),
		Folder:      id,
	}
	if err := os.MkdirAll(filepath.Join(s.dir, detail.Folder), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create career folder: %w", err)
	}

	details = append(details, detail)
	if err := writeJSON(filepath.Join(s.dir, registryFile), details); err != nil {
		return nil, err
	}
	return &Career{store: s, detail: detail}, nil
}

// Open returns a handle on an existing career.
func (s *Store) Open(id string) (*Career, error) {
	details, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, d := range details {
		if d.ID == id {
			return &Career{store: s, detail: d}, nil
		}
	}
	return nil, fmt.Errorf("career %q: %w", id, ErrNotFound)
}

// Career is a handle on one career's data files.
type Career struct {
	store  *Store
	detail Detail
}

// Detail returns the registry entry for this career.
func (c *Career) Detail() Detail { return c.detail }

func (c *Career) path(file string) string {
	return filepath.Join(c.store.dir, c.detail.Folder, file)
}

// Matches returns the recorded matches in record order.
func (c *Career) Matches() ([]MatchRecord, error) {
	var records []MatchRecord
	if err := readJSON(c.path(matchesFile), &records); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}

// AddMatch appends a match record. A missing ID or timestamp is filled in.
func (c *Career) AddMatch(rec MatchRecord) error {
	records, err := c.Matches()
	if err != nil {
		return err
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now().UTC()
	}
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("match-%d", len(records)+1)
	}
	return writeJSON(c.path(matchesFile), append(records, rec))
}

// Players returns the recorded player snapshots in record order.
func (c *Career) Players() ([]PlayerSnapshot, error) {
	var snapshots []PlayerSnapshot
	if err := readJSON(c.path(playersFile), &snapshots); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return snapshots, nil
}

// AddPlayerSnapshot appends a player snapshot.
func (c *Career) AddPlayerSnapshot(snap PlayerSnapshot) error {
	if strings.TrimSpace(snap.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	snapshots, err := c.Players()
	if err != nil {
		return err
	}
	if snap.TakenAt.IsZero() {
		snap.TakenAt = time.Now().UTC()
	}
	return writeJSON(c.path(playersFile), append(snapshots, snap))
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slug derives a filesystem-safe career ID from a club name.
func slug(name string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "career"
	}
	return s
}

func taken(details []Detail, id string) bool {
	for _, d := range details {
		if d.ID == id {
			return true
		}
	}
	return false
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("corrupt data file %s: %w", path, err)
	}
	return nil
}

// writeJSON replaces a data file atomically so a crash mid-write cannot
// leave a half-written registry behind.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
