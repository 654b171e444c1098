package presets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rebelice/lazystay/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateName is returned when a preset name is already taken in its list
	ErrDuplicateName = errors.New("a preset with this name already exists")
	// ErrNotFound is returned for an unknown preset ID
	ErrNotFound = errors.New("preset not found")
)

// Manager keeps named filter presets in a YAML file
type Manager struct {
	path    string
	presets []models.Preset
	now     func() time.Time
}

// NewManager creates a preset manager backed by presets.yaml in configDir
func NewManager(configDir string) (*Manager, error) {
	path := filepath.Join(configDir, "presets.yaml")

	m := &Manager{
		path:    path,
		presets: []models.Preset{},
		now:     time.Now,
	}

	// Load existing presets if file exists
	if _, err := os.Stat(path); err == nil {
		if err := m.Load(); err != nil {
			return nil, fmt.Errorf("failed to load presets: %w", err)
		}
	}

	return m, nil
}

// Load loads presets from the YAML file
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read presets file: %w", err)
	}

	if err := yaml.Unmarshal(data, &m.presets); err != nil {
		return fmt.Errorf("failed to parse presets: %w", err)
	}

	return nil
}

// Save writes presets to the YAML file
func (m *Manager) Save() error {
	return m.write(m.presets)
}

// commit writes next and only then makes it the in-memory list
func (m *Manager) commit(next []models.Preset) error {
	if err := m.write(next); err != nil {
		return err
	}
	m.presets = next
	return nil
}

func (m *Manager) write(presets []models.Preset) error {
	data, err := yaml.Marshal(presets)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write presets file: %w", err)
	}

	return nil
}

// Add saves filter under name for domain
func Add[F any](m *Manager, domain models.Domain, name string, filter F) (*models.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("preset name cannot be empty")
	}
	if m.nameTaken(domain, name, "") {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	encoded, err := Encode(filter)
	if err != nil {
		return nil, err
	}

	now := m.now()
	preset := models.Preset{
		ID:        uuid.New().String(),
		Name:      name,
		Domain:    domain,
		Filter:    encoded,
		CreatedAt: now,
		UpdatedAt: now,
	}
	next := append(slices.Clone(m.presets), preset)
	if err := m.commit(next); err != nil {
		return nil, fmt.Errorf("failed to save preset: %w", err)
	}

	return &preset, nil
}

// Rename changes a preset's name, keeping names unique within its list
func (m *Manager) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}

	i := m.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if m.nameTaken(m.presets[i].Domain, name, id) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	next := slices.Clone(m.presets)
	next[i].Name = name
	next[i].UpdatedAt = m.now()
	if err := m.commit(next); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return nil
}

// Delete deletes a preset by ID
func (m *Manager) Delete(id string) error {
	i := m.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := slices.Delete(slices.Clone(m.presets), i, i+1)
	if err := m.commit(next); err != nil {
		return fmt.Errorf("failed to save presets after deletion: %w", err)
	}
	return nil
}

// Get returns a preset by ID
func (m *Manager) Get(id string) (*models.Preset, error) {
	i := m.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p := m.presets[i]
	return &p, nil
}

// ForDomain returns the presets of one list, most used first
func (m *Manager) ForDomain(domain models.Domain) []models.Preset {
	var out []models.Preset
	for _, p := range m.presets {
		if p.Domain == domain {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UsageCount != out[j].UsageCount {
			return out[i].UsageCount > out[j].UsageCount
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// RecordUsage updates usage statistics for a preset
func (m *Manager) RecordUsage(id string) error {
	i := m.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := slices.Clone(m.presets)
	next[i].UsageCount++
	next[i].LastUsed = m.now()
	if err := m.commit(next); err != nil {
		return fmt.Errorf("failed to save usage statistics: %w", err)
	}
	return nil
}

func (m *Manager) indexOf(id string) int {
	for i, p := range m.presets {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// nameTaken compares case-insensitively, ignoring the preset with exceptID
func (m *Manager) nameTaken(domain models.Domain, name, exceptID string) bool {
	for _, p := range m.presets {
		if p.Domain == domain && p.ID != exceptID && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// Encode serializes a filter value for storage in a preset
func Encode[F any](filter F) (string, error) {
	data, err := yaml.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("failed to encode preset filter: %w", err)
	}
	return string(data), nil
}

// Decode reads a preset's filter into a copy of pristine
func Decode[F any](p models.Preset, pristine F) (F, error) {
	v := pristine
	if err := yaml.Unmarshal([]byte(p.Filter), &v); err != nil {
		return pristine, fmt.Errorf("failed to decode preset %q: %w", p.Name, err)
	}
	return v, nil
}
