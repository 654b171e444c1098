package discovery

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/rebelice/lazystay/internal/models"
)

// ErrInsecurePgPass is returned when the password file is readable by group or others
var ErrInsecurePgPass = errors.New("password file must not be accessible by group or others")

// PgPassEntry is one hostname:port:database:username:password line.
// Any of the first four fields may be the wildcard "*".
type PgPassEntry struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// Matches reports whether the entry applies to cfg
func (e PgPassEntry) Matches(cfg models.DatabaseConfig) bool {
	pairs := [][2]string{
		{e.Host, cfg.Host},
		{e.Port, strconv.Itoa(cfg.Port)},
		{e.Database, cfg.Database},
		{e.User, cfg.User},
	}
	for _, p := range pairs {
		if p[0] != "*" && p[0] != p[1] {
			return false
		}
	}
	return true
}

// PgPassPath returns $PGPASSFILE, or ~/.pgpass
func PgPassPath() (string, error) {
	if p := os.Getenv("PGPASSFILE"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pgpass"), nil
}

// ParsePgPass reads the password file at path. A missing file yields no
// entries; malformed lines are skipped.
func ParsePgPass(path string) ([]PgPassEntry, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if runtime.GOOS != "windows" {
		info, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if perm := info.Mode().Perm(); perm&0o077 != 0 {
			return nil, fmt.Errorf("%s has mode %v: %w", path, perm, ErrInsecurePgPass)
		}
	}

	var entries []PgPassEntry
	lines := bufio.NewScanner(file)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if entry, err := parsePgPassLine(line); err == nil {
			entries = append(entries, entry)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

// parsePgPassLine splits a line on unescaped colons; "\:" and "\\" are literals
func parsePgPassLine(line string) (PgPassEntry, error) {
	var fields []string
	var field strings.Builder
	escape := false
	for _, r := range line {
		if escape {
			field.WriteRune(r)
			escape = false
			continue
		}
		switch r {
		case '\\':
			escape = true
		case ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())

	if len(fields) != 5 {
		return PgPassEntry{}, fmt.Errorf("want 5 fields, got %d", len(fields))
	}
	if port := fields[1]; port != "*" {
		if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
			return PgPassEntry{}, fmt.Errorf("invalid port %q", port)
		}
	}
	return PgPassEntry{
		Host:     fields[0],
		Port:     fields[1],
		Database: fields[2],
		User:     fields[3],
		Password: fields[4],
	}, nil
}

// FindPassword returns the password of the first entry matching cfg
func FindPassword(entries []PgPassEntry, cfg models.DatabaseConfig) (string, bool) {
	for _, e := range entries {
		if e.Matches(cfg) {
			return e.Password, true
		}
	}
	return "", false
}
