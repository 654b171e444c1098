package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rebelice/lazystay/internal/app"
	"github.com/rebelice/lazystay/internal/config"
	"github.com/rebelice/lazystay/internal/db/discovery"
	"github.com/rebelice/lazystay/internal/filter"
	"github.com/rebelice/lazystay/internal/models"
	"github.com/rebelice/lazystay/internal/presets"
	"github.com/rebelice/lazystay/internal/secrets"
	"github.com/rebelice/lazystay/internal/source"
	"github.com/rebelice/lazystay/internal/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run holds the whole program so deferred cleanup happens before main exits
func run(args []string) error {
	flags := flag.NewFlagSet("lazystay", flag.ContinueOnError)
	configFile := flags.String("config", "", "path to a config file")
	savePassword := flags.Bool("save-password", false, "store $PGPASSWORD in the OS keyring for the configured database and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Printf("Warning: Could not load config: %v (using defaults)\n", err)
		cfg = config.GetDefaults()
	}

	if *savePassword {
		if err := storePassword(cfg); err != nil {
			return fmt.Errorf("failed to save password: %w", err)
		}
		fmt.Println("Password saved to the OS keyring")
		return nil
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "lazystay")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if cfg.Log.Debug {
		filter.SetDebugLogger(log.Printf)
	}

	configDir, err := config.GetConfigPath()
	if err != nil {
		configDir = "."
	}

	st, err := openStore(cfg, configDir)
	if err != nil {
		return fmt.Errorf("failed to open filter store: %w", err)
	}
	defer st.Close()

	src, err := openSource(cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s source: %w", cfg.Data.Source, err)
	}
	defer src.Close()

	pm, err := presets.NewManager(configDir)
	if err != nil {
		log.Printf("Warning: presets unavailable: %v", err)
		pm = nil
	}

	zone.NewGlobal()
	defer zone.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(app.New(cfg, src, st, pm), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func openStore(cfg *config.Config, configDir string) (*store.Store, error) {
	if cfg.Store.Backend == "memory" {
		return store.New(store.NewMemoryBackend()), nil
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	backend, err := store.NewSQLiteBackend(cfg.StorePath(configDir))
	if err != nil {
		return nil, err
	}
	return store.New(backend), nil
}

func openSource(cfg *config.Config) (source.Source, error) {
	if cfg.Data.Source != "postgres" {
		return source.NewFixture(cfg.Data.FixturePath)
	}

	db := resolvePassword(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return source.NewPostgres(ctx, db, cfg.Data.PropertyID)
}

// resolvePassword fills in the database password from the keyring, then
// ~/.pgpass, then PGPASSWORD
func resolvePassword(cfg *config.Config) models.DatabaseConfig {
	db := discovery.ApplyEnvironment(cfg.Database)

	password, err := secrets.NewPasswordStore().Get(db.Host, db.Port, db.Database, db.User)
	if err == nil {
		db.Password = password
		return db
	}
	if !errors.Is(err, secrets.ErrPasswordNotFound) {
		log.Printf("Warning: %v", err)
	}

	if path, err := discovery.PgPassPath(); err == nil {
		entries, err := discovery.ParsePgPass(path)
		if err != nil {
			log.Printf("Warning: failed to read %s: %v", path, err)
		} else if pw, ok := discovery.FindPassword(entries, db); ok {
			db.Password = pw
			return db
		}
	}

	// Whatever PGPASSWORD provided, possibly nothing
	return db
}

func storePassword(cfg *config.Config) error {
	db := discovery.ApplyEnvironment(cfg.Database)
	if db.Password == "" {
		return errors.New("PGPASSWORD is empty")
	}
	return secrets.NewPasswordStore().Save(db.Host, db.Port, db.Database, db.User, db.Password)
}
