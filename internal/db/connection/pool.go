package connection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rebelice/lazystay/internal/models"
)

// Pool wraps pgxpool with our configuration
type Pool struct {
	pool   *pgxpool.Pool
	config models.DatabaseConfig
}

// NewPool creates a new connection pool and verifies it with a ping
func NewPool(ctx context.Context, config models.DatabaseConfig) (*Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	// The app only reads a handful of small lists
	poolConfig.MaxConns = 3
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Pool{
		pool:   pool,
		config: config,
	}, nil
}

// Close closes the connection pool
func (p *Pool) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Ping tests the connection
func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Config returns the configuration the pool was opened with
func (p *Pool) Config() models.DatabaseConfig {
	return p.config
}

// Query runs sql and hands every row to scan
func (p *Pool) Query(ctx context.Context, sql string, scan func(pgx.Rows) error, args ...any) error {
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// BuildConnectionString creates a PostgreSQL keyword/value connection string
func BuildConnectionString(config models.DatabaseConfig) string {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s database=%s sslmode=%s",
		quoteValue(config.Host),
		config.Port,
		quoteValue(config.User),
		quoteValue(config.Database),
		quoteValue(sslMode),
	)

	if config.Password != "" {
		connStr += " password=" + quoteValue(config.Password)
	}

	return connStr
}

var valueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteValue single-quotes v when it is empty or holds a space, quote or backslash
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n\r'\\") {
		return v
	}
	return "'" + valueEscaper.Replace(v) + "'"
}
