package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
)

func sqliteConfig(path string) config.Database {
	return config.Database{
		Driver: config.DriverSQLite,
		Path:   path,
		DSN:    "file:" + filepath.ToSlash(path) + "?_pragma=foreign_keys(1)",
	}
}

func TestSplitStatements(t *testing.T) {
	statements := SplitStatements(embeddedSchema)

	// 5 tabelas, 7 índices e 1 view
	assert.Len(t, statements, 13)
	assert.Contains(t, statements[len(statements)-1], "CREATE VIEW customer_summary")

	assert.Empty(t, SplitStatements("-- só comentário;\n\n;"))
}

func TestLoadSchema(t *testing.T) {
	ddl, err := LoadSchema("")
	require.NoError(t, err)
	assert.Equal(t, embeddedSchema, ddl)

	_, err = LoadSchema(filepath.Join(t.TempDir(), "missing.sql"))
	assert.True(t, errors.Is(err, ErrSchemaNotFound))

	custom := filepath.Join(t.TempDir(), "custom.sql")
	require.NoError(t, os.WriteFile(custom, []byte("CREATE TABLE x (id INTEGER);"), 0o644))
	ddl, err = LoadSchema(custom)
	require.NoError(t, err)
	assert.Contains(t, ddl, "CREATE TABLE x")
}

func TestNewConnection_MustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.db")

	_, err := NewConnection(context.Background(), sqliteConfig(path), MustExist())
	assert.True(t, errors.Is(err, ErrDatabaseNotFound))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "a verificação não deve criar o arquivo")
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(context.Background(), config.Database{Driver: "oracle"})
	assert.True(t, errors.Is(err, ErrUnsupportedDriver))
}

func TestApplySchemaAndReset(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "food.db")
	cfg := sqliteConfig(path)

	conn, err := NewConnection(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, conn.ApplySchema(ctx, embeddedSchema))

	for _, table := range append(Tables, SummaryView) {
		var count int
		err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
		require.NoError(t, err, table)
		assert.Zero(t, count, table)
	}
	require.NoError(t, conn.Close())

	removed, err := Reset(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = Reset(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDialects(t *testing.T) {
	tests := []struct {
		name        string
		driver      string
		placeholder squirrel.PlaceholderFormat
		daysSince   string
		dayOfWeek   string
	}{
		{
			name:        "sqlite",
			driver:      config.DriverSQLite,
			placeholder: squirrel.Question,
			daysSince:   "(julianday(?) - julianday(o.order_date))",
			dayOfWeek:   "CAST(strftime('%w', o.order_date) AS INTEGER)",
		},
		{
			name:        "postgres",
			driver:      config.DriverPostgres,
			placeholder: squirrel.Dollar,
			daysSince:   "(EXTRACT(EPOCH FROM (CAST(? AS TIMESTAMP) - o.order_date)) / 86400.0)",
			dayOfWeek:   "CAST(EXTRACT(DOW FROM o.order_date) AS INTEGER)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DialectFor(tt.driver)
			require.NoError(t, err)
			assert.Equal(t, tt.placeholder, d.Placeholder())
			assert.Equal(t, tt.daysSince, d.DaysSince("o.order_date"))
			assert.Equal(t, tt.dayOfWeek, d.DayOfWeek("o.order_date"))
		})
	}
}
