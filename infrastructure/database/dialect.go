package database

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
)

// TimestampLayout é o formato em que datas são gravadas e comparadas,
// sempre em UTC
const TimestampLayout = "2006-01-02 15:04:05"

// Dialect isola as diferenças de SQL entre sqlite e postgres. As expressões
// usam "?" e o squirrel converte para o formato de placeholder do driver.
type Dialect interface {
	Name() string
	DriverName() string
	Placeholder() squirrel.PlaceholderFormat
	// DaysSince recebe um parâmetro: o instante de referência
	DaysSince(column string) string
	DateOf(column string) string
	HourOf(column string) string
	// DayOfWeek retorna 0 para domingo
	DayOfWeek(column string) string
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverSQLite:
		return SQLite{}, nil
	case config.DriverPostgres:
		return Postgres{}, nil
	default:
		return nil, errors.Wrap(ErrUnsupportedDriver, driver)
	}
}

// Builder retorna o StatementBuilder com o placeholder do dialeto
func Builder(d Dialect) squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder())
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type SQLite struct{}

func (SQLite) Name() string                            { return config.DriverSQLite }
func (SQLite) DriverName() string                      { return "sqlite" }
func (SQLite) Placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

func (SQLite) DaysSince(column string) string {
	return fmt.Sprintf("(julianday(?) - julianday(%s))", column)
}

func (SQLite) DateOf(column string) string {
	return fmt.Sprintf("strftime('%%Y-%%m-%%d', %s)", column)
}

func (SQLite) HourOf(column string) string {
	return fmt.Sprintf("CAST(strftime('%%H', %s) AS INTEGER)", column)
}

func (SQLite) DayOfWeek(column string) string {
	return fmt.Sprintf("CAST(strftime('%%w', %s) AS INTEGER)", column)
}

type Postgres struct{}

func (Postgres) Name() string                            { return config.DriverPostgres }
func (Postgres) DriverName() string                      { return "postgres" }
func (Postgres) Placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

func (Postgres) DaysSince(column string) string {
	return fmt.Sprintf("(EXTRACT(EPOCH FROM (CAST(? AS TIMESTAMP) - %s)) / 86400.0)", column)
}

func (Postgres) DateOf(column string) string {
	return fmt.Sprintf("TO_CHAR(%s, 'YYYY-MM-DD')", column)
}

func (Postgres) HourOf(column string) string {
	return fmt.Sprintf("CAST(EXTRACT(HOUR FROM %s) AS INTEGER)", column)
}

func (Postgres) DayOfWeek(column string) string {
	return fmt.Sprintf("CAST(EXTRACT(DOW FROM %s) AS INTEGER)", column)
}
