package database

import (
	"context"
	"database/sql"
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
)

//go:embed schema.sql
var embeddedSchema string

// Tables lista as tabelas do dataset na ordem de criação
var Tables = []string{"customers", "restaurants", "menu_items", "orders", "order_items"}

const SummaryView = "customer_summary"

// LoadSchema retorna o DDL do arquivo informado ou, quando vazio, o schema embutido
func LoadSchema(path string) (string, error) {
	if path == "" {
		return embeddedSchema, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(ErrSchemaNotFound, path)
		}
		return "", errors.Wrap(err, "erro ao ler arquivo de schema")
	}

	return string(content), nil
}

// SplitStatements separa o DDL por ";" descartando trechos só com comentários
func SplitStatements(ddl string) []string {
	statements := make([]string, 0)
	for _, chunk := range strings.Split(ddl, ";") {
		if hasSQL(chunk) {
			statements = append(statements, strings.TrimSpace(chunk))
		}
	}
	return statements
}

func hasSQL(chunk string) bool {
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return true
		}
	}
	return false
}

// ApplySchema cria tabelas, índices e a view em uma única transação
func (c *Connection) ApplySchema(ctx context.Context, ddl string) error {
	statements := SplitStatements(ddl)
	if len(statements) == 0 {
		return errors.New("schema vazio")
	}

	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return errors.Wrapf(err, "erro ao executar DDL: %s", firstLine(stmt))
			}
		}
		return nil
	})
}

// Reset apaga o dataset anterior. No sqlite remove o arquivo; no postgres
// derruba a view e as tabelas. Retorna true quando havia algo a remover.
func Reset(ctx context.Context, cfg config.Database) (bool, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		err := os.Remove(cfg.Path)
		if err == nil {
			return true, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "erro ao remover banco existente")

	case config.DriverPostgres:
		conn, err := NewConnection(ctx, cfg)
		if err != nil {
			return false, err
		}
		defer conn.Close()

		if _, err := conn.ExecContext(ctx, "DROP VIEW IF EXISTS "+SummaryView); err != nil {
			return false, errors.Wrap(err, "erro ao remover view")
		}
		for i := len(Tables) - 1; i >= 0; i-- {
			if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+Tables[i]+" CASCADE"); err != nil {
				return false, errors.Wrapf(err, "erro ao remover tabela %s", Tables[i])
			}
		}
		logrus.Debug("Tabelas do dataset removidas do postgres")
		return true, nil

	default:
		return false, errors.Wrap(ErrUnsupportedDriver, cfg.Driver)
	}
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return strings.TrimSpace(stmt[:i])
	}
	return stmt
}
