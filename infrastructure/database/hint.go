package database

import "github.com/pkg/errors"

// Hint devolve a instrução de correção para os erros de preparação do banco,
// ou texto vazio quando o erro não tem correção conhecida
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrDatabaseNotFound):
		return "Gere o banco primeiro com: go run ./cmd/generator"
	case errors.Is(err, ErrSchemaNotFound):
		return "Confira DATABASE_SCHEMA_FILE ou deixe vazio para usar o schema embutido"
	case errors.Is(err, ErrUnsupportedDriver):
		return "Use DATABASE_DRIVER=sqlite ou DATABASE_DRIVER=postgres"
	default:
		return ""
	}
}
