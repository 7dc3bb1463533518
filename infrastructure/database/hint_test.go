package database

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "banco ausente", err: errors.Wrap(ErrDatabaseNotFound, "database/food_delivery.db"), want: "cmd/generator"},
		{name: "schema ausente", err: errors.Wrap(ErrSchemaNotFound, "schema.sql"), want: "DATABASE_SCHEMA_FILE"},
		{name: "driver não suportado", err: errors.Wrap(ErrUnsupportedDriver, "mysql"), want: "DATABASE_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Hint(tt.err), tt.want)
		})
	}

	assert.Empty(t, Hint(errors.New("outro erro")))
	assert.Empty(t, Hint(nil))
}
