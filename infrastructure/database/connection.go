// Package database abre a conexão com o armazenamento relacional (sqlite ou
// postgres) e aplica o schema do dataset de delivery
package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	_ "modernc.org/sqlite"
)

var (
	ErrDatabaseNotFound   = errors.New("arquivo de banco de dados não encontrado")
	ErrSchemaNotFound     = errors.New("arquivo de schema não encontrado")
	ErrUnsupportedDriver  = errors.New("driver de banco não suportado")
	errNilTransactionFunc = errors.New("função de transação nula")
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// Connection é a sessão única com o banco. Para sqlite há no máximo uma
// conexão aberta; Close libera o arquivo.
type Connection struct {
	*sql.DB
	Dialect Dialect
}

type connectOptions struct {
	mustExist bool
}

type Option func(*connectOptions)

// MustExist faz a abertura falhar com ErrDatabaseNotFound quando o arquivo
// sqlite ainda não foi gerado
func MustExist() Option {
	return func(o *connectOptions) {
		o.mustExist = true
	}
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
	opts ...Option,
) (*Connection, error) {
	options := connectOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		if err := prepareSQLiteFile(cfg.Path, options.mustExist); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(dialect.DriverName(), cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão")
	}

	if cfg.Driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "erro ao testar conexão")
	}

	return &Connection{DB: db, Dialect: dialect}, nil
}

// NewConnectionFromDB envolve um *sql.DB já aberto (usado em testes)
func NewConnectionFromDB(db *sql.DB, dialect Dialect) *Connection {
	return &Connection{DB: db, Dialect: dialect}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	if fn == nil {
		return errNilTransactionFunc
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback falhou: %v", rbErr)
		}
		return err
	}

	return tx.Commit()
}

func prepareSQLiteFile(path string, mustExist bool) error {
	if mustExist {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return errors.Wrap(ErrDatabaseNotFound, path)
			}
			return errors.Wrap(err, "erro ao verificar arquivo do banco")
		}
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar diretório do banco")
	}

	return nil
}
