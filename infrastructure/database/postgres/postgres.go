package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/customer-inactivity-api/internal/config"
)

const (
	maxOpenConns    = 5
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
)

// schema do histórico de análises; apenas metadados, nunca os clientes da planilha
const analysisHistorySchema = `
CREATE TABLE IF NOT EXISTS analysis_history (
	id                 VARCHAR(16) PRIMARY KEY,
	file_name          TEXT        NOT NULL,
	filter_type        VARCHAR(16) NOT NULL,
	filter_value       TEXT        NOT NULL,
	filter_description TEXT        NOT NULL,
	total_rows         INTEGER     NOT NULL DEFAULT 0,
	matched            INTEGER     NOT NULL DEFAULT 0,
	duration_ms        BIGINT      NOT NULL DEFAULT 0,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_analysis_history_created_at ON analysis_history (created_at DESC);
`

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão com o banco")
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "erro ao conectar no banco")
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// EnsureSchema cria as tabelas usadas pela aplicação caso ainda não existam
func (c *Connection) EnsureSchema(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, analysisHistorySchema); err != nil {
			return errors.Wrap(err, "erro ao criar tabela analysis_history")
		}
		return nil
	})
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
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
