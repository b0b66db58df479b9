package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-reporting-api/internal/config"
)

// Conn é o contrato mínimo que os repositórios esperam da conexão.
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

// Connection encapsula o *sql.DB do driver pq.
type Connection struct {
	*sql.DB
}

// NewConnection abre e valida a conexão com o Postgres.
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
