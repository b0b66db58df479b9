package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

const salesTable = "sales s"

// SalesRepository lê os registros de venda normalizados do banco.
type SalesRepository interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
}

type salesRepository struct {
	conn postgres.Queryer
}

// NewSalesRepository cria o repositório de vendas.
func NewSalesRepository(conn postgres.Queryer) SalesRepository {
	return &salesRepository{conn: conn}
}

// ListSalesRecords retorna todos os registros em ordem estável de data e id,
// para que o dataset em memória seja determinístico entre cargas.
func (r *salesRepository) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select("s.sale_date", "s.product", "s.amount").
		From(salesTable).
		OrderBy("s.sale_date ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de vendas")
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var (
			date    time.Time
			product string
			amount  string
		)
		if err := rows.Scan(&date, &product, &amount); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear registro de venda")
		}

		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, errors.Wrapf(err, "valor de venda inválido: %q", amount)
		}

		records = append(records, domain.SalesRecord{
			Date:    date,
			Product: product,
			Amount:  value,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de vendas")
	}

	return records, nil
}
