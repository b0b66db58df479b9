package dataset

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporting-api/infrastructure/repository"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

// PostgresSource carrega o dataset da tabela de vendas do banco, atrás da
// mesma interface Source das origens de arquivo.
type PostgresSource struct {
	repo repository.SalesRepository
}

// NewPostgresSource cria a origem Postgres sobre o repositório de vendas.
func NewPostgresSource(repo repository.SalesRepository) *PostgresSource {
	return &PostgresSource{repo: repo}
}

func (s *PostgresSource) Name() string {
	return "postgres:sales"
}

func (s *PostgresSource) Load(ctx context.Context) (*domain.SalesDataset, error) {
	records, err := s.repo.ListSalesRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar vendas do banco")
	}

	logrus.WithField("records", len(records)).Info("Dataset Postgres carregado")

	return domain.NewSalesDataset(records, s.Name(), time.Now()), nil
}
