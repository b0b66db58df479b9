// Package datastore mantém a referência viva para o dataset de vendas.
// O dataset em si é imutável; trocas acontecem apenas por substituição
// atômica da referência inteira, de modo que agregações em andamento sempre
// enxergam um snapshot consistente (todo antigo ou todo novo, nunca misto).
package datastore

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporting-api/infrastructure/dataset"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

// Store é o dono explícito do dataset corrente e da origem que o carrega.
type Store struct {
	source  dataset.Source
	current atomic.Pointer[domain.SalesDataset]
}

// New carrega o dataset inicial. Falha aqui deve ser fatal para o chamador:
// o serviço não pode atender consultas sem dataset.
func New(ctx context.Context, source dataset.Source) (*Store, error) {
	store := &Store{source: source}

	if err := store.Reload(ctx); err != nil {
		return nil, errors.Wrapf(err, "erro na carga inicial do dataset (%s)", source.Name())
	}

	return store, nil
}

// Snapshot retorna o dataset corrente. Chamadores guardam a referência e a
// usam do início ao fim da consulta.
func (s *Store) Snapshot() *domain.SalesDataset {
	return s.current.Load()
}

// Reload recarrega o dataset da origem e troca a referência atomicamente.
// Em caso de falha o snapshot anterior permanece válido.
func (s *Store) Reload(ctx context.Context) error {
	ds, err := s.source.Load(ctx)
	if err != nil {
		return err
	}

	s.current.Store(ds)

	logrus.WithFields(logrus.Fields{
		"source":  ds.Source(),
		"records": ds.Len(),
	}).Info("Dataset de vendas atualizado")

	return nil
}

// SourceName identifica a origem configurada.
func (s *Store) SourceName() string {
	return s.source.Name()
}
