package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporting-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testDataset(product string) *domain.SalesDataset {
	return domain.NewSalesDataset([]domain.SalesRecord{
		{
			Date:    time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
			Product: product,
			Amount:  decimal.RequireFromString("100.00"),
		},
	}, "mock", time.Now())
}

func TestNew_CargaInicial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(testDataset("Product A"), nil)

	store, err := New(context.Background(), source)
	require.NoError(t, err)

	snapshot := store.Snapshot()
	require.NotNil(t, snapshot)
	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, "Product A", snapshot.Record(0).Product)
}

func TestNew_FalhaNaCargaInicialSobeParaOChamador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("arquivo ausente"))
	source.EXPECT().Name().Return("csv:missing.csv")

	store, err := New(context.Background(), source)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStore_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)

	t.Run("Recarga troca o snapshot inteiro", func(t *testing.T) {
		gomock.InOrder(
			source.EXPECT().Load(gomock.Any()).Return(testDataset("Product A"), nil),
			source.EXPECT().Load(gomock.Any()).Return(testDataset("Product B"), nil),
		)

		store, err := New(context.Background(), source)
		require.NoError(t, err)

		old := store.Snapshot()
		require.NoError(t, store.Reload(context.Background()))

		// O snapshot antigo continua válido para consultas em andamento.
		assert.Equal(t, "Product A", old.Record(0).Product)
		assert.Equal(t, "Product B", store.Snapshot().Record(0).Product)
	})

	t.Run("Falha na recarga mantém o snapshot anterior", func(t *testing.T) {
		gomock.InOrder(
			source.EXPECT().Load(gomock.Any()).Return(testDataset("Product A"), nil),
			source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("origem indisponível")),
		)

		store, err := New(context.Background(), source)
		require.NoError(t, err)

		assert.Error(t, store.Reload(context.Background()))

		snapshot := store.Snapshot()
		require.NotNil(t, snapshot)
		assert.Equal(t, "Product A", snapshot.Record(0).Product)
	})
}
