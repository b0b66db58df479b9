package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporting-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/sales-reporting-api/internal/datastore"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/extracting"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/interpreting"
	"go.uber.org/mock/gomock"
)

func record(date string, product string, amount string) domain.SalesRecord {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.SalesRecord{
		Date:    d,
		Product: product,
		Amount:  decimal.RequireFromString(amount),
	}
}

func newTestStore(t *testing.T) *datastore.Store {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(domain.NewSalesDataset([]domain.SalesRecord{
		record("2023-01-10", "Product A", "1000.00"),
		record("2023-01-20", "Product A", "500.00"),
		record("2023-02-01", "Product B", "80.00"),
	}, "mock", time.Now()), nil)

	store, err := datastore.New(context.Background(), source)
	require.NoError(t, err)
	return store
}

func newTestInterpreter() interpreting.Interpreter {
	return interpreting.NewService(
		extracting.NewService(extracting.DefaultCatalog()),
		aggregating.NewService(),
	)
}

func TestProcessQuery(t *testing.T) {
	store := newTestStore(t)
	handler := ProcessQuery(newTestInterpreter(), store)

	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantSentence string
	}{
		{
			name:         "Consulta completa responde com o total do mês",
			body:         `{"text": "What was the total sales for Product A in January?"}`,
			wantStatus:   http.StatusOK,
			wantSentence: "The total sales for Product A in January were $1500.00",
		},
		{
			name:         "Consulta não compreendida é sucesso com esclarecimento",
			body:         `{"text": "asdfasdf"}`,
			wantStatus:   http.StatusOK,
			wantSentence: interpreting.ClarificationSentence,
		},
		{
			name:       "Texto ausente é requisição inválida",
			body:       `{"text": ""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Corpo malformado é requisição inválida",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantSentence != "" {
				var response domain.QueryResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, tt.wantSentence, response.Sentence)
			}
		})
	}
}

func TestGetDatasetInfo(t *testing.T) {
	store := newTestStore(t)
	handler := GetDatasetInfo(store)

	req := httptest.NewRequest(http.MethodGet, "/v1/dataset", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var info DatasetInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "mock", info.Source)
	assert.Equal(t, 3, info.Records)
	assert.Equal(t, []string{"Product A", "Product B"}, info.Products)
}

func TestGetProductTotalsChart(t *testing.T) {
	store := newTestStore(t)
	handler := GetProductTotalsChart(store, aggregating.NewService())

	t.Run("Totais de todos os produtos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/products", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var payload domain.ChartPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, []string{"Product A", "Product B"}, payload.Labels)
		assert.Equal(t, []float64{1500, 80}, payload.Data)
	})

	t.Run("Parâmetro year não numérico é requisição inválida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/products?year=abc", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
