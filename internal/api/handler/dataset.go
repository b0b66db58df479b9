package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-reporting-api/internal/datastore"
	"github.com/vfg2006/sales-reporting-api/internal/scheduler"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/charting"
	"github.com/vfg2006/sales-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/sales-reporting-api/pkg/log"
)

// DatasetInfo descreve o snapshot corrente para fins de diagnóstico.
type DatasetInfo struct {
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	Products []string  `json:"products"`
	LoadedAt time.Time `json:"loaded_at"`
}

// GetDatasetInfo expõe origem, contagem e produtos do dataset carregado.
func GetDatasetInfo(store *datastore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := store.Snapshot()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "sales dataset unavailable", nil)
			return
		}

		info := DatasetInfo{
			Source:   snapshot.Source(),
			Records:  snapshot.Len(),
			Products: snapshot.Products(),
			LoadedAt: snapshot.LoadedAt(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(info); err != nil {
			logger.WithError(err).Error("dataset-info: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetProductTotalsChart devolve o payload de gráfico de pizza com o total
// por produto, opcionalmente recortado pelo parâmetro year.
func GetProductTotalsChart(store *datastore.Store, aggregator *aggregating.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := store.Snapshot()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "sales dataset unavailable", nil)
			return
		}

		var year *int
		if rawYear := r.URL.Query().Get("year"); rawYear != "" {
			parsed, err := strconv.Atoi(rawYear)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "year must be numeric", nil)
				return
			}
			year = &parsed
		}

		payload := charting.PieChart(aggregator.TotalsByProduct(snapshot, year))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.WithError(err).Error("product-chart: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// ReloadDataset dispara uma recarga imediata do dataset. A troca é atômica:
// consultas em andamento terminam sobre o snapshot antigo.
func ReloadDataset(reloadService *scheduler.DatasetReloadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset-reload: recarga manual solicitada")

		if err := reloadService.RunNow(r.Context()); err != nil {
			logger.WithError(err).Error("dataset-reload: falha na recarga")
			apiErrors.WriteError(w, apiErrors.ErrReloadFailure, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "reloaded"})
	})
}
