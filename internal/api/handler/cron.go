package handler

import (
	"net/http"

	"github.com/vfg2006/sales-reporting-api/internal/scheduler"
	"github.com/vfg2006/sales-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/sales-reporting-api/pkg/log"
)

// GetCronStatus retorna o estado do agendador de recarga do dataset.
func GetCronStatus(reloadService *scheduler.DatasetReloadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := reloadService.Status()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("cron-status: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
