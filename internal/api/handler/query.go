package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-reporting-api/internal/datastore"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/interpreting"
	"github.com/vfg2006/sales-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/sales-reporting-api/pkg/log"
	"github.com/vfg2006/sales-reporting-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// QueryRequest é o corpo aceito pelo endpoint de consulta.
type QueryRequest struct {
	Text string `json:"text"`
}

// ProcessQuery responde uma consulta em linguagem natural contra o snapshot
// corrente do dataset. Consulta não compreendida é resposta de sucesso com
// a frase de esclarecimento; só falhas de infraestrutura viram 500.
func ProcessQuery(interpreter interpreting.Interpreter, store *datastore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("query: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		if request.Text == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "text is required", nil)
			return
		}

		snapshot := store.Snapshot()
		if snapshot == nil {
			logger.Error("query: dataset indisponível")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "sales dataset unavailable", nil)
			return
		}

		queryID, _ := utils.GenerateID()
		logger = logger.WithFields(log.Fields{
			"query_id": queryID,
			"text":     request.Text,
		})
		logger.Info("query: processando consulta")

		response, err := interpreter.Interpret(request.Text, snapshot)
		if err != nil {
			logger.WithError(err).Error("query: erro ao interpretar a consulta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"product":     stringOrEmpty(response.Product),
			"time_period": stringOrEmpty(response.TimePeriod),
		}).Info("query: consulta respondida")
		logger.Debugf("query: resposta completa: %s", utils.PrettyJson(response))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("query: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
