// Package charting adapta resultados de agregação para os formatos
// consumidos pelo frontend (gráficos e tabela). Os adaptadores não filtram
// nem agregam nada: recebem a saída pronta do motor de agregação.
package charting

import "github.com/vfg2006/sales-reporting-api/internal/domain"

// LineChart converte a série mensal em payload de gráfico de linha.
func LineChart(series domain.TimeSeries) *domain.ChartPayload {
	payload := &domain.ChartPayload{
		Labels: make([]string, 0, len(series.Points)),
		Data:   make([]float64, 0, len(series.Points)),
	}

	for _, p := range series.Points {
		payload.Labels = append(payload.Labels, p.PeriodLabel)
		payload.Data = append(payload.Data, p.Amount.InexactFloat64())
	}

	return payload
}

// PieChart converte os totais por produto em payload de gráfico de pizza.
func PieChart(totals []domain.ProductTotal) *domain.ChartPayload {
	payload := &domain.ChartPayload{
		Labels: make([]string, 0, len(totals)),
		Data:   make([]float64, 0, len(totals)),
	}

	for _, t := range totals {
		payload.Labels = append(payload.Labels, t.Product)
		payload.Data = append(payload.Data, t.Amount.InexactFloat64())
	}

	return payload
}

// TableRows expõe as linhas da tabela mensal (inclusive a linha "Total")
// no formato serializado da resposta.
func TableRows(table domain.TableWithTotal) []domain.TableRow {
	return table.Rows
}
