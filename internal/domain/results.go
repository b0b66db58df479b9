package domain

import "github.com/shopspring/decimal"

// TotalRowLabel é o rótulo da linha sintética de total das tabelas mensais.
const TotalRowLabel = "Total"

// ScalarTotal é o total de vendas de um produto, opcionalmente restrito a
// um período.
type ScalarTotal struct {
	Product     string          `json:"product"`
	PeriodLabel string          `json:"period_label,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// SeriesPoint é um ponto da série mensal: rótulo "January 2006" e soma do mês.
type SeriesPoint struct {
	PeriodLabel string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
}

// TimeSeries é a série mensal de vendas de um produto, sempre em ordem
// cronológica crescente. Meses sem registros não aparecem.
type TimeSeries struct {
	Product string        `json:"product"`
	Points  []SeriesPoint `json:"points"`
}

// TableRow é uma linha da tabela mensal: nome do mês (sem ano) e soma.
type TableRow struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

// TableWithTotal é a tabela mensal com uma linha final "Total" cujo valor é
// sempre igual à soma das linhas anteriores, inclusive quando não há linhas
// (total zero).
type TableWithTotal struct {
	Rows []TableRow `json:"rows"`
}

// ProductTotal é o total de vendas de um produto dentro do recorte pedido.
type ProductTotal struct {
	Product string          `json:"product"`
	Amount  decimal.Decimal `json:"amount"`
}
