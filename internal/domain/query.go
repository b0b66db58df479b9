package domain

// ChartPayload é o formato pronto para o gráfico do frontend: rótulos e
// valores alinhados por índice.
type ChartPayload struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// QueryResponse é a resposta estruturada do interpretador de consultas.
// Chart e Table só são preenchidos quando um produto foi reconhecido.
type QueryResponse struct {
	Sentence   string        `json:"result"`
	Product    *string       `json:"product,omitempty"`
	TimePeriod *string       `json:"time_period,omitempty"`
	Chart      *ChartPayload `json:"chart_data,omitempty"`
	Table      []TableRow    `json:"table_data,omitempty"`
}
