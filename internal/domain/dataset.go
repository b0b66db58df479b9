package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord representa uma venda já normalizada pelo carregador
// (coluna de data, produto e valor resolvidas na origem).
type SalesRecord struct {
	Date    time.Time       `json:"date"`
	Product string          `json:"product"`
	Amount  decimal.Decimal `json:"amount"`
}

// SalesDataset é a coleção imutável de vendas em memória. Depois de
// construído nenhum componente altera os registros; cada consulta lê o
// mesmo snapshot do início ao fim.
type SalesDataset struct {
	records  []SalesRecord
	source   string
	loadedAt time.Time
}

// NewSalesDataset cria o dataset preservando a ordem de carga dos registros.
func NewSalesDataset(records []SalesRecord, source string, loadedAt time.Time) *SalesDataset {
	return &SalesDataset{
		records:  records,
		source:   source,
		loadedAt: loadedAt,
	}
}

// Len retorna a quantidade de registros carregados.
func (d *SalesDataset) Len() int {
	return len(d.records)
}

// Record retorna o registro na posição i, na ordem original de carga.
func (d *SalesDataset) Record(i int) SalesRecord {
	return d.records[i]
}

// Source identifica a origem dos dados (ex.: "csv:mock_sales_data.csv").
func (d *SalesDataset) Source() string {
	return d.source
}

// LoadedAt retorna o instante em que o dataset foi carregado.
func (d *SalesDataset) LoadedAt() time.Time {
	return d.loadedAt
}

// Products retorna os produtos distintos na ordem da primeira aparição.
func (d *SalesDataset) Products() []string {
	seen := make(map[string]bool, 8)
	products := make([]string, 0, 8)

	for _, r := range d.records {
		if !seen[r.Product] {
			seen[r.Product] = true
			products = append(products, r.Product)
		}
	}

	return products
}
