// Package dataset contém as origens de dados de venda. Cada origem entrega
// registros já normalizados para {data, produto, valor}; a inferência de
// colunas e a coerção de tipos acontecem aqui, nunca no núcleo de consulta.
package dataset

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/vfg2006/sales-reporting-api/pkg/utils"
)

//go:generate mockgen -source=source.go -destination=mocks/source_mock.go -package=mocks

// Source abstrai uma origem de dataset de vendas.
type Source interface {
	// Name identifica a origem para logs e para o endpoint de info.
	Name() string
	// Load materializa o dataset inteiro. Falha de carga deve subir: na
	// inicialização ela é fatal, no reload mantém o snapshot anterior.
	Load(ctx context.Context) (*domain.SalesDataset, error)
}

// columnMapping guarda os índices das colunas mapeadas do arquivo bruto.
type columnMapping struct {
	date    int
	product int
	sales   int
}

// inferColumns mapeia as colunas do cabeçalho pelos nomes: substring "date"
// para a data, "product" para o produto e "sales" ou "revenue" para o valor.
func inferColumns(header []string) (columnMapping, error) {
	mapping := columnMapping{date: -1, product: -1, sales: -1}

	for i, name := range header {
		lowered := strings.ToLower(strings.TrimSpace(name))
		switch {
		case strings.Contains(lowered, "date"):
			mapping.date = i
		case strings.Contains(lowered, "product"):
			mapping.product = i
		case strings.Contains(lowered, "sales"), strings.Contains(lowered, "revenue"):
			mapping.sales = i
		}
	}

	if mapping.date < 0 || mapping.product < 0 || mapping.sales < 0 {
		return mapping, errors.Errorf(
			"cabeçalho sem as colunas obrigatórias (date/product/sales): %v", header)
	}

	return mapping, nil
}

// parseRecord converte uma linha bruta em SalesRecord. Valores que não
// puderem ser convertidos são tratados como ausentes: a linha é descartada
// sem interromper a carga.
func parseRecord(row []string, mapping columnMapping) (domain.SalesRecord, bool) {
	if len(row) <= mapping.date || len(row) <= mapping.product || len(row) <= mapping.sales {
		return domain.SalesRecord{}, false
	}

	date, ok := utils.ParseSalesDate(strings.TrimSpace(row[mapping.date]))
	if !ok {
		return domain.SalesRecord{}, false
	}

	product := strings.TrimSpace(row[mapping.product])
	if product == "" {
		return domain.SalesRecord{}, false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row[mapping.sales]))
	if err != nil || amount.IsNegative() {
		return domain.SalesRecord{}, false
	}

	return domain.SalesRecord{Date: date, Product: product, Amount: amount}, true
}
