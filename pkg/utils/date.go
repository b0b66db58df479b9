package utils

import "time"

var salesDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"01-02-06",
	time.RFC3339,
}

// ParseSalesDate tenta os formatos de data aceitos nos arquivos de venda.
// Retorna false quando nenhum formato casa; o chamador decide tratar o
// valor como ausente.
func ParseSalesDate(raw string) (time.Time, bool) {
	for _, layout := range salesDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
