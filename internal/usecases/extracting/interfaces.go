package extracting

import "github.com/vfg2006/sales-reporting-api/internal/domain"

// Extractor converte texto livre em entidades tipadas de consulta.
type Extractor interface {
	// Extract nunca falha: campos sem correspondência voltam nil.
	Extract(text string) domain.RecognizedEntities
}
