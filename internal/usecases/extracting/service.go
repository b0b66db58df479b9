package extracting

import (
	"strings"
	"unicode"

	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

// Catalog define o vocabulário fechado contra o qual os tokens do texto são
// validados. É configuração do serviço, não deriva do dataset.
type Catalog struct {
	Products []string
	Months   []string
}

// DefaultCatalog retorna o catálogo canônico de produtos e meses.
func DefaultCatalog() Catalog {
	return Catalog{
		Products: domain.CatalogProducts,
		Months:   domain.MonthNames,
	}
}

// Service aplica uma lista ordenada de estratégias de extração sobre o
// texto. A primeira estratégia que reconhecer um campo vence; estratégias
// seguintes só preenchem o que ficou vazio.
type Service struct {
	strategies []Strategy
}

// NewService monta o extrator com as duas camadas na ordem de prioridade:
// padrão ("product <letra>" e varredura de meses) e depois a varredura de
// tokens por nome completo.
func NewService(catalog Catalog) *Service {
	return &Service{
		strategies: []Strategy{
			newPatternStrategy(catalog),
			newKeywordStrategy(catalog),
		},
	}
}

// Extract percorre as estratégias em ordem fixa e devolve as entidades
// reconhecidas. Nunca retorna erro: ausência de correspondência é um
// resultado válido.
func (s *Service) Extract(text string) domain.RecognizedEntities {
	in := newInput(text)

	var out domain.RecognizedEntities
	for _, strategy := range s.strategies {
		found := strategy.Apply(in)
		if out.Product == nil {
			out.Product = found.Product
		}
		if out.TimePeriod == nil {
			out.TimePeriod = found.TimePeriod
		}
		if out.Product != nil && out.TimePeriod != nil {
			break
		}
	}

	return out
}

// Input é a forma pré-processada do texto compartilhada pelas estratégias.
type Input struct {
	Raw     string
	Lowered string
	Tokens  []string
}

func newInput(text string) Input {
	lowered := strings.ToLower(text)
	return Input{
		Raw:     text,
		Lowered: lowered,
		Tokens:  tokenize(lowered),
	}
}

func tokenize(lowered string) []string {
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
