package extracting

import (
	"regexp"
	"strings"

	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

// Strategy é uma camada de extração. Apply devolve apenas o que reconheceu;
// campos nil indicam ausência de correspondência naquela camada.
type Strategy interface {
	Apply(in Input) domain.RecognizedEntities
}

// patternStrategy é a camada primária: procura a sequência literal
// "product <letra do catálogo>" e tokens iguais a nomes de mês. Quando há
// mais de uma ocorrência do mesmo tipo, a ÚLTIMA vence. Esse comportamento
// afeta consultas ambíguas ("Product A or Product B" resolve para B) e é
// fixado pelos testes; mudar para primeira-ocorrência alteraria respostas
// observáveis.
type patternStrategy struct {
	productPattern *regexp.Regexp
	months         []string
}

func newPatternStrategy(catalog Catalog) patternStrategy {
	letters := make([]string, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		if i := strings.LastIndex(p, " "); i >= 0 && i+1 < len(p) {
			letters = append(letters, strings.ToLower(p[i+1:]))
		}
	}

	return patternStrategy{
		productPattern: regexp.MustCompile(`\bproduct\s+([` + strings.Join(letters, "") + `])\b`),
		months:         catalog.Months,
	}
}

func (s patternStrategy) Apply(in Input) domain.RecognizedEntities {
	var out domain.RecognizedEntities

	if matches := s.productPattern.FindAllStringSubmatch(in.Lowered, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		product := "Product " + strings.ToUpper(last[1])
		out.Product = &product
	}

	for _, token := range in.Tokens {
		for _, month := range s.months {
			if strings.EqualFold(token, month) {
				period := month
				out.TimePeriod = &period
			}
		}
	}

	return out
}

// keywordStrategy é a camada de fallback: compara janelas de tokens com os
// nomes completos do catálogo e tokens isolados com nomes de mês. Aqui a
// PRIMEIRA ocorrência vence, como no reconhecedor original por palavras-chave.
type keywordStrategy struct {
	products []string
	months   []string
}

func newKeywordStrategy(catalog Catalog) keywordStrategy {
	return keywordStrategy{
		products: catalog.Products,
		months:   catalog.Months,
	}
}

func (s keywordStrategy) Apply(in Input) domain.RecognizedEntities {
	var out domain.RecognizedEntities

	for i := range in.Tokens {
		if out.Product != nil {
			break
		}
		for _, product := range s.products {
			width := len(strings.Fields(product))
			if i+width > len(in.Tokens) {
				continue
			}
			window := strings.Join(in.Tokens[i:i+width], " ")
			if strings.EqualFold(window, product) {
				p := product
				out.Product = &p
				break
			}
		}
	}

	for _, token := range in.Tokens {
		if out.TimePeriod != nil {
			break
		}
		for _, month := range s.months {
			if strings.EqualFold(token, month) {
				m := month
				out.TimePeriod = &m
				break
			}
		}
	}

	return out
}
