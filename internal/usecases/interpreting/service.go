package interpreting

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/charting"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/extracting"
)

// ClarificationSentence é a resposta fixa para consultas não compreendidas.
// Não é um erro: o serviço devolve 200 com esta frase.
const ClarificationSentence = "I'm sorry, I couldn't understand your query. " +
	"Please try asking about sales for a specific product or time period."

// Service orquestra extração → agregação → formatação da frase e dos
// payloads de apresentação.
type Service struct {
	extractor  extracting.Extractor
	aggregator *aggregating.Service
}

// NewService cria o interpretador de consultas.
func NewService(extractor extracting.Extractor, aggregator *aggregating.Service) *Service {
	return &Service{
		extractor:  extractor,
		aggregator: aggregator,
	}
}

// Interpret aplica a tabela de decisão sobre as entidades extraídas:
//
//  1. produto + período resolvível para mês → total do produto no mês;
//  2. produto + período não resolvível (ano ou token desconhecido) →
//     degrada para o total do produto, com gráfico/tabela recortados pelo
//     ano quando houver;
//  3. só produto → total do produto;
//  4. nada reconhecido → frase de esclarecimento, sem payload numérico.
//
// Somente as falhas de argumento de agregação enumeradas são absorvidas
// aqui (convertidas em esclarecimento e logadas em warning); qualquer outro
// erro sobe para o chamador para não mascarar defeitos.
func (s *Service) Interpret(text string, ds *domain.SalesDataset) (*domain.QueryResponse, error) {
	return s.interpretEntities(s.extractor.Extract(text), ds)
}

// interpretEntities aplica a tabela de decisão sobre entidades já
// extraídas. Também é o ponto de entrada do canal estruturado, que pode
// entregar um ano como período sem passar pelo texto.
func (s *Service) interpretEntities(entities domain.RecognizedEntities, ds *domain.SalesDataset) (*domain.QueryResponse, error) {
	if entities.Product == nil {
		return clarificationResponse(), nil
	}
	// A extração por texto só produz produtos do catálogo; este guarda cobre
	// o canal estruturado, que aceita entidades de fora.
	if !domain.IsCatalogProduct(*entities.Product) {
		return clarificationResponse(), nil
	}

	product := *entities.Product
	response := &domain.QueryResponse{
		Product:    entities.Product,
		TimePeriod: entities.TimePeriod,
	}

	var year *int
	if entities.TimePeriod != nil {
		period := *entities.TimePeriod

		if month := domain.MonthNumber(period); month != 0 {
			amount, err := s.aggregator.TotalByProductAndMonth(ds, product, month)
			if err != nil {
				if errors.Is(err, aggregating.ErrInvalidMonth) {
					logrus.WithError(err).WithFields(logrus.Fields{
						"product": product,
						"period":  period,
					}).Warn("interpret: argumento de agregação inválido, degradando para esclarecimento")
					return clarificationResponse(), nil
				}
				return nil, err
			}
			response.Sentence = totalSentence(domain.ScalarTotal{
				Product:     product,
				PeriodLabel: period,
				Amount:      amount,
			})
		} else {
			// Período que não é mês (ano ou token desconhecido): a frase
			// degrada para o total do produto; gráfico e tabela ficam
			// recortados pelo ano quando o período for um ano válido.
			if y, ok := parseYear(period); ok {
				year = &y
			}
			response.Sentence = totalSentence(domain.ScalarTotal{
				Product: product,
				Amount:  s.aggregator.TotalByProduct(ds, product),
			})
		}
	} else {
		response.Sentence = totalSentence(domain.ScalarTotal{
			Product: product,
			Amount:  s.aggregator.TotalByProduct(ds, product),
		})
	}

	response.Chart = charting.LineChart(s.aggregator.MonthlySeries(ds, product, year))
	response.Table = charting.TableRows(s.aggregator.MonthlyTable(ds, product, year))

	return response, nil
}

// totalSentence formata o total em dólares com duas casas, citando o período
// quando houver.
func totalSentence(total domain.ScalarTotal) string {
	if total.PeriodLabel != "" {
		return fmt.Sprintf("The total sales for %s in %s were $%s",
			total.Product, total.PeriodLabel, total.Amount.StringFixed(2))
	}
	return fmt.Sprintf("The total sales for %s were $%s",
		total.Product, total.Amount.StringFixed(2))
}

func clarificationResponse() *domain.QueryResponse {
	return &domain.QueryResponse{Sentence: ClarificationSentence}
}

func parseYear(period string) (int, bool) {
	if len(period) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(period)
	if err != nil {
		return 0, false
	}
	return year, true
}
