package aggregating

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

// Service implementa as operações de agregação sobre um dataset de vendas.
// Todas as operações são puras: leem o snapshot recebido e devolvem
// resultados novos, sem efeito colateral. As somas usam decimal exato, sem
// arredondamento intermediário; formatação monetária é responsabilidade da
// apresentação.
type Service struct{}

// NewService cria uma nova instância do serviço de agregação.
func NewService() *Service {
	return &Service{}
}

// TotalByProduct soma os valores de venda do produto informado. Produto sem
// registros no dataset não é erro: a soma é zero.
func (s *Service) TotalByProduct(ds *domain.SalesDataset, product string) decimal.Decimal {
	total := decimal.Zero
	for i := 0; i < ds.Len(); i++ {
		if r := ds.Record(i); r.Product == product {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// TotalByProductAndMonth soma os valores do produto restritos ao mês do
// calendário (1..12, qualquer ano). Mês fora do intervalo é falha de
// argumento, não de dados.
func (s *Service) TotalByProductAndMonth(ds *domain.SalesDataset, product string, month int) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, ErrInvalidMonth
	}

	total := decimal.Zero
	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		if r.Product == product && r.Date.Month() == time.Month(month) {
			total = total.Add(r.Amount)
		}
	}
	return total, nil
}

// MonthlySeries agrupa as vendas do produto por mês do calendário
// (balde ano+mês) e devolve a série em ordem cronológica crescente, com
// rótulos "January 2006". Meses sem registros não entram na série. Quando
// year é informado, só o ano correspondente é considerado.
func (s *Service) MonthlySeries(ds *domain.SalesDataset, product string, year *int) domain.TimeSeries {
	buckets := s.monthlyBuckets(ds, product, year)

	points := make([]domain.SeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, domain.SeriesPoint{
			PeriodLabel: b.start.Format("January 2006"),
			Amount:      b.amount,
		})
	}

	return domain.TimeSeries{Product: product, Points: points}
}

// MonthlyTable agrupa como MonthlySeries, mas com rótulos de mês sem ano e
// uma linha final "Total" igual à soma de todas as linhas anteriores. Para
// um recorte vazio a tabela tem só a linha "Total" com valor zero.
func (s *Service) MonthlyTable(ds *domain.SalesDataset, product string, year *int) domain.TableWithTotal {
	buckets := s.monthlyBuckets(ds, product, year)

	rows := make([]domain.TableRow, 0, len(buckets)+1)
	total := decimal.Zero
	for _, b := range buckets {
		rows = append(rows, domain.TableRow{
			Month: b.start.Format("January"),
			Sales: b.amount,
		})
		total = total.Add(b.amount)
	}

	rows = append(rows, domain.TableRow{Month: domain.TotalRowLabel, Sales: total})

	return domain.TableWithTotal{Rows: rows}
}

// TotalsByProduct soma as vendas de cada produto presente no dataset, na
// ordem da primeira aparição. Quando year é informado, só o ano
// correspondente entra na soma.
func (s *Service) TotalsByProduct(ds *domain.SalesDataset, year *int) []domain.ProductTotal {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0, 8)

	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		if year != nil && r.Date.Year() != *year {
			continue
		}
		if _, seen := totals[r.Product]; !seen {
			order = append(order, r.Product)
		}
		totals[r.Product] = totals[r.Product].Add(r.Amount)
	}

	result := make([]domain.ProductTotal, 0, len(order))
	for _, product := range order {
		result = append(result, domain.ProductTotal{Product: product, Amount: totals[product]})
	}
	return result
}

type monthBucket struct {
	start  time.Time
	amount decimal.Decimal
}

// monthlyBuckets agrupa os registros do produto por balde ano+mês e devolve
// os baldes em ordem cronológica, independentemente da ordem de carga.
func (s *Service) monthlyBuckets(ds *domain.SalesDataset, product string, year *int) []monthBucket {
	sums := make(map[time.Time]decimal.Decimal)

	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		if r.Product != product {
			continue
		}
		if year != nil && r.Date.Year() != *year {
			continue
		}
		start := time.Date(r.Date.Year(), r.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		sums[start] = sums[start].Add(r.Amount)
	}

	buckets := make([]monthBucket, 0, len(sums))
	for start, amount := range sums {
		buckets = append(buckets, monthBucket{start: start, amount: amount})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].start.Before(buckets[j].start)
	})

	return buckets
}
