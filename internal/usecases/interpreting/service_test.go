package interpreting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/extracting"
)

func newService() *Service {
	return NewService(
		extracting.NewService(extracting.DefaultCatalog()),
		aggregating.NewService(),
	)
}

func record(date string, product string, amount string) domain.SalesRecord {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.SalesRecord{
		Date:    d,
		Product: product,
		Amount:  decimal.RequireFromString(amount),
	}
}

func testDataset() *domain.SalesDataset {
	return domain.NewSalesDataset([]domain.SalesRecord{
		record("2023-01-10", "Product A", "1000.00"),
		record("2023-01-25", "Product A", "500.00"),
		record("2023-02-05", "Product A", "250.00"),
		record("2023-03-01", "Product B", "75.25"),
	}, "test", time.Now())
}

func TestService_Interpret(t *testing.T) {
	service := newService()
	ds := testDataset()

	tests := []struct {
		name           string
		text           string
		wantSentence   string
		wantProduct    *string
		wantTimePeriod *string
		wantPayloads   bool
	}{
		{
			name:           "Produto e mês geram o total do mês",
			text:           "What was the total sales for Product A in January?",
			wantSentence:   "The total sales for Product A in January were $1500.00",
			wantProduct:    stringPtr("Product A"),
			wantTimePeriod: stringPtr("January"),
			wantPayloads:   true,
		},
		{
			name:         "Só produto gera o total geral sem citar período",
			text:         "How much did Product B sell?",
			wantSentence: "The total sales for Product B were $75.25",
			wantProduct:  stringPtr("Product B"),
			wantPayloads: true,
		},
		{
			name:         "Texto incompreensível gera a frase de esclarecimento",
			text:         "asdfasdf",
			wantSentence: ClarificationSentence,
		},
		{
			name:           "Mês sem vendas responde $0.00, não erro",
			text:           "total sales for Product B in January",
			wantSentence:   "The total sales for Product B in January were $0.00",
			wantProduct:    stringPtr("Product B"),
			wantTimePeriod: stringPtr("January"),
			wantPayloads:   true,
		},
		{
			name:         "Produto ausente do dataset responde $0.00",
			text:         "how much did Product D sell?",
			wantSentence: "The total sales for Product D were $0.00",
			wantProduct:  stringPtr("Product D"),
			wantPayloads: true,
		},
		{
			name:         "Consulta ambígua resolve para a última menção",
			text:         "Product A or Product B",
			wantSentence: "The total sales for Product B were $75.25",
			wantProduct:  stringPtr("Product B"),
			wantPayloads: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := service.Interpret(tt.text, ds)
			require.NoError(t, err)
			require.NotNil(t, response)

			assert.Equal(t, tt.wantSentence, response.Sentence)

			if tt.wantProduct == nil {
				assert.Nil(t, response.Product)
			} else {
				require.NotNil(t, response.Product)
				assert.Equal(t, *tt.wantProduct, *response.Product)
			}

			if tt.wantTimePeriod == nil {
				assert.Nil(t, response.TimePeriod)
			} else {
				require.NotNil(t, response.TimePeriod)
				assert.Equal(t, *tt.wantTimePeriod, *response.TimePeriod)
			}

			if tt.wantPayloads {
				assert.NotNil(t, response.Chart)
				assert.NotEmpty(t, response.Table)
			} else {
				assert.Nil(t, response.Chart)
				assert.Empty(t, response.Table)
			}
		})
	}
}

func TestService_Interpret_PeriodoNaoResolvivel(t *testing.T) {
	// O canal estruturado pode entregar um ano como período; a frase degrada
	// para o total do produto e o gráfico/tabela ficam recortados pelo ano.
	service := newService()
	ds := testDataset()

	entities := domain.RecognizedEntities{
		Product:    stringPtr("Product A"),
		TimePeriod: stringPtr("2023"),
	}
	response, err := service.interpretEntities(entities, ds)
	require.NoError(t, err)

	assert.Equal(t, "The total sales for Product A were $1750.00", response.Sentence)
	require.NotNil(t, response.Chart)
	assert.Equal(t, []string{"January 2023", "February 2023"}, response.Chart.Labels)
}

func TestService_Interpret_ProdutoForaDoCatalogo(t *testing.T) {
	// Pelo canal estruturado pode chegar um produto fora do catálogo; a
	// resposta é a frase de esclarecimento, não um total zerado.
	service := newService()

	entities := domain.RecognizedEntities{Product: stringPtr("Product Z")}
	response, err := service.interpretEntities(entities, testDataset())
	require.NoError(t, err)

	assert.Equal(t, ClarificationSentence, response.Sentence)
	assert.Nil(t, response.Chart)
}

func TestService_Interpret_TabelaDoMesAusente(t *testing.T) {
	// Consulta citando produto sem nenhuma linha: a tabela vem só com a
	// linha Total zerada e a frase reporta $0.00.
	service := newService()
	ds := testDataset()

	response, err := service.Interpret("sales for Product C in July", ds)
	require.NoError(t, err)

	assert.Equal(t, "The total sales for Product C in July were $0.00", response.Sentence)
	require.Len(t, response.Table, 1)
	assert.Equal(t, domain.TotalRowLabel, response.Table[0].Month)
	assert.True(t, response.Table[0].Sales.IsZero())
}

func stringPtr(s string) *string {
	return &s
}
