package charting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

func TestLineChart(t *testing.T) {
	series := domain.TimeSeries{
		Product: "Product A",
		Points: []domain.SeriesPoint{
			{PeriodLabel: "January 2023", Amount: decimal.RequireFromString("10.50")},
			{PeriodLabel: "February 2023", Amount: decimal.RequireFromString("20.00")},
		},
	}

	payload := LineChart(series)

	require.NotNil(t, payload)
	assert.Equal(t, []string{"January 2023", "February 2023"}, payload.Labels)
	assert.Equal(t, []float64{10.5, 20}, payload.Data)
}

func TestLineChart_SerieVazia(t *testing.T) {
	payload := LineChart(domain.TimeSeries{Product: "Product Z"})

	require.NotNil(t, payload)
	assert.Empty(t, payload.Labels)
	assert.Empty(t, payload.Data)
}

func TestPieChart(t *testing.T) {
	totals := []domain.ProductTotal{
		{Product: "Product A", Amount: decimal.RequireFromString("100.00")},
		{Product: "Product B", Amount: decimal.RequireFromString("50.25")},
	}

	payload := PieChart(totals)

	require.NotNil(t, payload)
	assert.Equal(t, []string{"Product A", "Product B"}, payload.Labels)
	assert.Equal(t, []float64{100, 50.25}, payload.Data)
}

func TestTableRows_PreservaLinhaTotal(t *testing.T) {
	table := domain.TableWithTotal{
		Rows: []domain.TableRow{
			{Month: "January", Sales: decimal.RequireFromString("10.00")},
			{Month: domain.TotalRowLabel, Sales: decimal.RequireFromString("10.00")},
		},
	}

	rows := TableRows(table)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.TotalRowLabel, rows[1].Month)
}
