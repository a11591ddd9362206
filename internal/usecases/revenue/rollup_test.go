package revenue

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
)

func record(total int64, quantity int64, hasData bool) *domain.PeriodRecord {
	return &domain.PeriodRecord{
		Period:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TotalRevenue:  decimal.NewFromInt(total),
		Cash:          decimal.NewFromInt(total),
		TotalQuantity: quantity,
		HasData:       hasData,
	}
}

func TestSummarize(t *testing.T) {
	series := []*domain.PeriodRecord{
		record(100, 10, true),
		record(300, 30, true),
		record(200, 20, true),
	}

	stats := Summarize(series)
	require.NotNil(t, stats)

	assert.Equal(t, "600", stats.Total.TotalRevenue.String())
	assert.Equal(t, "100", stats.Minimum.TotalRevenue.String())
	assert.Equal(t, "300", stats.Maximum.TotalRevenue.String())
	assert.Equal(t, "200", stats.Average.TotalRevenue.String())
	assert.Equal(t, "60", stats.Total.TotalQuantity.String())
	assert.Equal(t, "20", stats.Average.TotalQuantity.String())
}

func TestSummarizeIgnoraLinhasDePreenchimento(t *testing.T) {
	// Linhas zeradas de lacuna não entram na estatística: o mínimo reflete o
	// menor período com movimento, não o zero do preenchimento
	series := []*domain.PeriodRecord{
		record(100, 10, true),
		record(0, 0, false),
		record(300, 30, true),
	}

	stats := Summarize(series)
	require.NotNil(t, stats)

	assert.Equal(t, "100", stats.Minimum.TotalRevenue.String())
	assert.Equal(t, "200", stats.Average.TotalRevenue.String())
}

func TestSummarizeSerieVazia(t *testing.T) {
	assert.Nil(t, Summarize([]*domain.PeriodRecord{}))
	assert.Nil(t, Summarize(nil))
}

func TestSummarizeSerieSoComPreenchimento(t *testing.T) {
	series := []*domain.PeriodRecord{
		record(0, 0, false),
		record(0, 0, false),
	}

	assert.Nil(t, Summarize(series))
}

func TestSummarizeMediaFracionaria(t *testing.T) {
	series := []*domain.PeriodRecord{
		record(100, 1, true),
		record(101, 2, true),
	}

	stats := Summarize(series)
	require.NotNil(t, stats)

	assert.Equal(t, "100.5", stats.Average.TotalRevenue.String())
	assert.Equal(t, "1.5", stats.Average.TotalQuantity.String())
}
