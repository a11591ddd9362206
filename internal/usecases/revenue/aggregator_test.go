package revenue

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/parking-revenue-api/infrastructure/repository/mocks"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestAggregateDiasComPreenchimentoDeLacunas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	memberRepo := mocks.NewMockMemberRepository(ctrl)
	manualRepo := mocks.NewMockManualRepository(ctrl)

	locations := []*domain.Location{
		{ID: 1, Site: "Pátio Central", Active: true},
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	// Só os dias 2 e 5 têm movimento no ledger
	ledgerRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.LedgerSums{
			{LocationID: 1, Period: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Cash: decimal.NewFromInt(100), Casual: 10},
			{LocationID: 1, Period: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Cash: decimal.NewFromInt(200), Pass: 5},
		}, nil)

	memberRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.MemberSums{
			{LocationID: 1, Period: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Member: decimal.NewFromInt(30)},
		}, nil)

	manualRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.ManualSums{}, nil)

	aggregator := NewAggregator(ledgerRepo, memberRepo, manualRepo)

	series, err := aggregator.Aggregate(locations, start, end, domain.GranularityDay)
	require.NoError(t, err)
	require.Len(t, series, 1)

	buckets := series[0].Buckets
	require.Len(t, buckets, 31)

	// Ordem cronológica e lacunas explícitas com zeros
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), buckets[0].Period)
	assert.False(t, buckets[0].HasData)
	assert.True(t, buckets[0].Cash.IsZero())

	assert.True(t, buckets[1].HasData)
	assert.Equal(t, "100", buckets[1].Cash.String())
	assert.Equal(t, int64(10), buckets[1].Casual)

	// O dia com receita de membros ancora o mês-calendário do próprio dia
	require.Len(t, buckets[1].MemberMonths, 1)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), buckets[1].MemberMonths[0].Month)
	assert.Equal(t, "30", buckets[1].MemberMonths[0].Amount.String())

	assert.True(t, buckets[4].HasData)
	assert.Equal(t, "200", buckets[4].Cash.String())
	assert.Empty(t, buckets[4].MemberMonths)
}

func TestAggregateAnoCarregaMesesDeMembro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	memberRepo := mocks.NewMockMemberRepository(ctrl)
	manualRepo := mocks.NewMockManualRepository(ctrl)

	locations := []*domain.Location{
		{ID: 1, Site: "Pátio Central", Active: true},
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	ledgerRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityYear).
		Return([]*domain.LedgerSums{
			{LocationID: 1, Period: start, Cash: decimal.NewFromInt(1000)},
		}, nil)

	// Membros são buscados mês a mês na granularidade anual
	memberRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityMonth).
		Return([]*domain.MemberSums{
			{LocationID: 1, Period: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Member: decimal.NewFromInt(10)},
			{LocationID: 1, Period: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Member: decimal.NewFromInt(20)},
			{LocationID: 1, Period: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), Member: decimal.NewFromInt(30)},
		}, nil)

	manualRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityYear).
		Return([]*domain.ManualSums{}, nil)

	aggregator := NewAggregator(ledgerRepo, memberRepo, manualRepo)

	series, err := aggregator.Aggregate(locations, start, end, domain.GranularityYear)
	require.NoError(t, err)
	require.Len(t, series, 1)
	require.Len(t, series[0].Buckets, 1)

	bucket := series[0].Buckets[0]
	require.Len(t, bucket.MemberMonths, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), bucket.MemberMonths[0].Month)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), bucket.MemberMonths[2].Month)
}

func TestAggregateOrdenaPorLocalizacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	memberRepo := mocks.NewMockMemberRepository(ctrl)
	manualRepo := mocks.NewMockManualRepository(ctrl)

	locations := []*domain.Location{
		{ID: 1, Site: "Pátio Central", Active: true},
		{ID: 2, Site: "Shopping Norte", Active: true},
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	ledgerRepo.EXPECT().
		SumByPeriod([]int{1, 2}, start, end, domain.GranularityMonth).
		Return([]*domain.LedgerSums{
			{LocationID: 2, Period: start, Cash: decimal.NewFromInt(500)},
		}, nil)
	memberRepo.EXPECT().
		SumByPeriod([]int{1, 2}, start, end, domain.GranularityMonth).
		Return([]*domain.MemberSums{}, nil)
	manualRepo.EXPECT().
		SumByPeriod([]int{1, 2}, start, end, domain.GranularityMonth).
		Return([]*domain.ManualSums{}, nil)

	aggregator := NewAggregator(ledgerRepo, memberRepo, manualRepo)

	series, err := aggregator.Aggregate(locations, start, end, domain.GranularityMonth)
	require.NoError(t, err)
	require.Len(t, series, 2)

	// Toda localização visível aparece, mesmo sem movimento
	assert.Equal(t, "Pátio Central", series[0].Location.Site)
	assert.False(t, series[0].Buckets[0].HasData)
	assert.Equal(t, "Shopping Norte", series[1].Location.Site)
	assert.Equal(t, "500", series[1].Buckets[0].Cash.String())
}

func TestAggregateSemLocalizacoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := NewAggregator(
		mocks.NewMockLedgerRepository(ctrl),
		mocks.NewMockMemberRepository(ctrl),
		mocks.NewMockManualRepository(ctrl),
	)

	series, err := aggregator.Aggregate(nil, time.Now(), time.Now(), domain.GranularityDay)
	require.NoError(t, err)
	assert.Empty(t, series)
}
