package revenue

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/parking-revenue-api/infrastructure/repository/mocks"
	"github.com/vfg2006/parking-revenue-api/internal/config"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	locationRepo *mocks.MockLocationRepository
	ledgerRepo   *mocks.MockLedgerRepository
	memberRepo   *mocks.MockMemberRepository
	manualRepo   *mocks.MockManualRepository
	realtimeRepo *mocks.MockRealtimeRepository
}

func newTestService(ctrl *gomock.Controller, now time.Time) (*Service, *serviceMocks) {
	m := &serviceMocks{
		locationRepo: mocks.NewMockLocationRepository(ctrl),
		ledgerRepo:   mocks.NewMockLedgerRepository(ctrl),
		memberRepo:   mocks.NewMockMemberRepository(ctrl),
		manualRepo:   mocks.NewMockManualRepository(ctrl),
		realtimeRepo: mocks.NewMockRealtimeRepository(ctrl),
	}

	service := NewService(
		&config.Config{},
		m.locationRepo,
		m.ledgerRepo,
		m.memberRepo,
		m.manualRepo,
		m.realtimeRepo,
	).WithClock(func() time.Time { return now })

	return service, m
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
}

func operatorClaims() *domain.Claims {
	return &domain.Claims{UserID: 7, UserRoleID: domain.RoleOperator}
}

func TestDailyDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	locations := []*domain.Location{{ID: 1, Site: "Pátio Central", Active: true}}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	m.locationRepo.EXPECT().ListActive().Return(locations, nil)
	m.ledgerRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.LedgerSums{
			{LocationID: 1, Period: start, Cash: decimal.NewFromInt(100), Casual: 10},
		}, nil)
	m.memberRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.MemberSums{
			{LocationID: 1, Period: start, Member: decimal.NewFromInt(40)},
		}, nil)
	m.manualRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.ManualSums{}, nil)

	report, err := service.DailyDetails(adminClaims(), 2024, time.March)
	require.NoError(t, err)
	require.Contains(t, report, "Pátio Central")

	serie := report["Pátio Central"]
	require.Len(t, serie.Series, 31)

	// Março consultado em 10 de abril: corte de 6 de abril já passou
	assert.Equal(t, "140", serie.Series[0].TotalRevenue.String())
	assert.Equal(t, "40", serie.Series[0].Member.String())

	// Estatísticas só sobre o único dia com movimento
	require.NotNil(t, serie.Stats)
	assert.Equal(t, "140", serie.Stats.Total.TotalRevenue.String())
	assert.Equal(t, "140", serie.Stats.Average.TotalRevenue.String())
}

func TestDailyDetailsAntesDoCorte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 5 de abril: véspera do corte de março
	now := time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	locations := []*domain.Location{{ID: 1, Site: "Pátio Central", Active: true}}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	m.locationRepo.EXPECT().ListActive().Return(locations, nil)
	m.ledgerRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.LedgerSums{
			{LocationID: 1, Period: start, Cash: decimal.NewFromInt(100)},
		}, nil)
	m.memberRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.MemberSums{
			{LocationID: 1, Period: start, Member: decimal.NewFromInt(40)},
		}, nil)
	m.manualRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.ManualSums{}, nil)

	report, err := service.DailyDetails(adminClaims(), 2024, time.March)
	require.NoError(t, err)

	serie := report["Pátio Central"]
	assert.Equal(t, "100", serie.Series[0].TotalRevenue.String())
	assert.Equal(t, "0", serie.Series[0].Member.String())
}

func TestDailyDetailsOperadorUsaLocalizacoesVinculadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	m.locationRepo.EXPECT().ListByUser(7).Return([]*domain.Location{}, nil)

	report, err := service.DailyDetails(operatorClaims(), 2024, time.March)
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestSummaryCardsFronteiraSemSobreposicao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	locations := []*domain.Location{{ID: 1, Site: "Pátio Central", Active: true}}
	asOf := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	asOfDate := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	m.locationRepo.EXPECT().ListActive().Return(locations, nil)
	m.realtimeRepo.EXPECT().LatestInstant([]int{1}).Return(&asOf, nil)

	// Junho só corta em 6 de julho: MEMBER fica fora do snapshot de hoje
	m.realtimeRepo.EXPECT().
		SumFlat([]int{1}, asOfDate, asOf, false).
		Return(&domain.RealtimeTotals{Transactions: 5, Revenue: decimal.NewFromInt(50)}, nil)

	// Histórico: 2024-06-04 a 2024-06-09, nunca o dia 10
	historyStart := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	historyEnd := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)

	m.ledgerRepo.EXPECT().
		SumByPeriod([]int{1}, historyStart, historyEnd, domain.GranularityDay).
		Return([]*domain.LedgerSums{
			{LocationID: 1, Period: historyStart, Cash: decimal.NewFromInt(100), Casual: 8},
			{LocationID: 1, Period: historyEnd, Cash: decimal.NewFromInt(200), Pass: 2},
		}, nil)
	m.memberRepo.EXPECT().
		SumByPeriod([]int{1}, historyStart, historyEnd, domain.GranularityDay).
		Return([]*domain.MemberSums{}, nil)
	m.manualRepo.EXPECT().
		SumByPeriod([]int{1}, historyStart, historyEnd, domain.GranularityDay).
		Return([]*domain.ManualSums{}, nil)

	summary, err := service.SummaryCards(adminClaims())
	require.NoError(t, err)

	assert.Equal(t, "50", summary.TodayRevenue.String())
	assert.Equal(t, int64(5), summary.TodayTransactions)
	assert.Equal(t, "350", summary.TotalRevenue.String())
	assert.Equal(t, int64(15), summary.TotalTransactions)
	assert.Equal(t, asOf, summary.AsOf)
}

func TestSummaryCardsSemTransacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	m.locationRepo.EXPECT().ListActive().Return([]*domain.Location{{ID: 1, Site: "Pátio Central"}}, nil)
	m.realtimeRepo.EXPECT().LatestInstant([]int{1}).Return(nil, nil)

	_, err := service.SummaryCards(adminClaims())
	assert.ErrorIs(t, err, ErrNoRealtimeData)
}

func TestRealtimeAllSemTransacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	m.locationRepo.EXPECT().ListActive().Return([]*domain.Location{{ID: 1, Site: "Pátio Central"}}, nil)
	m.realtimeRepo.EXPECT().LatestInstant([]int{1}).Return(nil, nil)

	_, err := service.RealtimeAll(adminClaims())
	assert.ErrorIs(t, err, ErrNoRealtimeData)
}

func TestRealtimeByLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	locations := []*domain.Location{
		{ID: 1, Site: "Pátio Central", Active: true},
		{ID: 2, Site: "Shopping Norte", Active: true},
		{ID: 3, Site: "Terminal Rodoviário", Active: true},
	}

	m.locationRepo.EXPECT().ListActive().Return(locations, nil)

	// Localização 1: transação hoje
	todayInstant := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	m.realtimeRepo.EXPECT().LatestInstantOn(1, today).Return(&todayInstant, nil)
	m.realtimeRepo.EXPECT().
		SumFlat([]int{1}, today, todayInstant, false).
		Return(&domain.RealtimeTotals{Transactions: 3, Revenue: decimal.NewFromInt(30)}, nil)

	// Localização 2: sem transação hoje, recua para a última histórica.
	// Maio consultado em 10 de junho já passou do corte de 6 de junho, então
	// MEMBER entra no snapshot histórico.
	historicalInstant := time.Date(2024, 5, 20, 18, 0, 0, 0, time.UTC)
	historicalDate := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	m.realtimeRepo.EXPECT().LatestInstantOn(2, today).Return(nil, nil)
	m.realtimeRepo.EXPECT().LatestTransaction(2).Return(&domain.RealtimeTransaction{
		LocationID: 2,
		Date:       historicalDate,
		RecordedAt: historicalInstant,
	}, nil)
	m.realtimeRepo.EXPECT().
		SumFlat([]int{2}, historicalDate, historicalInstant, true).
		Return(&domain.RealtimeTotals{Transactions: 7, Revenue: decimal.NewFromInt(70)}, nil)

	// Localização 3: nunca transacionou
	m.realtimeRepo.EXPECT().LatestInstantOn(3, today).Return(nil, nil)
	m.realtimeRepo.EXPECT().LatestTransaction(3).Return(nil, nil)

	snapshots, err := service.RealtimeByLocation(adminClaims())
	require.NoError(t, err)
	require.Len(t, snapshots, 3)

	assert.True(t, snapshots[0].IsToday)
	assert.True(t, snapshots[0].HasData)
	assert.Equal(t, "30", snapshots[0].Revenue.String())

	assert.False(t, snapshots[1].IsToday)
	assert.True(t, snapshots[1].HasData)
	assert.Equal(t, "2024-05-20", snapshots[1].AsOfDate)
	assert.Equal(t, "70", snapshots[1].Revenue.String())

	// Sem dados é distinto de receita zero
	assert.False(t, snapshots[2].HasData)
	assert.Nil(t, snapshots[2].AsOf)
	assert.True(t, snapshots[2].Revenue.IsZero())
}

func TestMonthlyTrendsJanelaAncoradaNoLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	locations := []*domain.Location{
		{ID: 1, Site: "Pátio Central", Active: true},
		{ID: 2, Site: "Shopping Norte", Active: true},
	}

	latest := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	earliest := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	m.locationRepo.EXPECT().ListActive().Return(locations, nil)
	m.ledgerRepo.EXPECT().DateBounds([]int{1, 2}).Return(&earliest, &latest, nil)

	m.ledgerRepo.EXPECT().
		SumByPeriod([]int{1, 2}, windowStart, windowEnd, domain.GranularityMonth).
		Return([]*domain.LedgerSums{
			{LocationID: 1, Period: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Cash: decimal.NewFromInt(100)},
			{LocationID: 2, Period: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Cash: decimal.NewFromInt(50)},
		}, nil)
	m.memberRepo.EXPECT().
		SumByPeriod([]int{1, 2}, windowStart, windowEnd, domain.GranularityMonth).
		Return([]*domain.MemberSums{}, nil)
	m.manualRepo.EXPECT().
		SumByPeriod([]int{1, 2}, windowStart, windowEnd, domain.GranularityMonth).
		Return([]*domain.ManualSums{}, nil)

	series, err := service.MonthlyTrends(adminClaims())
	require.NoError(t, err)
	require.Len(t, series, 6)

	assert.Equal(t, "2024-01", series[0].Label)
	assert.Equal(t, "2024-06", series[5].Label)

	// Último mês soma as duas localizações
	assert.Equal(t, "150", series[5].TotalRevenue.String())
	assert.Equal(t, "0", series[4].TotalRevenue.String())
}

func TestYearlyTrendsTodasLocalizacoesPresentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	locations := []*domain.Location{
		{ID: 1, Site: "Pátio Central", Active: true},
		{ID: 2, Site: "Shopping Norte", Active: true},
	}

	latest := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	earliest := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	windowStart := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	m.locationRepo.EXPECT().ListActive().Return(locations, nil)
	m.ledgerRepo.EXPECT().DateBounds([]int{1, 2}).Return(&earliest, &latest, nil)

	m.ledgerRepo.EXPECT().
		SumByPeriod([]int{1, 2}, windowStart, windowEnd, domain.GranularityYear).
		Return([]*domain.LedgerSums{
			{LocationID: 1, Period: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Cash: decimal.NewFromInt(900)},
		}, nil)
	m.memberRepo.EXPECT().
		SumByPeriod([]int{1, 2}, windowStart, windowEnd, domain.GranularityMonth).
		Return([]*domain.MemberSums{}, nil)
	m.manualRepo.EXPECT().
		SumByPeriod([]int{1, 2}, windowStart, windowEnd, domain.GranularityYear).
		Return([]*domain.ManualSums{}, nil)

	report, err := service.YearlyTrends(adminClaims())
	require.NoError(t, err)
	require.Len(t, report, 6)

	require.Contains(t, report, "2024")
	require.Len(t, report["2024"], 2)
	assert.Equal(t, "Pátio Central", report["2024"][0].Site)
	assert.Equal(t, "900", report["2024"][0].Total.String())
	assert.Equal(t, "Shopping Norte", report["2024"][1].Site)
	assert.True(t, report["2024"][1].Total.IsZero())

	// Ano sem movimento algum também aparece, zerado
	require.Contains(t, report, "2019")
	assert.True(t, report["2019"][0].Total.IsZero())
}

// Com o relógio congelado, chamadas repetidas produzem o mesmo relatório
func TestDailyDetailsIdempotenteComRelogioCongelado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	locations := []*domain.Location{{ID: 1, Site: "Pátio Central", Active: true}}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	m.locationRepo.EXPECT().ListActive().Return(locations, nil).Times(2)
	m.ledgerRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.LedgerSums{
			{LocationID: 1, Period: start, Cash: decimal.NewFromInt(100)},
		}, nil).
		Times(2)
	m.memberRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.MemberSums{
			{LocationID: 1, Period: start, Member: decimal.NewFromInt(40)},
		}, nil).
		Times(2)
	m.manualRepo.EXPECT().
		SumByPeriod([]int{1}, start, end, domain.GranularityDay).
		Return([]*domain.ManualSums{}, nil).
		Times(2)

	first, err := service.DailyDetails(adminClaims(), 2024, time.March)
	require.NoError(t, err)
	second, err := service.DailyDetails(adminClaims(), 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t,
		first["Pátio Central"].Series[0].TotalRevenue.String(),
		second["Pátio Central"].Series[0].TotalRevenue.String(),
	)
	assert.Equal(t, "140", first["Pátio Central"].Series[0].TotalRevenue.String())
}
