package revenue

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/parking-revenue-api/infrastructure/repository"
	"github.com/vfg2006/parking-revenue-api/internal/config"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"github.com/vfg2006/parking-revenue-api/pkg/utils"
)

// Quantidade de períodos das séries de tendência
const trendWindow = 6

// Reporter é a interface consumida pelos handlers de receita
type Reporter interface {
	Locations(claims *domain.Claims) ([]string, error)
	DailyDetails(claims *domain.Claims, year int, month time.Month) (map[string]*domain.SeriesReport, error)
	YearlyDetails(claims *domain.Claims) (map[string]*domain.SeriesReport, error)
	MonthlyTrends(claims *domain.Claims) ([]*domain.PeriodRecord, error)
	MonthlyTrendsByLocation(claims *domain.Claims) (map[string][]*domain.PeriodRecord, error)
	YearlyTrends(claims *domain.Claims) (map[string][]*domain.LocationTotal, error)
	RealtimeAll(claims *domain.Claims) ([]*domain.CategorySnapshot, error)
	RealtimeByLocation(claims *domain.Claims) ([]*domain.LocationSnapshot, error)
	SummaryCards(claims *domain.Claims) (*domain.TrailingSummary, error)
}

type Service struct {
	cfg          *config.Config
	locationRepo repository.LocationRepository
	ledgerRepo   repository.LedgerRepository
	realtimeRepo repository.RealtimeRepository
	aggregator   *Aggregator
	nowFn        func() time.Time
}

func NewService(
	cfg *config.Config,
	locationRepo repository.LocationRepository,
	ledgerRepo repository.LedgerRepository,
	memberRepo repository.MemberRepository,
	manualRepo repository.ManualRepository,
	realtimeRepo repository.RealtimeRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		locationRepo: locationRepo,
		ledgerRepo:   ledgerRepo,
		realtimeRepo: realtimeRepo,
		aggregator:   NewAggregator(ledgerRepo, memberRepo, manualRepo),
		nowFn:        time.Now,
	}
}

// WithClock substitui o relógio do serviço. Usado pelos testes para congelar
// o instante de avaliação da regra de divulgação.
func (s *Service) WithClock(nowFn func() time.Time) *Service {
	s.nowFn = nowFn
	return s
}

// visibleLocations resolve o conjunto de localizações autorizadas do usuário:
// administradores enxergam todas as ativas, os demais apenas as vinculadas
func (s *Service) visibleLocations(claims *domain.Claims) ([]*domain.Location, error) {
	if claims.IsAdmin() {
		return s.locationRepo.ListActive()
	}
	return s.locationRepo.ListByUser(claims.UserID)
}

// Locations lista os nomes das localizações visíveis que já possuem receita
func (s *Service) Locations(claims *domain.Claims) ([]string, error) {
	locations, err := s.visibleLocations(claims)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return []string{}, nil
	}

	return s.locationRepo.ListSitesWithIncome(domain.LocationIDs(locations))
}

// DailyDetails monta a série diária do mês pedido por localização, com o
// bloco de estatísticas de rollup por série
func (s *Service) DailyDetails(claims *domain.Claims, year int, month time.Month) (map[string]*domain.SeriesReport, error) {
	locations, err := s.visibleLocations(claims)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := utils.MonthEnd(start)

	return s.detailsReport(locations, start, end, domain.GranularityDay)
}

// YearlyDetails monta a série anual cobrindo todo o histórico do ledger.
// O componente de membros de cada ano é avaliado mês a mês pela regra de
// divulgação: em um relatório consultado antes do corte do último mês, o
// ano corrente carrega apenas os meses já divulgados.
func (s *Service) YearlyDetails(claims *domain.Claims) (map[string]*domain.SeriesReport, error) {
	locations, err := s.visibleLocations(claims)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return map[string]*domain.SeriesReport{}, nil
	}

	earliest, latest, err := s.ledgerRepo.DateBounds(domain.LocationIDs(locations))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o histórico do ledger")
	}
	if earliest == nil {
		return map[string]*domain.SeriesReport{}, nil
	}

	start := utils.YearStart(*earliest)
	end := time.Date(latest.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	return s.detailsReport(locations, start, end, domain.GranularityYear)
}

func (s *Service) detailsReport(locations []*domain.Location, start, end time.Time, granularity domain.Granularity) (map[string]*domain.SeriesReport, error) {
	series, err := s.aggregator.Aggregate(locations, start, end, granularity)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()

	report := make(map[string]*domain.SeriesReport, len(series))
	for _, locationSeries := range series {
		records := ComposeSeries(locationSeries, now)
		report[locationSeries.Location.Site] = &domain.SeriesReport{
			Series: records,
			Stats:  Summarize(records),
		}
	}

	return report, nil
}

// MonthlyTrends retorna os últimos seis meses-calendário, ancorados na data
// mais recente do ledger, somados entre todas as localizações visíveis
func (s *Service) MonthlyTrends(claims *domain.Claims) ([]*domain.PeriodRecord, error) {
	series, err := s.monthlyTrendSeries(claims)
	if err != nil {
		return nil, err
	}

	return flattenSeries(series, s.nowFn()), nil
}

// MonthlyTrendsByLocation retorna a mesma janela de seis meses, chaveada pelo
// nome da localização
func (s *Service) MonthlyTrendsByLocation(claims *domain.Claims) (map[string][]*domain.PeriodRecord, error) {
	series, err := s.monthlyTrendSeries(claims)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()

	report := make(map[string][]*domain.PeriodRecord, len(series))
	for _, locationSeries := range series {
		report[locationSeries.Location.Site] = ComposeSeries(locationSeries, now)
	}

	return report, nil
}

func (s *Service) monthlyTrendSeries(claims *domain.Claims) ([]*domain.LocationSeries, error) {
	locations, err := s.visibleLocations(claims)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return []*domain.LocationSeries{}, nil
	}

	_, latest, err := s.ledgerRepo.DateBounds(domain.LocationIDs(locations))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o histórico do ledger")
	}
	if latest == nil {
		return []*domain.LocationSeries{}, nil
	}

	anchor := utils.MonthStart(*latest)
	start := anchor.AddDate(0, -(trendWindow - 1), 0)
	end := utils.MonthEnd(anchor)

	return s.aggregator.Aggregate(locations, start, end, domain.GranularityMonth)
}

// YearlyTrends retorna os últimos seis anos ancorados na data mais recente do
// ledger, com o total composto de cada localização por ano. Todas as
// localizações visíveis aparecem em todos os anos, com total zero quando não
// houve movimento.
func (s *Service) YearlyTrends(claims *domain.Claims) (map[string][]*domain.LocationTotal, error) {
	locations, err := s.visibleLocations(claims)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return map[string][]*domain.LocationTotal{}, nil
	}

	_, latest, err := s.ledgerRepo.DateBounds(domain.LocationIDs(locations))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o histórico do ledger")
	}
	if latest == nil {
		return map[string][]*domain.LocationTotal{}, nil
	}

	anchor := utils.YearStart(*latest)
	start := anchor.AddDate(-(trendWindow - 1), 0, 0)
	end := time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	series, err := s.aggregator.Aggregate(locations, start, end, domain.GranularityYear)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()

	report := make(map[string][]*domain.LocationTotal, trendWindow)
	for _, locationSeries := range series {
		for _, record := range ComposeSeries(locationSeries, now) {
			report[record.Label] = append(report[record.Label], &domain.LocationTotal{
				Site:  locationSeries.Location.Site,
				Total: record.TotalRevenue,
			})
		}
	}

	return report, nil
}

// flattenSeries soma as séries de todas as localizações período a período.
// O agregador garante que toda série cobre o mesmo intervalo na mesma ordem.
func flattenSeries(series []*domain.LocationSeries, now time.Time) []*domain.PeriodRecord {
	var flattened []*domain.PeriodRecord

	for _, locationSeries := range series {
		records := ComposeSeries(locationSeries, now)

		if flattened == nil {
			flattened = records
			continue
		}

		for i, record := range records {
			merged := flattened[i]
			merged.Cash = merged.Cash.Add(record.Cash)
			merged.Prepaid = merged.Prepaid.Add(record.Prepaid)
			merged.Member = merged.Member.Add(record.Member)
			merged.Manual = merged.Manual.Add(record.Manual)
			merged.Problem = merged.Problem.Add(record.Problem)
			merged.TotalRevenue = merged.TotalRevenue.Add(record.TotalRevenue)
			merged.Casual += record.Casual
			merged.Pass += record.Pass
			merged.TotalQuantity += record.TotalQuantity
			merged.HasData = merged.HasData || record.HasData
		}
	}

	if flattened == nil {
		return []*domain.PeriodRecord{}
	}

	return flattened
}
