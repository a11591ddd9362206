package revenue

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"github.com/vfg2006/parking-revenue-api/pkg/utils"
)

// SummaryCards monta o resumo de janela móvel: o dia as-of vem do log em
// tempo real (transações até o instante as-of), os seis dias anteriores vêm
// da agregação diária do ledger. As duas fontes não se sobrepõem: o dia as-of
// nunca é recontado pelo caminho histórico.
func (s *Service) SummaryCards(claims *domain.Claims) (*domain.TrailingSummary, error) {
	locations, err := s.visibleLocations(claims)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, ErrNoRealtimeData
	}

	locationIDs := domain.LocationIDs(locations)
	now := s.nowFn()

	asOf, err := s.realtimeRepo.LatestInstant(locationIDs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o último instante global")
	}
	if asOf == nil {
		return nil, ErrNoRealtimeData
	}

	asOfDate := utils.DateOnly(*asOf)
	disclosed := MemberDisclosed(asOfDate, now)

	today, err := s.realtimeRepo.SumFlat(locationIDs, asOfDate, *asOf, disclosed)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar o snapshot do dia")
	}

	summary := &domain.TrailingSummary{
		TotalRevenue:      today.Revenue,
		TodayRevenue:      today.Revenue,
		TotalTransactions: today.Transactions,
		TodayTransactions: today.Transactions,
		AsOf:              *asOf,
	}

	// Janela histórica: do sexto dia anterior até a véspera do dia as-of
	start := asOfDate.AddDate(0, 0, -6)
	end := asOfDate.AddDate(0, 0, -1)

	series, err := s.aggregator.Aggregate(locations, start, end, domain.GranularityDay)
	if err != nil {
		return nil, err
	}

	for _, locationSeries := range series {
		for _, record := range ComposeSeries(locationSeries, now) {
			summary.TotalRevenue = summary.TotalRevenue.Add(record.TotalRevenue)
			summary.TotalTransactions += record.TotalQuantity
		}
	}

	return summary, nil
}
