package revenue

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"github.com/vfg2006/parking-revenue-api/pkg/utils"
)

// ErrNoRealtimeData indica que nenhuma localização visível possui transação
// no log em tempo real. O handler converte em 404; não é uma falha interna.
var ErrNoRealtimeData = errors.New("nenhuma transação em tempo real encontrada")

// resolveSnapshot determina o instante as-of de uma localização: o maior
// recorded_at de hoje quando existe transação hoje, senão a transação mais
// recente de qualquer data. Localização que nunca transacionou retorna nil.
func (s *Service) resolveSnapshot(locationID int) (*domain.Snapshot, error) {
	now := s.nowFn()
	today := utils.DateOnly(now)

	instant, err := s.realtimeRepo.LatestInstantOn(locationID, today)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao resolver o instante de hoje")
	}

	if instant != nil {
		return &domain.Snapshot{
			AsOf:     *instant,
			AsOfDate: today,
			IsToday:  true,
		}, nil
	}

	latest, err := s.realtimeRepo.LatestTransaction(locationID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao resolver a última transação")
	}

	if latest == nil {
		return nil, nil
	}

	return &domain.Snapshot{
		AsOf:     latest.RecordedAt,
		AsOfDate: utils.DateOnly(latest.Date),
		IsToday:  false,
	}, nil
}

// RealtimeAll agrega o snapshot global (maior recorded_at entre as
// localizações visíveis) por categoria de veículo. A categoria MEMBER só
// entra quando o mês da data as-of já foi divulgado.
func (s *Service) RealtimeAll(claims *domain.Claims) ([]*domain.CategorySnapshot, error) {
	locations, err := s.visibleLocations(claims)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, ErrNoRealtimeData
	}

	locationIDs := domain.LocationIDs(locations)

	instant, err := s.realtimeRepo.LatestInstant(locationIDs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o último instante global")
	}
	if instant == nil {
		return nil, ErrNoRealtimeData
	}

	asOfDate := utils.DateOnly(*instant)
	disclosed := MemberDisclosed(asOfDate, s.nowFn())

	sums, err := s.realtimeRepo.SumByCategory(locationIDs, asOfDate, *instant, disclosed)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar o snapshot por categoria")
	}

	snapshots := make([]*domain.CategorySnapshot, 0, len(sums))
	for _, entry := range sums {
		snapshots = append(snapshots, &domain.CategorySnapshot{
			AsOf:            *instant,
			VehicleCategory: entry.VehicleCategory,
			Transactions:    entry.Transactions,
			Revenue:         entry.Revenue,
		})
	}

	return snapshots, nil
}

// RealtimeByLocation resolve o snapshot individualmente por localização
// (hoje primeiro, senão a última transação histórica) e devolve os totais
// achatados com o marcador as-of
func (s *Service) RealtimeByLocation(claims *domain.Claims) ([]*domain.LocationSnapshot, error) {
	locations, err := s.visibleLocations(claims)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()

	snapshots := make([]*domain.LocationSnapshot, 0, len(locations))
	for _, location := range locations {
		snapshot, err := s.resolveSnapshot(location.ID)
		if err != nil {
			return nil, err
		}

		if snapshot == nil {
			snapshots = append(snapshots, &domain.LocationSnapshot{
				Site: location.Site,
			})
			continue
		}

		disclosed := MemberDisclosed(snapshot.AsOfDate, now)

		totals, err := s.realtimeRepo.SumFlat([]int{location.ID}, snapshot.AsOfDate, snapshot.AsOf, disclosed)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao agregar o snapshot da localização")
		}

		asOf := snapshot.AsOf
		snapshots = append(snapshots, &domain.LocationSnapshot{
			Site:         location.Site,
			AsOf:         &asOf,
			AsOfDate:     snapshot.AsOfDate.Format("2006-01-02"),
			IsToday:      snapshot.IsToday,
			HasData:      true,
			Transactions: totals.Transactions,
			Revenue:      totals.Revenue,
		})
	}

	return snapshots, nil
}
