package revenue

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/parking-revenue-api/infrastructure/repository"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"github.com/vfg2006/parking-revenue-api/pkg/utils"
)

// Aggregator soma as tabelas de receita (ledger, membros, manuais) em buckets
// por localização e período. Buckets sem linhas subjacentes entram na série
// com componentes zerados e HasData=false, de modo que os chamadores nunca
// precisam rederivar períodos ausentes.
type Aggregator struct {
	ledgerRepo repository.LedgerRepository
	memberRepo repository.MemberRepository
	manualRepo repository.ManualRepository
}

func NewAggregator(
	ledgerRepo repository.LedgerRepository,
	memberRepo repository.MemberRepository,
	manualRepo repository.ManualRepository,
) *Aggregator {
	return &Aggregator{
		ledgerRepo: ledgerRepo,
		memberRepo: memberRepo,
		manualRepo: manualRepo,
	}
}

// Aggregate monta a série completa [start, end] na granularidade pedida para
// cada localização, ordenada por localização e período ascendente.
//
// O componente de membros é sempre carregado mês a mês quando a granularidade
// é anual: a regra de divulgação avalia cada mês-calendário separadamente,
// então um bucket anual carrega até doze entradas MemberMonth. Uma única
// query em lote cobre o intervalo inteiro; o fatiamento por bucket acontece
// em memória via índice por chave, não por varredura aninhada.
func (a *Aggregator) Aggregate(locations []*domain.Location, start, end time.Time, granularity domain.Granularity) ([]*domain.LocationSeries, error) {
	if len(locations) == 0 {
		return []*domain.LocationSeries{}, nil
	}

	locationIDs := domain.LocationIDs(locations)

	ledgerSums, err := a.ledgerRepo.SumByPeriod(locationIDs, start, end, granularity)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar o ledger")
	}

	memberGranularity := granularity
	if granularity == domain.GranularityYear {
		memberGranularity = domain.GranularityMonth
	}

	memberSums, err := a.memberRepo.SumByPeriod(locationIDs, start, end, memberGranularity)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar a receita de membros")
	}

	manualSums, err := a.manualRepo.SumByPeriod(locationIDs, start, end, granularity)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar os lançamentos manuais")
	}

	ledgerIndex := make(map[string]*domain.LedgerSums, len(ledgerSums))
	for _, entry := range ledgerSums {
		ledgerIndex[bucketKey(entry.LocationID, entry.Period)] = entry
	}

	manualIndex := make(map[string]*domain.ManualSums, len(manualSums))
	for _, entry := range manualSums {
		manualIndex[bucketKey(entry.LocationID, entry.Period)] = entry
	}

	// Entradas de membros são indexadas pela âncora do bucket que as contém:
	// na granularidade anual os meses se acumulam sob o primeiro dia do ano
	memberIndex := make(map[string][]*domain.MemberSums, len(memberSums))
	for _, entry := range memberSums {
		anchor := entry.Period
		if granularity == domain.GranularityYear {
			anchor = utils.YearStart(entry.Period)
		}
		key := bucketKey(entry.LocationID, anchor)
		memberIndex[key] = append(memberIndex[key], entry)
	}

	periods := periodRange(start, end, granularity)

	series := make([]*domain.LocationSeries, 0, len(locations))
	for _, location := range locations {
		buckets := make([]*domain.ComponentSums, 0, len(periods))

		for _, period := range periods {
			key := bucketKey(location.ID, period)

			bucket := &domain.ComponentSums{
				Location:    location,
				Period:      period,
				Granularity: granularity,
			}

			if entry, ok := ledgerIndex[key]; ok {
				bucket.Cash = entry.Cash
				bucket.Prepaid = entry.Prepaid
				bucket.Casual = entry.Casual
				bucket.Pass = entry.Pass
				bucket.HasData = true
			}

			if entry, ok := manualIndex[key]; ok {
				bucket.Manual = entry.Manual
				bucket.Problem = entry.Problem
				bucket.HasData = true
			}

			for _, entry := range memberIndex[key] {
				bucket.MemberMonths = append(bucket.MemberMonths, domain.MemberMonth{
					Month:  utils.MonthStart(entry.Period),
					Amount: entry.Member,
				})
				bucket.HasData = true
			}

			buckets = append(buckets, bucket)
		}

		series = append(series, &domain.LocationSeries{
			Location: location,
			Buckets:  buckets,
		})
	}

	return series, nil
}

func bucketKey(locationID int, period time.Time) string {
	return fmt.Sprintf("%d|%s", locationID, period.Format(time.DateOnly))
}

// periodRange enumera as âncoras de bucket cobrindo [start, end]
func periodRange(start, end time.Time, granularity domain.Granularity) []time.Time {
	var cursor time.Time
	switch granularity {
	case domain.GranularityMonth:
		cursor = utils.MonthStart(start)
	case domain.GranularityYear:
		cursor = utils.YearStart(start)
	default:
		cursor = utils.DateOnly(start)
	}

	periods := make([]time.Time, 0)
	for !cursor.After(end) {
		periods = append(periods, cursor)

		switch granularity {
		case domain.GranularityMonth:
			cursor = cursor.AddDate(0, 1, 0)
		case domain.GranularityYear:
			cursor = cursor.AddDate(1, 0, 0)
		default:
			cursor = cursor.AddDate(0, 0, 1)
		}
	}

	return periods
}
