package revenue

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
)

// Compose aplica a regra de divulgação ao componente de membros e deriva os
// totais do bucket:
//
//	total_revenue  = cash + prepaid + manual − problem + membro divulgado
//	total_quantity = casual + pass
//
// Cada entrada MemberMonth é avaliada pelo seu próprio mês-calendário; meses
// não divulgados contribuem zero. A entrada não é mutada.
func Compose(sums *domain.ComponentSums, now time.Time) *domain.PeriodRecord {
	member := decimal.Zero
	for _, monthly := range sums.MemberMonths {
		if MemberDisclosed(monthly.Month, now) {
			member = member.Add(monthly.Amount)
		}
	}

	total := sums.Cash.
		Add(sums.Prepaid).
		Add(sums.Manual).
		Sub(sums.Problem).
		Add(member)

	return &domain.PeriodRecord{
		Period:        sums.Period,
		Label:         sums.Granularity.PeriodLabel(sums.Period),
		Cash:          sums.Cash,
		Prepaid:       sums.Prepaid,
		Member:        member,
		Manual:        sums.Manual,
		Problem:       sums.Problem,
		TotalRevenue:  total,
		Casual:        sums.Casual,
		Pass:          sums.Pass,
		TotalQuantity: sums.Casual + sums.Pass,
		HasData:       sums.HasData,
	}
}

// ComposeSeries compõe todos os buckets de uma série preservando a ordem
func ComposeSeries(series *domain.LocationSeries, now time.Time) []*domain.PeriodRecord {
	records := make([]*domain.PeriodRecord, 0, len(series.Buckets))
	for _, bucket := range series.Buckets {
		records = append(records, Compose(bucket, now))
	}
	return records
}
