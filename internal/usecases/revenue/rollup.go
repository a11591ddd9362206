package revenue

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
)

// Summarize calcula soma/mínimo/máximo/média campo a campo sobre os períodos
// da série que possuem dados subjacentes. Linhas zeradas de preenchimento de
// lacuna não entram na estatística. Série sem nenhum período com dados não
// possui rollup: retorna nil em vez de dividir por zero.
func Summarize(series []*domain.PeriodRecord) *domain.RollupStats {
	var total, minimum, maximum *domain.PeriodTotals
	var count int64

	for _, record := range series {
		if !record.HasData {
			continue
		}

		totals := recordTotals(record)

		if count == 0 {
			total = totals
			minimum = recordTotals(record)
			maximum = recordTotals(record)
		} else {
			addTotals(total, totals)
			minTotals(minimum, totals)
			maxTotals(maximum, totals)
		}
		count++
	}

	if count == 0 {
		return nil
	}

	divisor := decimal.NewFromInt(count)
	average := &domain.PeriodTotals{
		Cash:          total.Cash.Div(divisor),
		Prepaid:       total.Prepaid.Div(divisor),
		Member:        total.Member.Div(divisor),
		Manual:        total.Manual.Div(divisor),
		Problem:       total.Problem.Div(divisor),
		TotalRevenue:  total.TotalRevenue.Div(divisor),
		Casual:        total.Casual.Div(divisor),
		Pass:          total.Pass.Div(divisor),
		TotalQuantity: total.TotalQuantity.Div(divisor),
	}

	return &domain.RollupStats{
		Total:   total,
		Minimum: minimum,
		Maximum: maximum,
		Average: average,
	}
}

func recordTotals(record *domain.PeriodRecord) *domain.PeriodTotals {
	return &domain.PeriodTotals{
		Cash:          record.Cash,
		Prepaid:       record.Prepaid,
		Member:        record.Member,
		Manual:        record.Manual,
		Problem:       record.Problem,
		TotalRevenue:  record.TotalRevenue,
		Casual:        decimal.NewFromInt(record.Casual),
		Pass:          decimal.NewFromInt(record.Pass),
		TotalQuantity: decimal.NewFromInt(record.TotalQuantity),
	}
}

func addTotals(accumulated, totals *domain.PeriodTotals) {
	accumulated.Cash = accumulated.Cash.Add(totals.Cash)
	accumulated.Prepaid = accumulated.Prepaid.Add(totals.Prepaid)
	accumulated.Member = accumulated.Member.Add(totals.Member)
	accumulated.Manual = accumulated.Manual.Add(totals.Manual)
	accumulated.Problem = accumulated.Problem.Add(totals.Problem)
	accumulated.TotalRevenue = accumulated.TotalRevenue.Add(totals.TotalRevenue)
	accumulated.Casual = accumulated.Casual.Add(totals.Casual)
	accumulated.Pass = accumulated.Pass.Add(totals.Pass)
	accumulated.TotalQuantity = accumulated.TotalQuantity.Add(totals.TotalQuantity)
}

func minTotals(accumulated, totals *domain.PeriodTotals) {
	accumulated.Cash = decimal.Min(accumulated.Cash, totals.Cash)
	accumulated.Prepaid = decimal.Min(accumulated.Prepaid, totals.Prepaid)
	accumulated.Member = decimal.Min(accumulated.Member, totals.Member)
	accumulated.Manual = decimal.Min(accumulated.Manual, totals.Manual)
	accumulated.Problem = decimal.Min(accumulated.Problem, totals.Problem)
	accumulated.TotalRevenue = decimal.Min(accumulated.TotalRevenue, totals.TotalRevenue)
	accumulated.Casual = decimal.Min(accumulated.Casual, totals.Casual)
	accumulated.Pass = decimal.Min(accumulated.Pass, totals.Pass)
	accumulated.TotalQuantity = decimal.Min(accumulated.TotalQuantity, totals.TotalQuantity)
}

func maxTotals(accumulated, totals *domain.PeriodTotals) {
	accumulated.Cash = decimal.Max(accumulated.Cash, totals.Cash)
	accumulated.Prepaid = decimal.Max(accumulated.Prepaid, totals.Prepaid)
	accumulated.Member = decimal.Max(accumulated.Member, totals.Member)
	accumulated.Manual = decimal.Max(accumulated.Manual, totals.Manual)
	accumulated.Problem = decimal.Max(accumulated.Problem, totals.Problem)
	accumulated.TotalRevenue = decimal.Max(accumulated.TotalRevenue, totals.TotalRevenue)
	accumulated.Casual = decimal.Max(accumulated.Casual, totals.Casual)
	accumulated.Pass = decimal.Max(accumulated.Pass, totals.Pass)
	accumulated.TotalQuantity = decimal.Max(accumulated.TotalQuantity, totals.TotalQuantity)
}
