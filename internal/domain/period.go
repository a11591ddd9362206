package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodRecord é um período composto: componentes brutos (membro já filtrado
// pela regra de divulgação) mais os totais derivados.
type PeriodRecord struct {
	Period        time.Time       `json:"-"`
	Label         string          `json:"period"`
	Cash          decimal.Decimal `json:"cash"`
	Prepaid       decimal.Decimal `json:"prepaid"`
	Member        decimal.Decimal `json:"member"`
	Manual        decimal.Decimal `json:"manual"`
	Problem       decimal.Decimal `json:"problem"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Casual        int64           `json:"casual_count"`
	Pass          int64           `json:"pass_count"`
	TotalQuantity int64           `json:"total_quantity"`
	HasData       bool            `json:"-"`
}

// PeriodTotals espelha os campos numéricos de PeriodRecord para as
// estatísticas de rollup. Quantidades também são decimais porque a média
// pode ser fracionária.
type PeriodTotals struct {
	Cash          decimal.Decimal `json:"cash"`
	Prepaid       decimal.Decimal `json:"prepaid"`
	Member        decimal.Decimal `json:"member"`
	Manual        decimal.Decimal `json:"manual"`
	Problem       decimal.Decimal `json:"problem"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Casual        decimal.Decimal `json:"casual_count"`
	Pass          decimal.Decimal `json:"pass_count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// RollupStats são as estatísticas soma/mínimo/máximo/média de uma série.
// Uma série sem períodos com dados não possui rollup (o resolvedor retorna nil).
type RollupStats struct {
	Total   *PeriodTotals `json:"total"`
	Minimum *PeriodTotals `json:"minimum"`
	Maximum *PeriodTotals `json:"maximum"`
	Average *PeriodTotals `json:"average"`
}

// SeriesReport é a resposta por localização dos endpoints de detalhes
type SeriesReport struct {
	Series []*PeriodRecord `json:"series"`
	Stats  *RollupStats    `json:"stats,omitempty"`
}

// LocationTotal é o total composto de uma localização em um período (usado
// pelo endpoint de tendências anuais, que garante todas as localizações
// presentes mesmo com total zero)
type LocationTotal struct {
	Site  string          `json:"site"`
	Total decimal.Decimal `json:"total"`
}
