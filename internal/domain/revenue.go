package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity define o tamanho do bucket de agregação
type Granularity int

const (
	GranularityDay Granularity = iota
	GranularityMonth
	GranularityYear
)

// PeriodLabel formata a âncora do período conforme a granularidade
func (g Granularity) PeriodLabel(period time.Time) string {
	switch g {
	case GranularityMonth:
		return period.Format("2006-01")
	case GranularityYear:
		return period.Format("2006")
	default:
		return period.Format(time.DateOnly)
	}
}

// LedgerSums é o resultado agregado da tabela parking_income para um bucket
type LedgerSums struct {
	LocationID int
	Period     time.Time
	Cash       decimal.Decimal
	Prepaid    decimal.Decimal
	Casual     int64
	Pass       int64
}

// MemberSums é o resultado agregado da tabela member_income para um bucket
type MemberSums struct {
	LocationID int
	Period     time.Time
	Member     decimal.Decimal
}

// ManualSums é o resultado agregado da tabela manual_income para um bucket
type ManualSums struct {
	LocationID int
	Period     time.Time
	Manual     decimal.Decimal
	Problem    decimal.Decimal
}

// MemberMonth guarda a receita de membros de um mês-calendário dentro de um
// bucket. A regra de divulgação é sempre avaliada mês a mês, então buckets
// anuais carregam até doze entradas e buckets diários/mensais apenas uma.
type MemberMonth struct {
	Month  time.Time
	Amount decimal.Decimal
}

// ComponentSums reúne os componentes brutos de um bucket (location, período)
// antes da composição. Valores monetários nunca são nulos: buckets sem linhas
// subjacentes carregam zeros e HasData=false.
type ComponentSums struct {
	Location     *Location
	Period       time.Time
	Granularity  Granularity
	Cash         decimal.Decimal
	Prepaid      decimal.Decimal
	Manual       decimal.Decimal
	Problem      decimal.Decimal
	Casual       int64
	Pass         int64
	MemberMonths []MemberMonth
	HasData      bool
}

// LocationSeries é a série ordenada de buckets de uma localização
type LocationSeries struct {
	Location *Location
	Buckets  []*ComponentSums
}
