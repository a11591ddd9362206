package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleCategoryMember é a categoria distinta sujeita à regra de divulgação
const VehicleCategoryMember = "MEMBER"

// RealtimeTransaction é um evento do log intradiário (append-only)
type RealtimeTransaction struct {
	ID              int
	LocationID      int
	Date            time.Time
	RecordedAt      time.Time
	VehicleCategory string
	Quantity        int64
	Amount          decimal.Decimal
}

// CategorySums é a agregação do snapshot por categoria de veículo
type CategorySums struct {
	VehicleCategory string
	Transactions    int64
	Revenue         decimal.Decimal
}

// RealtimeTotals é a visão achatada (todas as categorias) de um snapshot
type RealtimeTotals struct {
	Transactions int64
	Revenue      decimal.Decimal
}

// Snapshot marca o instante "as-of" resolvido para uma localização.
// É distinto de uma localização com receita zero: localizações sem nenhuma
// transação não possuem snapshot.
type Snapshot struct {
	AsOf     time.Time
	AsOfDate time.Time
	IsToday  bool
}

// CategorySnapshot é um item da resposta do endpoint realtime agregado
type CategorySnapshot struct {
	AsOf            time.Time       `json:"as_of"`
	VehicleCategory string          `json:"vehicle_category"`
	Transactions    int64           `json:"transactions"`
	Revenue         decimal.Decimal `json:"revenue"`
}

// LocationSnapshot é a visão achatada por localização com o marcador as-of.
// Localizações que nunca transacionaram aparecem com HasData=false e marcador
// nulo, distintas de localizações com receita zero.
type LocationSnapshot struct {
	Site         string          `json:"site"`
	AsOf         *time.Time      `json:"as_of"`
	AsOfDate     string          `json:"as_of_date,omitempty"`
	IsToday      bool            `json:"is_today"`
	HasData      bool            `json:"has_data"`
	Transactions int64           `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// TrailingSummary é a resposta dos cards de resumo: hoje via log realtime,
// histórico (6 dias anteriores) via agregação diária do ledger
type TrailingSummary struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TodayRevenue      decimal.Decimal `json:"today_revenue"`
	TotalTransactions int64           `json:"total_transactions"`
	TodayTransactions int64           `json:"today_transactions"`
	AsOf              time.Time       `json:"as_of"`
}
