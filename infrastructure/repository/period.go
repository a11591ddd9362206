package repository

import (
	"github.com/vfg2006/parking-revenue-api/internal/domain"
)

// periodExpr retorna a expressão SQL que trunca a coluna de data para a
// âncora do bucket da granularidade pedida
func periodExpr(column string, granularity domain.Granularity) string {
	switch granularity {
	case domain.GranularityMonth:
		return "date_trunc('month', " + column + ")::date"
	case domain.GranularityYear:
		return "date_trunc('year', " + column + ")::date"
	default:
		return column
	}
}
