package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/parking-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
)

const (
	manualIncomeTable = "manual_income ma"
)

// ManualRepository consulta ajustes manuais e deduções de tíquetes com problema
type ManualRepository interface {
	SumByPeriod(locationIDs []int, start, end time.Time, granularity domain.Granularity) ([]*domain.ManualSums, error)
}

type manualRepository struct {
	conn *postgres.Connection
}

func NewManualRepository(conn *postgres.Connection) ManualRepository {
	return &manualRepository{
		conn: conn,
	}
}

func (r *manualRepository) SumByPeriod(locationIDs []int, start, end time.Time, granularity domain.Granularity) ([]*domain.ManualSums, error) {
	period := periodExpr("ma.date", granularity)

	query, args, err := squirrel.
		Select(
			"ma.location_id",
			period+" AS period",
			"COALESCE(SUM(ma.manual), 0) AS manual",
			"COALESCE(SUM(ma.problem), 0) AS problem",
		).
		From(manualIncomeTable).
		Where(squirrel.Eq{"ma.location_id": locationIDs}).
		Where(squirrel.GtOrEq{"ma.date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ma.date": end.Format(time.DateOnly)}).
		GroupBy("ma.location_id", period).
		OrderBy("ma.location_id", "period").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	sums := make([]*domain.ManualSums, 0)
	for rows.Next() {
		entry := &domain.ManualSums{}
		if err := rows.Scan(&entry.LocationID, &entry.Period, &entry.Manual, &entry.Problem); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear soma de ajustes manuais")
		}
		sums = append(sums, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sums, nil
}
