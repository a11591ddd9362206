package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/parking-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
)

const (
	parkingIncomeTable = "parking_income pi"
)

// LedgerRepository consulta o ledger diário de receita de estacionamento
// (uma linha por localização por dia, imutável após a ingestão)
type LedgerRepository interface {
	SumByPeriod(locationIDs []int, start, end time.Time, granularity domain.Granularity) ([]*domain.LedgerSums, error)
	DateBounds(locationIDs []int) (*time.Time, *time.Time, error)
}

type ledgerRepository struct {
	conn *postgres.Connection
}

func NewLedgerRepository(conn *postgres.Connection) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

// SumByPeriod agrega cash/prepaid/casual/pass por (localização, bucket).
// Buckets sem linhas não aparecem no resultado; o agregador preenche as
// lacunas com zeros.
func (r *ledgerRepository) SumByPeriod(locationIDs []int, start, end time.Time, granularity domain.Granularity) ([]*domain.LedgerSums, error) {
	period := periodExpr("pi.date", granularity)

	query, args, err := squirrel.
		Select(
			"pi.location_id",
			period+" AS period",
			"COALESCE(SUM(pi.cash), 0) AS cash",
			"COALESCE(SUM(pi.prepaid), 0) AS prepaid",
			"COALESCE(SUM(pi.casual_count), 0) AS casual_count",
			"COALESCE(SUM(pi.pass_count), 0) AS pass_count",
		).
		From(parkingIncomeTable).
		Where(squirrel.Eq{"pi.location_id": locationIDs}).
		Where(squirrel.GtOrEq{"pi.date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"pi.date": end.Format(time.DateOnly)}).
		GroupBy("pi.location_id", period).
		OrderBy("pi.location_id", "period").
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

	sums := make([]*domain.LedgerSums, 0)
	for rows.Next() {
		entry := &domain.LedgerSums{}
		err := rows.Scan(
			&entry.LocationID,
			&entry.Period,
			&entry.Cash,
			&entry.Prepaid,
			&entry.Casual,
			&entry.Pass,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear soma do ledger")
		}
		sums = append(sums, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sums, nil
}

// DateBounds retorna a menor e a maior data presentes no ledger para o
// conjunto de localizações. Ambas nulas quando não há linhas.
func (r *ledgerRepository) DateBounds(locationIDs []int) (*time.Time, *time.Time, error) {
	query, args, err := squirrel.
		Select("MIN(pi.date)", "MAX(pi.date)").
		From(parkingIncomeTable).
		Where(squirrel.Eq{"pi.location_id": locationIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao construir a query")
	}

	var earliest, latest sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&earliest, &latest); err != nil {
		return nil, nil, errors.Wrap(err, "erro ao consultar os limites de data do ledger")
	}

	if !earliest.Valid || !latest.Valid {
		return nil, nil, nil
	}

	return &earliest.Time, &latest.Time, nil
}
