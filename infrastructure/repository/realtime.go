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
	realtimeRevenueTable = "realtime_revenue rr"
)

// RealtimeRepository consulta o log intradiário de transações (append-only).
// As agregações de snapshot recebem o flag memberDisclosed já decidido pela
// regra de divulgação; quando falso, a categoria MEMBER é excluída.
type RealtimeRepository interface {
	LatestInstant(locationIDs []int) (*time.Time, error)
	LatestInstantOn(locationID int, date time.Time) (*time.Time, error)
	LatestTransaction(locationID int) (*domain.RealtimeTransaction, error)
	SumByCategory(locationIDs []int, date time.Time, until time.Time, memberDisclosed bool) ([]*domain.CategorySums, error)
	SumFlat(locationIDs []int, date time.Time, until time.Time, memberDisclosed bool) (*domain.RealtimeTotals, error)
	DeleteOlderThan(days int) (int64, error)
}

type realtimeRepository struct {
	conn *postgres.Connection
}

func NewRealtimeRepository(conn *postgres.Connection) RealtimeRepository {
	return &realtimeRepository{
		conn: conn,
	}
}

// LatestInstant retorna o maior recorded_at do conjunto de localizações,
// ou nil quando nunca houve transação
func (r *realtimeRepository) LatestInstant(locationIDs []int) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(rr.recorded_at)").
		From(realtimeRevenueTable).
		Where(squirrel.Eq{"rr.location_id": locationIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var latest sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&latest); err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o último instante")
	}

	if !latest.Valid {
		return nil, nil
	}

	return &latest.Time, nil
}

// LatestInstantOn retorna o maior recorded_at de uma localização em uma data
func (r *realtimeRepository) LatestInstantOn(locationID int, date time.Time) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(rr.recorded_at)").
		From(realtimeRevenueTable).
		Where(squirrel.Eq{"rr.location_id": locationID, "rr.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var latest sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&latest); err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o último instante da data")
	}

	if !latest.Valid {
		return nil, nil
	}

	return &latest.Time, nil
}

// LatestTransaction retorna a transação mais recente de uma localização em
// qualquer data, ou nil quando a localização nunca transacionou
func (r *realtimeRepository) LatestTransaction(locationID int) (*domain.RealtimeTransaction, error) {
	query, args, err := squirrel.
		Select("rr.id", "rr.location_id", "rr.date", "rr.recorded_at", "rr.vehicle_category", "rr.quantity", "rr.amount").
		From(realtimeRevenueTable).
		Where(squirrel.Eq{"rr.location_id": locationID}).
		OrderBy("rr.date DESC", "rr.recorded_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	tx := &domain.RealtimeTransaction{}
	err = r.conn.QueryRow(query, args...).Scan(
		&tx.ID,
		&tx.LocationID,
		&tx.Date,
		&tx.RecordedAt,
		&tx.VehicleCategory,
		&tx.Quantity,
		&tx.Amount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear a última transação")
	}

	return tx, nil
}

// SumByCategory agrega o snapshot (data as-of, recorded_at <= instante as-of)
// por categoria de veículo
func (r *realtimeRepository) SumByCategory(locationIDs []int, date time.Time, until time.Time, memberDisclosed bool) ([]*domain.CategorySums, error) {
	builder := squirrel.
		Select(
			"rr.vehicle_category",
			"COALESCE(SUM(rr.quantity), 0) AS transactions",
			"COALESCE(SUM(rr.amount), 0) AS revenue",
		).
		From(realtimeRevenueTable).
		Where(squirrel.Eq{"rr.location_id": locationIDs, "rr.date": date.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"rr.recorded_at": until}).
		GroupBy("rr.vehicle_category").
		OrderBy("rr.vehicle_category")

	if !memberDisclosed {
		builder = builder.Where(squirrel.NotEq{"rr.vehicle_category": domain.VehicleCategoryMember})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	sums := make([]*domain.CategorySums, 0)
	for rows.Next() {
		entry := &domain.CategorySums{}
		if err := rows.Scan(&entry.VehicleCategory, &entry.Transactions, &entry.Revenue); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear soma por categoria")
		}
		sums = append(sums, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sums, nil
}

// SumFlat agrega o snapshot achatando todas as categorias
func (r *realtimeRepository) SumFlat(locationIDs []int, date time.Time, until time.Time, memberDisclosed bool) (*domain.RealtimeTotals, error) {
	builder := squirrel.
		Select(
			"COALESCE(SUM(rr.quantity), 0) AS transactions",
			"COALESCE(SUM(rr.amount), 0) AS revenue",
		).
		From(realtimeRevenueTable).
		Where(squirrel.Eq{"rr.location_id": locationIDs, "rr.date": date.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"rr.recorded_at": until})

	if !memberDisclosed {
		builder = builder.Where(squirrel.NotEq{"rr.vehicle_category": domain.VehicleCategoryMember})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	totals := &domain.RealtimeTotals{}
	if err := r.conn.QueryRow(query, args...).Scan(&totals.Transactions, &totals.Revenue); err != nil {
		return nil, errors.Wrap(err, "erro ao escanear totais do snapshot")
	}

	return totals, nil
}

// DeleteOlderThan expurga transações com data anterior à janela de retenção
func (r *realtimeRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("realtime_revenue").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao executar a query")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	return rowsAffected, nil
}
