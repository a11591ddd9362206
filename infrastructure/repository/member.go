package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/parking-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
)

const (
	memberIncomeTable = "member_income mi"
)

// MemberRepository consulta a receita de mensalistas, sujeita à regra de
// divulgação. O repositório devolve os valores brutos; quem aplica a regra
// é o compositor.
type MemberRepository interface {
	SumByPeriod(locationIDs []int, start, end time.Time, granularity domain.Granularity) ([]*domain.MemberSums, error)
}

type memberRepository struct {
	conn *postgres.Connection
}

func NewMemberRepository(conn *postgres.Connection) MemberRepository {
	return &memberRepository{
		conn: conn,
	}
}

func (r *memberRepository) SumByPeriod(locationIDs []int, start, end time.Time, granularity domain.Granularity) ([]*domain.MemberSums, error) {
	period := periodExpr("mi.date", granularity)

	query, args, err := squirrel.
		Select(
			"mi.location_id",
			period+" AS period",
			"COALESCE(SUM(mi.member), 0) AS member",
		).
		From(memberIncomeTable).
		Where(squirrel.Eq{"mi.location_id": locationIDs}).
		Where(squirrel.GtOrEq{"mi.date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"mi.date": end.Format(time.DateOnly)}).
		GroupBy("mi.location_id", period).
		OrderBy("mi.location_id", "period").
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

	sums := make([]*domain.MemberSums, 0)
	for rows.Next() {
		entry := &domain.MemberSums{}
		if err := rows.Scan(&entry.LocationID, &entry.Period, &entry.Member); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear soma de mensalistas")
		}
		sums = append(sums, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sums, nil
}
