package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/parking-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
)

const (
	locationsTable     = "locations l"
	userLocationsTable = "user_locations ul"
)

// LocationRepository resolve as localizações visíveis por usuário.
// Administradores enxergam todas as localizações ativas; os demais apenas
// as vinculadas em user_locations.
type LocationRepository interface {
	ListActive() ([]*domain.Location, error)
	ListByUser(userID int) ([]*domain.Location, error)
	ListSitesWithIncome(locationIDs []int) ([]string, error)
}

type locationRepository struct {
	conn *postgres.Connection
}

func NewLocationRepository(conn *postgres.Connection) LocationRepository {
	return &locationRepository{
		conn: conn,
	}
}

func (r *locationRepository) ListActive() ([]*domain.Location, error) {
	query, args, err := squirrel.
		Select("l.id", "l.site", "l.active").
		From(locationsTable).
		Where(squirrel.Eq{"l.active": true}).
		OrderBy("l.site").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.list(query, args)
}

func (r *locationRepository) ListByUser(userID int) ([]*domain.Location, error) {
	query, args, err := squirrel.
		Select("l.id", "l.site", "l.active").
		From(locationsTable).
		Join(userLocationsTable + " ON ul.location_id = l.id").
		Where(squirrel.Eq{"ul.user_id": userID, "l.active": true}).
		OrderBy("l.site").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.list(query, args)
}

// ListSitesWithIncome retorna os nomes distintos das localizações que já
// possuem lançamentos no ledger
func (r *locationRepository) ListSitesWithIncome(locationIDs []int) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT l.site").
		From(locationsTable).
		Join("parking_income pi ON pi.location_id = l.id").
		Where(squirrel.Eq{"l.id": locationIDs}).
		OrderBy("l.site").
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

	sites := make([]string, 0)
	for rows.Next() {
		var site string
		if err := rows.Scan(&site); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear site")
		}
		sites = append(sites, site)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sites, nil
}

func (r *locationRepository) list(query string, args []interface{}) ([]*domain.Location, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		location := &domain.Location{}
		if err := rows.Scan(&location.ID, &location.Site, &location.Active); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear localização")
		}
		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return locations, nil
}
