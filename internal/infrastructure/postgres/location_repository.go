package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `INSERT INTO locations (id, name, role, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Role, location.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `SELECT id, name, role, created_at FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(&l.ID, &l.Name, &l.Role, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// GetByRole obtiene la primera ubicación con el rol dado, la más antigua si
// hay varias. nil si no hay ninguna.
func (r *LocationRepo) GetByRole(role string) (*entity.Location, error) {
	query := `SELECT id, name, role, created_at FROM locations WHERE role = $1 ORDER BY created_at ASC LIMIT 1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, role).Scan(&l.ID, &l.Name, &l.Role, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by role: %w", err)
	}
	return &l, nil
}

// List devuelve todas las ubicaciones ordenadas por nombre.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	query := `SELECT id, name, role, created_at FROM locations ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Role, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, &l)
	}
	return locations, rows.Err()
}

// Count devuelve el total de ubicaciones registradas.
func (r *LocationRepo) Count() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM locations`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return count, nil
}
