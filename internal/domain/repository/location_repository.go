package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// LocationRepository define el puerto del registro de ubicaciones.
// El ledger solo lee; la creación pertenece al colaborador de catálogo
// (seed). GetByRole se usa para resolver el singleton loss de los ajustes.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	// GetByRole devuelve la primera ubicación con el rol dado (nil si no hay).
	GetByRole(role string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	Count() (int, error)
}
