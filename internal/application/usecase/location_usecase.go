package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// LocationUseCase es el colaborador de registro de ubicaciones: siembra el
// catálogo por defecto y lo lista. El ledger solo lee este catálogo.
type LocationUseCase struct {
	locationRepo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo}
}

// defaultLocations catálogo inicial: exactamente una ubicación por rol
// operativo, incluida la loss requerida por los ajustes.
var defaultLocations = []struct {
	name string
	role string
}{
	{"Partners/Vendors", entity.LocationRoleVendor},
	{"WH/Stock", entity.LocationRoleInternal},
	{"Partners/Customers", entity.LocationRoleCustomer},
	{"Inventory Loss", entity.LocationRoleLoss},
}

// Seed crea las ubicaciones por defecto si el registro está vacío. Es
// idempotente: con ubicaciones existentes no hace nada.
func (uc *LocationUseCase) Seed() (*dto.SeedResponse, error) {
	count, err := uc.locationRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &dto.SeedResponse{Message: "el registro de ubicaciones ya fue sembrado"}, nil
	}
	now := time.Now()
	out := make([]dto.LocationResponse, 0, len(defaultLocations))
	for _, def := range defaultLocations {
		loc := &entity.Location{
			ID:        uuid.New().String(),
			Name:      def.name,
			Role:      def.role,
			CreatedAt: now,
		}
		if err := uc.locationRepo.Create(loc); err != nil {
			return nil, err
		}
		out = append(out, toLocationResponse(loc))
	}
	return &dto.SeedResponse{Message: "ubicaciones sembradas", Locations: out}, nil
}

// List lista todas las ubicaciones del registro.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, toLocationResponse(l))
	}
	return out, nil
}

func toLocationResponse(l *entity.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Role:      l.Role,
		CreatedAt: l.CreatedAt,
	}
}
