package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	bySKU map[string]*entity.Product
	byID  map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{
		bySKU: make(map[string]*entity.Product),
		byID:  make(map[string]*entity.Product),
	}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.bySKU[p.SKU] = &cp
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	p, ok := r.bySKU[sku]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	existing, ok := r.byID[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = p.Name
	existing.Category = p.Category
	existing.Price = p.Price
	existing.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *memProductRepo) UpdateQuantity(id string, qty decimal.Decimal) error {
	existing, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	existing.QuantityOnHand = qty
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type memLocationRepo struct {
	locations []*entity.Location
}

func (r *memLocationRepo) Create(l *entity.Location) error {
	cp := *l
	r.locations = append(r.locations, &cp)
	return nil
}

func (r *memLocationRepo) GetByID(id string) (*entity.Location, error) {
	for _, l := range r.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *memLocationRepo) GetByRole(role string) (*entity.Location, error) {
	for _, l := range r.locations {
		if l.Role == role {
			return l, nil
		}
	}
	return nil, nil
}

func (r *memLocationRepo) List() ([]*entity.Location, error) { return r.locations, nil }
func (r *memLocationRepo) Count() (int, error)               { return len(r.locations), nil }

// ──────────────────────────────────────────────────────────────────────────────
// ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_StockInicialCero(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		SKU:   "SKU-001",
		Name:  "Tornillo M8",
		Price: decimal.NewFromFloat(1.50),
	})
	require.NoError(t, err)

	assert.True(t, out.QuantityOnHand.IsZero(),
		"el stock inicial siempre es cero; solo el ledger lo mueve")
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "SKU-001", out.SKU)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Tornillo"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Otro tornillo"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		SKU: "SKU-001", Name: "Tornillo", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaSKUNiStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Tornillo"})
	require.NoError(t, err)
	// El ledger movió stock después de la creación.
	require.NoError(t, repo.UpdateQuantity(created.ID, decimal.NewFromInt(42)))

	newPrice := decimal.NewFromFloat(2.75)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  "Tornillo M8 galvanizado",
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tornillo M8 galvanizado", out.Name)
	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "SKU-001", out.SKU, "el SKU es inmutable")
	assert.True(t, out.QuantityOnHand.Equal(decimal.NewFromInt(42)),
		"la caché de stock no debe cambiar por una actualización de catálogo")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// LocationUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_CreaUnaUbicacionPorRolOperativo(t *testing.T) {
	repo := &memLocationRepo{}
	uc := NewLocationUseCase(repo)

	out, err := uc.Seed()
	require.NoError(t, err)
	require.Len(t, out.Locations, 4)

	roles := map[string]bool{}
	for _, l := range out.Locations {
		roles[l.Role] = true
	}
	assert.True(t, roles[entity.LocationRoleVendor])
	assert.True(t, roles[entity.LocationRoleInternal])
	assert.True(t, roles[entity.LocationRoleCustomer])
	assert.True(t, roles[entity.LocationRoleLoss],
		"el seed debe incluir la ubicación de pérdidas que requieren los ajustes")
}

func TestSeed_Idempotente(t *testing.T) {
	repo := &memLocationRepo{}
	uc := NewLocationUseCase(repo)

	_, err := uc.Seed()
	require.NoError(t, err)

	again, err := uc.Seed()
	require.NoError(t, err)
	assert.Empty(t, again.Locations, "el segundo seed no debe crear nada")

	count, _ := repo.Count()
	assert.Equal(t, 4, count)
}
