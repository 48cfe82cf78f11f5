package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ProductUseCase CRUD de catálogo de productos. El stock nunca se toca
// aquí: QuantityOnHand pertenece al motor del ledger.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create crea un producto con stock cero. Retorna ErrDuplicate si el SKU ya
// existe.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		SKU:            in.SKU,
		Name:           in.Name,
		Category:       in.Category,
		Price:          in.Price,
		QuantityOnHand: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto (nil si no existe).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, categoría y precio. SKU y stock son inmutables
// por esta vía.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: out, Limit: page.Limit, Offset: page.Offset}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		QuantityOnHand: p.QuantityOnHand,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
