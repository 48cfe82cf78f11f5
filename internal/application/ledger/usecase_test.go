package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore implementa TxRunner, ProductRepository y LocationRepository sobre
// mapas. Run serializa con un mutex (equivalente al SELECT FOR UPDATE de la
// implementación PostgreSQL) y revierte las escrituras si fn falla, de modo
// que las propiedades de atomicidad sean observables en los tests.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	locations map[string]*entity.Location
	moves     []*entity.StockMove

	failMoveCreate error // si no es nil, Create de movimientos falla
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  map[string]*entity.Product{},
		locations: map[string]*entity.Location{},
	}
}

func (s *fakeStore) addProduct(id, sku string, qty string) {
	s.products[id] = &entity.Product{
		ID: id, SKU: sku, Name: sku,
		QuantityOnHand: dec(qty),
	}
}

func (s *fakeStore) addLocation(id, name, role string) {
	s.locations[id] = &entity.Location{ID: id, Name: name, Role: role}
}

// Run ejecuta fn bajo el mutex global del store y revierte si falla.
func (s *fakeStore) Run(_ context.Context, fn func(
	moveRepo repository.StockMoveRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backupQty := map[string]decimal.Decimal{}
	for id, p := range s.products {
		backupQty[id] = p.QuantityOnHand
	}
	backupMoves := len(s.moves)

	if err := fn(&fakeMoveRepo{s: s}, &fakeProductRepo{s: s, locked: true}); err != nil {
		for id, qty := range backupQty {
			s.products[id].QuantityOnHand = qty
		}
		s.moves = s.moves[:backupMoves]
		return err
	}
	return nil
}

type fakeProductRepo struct {
	s      *fakeStore
	locked bool // true cuando está atado a una "transacción"
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if !r.locked {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	if !r.locked {
		return nil, errors.New("GetForUpdate fuera de transacción")
	}
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (r *fakeProductRepo) UpdateQuantity(productID string, qty decimal.Decimal) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.QuantityOnHand = qty
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

type fakeMoveRepo struct{ s *fakeStore }

func (r *fakeMoveRepo) Create(m *entity.StockMove) error {
	if r.s.failMoveCreate != nil {
		return r.s.failMoveCreate
	}
	r.s.moves = append(r.s.moves, m)
	return nil
}

func (r *fakeMoveRepo) GetByID(id string) (*entity.StockMove, error) {
	for _, m := range r.s.moves {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMoveRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMove, error) {
	var out []*entity.StockMove
	for i := len(r.s.moves) - 1; i >= 0; i-- {
		if r.s.moves[i].ProductID == productID {
			out = append(out, r.s.moves[i])
		}
	}
	return out, nil
}

type fakeLocationRepo struct{ s *fakeStore }

func (r *fakeLocationRepo) Create(l *entity.Location) error { r.s.locations[l.ID] = l; return nil }

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}

func (r *fakeLocationRepo) GetByRole(role string) (*entity.Location, error) {
	for _, l := range r.s.locations {
		if l.Role == role {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) List() ([]*entity.Location, error) { return nil, nil }
func (r *fakeLocationRepo) Count() (int, error)               { return len(r.s.locations), nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	vendorID   = "loc-vendor"
	stockID    = "loc-stock"
	stock2ID   = "loc-stock-2"
	customerID = "loc-customer"
	lossID     = "loc-loss"
	productID  = "prod-1"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// newEngine arma el motor sobre un store ya sembrado con las cuatro
// ubicaciones por defecto más una segunda bodega interna.
func newEngine(t *testing.T, initialStock string) (*appledger.UseCase, *fakeStore) {
	t.Helper()
	s := newFakeStore()
	s.addLocation(vendorID, "Partners/Vendors", entity.LocationRoleVendor)
	s.addLocation(stockID, "WH/Stock", entity.LocationRoleInternal)
	s.addLocation(stock2ID, "WH/Stock 2", entity.LocationRoleInternal)
	s.addLocation(customerID, "Partners/Customers", entity.LocationRoleCustomer)
	s.addLocation(lossID, "Inventory Loss", entity.LocationRoleLoss)
	s.addProduct(productID, "SKU-001", initialStock)
	uc := appledger.NewUseCase(s, &fakeProductRepo{s: s}, &fakeLocationRepo{s: s})
	return uc, s
}

func mustMove(t *testing.T, uc *appledger.UseCase, sourceID, destID, qty, typ string) decimal.Decimal {
	t.Helper()
	got, err := uc.ApplyMovement(context.Background(), appledger.MovementInput{
		ProductID: productID, SourceID: sourceID, DestID: destID,
		Quantity: dec(qty), Type: typ,
	})
	require.NoError(t, err)
	return got
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo de la regla de dirección: recepción, entrega, rechazo
// por stock insuficiente, transferencia interna neutra y ajuste negativo.
func TestApplyMovement_Escenario(t *testing.T) {
	uc, s := newEngine(t, "0")

	// Recepción de 50 desde proveedor → stock 50
	got := mustMove(t, uc, vendorID, stockID, "50", entity.MoveTypeReceipt)
	assert.True(t, dec("50").Equal(got))

	// Entrega de 20 a cliente → stock 30
	got = mustMove(t, uc, stockID, customerID, "20", entity.MoveTypeDelivery)
	assert.True(t, dec("30").Equal(got))

	// Entrega de 40 → stock insuficiente, sin cambio de estado
	_, err := uc.ApplyMovement(context.Background(), appledger.MovementInput{
		ProductID: productID, SourceID: stockID, DestID: customerID,
		Quantity: dec("40"), Type: entity.MoveTypeDelivery,
	})
	ise, ok := domain.IsInsufficientStock(err)
	require.True(t, ok, "se espera InsufficientStockError, obtuvo %v", err)
	assert.True(t, dec("30").Equal(ise.Available))
	assert.True(t, dec("40").Equal(ise.Requested))
	assert.Len(t, s.moves, 2, "el rechazo no debe registrar movimiento")
	assert.True(t, dec("30").Equal(s.products[productID].QuantityOnHand))

	// Transferencia interna de 10 → el total global no cambia
	got = mustMove(t, uc, stockID, stock2ID, "10", entity.MoveTypeInternal)
	assert.True(t, dec("30").Equal(got))
	assert.Len(t, s.moves, 3, "la transferencia sí queda en el historial")

	// Ajuste: conteo físico 25 → diferencia -5, movimiento hacia loss
	res, err := uc.ApplyAdjustment(context.Background(), appledger.AdjustmentInput{
		ProductID: productID, LocationID: stockID, CountedQty: dec("25"),
	})
	require.NoError(t, err)
	assert.True(t, dec("30").Equal(res.CurrentQty))
	assert.True(t, dec("-5").Equal(res.Difference))
	assert.True(t, dec("25").Equal(res.NewQty))

	last := s.moves[len(s.moves)-1]
	assert.Equal(t, entity.MoveTypeAdjustment, last.Type)
	assert.Equal(t, stockID, last.SourceID, "merma: origen es la ubicación contada")
	assert.Equal(t, lossID, last.DestID)
	assert.True(t, dec("5").Equal(last.Quantity))
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	uc, _ := newEngine(t, "0")
	_, err := uc.ApplyMovement(context.Background(), appledger.MovementInput{
		ProductID: "prod-nope", SourceID: vendorID, DestID: stockID,
		Quantity: dec("1"), Type: entity.MoveTypeReceipt,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_UbicacionInexistente(t *testing.T) {
	uc, s := newEngine(t, "10")
	_, err := uc.ApplyMovement(context.Background(), appledger.MovementInput{
		ProductID: productID, SourceID: "loc-nope", DestID: stockID,
		Quantity: dec("1"), Type: entity.MoveTypeReceipt,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.moves)
}

// customer/loss como origen no tienen regla: se rechazan antes de abrir tx.
func TestApplyMovement_OrigenNoSoportado(t *testing.T) {
	uc, s := newEngine(t, "10")
	for _, src := range []string{customerID, lossID} {
		_, err := uc.ApplyMovement(context.Background(), appledger.MovementInput{
			ProductID: productID, SourceID: src, DestID: stockID,
			Quantity: dec("1"), Type: entity.MoveTypeReceipt,
		})
		assert.ErrorIs(t, err, domain.ErrUnsupportedMovement, "origen %s", src)
	}
	assert.Empty(t, s.moves)
	assert.True(t, dec("10").Equal(s.products[productID].QuantityOnHand))
}

func TestApplyMovement_ValidacionEntrada(t *testing.T) {
	uc, _ := newEngine(t, "10")

	// cantidad negativa
	_, err := uc.ApplyMovement(context.Background(), appledger.MovementInput{
		ProductID: productID, SourceID: vendorID, DestID: stockID,
		Quantity: dec("-3"), Type: entity.MoveTypeReceipt,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// tipo fuera de la enumeración
	_, err = uc.ApplyMovement(context.Background(), appledger.MovementInput{
		ProductID: productID, SourceID: vendorID, DestID: stockID,
		Quantity: dec("3"), Type: "transfer",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// campos faltantes se rechazan antes de cualquier lookup
	_, err = uc.ApplyMovement(context.Background(), appledger.MovementInput{
		ProductID: productID, SourceID: vendorID,
		Quantity: dec("3"), Type: entity.MoveTypeReceipt,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si el insert del movimiento falla, la cantidad ya actualizada se revierte:
// nunca se observa un efecto sin su movimiento ni al revés.
func TestApplyMovement_AtomicidadAnteFallo(t *testing.T) {
	uc, s := newEngine(t, "10")
	s.failMoveCreate = errors.New("insert falló")

	_, err := uc.ApplyMovement(context.Background(), appledger.MovementInput{
		ProductID: productID, SourceID: vendorID, DestID: stockID,
		Quantity: dec("5"), Type: entity.MoveTypeReceipt,
	})
	require.Error(t, err)
	assert.True(t, dec("10").Equal(s.products[productID].QuantityOnHand),
		"rollback: la cantidad no debe cambiar")
	assert.Empty(t, s.moves)
}

// N requests concurrentes de 1 unidad contra stock K (N > K): exactamente K
// éxitos, N-K rechazos por stock insuficiente y cantidad final 0 (nunca
// negativa). Este es el hazard de doble gasto que el lock de fila cierra.
func TestApplyMovement_ConcurrenciaSinDobleGasto(t *testing.T) {
	const (
		stockInicial = 5
		requests     = 12
	)
	uc, s := newEngine(t, "5")

	var wg sync.WaitGroup
	errs := make([]error, requests)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.ApplyMovement(context.Background(), appledger.MovementInput{
				ProductID: productID, SourceID: stockID, DestID: customerID,
				Quantity: dec("1"), Type: entity.MoveTypeDelivery,
			})
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			_, is := domain.IsInsufficientStock(err)
			require.True(t, is, "error inesperado: %v", err)
			insufficient++
		}
	}
	assert.Equal(t, stockInicial, ok)
	assert.Equal(t, requests-stockInicial, insufficient)
	assert.True(t, s.products[productID].QuantityOnHand.IsZero(),
		"cantidad final debe ser exactamente 0, obtuvo %s", s.products[productID].QuantityOnHand)
	assert.Len(t, s.moves, stockInicial)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyAdjustment
// ──────────────────────────────────────────────────────────────────────────────

// Conteo igual a la cantidad actual: movimiento de cantidad cero (para
// auditoría) y caché intacta. Repetir el mismo conteo vuelve a dar
// diferencia 0.
func TestApplyAdjustment_Idempotencia(t *testing.T) {
	uc, s := newEngine(t, "30")

	for i := 0; i < 2; i++ {
		res, err := uc.ApplyAdjustment(context.Background(), appledger.AdjustmentInput{
			ProductID: productID, LocationID: stockID, CountedQty: dec("30"),
		})
		require.NoError(t, err)
		assert.True(t, res.Difference.IsZero(), "iteración %d", i)
		assert.True(t, dec("30").Equal(res.NewQty))
	}
	require.Len(t, s.moves, 2)
	for _, m := range s.moves {
		assert.True(t, m.Quantity.IsZero())
		assert.Equal(t, lossID, m.SourceID, "delta cero: origen loss por convención")
		assert.Equal(t, stockID, m.DestID)
	}
	assert.True(t, dec("30").Equal(s.products[productID].QuantityOnHand))
}

// Conteo mayor al actual: el stock se materializa desde loss.
func TestApplyAdjustment_Sobrante(t *testing.T) {
	uc, s := newEngine(t, "10")

	res, err := uc.ApplyAdjustment(context.Background(), appledger.AdjustmentInput{
		ProductID: productID, LocationID: stockID, CountedQty: dec("17"),
	})
	require.NoError(t, err)
	assert.True(t, dec("7").Equal(res.Difference))

	last := s.moves[len(s.moves)-1]
	assert.Equal(t, lossID, last.SourceID)
	assert.Equal(t, stockID, last.DestID)
	assert.True(t, dec("7").Equal(last.Quantity))
	assert.True(t, dec("17").Equal(s.products[productID].QuantityOnHand))
}

func TestApplyAdjustment_SinUbicacionLoss(t *testing.T) {
	s := newFakeStore()
	s.addLocation(vendorID, "Partners/Vendors", entity.LocationRoleVendor)
	s.addLocation(stockID, "WH/Stock", entity.LocationRoleInternal)
	s.addProduct(productID, "SKU-001", "10")
	uc := appledger.NewUseCase(s, &fakeProductRepo{s: s}, &fakeLocationRepo{s: s})

	_, err := uc.ApplyAdjustment(context.Background(), appledger.AdjustmentInput{
		ProductID: productID, LocationID: stockID, CountedQty: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrMissingLossLocation)
	assert.Empty(t, s.moves)
	assert.True(t, dec("10").Equal(s.products[productID].QuantityOnHand))
}

func TestApplyAdjustment_Validacion(t *testing.T) {
	uc, _ := newEngine(t, "10")

	_, err := uc.ApplyAdjustment(context.Background(), appledger.AdjustmentInput{
		ProductID: productID, LocationID: stockID, CountedQty: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ApplyAdjustment(context.Background(), appledger.AdjustmentInput{
		ProductID: productID, LocationID: "loc-nope", CountedQty: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante del fold: la caché siempre es igual a la suma de efectos del
// historial, con los ajustes como puntos de reset.
// ──────────────────────────────────────────────────────────────────────────────

func TestInvariante_CacheIgualAlFold(t *testing.T) {
	uc, s := newEngine(t, "0")

	mustMove(t, uc, vendorID, stockID, "50", entity.MoveTypeReceipt)
	mustMove(t, uc, stockID, customerID, "12.5", entity.MoveTypeDelivery)
	mustMove(t, uc, stockID, stock2ID, "8", entity.MoveTypeInternal)
	_, err := uc.ApplyAdjustment(context.Background(), appledger.AdjustmentInput{
		ProductID: productID, LocationID: stockID, CountedQty: dec("35"),
	})
	require.NoError(t, err)
	mustMove(t, uc, stockID, customerID, "5", entity.MoveTypeDelivery)

	// Fold manual del historial con la misma regla del motor
	folded := decimal.Zero
	for _, m := range s.moves {
		if m.Type == entity.MoveTypeAdjustment {
			// punto de reset: el ajuste fija el valor absoluto
			if s.locations[m.SourceID].Role == entity.LocationRoleLoss {
				folded = folded.Add(m.Quantity)
			} else {
				folded = folded.Sub(m.Quantity)
			}
			continue
		}
		src := s.locations[m.SourceID]
		dst := s.locations[m.DestID]
		switch src.Role {
		case entity.LocationRoleVendor, entity.LocationRoleAdjustment:
			folded = folded.Add(m.Quantity)
		case entity.LocationRoleInternal:
			if dst.Role != entity.LocationRoleInternal {
				folded = folded.Sub(m.Quantity)
			}
		}
	}
	assert.True(t, folded.Equal(s.products[productID].QuantityOnHand),
		"fold %s != caché %s", folded, s.products[productID].QuantityOnHand)
}
