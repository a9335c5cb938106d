package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/interval"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
	"github.com/jhoicas/Comercial-api/pkg/textutil"
)

// PriceUseCase casos de uso de ventanas de tarifa por (cliente, producto):
// upsert masivo, detección de solapamientos, borrado lógico reversible,
// borrado físico administrativo y listado filtrado.
type PriceUseCase struct {
	repo      repository.PriceRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	tx        PriceTxRunner
}

// NewPriceUseCase construye el caso de uso.
func NewPriceUseCase(
	repo repository.PriceRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	tx PriceTxRunner,
) *PriceUseCase {
	return &PriceUseCase{repo: repo, customers: customers, products: products, tx: tx}
}

// Upsert procesa la lista en orden: con ID actualiza (ErrNotFound si el ID no
// existe, nunca inserta en silencio), sin ID inserta. El lote es best-effort
// por elemento: un fallo detiene el procesamiento pero no revierte los
// elementos ya guardados. Con strict=true cada elemento corre en una
// transacción con lock consultivo sobre su par (cliente, producto) y falla
// con ErrConflict si el intervalo solapa una ventana activa ajena.
func (uc *PriceUseCase) Upsert(ctx context.Context, specs []dto.PriceSpec, strict bool) ([]*entity.Price, error) {
	saved := make([]*entity.Price, 0, len(specs))
	now := time.Now()
	for _, spec := range specs {
		if strict {
			var price *entity.Price
			err := uc.tx.RunPriceExclusive(ctx, spec.CustomerID, spec.ProductCode, func(repo repository.PriceRepository) error {
				var err error
				price, err = uc.upsertOne(repo, spec, true, now)
				return err
			})
			if err != nil {
				return saved, err
			}
			saved = append(saved, price)
			continue
		}
		price, err := uc.upsertOne(uc.repo, spec, false, now)
		if err != nil {
			return saved, err
		}
		saved = append(saved, price)
	}
	return saved, nil
}

func (uc *PriceUseCase) upsertOne(repo repository.PriceRepository, spec dto.PriceSpec, enforceOverlap bool, now time.Time) (*entity.Price, error) {
	start, err := parseBound(spec.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseBound(spec.EndDate)
	if err != nil {
		return nil, err
	}
	if !interval.ValidRange(start, end) {
		return nil, domain.ErrInvalidInput
	}
	if spec.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customers.GetByID(spec.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.products.GetByCode(spec.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if enforceOverlap {
		overlapping, err := repo.FindOverlapping(spec.CustomerID, spec.ProductCode, start, end)
		if err != nil {
			return nil, err
		}
		for _, o := range overlapping {
			if spec.ID == nil || o.ID != *spec.ID {
				return nil, domain.ErrConflict
			}
		}
	}

	if spec.ID != nil {
		price, err := repo.GetByID(*spec.ID)
		if err != nil {
			return nil, err
		}
		if price == nil {
			return nil, domain.ErrNotFound
		}
		price.CustomerID = spec.CustomerID
		price.ProductCode = spec.ProductCode
		price.Amount = spec.Amount
		price.StartDate = start
		price.EndDate = end
		price.UpdatedAt = &now
		if err := repo.Update(price); err != nil {
			return nil, err
		}
		return price, nil
	}

	price := &entity.Price{
		CustomerID:  spec.CustomerID,
		ProductCode: spec.ProductCode,
		Amount:      spec.Amount,
		StartDate:   start,
		EndDate:     end,
		InsertedAt:  now,
		DeleteYn:    entity.DeleteNo,
	}
	if err := repo.Create(price); err != nil {
		return nil, err
	}
	return price, nil
}

// CheckOverlap devuelve las ventanas activas del par que intersectan el
// intervalo candidato. Lista vacía significa que no hay solapamiento.
func (uc *PriceUseCase) CheckOverlap(in dto.CheckOverlapRequest) ([]*entity.Price, error) {
	start, err := parseBound(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseBound(in.EndDate)
	if err != nil {
		return nil, err
	}
	if !interval.ValidRange(start, end) {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.FindOverlapping(in.CustomerID, in.ProductCode, start, end)
}

// SetDeleteStatus aplica borrado o restauración lógica por elemento. Borrar
// estampa la fecha de borrado sin tocar la de actualización; restaurar limpia
// la fecha de borrado y estampa la de actualización. La operación es
// idempotente: repetir el mismo flag no cambia nada tras la primera vez.
func (uc *PriceUseCase) SetDeleteStatus(items []dto.PriceStatusRequest) ([]*entity.Price, error) {
	updated := make([]*entity.Price, 0, len(items))
	for _, item := range items {
		if item.DeleteYn != entity.DeleteNo && item.DeleteYn != entity.DeleteYes {
			return updated, domain.ErrInvalidInput
		}
		price, err := uc.repo.GetByID(item.ID)
		if err != nil {
			return updated, err
		}
		if price == nil {
			return updated, domain.ErrNotFound
		}
		if price.DeleteYn == item.DeleteYn {
			updated = append(updated, price)
			continue
		}
		now := time.Now()
		if item.DeleteYn == entity.DeleteYes {
			price.DeleteYn = entity.DeleteYes
			price.DeletedAt = &now
		} else {
			price.DeleteYn = entity.DeleteNo
			price.DeletedAt = nil
			price.UpdatedAt = &now
		}
		if err := uc.repo.Update(price); err != nil {
			return updated, err
		}
		updated = append(updated, price)
	}
	return updated, nil
}

// HardDelete elimina la fila de forma permanente. Irreversible; pensado para
// administración, no para el flujo normal de borrado.
func (uc *PriceUseCase) HardDelete(id int) error {
	price, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if price == nil {
		return domain.ErrNotFound
	}
	return uc.repo.HardDelete(id)
}

// ListByCustomerAndProduct devuelve el historial de tarifas del par,
// ignorando el flag de borrado (se usa para mostrar el histórico completo).
func (uc *PriceUseCase) ListByCustomerAndProduct(customerID int, productCode string) ([]*entity.Price, error) {
	return uc.repo.ListByCustomerAndProduct(customerID, productCode)
}

// ListFiltered traduce los filtros de la API al puerto de persistencia y
// devuelve la página junto con el total sin paginar.
func (uc *PriceUseCase) ListFiltered(in dto.PriceListRequest) ([]*entity.Price, int, error) {
	in.DefaultPage()

	switch in.Status {
	case "", "all", "active", "deleted":
	default:
		return nil, 0, domain.ErrInvalidInput
	}
	if in.SortDir != "" && in.SortDir != "asc" && in.SortDir != "desc" {
		return nil, 0, domain.ErrInvalidInput
	}

	filter := repository.PriceFilter{
		CustomerID:   in.CustomerID,
		ProductCode:  in.ProductCode,
		CustomerText: textutil.Normalize(in.CustomerText),
		ProductText:  textutil.Normalize(in.ProductText),
		Status:       in.Status,
		SortBy:       in.SortBy,
		SortDir:      in.SortDir,
		Limit:        in.Limit,
		Offset:       in.Offset,
	}
	var err error
	if filter.StartDate, err = parseDatePtr(in.StartDate); err != nil {
		return nil, 0, err
	}
	if filter.EndDate, err = parseDatePtr(in.EndDate); err != nil {
		return nil, 0, err
	}
	if filter.TargetDate, err = parseDatePtr(in.TargetDate); err != nil {
		return nil, 0, err
	}

	return uc.repo.ListFiltered(filter)
}

// parseBound convierte una fecha opcional "2006-01-02" en un límite de
// intervalo; nil o vacío es un límite abierto.
func parseBound(s *string) (interval.Bound, error) {
	if s == nil || *s == "" {
		return interval.Unbounded(), nil
	}
	d, err := time.Parse(interval.DateLayout, *s)
	if err != nil {
		return interval.Bound{}, domain.ErrInvalidInput
	}
	return interval.At(d), nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse(interval.DateLayout, *s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}
