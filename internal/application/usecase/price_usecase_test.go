package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

func str(s string) *string { return &s }

func newPriceUseCaseForTest() (*PriceUseCase, *fakePriceRepo) {
	repo := newFakePriceRepo()
	customers := newFakeCustomerRepo(
		&entity.Customer{ID: 7, Name: "Acme S.A.S."},
	)
	products := newFakeProductRepo(
		&entity.Product{Code: "P001", Name: "Café tostado 500g"},
	)
	uc := NewPriceUseCase(repo, customers, products, &fakePriceTx{repo: repo})
	return uc, repo
}

func TestPriceUpsert_InsertaSinID(t *testing.T) {
	uc, repo := newPriceUseCaseForTest()

	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID:  7,
		ProductCode: "P001",
		Amount:      decimal.NewFromInt(12500),
		StartDate:   str("2024-01-01"),
		EndDate:     str("2024-06-30"),
	}}, false)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.NotZero(t, saved[0].ID)
	assert.Equal(t, entity.DeleteNo, saved[0].DeleteYn)

	stored, _ := repo.GetByID(saved[0].ID)
	require.NotNil(t, stored)
	assert.True(t, stored.Amount.Equal(decimal.NewFromInt(12500)))
}

func TestPriceUpsert_ActualizaConID(t *testing.T) {
	uc, repo := newPriceUseCaseForTest()
	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(12500),
	}}, false)
	require.NoError(t, err)
	id := saved[0].ID

	updated, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		ID: &id, CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(9900),
	}}, false)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, id, updated[0].ID)
	assert.NotNil(t, updated[0].UpdatedAt)

	stored, _ := repo.GetByID(id)
	assert.True(t, stored.Amount.Equal(decimal.NewFromInt(9900)))
}

func TestPriceUpsert_IDInexistenteNoInsertaEnSilencio(t *testing.T) {
	uc, repo := newPriceUseCaseForTest()
	missing := 999

	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		ID: &missing, CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
	}}, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, saved)
	assert.Empty(t, repo.items)
}

func TestPriceUpsert_ReferenciasInexistentes(t *testing.T) {
	uc, _ := newPriceUseCaseForTest()

	_, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 99, ProductCode: "P001", Amount: decimal.NewFromInt(100),
	}}, false)
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")

	_, err = uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "NOPE", Amount: decimal.NewFromInt(100),
	}}, false)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")
}

func TestPriceUpsert_EntradaInvalida(t *testing.T) {
	uc, _ := newPriceUseCaseForTest()

	_, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
		StartDate: str("2024-06-30"), EndDate: str("2024-01-01"),
	}}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "inicio posterior al fin")

	_, err = uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(-1),
	}}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto negativo")

	_, err = uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
		StartDate: str("01/01/2024"),
	}}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha")
}

func TestPriceUpsert_LoteMejorEsfuerzo(t *testing.T) {
	uc, repo := newPriceUseCaseForTest()

	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{
		{CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100)},
		{CustomerID: 99, ProductCode: "P001", Amount: decimal.NewFromInt(200)},
		{CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(300)},
	}, false)

	// El fallo del segundo detiene el lote pero no revierte el primero.
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.Len(t, saved, 1)
	assert.Len(t, repo.items, 1)
}

func TestPriceUpsert_EstrictoRechazaSolape(t *testing.T) {
	uc, _ := newPriceUseCaseForTest()
	_, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
		StartDate: str("2024-01-01"), EndDate: str("2024-06-30"),
	}}, false)
	require.NoError(t, err)

	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(200),
		StartDate: str("2024-06-15"), EndDate: str("2024-12-31"),
	}}, true)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, saved)

	// Un intervalo contiguo sin intersección sí pasa.
	saved, err = uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(200),
		StartDate: str("2024-07-01"), EndDate: nil,
	}}, true)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestPriceUpsert_EstrictoIgnoraLaPropiaVentana(t *testing.T) {
	uc, _ := newPriceUseCaseForTest()
	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
		StartDate: str("2024-01-01"), EndDate: str("2024-06-30"),
	}}, false)
	require.NoError(t, err)
	id := saved[0].ID

	// Cambiar el monto de la misma ventana no choca consigo misma.
	updated, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		ID: &id, CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(150),
		StartDate: str("2024-01-01"), EndDate: str("2024-06-30"),
	}}, true)
	require.NoError(t, err)
	assert.Len(t, updated, 1)
}

func TestPriceCheckOverlap_LimitesAbiertos(t *testing.T) {
	uc, _ := newPriceUseCaseForTest()
	_, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
		StartDate: str("2024-03-01"), EndDate: nil,
	}}, false)
	require.NoError(t, err)

	// Un candidato totalmente abierto choca con cualquier ventana activa.
	hits, err := uc.CheckOverlap(dto.CheckOverlapRequest{CustomerID: 7, ProductCode: "P001"})
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	// Antes del inicio no hay intersección.
	hits, err = uc.CheckOverlap(dto.CheckOverlapRequest{
		CustomerID: 7, ProductCode: "P001",
		StartDate: str("2024-01-01"), EndDate: str("2024-02-29"),
	})
	require.NoError(t, err)
	assert.Empty(t, hits)

	// El día exacto del inicio sí intersecta: los extremos son inclusivos.
	hits, err = uc.CheckOverlap(dto.CheckOverlapRequest{
		CustomerID: 7, ProductCode: "P001",
		StartDate: str("2024-01-01"), EndDate: str("2024-03-01"),
	})
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestPriceCheckOverlap_IgnoraBorradas(t *testing.T) {
	uc, _ := newPriceUseCaseForTest()
	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
	}}, false)
	require.NoError(t, err)
	_, err = uc.SetDeleteStatus([]dto.PriceStatusRequest{{ID: saved[0].ID, DeleteYn: entity.DeleteYes}})
	require.NoError(t, err)

	hits, err := uc.CheckOverlap(dto.CheckOverlapRequest{CustomerID: 7, ProductCode: "P001"})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestPriceSetDeleteStatus_BorradoYRestauracion(t *testing.T) {
	uc, repo := newPriceUseCaseForTest()
	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
	}}, false)
	require.NoError(t, err)
	id := saved[0].ID

	_, err = uc.SetDeleteStatus([]dto.PriceStatusRequest{{ID: id, DeleteYn: entity.DeleteYes}})
	require.NoError(t, err)
	deleted, _ := repo.GetByID(id)
	assert.Equal(t, entity.DeleteYes, deleted.DeleteYn)
	require.NotNil(t, deleted.DeletedAt)
	firstDeletedAt := *deleted.DeletedAt
	assert.Nil(t, deleted.UpdatedAt, "borrar no toca la fecha de actualización")

	// Repetir el mismo flag no cambia nada.
	time.Sleep(2 * time.Millisecond)
	_, err = uc.SetDeleteStatus([]dto.PriceStatusRequest{{ID: id, DeleteYn: entity.DeleteYes}})
	require.NoError(t, err)
	again, _ := repo.GetByID(id)
	assert.True(t, again.DeletedAt.Equal(firstDeletedAt), "la operación es idempotente")

	_, err = uc.SetDeleteStatus([]dto.PriceStatusRequest{{ID: id, DeleteYn: entity.DeleteNo}})
	require.NoError(t, err)
	restored, _ := repo.GetByID(id)
	assert.Equal(t, entity.DeleteNo, restored.DeleteYn)
	assert.Nil(t, restored.DeletedAt)
	assert.NotNil(t, restored.UpdatedAt, "restaurar estampa la fecha de actualización")
}

func TestPriceSetDeleteStatus_FlagInvalido(t *testing.T) {
	uc, _ := newPriceUseCaseForTest()
	_, err := uc.SetDeleteStatus([]dto.PriceStatusRequest{{ID: 1, DeleteYn: "X"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPriceHardDelete(t *testing.T) {
	uc, repo := newPriceUseCaseForTest()
	saved, err := uc.Upsert(context.Background(), []dto.PriceSpec{{
		CustomerID: 7, ProductCode: "P001", Amount: decimal.NewFromInt(100),
	}}, false)
	require.NoError(t, err)

	require.NoError(t, uc.HardDelete(saved[0].ID))
	assert.Empty(t, repo.items)

	assert.ErrorIs(t, uc.HardDelete(saved[0].ID), domain.ErrNotFound)
}

func TestPriceListFiltered_ValidaYNormaliza(t *testing.T) {
	uc, repo := newPriceUseCaseForTest()

	_, _, err := uc.ListFiltered(dto.PriceListRequest{Status: "pendiente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado desconocido")

	_, _, err = uc.ListFiltered(dto.PriceListRequest{SortDir: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "dirección de orden desconocida")

	_, _, err = uc.ListFiltered(dto.PriceListRequest{CustomerText: "  Café S.A. "})
	require.NoError(t, err)
	assert.Equal(t, "cafe s.a.", repo.lastFilter.CustomerText, "el texto llega sin acentos y en minúsculas")
	assert.Equal(t, 20, repo.lastFilter.Limit, "paginación por defecto")
}
