package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/usecase"
	"github.com/jhoicas/Comercial-api/internal/domain"
)

// PriceHandler maneja las peticiones HTTP de ventanas de tarifa (protegido).
type PriceHandler struct {
	uc     *usecase.PriceUseCase
	enrich *usecase.PriceEnrichmentUseCase
	report *usecase.PriceReportUseCase
}

// NewPriceHandler construye el handler.
func NewPriceHandler(uc *usecase.PriceUseCase, enrich *usecase.PriceEnrichmentUseCase, report *usecase.PriceReportUseCase) *PriceHandler {
	return &PriceHandler{uc: uc, enrich: enrich, report: report}
}

// Upsert godoc
// @Summary      Alta/actualización masiva de ventanas de tarifa
// @Description  Con ID actualiza, sin ID inserta. El lote es best-effort: un fallo detiene el procesamiento pero no revierte lo ya guardado. Con strict=true cada elemento verifica solapamientos bajo lock y falla con 409 si choca con una ventana activa.
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        strict  query  bool  false  "Rechazar elementos que solapen ventanas activas"
// @Param        body    body   []dto.PriceSpec  true  "Lote de tarifas"
// @Success      200     {array}   dto.PriceResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/prices/bulk [post]
func (h *PriceHandler) Upsert(c *fiber.Ctx) error {
	var in []dto.PriceSpec
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote no puede estar vacío"})
	}
	strict := c.QueryBool("strict", false)

	saved, err := h.uc.Upsert(c.Context(), in, strict)
	items, enrichErr := h.enrich.EnrichAll(saved)
	if enrichErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: enrichErr.Error()})
	}
	if err != nil {
		// Se informan los elementos que sí quedaron guardados antes del fallo.
		status, code, msg := priceErrorStatus(err)
		return c.Status(status).JSON(fiber.Map{"code": code, "message": msg, "saved": items})
	}
	return c.JSON(items)
}

// SetStatus godoc
// @Summary      Borrado o restauración lógica masiva
// @Description  delete_yn=Y marca la ventana como borrada; delete_yn=N la restaura. Idempotente por elemento.
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.PriceStatusRequest  true  "Cambios de estado"
// @Success      200   {array}   dto.PriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prices/status [put]
func (h *PriceHandler) SetStatus(c *fiber.Ctx) error {
	var in []dto.PriceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.uc.SetDeleteStatus(in)
	if err != nil {
		status, code, msg := priceErrorStatus(err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	items, err := h.enrich.EnrichAll(updated)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: err.Error()})
	}
	return c.JSON(items)
}

// HardDelete godoc
// @Summary      Borrado físico de una ventana de tarifa (solo admin)
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la ventana"
// @Success      204  "Sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prices/{id} [delete]
func (h *PriceHandler) HardDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.HardDelete(id); err != nil {
		status, code, msg := priceErrorStatus(err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Historial de tarifas de un par (cliente, producto)
// @Description  Incluye las ventanas con borrado lógico, para mostrar el histórico completo.
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        customer_id   query  int     true  "ID del cliente"
// @Param        product_code  query  string  true  "Código del producto"
// @Success      200  {array}   dto.PriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/prices/customer-product [get]
func (h *PriceHandler) History(c *fiber.Ctx) error {
	customerID := c.QueryInt("customer_id", 0)
	productCode := c.Query("product_code")
	if customerID <= 0 || productCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id y product_code son requeridos"})
	}
	prices, err := h.uc.ListByCustomerAndProduct(customerID, productCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items, err := h.enrich.EnrichAll(prices)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: err.Error()})
	}
	return c.JSON(items)
}

// CheckOverlap godoc
// @Summary      Verificar solapamiento de un intervalo candidato
// @Description  Devuelve las ventanas activas del par que intersectan el intervalo. Lista vacía significa que no hay choque.
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckOverlapRequest  true  "Intervalo candidato"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prices/check-overlap [post]
func (h *PriceHandler) CheckOverlap(c *fiber.Ctx) error {
	var in dto.CheckOverlapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	hits, err := h.uc.CheckOverlap(in)
	if err != nil {
		status, code, msg := priceErrorStatus(err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	items, err := h.enrich.EnrichAll(hits)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"overlaps": len(items) > 0, "items": items})
}

// List godoc
// @Summary      Listado filtrado y paginado de tarifas
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        customer_id    query  int     false  "ID del cliente"
// @Param        product_code   query  string  false  "Código del producto"
// @Param        customer_text  query  string  false  "Búsqueda por nombre de cliente (sin distinguir acentos)"
// @Param        product_text   query  string  false  "Búsqueda por nombre o código de producto"
// @Param        start_date     query  string  false  "Inicio mínimo (YYYY-MM-DD)"
// @Param        end_date       query  string  false  "Fin máximo (YYYY-MM-DD)"
// @Param        target_date    query  string  false  "Vigente en la fecha (YYYY-MM-DD)"
// @Param        status         query  string  false  "all | active | deleted"
// @Param        sort           query  string  false  "id | amount | start_date | end_date | inserted_at | customer_name | product_name"
// @Param        order          query  string  false  "asc | desc"
// @Param        limit          query  int     false  "Límite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.PriceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/prices [get]
func (h *PriceHandler) List(c *fiber.Ctx) error {
	var in dto.PriceListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	prices, total, err := h.uc.ListFiltered(in)
	if err != nil {
		status, code, msg := priceErrorStatus(err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	items, err := h.enrich.EnrichAll(prices)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: err.Error()})
	}
	in.DefaultPage()
	return c.JSON(dto.PriceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	})
}

// ReportPDF godoc
// @Summary      Listado de tarifas en PDF
// @Description  Acepta los mismos filtros que el listado JSON.
// @Tags         prices
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  byte
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/prices/report/pdf [get]
func (h *PriceHandler) ReportPDF(c *fiber.Ctx) error {
	var in dto.PriceListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.report.Generate(in)
	if err != nil {
		status, code, msg := priceErrorStatus(err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tarifas.pdf"`)
	return c.Send(out)
}

// priceErrorStatus traduce los errores del dominio a HTTP.
func priceErrorStatus(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", "datos inválidos: verifique fechas, monto y flags"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "cliente, producto o tarifa no encontrados"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "OVERLAP", "el intervalo solapa una ventana de tarifa activa"
	case errors.Is(err, domain.ErrIntegrity):
		return fiber.StatusInternalServerError, "INTEGRITY", "referencia obligatoria ausente"
	default:
		return fiber.StatusInternalServerError, "INTERNAL", err.Error()
	}
}
