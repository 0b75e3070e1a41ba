package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

type ResidentHandler struct {
	service ports.ResidentService
}

func NewResidentHandler(service ports.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

type residentRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Surname string `json:"surname" validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Unit    string `json:"unit"    validate:"required,max=20"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Status  string `json:"status"  validate:"omitempty,oneof=active invited inactive"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listResidentsResponse struct {
	Data       []domain.Resident  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Create registers a resident.
//
// @Summary      Create a resident
// @Tags         residentes
// @Accept       json
// @Produce      json
// @Param        body  body      residentRequest  true  "Resident details"
// @Success      201   {object}  domain.Resident
// @Router       /residentes [post]
func (h *ResidentHandler) Create(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	var req residentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resident, err := h.service.Create(c.Request().Context(), condoID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resident)
}

// Get returns a single resident.
//
// @Summary      Get a resident
// @Tags         residentes
// @Produce      json
// @Param        id   path      string  true  "Resident ID"
// @Success      200  {object}  domain.Resident
// @Router       /residentes/{id} [get]
func (h *ResidentHandler) Get(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	resident, err := h.service.Get(c.Request().Context(), condoID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// List returns a page of residents.
//
// @Summary      List residents
// @Tags         residentes
// @Produce      json
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  listResidentsResponse
// @Router       /residentes [get]
func (h *ResidentHandler) List(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	filter := ports.ResidentFilter{
		CondoID: condoID,
		Status:  domain.ResidentStatus(c.QueryParam("status")),
		Page:    page,
		Limit:   limit,
	}

	residents, total, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return c.JSON(http.StatusOK, listResidentsResponse{
		Data: residents,
		Pagination: paginationResponse{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: totalPages,
		},
	})
}

// Update replaces the writable fields of a resident.
//
// @Summary      Update a resident
// @Tags         residentes
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Resident ID"
// @Param        body  body      residentRequest  true  "Resident details"
// @Success      200   {object}  domain.Resident
// @Router       /residentes/{id} [put]
func (h *ResidentHandler) Update(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	var req residentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resident, err := h.service.Update(c.Request().Context(), condoID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// Delete removes a resident.
//
// @Summary      Delete a resident
// @Tags         residentes
// @Param        id  path  string  true  "Resident ID"
// @Success      204
// @Router       /residentes/{id} [delete]
func (h *ResidentHandler) Delete(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), condoID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r residentRequest) toInput() ports.ResidentInput {
	return ports.ResidentInput{
		Name:    r.Name,
		Surname: r.Surname,
		Email:   r.Email,
		Unit:    r.Unit,
		Phone:   r.Phone,
		Status:  domain.ResidentStatus(r.Status),
	}
}
