package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifebit/platform/internal/core/ports"
)

type ResourceHandler struct {
	service ports.ResourceService
}

func NewResourceHandler(service ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

type resourceRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Capacity    int    `json:"capacity"    validate:"required,gt=0"`
	OpensAt     string `json:"opens_at"    validate:"required,len=5"`
	ClosesAt    string `json:"closes_at"   validate:"required,len=5"`
	Active      bool   `json:"active"`
}

// Create adds an amenity to the catalogue.
//
// @Summary      Create a resource
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Param        body  body      resourceRequest  true  "Resource details"
// @Success      201   {object}  domain.Resource
// @Router       /recursos [post]
func (h *ResourceHandler) Create(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resource, err := h.service.Create(c.Request().Context(), condoID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resource)
}

// Get returns a single resource.
//
// @Summary      Get a resource
// @Tags         recursos
// @Produce      json
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  domain.Resource
// @Router       /recursos/{id} [get]
func (h *ResourceHandler) Get(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	resource, err := h.service.Get(c.Request().Context(), condoID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resource)
}

// List returns the amenity catalogue.
//
// @Summary      List resources
// @Tags         recursos
// @Produce      json
// @Param        active  query  bool  false  "Only active resources"
// @Success      200  {array}  domain.Resource
// @Router       /recursos [get]
func (h *ResourceHandler) List(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	resources, err := h.service.List(c.Request().Context(), condoID, c.QueryParam("active") == "true")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

// Update replaces the writable fields of a resource.
//
// @Summary      Update a resource
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Resource ID"
// @Param        body  body      resourceRequest  true  "Resource details"
// @Success      200   {object}  domain.Resource
// @Router       /recursos/{id} [put]
func (h *ResourceHandler) Update(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resource, err := h.service.Update(c.Request().Context(), condoID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resource)
}

// Delete removes a resource.
//
// @Summary      Delete a resource
// @Tags         recursos
// @Param        id  path  string  true  "Resource ID"
// @Success      204
// @Router       /recursos/{id} [delete]
func (h *ResourceHandler) Delete(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), condoID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r resourceRequest) toInput() ports.ResourceInput {
	return ports.ResourceInput{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		OpensAt:     r.OpensAt,
		ClosesAt:    r.ClosesAt,
		Active:      r.Active,
	}
}
