package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifebit/platform/internal/core/ports"
)

type SetupHandler struct {
	service ports.SetupService
}

func NewSetupHandler(service ports.SetupService) *SetupHandler {
	return &SetupHandler{service: service}
}

type setupRequest struct {
	Name     string `json:"name"    validate:"required,max=150"`
	Address  string `json:"address" validate:"required,max=250"`
	City     string `json:"city"    validate:"required,max=100"`
	Units    int    `json:"units"   validate:"required,gt=0"`
	Complete bool   `json:"complete"`
}

// Status returns the wizard state for the condominium.
//
// @Summary      Setup status
// @Tags         setup
// @Produce      json
// @Success      200  {object}  domain.Condominium
// @Router       /setup [get]
func (h *SetupHandler) Status(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	condo, err := h.service.Status(c.Request().Context(), condoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, condo)
}

// Save stores wizard data; complete=true finishes the wizard.
//
// @Summary      Save setup data
// @Tags         setup
// @Accept       json
// @Produce      json
// @Param        body  body      setupRequest  true  "Condominium profile"
// @Success      200   {object}  domain.Condominium
// @Router       /setup [put]
func (h *SetupHandler) Save(c echo.Context) error {
	_, condoID, err := ctxCondo(c)
	if err != nil {
		return err
	}

	var req setupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	condo, err := h.service.Save(c.Request().Context(), condoID, ports.SetupInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Units:   req.Units,
	}, req.Complete)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, condo)
}
