package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jornales/pkg/catalog/controller"
	"jornales/pkg/catalog/service"
	"jornales/pkg/catalog/types"
)

type catalogCtrl struct{ svc service.CatalogService }

func New(svc service.CatalogService) controller.CatalogController { return &catalogCtrl{svc} }

// Departments lists the selectable departments for the current identity,
// labeled and deduplicated by (name, crop).
func (h *catalogCtrl) Departments(c echo.Context) error {
	email, _ := c.Get("email").(string)
	rol, _ := c.Get("rol").(string)

	deptos, err := h.svc.DepartmentsFor(email, rol)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if len(deptos) == 0 {
		return c.JSON(http.StatusOK, map[string]any{
			"deptos":  []any{},
			"message": "No tienes departamentos asignados para: " + email,
		})
	}

	out := make([]map[string]any, 0, len(deptos))
	for _, d := range deptos {
		out = append(out, map[string]any{
			"id":    d.ID,
			"label": types.DepartmentLabel(d),
			"depto": d,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"deptos": out})
}

// Bundle returns the catalog cache for one department.
func (h *catalogCtrl) Bundle(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad depto id"})
	}

	depto, cache, err := h.svc.BuildFor(uint(id))
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"depto": depto, "catalog": cache})
}
