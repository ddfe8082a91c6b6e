package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jornales/pkg/grid"
	"jornales/pkg/version/controller"
	"jornales/pkg/version/service"
)

type versionCtrl struct{ svc service.VersionService }

func New(svc service.VersionService) controller.VersionController { return &versionCtrl{svc} }

type createReq struct {
	Comentario string `json:"comentario"`
}

func (h *versionCtrl) Create(c echo.Context) error {
	planID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plan id"})
	}
	var req createReq
	_ = c.Bind(&req)

	createdBy, _ := c.Get("email").(string)

	v, err := h.svc.Create(uint(planID), createdBy, req.Comentario)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, v)
	case errors.Is(err, service.ErrBusy):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (h *versionCtrl) List(c echo.Context) error {
	planID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plan id"})
	}
	out, err := h.svc.List(uint(planID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *versionCtrl) Detail(c echo.Context) error {
	versionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad version id"})
	}
	rows, err := h.svc.Detail(uint(versionID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var ha, jornales float64
	for _, r := range rows {
		ha += r.HaProg
		jornales += r.Jornales
	}
	return c.JSON(http.StatusOK, map[string]any{
		"detalle":        rows,
		"total_ha":       grid.Fmt2(ha),
		"total_jornales": grid.Fmt2(jornales),
	})
}
