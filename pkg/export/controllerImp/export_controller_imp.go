package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jornales/pkg/export/controller"
	"jornales/pkg/export/service"
)

type exportCtrl struct{ svc service.ExportService }

func New(svc service.ExportService) controller.ExportController { return &exportCtrl{svc} }

func serve(c echo.Context, content []byte, filename string) error {
	mime := "text/csv; charset=utf-8"
	if len(filename) > 5 && filename[len(filename)-5:] == ".xlsx" {
		mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, mime, content)
}

func (h *exportCtrl) Plan(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plan id"})
	}

	var content []byte
	var filename string
	if c.QueryParam("format") == "xlsx" {
		content, filename, err = h.svc.PlanXLSX(uint(id))
	} else {
		content, filename, err = h.svc.PlanCSV(uint(id))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return serve(c, content, filename)
}

func (h *exportCtrl) Version(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad version id"})
	}

	var content []byte
	var filename string
	if c.QueryParam("format") == "xlsx" {
		content, filename, err = h.svc.VersionXLSX(uint(id))
	} else {
		content, filename, err = h.svc.VersionCSV(uint(id))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return serve(c, content, filename)
}
