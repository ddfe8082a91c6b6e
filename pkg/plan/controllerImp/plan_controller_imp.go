package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"jornales/pkg/grid"
	"jornales/pkg/plan/controller"
	planrepo "jornales/pkg/plan/repository"
	"jornales/pkg/plan/service"
	"jornales/pkg/plan/types"
)

type planCtrl struct{ svc service.PlanService }

func New(svc service.PlanService) controller.PlanController { return &planCtrl{svc} }

func errJSON(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func (h *planCtrl) session(c echo.Context) (*types.Session, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("bad plan id")
	}
	return h.svc.Session(uint(id))
}

type openReq struct {
	Anio    int  `json:"anio"`
	Mes     int  `json:"mes"`
	DeptoID uint `json:"depto_id"`
}

func (h *planCtrl) Open(c echo.Context) error {
	var req openReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, errors.New("bad json"))
	}
	if req.Anio == 0 || req.Mes < 1 || req.Mes > 12 || req.DeptoID == 0 {
		return errJSON(c, http.StatusBadRequest, errors.New("anio, mes y depto_id son obligatorios"))
	}

	sess, err := h.svc.Open(req.Anio, req.Mes, req.DeptoID)
	if err != nil {
		return errJSON(c, http.StatusBadGateway, err)
	}

	sess.Lock()
	defer sess.Unlock()
	return c.JSON(http.StatusOK, map[string]any{
		"plan":    sess.Plan,
		"depto":   sess.Depto,
		"catalog": sess.Cache,
		"dias":    sess.Grid.Days(),
	})
}

func (h *planCtrl) State(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}

	sess.Lock()
	defer sess.Unlock()
	rows := map[string][]*grid.Row{}
	for _, d := range sess.Grid.Days() {
		rows[d] = sess.Grid.Rows(d)
	}
	ha, jornales := sess.Grid.Totals()
	return c.JSON(http.StatusOK, map[string]any{
		"plan":           sess.Plan,
		"dias":           sess.Grid.Days(),
		"filas":          rows,
		"total_ha":       grid.Fmt2(ha),
		"total_jornales": grid.Fmt2(jornales),
	})
}

func (h *planCtrl) Reload(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	if err := h.svc.Reload(sess.Plan.ID); err != nil {
		return errJSON(c, http.StatusBadGateway, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *planCtrl) Save(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}

	count, err := h.svc.Save(sess.Plan.ID)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]any{"saved": count})
	case errors.Is(err, service.ErrNothingToSave):
		return c.JSON(http.StatusOK, map[string]any{"saved": 0, "message": err.Error()})
	case errors.Is(err, service.ErrValidation):
		return errJSON(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, service.ErrBusy):
		return errJSON(c, http.StatusConflict, err)
	case errors.Is(err, planrepo.ErrInsertStep):
		// The delete already ran; the caller must retry immediately.
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":          err.Error(),
			"data_loss_risk": true,
		})
	default:
		return errJSON(c, http.StatusInternalServerError, err)
	}
}

type rowReq struct {
	Fecha string `json:"fecha"`
	Campo string `json:"campo"`
	Valor string `json:"valor"`
}

func (h *planCtrl) AddRow(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	var req rowReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, errors.New("bad json"))
	}

	sess.Lock()
	defer sess.Unlock()
	row, err := sess.Grid.AddRow(req.Fecha)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusCreated, row)
}

func (h *planCtrl) DuplicateRow(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	var req rowReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, errors.New("bad json"))
	}

	sess.Lock()
	defer sess.Unlock()
	row, err := sess.Grid.DuplicateRow(req.Fecha, c.Param("uiid"))
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	return c.JSON(http.StatusCreated, row)
}

func (h *planCtrl) RemoveRow(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	fecha := c.QueryParam("fecha")

	sess.Lock()
	defer sess.Unlock()
	if err := sess.Grid.RemoveRow(fecha, c.Param("uiid")); err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateRow dispatches one field edit to the matching computation trigger.
func (h *planCtrl) UpdateRow(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	var req rowReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, errors.New("bad json"))
	}
	uiID := c.Param("uiid")

	sess.Lock()
	defer sess.Unlock()
	g := sess.Grid

	switch req.Campo {
	case "subgrupo":
		err = g.SetSubgroup(req.Fecha, uiID, req.Valor)
	case "labor":
		if strings.TrimSpace(req.Valor) == "" {
			err = g.SetLabor(req.Fecha, uiID, nil, "", 0)
			break
		}
		code, convErr := strconv.Atoi(req.Valor)
		if convErr != nil {
			return errJSON(c, http.StatusBadRequest, errors.New("bad labor code"))
		}
		lab, ok := sess.Cache.LaborByCode[code]
		if !ok {
			return errJSON(c, http.StatusBadRequest, errors.New("unknown labor code"))
		}
		err = g.SetLabor(req.Fecha, uiID, &code, strings.TrimSpace(lab.Subgroup), lab.RatioDef)
	case "lote":
		err = g.SetLote(req.Fecha, uiID, req.Valor)
	case "red":
		err = g.SetRed(req.Fecha, uiID, req.Valor)
	case "sector":
		var ha float64
		if req.Valor != "" {
			_, row := findRow(g, req.Fecha, uiID)
			if row != nil {
				ha = sess.Cache.SectorHa(row.LoteID, row.RedID, req.Valor)
			}
		}
		err = g.SetSector(req.Fecha, uiID, req.Valor, ha)
	case "ha":
		err = g.SetHa(req.Fecha, uiID, req.Valor)
	case "ratio":
		err = g.SetRatio(req.Fecha, uiID, req.Valor)
	case "jornales":
		err = g.SetJornales(req.Fecha, uiID, req.Valor)
	case "modo":
		err = g.SetModo(req.Fecha, uiID, grid.Mode(strings.ToUpper(req.Valor)))
	case "obs":
		err = g.SetObs(req.Fecha, uiID, req.Valor)
	case "obs_toggle":
		err = g.ToggleObs(req.Fecha, uiID)
	default:
		return errJSON(c, http.StatusBadRequest, errors.New("unknown field: "+req.Campo))
	}
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}

	_, row := findRow(g, req.Fecha, uiID)
	return c.JSON(http.StatusOK, row)
}

func findRow(g *grid.Grid, fecha, uiID string) (int, *grid.Row) {
	for i, r := range g.Rows(fecha) {
		if r.UIID == uiID {
			return i, r
		}
	}
	return -1, nil
}

type dayReq struct {
	Origen  string `json:"origen"`
	Destino string `json:"destino"`
	Inicio  string `json:"inicio"`
	Fin     string `json:"fin"`
	UIID    string `json:"ui_id"`
}

func (h *planCtrl) dayOp(c echo.Context, op func(*types.Session, dayReq) error) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	var req dayReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, errors.New("bad json"))
	}

	sess.Lock()
	defer sess.Unlock()
	if err := op(sess, req); err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *planCtrl) CopyDay(c echo.Context) error {
	return h.dayOp(c, func(s *types.Session, r dayReq) error {
		s.Grid.CopyDay(r.Origen, r.Destino)
		return nil
	})
}

func (h *planCtrl) MoveDay(c echo.Context) error {
	return h.dayOp(c, func(s *types.Session, r dayReq) error {
		s.Grid.MoveDay(r.Origen, r.Destino)
		return nil
	})
}

func (h *planCtrl) CopyRange(c echo.Context) error {
	return h.dayOp(c, func(s *types.Session, r dayReq) error {
		s.Grid.CopyDayToRange(r.Origen, r.Inicio, r.Fin)
		return nil
	})
}

func (h *planCtrl) MoveRange(c echo.Context) error {
	return h.dayOp(c, func(s *types.Session, r dayReq) error {
		s.Grid.MoveDayToRange(r.Origen, r.Inicio, r.Fin)
		return nil
	})
}

func (h *planCtrl) CopyRowRange(c echo.Context) error {
	return h.dayOp(c, func(s *types.Session, r dayReq) error {
		return s.Grid.CopyRowToRange(r.Origen, r.UIID, r.Inicio, r.Fin)
	})
}

func (h *planCtrl) Totals(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}

	sess.Lock()
	defer sess.Unlock()
	ha, jornales := sess.Grid.Totals()
	porDia := map[string]map[string]string{}
	for _, d := range sess.Grid.Days() {
		dh, dj := sess.Grid.DayTotals(d)
		porDia[d] = map[string]string{"ha": grid.Fmt2(dh), "jornales": grid.Fmt2(dj)}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"total_ha":       grid.Fmt2(ha),
		"total_jornales": grid.Fmt2(jornales),
		"por_dia":        porDia,
	})
}

// Summary feeds the calendar overview: per day, the count and list of labor
// entries enriched with name and group.
func (h *planCtrl) Summary(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return errJSON(c, http.StatusNotFound, err)
	}

	sess.Lock()
	defer sess.Unlock()
	out := map[string]any{}
	for _, d := range sess.Grid.Days() {
		items := sess.Grid.DaySummary(d, sess.Cache.LaborDisplay)
		out[d] = map[string]any{"count": len(items), "items": items}
	}
	return c.JSON(http.StatusOK, out)
}
