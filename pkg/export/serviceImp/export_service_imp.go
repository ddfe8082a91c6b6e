package serviceImp

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	catservice "jornales/pkg/catalog/service"
	"jornales/pkg/export/service"
	"jornales/pkg/grid"
	planservice "jornales/pkg/plan/service"
	versionrepo "jornales/pkg/version/repository"
)

type exportSvc struct {
	plans    planservice.PlanService
	versions versionrepo.VersionRepository
	catalog  catservice.CatalogService
}

func New(plans planservice.PlanService, versions versionrepo.VersionRepository, cat catservice.CatalogService) service.ExportService {
	return &exportSvc{plans: plans, versions: versions, catalog: cat}
}

var planHeader = []string{
	"anio", "mes", "depto_id", "departamento", "cultivo",
	"fecha", "linea", "lote_id", "red_id", "sector_id",
	"codigo_labor", "labor", "subgrupo", "grupo",
	"ha_prog", "ratio", "jornales_prog", "modo", "obs",
}

var versionHeader = []string{
	"version_id", "fecha", "linea", "lote_id", "red_id", "sector_id",
	"codigo_labor", "labor", "grupo", "subgrupo",
	"ha_prog", "ratio", "jornales_prog", "obs",
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func (s *exportSvc) planRecords(planID uint) ([][]string, string, error) {
	sess, err := s.plans.Session(planID)
	if err != nil {
		return nil, "", err
	}

	sess.Lock()
	defer sess.Unlock()

	records := [][]string{planHeader}
	for _, r := range sess.Grid.Flatten() {
		if r.Empty() {
			continue
		}
		codigo, labor, subgrupo, grupo := "", "", "", ""
		if r.Codigo != nil {
			codigo = strconv.Itoa(*r.Codigo)
			if l, ok := sess.Cache.LaborByCode[*r.Codigo]; ok {
				labor, subgrupo, grupo = l.Name, l.Subgroup, l.Group
			}
		}
		records = append(records, []string{
			strconv.Itoa(sess.Plan.Year),
			strconv.Itoa(sess.Plan.Month),
			strconv.Itoa(int(sess.Depto.ID)),
			sess.Depto.Name,
			sess.Depto.Crop,
			r.Fecha,
			strconv.Itoa(r.Linea),
			r.LoteID,
			r.RedID,
			r.SectorID,
			codigo,
			labor,
			subgrupo,
			grupo,
			num(grid.ToNumber(r.HaProg)),
			num(grid.ToNumber(r.Ratio)),
			num(grid.ToNumber(r.Jornales)),
			string(r.Modo),
			r.Obs,
		})
	}

	name := fmt.Sprintf("plan_%04d_%02d_%d", sess.Plan.Year, sess.Plan.Month, sess.Depto.ID)
	return records, name, nil
}

func (s *exportSvc) versionRecords(versionID uint) ([][]string, string, error) {
	v, err := s.versions.ByID(versionID)
	if err != nil {
		return nil, "", err
	}
	rows, err := s.versions.Detail(versionID)
	if err != nil {
		return nil, "", err
	}
	labores, err := s.catalog.LaborIndex()
	if err != nil {
		return nil, "", err
	}

	records := [][]string{versionHeader}
	for _, r := range rows {
		codigo, labor, grupo, subgrupo := "", "", "", ""
		if r.CodigoLab != nil {
			codigo = strconv.Itoa(*r.CodigoLab)
			if l, ok := labores[*r.CodigoLab]; ok {
				labor, grupo, subgrupo = l.Name, l.Group, l.Subgroup
			}
		}
		records = append(records, []string{
			strconv.Itoa(int(r.VersionID)),
			r.Fecha,
			strconv.Itoa(r.Linea),
			r.LoteID,
			r.RedID,
			r.SectorID,
			codigo,
			labor,
			grupo,
			subgrupo,
			num(r.HaProg),
			num(r.Ratio),
			num(r.Jornales),
			r.Obs,
		})
	}

	name := fmt.Sprintf("version_%04d_%02d_%d", v.Year, v.Month, v.ID)
	return records, name, nil
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSX(sheet string, records [][]string) ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()

	x.SetSheetName("Sheet1", sheet)
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		row := make([]any, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportSvc) PlanCSV(planID uint) ([]byte, string, error) {
	records, name, err := s.planRecords(planID)
	if err != nil {
		return nil, "", err
	}
	b, err := writeCSV(records)
	return b, name + ".csv", err
}

func (s *exportSvc) PlanXLSX(planID uint) ([]byte, string, error) {
	records, name, err := s.planRecords(planID)
	if err != nil {
		return nil, "", err
	}
	b, err := writeXLSX("Plan", records)
	return b, name + ".xlsx", err
}

func (s *exportSvc) VersionCSV(versionID uint) ([]byte, string, error) {
	records, name, err := s.versionRecords(versionID)
	if err != nil {
		return nil, "", err
	}
	b, err := writeCSV(records)
	return b, name + ".csv", err
}

func (s *exportSvc) VersionXLSX(versionID uint) ([]byte, string, error) {
	records, name, err := s.versionRecords(versionID)
	if err != nil {
		return nil, "", err
	}
	b, err := writeXLSX("Version", records)
	return b, name + ".xlsx", err
}
