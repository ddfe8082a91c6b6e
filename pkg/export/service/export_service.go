package service

// ExportService renders the flat, ordered set of non-empty rows, enriched
// with labor name, group and subgroup, for offline reporting. Plans export
// the live grid; versions export their frozen detail.
type ExportService interface {
	PlanCSV(planID uint) (content []byte, filename string, err error)
	PlanXLSX(planID uint) (content []byte, filename string, err error)
	VersionCSV(versionID uint) (content []byte, filename string, err error)
	VersionXLSX(versionID uint) (content []byte, filename string, err error)
}
