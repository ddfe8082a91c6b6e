package types

import (
	"regexp"
	"strconv"
	"strings"

	"jornales/entities"
)

func normKey(v string) string { return strings.ToUpper(strings.TrimSpace(v)) }

// DedupeDepartments collapses catalog rows sharing the same (name, crop) pair
// into one selectable option, keeping the first occurrence.
func DedupeDepartments(data []entities.Department) []entities.Department {
	var out []entities.Department
	seen := map[string]bool{}
	for _, d := range data {
		k := normKey(d.Name) + "|" + normKey(d.Crop)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	return out
}

// DepartmentLabel renders "name - crop" unless the name already contains the
// crop.
func DepartmentLabel(d entities.Department) string {
	dep := strings.TrimSpace(d.Name)
	cul := strings.TrimSpace(d.Crop)
	if cul == "" || strings.Contains(strings.ToUpper(dep), strings.ToUpper(cul)) {
		return dep
	}
	return dep + " - " + cul
}

var (
	redCropSuffix  = regexp.MustCompile(`(?i)_PALTO|_PAL|_ARANDANOS|_ARANDANO|_ARA`)
	redUnderscores = regexp.MustCompile(`__+`)
	sectorTail     = regexp.MustCompile(`(?i)(?:_|-)S(\d+)$`)
	sectorAny      = regexp.MustCompile(`(?i)S(\d+)`)
)

// FormatRedID shortens a raw network id for display: "R01_L01_Pal:R01" → "R01_L01".
func FormatRedID(raw string) string {
	if raw == "" {
		return ""
	}
	x := strings.SplitN(raw, ":", 2)[0]
	x = redCropSuffix.ReplaceAllString(x, "")
	x = redUnderscores.ReplaceAllString(x, "_")
	x = strings.TrimSuffix(x, "_")
	return x
}

// FormatSectorLabel shortens a raw sector id for display: "L05_ARA_R01_S02" → "S2".
// The full sector_id stays the stored value; this is display only.
func FormatSectorLabel(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if m := sectorTail.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return "S" + strconv.Itoa(n)
	}
	if m := sectorAny.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return "S" + strconv.Itoa(n)
	}
	return s
}
