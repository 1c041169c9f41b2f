package catalog

import "slices"

// Regions returns the federative units in display order
func Regions() []Region {
	return slices.Clone(regions)
}

// AnalysisTypes returns the selectable information systems
func AnalysisTypes() []AnalysisType {
	return slices.Clone(analysisTypes)
}

// Granularities returns the selectable aggregation periods
func Granularities() []Granularity {
	return slices.Clone(granularities)
}

// DiseaseClasses returns the disease groups with their own copies of the
// ICD-10 prefix slices
func DiseaseClasses() []DiseaseClass {
	out := make([]DiseaseClass, len(diseases))
	for i, d := range diseases {
		d.FilterCodes = slices.Clone(d.FilterCodes)
		out[i] = d
	}
	return out
}

// RegionByCode finds a federative unit by its two-letter code
func RegionByCode(code string) (Region, bool) {
	for _, r := range regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// AnalysisBySystem finds an analysis type by its collaborator system code
func AnalysisBySystem(system string) (AnalysisType, bool) {
	for _, a := range analysisTypes {
		if a.System == system {
			return a, true
		}
	}
	return AnalysisType{}, false
}

// DiseaseBySlug finds a disease class by slug
func DiseaseBySlug(slug string) (DiseaseClass, bool) {
	for _, d := range DiseaseClasses() {
		if d.Slug == slug {
			return d, true
		}
	}
	return DiseaseClass{}, false
}

// GranularityByMode finds the granularity entry for a mode
func GranularityByMode(mode Mode) (Granularity, bool) {
	for _, g := range granularities {
		if g.Mode == mode {
			return g, true
		}
	}
	return Granularity{}, false
}

// RegionLabels returns the searchable labels of Regions, same order
func RegionLabels() []string {
	out := make([]string, len(regions))
	for i, r := range regions {
		out[i] = r.Label()
	}
	return out
}

func AnalysisLabels() []string {
	out := make([]string, len(analysisTypes))
	for i, a := range analysisTypes {
		out[i] = a.Label
	}
	return out
}

func GranularityLabels() []string {
	out := make([]string, len(granularities))
	for i, g := range granularities {
		out[i] = g.Label
	}
	return out
}

func DiseaseLabels() []string {
	out := make([]string, len(diseases))
	for i, d := range diseases {
		out[i] = d.Label
	}
	return out
}
