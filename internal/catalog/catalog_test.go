package catalog

import (
	"strings"
	"testing"
)

func TestRegions_Complete(t *testing.T) {
	rs := Regions()
	if len(rs) != 27 {
		t.Fatalf("expected 27 federative units, got %d", len(rs))
	}

	codes := make(map[string]bool)
	ibge := make(map[string]bool)
	for _, r := range rs {
		if len(r.Code) != 2 {
			t.Errorf("region %q: code should have two letters", r.Name)
		}
		if codes[r.Code] {
			t.Errorf("duplicate region code %s", r.Code)
		}
		if ibge[r.IBGE] {
			t.Errorf("duplicate IBGE code %s", r.IBGE)
		}
		codes[r.Code] = true
		ibge[r.IBGE] = true
	}
}

func TestRegion_Label(t *testing.T) {
	sp, ok := RegionByCode("SP")
	if !ok {
		t.Fatal("expected SP in catalog")
	}
	if got := sp.Label(); got != "SP - São Paulo (35)" {
		t.Errorf("unexpected label: %q", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	rs := Regions()
	rs[0].Code = "XX"
	if Regions()[0].Code == "XX" {
		t.Error("mutating Regions() result changed the catalog")
	}

	ds := DiseaseClasses()
	ds[0].FilterCodes[0] = "Z"
	if DiseaseClasses()[0].FilterCodes[0] == "Z" {
		t.Error("mutating disease filter codes changed the catalog")
	}
}

func TestDiseaseClass_FilterArg(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"cardiovasculares", "I"},
		{"diabetes", "E10,E11,E12,E13,E14"},
		{"cancer", "C,D0,D1,D2,D3,D4"},
		{"doenca_renal_cronica", "N18,N19"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			d, ok := DiseaseBySlug(tt.slug)
			if !ok {
				t.Fatalf("disease %s not found", tt.slug)
			}
			if got := d.FilterArg(); got != tt.want {
				t.Errorf("FilterArg() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookups(t *testing.T) {
	if a, ok := AnalysisBySystem("SIH-RD"); !ok || a.Slug != "internacoes" {
		t.Errorf("AnalysisBySystem(SIH-RD) = %+v, %v", a, ok)
	}
	if g, ok := GranularityByMode(ModeMonth); !ok || g.Slug != "mensal" {
		t.Errorf("GranularityByMode(month) = %+v, %v", g, ok)
	}
	if _, ok := RegionByCode("ZZ"); ok {
		t.Error("unexpected region for unknown code")
	}
}

func TestLabelsMatchOrder(t *testing.T) {
	labels := RegionLabels()
	for i, r := range Regions() {
		if labels[i] != r.Label() {
			t.Errorf("label %d = %q, want %q", i, labels[i], r.Label())
		}
	}
	for i, d := range DiseaseClasses() {
		if DiseaseLabels()[i] != d.Label {
			t.Errorf("disease label %d out of order", i)
		}
	}
	if !strings.HasPrefix(GranularityLabels()[0], "Anual") {
		t.Errorf("year granularity should be listed first, got %q", GranularityLabels()[0])
	}
	if AnalysisLabels()[0] != "Óbitos (SIM-DO)" {
		t.Errorf("unexpected first analysis label %q", AnalysisLabels()[0])
	}
}
