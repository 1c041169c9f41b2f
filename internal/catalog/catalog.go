// Package catalog holds the read-only reference tables offered to the operator:
// federative units, analysis systems, granularities and chronic disease classes.
package catalog

import (
	"fmt"
	"strings"
)

// Mode is the aggregation period of an extracted series
type Mode string

const (
	ModeYear  Mode = "year"
	ModeMonth Mode = "month"
)

// Region is a Brazilian federative unit (UF)
type Region struct {
	Code string // two-letter code passed to the extractor (--uf)
	IBGE string // numeric code passed to the forecaster (--estado)
	Name string
}

// Label is the searchable "code - name (ibge)" form
func (r Region) Label() string {
	return fmt.Sprintf("%s - %s (%s)", r.Code, r.Name, r.IBGE)
}

// DiseaseClass groups ICD-10 prefixes under one selectable label
type DiseaseClass struct {
	Label       string
	Slug        string
	FilterCodes []string
}

// FilterArg joins the ICD-10 prefixes the way the extractor expects them
func (d DiseaseClass) FilterArg() string {
	return strings.Join(d.FilterCodes, ",")
}

// AnalysisType selects the DATASUS information system to export from
type AnalysisType struct {
	Label  string
	System string
	Slug   string
}

// Granularity is a selectable aggregation period
type Granularity struct {
	Label string
	Mode  Mode
	Slug  string
}

var regions = []Region{
	{Code: "AC", IBGE: "12", Name: "Acre"},
	{Code: "AL", IBGE: "27", Name: "Alagoas"},
	{Code: "AP", IBGE: "16", Name: "Amapá"},
	{Code: "AM", IBGE: "13", Name: "Amazonas"},
	{Code: "BA", IBGE: "29", Name: "Bahia"},
	{Code: "CE", IBGE: "23", Name: "Ceará"},
	{Code: "DF", IBGE: "53", Name: "Distrito Federal"},
	{Code: "ES", IBGE: "32", Name: "Espírito Santo"},
	{Code: "GO", IBGE: "52", Name: "Goiás"},
	{Code: "MA", IBGE: "21", Name: "Maranhão"},
	{Code: "MT", IBGE: "51", Name: "Mato Grosso"},
	{Code: "MS", IBGE: "50", Name: "Mato Grosso do Sul"},
	{Code: "MG", IBGE: "31", Name: "Minas Gerais"},
	{Code: "PA", IBGE: "15", Name: "Pará"},
	{Code: "PB", IBGE: "25", Name: "Paraíba"},
	{Code: "PR", IBGE: "41", Name: "Paraná"},
	{Code: "PE", IBGE: "26", Name: "Pernambuco"},
	{Code: "PI", IBGE: "22", Name: "Piauí"},
	{Code: "RJ", IBGE: "33", Name: "Rio de Janeiro"},
	{Code: "RN", IBGE: "24", Name: "Rio Grande do Norte"},
	{Code: "RS", IBGE: "43", Name: "Rio Grande do Sul"},
	{Code: "RO", IBGE: "11", Name: "Rondônia"},
	{Code: "RR", IBGE: "14", Name: "Roraima"},
	{Code: "SC", IBGE: "42", Name: "Santa Catarina"},
	{Code: "SP", IBGE: "35", Name: "São Paulo"},
	{Code: "SE", IBGE: "28", Name: "Sergipe"},
	{Code: "TO", IBGE: "17", Name: "Tocantins"},
}

var analysisTypes = []AnalysisType{
	{Label: "Óbitos (SIM-DO)", System: "SIM-DO", Slug: "obitos"},
	{Label: "Óbitos (SIM-DO-PRELIM)", System: "SIM-DO-PRELIM", Slug: "obitos_prelim"},
	{Label: "Internações (SIH-RD)", System: "SIH-RD", Slug: "internacoes"},
}

var granularities = []Granularity{
	{Label: "Anual (por ano)", Mode: ModeYear, Slug: "anual"},
	{Label: "Mensal (por mês)", Mode: ModeMonth, Slug: "mensal"},
}

var diseases = []DiseaseClass{
	{
		Label:       "Doenças cardiovasculares (CID-10: I)",
		Slug:        "cardiovasculares",
		FilterCodes: []string{"I"},
	},
	{
		Label:       "Diabetes mellitus (E10-E14)",
		Slug:        "diabetes",
		FilterCodes: []string{"E10", "E11", "E12", "E13", "E14"},
	},
	{
		Label:       "Doenças respiratórias crônicas (J40-J47,J45-J46)",
		Slug:        "respiratorias_cronicas",
		FilterCodes: []string{"J40", "J41", "J42", "J43", "J44", "J45", "J46", "J47"},
	},
	{
		Label:       "Neoplasias / Câncer (C e D0-D4)",
		Slug:        "cancer",
		FilterCodes: []string{"C", "D0", "D1", "D2", "D3", "D4"},
	},
	{
		Label:       "Hipertensão e doenças hipertensivas (I10-I15)",
		Slug:        "hipertensao",
		FilterCodes: []string{"I10", "I11", "I12", "I13", "I14", "I15"},
	},
	{
		Label:       "Doença renal crônica (N18-N19)",
		Slug:        "doenca_renal_cronica",
		FilterCodes: []string{"N18", "N19"},
	},
}
