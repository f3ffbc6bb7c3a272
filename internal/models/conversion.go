package models

import (
	"net/url"

	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/units"
)

// ConversionEntry is the API view of a converted query.
type ConversionEntry struct {
	Query        string  `json:"query"`
	InputValue   string  `json:"inputValue"`
	InputUnit    string  `json:"inputUnit"`
	InputUnitID  string  `json:"inputUnitId"`
	InputPrefix  string  `json:"inputPrefix,omitempty"`
	OutputValue  string  `json:"outputValue"`
	OutputUnit   string  `json:"outputUnit"`
	OutputUnitID string  `json:"outputUnitId"`
	OutputPrefix string  `json:"outputPrefix,omitempty"`
	Type         string  `json:"type"`
	Value        float64 `json:"value"`
}

// NewConversionData builds the entry for a conversion result together with references to the
// units and prefixes it resolved to.
func NewConversionData(query string, r conversion.ConversionResult) (ConversionEntry, ReferencesModel) {
	entry := ConversionEntry{
		Query:        query,
		InputValue:   r.InputValue,
		InputUnit:    r.InputUnit,
		InputUnitID:  UnitID(r.In.Unit),
		InputPrefix:  prefixName(r.In),
		OutputValue:  r.OutputValue,
		OutputUnit:   r.OutputUnit,
		OutputUnitID: UnitID(r.Out.Unit),
		OutputPrefix: prefixName(r.Out),
		Type:         r.Type,
		Value:        r.Value,
	}

	refs := NewEmptyReferences()
	for _, m := range []units.Match{r.In, r.Out} {
		refs.AddUnit(NewUnit(m.Unit))
		if m.Prefix != nil {
			refs.AddPrefix(NewPrefix(m.Prefix))
		}
	}
	return entry, refs
}

func prefixName(m units.Match) string {
	if m.Prefix == nil {
		return ""
	}
	return m.Prefix.DisplayName
}

// ReportProblemPath accepts problem reports by GET query string or POST form.
const ReportProblemPath = "/api/report-problem.json"

// ReportProblemURL is the API link offered when a query cannot be parsed. Opening it records a
// report, so pages submit ReportProblemPath from a form instead of linking here.
func ReportProblemURL(query string) string {
	return ReportProblemPath + "?query=" + url.QueryEscape(query)
}
