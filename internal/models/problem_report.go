package models

import "easyconvert.app/reportdb"

// ProblemReport is the API view of a stored report about a query that could not be converted.
type ProblemReport struct {
	ID          string `json:"id"`
	Query       string `json:"query"`
	Comment     string `json:"comment"`
	FailureKind string `json:"failureKind"`
	// CreatedAt is in Unix milliseconds, like the envelope's currentTime.
	CreatedAt int64 `json:"createdAt"`
}

func NewProblemReport(r reportdb.ProblemReport) ProblemReport {
	return ProblemReport{
		ID:          r.ID,
		Query:       r.Query,
		Comment:     r.Comment,
		FailureKind: r.FailureKind,
		CreatedAt:   r.CreatedAt.UnixMilli(),
	}
}

func NewProblemReports(reports []reportdb.ProblemReport) []ProblemReport {
	out := make([]ProblemReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, NewProblemReport(r))
	}
	return out
}
