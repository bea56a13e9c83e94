package domain

// ProposalDocument is the schema-constrained business proposal produced by
// the synthesis service. Six fixed string fields, fixed order; produced on
// demand and never persisted.
type ProposalDocument struct {
	Title               string `json:"title"`
	ProblemAnalysis     string `json:"problemAnalysis"`
	SolutionMapping     string `json:"solutionMapping"`
	ROICalculation      string `json:"roiCalculation"`
	InvestmentBreakdown string `json:"investmentBreakdown"`
	CTA                 string `json:"cta"`
}

// ProposalRequest is the request to synthesize a proposal for a session.
type ProposalRequest struct {
	Context  string `json:"context,omitempty"`
	Language string `json:"language,omitempty"`
}
