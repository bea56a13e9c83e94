package domain

// Subscription plans
const (
	PlanFree         = "Free"
	PlanProfessional = "Professional"
	PlanEnterprise   = "Enterprise Pro"
)

// PlanLimit caps workspace resources for one subscription tier. Limits are
// enforced at the creation boundary, not inside the orchestration core.
type PlanLimit struct {
	Agents      int      `json:"agents"`
	Touchpoints int      `json:"touchpoints"`
	Features    []string `json:"features"`
}

// PlanLimits is the static tier table.
var PlanLimits = map[string]PlanLimit{
	PlanFree:         {Agents: 1, Touchpoints: 5, Features: []string{"Basic Analytics"}},
	PlanProfessional: {Agents: 5, Touchpoints: 50, Features: []string{"CRM Sync", "Pro Analytics"}},
	PlanEnterprise:   {Agents: 100, Touchpoints: 1000, Features: []string{"NFC Hardware", "Global Sync"}},
}

// LimitsFor returns the limits for a plan, defaulting to the Free tier for
// unknown plan names.
func LimitsFor(plan string) PlanLimit {
	if l, ok := PlanLimits[plan]; ok {
		return l
	}
	return PlanLimits[PlanFree]
}

// PlanHasFeature reports whether a plan carries a named feature.
func PlanHasFeature(plan, feature string) bool {
	for _, f := range LimitsFor(plan).Features {
		if f == feature {
			return true
		}
	}
	return false
}
