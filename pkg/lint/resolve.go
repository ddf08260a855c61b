package lint

import (
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
)

// ResolvedRule pairs a Rule with its resolved severity for a run.
type ResolvedRule struct {
	Rule     Rule
	Severity diag.Severity
}

// ResolveRules returns every rule whose configured severity is not "off",
// in the registry's stable code order, paired with that resolved severity.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule
	for _, rule := range registry.Rules() {
		sev := cfg.Severity(rule.ID())
		if sev == diag.SeverityOff {
			continue
		}
		resolved = append(resolved, ResolvedRule{Rule: rule, Severity: sev})
	}
	return resolved
}
