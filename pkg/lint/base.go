package lint

import (
	"github.com/a1f/pyguard/pkg/diag"
)

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override Apply.
type BaseRule struct {
	id       diag.RuleCode
	name     string
	desc     string
	severity diag.Severity
	fixable  bool
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id diag.RuleCode, name, desc string, severity diag.Severity, fixable bool) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		severity: severity,
		fixable:  fixable,
	}
}

// ID returns the rule's stable code.
func (r *BaseRule) ID() diag.RuleCode {
	return r.id
}

// Name returns the rule's short identifier.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a one-line summary of the rule.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultSeverity returns the severity applied when configuration does not
// override it.
func (r *BaseRule) DefaultSeverity() diag.Severity {
	return r.severity
}

// CanFix reports whether the rule can produce fix edits.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *RuleContext) ([]diag.Diagnostic, error) {
	return nil, nil
}
