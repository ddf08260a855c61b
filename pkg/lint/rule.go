// Package lint provides the rule protocol, registry, and rule-execution
// engine for pyguard.
package lint

import (
	"context"

	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/pyast"
)

// Rule is the contract every check implements. A Rule inspects a parsed
// file and reports diagnostics; it never mutates the tree it is given.
type Rule interface {
	// ID returns the rule's stable code, e.g. "TYP001".
	ID() diag.RuleCode

	// Name returns a short human-readable identifier, e.g. "missing-param-annotation".
	Name() string

	// Description returns a one-line summary shown by the explain command.
	Description() string

	// DefaultSeverity returns the severity applied when no override is configured.
	DefaultSeverity() diag.Severity

	// CanFix reports whether the rule's diagnostics may carry fix edits.
	CanFix() bool

	// Apply runs the rule against ctx.Root and returns its diagnostics.
	Apply(ctx *RuleContext) ([]diag.Diagnostic, error)
}

// RuleContext carries everything a Rule needs to inspect a file and build
// diagnostics against it.
type RuleContext struct {
	Ctx context.Context

	File *pyast.FileSnapshot
	Root *pyast.Node

	Config     *config.Config
	RuleConfig config.RuleConfig

	Registry *Registry
}

// NewRuleContext builds a RuleContext for a single file.
func NewRuleContext(ctx context.Context, file *pyast.FileSnapshot, cfg *config.Config) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Root:       file.Root,
		Config:     cfg,
		RuleConfig: cfg.Rules,
	}
}

// Cancelled reports whether the context has been cancelled.
func (c *RuleContext) Cancelled() bool {
	select {
	case <-c.Ctx.Done():
		return true
	default:
		return false
	}
}
