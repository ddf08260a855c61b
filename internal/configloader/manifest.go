package configloader

import "fmt"

// manifestDoc mirrors the shape of a pyproject.toml file down to the one
// section pyguard reads.
type manifestDoc struct {
	Tool struct {
		Pyguard pyguardManifest `toml:"pyguard"`
	} `toml:"tool"`
}

// pyguardManifest is the `[tool.pyguard]` section and its subsections.
type pyguardManifest struct {
	PythonVersion string               `toml:"python_version"`
	Include       []string             `toml:"include"`
	Exclude       []string             `toml:"exclude"`
	OutputFormat  string               `toml:"output_format"`
	ShowSource    *bool                `toml:"show_source"`
	Color         string               `toml:"color"`
	Rules         map[string]ruleEntry `toml:"rules"`
	TYP001        *typ001Manifest      `toml:"TYP001"`
	TYP003        *typ003Manifest      `toml:"TYP003"`
	KW001         *kw001Manifest       `toml:"KW001"`
	Ignores       ignoresManifest      `toml:"ignores"`
}

// ruleEntry accepts either a bare severity string (`TYP001 = "error"`) or a
// table with a `severity` key (`TYP001 = {severity = "error"}`), per
// spec.md's `[tool.pyguard.rules]` grammar.
type ruleEntry struct {
	Severity string
}

// UnmarshalTOML implements toml.Unmarshaler; the decoder hands the
// already-decoded value (string, map[string]any, ...) rather than raw
// bytes.
func (r *ruleEntry) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		r.Severity = v
		return nil
	case map[string]any:
		sev, ok := v["severity"]
		if !ok {
			return fmt.Errorf("rule table missing required key \"severity\"")
		}
		sevStr, ok := sev.(string)
		if !ok {
			return fmt.Errorf("\"severity\" must be a string, got %T", sev)
		}
		r.Severity = sevStr
		return nil
	default:
		return fmt.Errorf("rule entry must be a string or a table, got %T", value)
	}
}

type typ001Manifest struct {
	ExemptDunder  *bool `toml:"exempt_dunder"`
	ExemptSelfCls *bool `toml:"exempt_self_cls"`
}

type typ003Manifest struct {
	Scope []string `toml:"scope"`
}

type kw001Manifest struct {
	MinParams       *int  `toml:"min_params"`
	ExemptDunder    *bool `toml:"exempt_dunder"`
	ExemptPrivate   *bool `toml:"exempt_private"`
	ExemptOverrides *bool `toml:"exempt_overrides"`
}

type ignoresManifest struct {
	RequireReason *bool    `toml:"require_reason"`
	Disallow      []string `toml:"disallow"`
	MaxPerFile    *int     `toml:"max_per_file"`
}
