package pretty

import (
	"fmt"
	"strings"

	"github.com/a1f/pyguard/pkg/diag"
)

// FormatDiagnostic formats a single diagnostic as one line of terminal
// output, `PATH:LINE:COL: SEVERITY [CODE] MESSAGE`, optionally followed by
// the offending source line with a caret marker.
func (s *Styles) FormatDiagnostic(d *diag.Diagnostic, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(d.File),
		d.Location.Line,
		d.Location.Column,
	)

	severity := s.FormatSeverity(d.Severity)
	ruleDisplay := s.RuleID.Render("[" + string(d.Code) + "]")

	builder.WriteString(fmt.Sprintf("%s: %s %s %s\n",
		location,
		severity,
		ruleDisplay,
		s.Message.Render(d.Message),
	))

	if showContext && d.SourceLine != "" {
		builder.WriteString(s.FormatSourceContext(d.SourceLine, d.Location.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled, uppercased severity string.
func (s *Styles) FormatSeverity(sev diag.Severity) string {
	switch sev {
	case diag.SeverityError:
		return s.Error.Render("ERROR")
	case diag.SeverityWarn:
		return s.Warning.Render("WARN")
	default:
		return strings.ToUpper(string(sev))
	}
}

// FormatSourceContext formats the source line with a caret marker beneath
// the diagnostic's column, then a separating blank line.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "    "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}
	builder.WriteString("\n")

	return builder.String()
}

