package rules

import (
	"strings"

	"github.com/a1f/pyguard/internal/logging"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/pyast"
)

// stdlibModules is a curated snapshot of top-level standard library module
// names for the target language. The host toolchain has no runtime
// equivalent of sys.stdlib_module_names, so this fixer carries its own
// fixed set; it only needs to be "mostly right" since it only decides
// where in the new import block a hoisted import lands, never whether the
// hoist happens at all.
var stdlibModules = map[string]bool{
	"abc": true, "argparse": true, "array": true, "ast": true,
	"asyncio": true, "base64": true, "bisect": true, "builtins": true,
	"calendar": true, "collections": true, "contextlib": true,
	"copy": true, "csv": true, "dataclasses": true, "datetime": true,
	"decimal": true, "enum": true, "errno": true, "functools": true,
	"glob": true, "gzip": true, "hashlib": true, "heapq": true,
	"hmac": true, "html": true, "http": true, "importlib": true,
	"inspect": true, "io": true, "ipaddress": true, "itertools": true,
	"json": true, "logging": true, "math": true, "mimetypes": true,
	"multiprocessing": true, "numbers": true, "operator": true,
	"os": true, "pathlib": true, "pickle": true, "platform": true,
	"pprint": true, "queue": true, "random": true, "re": true,
	"sched": true, "secrets": true, "shlex": true, "shutil": true,
	"signal": true, "socket": true, "sqlite3": true, "ssl": true,
	"stat": true, "statistics": true, "string": true, "struct": true,
	"subprocess": true, "sys": true, "tempfile": true, "textwrap": true,
	"threading": true, "time": true, "traceback": true, "types": true,
	"typing": true, "unicodedata": true, "unittest": true, "urllib": true,
	"uuid": true, "warnings": true, "weakref": true, "xml": true,
	"zipfile": true, "zlib": true,
}

// fixIMP001 hoists simple, single-line function-local imports to module
// level. Multi-line imports and imports shielded by a TYPE_CHECKING guard
// or an except-ImportError handler are left alone.
func fixIMP001(path string, content []byte) []byte {
	parsed := pyast.Parse(path, content)
	if parsed.Err != nil {
		return content
	}
	snap := parsed.File

	c := &imp001Collector{}
	c.visit(snap.Root)
	if len(c.localImports) == 0 {
		return content
	}

	lines := splitLinesKeepEnds(content)
	if len(lines) == 0 {
		return content
	}

	existingTexts := map[string]bool{}
	for _, n := range c.moduleImports {
		idx := n.SourcePosition().StartLine - 1
		if idx >= 0 && idx < len(lines) {
			existingTexts[strings.TrimSpace(lines[idx])] = true
		}
	}

	linesToRemove := map[int]bool{}
	var newImportTexts []string
	seen := map[string]bool{}
	for _, n := range c.localImports {
		pos := n.SourcePosition()
		if pos.EndLine > pos.StartLine {
			continue
		}
		idx := pos.StartLine - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		linesToRemove[idx] = true
		text := strings.TrimSpace(lines[idx])
		if !existingTexts[text] && !seen[text] {
			seen[text] = true
			newImportTexts = append(newImportTexts, text)
		}
	}
	if len(linesToRemove) == 0 {
		return content
	}

	kept := make([]string, 0, len(lines))
	for idx, line := range lines {
		if !linesToRemove[idx] {
			kept = append(kept, line)
		}
	}

	if len(newImportTexts) == 0 {
		out := []byte(strings.Join(kept, ""))
		if p := pyast.Parse(path, out); p.Err != nil {
			return content
		}
		return out
	}

	var stdlibTexts, otherTexts []string
	for _, t := range newImportTexts {
		if isStdlibImportText(t) {
			stdlibTexts = append(stdlibTexts, t)
		} else {
			otherTexts = append(otherTexts, t)
		}
	}

	var block []string
	for _, imp := range stdlibTexts {
		block = append(block, imp+"\n")
	}
	if len(stdlibTexts) > 0 && len(otherTexts) > 0 {
		block = append(block, "\n")
	}
	for _, imp := range otherTexts {
		block = append(block, imp+"\n")
	}

	insertPos := 0
	if len(stdlibTexts) == 0 {
		insertPos = afterLastTopLevelImport(kept)
	}
	if insertPos < len(kept) && strings.TrimSpace(kept[insertPos]) != "" {
		block = append(block, "\n")
	}

	result := make([]string, 0, len(kept)+len(block))
	result = append(result, kept[:insertPos]...)
	result = append(result, block...)
	result = append(result, kept[insertPos:]...)

	out := []byte(strings.Join(result, ""))
	if p := pyast.Parse(path, out); p.Err != nil {
		logging.Default().Debug("fix output failed to re-parse; leaving file unchanged",
			logging.FieldPath, path,
			logging.FieldRule, diag.IMP001,
		)
		return content
	}
	return out
}

// imp001Collector mirrors imp001Visitor's scope tracking but partitions
// imports into module-level and function-local buckets instead of
// producing diagnostics directly.
type imp001Collector struct {
	functionDepth     int
	inTypeChecking    bool
	inTryExceptImport bool
	moduleImports     []*pyast.Node
	localImports      []*pyast.Node
}

func (c *imp001Collector) visit(n *pyast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case pyast.NodeFunctionDef, pyast.NodeAsyncFunctionDef:
		c.functionDepth++
		for _, ch := range childStmtsOf(n) {
			c.visit(ch)
		}
		c.functionDepth--
		return

	case pyast.NodeIf:
		if isTypeCheckingGuard(n.Stmt.Test) {
			prev := c.inTypeChecking
			c.inTypeChecking = true
			for _, ch := range n.Stmt.Body {
				c.visit(ch)
			}
			c.inTypeChecking = prev
			for _, ch := range n.Stmt.OrElse {
				c.visit(ch)
			}
			return
		}
		for _, ch := range childStmtsOf(n) {
			c.visit(ch)
		}
		return

	case pyast.NodeTry:
		catches := false
		for _, h := range n.Stmt.Handlers {
			if catchesImportError(h) {
				catches = true
				break
			}
		}
		if catches {
			prev := c.inTryExceptImport
			c.inTryExceptImport = true
			for _, ch := range childStmtsOf(n) {
				c.visit(ch)
			}
			c.inTryExceptImport = prev
			return
		}
		for _, ch := range childStmtsOf(n) {
			c.visit(ch)
		}
		return

	case pyast.NodeImport, pyast.NodeImportFrom:
		c.collect(n)
		return
	}

	for _, ch := range childStmtsOf(n) {
		c.visit(ch)
	}
}

func (c *imp001Collector) collect(n *pyast.Node) {
	if c.inTypeChecking || c.inTryExceptImport {
		return
	}
	if c.functionDepth > 0 {
		c.localImports = append(c.localImports, n)
	} else {
		c.moduleImports = append(c.moduleImports, n)
	}
}

func afterLastTopLevelImport(lines []string) int {
	last := -1
	for idx, line := range lines {
		// Only column-0 imports count as top-level; an indented import is
		// inside some suite and must not anchor the insertion point.
		if strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "from ") {
			last = idx
		}
	}
	if last >= 0 {
		return last + 1
	}
	return 0
}

func isStdlibImportText(text string) bool {
	text = strings.TrimSpace(text)
	var module string
	switch {
	case strings.HasPrefix(text, "from "):
		fields := strings.Fields(text)
		if len(fields) > 1 {
			module = fields[1]
		}
	case strings.HasPrefix(text, "import "):
		fields := strings.Fields(text)
		if len(fields) > 1 {
			module = strings.TrimSuffix(fields[1], ",")
		}
	default:
		return false
	}
	top := module
	if i := strings.IndexByte(module, '.'); i >= 0 {
		top = module[:i]
	}
	return stdlibModules[top]
}

// splitLinesKeepEnds splits content into lines, keeping each line's
// trailing newline (supporting both \n and \r\n) attached.
func splitLinesKeepEnds(content []byte) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, string(content[start:i+1]))
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, string(content[start:]))
	}
	return lines
}
