package pyast

import (
	"strings"
	"testing"
)

func TestBuildLinesIsLossless(t *testing.T) {
	cases := []string{
		"",
		"a\n",
		"a\nb\nc",
		"a\r\nb\r\n",
		"no newline at all",
	}
	for _, src := range cases {
		content := []byte(src)
		lines := BuildLines(content)
		var rebuilt []byte
		for _, li := range lines {
			rebuilt = append(rebuilt, content[li.StartOffset:li.EndOffset]...)
		}
		if string(rebuilt) != src {
			t.Errorf("BuildLines(%q) did not reconstruct losslessly, got %q", src, rebuilt)
		}
	}
}

func TestParseSimpleFunction(t *testing.T) {
	src := "def process(x: int, y: str, z):\n    return x\n"
	res := Parse("t.py", []byte(src))
	if res.Err != nil {
		t.Fatalf("unexpected syntax error: %+v", res.Err)
	}
	if res.File == nil || res.File.Root == nil {
		t.Fatal("expected a parsed root")
	}
	var fn *Node
	Walk(res.File.Root, func(n *Node) {
		if n.Kind == NodeFunctionDef {
			fn = n
		}
	})
	if fn == nil {
		t.Fatal("expected to find a function definition")
	}
	params := fn.Stmt.Params.All()
	if len(params) != 3 {
		t.Fatalf("got %d params, want 3", len(params))
	}
	if params[2].Name != "z" || params[2].Annotation != nil {
		t.Errorf("param[2] = %+v, want unannotated 'z'", params[2])
	}
}

func TestParseLoopAndContextStatements(t *testing.T) {
	src := "for i, v in enumerate(xs):\n" +
		"    total += v\n" +
		"else:\n" +
		"    pass\n" +
		"\n" +
		"while total > 0:\n" +
		"    total -= 1\n" +
		"\n" +
		"with open(path) as f, lock:\n" +
		"    data = f.read()\n"
	res := Parse("t.py", []byte(src))
	if res.Err != nil {
		t.Fatalf("unexpected syntax error: %+v", res.Err)
	}
	body := res.File.Root.Stmt.Body
	if len(body) != 3 {
		t.Fatalf("got %d top-level statements, want 3", len(body))
	}
	if body[0].Kind != NodeFor || body[1].Kind != NodeWhile || body[2].Kind != NodeWith {
		t.Fatalf("kinds = %v %v %v, want For/While/With", body[0].Kind, body[1].Kind, body[2].Kind)
	}
	if len(body[0].Stmt.OrElse) != 1 {
		t.Errorf("for-else body has %d statements, want 1", len(body[0].Stmt.OrElse))
	}
	with := body[2]
	if len(with.Stmt.Items) != 2 {
		t.Fatalf("with has %d items, want 2", len(with.Stmt.Items))
	}
	if with.Stmt.Targets[0] == nil || with.Stmt.Targets[0].Expr.Name != "f" {
		t.Errorf("first with item's as-target = %+v, want name 'f'", with.Stmt.Targets[0])
	}
	if with.Stmt.Targets[1] != nil {
		t.Errorf("second with item should have no as-target")
	}
	if len(with.Stmt.Body) != 1 || with.Stmt.Body[0].Kind != NodeAssign {
		t.Errorf("with body = %+v, want a single assignment", with.Stmt.Body)
	}
}

func TestParseOpaqueSimpleStatements(t *testing.T) {
	src := "def f(xs):\n" +
		"    assert xs, 'empty'\n" +
		"    for x in xs:\n" +
		"        if x < 0:\n" +
		"            continue\n" +
		"        if x > 99:\n" +
		"            break\n" +
		"    del xs\n" +
		"    raise ValueError('nope')\n"
	res := Parse("t.py", []byte(src))
	if res.Err != nil {
		t.Fatalf("unexpected syntax error: %+v", res.Err)
	}
	var others int
	Walk(res.File.Root, func(n *Node) {
		if n.Kind == NodeOther {
			others++
		}
	})
	if others != 5 {
		t.Errorf("got %d opaque simple statements, want 5 (assert, continue, break, del, raise)", others)
	}
}

func TestParseRejectsInvalidUTF8AtOrigin(t *testing.T) {
	res := Parse("bad.py", []byte{0x64, 0x65, 0x66, 0xff, 0xfe})
	if res.Err == nil {
		t.Fatal("expected a syntax error for invalid UTF-8")
	}
	if res.Err.Line != 1 || res.Err.Column != 1 {
		t.Errorf("position = %d:%d, want 1:1", res.Err.Line, res.Err.Column)
	}
}

func TestParseSyntaxErrorClampsPosition(t *testing.T) {
	src := "def f(:\n"
	res := Parse("bad.py", []byte(src))
	if res.Err == nil {
		t.Fatal("expected a syntax error")
	}
	if res.Err.Line < 1 {
		t.Errorf("Err.Line = %d, want >= 1", res.Err.Line)
	}
	if res.Err.Column < 1 {
		t.Errorf("Err.Column = %d, want >= 1", res.Err.Column)
	}
}

func TestFileSnapshotLineContentRoundtrip(t *testing.T) {
	src := "one\ntwo\nthree"
	res := Parse("t.py", []byte(src))
	if res.Err != nil {
		t.Fatalf("unexpected syntax error: %+v", res.Err)
	}
	snap := res.File
	if got := string(snap.LineContent(1)); got != "one" {
		t.Errorf("line 1 = %q, want %q", got, "one")
	}
	if got := string(snap.LineContent(3)); got != "three" {
		t.Errorf("line 3 = %q, want %q", got, "three")
	}
}

func TestParseLegacyTypingAnnotation(t *testing.T) {
	src := "from typing import Dict, List, Optional\n\ndef f() -> Optional[Dict[str, List[int]]]:\n    return None\n"
	res := Parse("t.py", []byte(src))
	if res.Err != nil {
		t.Fatalf("unexpected syntax error: %+v", res.Err)
	}
	var fn *Node
	Walk(res.File.Root, func(n *Node) {
		if n.Kind == NodeFunctionDef {
			fn = n
		}
	})
	if fn == nil {
		t.Fatal("expected function definition")
	}
	if fn.Stmt.Returns == nil {
		t.Fatal("expected a return annotation")
	}
	if !strings.Contains(fn.Stmt.Returns.Text(), "Optional") {
		t.Errorf("return annotation text = %q, want it to contain 'Optional'", fn.Stmt.Returns.Text())
	}
}
