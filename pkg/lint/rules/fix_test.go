package rules_test

import (
	"testing"

	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/lint/rules"
)

func TestFixAllModernizesLegacyTyping(t *testing.T) {
	src := "from typing import Dict, List, Optional\n\ndef f() -> Optional[Dict[str, List[int]]]:\n    return None\n"
	want := "def f() -> dict[str, list[int]] | None:\n    return None\n"
	got := string(rules.FixAll("t.py", []byte(src)))
	if got != want {
		t.Fatalf("FixAll() = %q, want %q", got, want)
	}
}

func TestFixAllInsertsReturnNone(t *testing.T) {
	src := "def f(x: int):\n    print(x)\n"
	want := "def f(x: int) -> None:\n    print(x)\n"
	got := string(rules.FixAll("t.py", []byte(src)))
	if got != want {
		t.Fatalf("FixAll() = %q, want %q", got, want)
	}
}

func TestFixAllInfersVariableAnnotation(t *testing.T) {
	src := "count = 0\nname = str()\n"
	want := "count: int = 0\nname: str = str()\n"
	got := string(rules.FixAll("t.py", []byte(src)))
	if got != want {
		t.Fatalf("FixAll() = %q, want %q", got, want)
	}
}

func TestFixAllPreservesAliasedLegacyImports(t *testing.T) {
	src := "from typing import List as L\n\ndef f() -> L[int]:\n    return []\n"
	got := string(rules.FixAll("t.py", []byte(src)))
	if got != src {
		t.Fatalf("FixAll() rewrote an aliased legacy name:\ngot:  %q\nwant: %q", got, src)
	}
}

func TestFixAllModernizesSliceUnderAliasedBase(t *testing.T) {
	src := "from typing import Dict, List as L\n\ndef f() -> L[Dict[str, int]]:\n    return []\n"
	want := "from typing import List as L\n\ndef f() -> L[dict[str, int]]:\n    return []\n"
	got := string(rules.FixAll("t.py", []byte(src)))
	if got != want {
		t.Fatalf("FixAll() = %q, want %q", got, want)
	}
}

func TestFixAllIsIdempotent(t *testing.T) {
	src := "from typing import Dict, List, Optional\nimport json\n\ndef f() -> Optional[Dict[str, List[int]]]:\n" +
		"    count = 0\n    return None\n"
	once := rules.FixAll("t.py", []byte(src))
	twice := rules.FixAll("t.py", once)
	if string(once) != string(twice) {
		t.Fatalf("fix chain is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestFixAllLeavesUnparsableInputUnchanged(t *testing.T) {
	src := "def f(:\n"
	got := string(rules.FixAll("bad.py", []byte(src)))
	if got != src {
		t.Fatalf("FixAll() on unparsable input = %q, want input unchanged %q", got, src)
	}
}

func TestFixKeywordOnlyInsertsStarPreservingSelf(t *testing.T) {
	src := "class C:\n    def compute(self, a: int, b: int, op: str) -> int:\n        return a + b\n"
	want := "class C:\n    def compute(self, *, a: int, b: int, op: str) -> int:\n        return a + b\n"
	got := string(rules.FixKeywordOnly("t.py", []byte(src), config.DefaultKW001Options()))
	if got != want {
		t.Fatalf("FixKeywordOnly() = %q, want %q", got, want)
	}
}

func TestFixAllDedupesFunctionLocalImport(t *testing.T) {
	src := "import json\n\ndef f():\n    import json\n    return json.dumps({})\n"
	got := string(rules.FixAll("t.py", []byte(src)))
	count := 0
	for i := 0; i+len("import json") <= len(got); i++ {
		if got[i:i+len("import json")] == "import json" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("got %d occurrences of 'import json' after fixing, want 1 (deduplicated): %q", count, got)
	}
}
