package lint

import (
	"reflect"
	"strings"
	"testing"

	"playlint-hq/playlint/pkg/playbook/ast"
	pberrors "playlint-hq/playlint/pkg/playbook/errors"
)

type stubRule struct {
	id       string
	severity Severity
	check    func(doc *ast.Document) []Violation
}

func (r stubRule) ID() string                { return r.id }
func (r stubRule) Description() string       { return "stub rule" }
func (r stubRule) DefaultSeverity() Severity { return r.severity }
func (r stubRule) Check(doc *ast.Document) []Violation {
	return r.check(doc)
}

func TestEngine_Evaluate_StampsAndSorts(t *testing.T) {
	doc := &ast.Document{Path: "site.yml"}

	engine := NewEngine([]Rule{
		stubRule{id: "bbb", severity: SeverityWarning, check: func(*ast.Document) []Violation {
			return []Violation{{Line: 3, Column: 1, Message: "late"}}
		}},
		stubRule{id: "aaa", severity: SeverityError, check: func(*ast.Document) []Violation {
			return []Violation{
				{Line: 3, Column: 1, Message: "same position"},
				{Line: 1, Column: 5, Message: "early"},
			}
		}},
	})

	got := engine.Evaluate(doc)
	if len(got) != 3 {
		t.Fatalf("len(violations) = %d, want 3", len(got))
	}

	if got[0].Line != 1 || got[0].RuleID != "aaa" {
		t.Errorf("first violation = %+v, want line 1 rule aaa", got[0])
	}
	// Same position sorts by rule id.
	if got[1].RuleID != "aaa" || got[2].RuleID != "bbb" {
		t.Errorf("position tie order = %s, %s, want aaa, bbb", got[1].RuleID, got[2].RuleID)
	}

	for _, v := range got {
		if v.File != "site.yml" {
			t.Errorf("File = %q, want site.yml", v.File)
		}
		if v.Severity == "" {
			t.Error("Severity not stamped")
		}
	}
}

func TestEngine_Evaluate_Deterministic(t *testing.T) {
	doc := &ast.Document{Path: "site.yml"}
	engine := NewEngine([]Rule{
		stubRule{id: "one", severity: SeverityError, check: func(*ast.Document) []Violation {
			return []Violation{{Line: 2, Column: 3, Message: "x"}}
		}},
		stubRule{id: "two", severity: SeverityWarning, check: func(*ast.Document) []Violation {
			return []Violation{{Line: 2, Column: 3, Message: "y"}}
		}},
	})

	first := engine.Evaluate(doc)
	second := engine.Evaluate(doc)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Evaluate() not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestEngine_Evaluate_PanicIsolation(t *testing.T) {
	doc := &ast.Document{Path: "site.yml"}
	engine := NewEngine([]Rule{
		stubRule{id: "boom", severity: SeverityError, check: func(*ast.Document) []Violation {
			panic("nil map write")
		}},
		stubRule{id: "ok", severity: SeverityWarning, check: func(*ast.Document) []Violation {
			return []Violation{{Line: 5, Column: 1, Message: "still runs"}}
		}},
	})

	got := engine.Evaluate(doc)
	if len(got) != 2 {
		t.Fatalf("len(violations) = %d, want 2", len(got))
	}

	fault := got[0]
	if fault.RuleID != RuleIDInternalError {
		t.Errorf("RuleID = %q, want %q", fault.RuleID, RuleIDInternalError)
	}
	if fault.Severity != SeverityError {
		t.Errorf("Severity = %q, want error", fault.Severity)
	}
	if !strings.Contains(fault.Message, "boom") || !strings.Contains(fault.Message, "nil map write") {
		t.Errorf("Message = %q, want rule id and panic value", fault.Message)
	}

	if got[1].RuleID != "ok" {
		t.Errorf("surviving rule = %q, want ok", got[1].RuleID)
	}
}

func TestEngine_SeverityOverride(t *testing.T) {
	doc := &ast.Document{Path: "site.yml"}
	engine := NewEngine([]Rule{
		stubRule{id: "demoted", severity: SeverityError, check: func(*ast.Document) []Violation {
			return []Violation{{Line: 1, Column: 1, Message: "x"}}
		}},
	}, WithSeverityOverrides(map[string]Severity{"demoted": SeverityWarning}))

	got := engine.Evaluate(doc)
	if len(got) != 1 {
		t.Fatalf("len(violations) = %d, want 1", len(got))
	}
	if got[0].Severity != SeverityWarning {
		t.Errorf("Severity = %q, want warning (overridden)", got[0].Severity)
	}
}

func TestParseFailure(t *testing.T) {
	err := pberrors.NewSyntaxError("unclosed single quote",
		ast.Location{File: "bad.yml", Line: 4, Column: 9})

	v := ParseFailure("bad.yml", err)
	if v.RuleID != RuleIDParseError {
		t.Errorf("RuleID = %q, want %q", v.RuleID, RuleIDParseError)
	}
	if v.Line != 4 || v.Column != 9 {
		t.Errorf("position = %d:%d, want 4:9", v.Line, v.Column)
	}
	if v.Severity != SeverityError {
		t.Errorf("Severity = %q, want error", v.Severity)
	}
	if v.Message != "unclosed single quote" {
		t.Errorf("Message = %q, want bare parse message", v.Message)
	}
}
