package ui

import (
	"strings"
	"testing"
)

func TestTable_RendersRowsInOrder(t *testing.T) {
	table := NewTable("Orders", "REF", "STATE")
	table.AddRow(RowNormal, "ORD-1", "validated")
	table.AddRow(RowNormal, "ORD-2", "pending")

	out := table.View(DefaultStyles())

	first := strings.Index(out, "ORD-1")
	second := strings.Index(out, "ORD-2")
	if first == -1 || second == -1 {
		t.Fatalf("expected both rows rendered, got:\n%s", out)
	}
	if first > second {
		t.Errorf("rows rendered out of order:\n%s", out)
	}
}

func TestTable_IncludesHeadersAndTitle(t *testing.T) {
	table := NewTable("Offer rules", "SEATS", "AVAILABLE")
	table.AddRow(RowPending, "10", "10")

	out := table.View(DefaultStyles())
	for _, want := range []string{"Offer rules", "SEATS", "AVAILABLE", "10"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in render:\n%s", want, out)
		}
	}
}

func TestTable_EmptyRowsStillRenderHeader(t *testing.T) {
	table := NewTable("", "CODE")
	out := table.View(DefaultStyles())
	if !strings.Contains(out, "CODE") {
		t.Errorf("header missing from render:\n%s", out)
	}
}

func TestConfirm_View(t *testing.T) {
	c := NewConfirm("Discard unsaved changes?")
	out := c.View(DefaultStyles(), 80)
	for _, want := range []string{"Discard unsaved changes?", "[y] yes", "[n] no"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in modal:\n%s", want, out)
		}
	}
}
