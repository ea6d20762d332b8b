package xml

import (
	"strings"
	"testing"
)

const sampleDoc = `<?xml version="1.0"?>
<ThML>
  <div class="Commentary" id="one">
    <p>First <i>paragraph</i>.</p>
    <p>Second paragraph.</p>
  </div>
  <scripCom type="Commentary" passage="Ro 1:1" parsed="|Rom|1|1|0|0"/>
</ThML>`

// TestParseAndXPath tests parsing and document-level XPath queries.
func TestParseAndXPath(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	nodes, err := doc.XPath("//p")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(nodes))
	}
	if got := nodes[0].InnerText(); got != "First paragraph." {
		t.Errorf("inner text: got %q", got)
	}
	if got := nodes[0].InnerXML(); !strings.Contains(got, "<i>paragraph</i>") {
		t.Errorf("inner xml should preserve markup, got %q", got)
	}
}

// TestNodeXPath tests node-relative queries.
func TestNodeXPath(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	divs, err := doc.XPath(`//div[@class="Commentary"]`)
	if err != nil || len(divs) != 1 {
		t.Fatalf("div query: nodes=%d err=%v", len(divs), err)
	}
	ps, err := divs[0].XPath(".//p")
	if err != nil {
		t.Fatalf("relative query failed: %v", err)
	}
	if len(ps) != 2 {
		t.Errorf("got %d paragraphs under div, want 2", len(ps))
	}
}

// TestXPathInvalidExpr tests that a malformed expression errors
// instead of panicking.
func TestXPathInvalidExpr(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := doc.XPath("//p["); err == nil {
		t.Error("expected an error for invalid xpath")
	}
}

// TestWalk tests the document-order element walk and early stop.
func TestWalk(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var names []string
	doc.Walk(func(n *Node) bool {
		names = append(names, n.Name())
		return true
	})
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "div") || !strings.Contains(joined, "scripCom") {
		t.Errorf("walk missed elements: %v", names)
	}
	// div precedes scripCom in document order.
	if strings.Index(joined, "div") > strings.Index(joined, "scripCom") {
		t.Errorf("walk out of document order: %v", names)
	}

	var count int
	doc.Walk(func(n *Node) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("walk should stop after first element, visited %d", count)
	}
}

// TestAttr tests attribute access.
func TestAttr(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	nodes, err := doc.XPath("//scripCom")
	if err != nil || len(nodes) != 1 {
		t.Fatalf("scripCom query: nodes=%d err=%v", len(nodes), err)
	}
	if got := nodes[0].Attr("parsed"); got != "|Rom|1|1|0|0" {
		t.Errorf("parsed attr: got %q", got)
	}
	if got := nodes[0].Attr("missing"); got != "" {
		t.Errorf("missing attr: got %q, want empty", got)
	}
}

// TestValidate tests well-formedness checking.
func TestValidate(t *testing.T) {
	if err := Validate([]byte(sampleDoc)); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
	if err := Validate([]byte("<a><b></a>")); err == nil {
		t.Error("mismatched tags should fail validation")
	}
}
