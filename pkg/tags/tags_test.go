package tags

import "testing"

func TestGetConsume(t *testing.T) {
	ts := New(map[string]string{"lanes": "2", "oneway": "yes"})

	if v, ok := ts.Get("lanes"); !ok || v != "2" {
		t.Fatalf("Get(lanes) = %q, %v", v, ok)
	}
	if got := ts.Unused(); len(got) != 2 {
		t.Fatalf("Unused before consume = %v, want 2 keys", got)
	}

	if v, ok := ts.GetConsume("lanes"); !ok || v != "2" {
		t.Fatalf("GetConsume(lanes) = %q, %v", v, ok)
	}
	unused := ts.Unused()
	if len(unused) != 1 || unused[0] != "oneway" {
		t.Fatalf("Unused after consuming lanes = %v", unused)
	}
}

func TestSubtreeAndConsume(t *testing.T) {
	ts := New(map[string]string{
		"cycleway":           "no",
		"cycleway:left":      "lane",
		"cycleway:left:width": "1.5",
		"highway":            "residential",
	})

	pairs := ts.Subtree("cycleway")
	if len(pairs) != 3 {
		t.Fatalf("Subtree(cycleway) len = %d, want 3", len(pairs))
	}

	ts.ConsumeSubtree("cycleway")
	unused := ts.Unused()
	if len(unused) != 1 || unused[0] != "highway" {
		t.Fatalf("Unused after ConsumeSubtree(cycleway) = %v", unused)
	}
}

func TestTrimsWhitespace(t *testing.T) {
	ts := New(map[string]string{"lanes": "  2 "})
	v, _ := ts.Get("lanes")
	if v != "2" {
		t.Fatalf("Get(lanes) = %q, want trimmed \"2\"", v)
	}
}
