package main

import "testing"

func TestParseTriples(t *testing.T) {
	cfgs, err := parseTriples("3,2,true; 1,5,false ;2,1,true")
	if err != nil {
		t.Fatalf("parseTriples: %v", err)
	}
	if len(cfgs) != 3 {
		t.Fatalf("got %d configs, want 3", len(cfgs))
	}
	if cfgs[1].NumSizes != 1 || cfgs[1].NumPerSize != 5 || cfgs[1].AllowMove {
		t.Fatalf("cfgs[1] = %+v, want {1 5 false}", cfgs[1])
	}
}

func TestParseTriplesRejectsMalformedEntry(t *testing.T) {
	if _, err := parseTriples("3,2"); err == nil {
		t.Fatal("expected an error for a two-field entry")
	}
	if _, err := parseTriples("x,2,true"); err == nil {
		t.Fatal("expected an error for a non-numeric size")
	}
}

func TestParseTriplesRejectsEmptySpec(t *testing.T) {
	if _, err := parseTriples("  "); err == nil {
		t.Fatal("expected an error when no triples are named")
	}
}

func TestParseTriplesRejectsInvalidRule(t *testing.T) {
	if _, err := parseTriples("5,2,true"); err == nil {
		t.Fatal("expected NewConfig's own validation to reject num_sizes=5")
	}
}
