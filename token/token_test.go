package token

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInternIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.token")
	defer teardown()
	//
	h1 := Pseudo("hover")
	h2 := Pseudo("hover")
	if h1 != h2 {
		t.Errorf("expected two requests for :hover to yield the same token, didn't")
	}
	if h1.Name() != "hover" || h1.String() != ":hover" {
		t.Errorf("expected token to be named hover, is %q / %s", h1.Name(), h1)
	}
	p := Pseudo("pressed")
	if p == h1 || p.Index() == h1.Index() {
		t.Errorf("expected :pressed to be different from :hover, isn't")
	}
}

func TestKindsDoNotMix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.token")
	defer teardown()
	//
	pc := Pseudo("kindtest")
	cl := Class("kindtest")
	if pc.String() != ":kindtest" || cl.String() != ".kindtest" {
		t.Errorf("expected kind prefixes, have %s and %s", pc, cl)
	}
	if _, ok := Lookup[ClassKind]("kindtest-never-interned"); ok {
		t.Errorf("expected lookup of unknown class to fail")
	}
	if c, ok := Lookup[ClassKind]("kindtest"); !ok || c != cl {
		t.Errorf("expected lookup of .kindtest to find interned token")
	}
}

func TestEmptyNameIsZero(t *testing.T) {
	if !Pseudo("  ").IsZero() {
		t.Errorf("expected blank name to yield the zero token")
	}
	if Pseudo("").Index() != -1 {
		t.Errorf("expected zero token to have index -1")
	}
	if len(Classes("a", "", "b")) != 2 {
		t.Errorf("expected empty class names to be skipped")
	}
}

func TestConcurrentIntern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.token")
	defer teardown()
	//
	const workers = 16
	results := make([]PseudoClass, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Pseudo("concurrent-intern")
		}(i)
	}
	wg.Wait()
	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("expected all goroutines to see one token, #%d differs", i)
		}
	}
}
