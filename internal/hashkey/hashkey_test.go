package hashkey

import "testing"

func TestOfDeterministic(t *testing.T) {
	if Of("a.js") != Of("a.js") {
		t.Error("Of should be deterministic for the same input")
	}
	if Of("a.js") == Of("b.js") {
		t.Error("different strings should not usually collide (sanity check, not a guarantee)")
	}
}
