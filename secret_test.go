package confidential_test

import (
	"fmt"
	"hash/maphash"
	"testing"

	"github.com/zoobzio/confidential"
)

func TestRevealRoundTrip(t *testing.T) {
	s := confidential.New("tok_123")
	if got := s.Reveal(); got != "tok_123" {
		t.Errorf("Reveal() = %q, want %q", got, "tok_123")
	}
}

func TestRevealPtrMutation(t *testing.T) {
	s := confidential.New(41)
	p := s.RevealPtr()
	*p++
	if got := s.Reveal(); got != 42 {
		t.Errorf("Reveal() after mutation = %d, want 42", got)
	}
}

func TestRefPreservesConfidentiality(t *testing.T) {
	s := confidential.New("hunter2")
	ref := confidential.Ref(&s)

	if got := ref.String(); got != confidential.Redacted {
		t.Errorf("Ref().String() = %q, want %q", got, confidential.Redacted)
	}
	if got := *ref.Reveal(); got != "hunter2" {
		t.Errorf("*Ref().Reveal() = %q, want %q", got, "hunter2")
	}

	// Mutation through the handle reaches the original
	*ref.Reveal() = "changed"
	if got := s.Reveal(); got != "changed" {
		t.Errorf("original after Ref mutation = %q, want %q", got, "changed")
	}
}

func TestRefNestsWithoutWidening(t *testing.T) {
	// A handle on a handle is still just a Secret instantiation; both
	// levels redact and both reach the original value.
	s := confidential.New(7)
	ref := confidential.Ref(&s)
	refref := confidential.Ref(&ref)

	if got := fmt.Sprintf("%v %v", ref, refref); got != "... ..." {
		t.Errorf("formatted handles = %q, want %q", got, "... ...")
	}
	**refref.Reveal() = 8
	if got := s.Reveal(); got != 8 {
		t.Errorf("original after nested mutation = %d, want 8", got)
	}
}

func TestRevealStr(t *testing.T) {
	s := confidential.New("swordfish")
	if got := confidential.RevealStr(s); got != "swordfish" {
		t.Errorf("RevealStr() = %q, want %q", got, "swordfish")
	}
}

func TestMapRevealed(t *testing.T) {
	doubled := confidential.MapRevealed(confidential.New(21), func(x int) int { return x * 2 })
	if got := doubled.Reveal(); got != 42 {
		t.Errorf("MapRevealed result = %d, want 42", got)
	}

	// The result stays wrapped
	if got := doubled.String(); got != confidential.Redacted {
		t.Errorf("MapRevealed result String() = %q, want %q", got, confidential.Redacted)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"equal values", "abc", "abc", true},
		{"different values", "abc", "abd", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := confidential.Equal(confidential.New(tt.a), confidential.New(tt.b))
			if got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestComparableOperator(t *testing.T) {
	if confidential.New(7) != confidential.New(7) {
		t.Error("wrappers of equal values should compare equal with ==")
	}
	if confidential.New(7) == confidential.New(8) {
		t.Error("wrappers of different values should not compare equal with ==")
	}
}

func TestMapKeyUsage(t *testing.T) {
	m := map[confidential.String]int{
		confidential.New("alpha"): 1,
		confidential.New("beta"):  2,
	}

	if m[confidential.New("alpha")] != 1 {
		t.Error("wrapper should index a map the way its inner value would")
	}
	if len(m) != 2 {
		t.Errorf("map has %d entries, want 2", len(m))
	}
}

func TestHashMatchesInner(t *testing.T) {
	seed := maphash.MakeSeed()

	values := []string{"", "a", "topsecret", "topsecret2"}
	for _, v := range values {
		wrapped := confidential.Hash(seed, confidential.New(v))
		bare := maphash.Comparable(seed, v)
		if wrapped != bare {
			t.Errorf("Hash(New(%q)) = %d, want %d (hash of bare value)", v, wrapped, bare)
		}
	}
}

func TestHashEqualWrappersAgree(t *testing.T) {
	seed := maphash.MakeSeed()
	a := confidential.Hash(seed, confidential.New(1234))
	b := confidential.Hash(seed, confidential.New(1234))
	if a != b {
		t.Error("equal wrappers must hash equally")
	}
}

func TestDefaultWrapsZeroValue(t *testing.T) {
	var s confidential.Secret[uint32]
	if got := s.Reveal(); got != 0 {
		t.Errorf("zero Secret[uint32].Reveal() = %d, want 0", got)
	}

	var str confidential.String
	if got := confidential.RevealStr(str); got != "" {
		t.Errorf("zero String reveals %q, want empty", got)
	}
}

// apiKey exercises the Cloner contract with a reference field.
type apiKey struct {
	ID     string
	Scopes []string
}

func (k apiKey) Clone() apiKey {
	scopes := make([]string, len(k.Scopes))
	copy(scopes, k.Scopes)
	return apiKey{ID: k.ID, Scopes: scopes}
}

func TestCloneIndependence(t *testing.T) {
	original := confidential.New(apiKey{ID: "k1", Scopes: []string{"read"}})
	cloned := confidential.Clone(original)

	if got := cloned.Reveal().ID; got != "k1" {
		t.Errorf("clone reveals ID %q, want %q", got, "k1")
	}

	// Mutating the clone's inner value must not affect the original
	cloned.RevealPtr().Scopes[0] = "write"
	if got := original.Reveal().Scopes[0]; got != "read" {
		t.Errorf("original scope = %q after clone mutation, want %q", got, "read")
	}
}

func TestCopyByAssignment(t *testing.T) {
	a := confidential.New(99)
	b := a
	*b.RevealPtr() = 100

	if got := a.Reveal(); got != 99 {
		t.Errorf("original after copy mutation = %d, want 99", got)
	}
	if got := b.Reveal(); got != 100 {
		t.Errorf("copy = %d, want 100", got)
	}
}
