package mesh

import (
	"errors"
	"testing"
)

func TestAssetsAddGet(t *testing.T) {
	a := NewAssets()
	m := New(4, 6)

	h := a.Add(m)
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}
	got, ok := a.Get(h)
	if !ok || got != m {
		t.Error("Get did not return the registered mesh")
	}
	if a.Len() != 1 {
		t.Errorf("Expected 1 mesh, got %d", a.Len())
	}
}

func TestAssetsHandlesAreUnique(t *testing.T) {
	a := NewAssets()
	h1 := a.Add(New(4, 6))
	h2 := a.Add(New(4, 6))
	if h1 == h2 {
		t.Errorf("Duplicate handles: %d", h1)
	}
}

func TestAssetsReplace(t *testing.T) {
	a := NewAssets()
	h := a.Add(New(4, 6))

	replacement := New(8, 12)
	if err := a.Replace(h, replacement); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	got, _ := a.Get(h)
	if got != replacement {
		t.Error("Replace did not swap the mesh")
	}

	if err := a.Replace(Handle(999), replacement); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Expected ErrUnknownHandle, got %v", err)
	}
}
