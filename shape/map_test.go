package shape

import (
	"testing"

	"github.com/google/uuid"
)

func TestMapEnsure(t *testing.T) {
	m := NewMap(4)
	id := uuid.New()

	s1, created := m.Ensure(id)
	if !created {
		t.Error("first Ensure() created = false")
	}
	s1.SetOpacity(0.5)

	s2, created := m.Ensure(id)
	if created {
		t.Error("second Ensure() created = true")
	}
	if s1 != s2 {
		t.Error("Ensure() returned a different shape for the same id")
	}
	if s2.Opacity() != 0.5 {
		t.Errorf("existing shape was reset: opacity = %v", s2.Opacity())
	}
}

func TestNewMapNegativeCapacity(t *testing.T) {
	m := NewMap(-3)
	if m == nil || len(m) != 0 {
		t.Errorf("NewMap(-3) = %v, want empty map", m)
	}
}

func TestMapRemoveDetaches(t *testing.T) {
	m := NewMap(0)
	parent, _ := m.Ensure(Root)
	child := uuid.New()
	m.Ensure(child)
	parent.AddChild(child)

	if p, ok := m.Parent(child); !ok || p != parent {
		t.Fatalf("Parent() = %v, %v", p, ok)
	}
	if !m.Remove(child) {
		t.Fatal("Remove() = false")
	}
	if len(parent.Children()) != 0 {
		t.Errorf("parent still lists removed child: %v", parent.Children())
	}
	if m.Remove(child) {
		t.Error("second Remove() = true")
	}
}

func TestMapChildren(t *testing.T) {
	m := NewMap(0)
	root, _ := m.Ensure(Root)
	a, b, missing := uuid.New(), uuid.New(), uuid.New()
	m.Ensure(a)
	m.Ensure(b)
	root.AddChild(b)
	root.AddChild(missing)
	root.AddChild(a)

	got := m.Children(Root)
	if len(got) != 2 || got[0].ID() != b || got[1].ID() != a {
		t.Errorf("Children(Root) = %v, want [%s %s]", got, b, a)
	}
	if got := m.Children(missing); got != nil {
		t.Errorf("Children(missing) = %v, want nil", got)
	}
}
