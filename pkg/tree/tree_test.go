package tree

import (
	"slices"
	"testing"

	"github.com/matzehuels/netforest/pkg/address"
)

// n builds a node from a literal address.
func n(addr string, children ...*Node) *Node {
	return New(address.MustParse(addr), children...)
}

func strs(addrs []address.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

// checkLinks fails the test if any parent/child pair disagrees.
func checkLinks(t *testing.T, root *Node) {
	t.Helper()
	if root.Parent() != nil {
		t.Errorf("root %v has parent %v", root.Address(), root.Parent().Address())
	}
	for _, p := range Nodes(root) {
		for _, c := range p.Children() {
			if c.Parent() != p {
				t.Errorf("child %v of %v has parent %v", c.Address(), p.Address(), c.Parent())
			}
		}
	}
}

// find returns the node with addr below root.
func find(root *Node, addr string) *Node {
	want := address.MustParse(addr)
	for _, x := range Nodes(root) {
		if x.Address() == want {
			return x
		}
	}
	return nil
}

func sample() *Node {
	// 1.1.1.1
	// ├── 2.2.2.2
	// │   ├── 3.3.3.3
	// │   └── 4.4.4.4
	// └── 5.5.5.5
	return n("1.1.1.1",
		n("5.5.5.5"),
		n("2.2.2.2", n("4.4.4.4"), n("3.3.3.3")),
	)
}

func TestNewSortsAndLinks(t *testing.T) {
	root := sample()
	checkLinks(t, root)

	var got []string
	for _, c := range root.Children() {
		got = append(got, c.Address().String())
	}
	want := []string{"2.2.2.2", "5.5.5.5"}
	if !slices.Equal(got, want) {
		t.Errorf("Children() = %v, want %v", got, want)
	}
}

func TestAddChildrenDetaches(t *testing.T) {
	a := n("1.1.1.1", n("2.2.2.2"))
	b := n("3.3.3.3", n("4.4.4.4"))
	moved := a.Children()[0]

	b.AddChildren(moved)

	if len(a.Children()) != 0 {
		t.Errorf("old parent still has %d children", len(a.Children()))
	}
	if moved.Parent() != b {
		t.Errorf("Parent() = %v, want %v", moved.Parent(), b)
	}
	checkLinks(t, a)
	checkLinks(t, b)
}

func TestRemoveChild(t *testing.T) {
	root := sample()
	c := root.Child(address.MustParse("5.5.5.5"))
	if c == nil {
		t.Fatal("Child(5.5.5.5) = nil")
	}
	if !root.RemoveChild(c) {
		t.Error("RemoveChild() = false, want true")
	}
	if c.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if root.RemoveChild(c) {
		t.Error("second RemoveChild() = true, want false")
	}
}

func TestDegree(t *testing.T) {
	root := sample()
	tests := []struct {
		addr string
		want int
	}{
		{"1.1.1.1", 2},
		{"2.2.2.2", 3},
		{"3.3.3.3", 1},
		{"5.5.5.5", 1},
	}
	for _, tt := range tests {
		if got := find(root, tt.addr).Degree(); got != tt.want {
			t.Errorf("Degree(%s) = %d, want %d", tt.addr, got, tt.want)
		}
	}
	if got := n("9.9.9.9").Degree(); got != 0 {
		t.Errorf("Degree(single) = %d, want 0", got)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	root := sample()
	cp := find(root, "2.2.2.2").Copy()

	if cp.Parent() != nil {
		t.Error("copy root has a parent")
	}
	checkLinks(t, cp)
	if got := strs(Addresses(cp)); !slices.Equal(got, []string{"2.2.2.2", "3.3.3.3", "4.4.4.4"}) {
		t.Errorf("Addresses(copy) = %v", got)
	}

	cp.RemoveChild(cp.Children()[0])
	if len(find(root, "2.2.2.2").Children()) != 2 {
		t.Error("mutating the copy changed the original")
	}
}

func TestRoot(t *testing.T) {
	root := sample()
	if got := find(root, "4.4.4.4").Root(); got != root {
		t.Errorf("Root() = %v, want %v", got.Address(), root.Address())
	}
}

func TestEdges(t *testing.T) {
	edges := Edges(sample())
	var got []string
	for _, e := range edges {
		got = append(got, e.Parent.String()+"-"+e.Child.String())
	}
	want := []string{
		"1.1.1.1-2.2.2.2",
		"1.1.1.1-5.5.5.5",
		"2.2.2.2-3.3.3.3",
		"2.2.2.2-4.4.4.4",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestNilHelpers(t *testing.T) {
	if Nodes(nil) != nil {
		t.Error("Nodes(nil) != nil")
	}
	if Levels(nil) != nil {
		t.Error("Levels(nil) != nil")
	}
	if Height(nil) != 0 {
		t.Error("Height(nil) != 0")
	}
	if IsCircular(nil) {
		t.Error("IsCircular(nil) = true")
	}
}
