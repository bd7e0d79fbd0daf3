package tree

import (
	"slices"
	"testing"

	"github.com/matzehuels/netforest/pkg/address"
)

func TestIsCircular(t *testing.T) {
	if IsCircular(sample()) {
		t.Error("IsCircular(sample) = true, want false")
	}

	dup := n("1.1.1.1", n("2.2.2.2", n("3.3.3.3")), n("3.3.3.3"))
	if !IsCircular(dup) {
		t.Error("IsCircular(duplicate address) = false, want true")
	}

	self := n("1.1.1.1", n("1.1.1.1"))
	if !IsCircular(self) {
		t.Error("IsCircular(self loop) = false, want true")
	}

	// A node listed twice is revisited.
	shared := n("4.4.4.4")
	loop := n("1.1.1.1", shared)
	loop.children = append(loop.children, shared)
	if !IsCircular(loop) {
		t.Error("IsCircular(revisit) = false, want true")
	}
}

func TestFindConnection(t *testing.T) {
	host := sample()
	layers := Levels(host)

	tests := []struct {
		name   string
		sub    *Node
		want   string
		wantOK bool
	}{
		{"root shared", n("1.1.1.1", n("9.9.9.9")), "1.1.1.1", true},
		{"closest to root wins", n("4.4.4.4", n("5.5.5.5")), "5.5.5.5", true},
		{"ascending within layer", n("9.9.9.9", n("4.4.4.4"), n("3.3.3.3")), "3.3.3.3", true},
		{"disjoint", n("9.9.9.9", n("8.8.8.8")), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindConnection(layers, tt.sub)
			if ok != tt.wantOK {
				t.Fatalf("FindConnection() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("FindConnection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplice(t *testing.T) {
	dst := sample()
	src := n("1.1.1.1",
		n("2.2.2.2", n("6.6.6.6")),
		n("7.7.7.7", n("8.8.8.8")),
	)

	Splice(dst, src)

	checkLinks(t, dst)
	if IsCircular(dst) {
		t.Fatal("spliced tree is circular")
	}
	want := []string{
		"1.1.1.1", "2.2.2.2", "3.3.3.3", "4.4.4.4",
		"5.5.5.5", "6.6.6.6", "7.7.7.7", "8.8.8.8",
	}
	if got := strs(Addresses(dst)); !slices.Equal(got, want) {
		t.Errorf("Addresses() = %v, want %v", got, want)
	}
	if p := find(dst, "6.6.6.6").Parent(); p.Address() != address.MustParse("2.2.2.2") {
		t.Errorf("6.6.6.6 parent = %v, want 2.2.2.2", p.Address())
	}
	if len(src.Children()) != 1 {
		t.Errorf("src keeps %d children, want only the shared one", len(src.Children()))
	}
}

func TestSpliceDuplicateIsDetected(t *testing.T) {
	dst := sample()
	// 4.4.4.4 already sits below 2.2.2.2 in dst.
	src := n("1.1.1.1", n("5.5.5.5", n("4.4.4.4")))

	Splice(dst, src)

	if !IsCircular(dst) {
		t.Error("IsCircular() = false after splicing a duplicate address")
	}
}
