package network_test

import (
	"fmt"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/network"
)

func Example() {
	net := network.MustParse("(141.255.1.133 0.146.197.108 122.117.67.158)")

	// Join a second tree at the shared address 141.255.1.133.
	changed := net.Add(network.MustParse("(85.193.148.81 34.49.145.239 141.255.1.133)"))
	fmt.Println(changed)

	root := address.MustParse("85.193.148.81")
	fmt.Println(net.Format(root))
	fmt.Println(net.Height(root))
	fmt.Println(net.Route(address.MustParse("122.117.67.158"), address.MustParse("34.49.145.239")))
	// Output:
	// true
	// (85.193.148.81 34.49.145.239 (141.255.1.133 0.146.197.108 122.117.67.158))
	// 2
	// [122.117.67.158 141.255.1.133 85.193.148.81 34.49.145.239]
}
