// Package scenario runs scripted operations against networks built from
// bracket notation.
//
// A scenario is a TOML document naming one or more networks and listing the
// steps to run against them, in order:
//
//	name = "join two subnets"
//
//	[networks]
//	a = "(1.1.1.1 2.2.2.2)"
//	b = "(2.2.2.2 3.3.3.3)"
//
//	[[step]]
//	op = "add"
//	network = "a"
//	other = "b"
//	expect = "true"
//
//	[[step]]
//	op = "route"
//	network = "a"
//	args = ["1.1.1.1", "3.3.3.3"]
//	expect = "1.1.1.1 2.2.2.2 3.3.3.3"
//
// Every step produces a single line of output. A step with an expect value
// fails when its output differs; steps without one only record their output.
package scenario

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/netforest/pkg/errors"
)

// Operation names accepted in a step's op field.
const (
	OpAdd        = "add"
	OpConnect    = "connect"
	OpDisconnect = "disconnect"
	OpHeight     = "height"
	OpLevels     = "levels"
	OpRoute      = "route"
	OpFormat     = "format"
	OpList       = "list"
	OpShow       = "show"
	OpEqual      = "equal"
)

// Scenario is a set of named networks and the steps to run against them.
type Scenario struct {
	Name     string            `toml:"name"`
	Networks map[string]string `toml:"networks"`
	Steps    []Step            `toml:"step"`
}

// Step is a single operation against a named network.
//
// Other names a second network for add and equal. Args holds the addresses
// the operation takes: two for connect, disconnect and route, one for height,
// levels and format.
type Step struct {
	Op      string   `toml:"op"`
	Network string   `toml:"network"`
	Other   string   `toml:"other"`
	Args    []string `toml:"args"`
	Expect  *string  `toml:"expect"`
}

// arity is the number of addresses each operation takes.
var arity = map[string]int{
	OpAdd:        0,
	OpConnect:    2,
	OpDisconnect: 2,
	OpHeight:     1,
	OpLevels:     1,
	OpRoute:      2,
	OpFormat:     1,
	OpList:       0,
	OpShow:       0,
	OpEqual:      0,
}

// Ops returns the supported operation names in sorted order.
func Ops() []string {
	ops := make([]string, 0, len(arity))
	for op := range arity {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "scenario %s", path)
	}
	return s, nil
}

// Decode reads a scenario from r and checks it for structural mistakes.
// Unknown keys are rejected so a misspelled field does not silently turn a
// check into a no-op.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step names a known operation, refers to
// declared networks and carries the right number of addresses. Network
// literals and addresses are checked when the scenario runs.
func (s *Scenario) Validate() error {
	if len(s.Networks) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scenario declares no networks")
	}
	for i, st := range s.Steps {
		n, ok := arity[st.Op]
		if !ok {
			return errors.New(errors.ErrCodeUnsupported, "step %d: unknown op %q", i+1, st.Op)
		}
		if _, ok := s.Networks[st.Network]; !ok {
			return errors.New(errors.ErrCodeNotFound, "step %d: unknown network %q", i+1, st.Network)
		}
		if len(st.Args) != n {
			return errors.New(errors.ErrCodeInvalidInput, "step %d: %s takes %d addresses, got %d", i+1, st.Op, n, len(st.Args))
		}
		needsOther := st.Op == OpAdd || st.Op == OpEqual
		if needsOther {
			if _, ok := s.Networks[st.Other]; !ok {
				return errors.New(errors.ErrCodeNotFound, "step %d: unknown network %q", i+1, st.Other)
			}
		} else if st.Other != "" {
			return errors.New(errors.ErrCodeInvalidInput, "step %d: %s takes no other network", i+1, st.Op)
		}
	}
	return nil
}
