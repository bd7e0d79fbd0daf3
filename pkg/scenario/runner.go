package scenario

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/network"
)

// Runner executes scenarios. It keeps no state between runs, so one Runner
// can serve any number of scenarios.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result is the outcome of a single step.
type Result struct {
	Step    int
	Op      string
	Network string
	Output  string
	Expect  string
	Checked bool
	Failed  bool
}

// Report collects the results of a run.
type Report struct {
	Name     string
	Results  []Result
	Failed   int
	Duration time.Duration
}

// OK reports whether every checked step matched its expectation.
func (r *Report) OK() bool { return r.Failed == 0 }

// Run builds every network of s and executes its steps in order. Networks
// are built fresh for each run, so running the same scenario twice gives the
// same report.
//
// A step whose output differs from its expectation is recorded as failed and
// the run continues. Errors are returned for malformed networks, addresses
// and cancelled contexts.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	nets, err := r.build(s.Networks)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: s.Name, Results: make([]Result, 0, len(s.Steps))}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := r.apply(nets, st)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "step %d (%s)", i+1, st.Op)
		}

		res := Result{Step: i + 1, Op: st.Op, Network: st.Network, Output: out}
		if st.Expect != nil {
			res.Checked = true
			res.Expect = *st.Expect
			res.Failed = out != res.Expect
		}
		if res.Failed {
			report.Failed++
			r.Logger.Warnf("step %d: %s on %s = %q, want %q", res.Step, st.Op, st.Network, out, res.Expect)
		} else {
			r.Logger.Debugf("step %d: %s on %s = %q", res.Step, st.Op, st.Network, out)
		}
		report.Results = append(report.Results, res)
	}

	report.Duration = time.Since(start)
	r.Logger.Infof("scenario %q: %d steps, %d failed in %v", s.Name, len(report.Results), report.Failed, report.Duration)
	return report, nil
}

func (r *Runner) build(literals map[string]string) (map[string]*network.Network, error) {
	names := make([]string, 0, len(literals))
	for name := range literals {
		names = append(names, name)
	}
	sort.Strings(names)

	nets := make(map[string]*network.Network, len(literals))
	for _, name := range names {
		n, err := network.Parse(literals[name], network.WithLogger(r.Logger))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "network %q", name)
		}
		r.Logger.Debugf("built network %q with %d nodes", name, n.Len())
		nets[name] = n
	}
	return nets, nil
}

func (r *Runner) apply(nets map[string]*network.Network, st Step) (string, error) {
	addrs, err := parseArgs(st.Args)
	if err != nil {
		return "", err
	}
	n := nets[st.Network]

	switch st.Op {
	case OpAdd:
		return strconv.FormatBool(n.Add(nets[st.Other])), nil
	case OpEqual:
		return strconv.FormatBool(n.Equal(nets[st.Other])), nil
	case OpConnect:
		return strconv.FormatBool(n.Connect(addrs[0], addrs[1])), nil
	case OpDisconnect:
		return strconv.FormatBool(n.Disconnect(addrs[0], addrs[1])), nil
	case OpHeight:
		return strconv.Itoa(n.Height(addrs[0])), nil
	case OpLevels:
		return FormatLevels(n.Levels(addrs[0])), nil
	case OpRoute:
		return FormatAddresses(n.Route(addrs[0], addrs[1])), nil
	case OpFormat:
		return n.Format(addrs[0]), nil
	case OpList:
		return FormatAddresses(n.List()), nil
	case OpShow:
		return strings.ReplaceAll(n.String(), "\n", " | "), nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unknown op %q", st.Op)
}

func parseArgs(args []string) ([]address.Address, error) {
	addrs := make([]address.Address, len(args))
	for i, s := range args {
		a, err := address.Parse(s)
		if err != nil {
			return nil, err
		}
		addrs[i] = a
	}
	return addrs, nil
}

// FormatAddresses joins addresses with single spaces.
func FormatAddresses(addrs []address.Address) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// FormatLevels renders each level in square brackets, e.g.
// "[1.1.1.1] [2.2.2.2 3.3.3.3]".
func FormatLevels(levels [][]address.Address) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("[%s]", FormatAddresses(l))
	}
	return strings.Join(parts, " ")
}
