package network

import (
	"time"

	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/observability"
)

// txFunc applies a change to a scratch network. It reports whether anything
// changed; an error discards the scratch state.
type txFunc func(scratch *Network) (changed bool, err error)

// transact runs fn against a deep copy of n and swaps the copy in when fn
// succeeds, changes something, and leaves a valid network behind. The live
// network is never touched otherwise.
func (n *Network) transact(op string, fn txFunc) bool {
	start := time.Now()
	changed := false
	scratch, err := n.clone()
	if err == nil {
		changed, err = fn(scratch)
	}
	if err == nil && changed {
		err = scratch.reindex()
	}
	if err != nil {
		observability.Network().OnRollback(op, err)
		if n.logger != nil {
			n.logger.Debugf("%s rolled back: %s", op, errors.UserMessage(err))
		}
		return false
	}
	if !changed {
		return false
	}

	n.subnets, n.index = scratch.subnets, scratch.index
	observability.Network().OnCommit(op, len(n.index), len(n.subnets), time.Since(start))
	return true
}
