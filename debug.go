package canopy

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick counters. Only populated when Scene.debug is true.
type tickStats struct {
	actors    int
	live      int
	completed int
	tickTime  time.Duration
}

// debugLog prints tick stats to stderr.
func (s *Scene) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[canopy] tick: %v | actors: %d | actions live: %d | completed: %d\n",
		stats.tickTime, stats.actors, stats.live, stats.completed)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("canopy debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
