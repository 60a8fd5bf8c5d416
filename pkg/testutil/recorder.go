package testutil

import (
	"sync"

	"github.com/arthur-debert/dotlink/pkg/types"
)

// Recorder is a types.Reporter that remembers everything it is given.
type Recorder struct {
	mu       sync.Mutex
	Actions  []types.Action
	Commands []string
}

func (r *Recorder) Report(action types.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Actions = append(r.Actions, action)
}

func (r *Recorder) Command(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Commands = append(r.Commands, line)
}

// Keys returns the "category/detail" key of each recorded action, in order.
func (r *Recorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, len(r.Actions))
	for i, a := range r.Actions {
		keys[i] = a.Key()
	}
	return keys
}

// ForDestination returns the first action reported for dest.
func (r *Recorder) ForDestination(dest string) (types.Action, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.Actions {
		if a.Destination == dest {
			return a, true
		}
	}
	return types.Action{}, false
}

var _ types.Reporter = (*Recorder)(nil)
