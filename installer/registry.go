package installer

import (
	"sort"

	"github.com/pkg/errors"
)

type registered struct {
	id       string
	priority int
	order    int
	manager  Manager
}

// A Registry holds installer managers in the order the host should try
// them. Lower priority goes first; managers registered at the same
// priority keep their registration order.
type Registry struct {
	entries []registered
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(id string, priority int, m Manager) {
	r.entries = append(r.entries, registered{
		id:       id,
		priority: priority,
		order:    len(r.entries),
		manager:  m,
	})
	sort.SliceStable(r.entries, func(i, j int) bool {
		if r.entries[i].priority != r.entries[j].priority {
			return r.entries[i].priority < r.entries[j].priority
		}
		return r.entries[i].order < r.entries[j].order
	})
}

// Sorted returns the managers in probe order.
func (r *Registry) Sorted() []Manager {
	res := make([]Manager, 0, len(r.entries))
	for _, e := range r.entries {
		res = append(res, e.manager)
	}
	return res
}

// Probe tries every registered manager in order and returns the first
// one that claims the archive. A nil result means no manager supports
// it, which is a negative classification, not an error.
func (r *Registry) Probe(params TestParams) (Manager, error) {
	for _, e := range r.entries {
		res, err := e.manager.TestSupported(params)
		if err != nil {
			return nil, errors.WithMessagef(err, "probing with installer %s", e.id)
		}
		if res.Supported {
			return e.manager, nil
		}
	}
	return nil, nil
}
