package flaretree

import (
	"math"
	"sort"
)

const noSlot = -1

// slot is one arena entry. A collapsed slot keeps its record but leaves the
// forest: it has no parent, no children and owns no vertex.
type slot struct {
	origin     string
	birth      float64
	death      float64
	terminator string
	members    map[string]struct{}
	parent     int
	children   []int
	collapsed  bool
}

// Forest is an arena of flare trees.
//
// owner maps every added vertex to the slot whose member set holds it, so a
// root lookup is a walk up parent indices instead of a subtree scan.
type Forest struct {
	slots []slot
	owner map[string]int
}

// NewForest returns an empty forest.
func NewForest() *Forest {
	return &Forest{owner: make(map[string]int)}
}

// Len returns the number of slots ever created, collapsed ones included.
func (f *Forest) Len() int { return len(f.slots) }

// Birth creates a new root flare born at value with the single member origin.
// It returns the new slot index.
func (f *Forest) Birth(origin string, value float64) int {
	idx := len(f.slots)
	f.slots = append(f.slots, slot{
		origin:  origin,
		birth:   value,
		death:   math.Inf(1),
		members: map[string]struct{}{origin: {}},
		parent:  noSlot,
	})
	f.owner[origin] = idx

	return idx
}

// Add puts id into the member set of slot s, moving it from any previous owner
// set.
func (f *Forest) Add(s int, id string) {
	if prev, ok := f.owner[id]; ok && prev != s {
		delete(f.slots[prev].members, id)
	}
	f.slots[s].members[id] = struct{}{}
	f.owner[id] = s
}

// Owner returns the slot directly holding id.
func (f *Forest) Owner(id string) (int, bool) {
	s, ok := f.owner[id]

	return s, ok
}

// Root returns the root of the tree containing id.
func (f *Forest) Root(id string) (int, bool) {
	s, ok := f.owner[id]
	if !ok {
		return noSlot, false
	}
	for f.slots[s].parent != noSlot {
		s = f.slots[s].parent
	}

	return s, true
}

// Contains reports whether id belongs to the flare of s or of any descendant.
func (f *Forest) Contains(s int, id string) bool {
	cur, ok := f.owner[id]
	for ok {
		if cur == s {
			return true
		}
		cur = f.slots[cur].parent
		ok = cur != noSlot
	}

	return false
}

// Parent returns the parent slot of s, or -1 for a root.
func (f *Forest) Parent(s int) int { return f.slots[s].parent }

// Children returns a copy of the child slots of s in attach order.
func (f *Forest) Children(s int) []int {
	return append([]int(nil), f.slots[s].children...)
}

// Roots returns live root slots in index order.
func (f *Forest) Roots() []int {
	var out []int
	for i := range f.slots {
		if f.slots[i].parent == noSlot && !f.slots[i].collapsed {
			out = append(out, i)
		}
	}

	return out
}

// Terminate stamps the death of s at value, caused by vertex by.
func (f *Forest) Terminate(s int, value float64, by string) error {
	sl := &f.slots[s]
	if !math.IsInf(sl.death, 1) {
		return f.fault("terminate", s, sl.parent, "already dead")
	}
	sl.death = value
	sl.terminator = by

	return nil
}

// Attach makes child a subtree of parent.
// child must be a live root distinct from parent.
func (f *Forest) Attach(parent, child int) error {
	switch {
	case parent == child:
		return f.fault("attach", child, parent, "self attach")
	case f.slots[child].parent != noSlot:
		return f.fault("attach", child, parent, "already has a parent")
	case f.slots[child].collapsed || f.slots[parent].collapsed:
		return f.fault("attach", child, parent, "collapsed slot")
	}
	f.slots[child].parent = parent
	f.slots[parent].children = append(f.slots[parent].children, child)

	return nil
}

// Collapse folds the subtree of child into parent's member set and drops it
// from the forest. child must be a direct child of parent. Member sets are
// sets, so folding an already folded vertex has no effect.
func (f *Forest) Collapse(parent, child int) error {
	if f.slots[child].parent != parent {
		return f.fault("collapse", child, parent, "not a direct child")
	}

	kids := f.slots[parent].children
	for i, c := range kids {
		if c == child {
			f.slots[parent].children = append(kids[:i:i], kids[i+1:]...)
			break
		}
	}

	stack := []int{child}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sl := &f.slots[s]
		for id := range sl.members {
			f.slots[parent].members[id] = struct{}{}
			f.owner[id] = parent
		}
		stack = append(stack, sl.children...)
		sl.children = nil
		sl.parent = noSlot
		sl.collapsed = true
	}

	return nil
}

// Flare returns the record of slot s. Collapsed slots keep the members they
// held when they were folded away.
func (f *Forest) Flare(s int) Flare {
	sl := f.slots[s]
	members := make([]string, 0, len(sl.members))
	for id := range sl.members {
		members = append(members, id)
	}
	sort.Strings(members)

	return Flare{
		Origin:     sl.origin,
		Birth:      sl.birth,
		Death:      sl.death,
		Terminator: sl.terminator,
		Members:    members,
	}
}

// Walk returns every slot: live trees depth-first from each root in index
// order, then collapsed slots in index order.
func (f *Forest) Walk() []int {
	out := make([]int, 0, len(f.slots))
	for _, r := range f.Roots() {
		stack := []int{r}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out = append(out, s)
			kids := f.slots[s].children
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}
	for i := range f.slots {
		if f.slots[i].collapsed {
			out = append(out, i)
		}
	}

	return out
}

func (f *Forest) fault(op string, s, parent int, reason string) *InvariantError {
	return &InvariantError{Op: op, Slot: s, Parent: parent, Origin: f.slots[s].origin, Reason: reason}
}
