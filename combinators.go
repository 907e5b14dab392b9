package canopy

import "slices"

// SequenceStep runs its children one after another. Each child starts on the
// tick after its predecessor completes.
type SequenceStep struct {
	children []*Action
	index    int
}

// Sequence returns an action that runs children in order and completes when
// the last one does.
func Sequence(children ...*Action) *Action {
	return NewAction(Forever, &SequenceStep{children: children})
}

// Step advances the current child.
func (s *SequenceStep) Step(a *Action) bool {
	if s.index >= len(s.children) {
		return true
	}
	if !s.children[s.index].Advance(a.Actor(), a.DeltaTime()) {
		return false
	}
	s.index++
	return s.index >= len(s.children)
}

// Restart rewinds every child and returns to the first.
func (s *SequenceStep) Restart(smooth bool) {
	s.index = 0
	for i, c := range s.children {
		c.Restart(smooth && i == 0)
	}
}

// Current returns the running child, or nil once all have completed.
func (s *SequenceStep) Current() *Action {
	if s.index >= len(s.children) {
		return nil
	}
	return s.children[s.index]
}

// Duration returns the sum of the children's MaxTime, or Forever if any
// child is unbounded.
func (s *SequenceStep) Duration() float64 {
	var total float64
	for _, c := range s.children {
		if c.IsForever() {
			return Forever
		}
		total += c.MaxTime()
	}
	return total
}

// ParallelStep advances all of its incomplete children every tick.
type ParallelStep struct {
	all     []*Action // every child, for Restart
	live    []*Action // children not yet complete
	scratch []*Action
}

// Parallel returns an action that runs children together and completes when
// all of them have.
func Parallel(children ...*Action) *Action {
	return NewAction(Forever, newParallelStep(children))
}

func newParallelStep(children []*Action) *ParallelStep {
	p := &ParallelStep{all: slices.Clone(children)}
	p.live = slices.Clone(children)
	return p
}

// Step advances a snapshot of the live children, dropping each one the tick
// it completes. Children added during the tick first run on the next one;
// children removed during the tick are skipped.
func (p *ParallelStep) Step(a *Action) bool {
	p.scratch = append(p.scratch[:0], p.live...)
	for i, c := range p.scratch {
		p.scratch[i] = nil
		if indexOf(p.live, c) < 0 {
			continue
		}
		if c.Advance(a.Actor(), a.DeltaTime()) {
			p.live = removeAction(p.live, c)
		}
	}
	p.scratch = p.scratch[:0]
	return len(p.live) == 0
}

// Add appends a child. It is advanced starting with the next tick.
func (p *ParallelStep) Add(c *Action) {
	p.all = append(p.all, c)
	p.live = append(p.live, c)
}

// Remove drops a child without completing it.
func (p *ParallelStep) Remove(c *Action) {
	p.all = removeAction(p.all, c)
	p.live = removeAction(p.live, c)
}

// Live returns the children not yet complete. The returned slice MUST NOT be
// mutated by the caller.
func (p *ParallelStep) Live() []*Action {
	return p.live
}

// Restart rewinds every child and makes them all live again.
func (p *ParallelStep) Restart(smooth bool) {
	p.live = append(p.live[:0], p.all...)
	for _, c := range p.all {
		c.Restart(smooth)
	}
}

// RepeatStep restarts its child every time it completes.
type RepeatStep struct {
	child *Action
	count int // repeats after the first run; negative repeats forever
	runs  int
}

// Repeat returns an action that runs child once and then count more times,
// restarting it smoothly between runs.
func Repeat(count int, child *Action) *Action {
	if count < 0 {
		count = 0
	}
	return NewAction(Forever, &RepeatStep{child: child, count: count})
}

// RepeatForever returns an action that restarts child every time it
// completes, until canceled.
func RepeatForever(child *Action) *Action {
	return NewAction(Forever, &RepeatStep{child: child, count: -1})
}

// Step advances the child and restarts it on completion.
func (r *RepeatStep) Step(a *Action) bool {
	if !r.child.Advance(a.Actor(), a.DeltaTime()) {
		return false
	}
	r.runs++
	if r.count >= 0 && r.runs > r.count {
		return true
	}
	r.child.Restart(true)
	return false
}

// Restart clears the run count and rewinds the child.
func (r *RepeatStep) Restart(smooth bool) {
	r.runs = 0
	r.child.Restart(smooth)
}

// Runs returns how many times the child has completed.
func (r *RepeatStep) Runs() int {
	return r.runs
}

// Wait returns an action that does nothing for d seconds.
func Wait(d float64) *Action {
	return NewAction(d, nil)
}

// Delay returns an action that waits d seconds and then runs action.
func Delay(d float64, action *Action) *Action {
	return Sequence(Wait(d), action)
}

// Call returns an action that invokes fn once with the target actor and
// completes immediately.
func Call(fn func(*Actor)) *Action {
	return NewAction(0, StepFunc(func(a *Action) bool {
		fn(a.Actor())
		return true
	}))
}

// targetStep drives its child's clock from the owning actor but points its
// geometry at another actor.
type targetStep struct {
	target *Actor
	child  *Action
}

func (t *targetStep) Step(a *Action) bool {
	return t.child.Advance(t.target, a.DeltaTime())
}

func (t *targetStep) Restart(smooth bool) {
	t.child.Restart(smooth)
}

// Target returns an action that runs action against actor's geometry while
// taking its delta time from whichever actor ticks the returned action.
func Target(actor *Actor, action *Action) *Action {
	return NewAction(Forever, &targetStep{target: actor, child: action})
}

// After returns an action that, on its first step, gathers every other
// action currently attached to its actor, detaches them, and attaches
// Sequence(Parallel(those...), action) in their place, so action runs once
// everything already running has finished. It is a one-shot reflow: actions
// added later are not waited on.
func After(action *Action) *Action {
	return NewAction(0, StepFunc(func(a *Action) bool {
		owner := a.Owner()
		if owner == nil {
			owner = a.Actor()
		}
		if owner == nil {
			return true
		}
		var pending []*Action
		for _, other := range owner.actions {
			if other == a || other == owner.current {
				continue
			}
			pending = append(pending, other)
		}
		for _, other := range pending {
			owner.detach(other)
		}
		owner.AddAction(Sequence(Parallel(pending...), action))
		return true
	}))
}

// --- slice helpers ---

func indexOf(list []*Action, a *Action) int {
	for i, c := range list {
		if c == a {
			return i
		}
	}
	return -1
}

// removeAction deletes a from list preserving order.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func removeAction(list []*Action, a *Action) []*Action {
	i := indexOf(list, a)
	if i < 0 {
		return list
	}
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil
	return list[:len(list)-1]
}
