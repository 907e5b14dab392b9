package canopy

// Forever is the MaxTime of an action that never completes by time. It ends
// only when its step reports completion or it is canceled.
const Forever = -1.0

// Step is the behavior an Action runs once per unpaused tick. It returns
// true when the action is complete.
type Step interface {
	Step(a *Action) bool
}

// StepFunc adapts a plain function to a Step.
type StepFunc func(a *Action) bool

// Step calls f(a).
func (f StepFunc) Step(a *Action) bool { return f(a) }

// Restarter is implemented by steps that keep per-run state, such as the
// composites. Action.Restart forwards to it.
type Restarter interface {
	Restart(smooth bool)
}

// Action is one unit of time-driven behavior. It tracks elapsed time against
// MaxTime and runs its Step each tick until the step or the clock says it is
// done.
//
// An action is attached to at most one Actor at a time, or owned by exactly
// one composite. Placing the same action in both advances its clock twice
// per tick.
type Action struct {
	// Name is optional and reported in ActionEvents.
	Name string

	maxTime   float64
	elapsed   float64
	percent   float64
	paused    bool
	canceled  bool
	firstStep bool
	done      bool

	dt     float64 // length of the tick being evaluated
	lastDt float64 // length of the previous unpaused tick

	step  Step
	actor *Actor // geometry target of the current evaluation
	owner *Actor // actor whose top-level list holds this action
}

// NewAction creates an action lasting maxTime seconds (or Forever) that runs
// step every tick. A nil step does nothing and completes by time.
func NewAction(maxTime float64, step Step) *Action {
	if maxTime < 0 {
		maxTime = Forever
	}
	a := &Action{maxTime: maxTime, step: step, firstStep: true}
	a.updatePercent()
	return a
}

// Advance evaluates the action for one tick of dt seconds against actor and
// reports whether it is complete.
//
// A canceled action completes without running its step. A paused action is
// left untouched. Otherwise the step runs with the current Percent, and the
// action completes if the step says so or the elapsed time has reached
// MaxTime; if not, elapsed time is advanced by dt and clamped to MaxTime.
func (a *Action) Advance(actor *Actor, dt float64) bool {
	a.actor = actor
	a.dt = dt
	a.updatePercent()
	if a.canceled {
		a.done = true
		return true
	}
	if a.paused {
		return false
	}
	a.lastDt = dt

	if a.step != nil && a.step.Step(a) {
		a.done = true
		return true
	}
	if !a.IsForever() && a.elapsed >= a.maxTime {
		a.done = true
		return true
	}
	if !a.IsForever() {
		a.elapsed += dt
		if a.elapsed > a.maxTime {
			a.elapsed = a.maxTime
		}
	}
	a.firstStep = false
	return false
}

// Restart rewinds the action for another run without reallocating it.
// With smooth set and at least one step already taken, elapsed restarts at
// one tick rather than zero so looping motion does not snap back to its
// first frame. Paused is cleared; canceled is kept.
func (a *Action) Restart(smooth bool) {
	if smooth && !a.firstStep {
		a.elapsed = a.lastDt
		if !a.IsForever() && a.elapsed > a.maxTime {
			a.elapsed = a.maxTime
		}
	} else {
		a.elapsed = 0
	}
	if a.IsForever() {
		a.elapsed = 0
	}
	a.paused = false
	a.firstStep = true
	a.done = false
	a.updatePercent()
	if r, ok := a.step.(Restarter); ok {
		r.Restart(smooth)
	}
}

func (a *Action) updatePercent() {
	switch {
	case a.IsForever():
		a.percent = 0
	case a.maxTime == 0:
		a.percent = 1
	default:
		a.percent = a.elapsed / a.maxTime
	}
}

// --- Accessors ---

// MaxTime returns the duration in seconds, or Forever.
func (a *Action) MaxTime() float64 { return a.maxTime }

// IsForever reports whether the action never completes by time.
func (a *Action) IsForever() bool { return a.maxTime < 0 }

// Elapsed returns the seconds advanced so far, within [0, MaxTime].
func (a *Action) Elapsed() float64 { return a.elapsed }

// Percent returns Elapsed/MaxTime as of the current evaluation. It is 1 for
// zero-length actions and 0 for Forever actions.
func (a *Action) Percent() float64 { return a.percent }

// IsFirstStep reports whether the step about to run (or running) is the
// first of this run.
func (a *Action) IsFirstStep() bool { return a.firstStep }

// DeltaTime returns the length of the tick being evaluated.
func (a *Action) DeltaTime() float64 { return a.dt }

// Actor returns the actor whose geometry the current evaluation targets.
func (a *Action) Actor() *Actor { return a.actor }

// Owner returns the actor whose action list holds this action, or nil if it
// is detached or owned by a composite.
func (a *Action) Owner() *Actor { return a.owner }

// Step returns the action's step.
func (a *Action) Step() Step { return a.step }

// Done reports whether the last evaluation completed the action.
func (a *Action) Done() bool { return a.done }

// Pause suspends time advancement and step evaluation.
func (a *Action) Pause() { a.paused = true }

// Resume undoes Pause.
func (a *Action) Resume() { a.paused = false }

// Paused reports whether the action is paused.
func (a *Action) Paused() bool { return a.paused }

// Cancel makes the action complete on its next evaluation without running
// its step again. Effects already applied are kept.
func (a *Action) Cancel() { a.canceled = true }

// Canceled reports whether Cancel was called.
func (a *Action) Canceled() bool { return a.canceled }
