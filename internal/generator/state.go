package generator

import "log/slog"

// State is a step of the generation state machine.
type State string

const (
	StateValidating State = "validating"
	StateRendering  State = "rendering"
	StateCommitting State = "committing"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Result reports the outcome of an operation. CreatedFiles holds
// slash-separated project-relative paths in commit order; for Destroy it
// holds the paths that were removed.
type Result struct {
	ExitStatus   int
	CreatedFiles []string
	State        State
}

type run struct {
	op     string
	state  State
	logger *slog.Logger
}

func newRun(op string) *run {
	r := &run{op: op, state: StateValidating, logger: slog.Default().With("op", op)}
	r.logger.Debug("state", "to", r.state)
	return r
}

func (r *run) enter(s State) {
	r.logger.Debug("state", "from", r.state, "to", s)
	r.state = s
}

// fail moves to StateFailed and returns the matching result.
func (r *run) fail(err error) (Result, error) {
	r.logger.Warn("operation failed", "state", r.state, "error", err)
	r.enter(StateFailed)
	return Result{ExitStatus: ExitStatus(err), State: StateFailed}, err
}

func (r *run) done(files []string) (Result, error) {
	r.enter(StateDone)
	return Result{ExitStatus: 0, CreatedFiles: files, State: StateDone}, nil
}
