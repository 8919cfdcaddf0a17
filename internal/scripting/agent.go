// Package scripting runs JavaScript policy agents inside a sandboxed goja
// runtime. A policy script defines choose(view) and returns the index of
// the legal action to take for one slot; batch runs call it every turn.
package scripting

import (
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

// SlotView is the decision context handed to choose(). Field names follow
// the json tags on the JavaScript side.
type SlotView struct {
	Turn   int32           `json:"turn"`
	Phase  string          `json:"phase"`
	Side   int32           `json:"side"`
	Slot   int32           `json:"slot"`
	Legal  []battle.Action `json:"legal"`
	Battle battle.View     `json:"battle"`
}

// LogEntry is one log() message emitted by the script.
type LogEntry struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

const (
	scriptInitTimeout = 2 * time.Second
	scriptCallTimeout = 1 * time.Second
)

// Agent wraps a goja runtime holding one compiled policy script. It is
// safe for concurrent use, though calls serialize on an internal mutex.
type Agent struct {
	runtime *goja.Runtime
	choose  goja.Callable
	timeout time.Duration
	mu      sync.Mutex

	logs    []LogEntry
	logsMu  sync.Mutex
	maxLogs int
}

// New compiles a policy script. The script must define a choose function;
// anything else it sets up (state variables, helpers) persists across
// calls.
func New(source string) (*Agent, error) {
	return NewWithTimeout(source, scriptCallTimeout)
}

// NewWithTimeout compiles a policy script with a custom per-call timeout.
func NewWithTimeout(source string, timeout time.Duration) (*Agent, error) {
	if timeout <= 0 {
		timeout = scriptCallTimeout
	}
	a := &Agent{
		runtime: goja.New(),
		timeout: timeout,
		maxLogs: 500,
	}
	a.runtime.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	a.injectGlobals()

	if err := a.runWithTimeout(scriptInitTimeout, func() error {
		_, err := a.runtime.RunString(source)
		return err
	}); err != nil {
		return nil, errs.Wrap(errs.CodeInvalidArgument, "policy script failed to load", err)
	}

	fn := a.runtime.Get("choose")
	if fn == nil || goja.IsUndefined(fn) || goja.IsNull(fn) {
		return nil, errs.New(errs.CodeInvalidArgument, "policy script does not define choose()")
	}
	callable, ok := goja.AssertFunction(fn)
	if !ok {
		return nil, errs.New(errs.CodeInvalidArgument, "choose is not a function")
	}
	a.choose = callable
	return a, nil
}

// injectGlobals registers log and console.log and blanks the globals a
// sandboxed policy has no business touching.
func (a *Agent) injectGlobals() {
	a.runtime.Set("log", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		msg := strings.Join(parts, " ")

		a.logsMu.Lock()
		if len(a.logs) >= a.maxLogs {
			a.logs = a.logs[1:]
		}
		a.logs = append(a.logs, LogEntry{Time: time.Now(), Message: msg})
		a.logsMu.Unlock()

		return goja.Undefined()
	})

	console := a.runtime.NewObject()
	console.Set("log", a.runtime.Get("log"))
	a.runtime.Set("console", console)

	a.runtime.Set("require", goja.Undefined())
	a.runtime.Set("fetch", goja.Undefined())
	a.runtime.Set("XMLHttpRequest", goja.Undefined())
	a.runtime.Set("eval", goja.Undefined())
	a.runtime.Set("Function", goja.Undefined())
}

// Choose calls the script's choose(view) and returns the picked index into
// view.Legal. Out-of-range results are a caller error so a buggy script
// fails its batch run instead of silently acting at random.
func (a *Agent) Choose(view SlotView) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var picked int64
	err := a.runWithTimeout(a.timeout, func() error {
		result, err := a.choose(goja.Undefined(), a.runtime.ToValue(view))
		if err != nil {
			return err
		}
		picked = result.ToInteger()
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(errs.CodeInvalidArgument, "choose() failed", err)
	}
	if picked < 0 || picked >= int64(len(view.Legal)) {
		return 0, errs.Newf(errs.CodeInvalidArgument,
			"choose() returned %d, want 0..%d", picked, len(view.Legal)-1)
	}
	return int(picked), nil
}

// Logs returns a copy of the script's log buffer.
func (a *Agent) Logs() []LogEntry {
	a.logsMu.Lock()
	defer a.logsMu.Unlock()
	out := make([]LogEntry, len(a.logs))
	copy(out, a.logs)
	return out
}

// ClearLogs empties the log buffer.
func (a *Agent) ClearLogs() {
	a.logsMu.Lock()
	defer a.logsMu.Unlock()
	a.logs = a.logs[:0]
}

func (a *Agent) runWithTimeout(timeout time.Duration, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		a.runtime.Interrupt("script execution timeout")
		defer a.runtime.ClearInterrupt()
		select {
		case err := <-done:
			if err != nil {
				return errs.Wrap(errs.CodeInvalidArgument, "script timed out", err)
			}
			return errs.New(errs.CodeInvalidArgument, "script timed out")
		case <-time.After(200 * time.Millisecond):
			return errs.New(errs.CodeInvalidArgument, "script timed out")
		}
	}
}
