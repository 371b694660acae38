// Package events is the observer capability bag used throughout mlcore
// (spec.md §9): a record of optional function values, never an interface
// hierarchy, so a caller only supplies the callbacks it cares about.
//
// Two shapes are provided: the general-purpose Emitter (kept from the
// teacher's named-event broadcast model, for ad-hoc progress narration) and
// the typed Download/Process capability bags the spec calls for explicitly
// (on_start/on_progress/on_succeed/on_failed, on_stdout/on_stderr/on_exit).
// Every capability defaults to a no-op so embedding code never has to
// guard a nil check.
package events

import "sync"

// Emitter broadcasts named events to zero or more handlers. Handlers run
// synchronously, in registration order, on the emitting goroutine.
type Emitter struct {
	mu        sync.RWMutex
	listeners map[string][]func(data any)
}

// New creates an initialized Emitter.
func New() *Emitter {
	return &Emitter{listeners: make(map[string][]func(data any))}
}

// On registers a handler for the named event. Multiple handlers may share
// an event name; they are invoked in the order registered.
func (e *Emitter) On(event string, handler func(data any)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[event] = append(e.listeners[event], handler)
}

// Emit invokes every handler registered for event with data. The listener
// slice is copied under the read lock so handlers may themselves call On
// without deadlocking.
func (e *Emitter) Emit(event string, data any) {
	e.mu.RLock()
	handlers := append([]func(data any){}, e.listeners[event]...)
	e.mu.RUnlock()

	for _, h := range handlers {
		h(data)
	}
}

// Progress reports completion count against a known total, plus a step tag
// distinguishing pre-filter (step 1) work from fetch (step 2) work, per
// spec.md §4.E.
type Progress struct {
	Completed int
	Total     int
	Step      int
}

// DownloadObserver is the capability bag for the concurrent downloader (E).
// Each field is an optional function value; a nil field is a no-op.
// OnProgress is called once per completed task, the others at most once.
type DownloadObserver struct {
	OnStart   func()
	OnProgress func(Progress)
	OnSucceed func()
	OnFailed  func(errs []error)
}

func (o DownloadObserver) start() {
	if o.OnStart != nil {
		o.OnStart()
	}
}

func (o DownloadObserver) progress(p Progress) {
	if o.OnProgress != nil {
		o.OnProgress(p)
	}
}

func (o DownloadObserver) succeed() {
	if o.OnSucceed != nil {
		o.OnSucceed()
	}
}

func (o DownloadObserver) failed(errs []error) {
	if o.OnFailed != nil {
		o.OnFailed(errs)
	}
}

// Start, Report, Succeed and Failed expose the capability bag's private
// no-op-safe dispatch to other packages in mlcore.
func (o DownloadObserver) Start()                    { o.start() }
func (o DownloadObserver) Report(p Progress)          { o.progress(p) }
func (o DownloadObserver) Succeed()                   { o.succeed() }
func (o DownloadObserver) Failed(errs []error)        { o.failed(errs) }

// ProcessObserver is the capability bag for the process launcher (M).
type ProcessObserver struct {
	OnStdout func(line string)
	OnStderr func(line string)
	OnExit   func(code int)
}

func (o ProcessObserver) Stdout(line string) {
	if o.OnStdout != nil {
		o.OnStdout(line)
	}
}

func (o ProcessObserver) Stderr(line string) {
	if o.OnStderr != nil {
		o.OnStderr(line)
	}
}

func (o ProcessObserver) Exit(code int) {
	if o.OnExit != nil {
		o.OnExit(code)
	}
}
