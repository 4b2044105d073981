package quote

import (
	"context"
	"sync"
	"time"
)

// DefaultResetDelay matches the confirmation screen: the store resets a
// fixed delay after submission, whatever the document or POST outcome.
const DefaultResetDelay = 5 * time.Second

// Result reports both halves of a submission once both have settled.
// Either half can fail without cancelling the other.
type Result struct {
	Record       *SubmittedQuotation
	SubmitErr    error
	DocumentPath string
	DocumentErr  error
}

// Submitted reports whether the POST reached the server and was accepted.
func (r Result) Submitted() bool { return r.SubmitErr == nil }

// Flow drives one quote session end to end: it owns the store, submits
// through the client, renders the local document, and schedules the
// post-confirmation reset.
type Flow struct {
	Store      *Store
	Client     *Client
	OutputDir  string
	ResetDelay time.Duration // zero means DefaultResetDelay

	mu  sync.Mutex
	gen int // invalidates stale deferred resets
}

func NewFlow(store *Store, client *Client, outputDir string) *Flow {
	return &Flow{Store: store, Client: client, OutputDir: outputDir}
}

// Submit launches the POST and the local PDF render as independent
// operations from a single draft snapshot, then waits for both to settle.
// Failure or latency of one never blocks or cancels the other; the
// returned Result carries both outcomes. A second call creates a second
// server record. There is no duplicate protection.
func (f *Flow) Submit(ctx context.Context) Result {
	draft := f.Store.Draft() // one snapshot feeds both paths

	var res Result
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		res.Record, res.SubmitErr = f.Client.Submit(ctx, BuildPayload(draft))
	}()

	go func() {
		defer wg.Done()
		res.DocumentPath, res.DocumentErr = GenerateFile(DocumentFromDraft(draft), f.OutputDir)
	}()

	wg.Wait()
	f.scheduleReset()
	return res
}

// Abandon invalidates any pending deferred reset, for callers tearing
// down the view before the delay elapses.
func (f *Flow) Abandon() {
	f.mu.Lock()
	f.gen++
	f.mu.Unlock()
}

// scheduleReset arms the fixed-delay reset. The generation counter
// guards against a stale timer firing into a draft the caller has
// already replaced.
func (f *Flow) scheduleReset() {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	delay := f.ResetDelay
	if delay == 0 {
		delay = DefaultResetDelay
	}

	time.AfterFunc(delay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen != gen {
			return
		}
		f.Store.Reset()
	})
}
