package core

// AwaitNotifier counterpart of an `Awaiter`
type AwaitNotifier struct {
	done    chan struct{}
	summary *PublishSummary
	err     error
}

// Notify records the summary and exit reason of the
// publishing goroutine and signals the `Awaiter`.
func (n *AwaitNotifier) Notify(summary *PublishSummary, err error) {
	n.summary = summary
	n.err = err
	close(n.done)
}

// Awaiter is used to wait for a publishing run executing in
// its own goroutine. The goroutine keeps the `AwaitNotifier`
// and hands the `Awaiter` to whoever needs to observe its
// completion.
type Awaiter struct {
	notifier *AwaitNotifier
}

// Done channel is closed once the `Awaiter` is signaled.
// Use it in `select` statements.
func (a *Awaiter) Done() <-chan struct{} {
	return a.notifier.done
}

// Err blocks until the `Awaiter` is signaled and
// returns the error if available.
func (a *Awaiter) Err() error {
	<-a.Done()
	return a.notifier.err
}

// Summary blocks until the `Awaiter` is signaled and
// returns the summary of the run.
func (a *Awaiter) Summary() *PublishSummary {
	<-a.Done()
	return a.notifier.summary
}

// NewAwaiter creates a new `Awaiter` and `AwaitNotifier`
// pair.
func NewAwaiter() (*Awaiter, *AwaitNotifier) {
	notifier := &AwaitNotifier{
		done: make(chan struct{}),
	}

	return &Awaiter{notifier: notifier}, notifier
}
