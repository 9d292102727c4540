package connectory

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/saransh1220/flowart/internal/modules/directory/domain"
)

// DefaultDebounce is the quiet period after the last filter change
// before a fetch is issued.
const DefaultDebounce = 300 * time.Millisecond

// FetchFailedMessage is shown when a listing request fails.
const FetchFailedMessage = "Failed to load artists"

// Fetcher loads the listing for a filter.
type Fetcher interface {
	ListArtists(ctx context.Context, f domain.Filter) ([]domain.Artist, error)
}

type FetcherFunc func(ctx context.Context, f domain.Filter) ([]domain.Artist, error)

func (fn FetcherFunc) ListArtists(ctx context.Context, f domain.Filter) ([]domain.Artist, error) {
	return fn(ctx, f)
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Snapshot is the visible state of the controller at one point in time.
type Snapshot struct {
	Filter  Filter
	Status  Status
	Artists []Artist
	Err     error
	Seq     uint64
}

type Option func(*Controller)

func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithOnChange registers fn to receive every state change. fn runs with
// the controller locked and must not call back into it.
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller turns filter changes into debounced listing requests. Only
// the response to the most recent change is applied: every change bumps
// a sequence number and cancels the request in flight, and a response
// carrying an older sequence number is dropped. A failed request keeps
// the previous results and moves the status to Error.
type Controller struct {
	fetcher  Fetcher
	notifier Notifier
	onChange func(Snapshot)
	delay    time.Duration

	mu       sync.Mutex
	filter   Filter
	status   Status
	results  []Artist
	err      error
	seq      uint64
	timer    *time.Timer
	cancel   context.CancelFunc
	disposed bool

	wg sync.WaitGroup
}

// NewController starts in Loading and schedules the initial fetch.
func NewController(fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		delay:   DefaultDebounce,
		filter:  Filter{Medium: domain.All, Experience: domain.All},
		status:  StatusLoading,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = NotifierFunc(func(string) {})
	}

	c.mu.Lock()
	c.scheduleLocked()
	c.mu.Unlock()
	return c
}

func (c *Controller) SetQuery(q string) {
	c.update(func(f *Filter) { f.Query = q })
}

func (c *Controller) SetMedium(m string) {
	c.update(func(f *Filter) { f.Medium = m })
}

func (c *Controller) SetExperience(e string) {
	c.update(func(f *Filter) { f.Experience = e })
}

// SetFilter replaces the whole filter as a single change.
func (c *Controller) SetFilter(next Filter) {
	c.update(func(f *Filter) { *f = next })
}

// Refresh refetches the current filter.
func (c *Controller) Refresh() {
	c.update(func(*Filter) {})
}

func (c *Controller) update(mutate func(*Filter)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	mutate(&c.filter)
	c.scheduleLocked()
}

func (c *Controller) scheduleLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	c.status = StatusLoading

	seq, filter := c.seq, c.filter
	c.timer = time.AfterFunc(c.delay, func() { c.fetch(seq, filter) })
	c.emitLocked()
}

func (c *Controller) fetch(seq uint64, filter Filter) {
	c.mu.Lock()
	if c.disposed || seq != c.seq {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	defer c.wg.Done()
	defer cancel()

	artists, err := c.fetcher.ListArtists(ctx, filter)
	c.apply(seq, artists, err)
}

func (c *Controller) apply(seq uint64, artists []Artist, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || seq != c.seq {
		return
	}
	c.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		slog.Debug("artist fetch failed", "seq", seq, "error", err)
		c.err = err
		c.status = ResolveStatus(false, err, len(c.results))
		c.notifier.Notify(FetchFailedMessage)
		c.emitLocked()
		return
	}

	if artists == nil {
		artists = []Artist{}
	}
	c.results = artists
	c.err = nil
	c.status = ResolveStatus(false, nil, len(artists))
	c.emitLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Filter:  c.filter,
		Status:  c.status,
		Artists: c.results,
		Err:     c.err,
		Seq:     c.seq,
	}
}

func (c *Controller) emitLocked() {
	if c.onChange != nil {
		c.onChange(c.snapshotLocked())
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Dispose stops the pending timer, cancels the request in flight and
// waits for it to return. No state changes happen afterwards.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}
