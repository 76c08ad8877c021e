package chatlog

import (
	"context"
	"log"
	"sync"
	"time"
)

// writeTimeout bounds each background write so a stuck database cannot
// pile up goroutines.
const writeTimeout = 5 * time.Second

// Dispatcher is the fire-and-forget logging port used by the pipeline.
// Enqueued writes run on a background worker; they never block the caller
// and their errors are logged and swallowed.
type Dispatcher struct {
	store *Store
	jobs  chan func(context.Context) error
	wg    sync.WaitGroup
	once  sync.Once
}

// NewDispatcher creates a Dispatcher with the given queue depth and starts
// its worker.
func NewDispatcher(store *Store, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		store: store,
		jobs:  make(chan func(context.Context) error, buffer),
	}

	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := job(ctx); err != nil {
			log.Printf("chatlog: background write: %v", err)
		}
		cancel()
	}
}

// enqueue hands a write to the worker. A full queue drops the write rather
// than blocking the request path.
func (d *Dispatcher) enqueue(job func(context.Context) error) {
	select {
	case d.jobs <- job:
	default:
		log.Printf("chatlog: queue full, dropping log write")
	}
}

// LogUnanswered records an unanswered query without blocking.
func (d *Dispatcher) LogUnanswered(query, suggestedIntent string) {
	d.enqueue(func(ctx context.Context) error {
		return d.store.LogUnanswered(ctx, query, suggestedIntent)
	})
}

// LogQuery records a query-log row without blocking.
func (d *Dispatcher) LogQuery(entry QueryLog) {
	d.enqueue(func(ctx context.Context) error {
		_, err := d.store.InsertQueryLog(ctx, entry)
		return err
	})
}

// LogClick records a product click without blocking.
func (d *Dispatcher) LogClick(click Click) {
	d.enqueue(func(ctx context.Context) error {
		return d.store.InsertClick(ctx, click)
	})
}

// Run executes an arbitrary store write on the worker. Used for usage-count
// increments and similar side effects.
func (d *Dispatcher) Run(job func(context.Context) error) {
	d.enqueue(job)
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.jobs) })
	d.wg.Wait()
}
