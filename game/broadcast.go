package game

import "sync"

// Broadcaster fans events out to any number of subscribers. Every
// subscriber owns an unbounded queue, so publishing never waits for a
// consumer: a slow reader sees a backlog, not a stalled simulation.
type Broadcaster struct {
	mu     sync.Mutex
	subs   []*subscriber
	closed bool
}

// NewBroadcaster returns an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers a new consumer and returns its event channel
// along with a cancel function. The channel is closed after the
// broadcaster closes or cancel is called; cancel discards any backlog.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}
	s := newSubscriber()
	b.subs = append(b.subs, s)
	return s.out, s.cancel
}

// Publish delivers the event to every subscriber queue.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, s := range b.subs {
		s.push(ev)
	}
}

// Close ends every subscription once queued events drain. Publish
// becomes a no-op afterwards.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, s := range b.subs {
		close(s.in)
	}
	b.subs = nil
}

type subscriber struct {
	in   chan Event
	out  chan Event
	done chan struct{}
	once sync.Once
}

func newSubscriber() *subscriber {
	s := &subscriber{
		in:   make(chan Event),
		out:  make(chan Event),
		done: make(chan struct{}),
	}
	go s.pump()
	return s
}

func (s *subscriber) push(ev Event) {
	select {
	case s.in <- ev:
	case <-s.done:
	}
}

func (s *subscriber) cancel() {
	s.once.Do(func() { close(s.done) })
}

// pump shuttles events from in to out through a slice backlog. It is
// always ready to receive, which keeps Publish from ever blocking on
// the reader of out.
func (s *subscriber) pump() {
	defer close(s.out)

	var backlog []Event
	in := s.in
	for in != nil || len(backlog) > 0 {
		var (
			out  chan Event
			next Event
		)
		if len(backlog) > 0 {
			out = s.out
			next = backlog[0]
		}
		select {
		case ev, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			backlog = append(backlog, ev)
		case out <- next:
			backlog = backlog[1:]
		case <-s.done:
			return
		}
	}
}
