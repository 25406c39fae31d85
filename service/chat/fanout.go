package chat

type fanoutJob struct {
	conns   []*Client
	payload []byte
}

// Fanout is the broadcast channel: a fixed worker pool that pushes a payload
// into the send queue of every targeted client.
//
// With more than one worker, two consecutive broadcasts may reach the same
// client out of order. Roster frames carry the full list, so a stale one is
// corrected by the next membership change; delivery order is not guaranteed.
type Fanout struct {
	jobs chan fanoutJob
}

func NewFanout(workers, queue int) *Fanout {
	f := &Fanout{jobs: make(chan fanoutJob, queue)}
	for i := 0; i < workers; i++ {
		go func() {
			for job := range f.jobs {
				for _, c := range job.conns {
					// Slow client: payload dropped, connection pruned
					// by its own read/write path later.
					_ = c.enqueue(job.payload)
				}
			}
		}()
	}
	return f
}

// Broadcast delivers the payload to every client in conns, the originator
// included. No filtering.
func (f *Fanout) Broadcast(conns []*Client, payload []byte) {
	if len(conns) == 0 || len(payload) == 0 {
		return
	}
	f.jobs <- fanoutJob{conns: conns, payload: payload}
}

func (f *Fanout) Close() {
	close(f.jobs)
}
