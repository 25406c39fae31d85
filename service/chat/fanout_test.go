package chat

import (
	"fmt"
	"testing"
	"time"
)

func TestFanoutDeliversToAllClients(t *testing.T) {
	f := NewFanout(2, 16)
	defer f.Close()

	var conns []*Client
	for i := 0; i < 8; i++ {
		conns = append(conns, NewClient(fmt.Sprintf("c%d", i), nil, 4))
	}

	payload := []byte(`{"event":"updateUserList","data":[]}`)
	f.Broadcast(conns, payload)

	for _, c := range conns {
		select {
		case got := <-c.Send:
			if string(got) != string(payload) {
				t.Fatalf("conn %s: payload mangled", c.ConnID)
			}
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("conn %s: nothing delivered", c.ConnID)
		}
	}
}

func TestFanoutSkipsEmptyWork(t *testing.T) {
	f := NewFanout(1, 1)
	defer f.Close()

	// neither call may enqueue a job, otherwise Close would race a worker
	// on a job nobody asked for
	f.Broadcast(nil, []byte("x"))
	f.Broadcast([]*Client{NewClient("c1", nil, 1)}, nil)
}

// A slow client never blocks the broadcast path: once its queue is full the
// payload is dropped for that client only.
func TestFanoutDropsOnFullQueue(t *testing.T) {
	f := NewFanout(1, 16)
	defer f.Close()

	slow := NewClient("slow", nil, 1)
	fast := NewClient("fast", nil, 16)
	conns := []*Client{slow, fast}

	for i := 0; i < 5; i++ {
		f.Broadcast(conns, []byte(fmt.Sprintf("m%d", i)))
	}

	// fast client sees all five
	for i := 0; i < 5; i++ {
		select {
		case <-fast.Send:
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("fast client missed message %d", i)
		}
	}

	// slow client got at most its queue size
	n := 0
	for {
		select {
		case <-slow.Send:
			n++
		case <-time.After(100 * time.Millisecond):
			if n > 1 {
				t.Fatalf("slow client received %d messages with queue size 1", n)
			}
			return
		}
	}
}

func TestFanoutSkipsClosedClients(t *testing.T) {
	f := NewFanout(1, 4)
	defer f.Close()

	c := NewClient("c1", nil, 4)
	c.close()

	// must not panic on the closed send queue
	f.Broadcast([]*Client{c}, []byte("late"))
	time.Sleep(50 * time.Millisecond)
}
