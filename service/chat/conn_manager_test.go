package chat

import (
	"testing"
)

func TestConnManagerAddGetRemove(t *testing.T) {
	m := NewConnManager()
	c := NewClient("c1", nil, 4)

	m.Add(c)
	got, ok := m.Get("c1")
	if !ok || got != c {
		t.Fatal("Get(c1) should return the added client")
	}
	if m.Count() != 1 {
		t.Fatalf("Count() = %d; want 1", m.Count())
	}

	removed := m.Remove("c1")
	if removed != c {
		t.Fatal("Remove(c1) should return the client")
	}
	if _, ok := m.Get("c1"); ok {
		t.Fatal("client still resolvable after remove")
	}
	if m.Remove("c1") != nil {
		t.Fatal("second remove should return nil")
	}
}

func TestConnManagerIgnoresInvalidAdds(t *testing.T) {
	m := NewConnManager()
	m.Add(nil)
	m.Add(NewClient("", nil, 4))
	if m.Count() != 0 {
		t.Fatalf("Count() = %d; want 0", m.Count())
	}
}

func TestConnManagerSendOne(t *testing.T) {
	m := NewConnManager()
	c := NewClient("c1", nil, 4)
	m.Add(c)

	if !m.SendOne("c1", []byte("hi")) {
		t.Fatal("SendOne to live client should succeed")
	}
	if got := <-c.Send; string(got) != "hi" {
		t.Fatalf("payload = %q; want hi", got)
	}

	if m.SendOne("nope", []byte("hi")) {
		t.Fatal("SendOne to unknown conn should fail")
	}

	c.close()
	if m.SendOne("c1", []byte("hi")) {
		t.Fatal("SendOne to closed client should fail")
	}
}

func TestConnManagerList(t *testing.T) {
	m := NewConnManager()
	for _, id := range []string{"a", "b", "c"} {
		m.Add(NewClient(id, nil, 1))
	}
	if got := len(m.List()); got != 3 {
		t.Fatalf("len(List()) = %d; want 3", got)
	}

	m.Close()
	if m.Count() != 0 {
		t.Fatalf("Count() = %d after Close; want 0", m.Count())
	}
}
