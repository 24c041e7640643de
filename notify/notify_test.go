package notify

import "testing"

func TestNewList(t *testing.T) {
	l := NewList()
	if l == nil {
		t.Fatal("NewList returned nil")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestList_Subscribe(t *testing.T) {
	l := NewList()

	called := false
	sub := l.Subscribe(func(modified bool) {
		if !modified {
			t.Error("observer received modified = false, want true")
		}
		called = true
	})
	if sub == nil {
		t.Fatal("Subscribe returned nil subscription")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}

	l.Notify(true)
	if !called {
		t.Error("observer was not called")
	}
}

func TestList_NotifyOrder(t *testing.T) {
	l := NewList()

	var order []int
	l.Subscribe(func(bool) { order = append(order, 1) })
	l.Subscribe(func(bool) { order = append(order, 2) })
	l.Subscribe(func(bool) { order = append(order, 3) })

	l.Notify(true)

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("got %d calls, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("call %d from observer %d, want %d", i, order[i], want[i])
		}
	}
}

func TestSubscription_Unsubscribe(t *testing.T) {
	l := NewList()

	var first, second int
	sub := l.Subscribe(func(bool) { first++ })
	l.Subscribe(func(bool) { second++ })

	l.Notify(true)
	sub.Unsubscribe()
	l.Notify(true)

	if first != 1 {
		t.Errorf("unsubscribed observer called %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining observer called %d times, want 2", second)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestSubscription_UnsubscribeIdempotent(t *testing.T) {
	l := NewList()

	sub := l.Subscribe(func(bool) {})
	sub.Unsubscribe()
	sub.Unsubscribe()

	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestList_UnsubscribePreservesOrder(t *testing.T) {
	l := NewList()

	var order []int
	l.Subscribe(func(bool) { order = append(order, 1) })
	mid := l.Subscribe(func(bool) { order = append(order, 2) })
	l.Subscribe(func(bool) { order = append(order, 3) })

	mid.Unsubscribe()
	l.Notify(true)

	want := []int{1, 3}
	if len(order) != len(want) {
		t.Fatalf("got %d calls, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("call %d from observer %d, want %d", i, order[i], want[i])
		}
	}
}

func TestList_NotifyEmpty(t *testing.T) {
	l := NewList()
	// Must not panic.
	l.Notify(true)
}
