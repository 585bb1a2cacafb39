package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e Event
	var calls []int

	e.Subscribe(func() { calls = append(calls, 1) })
	e.Subscribe(func() { calls = append(calls, 2) })
	e.Invoke()

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("Expected [1 2], got %v", calls)
	}
}

func TestEventNilCallbackIgnored(t *testing.T) {
	var e Event
	sub := e.Subscribe(nil)

	if e.GetListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", e.GetListenerCount())
	}
	if sub.Active() {
		t.Error("Subscription for nil callback should be inactive")
	}
	sub.Unsubscribe()
}

func TestSubscriptionUnsubscribe(t *testing.T) {
	var e EventWithArg[int]
	got := 0

	sub := e.Subscribe(func(v int) { got += v })
	e.Invoke(2)
	sub.Unsubscribe()
	e.Invoke(5)

	if got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
	if sub.Active() {
		t.Error("Subscription should be inactive after Unsubscribe")
	}

	// Second call must not remove anyone else.
	other := 0
	e.Subscribe(func(v int) { other += v })
	sub.Unsubscribe()
	e.Invoke(1)
	if other != 1 {
		t.Errorf("Double Unsubscribe removed another listener")
	}
}

func TestUnsubscribeDuringInvoke(t *testing.T) {
	var e EventWithArg[string]
	var seen []string
	var first Subscription

	first = e.Subscribe(func(s string) {
		seen = append(seen, "first:"+s)
		first.Unsubscribe()
	})
	e.Subscribe(func(s string) { seen = append(seen, "second:"+s) })

	e.Invoke("a")
	e.Invoke("b")

	want := []string{"first:a", "second:a", "second:b"}
	if len(seen) != len(want) {
		t.Fatalf("Expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestScopeCloseReleasesAll(t *testing.T) {
	var keys EventWithArg[int]
	var clicks Event
	var scope Scope

	scope.Add(keys.Subscribe(func(int) {}))
	scope.Add(keys.Subscribe(func(int) {}))
	scope.Add(clicks.Subscribe(func() {}))

	if scope.Len() != 3 {
		t.Errorf("Expected 3 subscriptions in scope, got %d", scope.Len())
	}

	scope.Close()

	if keys.GetListenerCount() != 0 {
		t.Errorf("Expected 0 key listeners, got %d", keys.GetListenerCount())
	}
	if clicks.GetListenerCount() != 0 {
		t.Errorf("Expected 0 click listeners, got %d", clicks.GetListenerCount())
	}
	scope.Close()
}
