package event_test

import (
	"sync"
	"testing"

	"github.com/shashiranjanraj/tattvam/pkg/event"
)

func TestFireReachesAllListeners(t *testing.T) {
	event.Flush()
	defer event.Flush()

	var got []interface{}
	event.Listen("order.created", func(p interface{}) { got = append(got, p) })
	event.Listen("order.created", func(p interface{}) { got = append(got, p) })

	event.Fire("order.created", 7)

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	if got[0] != 7 {
		t.Errorf("expected payload 7, got %v", got[0])
	}
}

func TestFireUnknownEventIsNoop(t *testing.T) {
	event.Flush()
	defer event.Flush()

	event.Fire("nobody.listens", nil)
}

func TestFireAsync(t *testing.T) {
	event.Flush()
	defer event.Flush()

	var wg sync.WaitGroup
	wg.Add(1)
	event.Listen("user.registered", func(p interface{}) { wg.Done() })

	event.FireAsync("user.registered", "ravi")
	wg.Wait()
}
