package observe

import (
	"reflect"
	"testing"
)

func TestPublishOrder(t *testing.T) {
	var s Subject[int]
	var got []string

	s.Subscribe(func(v int) { got = append(got, "first") })
	s.Subscribe(func(v int) { got = append(got, "second") })
	s.Subscribe(func(v int) { got = append(got, "third") })

	s.Publish(1)

	if want := []string{"first", "second", "third"}; !reflect.DeepEqual(got, want) {
		t.Errorf("publish order = %v, want %v", got, want)
	}
}

func TestUnsubscribe(t *testing.T) {
	var s Subject[string]
	calls := 0

	unsubscribe := s.Subscribe(func(string) { calls++ })
	s.Publish("a")
	unsubscribe()
	unsubscribe()
	s.Publish("b")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	var s Subject[int]
	secondCalled := false

	var unsubscribeSecond func()
	s.Subscribe(func(int) { unsubscribeSecond() })
	unsubscribeSecond = s.Subscribe(func(int) { secondCalled = true })

	s.Publish(1)

	if secondCalled {
		t.Error("listener removed during publish was still called")
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	var s Subject[int]
	s.Publish(42)
}
