package notifier

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublish_RegistrationOrder(t *testing.T) {
	n := New()
	var got []string
	n.Subscribe(func() { got = append(got, "hero") })
	n.Subscribe(func() { got = append(got, "projects") })
	n.Subscribe(func() { got = append(got, "skills") })

	n.Publish()

	assert.Equal(t, []string{"hero", "projects", "skills"}, got)
}

func TestPublish_NoSubscribers(t *testing.T) {
	n := New()
	assert.NotPanics(t, n.Publish)
	assert.Equal(t, 0, n.Len())
}

func TestUnsubscribe(t *testing.T) {
	n := New()
	var a, b int
	unsubA := n.Subscribe(func() { a++ })
	n.Subscribe(func() { b++ })

	n.Publish()
	unsubA()
	unsubA() // second call is a no-op
	n.Publish()

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, n.Len())
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	n := New()
	var calls []string
	var unsubSecond func()
	n.Subscribe(func() {
		calls = append(calls, "first")
		unsubSecond()
	})
	unsubSecond = n.Subscribe(func() { calls = append(calls, "second") })

	n.Publish()
	n.Publish()

	// the running round keeps its snapshot, the next one sees the removal
	assert.Equal(t, []string{"first", "second", "first"}, calls)
}

func TestPublish_ReentrantIsQueued(t *testing.T) {
	n := New()
	depth, maxDepth, calls := 0, 0, 0
	n.Subscribe(func() {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		calls++
		if calls < 3 {
			n.Publish()
		}
		depth--
	})

	n.Publish()

	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, maxDepth, "subscriber must never run nested inside itself")
}

func TestPublish_Concurrent(t *testing.T) {
	n := New()
	var mu sync.Mutex
	count := 0
	n.Subscribe(func() {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.Publish()
		}()
	}
	wg.Wait()

	// every Publish is delivered exactly once; queued rounds finish before
	// the dispatching goroutine returns, and all goroutines have returned
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 50, count)
}
