package future

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFirstResolveWins(t *testing.T) {
	fut := New[int]()
	fut.Resolve(7)
	fut.Reject(errors.New("too late"))
	fut.Resolve(8)

	v, err := fut.Await()
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFirstRejectWins(t *testing.T) {
	boom := errors.New("boom")
	fut := New[int]()
	fut.Reject(boom)
	fut.Resolve(7)

	v, err := fut.Await()
	assert.Equal(t, boom, err)
	assert.Equal(t, 0, v)
}

func TestAwaitBlocksUntilSettled(t *testing.T) {
	fut := New[string]()

	go func() {
		time.Sleep(20 * time.Millisecond)
		fut.Resolve("done")
	}()

	v, err := fut.Await()
	assert.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestAllWaitersSeeOneOutcome(t *testing.T) {
	fut := New[int]()

	var wg sync.WaitGroup
	results := make(chan int, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := fut.Await()
			assert.NoError(t, err)
			results <- v
		}()
	}

	fut.Resolve(42)
	wg.Wait()
	close(results)

	for v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestDoneClosesOnSettle(t *testing.T) {
	fut := New[int]()

	select {
	case <-fut.Done():
		t.Fatal("done before settle")
	default:
	}

	fut.Resolve(1)

	select {
	case <-fut.Done():
	case <-time.After(time.Second):
		t.Fatal("done not closed after settle")
	}
}
