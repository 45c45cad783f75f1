package stats

import (
	"sync"
	"testing"
	"time"
)

func TestKeyedLocksSerializesSameKey(t *testing.T) {
	locks := newKeyedLocks()

	const workers = 100
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("G1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("critical section raced. Got: %d, want %d", counter, workers)
	}
}

func TestKeyedLocksIndependentKeys(t *testing.T) {
	locks := newKeyedLocks()

	unlockA := locks.Lock("G1")
	defer unlockA()

	// A different key must not block behind G1.
	acquired := make(chan struct{})
	go func() {
		unlockB := locks.Lock("G2")
		defer unlockB()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyedLocksReusesMutexPerKey(t *testing.T) {
	locks := newKeyedLocks()

	unlock := locks.Lock("G1")
	unlock()
	unlock = locks.Lock("G1")
	unlock()

	if len(locks.locks) != 1 {
		t.Errorf("expected one mutex for one key, got %d", len(locks.locks))
	}
}
