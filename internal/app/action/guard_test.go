package action

import (
	"sync"
	"testing"
)

func TestSessionGuard_NonReentrantPerSession(t *testing.T) {
	g := NewSessionGuard()
	if !g.TryAcquire("s1") {
		t.Fatalf("first acquire failed")
	}
	if g.TryAcquire("s1") {
		t.Fatalf("reacquire of held session must fail")
	}
	// Other sessions are independent.
	if !g.TryAcquire("s2") {
		t.Fatalf("unrelated session blocked")
	}
	g.Release("s1")
	if !g.TryAcquire("s1") {
		t.Fatalf("acquire after release failed")
	}
}

func TestSessionGuard_ReleaseOfUnheldSessionIsSafe(t *testing.T) {
	g := NewSessionGuard()
	g.Release("never-held")
	if !g.TryAcquire("never-held") {
		t.Fatalf("acquire failed after spurious release")
	}
}

func TestSessionGuard_ConcurrentAcquireAdmitsExactlyOne(t *testing.T) {
	g := NewSessionGuard()
	const callers = 32
	var wg sync.WaitGroup
	admitted := make(chan struct{}, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire("s1") {
				admitted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for range admitted {
		count++
	}
	if count != 1 {
		t.Fatalf("admitted %d callers, want exactly 1", count)
	}
}
