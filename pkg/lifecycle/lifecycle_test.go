package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/robinspt/food-inventory-system/pkg/lifecycle"
)

func TestNew(t *testing.T) {
	lc := lifecycle.New()

	if lc.Context() == nil {
		t.Fatal("Context() returned nil")
	}
	select {
	case <-lc.Context().Done():
		t.Error("context cancelled on a new coordinator")
	default:
	}
	if lc.Ready() {
		t.Error("Ready() = true for a new coordinator")
	}
}

func TestStartupGatesReadiness(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			time.Sleep(10 * time.Millisecond)
			count.Add(1)
		})
	}

	var checker lifecycle.ReadinessChecker = lc
	lc.WaitForStartup()

	if count.Load() != 3 {
		t.Errorf("startup count = %d, want 3", count.Load())
	}
	if !checker.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestShutdownRunsHooks(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	var count atomic.Int32
	for range 3 {
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			count.Add(1)
		})
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if count.Load() != 3 {
		t.Errorf("shutdown count = %d, want 3", count.Load())
	}
	if lc.Ready() {
		t.Error("Ready() = true after Shutdown")
	}
	select {
	case <-lc.Context().Done():
	default:
		t.Error("context not cancelled after Shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})

	if err := lc.Shutdown(50 * time.Millisecond); err == nil {
		t.Error("Shutdown() should return a timeout error")
	}
}

func TestConcurrentReady(t *testing.T) {
	lc := lifecycle.New()

	done := make(chan struct{})
	go func() {
		for range 100 {
			_ = lc.Ready()
		}
		close(done)
	}()

	lc.WaitForStartup()
	<-done
}
