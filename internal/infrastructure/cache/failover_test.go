package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

// failingCache errors on every operation after Fail is set.
type failingCache struct {
	inner *MemoryCache
	fail  bool
}

func (f *failingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.fail {
		return nil, false, errors.New("connection refused")
	}
	return f.inner.Get(ctx, key)
}

func (f *failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.fail {
		return errors.New("connection refused")
	}
	return f.inner.Set(ctx, key, value, ttl)
}

func (f *failingCache) Delete(ctx context.Context, key string) error {
	if f.fail {
		return errors.New("connection refused")
	}
	return f.inner.Delete(ctx, key)
}

func (f *failingCache) DeletePattern(ctx context.Context, pattern string) error {
	if f.fail {
		return errors.New("connection refused")
	}
	return f.inner.DeletePattern(ctx, pattern)
}

func TestFailover_UsesPrimaryWhileHealthy(t *testing.T) {
	primary := &failingCache{inner: NewMemoryCache()}
	f := NewFailover(primary, nil)
	ctx := context.Background()

	if f.Degraded() {
		t.Fatal("expected healthy accessor")
	}

	_ = f.Set(ctx, "k", []byte("v"), time.Minute)
	val, ok, err := f.Get(ctx, "k")
	if err != nil || !ok || string(val) != "v" {
		t.Fatalf("expected primary hit, got ok=%v val=%q err=%v", ok, val, err)
	}
	if f.Degraded() {
		t.Fatal("healthy operations must not degrade the accessor")
	}
}

func TestFailover_DegradesOnFirstPrimaryError(t *testing.T) {
	primary := &failingCache{inner: NewMemoryCache()}
	f := NewFailover(primary, nil)
	ctx := context.Background()

	primary.fail = true

	// The fault is swallowed: a failed read is just a miss.
	_, ok, err := f.Get(ctx, "k")
	if err != nil {
		t.Fatalf("cache fault must not surface, got: %v", err)
	}
	if ok {
		t.Fatal("expected miss after failover")
	}
	if !f.Degraded() {
		t.Fatal("expected accessor to be degraded")
	}
}

func TestFailover_DegradationIsOneWay(t *testing.T) {
	primary := &failingCache{inner: NewMemoryCache()}
	f := NewFailover(primary, nil)
	ctx := context.Background()

	primary.fail = true
	_, _, _ = f.Get(ctx, "k")
	primary.fail = false

	// Primary recovered, but writes keep landing on the fallback.
	_ = f.Set(ctx, "k", []byte("v"), time.Minute)
	if _, ok, _ := primary.inner.Get(ctx, "k"); ok {
		t.Fatal("expected write to bypass the recovered primary")
	}
	val, ok, _ := f.Get(ctx, "k")
	if !ok || string(val) != "v" {
		t.Fatal("expected fallback to serve the value")
	}
	if !f.Degraded() {
		t.Fatal("degradation must persist for the process lifetime")
	}
}

func TestFailover_NilPrimaryStartsDegraded(t *testing.T) {
	f := NewFailover(nil, nil)
	if !f.Degraded() {
		t.Fatal("expected memory-only mode with nil primary")
	}

	ctx := context.Background()
	_ = f.Set(ctx, "k", []byte("v"), time.Minute)
	val, ok, err := f.Get(ctx, "k")
	if err != nil || !ok || string(val) != "v" {
		t.Fatalf("expected fallback to serve, got ok=%v val=%q err=%v", ok, val, err)
	}
}

func TestFailover_WriteFaultFallsThrough(t *testing.T) {
	primary := &failingCache{inner: NewMemoryCache(), fail: true}
	f := NewFailover(primary, nil)
	ctx := context.Background()

	if err := f.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("cache fault must not surface, got: %v", err)
	}
	val, ok, _ := f.Get(ctx, "k")
	if !ok || string(val) != "v" {
		t.Fatal("expected fallback to hold the value written during failover")
	}
}
