package overlay

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// exerciseStore runs the behaviour every Store implementation must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if err := s.Add(ctx, "u1", AppliedJobs, "job-3"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, "u1", AppliedJobs, "job-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Adding twice is a no-op.
	if err := s.Add(ctx, "u1", AppliedJobs, "job-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, "u1", LikedPosts, "post-2"); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := s.Members(ctx, "u1", AppliedJobs)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if !slices.Equal(got, []string{"job-1", "job-3"}) {
		t.Fatalf("members = %v", got)
	}

	// Sessions are isolated.
	other, err := s.Members(ctx, "u2", AppliedJobs)
	if err != nil || len(other) != 0 {
		t.Fatalf("u2 members = %v, %v", other, err)
	}

	if err := s.Remove(ctx, "u1", AppliedJobs, "job-3"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, "u1", SavedJobs, "never-added"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}

	snap, err := s.Snapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap) != len(Kinds) {
		t.Fatalf("snapshot should list every kind, got %v", snap)
	}
	if !slices.Equal(snap[AppliedJobs], []string{"job-1"}) || !slices.Equal(snap[LikedPosts], []string{"post-2"}) {
		t.Fatalf("snapshot = %v", snap)
	}
	if snap[SavedJobs] == nil || len(snap[SavedJobs]) != 0 {
		t.Fatalf("empty kinds should be empty lists, got %v", snap[SavedJobs])
	}

	if err := s.Add(ctx, "u1", Kind("bogus"), "x"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}

	if err := s.Clear(ctx, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	snap, err = s.Snapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("snapshot after clear: %v", err)
	}
	for k, ids := range snap {
		if len(ids) != 0 {
			t.Fatalf("%s not cleared: %v", k, ids)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	if err := s.Add(ctx, "u1", SavedJobs, "job-1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "u2", SavedJobs, "job-2"); err != nil {
		t.Fatal(err)
	}

	now = now.Add(30 * time.Second)
	if err := s.Add(ctx, "u2", SavedJobs, "job-3"); err != nil {
		t.Fatal(err)
	}

	now = now.Add(45 * time.Second)
	got, _ := s.Members(ctx, "u1", SavedJobs)
	if len(got) != 0 {
		t.Fatalf("u1 should have expired, got %v", got)
	}
	got, _ = s.Members(ctx, "u2", SavedJobs)
	if len(got) != 2 {
		t.Fatalf("u2 was touched and should be live, got %v", got)
	}

	if n := s.Sweep(now.Add(2 * time.Minute)); n != 1 {
		t.Fatalf("sweep removed %d sessions, want 1", n)
	}
	if len(s.sessions) != 0 {
		t.Fatalf("sessions left after sweep: %d", len(s.sessions))
	}
}

func TestStartSweeper(t *testing.T) {
	c, err := StartSweeper("@every 1h", NewMemoryStore(time.Minute), nopLogger())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	<-c.Stop().Done()

	if _, err := StartSweeper("not a spec", NewMemoryStore(time.Minute), nopLogger()); err == nil {
		t.Fatal("expected invalid cron expression to fail")
	}
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestRedisStore(t *testing.T) {
	s, _ := newRedisStore(t, time.Hour)
	exerciseStore(t, s)
}

func TestRedisStoreTTL(t *testing.T) {
	s, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	if err := s.Add(ctx, "u1", MarkedDates, "2025-01-20"); err != nil {
		t.Fatal(err)
	}
	if ttl := mr.TTL("overlay:u1:marked_dates"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	got, err := s.Members(ctx, "u1", MarkedDates)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("set should have expired, got %v", got)
	}
}

func TestRedisStoreError(t *testing.T) {
	s, mr := newRedisStore(t, time.Minute)
	mr.Close()
	if err := s.Add(context.Background(), "u1", SavedJobs, "job-1"); err == nil {
		t.Fatal("expected error with redis down")
	}
}
