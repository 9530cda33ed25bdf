// Package overlay keeps caller-owned, per-session marks (applied jobs, saved
// jobs, completed bookings, ...) that are joined against the read-only catalog
// at query time. Nothing here ever writes to the catalog.
package overlay

import (
	"context"
	"errors"
	"slices"
)

var (
	ErrUnknownKind   = errors.New("unknown overlay kind")
	ErrUnknownEntity = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid overlay id")
)

type Kind string

const (
	AppliedJobs       Kind = "applied_jobs"
	SavedJobs         Kind = "saved_jobs"
	CompletedBookings Kind = "completed_bookings"
	MarkedDates       Kind = "marked_dates"
	LikedPosts        Kind = "liked_posts"
)

var Kinds = []Kind{AppliedJobs, SavedJobs, CompletedBookings, MarkedDates, LikedPosts}

func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// Snapshot is every kind's member ids for one session, each list sorted.
type Snapshot map[Kind][]string

// Store holds overlay sets keyed by session id. Members are returned sorted.
type Store interface {
	Add(ctx context.Context, session string, kind Kind, id string) error
	Remove(ctx context.Context, session string, kind Kind, id string) error
	Members(ctx context.Context, session string, kind Kind) ([]string, error)
	Snapshot(ctx context.Context, session string) (Snapshot, error)
	Clear(ctx context.Context, session string) error
}
