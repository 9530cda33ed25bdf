package overlay

import (
	"context"
	"fmt"
	"time"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
)

// Validate checks that id names something the kind can point at.
func Validate(cat *catalog.Catalog, kind Kind, id string) error {
	var ok bool
	switch kind {
	case AppliedJobs, SavedJobs:
		_, ok = cat.Job(id)
	case CompletedBookings:
		_, ok = cat.Booking(id)
	case LikedPosts:
		_, ok = cat.FeedPost(id)
	case MarkedDates:
		if _, err := time.Parse(time.DateOnly, id); err != nil {
			return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidID, id)
		}
		return nil
	default:
		return ErrUnknownKind
	}
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUnknownEntity, kind, id)
	}
	return nil
}

type JobOverlayStats struct {
	Applied   int `json:"applied"`
	Saved     int `json:"saved"`
	Available int `json:"available"` // active jobs not yet applied to
}

// JobStats recomputes applied/saved counts from the session's membership
// lists. Ids no longer in the catalog are ignored.
func JobStats(ctx context.Context, store Store, cat *catalog.Catalog, session string) (JobOverlayStats, error) {
	applied, err := store.Members(ctx, session, AppliedJobs)
	if err != nil {
		return JobOverlayStats{}, err
	}
	saved, err := store.Members(ctx, session, SavedJobs)
	if err != nil {
		return JobOverlayStats{}, err
	}

	var s JobOverlayStats
	appliedSet := make(map[string]struct{}, len(applied))
	for _, id := range applied {
		if _, ok := cat.Job(id); ok {
			s.Applied++
			appliedSet[id] = struct{}{}
		}
	}
	for _, id := range saved {
		if _, ok := cat.Job(id); ok {
			s.Saved++
		}
	}
	for _, j := range cat.Jobs() {
		if _, done := appliedSet[j.ID]; j.Status == domain.JobActive && !done {
			s.Available++
		}
	}
	return s, nil
}

// Bookings returns the catalog bookings with the session's completed marks
// applied. The catalog itself is untouched.
func Bookings(ctx context.Context, store Store, cat *catalog.Catalog, session string) ([]catalog.Booking, error) {
	done, err := store.Members(ctx, session, CompletedBookings)
	if err != nil {
		return nil, err
	}
	marked := make(map[string]struct{}, len(done))
	for _, id := range done {
		marked[id] = struct{}{}
	}
	out := cat.Bookings()
	for i := range out {
		if _, ok := marked[out[i].ID]; ok {
			out[i].Status = domain.BookingCompleted
		}
	}
	return out, nil
}
