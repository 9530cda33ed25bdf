// Package catalog is the read-only registry of seed entities every screen is
// rendered from. It is built once per process and never written afterwards;
// per-session changes live in the overlay package.
package catalog

import (
	"fmt"
	"sync"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/query"
)

type Catalog struct {
	jobs     []Job
	trips    []Trip
	bookings []Booking
	vehicles []Vehicle
	drivers  []Driver
	calendar []CalendarDay
	modules  []LearningModule
	posts    []FeedPost

	jobByID      map[string]int
	tripByID     map[string]int
	bookingByID  map[string]int
	vehicleByID  map[string]int
	driverByID   map[string]int
	dayByDate    map[string]int
	moduleByID   map[string]int
	postByID     map[string]int
	kycByUser    map[string]KYCRecord
	defaultKYCID string
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the process-wide catalog built from DefaultSeed.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(DefaultSeed())
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid seed: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// New validates a seed and indexes it by id. Duplicate ids and out-of-set
// status values are rejected.
func New(s Seed) (*Catalog, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	c := &Catalog{
		jobs:     cloneAll(s.Jobs),
		trips:    cloneAll(s.Trips),
		bookings: cloneAll(s.Bookings),
		vehicles: cloneAll(s.Vehicles),
		drivers:  cloneAll(s.Drivers),
		calendar: cloneAll(s.Calendar),
		modules:  cloneAll(s.Modules),
		posts:    cloneAll(s.Posts),
	}
	c.kycByUser = make(map[string]KYCRecord, len(s.KYC))
	var err error
	if c.jobByID, err = index("job", c.jobs); err != nil {
		return nil, err
	}
	if c.tripByID, err = index("trip", c.trips); err != nil {
		return nil, err
	}
	if c.bookingByID, err = index("booking", c.bookings); err != nil {
		return nil, err
	}
	if c.vehicleByID, err = index("vehicle", c.vehicles); err != nil {
		return nil, err
	}
	if c.driverByID, err = index("driver", c.drivers); err != nil {
		return nil, err
	}
	if c.dayByDate, err = index("calendar day", c.calendar); err != nil {
		return nil, err
	}
	if c.moduleByID, err = index("learning module", c.modules); err != nil {
		return nil, err
	}
	if c.postByID, err = index("feed post", c.posts); err != nil {
		return nil, err
	}
	for i, k := range s.KYC {
		if _, dup := c.kycByUser[k.UserID]; dup {
			return nil, fmt.Errorf("duplicate kyc user id %q", k.UserID)
		}
		c.kycByUser[k.UserID] = k.clone()
		if i == 0 {
			c.defaultKYCID = k.UserID
		}
	}
	return c, nil
}

func index[T query.Identified](kind string, items []T) (map[string]int, error) {
	m := make(map[string]int, len(items))
	for i, it := range items {
		id := it.Key()
		if id == "" {
			return nil, fmt.Errorf("%s at position %d has empty id", kind, i)
		}
		if _, dup := m[id]; dup {
			return nil, fmt.Errorf("duplicate %s id %q", kind, id)
		}
		m[id] = i
	}
	return m, nil
}

func validate(s Seed) error {
	for _, j := range s.Jobs {
		if !j.Type.Valid() || !j.Status.Valid() {
			return fmt.Errorf("job %q: invalid type or status", j.ID)
		}
		for _, a := range j.Applications {
			if !a.Status.Valid() {
				return fmt.Errorf("job %q application %q: invalid status %q", j.ID, a.ID, a.Status)
			}
		}
	}
	for _, t := range s.Trips {
		if !t.Status.Valid() {
			return fmt.Errorf("trip %q: invalid status %q", t.ID, t.Status)
		}
	}
	for _, b := range s.Bookings {
		if !b.Status.Valid() {
			return fmt.Errorf("booking %q: invalid status %q", b.ID, b.Status)
		}
	}
	for _, v := range s.Vehicles {
		if !v.Status.Valid() || !v.Ownership.Valid() {
			return fmt.Errorf("vehicle %q: invalid status or ownership", v.ID)
		}
	}
	for _, d := range s.Calendar {
		for _, e := range d.Events {
			if !e.Category.Valid() {
				return fmt.Errorf("calendar %q: invalid event category %q", d.Date, e.Category)
			}
		}
	}
	for _, m := range s.Modules {
		if !m.Difficulty.Valid() {
			return fmt.Errorf("learning module %q: invalid difficulty %q", m.ID, m.Difficulty)
		}
	}
	for _, p := range s.Posts {
		if !p.Author.UserType.Valid() {
			return fmt.Errorf("feed post %q: invalid author user type %q", p.ID, p.Author.UserType)
		}
	}
	for _, k := range s.KYC {
		for kind, st := range k.Documents {
			if !st.Valid() {
				return fmt.Errorf("kyc %q: invalid status %q for %s", k.UserID, st, kind)
			}
		}
	}
	return nil
}

// cloner is implemented by every entity; clone copies nested slices and
// pointers so a returned value never aliases catalog storage.
type cloner[T any] interface {
	clone() T
}

func cloneAll[T cloner[T]](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}

func lookup[T cloner[T]](items []T, idx map[string]int, id string) (T, bool) {
	i, ok := idx[id]
	if !ok {
		var zero T
		return zero, false
	}
	return items[i].clone(), true
}

// Accessors return deep copies.

func (c *Catalog) Jobs() []Job { return cloneAll(c.jobs) }
func (c *Catalog) Job(id string) (Job, bool) { return lookup(c.jobs, c.jobByID, id) }
func (c *Catalog) Trips() []Trip { return cloneAll(c.trips) }
func (c *Catalog) Trip(id string) (Trip, bool) { return lookup(c.trips, c.tripByID, id) }
func (c *Catalog) Bookings() []Booking { return cloneAll(c.bookings) }
func (c *Catalog) Booking(id string) (Booking, bool) {
	return lookup(c.bookings, c.bookingByID, id)
}
func (c *Catalog) Vehicles() []Vehicle { return cloneAll(c.vehicles) }
func (c *Catalog) Vehicle(id string) (Vehicle, bool) {
	return lookup(c.vehicles, c.vehicleByID, id)
}
func (c *Catalog) Drivers() []Driver { return cloneAll(c.drivers) }
func (c *Catalog) Driver(id string) (Driver, bool) { return lookup(c.drivers, c.driverByID, id) }
func (c *Catalog) Calendar() []CalendarDay { return cloneAll(c.calendar) }
func (c *Catalog) CalendarDay(date string) (CalendarDay, bool) {
	return lookup(c.calendar, c.dayByDate, date)
}
func (c *Catalog) LearningModules() []LearningModule { return cloneAll(c.modules) }
func (c *Catalog) LearningModule(id string) (LearningModule, bool) {
	return lookup(c.modules, c.moduleByID, id)
}
func (c *Catalog) FeedPosts() []FeedPost { return cloneAll(c.posts) }
func (c *Catalog) FeedPost(id string) (FeedPost, bool) {
	return lookup(c.posts, c.postByID, id)
}

// KYCDocuments returns the canned document map for userID. Unknown users get
// the first seeded set, so every caller sees a plausible status.
func (c *Catalog) KYCDocuments(userID string) map[domain.DocKind]domain.DocStatus {
	rec, ok := c.kycByUser[userID]
	if !ok {
		rec = c.kycByUser[c.defaultKYCID]
	}
	out := make(map[domain.DocKind]domain.DocStatus, len(domain.RequiredDocs))
	for _, kind := range domain.RequiredDocs {
		st, ok := rec.Documents[kind]
		if !ok {
			st = domain.DocMissing
		}
		out[kind] = st
	}
	return out
}
