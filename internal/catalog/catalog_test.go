package catalog

import (
	"strings"
	"testing"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/query"
)

func TestDefaultSeedIsValid(t *testing.T) {
	c, err := New(DefaultSeed())
	if err != nil {
		t.Fatalf("default seed rejected: %v", err)
	}
	if len(c.Jobs()) == 0 || len(c.Trips()) == 0 || len(c.Bookings()) == 0 ||
		len(c.Vehicles()) == 0 || len(c.Drivers()) == 0 || len(c.Calendar()) == 0 ||
		len(c.LearningModules()) == 0 || len(c.FeedPosts()) == 0 {
		t.Fatal("every collection should be seeded")
	}
	if Default() != Default() {
		t.Fatal("Default should return the same catalog")
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	s := DefaultSeed()
	s.Jobs = append(s.Jobs, s.Jobs[0])
	if _, err := New(s); err == nil || !strings.Contains(err.Error(), "duplicate job id") {
		t.Fatalf("expected duplicate job error, got %v", err)
	}
}

func TestNewRejectsInvalidStatus(t *testing.T) {
	s := DefaultSeed()
	s.Bookings[0].Status = "Archived"
	if _, err := New(s); err == nil {
		t.Fatal("expected invalid booking status to be rejected")
	}

	s = DefaultSeed()
	s.Trips[0].Status = "in-process"
	if _, err := New(s); err == nil {
		t.Fatal("status values are case-sensitive")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c, err := New(DefaultSeed())
	if err != nil {
		t.Fatal(err)
	}
	jobs := c.Jobs()
	jobs[0].Title = "changed"
	if j, _ := c.Job(jobs[0].ID); j.Title == "changed" {
		t.Fatal("catalog mutated through returned slice")
	}
}

func TestAccessorsDoNotAliasNestedData(t *testing.T) {
	c, err := New(DefaultSeed())
	if err != nil {
		t.Fatal(err)
	}

	job, _ := c.Job("job-1")
	if len(job.Applications) == 0 {
		t.Fatal("job-1 should have seeded applications")
	}
	job.Applications[0].ApplicantName = "changed"
	if again, _ := c.Job("job-1"); again.Applications[0].ApplicantName == "changed" {
		t.Fatal("catalog mutated through Job applications")
	}
	jobs := c.Jobs()
	jobs[0].Applications[0].ApplicantName = "changed"
	if again, _ := c.Job(jobs[0].ID); again.Applications[0].ApplicantName == "changed" {
		t.Fatal("catalog mutated through Jobs applications")
	}

	for _, d := range c.Drivers() {
		if len(d.Reviews) == 0 || len(d.Availability.ActiveDays) == 0 {
			continue
		}
		d.Reviews[0].Comment = "changed"
		d.Availability.ActiveDays[0] = -1
		again, _ := c.Driver(d.ID)
		if again.Reviews[0].Comment == "changed" || again.Availability.ActiveDays[0] == -1 {
			t.Fatalf("catalog mutated through driver %s", d.ID)
		}
	}

	for _, m := range c.LearningModules() {
		if len(m.Tags) == 0 {
			continue
		}
		m.Tags[0] = "changed"
		if again, _ := c.LearningModule(m.ID); again.Tags[0] == "changed" {
			t.Fatalf("catalog mutated through module %s tags", m.ID)
		}
	}

	for _, day := range c.Calendar() {
		if len(day.Events) == 0 {
			continue
		}
		day.Events[0].Note = "changed"
		if again, _ := c.CalendarDay(day.Date); again.Events[0].Note == "changed" {
			t.Fatalf("catalog mutated through %s events", day.Date)
		}
	}

	docs := c.KYCDocuments("1")
	for k := range docs {
		docs[k] = "changed"
	}
	for _, st := range c.KYCDocuments("1") {
		if st == "changed" {
			t.Fatal("catalog mutated through kyc documents")
		}
	}
}

func TestLookups(t *testing.T) {
	c := Default()

	if j, ok := c.Job("job-1"); !ok || j.Title != "Heavy Truck Driver" {
		t.Fatalf("Job(job-1) = %+v, %v", j, ok)
	}
	if _, ok := c.Job("job-999"); ok {
		t.Fatal("expected miss")
	}
	if tr, ok := c.Trip("trip-4"); !ok || tr.Driver != nil {
		t.Fatalf("trip-4 should exist without a driver: %+v", tr)
	}
	if d, ok := c.CalendarDay("2025-01-20"); !ok || len(d.Events) != 2 {
		t.Fatalf("CalendarDay(2025-01-20) = %+v, %v", d, ok)
	}
	if _, ok := c.FeedPost("post-4"); !ok {
		t.Fatal("post-4 should exist")
	}
}

func TestJobQueries(t *testing.T) {
	c := Default()
	status := func(j Job) domain.JobStatus { return j.Status }

	active := query.FilterByStatus(c.Jobs(), status, []domain.JobStatus{domain.JobActive})
	var gotJob1, gotJob2 bool
	for _, j := range active {
		gotJob1 = gotJob1 || j.ID == "job-1"
		gotJob2 = gotJob2 || j.ID == "job-2"
	}
	if !gotJob1 || gotJob2 {
		t.Fatalf("Active filter should keep job-1 and drop job-2, got %d jobs", len(active))
	}

	title, err := query.SelectFields(JobFields, []string{"title"})
	if err != nil {
		t.Fatal(err)
	}
	drivers := query.FilterByQuery(c.Jobs(), "driver", title...)
	want := []string{"job-1", "job-3", "job-6"}
	if len(drivers) != len(want) {
		t.Fatalf("title search returned %d jobs, want %d", len(drivers), len(want))
	}
	for i, j := range drivers {
		if j.ID != want[i] {
			t.Fatalf("result %d = %s, want %s", i, j.ID, want[i])
		}
	}
}

func TestStats(t *testing.T) {
	c := Default()

	ls := ComputeLearningStats(c.LearningModules())
	if ls != (LearningStats{Total: 5, Completed: 2, InProgress: 2, Certificates: 2}) {
		t.Fatalf("learning stats = %+v", ls)
	}

	fs := ComputeFleetStats(c.Vehicles(), c.Drivers())
	if fs.Total != 5 || fs.Owned != 3 || fs.Attached != 2 || fs.Active != 3 ||
		fs.Maintenance != 1 || fs.Inactive != 1 || fs.Assigned != 2 ||
		fs.Drivers != 4 || fs.VerifiedDrivers != 3 {
		t.Fatalf("fleet stats = %+v", fs)
	}

	js := ComputeJobStats(c.Jobs())
	if js.Total != 6 || js.Active != 4 || js.Paused != 1 || js.Closed != 1 || js.Urgent != 2 || js.Applications != 5 {
		t.Fatalf("job stats = %+v", js)
	}

	ts := ComputeTripStats(c.Trips())
	if ts.Total != 5 || ts.Upcoming != 2 || ts.InProcess != 1 || ts.Completed != 2 {
		t.Fatalf("trip stats = %+v", ts)
	}

	bs := ComputeBookingStats(c.Bookings())
	if bs.Pending != 1 || bs.Confirmed != 2 || bs.Completed != 1 || bs.Cancelled != 1 {
		t.Fatalf("booking stats = %+v", bs)
	}
	if bs.Revenue["INR"] != 7500 || len(bs.Revenue) != 1 {
		t.Fatalf("revenue = %v", bs.Revenue)
	}
}

func TestStatsOnEmptyInput(t *testing.T) {
	if s := ComputeLearningStats(nil); s != (LearningStats{}) {
		t.Fatalf("empty learning stats = %+v", s)
	}
	if s := ComputeBookingStats(nil); s.Total != 0 || s.Revenue == nil {
		t.Fatalf("empty booking stats = %+v", s)
	}
}

func TestKYCDocuments(t *testing.T) {
	c := Default()

	docs := c.KYCDocuments("1")
	if len(docs) != len(domain.RequiredDocs) {
		t.Fatalf("expected %d docs, got %d", len(domain.RequiredDocs), len(docs))
	}
	if docs[domain.DocDrivingLicense] != domain.DocVerified || docs[domain.DocAadhaarCard] != domain.DocPending {
		t.Fatalf("user 1 docs = %v", docs)
	}
	if docs[domain.DocInsurance] != domain.DocMissing {
		t.Fatalf("insurance should be missing, got %q", docs[domain.DocInsurance])
	}

	unknown := c.KYCDocuments("no-such-user")
	for _, kind := range domain.RequiredDocs {
		if unknown[kind] != docs[kind] {
			t.Fatalf("unknown user should get the default set, %s = %q", kind, unknown[kind])
		}
	}

	docs[domain.DocPANCard] = domain.DocVerified
	if c.KYCDocuments("1")[domain.DocPANCard] != domain.DocMissing {
		t.Fatal("returned map must be a copy")
	}
}
