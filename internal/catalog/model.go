package catalog

import (
	"maps"
	"slices"
	"time"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
)

type Application struct {
	ID            string                   `json:"id"`
	ApplicantName string                   `json:"applicantName"`
	AppliedAt     time.Time                `json:"appliedAt"`
	Status        domain.ApplicationStatus `json:"status"`
}

type Job struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Department   string           `json:"department"`
	Location     string           `json:"location"`
	Type         domain.JobType   `json:"type"`
	Salary       string           `json:"salary"`
	Description  string           `json:"description"`
	Image        string           `json:"image"`
	Status       domain.JobStatus `json:"status"`
	Urgent       bool             `json:"urgent"`
	Views        int              `json:"views"`
	Applications []Application    `json:"applications"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func (j Job) Key() string { return j.ID }

func (j Job) clone() Job {
	j.Applications = slices.Clone(j.Applications)
	return j
}

type Route struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

type AssignedVehicle struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
}

type AssignedDriver struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Trip struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Route         Route             `json:"route"`
	DepartureDate string            `json:"departureDate"`
	DepartureTime string            `json:"departureTime"`
	ArrivalDate   string            `json:"arrivalDate"`
	ArrivalTime   string            `json:"arrivalTime"`
	DeliveryType  string            `json:"deliveryType"`
	Status        domain.TripStatus `json:"status"`
	Vehicle       AssignedVehicle   `json:"vehicle"`
	Driver        *AssignedDriver   `json:"driver,omitempty"`
	Bids          int               `json:"bids"`
	Image         string            `json:"image"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func (t Trip) Key() string { return t.ID }

func (t Trip) clone() Trip {
	if t.Driver != nil {
		d := *t.Driver
		t.Driver = &d
	}
	return t
}

type Pricing struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

type Booking struct {
	ID            string               `json:"id"`
	CompanyName   string               `json:"companyName"`
	CompanyPhone  string               `json:"companyPhone"`
	Location      string               `json:"location"`
	ServiceName   string               `json:"serviceName"`
	ServiceType   string               `json:"serviceType"`
	Category      string               `json:"category"`
	Pricing       Pricing              `json:"pricing"`
	Status        domain.BookingStatus `json:"status"`
	ScheduledDate string               `json:"scheduledDate"`
	ScheduledTime string               `json:"scheduledTime"`
	Duration      string               `json:"duration"`
	Notes         string               `json:"notes"`
	InternalNotes string               `json:"internalNotes"`
}

func (b Booking) Key() string { return b.ID }

func (b Booking) clone() Booking { return b }

type Vehicle struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Model            string                  `json:"model"`
	Registration     string                  `json:"registration"`
	Year             int                     `json:"year"`
	FuelType         string                  `json:"fuelType"`
	Capacity         string                  `json:"capacity"`
	Mileage          string                  `json:"mileage"`
	Ownership        domain.VehicleOwnership `json:"ownership"`
	Status           domain.VehicleStatus    `json:"status"`
	AssignedDriverID *string                 `json:"assignedDriverId"`
	Location         string                  `json:"location"`
	Image            string                  `json:"image"`
}

func (v Vehicle) Key() string { return v.ID }

func (v Vehicle) clone() Vehicle {
	if v.AssignedDriverID != nil {
		id := *v.AssignedDriverID
		v.AssignedDriverID = &id
	}
	return v
}

type Performance struct {
	Safety           int `json:"safety"`
	Efficiency       int `json:"efficiency"`
	CustomerFeedback int `json:"customerFeedback"`
}

type Review struct {
	ID      string  `json:"id"`
	Author  string  `json:"author"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

type Availability struct {
	Month      string `json:"month"`
	ActiveDays []int  `json:"activeDays"`
}

type Driver struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Rating       float64      `json:"rating"`
	Trips        int          `json:"trips"`
	Verified     bool         `json:"verified"`
	Experience   string       `json:"experience"`
	Performance  Performance  `json:"performance"`
	Reviews      []Review     `json:"reviews"`
	Availability Availability `json:"availability"`
}

func (d Driver) Key() string { return d.ID }

func (d Driver) clone() Driver {
	d.Reviews = slices.Clone(d.Reviews)
	d.Availability.ActiveDays = slices.Clone(d.Availability.ActiveDays)
	return d
}

type CalendarEvent struct {
	Category  domain.EventCategory `json:"category"`
	TimeRange string               `json:"timeRange,omitempty"`
	Route     string               `json:"route,omitempty"`
	Note      string               `json:"note"`
	Active    bool                 `json:"active"`
}

// CalendarDay is the per-date record the calendar page renders.
type CalendarDay struct {
	Date     string          `json:"date"`
	HasEvent bool            `json:"hasEvent"`
	IsActive bool            `json:"isActive"`
	Events   []CalendarEvent `json:"events"`
}

func (d CalendarDay) Key() string { return d.Date }

func (d CalendarDay) clone() CalendarDay {
	d.Events = slices.Clone(d.Events)
	return d
}

type LearningModule struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Duration    string            `json:"duration"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	Tags        []string          `json:"tags"`
	Rating      float64           `json:"rating"`
	Enrolled    int               `json:"enrolled"`
	Progress    int               `json:"progress"`
	Completed   bool              `json:"completed"`
	Instructor  string            `json:"instructor"`
}

func (m LearningModule) Key() string { return m.ID }

func (m LearningModule) clone() LearningModule {
	m.Tags = slices.Clone(m.Tags)
	return m
}

type Author struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Initials string          `json:"initials"`
	Avatar   string          `json:"avatar"`
	UserType domain.UserType `json:"userType"`
	Company  string          `json:"company,omitempty"`
}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type FeedPost struct {
	ID           string    `json:"id"`
	Author       Author    `json:"author"`
	Content      string    `json:"content"`
	Image        string    `json:"image,omitempty"`
	Category     string    `json:"category"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
	Shares       int       `json:"shares"`
	CommentsList []Comment `json:"commentsList"`
	Timestamp    time.Time `json:"timestamp"`
}

func (p FeedPost) Key() string { return p.ID }

func (p FeedPost) clone() FeedPost {
	p.CommentsList = slices.Clone(p.CommentsList)
	return p
}

// KYCRecord is the canned per-user document set.
type KYCRecord struct {
	UserID    string                              `json:"userId"`
	Documents map[domain.DocKind]domain.DocStatus `json:"documents"`
}

func (k KYCRecord) Key() string { return k.UserID }

func (k KYCRecord) clone() KYCRecord {
	k.Documents = maps.Clone(k.Documents)
	return k
}
