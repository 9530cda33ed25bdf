package catalog

import "github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"

// Stats below are recomputed from the collections on every call; nothing is cached.

type LearningStats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	InProgress   int `json:"inProgress"`
	Certificates int `json:"certificates"`
}

// ComputeLearningStats counts a module as in progress when it has started but is
// not completed. Every completed module carries a certificate.
func ComputeLearningStats(modules []LearningModule) LearningStats {
	s := LearningStats{Total: len(modules)}
	for _, m := range modules {
		switch {
		case m.Completed:
			s.Completed++
			s.Certificates++
		case m.Progress > 0:
			s.InProgress++
		}
	}
	return s
}

type FleetStats struct {
	Total           int `json:"total"`
	Owned           int `json:"owned"`
	Attached        int `json:"attached"`
	Active          int `json:"active"`
	Maintenance     int `json:"maintenance"`
	Inactive        int `json:"inactive"`
	Assigned        int `json:"assigned"`
	Drivers         int `json:"drivers"`
	VerifiedDrivers int `json:"verifiedDrivers"`
}

func ComputeFleetStats(vehicles []Vehicle, drivers []Driver) FleetStats {
	s := FleetStats{Total: len(vehicles), Drivers: len(drivers)}
	for _, v := range vehicles {
		switch v.Ownership {
		case domain.VehicleOwned:
			s.Owned++
		case domain.VehicleAttached:
			s.Attached++
		}
		switch v.Status {
		case domain.VehicleActive:
			s.Active++
		case domain.VehicleMaintenance:
			s.Maintenance++
		case domain.VehicleInactive:
			s.Inactive++
		}
		if v.AssignedDriverID != nil {
			s.Assigned++
		}
	}
	for _, d := range drivers {
		if d.Verified {
			s.VerifiedDrivers++
		}
	}
	return s
}

type JobStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Paused       int `json:"paused"`
	Closed       int `json:"closed"`
	Urgent       int `json:"urgent"`
	Applications int `json:"applications"`
	Views        int `json:"views"`
}

func ComputeJobStats(jobs []Job) JobStats {
	s := JobStats{Total: len(jobs)}
	for _, j := range jobs {
		switch j.Status {
		case domain.JobActive:
			s.Active++
		case domain.JobPaused:
			s.Paused++
		case domain.JobClosed:
			s.Closed++
		}
		if j.Urgent {
			s.Urgent++
		}
		s.Applications += len(j.Applications)
		s.Views += j.Views
	}
	return s
}

type TripStats struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	InProcess int `json:"inProcess"`
	Completed int `json:"completed"`
	Bids      int `json:"bids"`
}

func ComputeTripStats(trips []Trip) TripStats {
	s := TripStats{Total: len(trips)}
	for _, t := range trips {
		switch t.Status {
		case domain.TripUpcoming:
			s.Upcoming++
		case domain.TripInProcess:
			s.InProcess++
		case domain.TripCompleted:
			s.Completed++
		}
		s.Bids += t.Bids
	}
	return s
}

type BookingStats struct {
	Total     int                `json:"total"`
	Pending   int                `json:"pending"`
	Confirmed int                `json:"confirmed"`
	Completed int                `json:"completed"`
	Cancelled int                `json:"cancelled"`
	Revenue   map[string]float64 `json:"revenue"` // currency -> sum of completed bookings
}

func ComputeBookingStats(bookings []Booking) BookingStats {
	s := BookingStats{Total: len(bookings), Revenue: map[string]float64{}}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingPending:
			s.Pending++
		case domain.BookingConfirmed:
			s.Confirmed++
		case domain.BookingCompleted:
			s.Completed++
			s.Revenue[b.Pricing.Currency] += b.Pricing.Amount
		case domain.BookingCancelled:
			s.Cancelled++
		}
	}
	return s
}
