package catalog

import (
	"time"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
)

// Seed is the full set of collections a registry is built from.
type Seed struct {
	Jobs     []Job
	Trips    []Trip
	Bookings []Booking
	Vehicles []Vehicle
	Drivers  []Driver
	Calendar []CalendarDay
	Modules  []LearningModule
	Posts    []FeedPost
	KYC      []KYCRecord
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

// DefaultSeed returns the fixed data the prototype screens render.
func DefaultSeed() Seed {
	return Seed{
		Jobs:     seedJobs(),
		Trips:    seedTrips(),
		Bookings: seedBookings(),
		Vehicles: seedVehicles(),
		Drivers:  seedDrivers(),
		Calendar: seedCalendar(),
		Modules:  seedModules(),
		Posts:    seedPosts(),
		KYC:      seedKYC(),
	}
}

func seedJobs() []Job {
	return []Job{
		{
			ID:          "job-1",
			Title:       "Heavy Truck Driver",
			Department:  "Logistics",
			Location:    "Mumbai, Maharashtra",
			Type:        domain.JobFullTime,
			Salary:      "₹35,000 - ₹45,000/month",
			Description: "Long-haul container transport on the Mumbai–Delhi corridor. Valid HMV licence and 3+ years of experience required.",
			Image:       "/images/jobs/heavy-truck.jpg",
			Status:      domain.JobActive,
			Urgent:      true,
			Views:       342,
			Applications: []Application{
				{ID: "app-1", ApplicantName: "Rajesh Kumar", AppliedAt: mustTime("2025-01-12T09:30:00Z"), Status: domain.ApplicationShortlisted},
				{ID: "app-2", ApplicantName: "Suresh Patil", AppliedAt: mustTime("2025-01-13T14:10:00Z"), Status: domain.ApplicationPending},
			},
			CreatedAt: mustTime("2025-01-10T08:00:00Z"),
		},
		{
			ID:          "job-2",
			Title:       "Fleet Supervisor",
			Department:  "Operations",
			Location:    "Pune, Maharashtra",
			Type:        domain.JobFullTime,
			Salary:      "₹50,000 - ₹60,000/month",
			Description: "Supervise a 40-vehicle fleet, schedule maintenance and coordinate driver rosters.",
			Image:       "/images/jobs/fleet-supervisor.jpg",
			Status:      domain.JobClosed,
			Views:       128,
			Applications: []Application{
				{ID: "app-3", ApplicantName: "Anita Desai", AppliedAt: mustTime("2024-12-02T11:00:00Z"), Status: domain.ApplicationHired},
			},
			CreatedAt: mustTime("2024-11-28T08:00:00Z"),
		},
		{
			ID:           "job-3",
			Title:        "Delivery Van Driver",
			Department:   "Last Mile",
			Location:     "Bengaluru, Karnataka",
			Type:         domain.JobPartTime,
			Salary:       "₹18,000/month",
			Description:  "Morning shift intra-city parcel deliveries. LMV licence required.",
			Image:        "/images/jobs/delivery-van.jpg",
			Status:       domain.JobActive,
			Views:        89,
			Applications: []Application{},
			CreatedAt:    mustTime("2025-01-14T08:00:00Z"),
		},
		{
			ID:          "job-4",
			Title:       "Diesel Mechanic",
			Department:  "Maintenance",
			Location:    "Ahmedabad, Gujarat",
			Type:        domain.JobContract,
			Salary:      "₹900/day",
			Description: "Six-month contract servicing Tata and Ashok Leyland trucks at the depot.",
			Image:       "/images/jobs/mechanic.jpg",
			Status:      domain.JobPaused,
			Views:       57,
			Applications: []Application{
				{ID: "app-4", ApplicantName: "Mohammed Irfan", AppliedAt: mustTime("2025-01-05T16:45:00Z"), Status: domain.ApplicationRejected},
			},
			CreatedAt: mustTime("2025-01-02T08:00:00Z"),
		},
		{
			ID:           "job-5",
			Title:        "Route Planner",
			Department:   "Logistics",
			Location:     "Remote",
			Type:         domain.JobFreelance,
			Salary:       "₹25,000/project",
			Description:  "Design optimised multi-drop routes for regional cold-chain deliveries.",
			Image:        "/images/jobs/route-planner.jpg",
			Status:       domain.JobActive,
			Urgent:       true,
			Views:        211,
			Applications: []Application{},
			CreatedAt:    mustTime("2025-01-15T08:00:00Z"),
		},
		{
			ID:          "job-6",
			Title:       "Tanker Driver",
			Department:  "Hazmat",
			Location:    "Jamnagar, Gujarat",
			Type:        domain.JobFullTime,
			Salary:      "₹42,000/month",
			Description: "Petroleum tanker transport. Hazardous goods endorsement mandatory.",
			Image:       "/images/jobs/tanker.jpg",
			Status:      domain.JobActive,
			Views:       164,
			Applications: []Application{
				{ID: "app-5", ApplicantName: "Vikram Singh", AppliedAt: mustTime("2025-01-16T07:20:00Z"), Status: domain.ApplicationPending},
			},
			CreatedAt: mustTime("2025-01-11T08:00:00Z"),
		},
	}
}

func seedTrips() []Trip {
	return []Trip{
		{
			ID:            "trip-1",
			Title:         "Steel Coils to Delhi",
			Route:         Route{From: "Mumbai", To: "Delhi", Distance: "1,420 km", Duration: "26 hrs"},
			DepartureDate: "2025-01-20", DepartureTime: "06:00",
			ArrivalDate: "2025-01-21", ArrivalTime: "08:00",
			DeliveryType: "Full Truck Load",
			Status:       domain.TripUpcoming,
			Vehicle:      AssignedVehicle{Name: "Tata Prima 4028.S", Registration: "MH 04 AB 1234"},
			Driver:       &AssignedDriver{ID: "drv-1", Name: "Rajesh Kumar", Phone: "+919820012345"},
			Bids:         7,
			Image:        "/images/trips/steel.jpg",
			CreatedAt:    mustTime("2025-01-15T10:00:00Z"),
		},
		{
			ID:            "trip-2",
			Title:         "Pharma Cold Chain",
			Route:         Route{From: "Ahmedabad", To: "Bengaluru", Distance: "1,500 km", Duration: "28 hrs"},
			DepartureDate: "2025-01-17", DepartureTime: "22:00",
			ArrivalDate: "2025-01-19", ArrivalTime: "02:00",
			DeliveryType: "Refrigerated",
			Status:       domain.TripInProcess,
			Vehicle:      AssignedVehicle{Name: "Eicher Pro 6055", Registration: "GJ 01 CD 5678"},
			Driver:       &AssignedDriver{ID: "drv-2", Name: "Suresh Patil", Phone: "+919822054321"},
			Bids:         3,
			Image:        "/images/trips/pharma.jpg",
			CreatedAt:    mustTime("2025-01-12T10:00:00Z"),
		},
		{
			ID:            "trip-3",
			Title:         "Textile Bales to Kolkata",
			Route:         Route{From: "Surat", To: "Kolkata", Distance: "1,950 km", Duration: "38 hrs"},
			DepartureDate: "2025-01-05", DepartureTime: "05:30",
			ArrivalDate: "2025-01-06", ArrivalTime: "19:30",
			DeliveryType: "Part Load",
			Status:       domain.TripCompleted,
			Vehicle:      AssignedVehicle{Name: "Ashok Leyland 3518", Registration: "GJ 05 EF 9012"},
			Driver:       &AssignedDriver{ID: "drv-3", Name: "Vikram Singh", Phone: "+919811098765"},
			Bids:         11,
			Image:        "/images/trips/textile.jpg",
			CreatedAt:    mustTime("2025-01-01T10:00:00Z"),
		},
		{
			ID:            "trip-4",
			Title:         "Electronics to Hyderabad",
			Route:         Route{From: "Chennai", To: "Hyderabad", Distance: "630 km", Duration: "11 hrs"},
			DepartureDate: "2025-01-24", DepartureTime: "09:00",
			ArrivalDate: "2025-01-24", ArrivalTime: "20:00",
			DeliveryType: "Express",
			Status:       domain.TripUpcoming,
			Vehicle:      AssignedVehicle{Name: "BharatBenz 1617R", Registration: "TN 09 GH 3456"},
			Bids:         0,
			Image:        "/images/trips/electronics.jpg",
			CreatedAt:    mustTime("2025-01-16T10:00:00Z"),
		},
		{
			ID:            "trip-5",
			Title:         "Cement Bags to Nagpur",
			Route:         Route{From: "Pune", To: "Nagpur", Distance: "710 km", Duration: "13 hrs"},
			DepartureDate: "2025-01-08", DepartureTime: "04:00",
			ArrivalDate: "2025-01-08", ArrivalTime: "17:00",
			DeliveryType: "Full Truck Load",
			Status:       domain.TripCompleted,
			Vehicle:      AssignedVehicle{Name: "Tata Signa 3118.T", Registration: "MH 12 IJ 7890"},
			Driver:       &AssignedDriver{ID: "drv-4", Name: "Anil Yadav", Phone: "+919890011223"},
			Bids:         5,
			Image:        "/images/trips/cement.jpg",
			CreatedAt:    mustTime("2025-01-03T10:00:00Z"),
		},
	}
}

func seedBookings() []Booking {
	return []Booking{
		{
			ID: "booking-1", CompanyName: "Shree Logistics", CompanyPhone: "+912226543210",
			Location: "Bhiwandi, Maharashtra", ServiceName: "Full Vehicle Service", ServiceType: "Maintenance",
			Category: "Servicing", Pricing: Pricing{Currency: "INR", Amount: 4500},
			Status: domain.BookingPending, ScheduledDate: "2025-01-22", ScheduledTime: "10:00", Duration: "4 hrs",
			Notes: "Two trucks, engine oil and filter change.", InternalNotes: "Regular customer, offer 5% discount.",
		},
		{
			ID: "booking-2", CompanyName: "Gati Movers", CompanyPhone: "+914023456789",
			Location: "Hyderabad, Telangana", ServiceName: "Tyre Replacement", ServiceType: "Repair",
			Category: "Tyres", Pricing: Pricing{Currency: "INR", Amount: 18000},
			Status: domain.BookingConfirmed, ScheduledDate: "2025-01-19", ScheduledTime: "14:30", Duration: "2 hrs",
			Notes: "Six rear tyres.", InternalNotes: "Stock confirmed with supplier.",
		},
		{
			ID: "booking-3", CompanyName: "Western Carriers", CompanyPhone: "+917926543219",
			Location: "Ahmedabad, Gujarat", ServiceName: "GPS Installation", ServiceType: "Installation",
			Category: "Telematics", Pricing: Pricing{Currency: "INR", Amount: 7500},
			Status: domain.BookingCompleted, ScheduledDate: "2025-01-09", ScheduledTime: "11:00", Duration: "3 hrs",
			Notes: "Install trackers on 5 vehicles.", InternalNotes: "Invoice sent.",
		},
		{
			ID: "booking-4", CompanyName: "Delhi Freight Co.", CompanyPhone: "+911145678901",
			Location: "Delhi", ServiceName: "Brake Inspection", ServiceType: "Inspection",
			Category: "Safety", Pricing: Pricing{Currency: "INR", Amount: 2500},
			Status: domain.BookingCancelled, ScheduledDate: "2025-01-11", ScheduledTime: "09:00", Duration: "1 hr",
			Notes: "", InternalNotes: "Customer rescheduled to next month.",
		},
		{
			ID: "booking-5", CompanyName: "Coastal Express", CompanyPhone: "+914428765432",
			Location: "Chennai, Tamil Nadu", ServiceName: "AC Reefer Service", ServiceType: "Maintenance",
			Category: "Refrigeration", Pricing: Pricing{Currency: "USD", Amount: 120},
			Status: domain.BookingConfirmed, ScheduledDate: "2025-01-25", ScheduledTime: "16:00", Duration: "5 hrs",
			Notes: "Reefer unit losing temperature.", InternalNotes: "Needs certified technician.",
		},
	}
}

func seedVehicles() []Vehicle {
	return []Vehicle{
		{
			ID: "veh-1", Name: "Tata Prima", Model: "4028.S", Registration: "MH 04 AB 1234", Year: 2022,
			FuelType: "Diesel", Capacity: "28 tonnes", Mileage: "4.5 km/l",
			Ownership: domain.VehicleOwned, Status: domain.VehicleActive, AssignedDriverID: strPtr("drv-1"),
			Location: "Mumbai", Image: "/images/vehicles/prima.jpg",
		},
		{
			ID: "veh-2", Name: "Eicher Pro", Model: "6055", Registration: "GJ 01 CD 5678", Year: 2021,
			FuelType: "Diesel", Capacity: "16 tonnes", Mileage: "5.2 km/l",
			Ownership: domain.VehicleAttached, Status: domain.VehicleActive, AssignedDriverID: strPtr("drv-2"),
			Location: "Ahmedabad", Image: "/images/vehicles/eicher.jpg",
		},
		{
			ID: "veh-3", Name: "Ashok Leyland", Model: "3518", Registration: "GJ 05 EF 9012", Year: 2019,
			FuelType: "Diesel", Capacity: "25 tonnes", Mileage: "4.1 km/l",
			Ownership: domain.VehicleOwned, Status: domain.VehicleMaintenance,
			Location: "Surat", Image: "/images/vehicles/leyland.jpg",
		},
		{
			ID: "veh-4", Name: "BharatBenz", Model: "1617R", Registration: "TN 09 GH 3456", Year: 2023,
			FuelType: "Diesel", Capacity: "10 tonnes", Mileage: "6.0 km/l",
			Ownership: domain.VehicleOwned, Status: domain.VehicleActive,
			Location: "Chennai", Image: "/images/vehicles/bharatbenz.jpg",
		},
		{
			ID: "veh-5", Name: "Tata Ace", Model: "EV", Registration: "KA 01 KL 2468", Year: 2024,
			FuelType: "Electric", Capacity: "0.6 tonnes", Mileage: "154 km/charge",
			Ownership: domain.VehicleAttached, Status: domain.VehicleInactive,
			Location: "Bengaluru", Image: "/images/vehicles/ace-ev.jpg",
		},
	}
}

func seedDrivers() []Driver {
	return []Driver{
		{
			ID: "drv-1", Name: "Rajesh Kumar", Phone: "+919820012345", Rating: 4.8, Trips: 312, Verified: true,
			Experience:  "8 years",
			Performance: Performance{Safety: 96, Efficiency: 91, CustomerFeedback: 94},
			Reviews: []Review{
				{ID: "rev-1", Author: "Shree Logistics", Rating: 5, Comment: "Always on time.", Date: "2025-01-08"},
				{ID: "rev-2", Author: "Gati Movers", Rating: 4.5, Comment: "Careful with fragile cargo.", Date: "2024-12-20"},
			},
			Availability: Availability{Month: "2025-01", ActiveDays: []int{2, 3, 6, 9, 14, 20, 21, 27}},
		},
		{
			ID: "drv-2", Name: "Suresh Patil", Phone: "+919822054321", Rating: 4.5, Trips: 198, Verified: true,
			Experience:  "5 years",
			Performance: Performance{Safety: 92, Efficiency: 88, CustomerFeedback: 90},
			Reviews: []Review{
				{ID: "rev-3", Author: "Coastal Express", Rating: 4.5, Comment: "Good communication on the road.", Date: "2025-01-02"},
			},
			Availability: Availability{Month: "2025-01", ActiveDays: []int{1, 5, 12, 17, 18, 19}},
		},
		{
			ID: "drv-3", Name: "Vikram Singh", Phone: "+919811098765", Rating: 4.2, Trips: 145, Verified: false,
			Experience:   "3 years",
			Performance:  Performance{Safety: 85, Efficiency: 83, CustomerFeedback: 86},
			Reviews:      []Review{},
			Availability: Availability{Month: "2025-01", ActiveDays: []int{5, 6, 7, 22, 23}},
		},
		{
			ID: "drv-4", Name: "Anil Yadav", Phone: "+919890011223", Rating: 4.9, Trips: 421, Verified: true,
			Experience:  "12 years",
			Performance: Performance{Safety: 98, Efficiency: 95, CustomerFeedback: 97},
			Reviews: []Review{
				{ID: "rev-4", Author: "Western Carriers", Rating: 5, Comment: "Best driver we have worked with.", Date: "2025-01-09"},
			},
			Availability: Availability{Month: "2025-01", ActiveDays: []int{8, 10, 15, 16, 28, 29, 30}},
		},
	}
}

func seedCalendar() []CalendarDay {
	return []CalendarDay{
		{
			Date: "2025-01-17", HasEvent: true, IsActive: true,
			Events: []CalendarEvent{
				{Category: domain.EventTrip, TimeRange: "22:00 - 02:00", Route: "Ahmedabad → Bengaluru", Note: "Pharma cold chain", Active: true},
			},
		},
		{
			Date: "2025-01-20", HasEvent: true, IsActive: true,
			Events: []CalendarEvent{
				{Category: domain.EventTrip, TimeRange: "06:00 - 08:00", Route: "Mumbai → Delhi", Note: "Steel coils", Active: true},
				{Category: domain.EventJob, TimeRange: "15:00 - 16:00", Note: "Interview: Heavy Truck Driver", Active: true},
			},
		},
		{
			Date: "2025-01-22", HasEvent: true, IsActive: false,
			Events: []CalendarEvent{
				{Category: domain.EventJob, Note: "Tanker driver shortlist review", Active: false},
			},
		},
		{
			Date: "2025-01-24", HasEvent: true, IsActive: true,
			Events: []CalendarEvent{
				{Category: domain.EventTrip, TimeRange: "09:00 - 20:00", Route: "Chennai → Hyderabad", Note: "Electronics", Active: true},
			},
		},
		{Date: "2025-01-26", HasEvent: false, IsActive: false, Events: []CalendarEvent{}},
	}
}

func seedModules() []LearningModule {
	return []LearningModule{
		{
			ID: "mod-1", Title: "Defensive Driving Fundamentals", Description: "Hazard perception, safe following distance and night driving.",
			Category: "Safety", Duration: "2h 30m", Difficulty: domain.DifficultyBeginner, Tags: []string{"safety", "driving"},
			Rating: 4.7, Enrolled: 1240, Progress: 100, Completed: true, Instructor: "Capt. Meera Nair",
		},
		{
			ID: "mod-2", Title: "Hazardous Goods Handling", Description: "ADR classes, placarding and spill response for tanker crews.",
			Category: "Compliance", Duration: "4h", Difficulty: domain.DifficultyAdvanced, Tags: []string{"hazmat", "compliance"},
			Rating: 4.8, Enrolled: 430, Progress: 60, Instructor: "Dr. Arvind Rao",
		},
		{
			ID: "mod-3", Title: "Fuel Efficient Driving", Description: "Gear discipline, idling control and route planning to cut fuel cost.",
			Category: "Efficiency", Duration: "1h 45m", Difficulty: domain.DifficultyIntermediate, Tags: []string{"fuel", "efficiency"},
			Rating: 4.5, Enrolled: 980, Progress: 100, Completed: true, Instructor: "Sanjay Gupta",
		},
		{
			ID: "mod-4", Title: "Fleet Management Basics", Description: "Maintenance schedules, driver rosters and utilisation metrics.",
			Category: "Management", Duration: "3h", Difficulty: domain.DifficultyIntermediate, Tags: []string{"fleet", "operations"},
			Rating: 4.3, Enrolled: 610, Progress: 25, Instructor: "Priya Sharma",
		},
		{
			ID: "mod-5", Title: "E-Way Bill and GST for Transporters", Description: "Documentation every interstate consignment needs.",
			Category: "Compliance", Duration: "1h 15m", Difficulty: domain.DifficultyBeginner, Tags: []string{"gst", "documents"},
			Rating: 4.1, Enrolled: 1520, Progress: 0, Instructor: "CA Rohit Mehta",
		},
	}
}

func seedPosts() []FeedPost {
	return []FeedPost{
		{
			ID: "post-1",
			Author: Author{
				ID: "user-11", Name: "Shree Logistics", Initials: "SL", Avatar: "/images/avatars/shree.png",
				UserType: domain.UserCompany, Company: "Shree Logistics Pvt Ltd",
			},
			Content:  "We are hiring 10 heavy vehicle drivers for the Mumbai–Delhi route. Apply through WheelBoard jobs.",
			Image:    "/images/feed/hiring.jpg",
			Category: "Hiring",
			Likes:    48, Comments: 2, Shares: 12,
			CommentsList: []Comment{
				{ID: "c-1", Author: "Rajesh Kumar", Content: "Applied!", Timestamp: mustTime("2025-01-15T11:05:00Z")},
				{ID: "c-2", Author: "Anil Yadav", Content: "Is night driving required?", Timestamp: mustTime("2025-01-15T12:40:00Z")},
			},
			Timestamp: mustTime("2025-01-15T10:30:00Z"),
		},
		{
			ID: "post-2",
			Author: Author{
				ID: "user-21", Name: "Anil Yadav", Initials: "AY", Avatar: "/images/avatars/anil.png",
				UserType: domain.UserProfessional,
			},
			Content:      "Completed 400 trips without a single incident. Thanks to everyone on the road with me.",
			Category:     "Milestone",
			Likes:        156, Comments: 0, Shares: 9,
			CommentsList: []Comment{},
			Timestamp:    mustTime("2025-01-14T18:00:00Z"),
		},
		{
			ID: "post-3",
			Author: Author{
				ID: "user-31", Name: "QuickFix Garage", Initials: "QG", Avatar: "/images/avatars/quickfix.png",
				UserType: domain.UserBusiness, Company: "QuickFix Auto Services",
			},
			Content:  "Winter tyre check camp this weekend at our Bhiwandi workshop. Free inspection for WheelBoard members.",
			Image:    "/images/feed/tyre-camp.jpg",
			Category: "Offer",
			Likes:    32, Comments: 1, Shares: 4,
			CommentsList: []Comment{
				{ID: "c-3", Author: "Gati Movers", Content: "Booking two slots.", Timestamp: mustTime("2025-01-13T09:15:00Z")},
			},
			Timestamp: mustTime("2025-01-13T08:00:00Z"),
		},
		{
			ID: "post-4",
			Author: Author{
				ID: "user-12", Name: "Western Carriers", Initials: "WC", Avatar: "/images/avatars/western.png",
				UserType: domain.UserCompany, Company: "Western Carriers Ltd",
			},
			Content:      "New GPS trackers installed across our fleet. Live tracking now available to all customers.",
			Category:     "Update",
			Likes:        21, Comments: 0, Shares: 2,
			CommentsList: []Comment{},
			Timestamp:    mustTime("2025-01-10T15:20:00Z"),
		},
	}
}

func seedKYC() []KYCRecord {
	return []KYCRecord{
		{
			UserID: "1",
			Documents: map[domain.DocKind]domain.DocStatus{
				domain.DocDrivingLicense: domain.DocVerified,
				domain.DocAadhaarCard:    domain.DocPending,
				domain.DocPANCard:        domain.DocMissing,
				domain.DocVehicleRC:      domain.DocMissing,
				domain.DocInsurance:      domain.DocMissing,
			},
		},
		{
			UserID: "2",
			Documents: map[domain.DocKind]domain.DocStatus{
				domain.DocDrivingLicense: domain.DocVerified,
				domain.DocAadhaarCard:    domain.DocVerified,
				domain.DocPANCard:        domain.DocVerified,
				domain.DocVehicleRC:      domain.DocVerified,
				domain.DocInsurance:      domain.DocPending,
			},
		},
	}
}
