package domain

type JobType string

const (
	JobFullTime  JobType = "Full-time"
	JobPartTime  JobType = "Part-time"
	JobContract  JobType = "Contract"
	JobFreelance JobType = "Freelance"
)

func (t JobType) Valid() bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobFreelance:
		return true
	}
	return false
}

type JobStatus string

const (
	JobActive JobStatus = "Active"
	JobPaused JobStatus = "Paused"
	JobClosed JobStatus = "Closed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobActive, JobPaused, JobClosed:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "Pending"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationRejected    ApplicationStatus = "Rejected"
	ApplicationHired       ApplicationStatus = "Hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

type TripStatus string

const (
	TripUpcoming  TripStatus = "Upcoming"
	TripInProcess TripStatus = "In-Process"
	TripCompleted TripStatus = "Completed"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripUpcoming, TripInProcess, TripCompleted:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// VehicleOwnership is shown on the fleet page; VehicleStatus on the vehicle detail page.
type VehicleOwnership string

const (
	VehicleOwned    VehicleOwnership = "Owned"
	VehicleAttached VehicleOwnership = "Attached"
)

func (o VehicleOwnership) Valid() bool {
	return o == VehicleOwned || o == VehicleAttached
}

type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "Active"
	VehicleMaintenance VehicleStatus = "Maintenance"
	VehicleInactive    VehicleStatus = "Inactive"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleActive, VehicleMaintenance, VehicleInactive:
		return true
	}
	return false
}

type EventCategory string

const (
	EventTrip EventCategory = "trip"
	EventJob  EventCategory = "job"
)

func (c EventCategory) Valid() bool {
	return c == EventTrip || c == EventJob
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type DocStatus string

const (
	DocVerified DocStatus = "verified"
	DocPending  DocStatus = "pending"
	DocMissing  DocStatus = "missing"
)

func (s DocStatus) Valid() bool {
	switch s {
	case DocVerified, DocPending, DocMissing:
		return true
	}
	return false
}

// Present reports whether the document has been uploaded (verified or awaiting review).
func (s DocStatus) Present() bool {
	return s == DocVerified || s == DocPending
}

type DocKind string

const (
	DocDrivingLicense DocKind = "drivingLicense"
	DocAadhaarCard    DocKind = "aadhaarCard"
	DocPANCard        DocKind = "panCard"
	DocVehicleRC      DocKind = "vehicleRC"
	DocInsurance      DocKind = "insurance"
)

// RequiredDocs is the ordered set of documents a KYC check expects.
var RequiredDocs = []DocKind{DocDrivingLicense, DocAadhaarCard, DocPANCard, DocVehicleRC, DocInsurance}

type UserType string

const (
	UserCompany      UserType = "company"
	UserBusiness     UserType = "business"
	UserProfessional UserType = "professional"
)

func (u UserType) Valid() bool {
	switch u {
	case UserCompany, UserBusiness, UserProfessional:
		return true
	}
	return false
}

// HomeRoute is where the client redirects after a successful sign-in.
func (u UserType) HomeRoute() string {
	switch u {
	case UserCompany:
		return "/company/home"
	case UserBusiness:
		return "/business/home"
	default:
		return "/professional/home"
	}
}

type Provider string

const (
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
)

func (p Provider) Valid() bool {
	return p == ProviderGoogle || p == ProviderFacebook
}
