package domain

import "testing"

func TestEnumsAreClosed(t *testing.T) {
	if !JobActive.Valid() || JobStatus("active").Valid() {
		t.Fatal("job status must match exactly")
	}
	if !TripInProcess.Valid() || TripStatus("InProcess").Valid() {
		t.Fatal("trip status must match exactly")
	}
	if !VehicleAttached.Valid() || VehicleOwnership("Leased").Valid() {
		t.Fatal("ownership must be Owned or Attached")
	}
	if UserType("admin").Valid() {
		t.Fatal("admin is not a user type")
	}
}

func TestDocStatusPresent(t *testing.T) {
	if !DocVerified.Present() || !DocPending.Present() || DocMissing.Present() {
		t.Fatal("present means verified or pending")
	}
}

func TestHomeRoute(t *testing.T) {
	cases := map[UserType]string{
		UserCompany:      "/company/home",
		UserBusiness:     "/business/home",
		UserProfessional: "/professional/home",
	}
	for u, want := range cases {
		if got := u.HomeRoute(); got != want {
			t.Fatalf("%s.HomeRoute() = %q, want %q", u, got, want)
		}
	}
}
