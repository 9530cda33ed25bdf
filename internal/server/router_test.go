package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/config"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/mockapi"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/overlay"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/security"
)

const testClientToken = "client-token"

type envelope struct {
	Status      string          `json:"status"`
	Code        int             `json:"code"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data"`
}

type page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithLogger(t, zap.NewNop())
}

func newTestRouterWithLogger(t *testing.T, logger *zap.Logger) http.Handler {
	t.Helper()
	cat := catalog.Default()
	cfg := config.Config{
		AppEnv:              "test",
		ClientTokenExpected: testClientToken,
		BackendMode:         config.BackendMock,
	}
	return NewRouter(cfg, Deps{
		Catalog:  cat,
		Backend:  mockapi.NewFake(cat, mockapi.Latency{}, nil),
		Overlay:  overlay.NewMemoryStore(time.Hour),
		Sessions: security.NewSessionManager("test-secret", time.Hour),
	}, logger)
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	r.Header.Set("X-Device-Type", "web")
	r.Header.Set("X-Language", "en")
	r.Header.Set("X-Client-Token", testClientToken)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: bad json: %v", method, path, err)
		}
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data: %v (%s)", err, raw)
	}
	return v
}

func TestHealthAndDocs(t *testing.T) {
	h := newTestRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID on every response")
	}

	r = httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "openapi: 3.0.3") {
		t.Fatalf("openapi = %d", w.Code)
	}
}

func TestBaseHeadersRequired(t *testing.T) {
	h := newTestRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("no headers = %d", w.Code)
	}

	w, _ = do(t, h, http.MethodGet, "/v1/jobs", "", map[string]string{"X-Language": "ru"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad language = %d", w.Code)
	}
	w, _ = do(t, h, http.MethodGet, "/v1/jobs", "", map[string]string{"X-Client-Token": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad client token = %d", w.Code)
	}
}

func TestJobsList(t *testing.T) {
	h := newTestRouter(t)

	w, env := do(t, h, http.MethodGet, "/v1/jobs?status=Active", "", nil)
	if w.Code != http.StatusOK || env.Status != "success" {
		t.Fatalf("status = %d %+v", w.Code, env)
	}
	p := decode[page[catalog.Job]](t, env.Data)
	if p.Total != 4 {
		t.Fatalf("active jobs = %d", p.Total)
	}
	for _, j := range p.Items {
		if j.ID == "job-2" {
			t.Fatal("closed job-2 in Active filter")
		}
	}

	_, env = do(t, h, http.MethodGet, "/v1/jobs?q=driver&fields=title&page_size=2", "", nil)
	p = decode[page[catalog.Job]](t, env.Data)
	if p.Total != 3 || len(p.Items) != 2 || p.Items[0].ID != "job-1" {
		t.Fatalf("search page = %+v", p)
	}

	w, _ = do(t, h, http.MethodGet, "/v1/jobs?status=active", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("lowercase status should be rejected, got %d", w.Code)
	}
	w, _ = do(t, h, http.MethodGet, "/v1/jobs?fields=salary", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown field should be rejected, got %d", w.Code)
	}
	w, _ = do(t, h, http.MethodGet, "/v1/jobs?page=x", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad page should be rejected, got %d", w.Code)
	}

	w, env = do(t, h, http.MethodGet, "/v1/jobs?page=500000000000000001", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("huge page = %d", w.Code)
	}
	if p = decode[page[catalog.Job]](t, env.Data); len(p.Items) != 0 || p.Total != 6 {
		t.Fatalf("huge page = %+v", p)
	}
}

func TestLookups(t *testing.T) {
	h := newTestRouter(t)
	cases := []struct {
		path string
		want int
	}{
		{"/v1/jobs/job-1", http.StatusOK},
		{"/v1/jobs/job-404", http.StatusNotFound},
		{"/v1/jobs/stats", http.StatusOK},
		{"/v1/trips/trip-4", http.StatusOK},
		{"/v1/trips?status=In-Process", http.StatusOK},
		{"/v1/bookings/booking-9", http.StatusNotFound},
		{"/v1/bookings/stats", http.StatusOK},
		{"/v1/fleet/vehicles?ownership=Attached", http.StatusOK},
		{"/v1/fleet/vehicles?ownership=Leased", http.StatusBadRequest},
		{"/v1/fleet/drivers/drv-3", http.StatusOK},
		{"/v1/fleet/stats", http.StatusOK},
		{"/v1/calendar?category=job", http.StatusOK},
		{"/v1/calendar?category=meeting", http.StatusBadRequest},
		{"/v1/calendar/2025-01-20", http.StatusOK},
		{"/v1/calendar/2025-02-30", http.StatusBadRequest},
		{"/v1/calendar/2025-03-01", http.StatusNotFound},
		{"/v1/learning/modules?difficulty=advanced", http.StatusOK},
		{"/v1/learning/modules?completed=maybe", http.StatusBadRequest},
		{"/v1/learning/stats", http.StatusOK},
		{"/v1/feed?category=Hiring", http.StatusOK},
		{"/v1/feed/post-404", http.StatusNotFound},
	}
	for _, tc := range cases {
		w, _ := do(t, h, http.MethodGet, tc.path, "", nil)
		if w.Code != tc.want {
			t.Fatalf("GET %s = %d, want %d (%s)", tc.path, w.Code, tc.want, w.Body.String())
		}
	}
}

func TestLookupMissIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := newTestRouterWithLogger(t, zap.New(core))

	for _, path := range []string{"/v1/jobs/job-404", "/v1/fleet/drivers/drv-404", "/v1/calendar/2031-01-01"} {
		if w, _ := do(t, h, http.MethodGet, path, "", nil); w.Code != http.StatusNotFound {
			t.Fatalf("%s = %d", path, w.Code)
		}
	}

	misses := logs.FilterMessage("catalog lookup miss").All()
	if len(misses) != 3 {
		t.Fatalf("logged misses = %d", len(misses))
	}
	if got := misses[0].ContextMap(); got["entity"] != "job" || got["id"] != "job-404" {
		t.Fatalf("first miss fields = %v", got)
	}
	if got := misses[2].ContextMap(); got["entity"] != "calendar date" || got["id"] != "2031-01-01" {
		t.Fatalf("calendar miss fields = %v", got)
	}
}

func TestCalendarFilter(t *testing.T) {
	h := newTestRouter(t)
	_, env := do(t, h, http.MethodGet, "/v1/calendar?category=job", "", nil)
	days := decode[[]catalog.CalendarDay](t, env.Data)
	if len(days) != 2 || days[0].Date != "2025-01-20" || days[1].Date != "2025-01-22" {
		t.Fatalf("job days = %+v", days)
	}

	_, env = do(t, h, http.MethodGet, "/v1/calendar?from=2025-01-21&active=true", "", nil)
	days = decode[[]catalog.CalendarDay](t, env.Data)
	if len(days) != 1 || days[0].Date != "2025-01-24" {
		t.Fatalf("active days after 21st = %+v", days)
	}
}

func TestCertificate(t *testing.T) {
	h := newTestRouter(t)

	w, _ := do(t, h, http.MethodGet, "/v1/learning/modules/mod-1/certificate?holder=Rajesh", "", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("certificate = %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a PDF")
	}

	w, _ = do(t, h, http.MethodGet, "/v1/learning/modules/mod-4/certificate", "", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("incomplete module = %d", w.Code)
	}
	w, _ = do(t, h, http.MethodGet, "/v1/learning/modules/mod-99/certificate", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown module = %d", w.Code)
	}

	holder := url.QueryEscape("राजेश कुमार")
	w, _ = do(t, h, http.MethodGet, "/v1/learning/modules/mod-1/certificate?holder="+holder, "", map[string]string{"X-Language": "hi"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("devanagari holder = %d", w.Code)
	}
}

type authData struct {
	mockapi.AuthResult
	Token      string `json:"token"`
	ExpiresIn  int64  `json:"expiresIn"`
	RedirectTo string `json:"redirectTo"`
}

func register(t *testing.T, h http.Handler) authData {
	t.Helper()
	body := `{"name":"Rajesh Kumar","phone":"9820012345","password":"x","category":"Fleet Owner","role":"company"}`
	w, env := do(t, h, http.MethodPost, "/v1/auth/register", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("register = %d", w.Code)
	}
	return decode[authData](t, env.Data)
}

func TestRegister(t *testing.T) {
	h := newTestRouter(t)

	got := register(t, h)
	if !got.Success || got.User == nil || got.Token == "" || got.RedirectTo != "/company/home" {
		t.Fatalf("register = %+v", got)
	}

	w, env := do(t, h, http.MethodPost, "/v1/auth/register", `{"name":"R"}`, nil)
	failed := decode[authData](t, env.Data)
	if w.Code != http.StatusOK || failed.Success || failed.Token != "" {
		t.Fatalf("invalid register = %d %+v", w.Code, failed)
	}
	if !strings.HasPrefix(failed.Message, "missing required fields") {
		t.Fatalf("message = %q", failed.Message)
	}

	_, env = do(t, h, http.MethodPost, "/v1/auth/register", `{not json`, nil)
	if failed = decode[authData](t, env.Data); failed.Success || failed.Message != "invalid payload" {
		t.Fatalf("malformed = %+v", failed)
	}
}

func TestSocialLogin(t *testing.T) {
	h := newTestRouter(t)

	_, env := do(t, h, http.MethodPost, "/v1/auth/social/google", "", nil)
	got := decode[authData](t, env.Data)
	if !got.Success || got.User.Provider != "google" || got.RedirectTo != "/professional/home" {
		t.Fatalf("google = %+v", got)
	}

	_, env = do(t, h, http.MethodPost, "/v1/auth/social/twitter", "", nil)
	if got = decode[authData](t, env.Data); got.Success {
		t.Fatalf("twitter = %+v", got)
	}
}

func TestKYC(t *testing.T) {
	h := newTestRouter(t)
	w, env := do(t, h, http.MethodGet, "/v1/kyc/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("kyc = %d", w.Code)
	}
	data := decode[mockapi.KYCData](t, env.Data)
	if data.Progress != 40 || len(data.Documents) != 5 {
		t.Fatalf("kyc = %+v", data)
	}
}

func TestOverlayFlow(t *testing.T) {
	h := newTestRouter(t)

	w, _ := do(t, h, http.MethodGet, "/v1/me/overlay", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token = %d", w.Code)
	}

	auth := map[string]string{"X-User-Token": register(t, h).Token}

	for _, p := range []string{
		"/v1/me/overlay/applied_jobs/job-1",
		"/v1/me/overlay/saved_jobs/job-3",
		"/v1/me/overlay/completed_bookings/booking-2",
		"/v1/me/overlay/marked_dates/2025-01-30",
	} {
		if w, _ := do(t, h, http.MethodPut, p, "", auth); w.Code != http.StatusOK {
			t.Fatalf("PUT %s = %d", p, w.Code)
		}
	}

	if w, _ := do(t, h, http.MethodPut, "/v1/me/overlay/applied_jobs/job-404", "", auth); w.Code != http.StatusNotFound {
		t.Fatalf("unknown job = %d", w.Code)
	}
	if w, _ := do(t, h, http.MethodPut, "/v1/me/overlay/followers/x", "", auth); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown kind = %d", w.Code)
	}
	if w, _ := do(t, h, http.MethodPut, "/v1/me/overlay/marked_dates/tomorrow", "", auth); w.Code != http.StatusBadRequest {
		t.Fatalf("bad date = %d", w.Code)
	}

	_, env := do(t, h, http.MethodGet, "/v1/me/jobs/stats", "", auth)
	stats := decode[overlay.JobOverlayStats](t, env.Data)
	if stats != (overlay.JobOverlayStats{Applied: 1, Saved: 1, Available: 3}) {
		t.Fatalf("job stats = %+v", stats)
	}

	_, env = do(t, h, http.MethodGet, "/v1/me/bookings?status=Completed", "", auth)
	p := decode[page[catalog.Booking]](t, env.Data)
	if p.Total != 2 {
		t.Fatalf("completed bookings with overlay = %d", p.Total)
	}

	// The shared catalog is unchanged.
	_, env = do(t, h, http.MethodGet, "/v1/bookings?status=Completed", "", nil)
	if p = decode[page[catalog.Booking]](t, env.Data); p.Total != 1 {
		t.Fatalf("catalog completed bookings = %d", p.Total)
	}

	if w, _ := do(t, h, http.MethodDelete, "/v1/me/overlay/saved_jobs/job-3", "", auth); w.Code != http.StatusOK {
		t.Fatalf("remove = %d", w.Code)
	}
	_, env = do(t, h, http.MethodGet, "/v1/me/overlay", "", auth)
	snap := decode[overlay.Snapshot](t, env.Data)
	if len(snap[overlay.SavedJobs]) != 0 || len(snap[overlay.AppliedJobs]) != 1 {
		t.Fatalf("snapshot = %v", snap)
	}

	if w, _ := do(t, h, http.MethodDelete, "/v1/me/overlay", "", auth); w.Code != http.StatusOK {
		t.Fatalf("clear = %d", w.Code)
	}
	_, env = do(t, h, http.MethodGet, "/v1/me/overlay", "", auth)
	snap = decode[overlay.Snapshot](t, env.Data)
	for k, ids := range snap {
		if len(ids) != 0 {
			t.Fatalf("%s not cleared: %v", k, ids)
		}
	}
}

func TestSocialLoginOverlaysAreIsolated(t *testing.T) {
	h := newTestRouter(t)
	login := func() map[string]string {
		_, env := do(t, h, http.MethodPost, "/v1/auth/social/google", "", nil)
		got := decode[authData](t, env.Data)
		if !got.Success || got.Token == "" {
			t.Fatalf("google = %+v", got)
		}
		return map[string]string{"X-User-Token": got.Token}
	}
	first, second := login(), login()

	if w, _ := do(t, h, http.MethodPut, "/v1/me/overlay/applied_jobs/job-1", "", first); w.Code != http.StatusOK {
		t.Fatalf("PUT = %d", w.Code)
	}
	if w, _ := do(t, h, http.MethodPut, "/v1/me/overlay/saved_jobs/job-3", "", second); w.Code != http.StatusOK {
		t.Fatalf("PUT = %d", w.Code)
	}

	if w, _ := do(t, h, http.MethodDelete, "/v1/me/overlay", "", second); w.Code != http.StatusOK {
		t.Fatalf("clear = %d", w.Code)
	}

	_, env := do(t, h, http.MethodGet, "/v1/me/overlay", "", first)
	snap := decode[overlay.Snapshot](t, env.Data)
	if len(snap[overlay.AppliedJobs]) != 1 || len(snap[overlay.SavedJobs]) != 0 {
		t.Fatalf("first snapshot = %v", snap)
	}
	_, env = do(t, h, http.MethodGet, "/v1/me/overlay", "", second)
	snap = decode[overlay.Snapshot](t, env.Data)
	if len(snap[overlay.AppliedJobs]) != 0 || len(snap[overlay.SavedJobs]) != 0 {
		t.Fatalf("second snapshot = %v", snap)
	}
}

func TestMe(t *testing.T) {
	h := newTestRouter(t)
	auth := map[string]string{"X-User-Token": register(t, h).Token}

	w, env := do(t, h, http.MethodGet, "/v1/me", "", auth)
	if w.Code != http.StatusOK {
		t.Fatalf("me = %d", w.Code)
	}
	me := decode[map[string]string](t, env.Data)
	if me["userType"] != "company" || me["userId"] == "" || me["sessionId"] == "" {
		t.Fatalf("me = %v", me)
	}

	if w, _ := do(t, h, http.MethodGet, "/v1/me", "", map[string]string{"X-User-Token": "garbage"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token = %d", w.Code)
	}
}
