package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/infrastructure/auditlog"
	"hirs/internal/infrastructure/memstore"
	"hirs/internal/ports"
	usecasehazard "hirs/internal/usecase/hazard"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	clock := ports.ClockFunc(func() time.Time {
		return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	})
	svc := usecasehazard.NewService(memstore.New(), auditlog.New(clock), clock)
	srv := httptest.NewServer(NewServer(svc, domainhazard.DefaultTaxonomy()).Router())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, role string) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if role != "" {
		req.Header.Set("X-Actor-Role", role)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, out.Bytes()
}

func createReport(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/hazards", map[string]any{
		"title":       "FOD near stand 14",
		"category":    "Airside / Ramp",
		"subcategory": "FOD (foreign object debris) and housekeeping",
		"area":        "Stand 14",
		"description": "Metal bolt observed near stand 14.",
	}, "Reporter")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", resp.StatusCode, body)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return created.ID
}

func TestCreateAndGetHazard(t *testing.T) {
	srv := newTestServer(t)

	id := createReport(t, srv)
	if id != "HZ-0001" {
		t.Fatalf("id = %q, want HZ-0001", id)
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/hazards/"+id, nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var got hazardPayload
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "Submitted" || got.RiskLevel != "Not assessed" {
		t.Fatalf("payload = %+v", got)
	}
	if got.ReporterSummary != "Details not supplied" {
		t.Fatalf("ReporterSummary = %q", got.ReporterSummary)
	}
}

func TestCreateHazardValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/hazards", map[string]any{
		"title": "Missing the rest",
	}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var errResp errorBody
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(errResp.Fields) != 3 {
		t.Fatalf("Fields = %v, want the three remaining required fields", errResp.Fields)
	}
}

func TestAssessmentEndpoint(t *testing.T) {
	srv := newTestServer(t)
	id := createReport(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/hazards/"+id+"/assessment", map[string]any{
		"likelihood": 5,
		"severity":   5,
	}, "Safety officer")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var result assessmentPayload
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Score != 25 || result.Level != "Extreme" || !result.StopContain {
		t.Fatalf("result = %+v", result)
	}
	if len(result.Advisories) != 1 {
		t.Fatalf("Advisories = %v, want the FOD advisory", result.Advisories)
	}
}

func TestStatusConflictOnTerminal(t *testing.T) {
	srv := newTestServer(t)
	id := createReport(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/hazards/"+id+"/status", map[string]any{"status": "Closed"}, "Safety officer")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("close status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/hazards/"+id+"/status", map[string]any{"status": "Triage"}, "Safety officer")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("reopen status = %d, want 409", resp.StatusCode)
	}
}

func TestRejectWithoutConfirmation(t *testing.T) {
	srv := newTestServer(t)
	id := createReport(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/hazards/"+id+"/reject", map[string]any{"reason": "duplicate"}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUnknownHazardIs404(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/hazards/HZ-9999", nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestActionLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	id := createReport(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/hazards/"+id+"/actions", map[string]any{
		"title":    "Daily FOD walk",
		"type":     "Preventive",
		"owner":    "Ramp Lead",
		"priority": "Medium",
		"due_date": "2026-03-05T00:00:00Z",
	}, "Safety officer")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", resp.StatusCode, body)
	}
	var action actionPayload
	if err := json.Unmarshal(body, &action); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if action.ID != id+"-A1" {
		t.Fatalf("action id = %q", action.ID)
	}

	// due date was five days ago, so the action shows up overdue
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/hazards/"+id+"/actions/overdue", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("overdue status = %d", resp.StatusCode)
	}
	var overdue []actionPayload
	if err := json.Unmarshal(body, &overdue); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(overdue) != 1 {
		t.Fatalf("len(overdue) = %d, want 1", len(overdue))
	}

	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/hazards/"+id+"/actions/"+action.ID, map[string]any{
		"completion_date": "2026-03-09T00:00:00Z",
	}, "Safety officer")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/hazards/"+id+"/actions/overdue", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("overdue status = %d", resp.StatusCode)
	}
	overdue = nil
	if err := json.Unmarshal(body, &overdue); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(overdue) != 0 {
		t.Fatalf("len(overdue) = %d after completion, want 0", len(overdue))
	}
}

func TestSeedStatsAndAudit(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/seed", nil, "Admin")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("seed status = %d", resp.StatusCode)
	}
	var seeded map[string]int
	if err := json.Unmarshal(body, &seeded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if seeded["added"] != 2 {
		t.Fatalf("added = %d, want 2", seeded["added"])
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/stats", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}
	var stats usecasehazard.DashboardStats
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Total != 2 || stats.Open != 2 {
		t.Fatalf("stats = %+v", stats)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/audit?n=1", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("audit status = %d", resp.StatusCode)
	}
	var entries []ports.AuditEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "Sample data loaded" {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Role != "Admin" {
		t.Fatalf("Role = %q, want Admin", entries[0].Role)
	}
}

func TestTaxonomyEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/taxonomy", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var tax domainhazard.Taxonomy
	if err := json.Unmarshal(body, &tax); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tax.Categories) == 0 || !tax.HasCategory("Airside / Ramp") {
		t.Fatalf("taxonomy = %+v", tax)
	}
}
