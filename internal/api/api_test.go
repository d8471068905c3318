package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/waybook-app/waybook/internal/api"
	"github.com/waybook-app/waybook/internal/app/leveling"
	"github.com/waybook-app/waybook/internal/domain"
	"github.com/waybook-app/waybook/internal/health"
	"github.com/waybook-app/waybook/internal/infra/sqlite"
)

func testServer(t *testing.T) (*httptest.Server, *sqlite.DB) {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := leveling.NewService(db)
	checker := health.NewChecker(db, dir)
	srv := api.NewServer(svc, checker)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, db
}

func getJSON(t *testing.T, ts *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	resp, err := http.Post(ts.URL+path, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp
}

type stateBody struct {
	XP    int64 `json:"xp"`
	Level int   `json:"level"`
	Progress struct {
		CurrentLevel   int   `json:"currentLevel"`
		CurrentLevelXP int64 `json:"currentLevelXp"`
		NextLevelXP    int64 `json:"nextLevelXp"`
		Remaining      int64 `json:"remaining"`
	} `json:"progress"`
}

// ─── State and XP ───────────────────────────────────────────────────────────

func TestAPI_StateDefaults(t *testing.T) {
	ts, _ := testServer(t)

	var st stateBody
	resp := getJSON(t, ts, "/api/leveling/state", &st)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if st.XP != 0 || st.Level != 1 {
		t.Fatalf("fresh state = %+v, want xp 0 level 1", st)
	}
}

func TestAPI_AddXP(t *testing.T) {
	ts, _ := testServer(t)

	var st stateBody
	postJSON(t, ts, "/api/leveling/xp", map[string]int64{"amount": 250}, &st)
	if st.XP != 250 || st.Level != 2 {
		t.Fatalf("after +250: %+v", st)
	}
	if st.Progress.NextLevelXP != 500 || st.Progress.Remaining != 250 {
		t.Fatalf("progress = %+v", st.Progress)
	}
}

func TestAPI_AddXPBadBody(t *testing.T) {
	ts, _ := testServer(t)

	resp, err := http.Post(ts.URL+"/api/leveling/xp", "application/json",
		bytes.NewBufferString("{not json"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAPI_Awards(t *testing.T) {
	ts, _ := testServer(t)

	var st stateBody
	postJSON(t, ts, "/api/leveling/awards/trip", nil, &st)
	if st.XP != leveling.XPPerTripCreated {
		t.Fatalf("after trip award: xp = %d", st.XP)
	}
	postJSON(t, ts, "/api/leveling/awards/photos", map[string]int{"count": 3}, &st)
	if st.XP != leveling.XPPerTripCreated+3 {
		t.Fatalf("after photo award: xp = %d", st.XP)
	}
}

// ─── Levelup notifications ──────────────────────────────────────────────────

func TestAPI_PendingLevelupLifecycle(t *testing.T) {
	ts, _ := testServer(t)

	var out struct {
		Pending *domain.PendingLevelup `json:"pending"`
	}
	getJSON(t, ts, "/api/leveling/levelup", &out)
	if out.Pending != nil {
		t.Fatalf("fresh pending = %+v, want nil", out.Pending)
	}

	postJSON(t, ts, "/api/leveling/xp", map[string]int64{"amount": 200}, nil)
	getJSON(t, ts, "/api/leveling/levelup", &out)
	if out.Pending == nil || out.Pending.Level != 2 {
		t.Fatalf("pending after level-up = %+v", out.Pending)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/leveling/levelup", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}

	out.Pending = nil
	getJSON(t, ts, "/api/leveling/levelup", &out)
	if out.Pending != nil {
		t.Fatalf("pending after clear = %+v", out.Pending)
	}
}

// ─── Missions ───────────────────────────────────────────────────────────────

func TestAPI_MissionsAndProgress(t *testing.T) {
	ts, _ := testServer(t)

	var missions []domain.Mission
	getJSON(t, ts, "/api/leveling/missions", &missions)
	if len(missions) != 9 {
		t.Fatalf("missions = %d, want 9", len(missions))
	}

	postJSON(t, ts, "/api/leveling/missions/share_app/progress", nil, &missions)
	var share *domain.Mission
	for i := range missions {
		if missions[i].ID == "share_app" {
			share = &missions[i]
		}
	}
	if share == nil || share.Progress != 1 {
		t.Fatalf("share_app after progress = %+v", share)
	}

	var st stateBody
	getJSON(t, ts, "/api/leveling/state", &st)
	if st.XP != 100 {
		t.Fatalf("xp after share_app = %d, want 100", st.XP)
	}
}

func TestAPI_MissionProgressUnknown(t *testing.T) {
	ts, _ := testServer(t)

	resp := postJSON(t, ts, "/api/leveling/missions/no_such_mission/progress", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

// ─── Stats, streak, summary ─────────────────────────────────────────────────

func TestAPI_StatsReflectsTrips(t *testing.T) {
	ts, db := testServer(t)

	trip := `{"id":"t1","title":"Lisbon","country":"Portugal","days":[{"date":"2026-08-01","memories":[{"uri":"a.jpg","caption":"tram"}]}]}`
	if err := db.Set(domain.TripKey("t1"), trip); err != nil {
		t.Fatalf("seed trip: %v", err)
	}

	var stats domain.AppStats
	getJSON(t, ts, "/api/leveling/stats", &stats)
	if stats.TripCount != 1 || stats.PhotoCount != 1 || stats.CaptionCount != 1 || stats.CountryCount != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestAPI_StreakTick(t *testing.T) {
	ts, _ := testServer(t)

	var streak domain.Streak
	postJSON(t, ts, "/api/leveling/streak/tick", nil, &streak)
	if streak.Current != 1 || streak.Best != 1 {
		t.Fatalf("first tick = %+v", streak)
	}
	getJSON(t, ts, "/api/leveling/streak", &streak)
	if streak.Current != 1 {
		t.Fatalf("read back = %+v", streak)
	}
}

func TestAPI_Summary(t *testing.T) {
	ts, _ := testServer(t)

	var out struct {
		State    stateBody        `json:"state"`
		Streak   domain.Streak    `json:"streak"`
		Stats    domain.AppStats  `json:"stats"`
		Missions []domain.Mission `json:"missions"`
	}
	getJSON(t, ts, "/api/leveling/summary", &out)
	if len(out.Missions) != 9 {
		t.Fatalf("summary missions = %d", len(out.Missions))
	}
	// Summary runs the daily tick, so the streak ladder grants nothing yet
	// but the streak itself registers today.
	if out.Streak.Current != 1 {
		t.Fatalf("summary streak = %+v", out.Streak)
	}
	if out.Stats.CurrentStreak != 1 {
		t.Fatalf("summary stats streak = %d", out.Stats.CurrentStreak)
	}
}

func TestAPI_Reset(t *testing.T) {
	ts, _ := testServer(t)

	postJSON(t, ts, "/api/leveling/xp", map[string]int64{"amount": 500}, nil)
	var st stateBody
	postJSON(t, ts, "/api/leveling/reset", nil, &st)
	if st.XP != 0 || st.Level != 1 {
		t.Fatalf("after reset: %+v", st)
	}
}

// ─── Health and status ──────────────────────────────────────────────────────

func TestAPI_Health(t *testing.T) {
	ts, _ := testServer(t)

	resp := getJSON(t, ts, "/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}

	var details map[string]any
	resp = getJSON(t, ts, "/health/details", &details)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("details status = %d: %v", resp.StatusCode, details)
	}
}

func TestAPI_Status(t *testing.T) {
	ts, _ := testServer(t)

	var status map[string]any
	getJSON(t, ts, "/api/status", &status)
	if status["status"] != "Waybook is running" {
		t.Fatalf("status = %v", status)
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	ts, _ := testServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/leveling/state", nil)
	req.Header.Set("Origin", "app://waybook")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		t.Fatalf("preflight status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatalf("missing CORS allow-origin header")
	}
}
