package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/TheraTrack/practice-service/internal/testutil"
)

// TestE2E_AuthFlow exercises registration, duplicate rejection, and
// both login outcomes.
func TestE2E_AuthFlow(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	anon := ts.NewClient("")
	creds := map[string]interface{}{"username": "alice", "password": "pw1"}

	regResp := anon.POST(t, "/auth/register", creds)
	testutil.AssertStatusCode(t, regResp, http.StatusCreated)

	var regResult struct {
		Success  bool   `json:"success"`
		Username string `json:"username"`
	}
	testutil.DecodeJSON(t, regResp, &regResult)
	if !regResult.Success || regResult.Username != "alice" {
		t.Errorf("Unexpected register response: %+v", regResult)
	}

	dupResp := anon.POST(t, "/auth/register", creds)
	testutil.AssertStatusCode(t, dupResp, http.StatusConflict)
	dupResp.Body.Close()

	badResp := anon.POST(t, "/auth/login", map[string]interface{}{"username": "alice", "password": "wrong"})
	testutil.AssertStatusCode(t, badResp, http.StatusUnauthorized)
	badResp.Body.Close()

	goodResp := anon.POST(t, "/auth/login", creds)
	testutil.AssertStatusCode(t, goodResp, http.StatusOK)

	var loginResult struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	testutil.DecodeJSON(t, goodResp, &loginResult)
	if !loginResult.Success || loginResult.Token == "" {
		t.Errorf("Expected a token on login, got %+v", loginResult)
	}

	// The roster is off limits without a token.
	noAuth := anon.GET(t, "/api/clients")
	testutil.AssertStatusCode(t, noAuth, http.StatusUnauthorized)
	noAuth.Body.Close()
}

// TestE2E_SessionLogging_FullFlow walks the primary workflow: site,
// client, logged session, then the filtered analytics view.
func TestE2E_SessionLogging_FullFlow(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	token := ts.RegisterAndLogin(t, "alice", "pw1")
	client := ts.NewClient(token)

	siteResp := client.POST(t, "/api/sites", map[string]interface{}{
		"name":    "Clinic A",
		"address": "12 Main St",
	})
	testutil.AssertStatusCode(t, siteResp, http.StatusCreated)

	var createdSite struct {
		ID       int64  `json:"id"`
		SiteType string `json:"site_type"`
	}
	testutil.DecodeJSON(t, siteResp, &createdSite)
	if createdSite.SiteType != "Office/Clinic" {
		t.Errorf("Expected default site type 'Office/Clinic', got %q", createdSite.SiteType)
	}

	clientResp := client.POST(t, "/api/clients", map[string]interface{}{
		"name":    "Bob",
		"dob":     "1990-04-12",
		"site_id": createdSite.ID,
	})
	testutil.AssertStatusCode(t, clientResp, http.StatusCreated)

	var createdClient struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	testutil.DecodeJSON(t, clientResp, &createdClient)
	if createdClient.Status != "Active" {
		t.Errorf("Expected new client to default to Active, got %q", createdClient.Status)
	}

	sessionResp := client.POST(t, "/api/sessions", map[string]interface{}{
		"client_id":      createdClient.ID,
		"date":           "2026-01-05",
		"session_time":   "14:00",
		"rating":         8,
		"progress_notes": "Practiced grounding techniques.",
		"goals":          []string{"Reduce symptoms of anxiety, depression, and stress"},
	})
	testutil.AssertStatusCode(t, sessionResp, http.StatusCreated)

	var createdSession struct {
		SessionNumber int `json:"session_number"`
	}
	testutil.DecodeJSON(t, sessionResp, &createdSession)
	if createdSession.SessionNumber != 1 {
		t.Errorf("Expected first session to be number 1, got %d", createdSession.SessionNumber)
	}

	ts.MockPublisher.AssertEventPublished(t, "client.created")
	ts.MockPublisher.AssertEventPublished(t, "session.logged")

	filterResp := client.GET(t, "/api/sessions?client_name=Bob&goal_keyword=anxiety")
	testutil.AssertStatusCode(t, filterResp, http.StatusOK)

	var filtered []struct {
		ClientName string   `json:"client_name"`
		Rating     int      `json:"rating"`
		Goals      []string `json:"goals"`
	}
	testutil.DecodeJSON(t, filterResp, &filtered)

	if len(filtered) != 1 {
		t.Fatalf("Expected 1 filtered session, got %d", len(filtered))
	}
	if filtered[0].ClientName != "Bob" || filtered[0].Rating != 8 {
		t.Errorf("Unexpected filtered session: %+v", filtered[0])
	}

	// A name that matches nothing returns an empty set, not an error.
	emptyResp := client.GET(t, "/api/sessions?client_name=Nobody")
	testutil.AssertStatusCode(t, emptyResp, http.StatusOK)

	var none []struct{}
	testutil.DecodeJSON(t, emptyResp, &none)
	if len(none) != 0 {
		t.Errorf("Expected no sessions for unknown client, got %d", len(none))
	}
}

// TestE2E_RiskScan_FullFlow logs a SOAP note whose assessment carries a
// risk keyword and verifies it surfaces as an alert.
func TestE2E_RiskScan_FullFlow(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	token := ts.RegisterAndLogin(t, "alice", "pw1")
	client := ts.NewClient(token)

	clientResp := client.POST(t, "/api/clients", map[string]interface{}{"name": "Carol"})
	testutil.AssertStatusCode(t, clientResp, http.StatusCreated)

	var createdClient struct {
		ID int64 `json:"id"`
	}
	testutil.DecodeJSON(t, clientResp, &createdClient)
	clientPath := fmt.Sprintf("/api/clients/%d", createdClient.ID)

	noteResp := client.POST(t, clientPath+"/soap-notes", map[string]interface{}{
		"subjective": map[string]interface{}{"mood": "Low", "symptoms": []string{"insomnia"}, "notes": "Reports hopelessness."},
		"objective":  map[string]interface{}{"affect": "Flat", "orientation": "x4", "appearance": "Disheveled"},
		"assessment": map[string]interface{}{"risk": "Suicidal Ideation reported", "analysis": "Acute distress."},
		"plan":       map[string]interface{}{"next_session": "2026-01-12", "plan": "Safety planning."},
	})
	testutil.AssertStatusCode(t, noteResp, http.StatusCreated)
	noteResp.Body.Close()

	alertResp := client.GET(t, "/api/risk/alerts")
	testutil.AssertStatusCode(t, alertResp, http.StatusOK)

	var alerts []struct {
		ClientName string `json:"client_name"`
		Keyword    string `json:"keyword"`
		Flag       string `json:"flag"`
	}
	testutil.DecodeJSON(t, alertResp, &alerts)

	if len(alerts) != 1 {
		t.Fatalf("Expected 1 risk alert, got %d", len(alerts))
	}
	if alerts[0].Keyword != "Suicidal Ideation" {
		t.Errorf("Expected keyword 'Suicidal Ideation', got %q", alerts[0].Keyword)
	}
	if alerts[0].Flag != "Risk: Suicidal Ideation reported" {
		t.Errorf("Unexpected flag text: %q", alerts[0].Flag)
	}

	ts.MockPublisher.AssertEventPublished(t, "risk.flag_raised")

	// Updating the status from the risk view responds with a fresh scan.
	updateResp := client.PUT(t, fmt.Sprintf("/api/risk/clients/%d/status", createdClient.ID), map[string]interface{}{"status": "Inactive/On Hold"})
	testutil.AssertStatusCode(t, updateResp, http.StatusOK)

	var rescan []struct {
		Status string `json:"status"`
	}
	testutil.DecodeJSON(t, updateResp, &rescan)
	if len(rescan) != 1 || rescan[0].Status != "Inactive/On Hold" {
		t.Errorf("Expected rescan to reflect the new status, got %+v", rescan)
	}

	// A later calm note supersedes the flagged one.
	calmResp := client.POST(t, clientPath+"/soap-notes", map[string]interface{}{
		"subjective": map[string]interface{}{"mood": "Stable"},
		"objective":  map[string]interface{}{"affect": "Appropriate"},
		"assessment": map[string]interface{}{"risk": "None", "analysis": "Improving."},
		"plan":       map[string]interface{}{"plan": "Continue weekly sessions."},
	})
	testutil.AssertStatusCode(t, calmResp, http.StatusCreated)
	calmResp.Body.Close()

	clearResp := client.GET(t, "/api/risk/alerts")
	testutil.AssertStatusCode(t, clearResp, http.StatusOK)

	var cleared []struct{}
	testutil.DecodeJSON(t, clearResp, &cleared)
	if len(cleared) != 0 {
		t.Errorf("Expected no alerts after a calm note, got %d", len(cleared))
	}
}

// TestE2E_TherapistIsolation verifies one therapist never sees
// another's caseload.
func TestE2E_TherapistIsolation(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	aliceToken := ts.RegisterAndLogin(t, "alice", "pw1")
	carolToken := ts.RegisterAndLogin(t, "carol", "pw2")

	alice := ts.NewClient(aliceToken)
	carol := ts.NewClient(carolToken)

	createResp := alice.POST(t, "/api/clients", map[string]interface{}{"name": "Bob"})
	testutil.AssertStatusCode(t, createResp, http.StatusCreated)
	createResp.Body.Close()

	listResp := carol.GET(t, "/api/clients")
	testutil.AssertStatusCode(t, listResp, http.StatusOK)

	var listResult struct {
		Data []struct{} `json:"data"`
	}
	testutil.DecodeJSON(t, listResp, &listResult)
	if len(listResult.Data) != 0 {
		t.Errorf("Expected carol to see no clients, got %d", len(listResult.Data))
	}

	getResp := carol.GET(t, "/api/clients/1")
	testutil.AssertStatusCode(t, getResp, http.StatusNotFound)
	getResp.Body.Close()
}

// TestE2E_Dashboard verifies the overview aggregates after activity.
func TestE2E_Dashboard(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	token := ts.RegisterAndLogin(t, "alice", "pw1")
	client := ts.NewClient(token)

	clientResp := client.POST(t, "/api/clients", map[string]interface{}{"name": "Bob"})
	testutil.AssertStatusCode(t, clientResp, http.StatusCreated)
	clientResp.Body.Close()

	sessionResp := client.POST(t, "/api/sessions", map[string]interface{}{
		"client_id": 1,
		"date":      "2026-01-05",
		"rating":    7,
	})
	testutil.AssertStatusCode(t, sessionResp, http.StatusCreated)
	sessionResp.Body.Close()

	dashResp := client.GET(t, "/api/dashboard")
	testutil.AssertStatusCode(t, dashResp, http.StatusOK)

	var dashboard struct {
		ActiveClients  int        `json:"active_clients"`
		TotalSessions  int        `json:"total_sessions"`
		RecentSessions []struct{} `json:"recent_sessions"`
		RiskAlerts     []struct{} `json:"risk_alerts"`
	}
	testutil.DecodeJSON(t, dashResp, &dashboard)

	if dashboard.ActiveClients != 1 {
		t.Errorf("Expected 1 active client, got %d", dashboard.ActiveClients)
	}
	if dashboard.TotalSessions != 1 {
		t.Errorf("Expected 1 total session, got %d", dashboard.TotalSessions)
	}
	if len(dashboard.RecentSessions) != 1 {
		t.Errorf("Expected 1 recent session, got %d", len(dashboard.RecentSessions))
	}
	if len(dashboard.RiskAlerts) != 0 {
		t.Errorf("Expected no risk alerts, got %d", len(dashboard.RiskAlerts))
	}
}
