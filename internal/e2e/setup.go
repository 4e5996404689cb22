package e2e

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/TheraTrack/practice-service/internal/auth"
	"github.com/TheraTrack/practice-service/internal/checkin"
	"github.com/TheraTrack/practice-service/internal/client"
	"github.com/TheraTrack/practice-service/internal/db"
	"github.com/TheraTrack/practice-service/internal/files"
	"github.com/TheraTrack/practice-service/internal/goals"
	internalhttp "github.com/TheraTrack/practice-service/internal/http"
	"github.com/TheraTrack/practice-service/internal/plan"
	"github.com/TheraTrack/practice-service/internal/report"
	"github.com/TheraTrack/practice-service/internal/resources"
	"github.com/TheraTrack/practice-service/internal/risk"
	"github.com/TheraTrack/practice-service/internal/session"
	"github.com/TheraTrack/practice-service/internal/site"
	"github.com/TheraTrack/practice-service/internal/soap"
	"github.com/TheraTrack/practice-service/internal/testutil"
	"github.com/TheraTrack/practice-service/internal/users"
)

// TestServer is a complete in-process deployment: a real SQLite store,
// the full router, and an in-memory event publisher.
type TestServer struct {
	Server        *httptest.Server
	DB            *sql.DB
	MockPublisher *testutil.MockPublisher
	Verifier      *auth.Verifier
}

// SetupE2ETest wires the whole service against a throwaway database.
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "e2e.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, database); err != nil {
		t.Fatalf("Failed to migrate store: %v", err)
	}
	if err := db.Seed(ctx, database); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}

	mockPublisher := testutil.NewMockPublisher()
	verifier := auth.NewVerifier("e2e-test-secret", time.Hour)

	userService := users.NewService(users.NewRepository(database), verifier)
	siteService := site.NewService(site.NewRepository(database))
	clientService := client.NewService(client.NewRepository(database), mockPublisher, nil)
	goalService := goals.NewService(goals.NewRepository(database))
	sessionService := session.NewService(session.NewRepository(database), mockPublisher, nil)
	soapService := soap.NewService(soap.NewRepository(database))
	planService := plan.NewService(plan.NewRepository(database))
	fileService := files.NewService(files.NewRepository(database))
	checkinService := checkin.NewService(checkin.NewRepository(database))
	resourceService := resources.NewService(resources.NewRepository(database))
	riskService := risk.NewService(soapService, clientService, mockPublisher, nil)
	reportService := report.NewService(sessionService, clientService, soapService, riskService)

	handlers := internalhttp.Handlers{
		Users:     users.NewHandler(userService),
		Sites:     site.NewHandler(siteService),
		Clients:   client.NewHandler(clientService),
		Goals:     goals.NewHandler(goalService),
		Sessions:  session.NewHandler(sessionService),
		Soap:      soap.NewHandler(soapService),
		Plans:     plan.NewHandler(planService),
		Files:     files.NewHandler(fileService),
		CheckIns:  checkin.NewHandler(checkinService),
		Resources: resources.NewHandler(resourceService),
		Risk:      risk.NewHandler(riskService),
		Reports:   report.NewHandler(reportService),
	}

	router := internalhttp.NewRouter(handlers, verifier, nil, "")
	server := httptest.NewServer(router)

	return &TestServer{
		Server:        server,
		DB:            database,
		MockPublisher: mockPublisher,
		Verifier:      verifier,
	}
}

// Cleanup cleans up all test resources
func (ts *TestServer) Cleanup(t *testing.T) {
	t.Helper()
	ts.Server.Close()
	ts.DB.Close()
}

// NewClient creates an HTTP test client for this server with the given token
func (ts *TestServer) NewClient(token string) *testutil.HTTPTestClient {
	return testutil.NewHTTPTestClient(ts.Server.URL, token)
}

// RegisterAndLogin creates a therapist account and returns its bearer token.
func (ts *TestServer) RegisterAndLogin(t *testing.T, username, password string) string {
	t.Helper()

	anon := ts.NewClient("")
	creds := map[string]interface{}{"username": username, "password": password}

	regResp := anon.POST(t, "/auth/register", creds)
	testutil.AssertStatusCode(t, regResp, 201)
	regResp.Body.Close()

	loginResp := anon.POST(t, "/auth/login", creds)
	testutil.AssertStatusCode(t, loginResp, 200)

	var loginResult struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	testutil.DecodeJSON(t, loginResp, &loginResult)

	if !loginResult.Success || loginResult.Token == "" {
		t.Fatalf("Expected a token from login, got %+v", loginResult)
	}
	return loginResult.Token
}
