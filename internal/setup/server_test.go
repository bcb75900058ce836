package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anuntech/expense-tracker/internal/infra/db/memory"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/schema"
	"github.com/anuntech/expense-tracker/internal/setup/config"
	"github.com/anuntech/expense-tracker/internal/setup/factory"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Port:               5000,
		MongoURI:           "mongodb://localhost:27017",
		MongoDatabase:      "expense-tracker",
		DataBackend:        config.BackendMemory,
		AppEnv:             config.EnvTest,
		CorsAllowedOrigins: []string{"*"},
		LogLevel:           "info",
	}
}

func newTestServer(t *testing.T, cfg *config.Config, pinger fakePinger) *httptest.Server {
	t.Helper()
	expenseSchema, err := schema.NewExpenseSchema()
	if err != nil {
		t.Fatalf("NewExpenseSchema: %v", err)
	}

	srv := httptest.NewServer(Server(cfg, ServerDeps{
		Repositories: factory.MakeMemoryExpenseRepositories(memory.NewExpenseStore(expenseSchema)),
		Store:        pinger,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decoding: %v", method, path, err)
	}
	return res.StatusCode, env
}

func TestExpenseLifecycle(t *testing.T) {
	srv := newTestServer(t, testConfig(), fakePinger{})

	status, env := call(t, srv, http.MethodPost, "/api/expenses", `{"title":"Lunch","amount":12.5,"category":"Food"}`)
	if status != http.StatusCreated || !env.Success {
		t.Fatalf("create: %d %+v", status, env)
	}
	var created struct {
		Id       string  `json:"id"`
		Title    string  `json:"title"`
		Amount   float64 `json:"amount"`
		Category string  `json:"category"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}
	if created.Id == "" || created.Category != "Food" {
		t.Fatalf("unexpected created expense %+v", created)
	}

	status, env = call(t, srv, http.MethodGet, "/api/expenses/"+created.Id, "")
	if status != http.StatusOK || !strings.Contains(string(env.Data), `"title":"Lunch"`) {
		t.Fatalf("get: %d %s", status, env.Data)
	}

	status, env = call(t, srv, http.MethodGet, "/api/expenses", "")
	if status != http.StatusOK || env.Count == nil || *env.Count != 1 {
		t.Fatalf("list: %d %+v", status, env)
	}

	status, env = call(t, srv, http.MethodGet, "/api/expenses/category/Food", "")
	if status != http.StatusOK || *env.Count != 1 {
		t.Fatalf("by category: %d %+v", status, env)
	}

	status, env = call(t, srv, http.MethodDelete, "/api/expenses/"+created.Id, "")
	if status != http.StatusOK || string(env.Data) != "{}" {
		t.Fatalf("delete: %d %s", status, env.Data)
	}

	status, env = call(t, srv, http.MethodGet, "/api/expenses/"+created.Id, "")
	if status != http.StatusNotFound || string(env.Error) != `"Expense not found"` {
		t.Fatalf("get after delete: %d %s", status, env.Error)
	}
}

func TestOutOfRangeDateIsNotPersisted(t *testing.T) {
	srv := newTestServer(t, testConfig(), fakePinger{})

	for _, date := range []string{"253402300800000", "1e300", "-8.64e15"} {
		status, env := call(t, srv, http.MethodPost, "/api/expenses", `{"title":"Far","amount":1,"category":"Food","date":`+date+`}`)
		if status != http.StatusBadRequest || !strings.Contains(string(env.Error), `at path \"date\"`) {
			t.Fatalf("date %s: %d %s", date, status, env.Error)
		}
	}

	for _, path := range []string{"/api/expenses", "/api/expenses/category/Food"} {
		status, env := call(t, srv, http.MethodGet, path, "")
		if status != http.StatusOK || env.Count == nil || *env.Count != 0 {
			t.Fatalf("%s: %d %+v", path, status, env)
		}
	}
}

func TestPanicIsRecoveredAndLogged(t *testing.T) {
	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	withMiddlewares(panicking, testConfig()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/expenses", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if !strings.Contains(logs.String(), `"msg":"http request"`) || !strings.Contains(logs.String(), `"status":500`) {
		t.Fatalf("recovered request missing from access log:\n%s", logs.String())
	}
}

func TestInvalidCategoryIsNotPersisted(t *testing.T) {
	srv := newTestServer(t, testConfig(), fakePinger{})

	status, env := call(t, srv, http.MethodPost, "/api/expenses", `{"title":"Lunch","amount":12.5,"category":"Invalid"}`)
	if status != http.StatusBadRequest || !strings.Contains(string(env.Error), "category") {
		t.Fatalf("create: %d %s", status, env.Error)
	}

	_, env = call(t, srv, http.MethodGet, "/api/expenses", "")
	if *env.Count != 0 {
		t.Fatalf("invalid expense listed: %s", env.Data)
	}
}

func TestRoutingEdges(t *testing.T) {
	srv := newTestServer(t, testConfig(), fakePinger{})

	// "category" alone is treated as an identifier.
	status, env := call(t, srv, http.MethodGet, "/api/expenses/category", "")
	if status != http.StatusBadRequest || string(env.Error) != `"Invalid expense ID"` {
		t.Fatalf("GET /api/expenses/category: %d %s", status, env.Error)
	}

	status, _ = call(t, srv, http.MethodPost, "/api/expenses", `{"title":`)
	if status != http.StatusBadRequest {
		t.Fatalf("malformed body: %d", status)
	}

	req, _ := http.NewRequest(http.MethodPatch, srv.URL+"/api/expenses/abc", nil)
	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unmatched method should fall through to 404, got %d", res.StatusCode)
	}
}

func TestBootstrapRoutes(t *testing.T) {
	srv := newTestServer(t, testConfig(), fakePinger{})

	res, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || string(body) != "Welcome to Expense Tracker API" {
		t.Fatalf("welcome: %d %s", res.StatusCode, body)
	}
	if res.Header.Get("X-Request-Id") == "" {
		t.Fatal("missing request id header")
	}

	call(t, srv, http.MethodGet, "/api/expenses", "")

	res, err = srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(res.Body)
	res.Body.Close()
	if !strings.Contains(string(body), "expense_http_requests_total") {
		t.Fatalf("metrics missing request counter:\n%s", body)
	}

	unready := newTestServer(t, testConfig(), fakePinger{err: errors.New("no reachable servers")})
	res, err = unready.Client().Get(unready.URL + "/readyz")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readyz = %d, want 503", res.StatusCode)
	}
}

func TestProductionServesStaticAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.AppEnv = config.EnvProduction
	cfg.StaticDir = dir
	srv := newTestServer(t, cfg, fakePinger{})

	for path, want := range map[string]string{
		"/app.js":          "console.log(1)",
		"/some/client/url": "<html>app</html>",
	} {
		res, err := srv.Client().Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		if res.StatusCode != http.StatusOK || string(body) != want {
			t.Fatalf("%s: %d %q", path, res.StatusCode, body)
		}
	}
}
