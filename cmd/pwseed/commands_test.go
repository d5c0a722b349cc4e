package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pwseed/pwseed-go/internal/config"
	"github.com/pwseed/pwseed-go/internal/crypto"
	"github.com/pwseed/pwseed-go/internal/repository"
)

func testConfig() config.Config {
	return config.Config{
		DatabaseDriver: repository.DriverSQLite,
		DatabaseDSN:    ":memory:",
		JWTSecret:      "test-secret",
		JWTExpiry:      time.Hour,
		FetchTimeout:   time.Second,
		SeedCount:      10,
	}
}

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(cfg)
	app.Writer = &out
	app.ErrWriter = &out
	err := app.RunContext(context.Background(), append([]string{"pwseed"}, args...))
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, testConfig(), "generate", "--length", "7", "--tier", "3")
	if err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}

	password := strings.TrimSpace(out)
	if len(password) != 7 {
		t.Errorf("password %q length = %d, want 7", password, len(password))
	}

	tier, err := crypto.Classify(password)
	if err != nil {
		t.Fatalf("Classify(%q) unexpected error: %v", password, err)
	}
	if tier != crypto.TierUpper {
		t.Errorf("Classify(%q) = %d, want %d", password, tier, crypto.TierUpper)
	}
}

func TestGenerateCommandRejectsBadLength(t *testing.T) {
	tests := []struct {
		length  string
		tier    string
		wantErr error
	}{
		{"2", "4", crypto.ErrLengthTooShort},
		{"129", "1", crypto.ErrLengthTooLong},
	}

	for _, tt := range tests {
		_, err := run(t, testConfig(), "generate", "--length", tt.length, "--tier", tt.tier)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("generate --length %s --tier %s: error = %v, want %v", tt.length, tt.tier, err, tt.wantErr)
		}
	}
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, testConfig(), "classify", "abcdefgh")
	if err != nil {
		t.Fatalf("classify: unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "2 ") {
		t.Errorf("classify output = %q, want tier 2", out)
	}

	if _, err := run(t, testConfig(), "classify", "ABC123"); !errors.Is(err, crypto.ErrInvalidFormat) {
		t.Errorf("classify ABC123: error = %v, want %v", err, crypto.ErrInvalidFormat)
	}
	if _, err := run(t, testConfig(), "classify"); err == nil {
		t.Error("classify without argument: expected error")
	}
}

func TestSelfTestCommand(t *testing.T) {
	out, err := run(t, testConfig(), "selftest")
	if err != nil {
		t.Fatalf("selftest: unexpected error: %v", err)
	}
	if out != "success\n" {
		t.Errorf("selftest output = %q, want %q", out, "success\n")
	}
}

func TestTokenCommand(t *testing.T) {
	cfg := testConfig()
	out, err := run(t, cfg, "token", "--operator", "ci")
	if err != nil {
		t.Fatalf("token: unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(strings.TrimSpace(out), cfg.JWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Operator != "ci" {
		t.Errorf("Operator = %q, want %q", claims.Operator, "ci")
	}
}

func TestSeedCommand(t *testing.T) {
	var served atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := served.Add(1)
		fmt.Fprintf(w, `{"results":[{"name":{"first":"User","last":"%d"},"email":"user%d@example.com"}]}`, n, n)
	}))
	defer srv.Close()

	dsn := filepath.Join(t.TempDir(), "user_info.db")

	out, err := run(t, testConfig(), "seed", "--count", "3", "--dsn", dsn, "--url", srv.URL)
	if err != nil {
		t.Fatalf("seed: unexpected error: %v", err)
	}
	if !strings.Contains(out, "COMPLEXITY") {
		t.Errorf("seed output missing table header: %q", out)
	}
	if served.Load() != 3 {
		t.Errorf("user directory calls = %d, want 3", served.Load())
	}

	db, err := repository.NewDB(repository.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	defer db.Close()

	repo, err := repository.NewPersonRepository(db, repository.DriverSQLite)
	if err != nil {
		t.Fatalf("NewPersonRepository() unexpected error: %v", err)
	}

	people, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(people) != 3 {
		t.Fatalf("stored %d people, want 3", len(people))
	}
	if people[0].FullName != "User 1" {
		t.Errorf("first person = %q, want %q", people[0].FullName, "User 1")
	}
	for _, p := range people {
		if len(p.Password) < 6 || len(p.Password) > 12 {
			t.Errorf("person %d password length = %d, want [6, 12]", p.ID, len(p.Password))
		}
		if p.Complexity == 0 {
			t.Errorf("person %d has no complexity", p.ID)
		}
	}
}
