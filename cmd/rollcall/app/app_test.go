package app

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fieldops/rollcall"
	pkgerrors "github.com/fieldops/rollcall/pkg/errors"
)

// testConfig returns a config pointing at a fake CRM instance.
func testConfig() *Config {
	return &Config{
		APIKey:    "test-key",
		BaseURL:   "https://crm.example.org/api/v1",
		Threshold: 0.8,
		PageSize:  100,
	}
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Client_Singleton verifies that Client() returns the same instance.
func TestApp_Client_Singleton(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(testConfig()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	c1, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}

	c2, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed on second call: %v", err)
	}

	// Verify it's the same instance (same pointer)
	if c1 != c2 {
		t.Error("Client() returned different instances, expected singleton")
	}
}

// TestApp_Client_ThreadSafe verifies concurrent Client() calls are safe.
func TestApp_Client_ThreadSafe(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(testConfig()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	const goroutines = 100
	var wg sync.WaitGroup
	results := make([]rollcall.Client, goroutines)
	errs := make([]error, goroutines)

	// Launch many goroutines to test concurrent access
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			c, err := app.Client()
			results[idx] = c
			errs[idx] = err
		}(i)
	}

	wg.Wait()

	// Verify all calls succeeded
	for i, err := range errs {
		if err != nil {
			t.Errorf("Goroutine %d: Client() failed: %v", i, err)
		}
	}

	// Verify all got the same instance
	first := results[0]
	for i, c := range results[1:] {
		if c != first {
			t.Errorf("Goroutine %d got different client instance", i+1)
		}
	}
}

// TestApp_Client_NotConfigured verifies the error surfaced when the config
// is missing credentials.
func TestApp_Client_NotConfigured(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(&Config{}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = app.Client()
	if err == nil {
		t.Fatal("Client() succeeded without an API key")
	}
	if !errors.Is(err, pkgerrors.ErrAPIKeyRequired) {
		t.Errorf("Client() error = %v, want ErrAPIKeyRequired", err)
	}
}

// TestApp_Client_NoBaseURL verifies the error surfaced when only the API
// key is configured.
func TestApp_Client_NoBaseURL(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test",
		WithConfig(&Config{APIKey: "test-key"}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = app.Client()
	if err == nil {
		t.Fatal("Client() succeeded without a base URL")
	}
	if !errors.Is(err, pkgerrors.ErrBaseURLRequired) {
		t.Errorf("Client() error = %v, want ErrBaseURLRequired", err)
	}
}

// TestApp_ClientWithOptions tests that extra options create new instances
// each time instead of touching the singleton.
func TestApp_ClientWithOptions(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(testConfig()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	c1, err := app.ClientWithOptions(rollcall.WithThreshold(0.9))
	if err != nil {
		t.Fatalf("ClientWithOptions() failed: %v", err)
	}

	c2, err := app.ClientWithOptions(rollcall.WithThreshold(0.9))
	if err != nil {
		t.Fatalf("ClientWithOptions() failed on second call: %v", err)
	}

	if c1 == c2 {
		t.Error("ClientWithOptions() returned same instance, expected new instance each time")
	}

	// And they should be different from the default singleton
	cDefault, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}

	if c1 == cDefault {
		t.Error("ClientWithOptions() returned default singleton, expected new instance")
	}
}

// TestApp_WithOptions tests functional options pattern.
func TestApp_WithOptions(t *testing.T) {
	customConfig := testConfig()
	customConfig.Verbose = true
	customConfig.Output = "json"

	customLogger := zerolog.Nop() // No-op logger for testing

	app, err := New("1.0.0", "test", "2024-01-01", "test",
		WithConfig(customConfig),
		WithLogger(&customLogger),
	)
	if err != nil {
		t.Fatalf("New() with options failed: %v", err)
	}

	// Verify options were applied
	if app.Config() != customConfig {
		t.Error("WithConfig() option not applied")
	}
	if app.Logger() != &customLogger {
		t.Error("WithLogger() option not applied")
	}
}

// BenchmarkApp_Client measures client singleton access performance.
func BenchmarkApp_Client(b *testing.B) {
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(testConfig()))
	if err != nil {
		b.Fatalf("New() failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := app.Client()
		if err != nil {
			b.Fatalf("Client() failed: %v", err)
		}
	}
}
