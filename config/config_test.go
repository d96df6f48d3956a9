package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const servicesJSON = `{
  "UserService": {"port": 14001, "ip": "127.0.0.1"},
  "OrderService": { "port": 14000 },
  "ProductService": {"port": 15000, "ip": "127.0.0.1"},
  "InterServiceCommunication": {"port": 14002, "ip": "127.0.0.1"}
}`

func writeServices(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestServicesPort(t *testing.T) {
	services, err := ParseServices([]byte(servicesJSON))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		service  string
		wantPort int
		wantOK   bool
	}{
		{"OrderService", 14000, true},
		{"UserService", 14001, true},
		{"ProductService", 15000, true},
		{"ShippingService", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			port, ok := services.Port(tt.service)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if port != tt.wantPort {
				t.Errorf("Expected port %d, got %d", tt.wantPort, port)
			}
		})
	}
}

func TestParseServicesSkipsNonSections(t *testing.T) {
	services, err := ParseServices([]byte(`{"OrderService": {"port": 0}, "version": "1", "UserService": {"port": "x"}}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := services.Port("OrderService"); ok {
		t.Error("Expected zero port to be reported as not found")
	}
	if _, ok := services.Port("UserService"); ok {
		t.Error("Expected non-numeric port to be reported as not found")
	}
	if _, ok := services.Port("version"); ok {
		t.Error("Expected string entry to be ignored")
	}
}

func TestParseServicesPortForms(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		wantPort int
		wantOK   bool
	}{
		{"number", `{"port": 14000}`, 14000, true},
		{"quoted number", `{"port": "14000"}`, 14000, true},
		{"whole float", `{"port": 14000.0}`, 14000, true},
		{"numeric ip", `{"port": 14000, "ip": 5}`, 14000, true},
		{"object ip", `{"ip": {"v4": "127.0.0.1"}, "port": 14001}`, 14001, true},
		{"padded string", `{"port": " 14002 "}`, 14002, true},
		{"word", `{"port": "x"}`, 0, false},
		{"negative", `{"port": -1}`, 0, false},
		{"boolean", `{"port": true}`, 0, false},
		{"missing", `{"ip": "127.0.0.1"}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := ParseServices([]byte(`{"OrderService": ` + tt.section + `}`))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			port, ok := services.Port("OrderService")
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if port != tt.wantPort {
				t.Errorf("Expected port %d, got %d", tt.wantPort, port)
			}
		})
	}
}

func TestParseServicesInvalidJSON(t *testing.T) {
	if _, err := ParseServices([]byte(`"OrderService": { "port": 14000 }`)); err == nil {
		t.Error("Expected error for a document that is not an object")
	}
}

func TestBaseURLFixedPort(t *testing.T) {
	cfg := &Config{Host: DefaultHost, Port: DefaultPort, Service: DefaultService}

	url, err := cfg.BaseURL()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if url != "http://127.0.0.1:14000" {
		t.Errorf("Expected http://127.0.0.1:14000, got %s", url)
	}
}

func TestBaseURLFromServicesFile(t *testing.T) {
	cfg := &Config{
		ServicesFile: writeServices(t, servicesJSON),
		Service:      "ProductService",
		Host:         DefaultHost,
		Port:         DefaultPort,
	}

	url, err := cfg.BaseURL()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if url != "http://127.0.0.1:15000" {
		t.Errorf("Expected http://127.0.0.1:15000, got %s", url)
	}
}

func TestBaseURLErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{ServicesFile: filepath.Join(t.TempDir(), "nope.json"), Service: DefaultService, Host: DefaultHost}
		if _, err := cfg.BaseURL(); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected not-exist error, got %v", err)
		}
	})

	t.Run("missing service", func(t *testing.T) {
		cfg := &Config{ServicesFile: writeServices(t, `{"UserService": {"port": 14001}}`), Service: DefaultService, Host: DefaultHost}
		_, err := cfg.BaseURL()
		var nf *ServiceNotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Expected *ServiceNotFoundError, got %v", err)
		}
		if nf.Service != DefaultService {
			t.Errorf("Expected service %s, got %s", DefaultService, nf.Service)
		}
	})
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WORKLOAD_CONFIG", "/tmp/config.json")
	t.Setenv("WORKLOAD_SERVICE", "UserService")
	t.Setenv("WORKLOAD_PORT", "15001")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("WORKLOAD_HOST", "")

	cfg, _ := Load()

	if cfg.ServicesFile != "/tmp/config.json" {
		t.Errorf("Unexpected services file %s", cfg.ServicesFile)
	}
	if cfg.Service != "UserService" {
		t.Errorf("Unexpected service %s", cfg.Service)
	}
	if cfg.Port != 15001 {
		t.Errorf("Expected port 15001, got %d", cfg.Port)
	}
	if cfg.RequestTimeout.String() != "2s" {
		t.Errorf("Expected timeout 2s, got %v", cfg.RequestTimeout)
	}
	if !cfg.LogDev {
		t.Error("Expected LogDev=true")
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Expected default host, got %s", cfg.Host)
	}
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("WORKLOAD_PORT", "fourteen")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg, _ := Load()
	if cfg.Port != DefaultPort {
		t.Errorf("Expected default port, got %d", cfg.Port)
	}
	if cfg.RequestTimeout != 0 {
		t.Errorf("Expected no timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoadWithoutEnvFile(t *testing.T) {
	t.Setenv("WORKLOAD_PORT", "14005")

	// the package directory has no .env
	cfg, err := Load()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error for .env, got %v", err)
	}
	if cfg == nil || cfg.Port != 14005 {
		t.Fatalf("Expected a usable config with port 14005, got %+v", cfg)
	}
}
