package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
environment: test
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 5s
log:
  level: debug
  format: console
  output: stdout
simulation:
  symbol: BTC-USD
  tax_rate: 0.25
provider:
  base_url: https://query1.finance.yahoo.com
  timeout: 15s
  series_ttl: 1h
rate_limit:
  capacity: 5
  refill_per_sec: 1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("unexpected port %d", cfg.Server.Port)
	}
	if cfg.Simulation.Symbol != "BTC-USD" {
		t.Fatalf("unexpected symbol %q", cfg.Simulation.Symbol)
	}
	if cfg.Simulation.TaxRate != 0.25 {
		t.Fatalf("unexpected tax rate %v", cfg.Simulation.TaxRate)
	}
}

func TestLoadRejectsBadTaxRate(t *testing.T) {
	bad := validYAML + "\n"
	cfg, err := Load(writeConfig(t, bad))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Simulation.TaxRate = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected tax rate rejection")
	}
}

func TestLoadRejectsMissingSymbol(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Simulation.Symbol = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing symbol rejection")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("STACKSIM_SYMBOL", "ETH-USD")
	t.Setenv("STACKSIM_TAX_RATE", "0.3")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulation.Symbol != "ETH-USD" {
		t.Fatalf("env symbol not applied: %q", cfg.Simulation.Symbol)
	}
	if cfg.Simulation.TaxRate != 0.3 {
		t.Fatalf("env tax rate not applied: %v", cfg.Simulation.TaxRate)
	}
}
