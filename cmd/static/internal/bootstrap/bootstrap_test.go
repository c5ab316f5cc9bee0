package bootstrap

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "value", "other"); got != "value" {
		t.Fatalf("expected first non-empty value, got %q", got)
	}
	if got := firstNonEmpty("", "   "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestBuildModuleEnvOverrides(t *testing.T) {
	t.Setenv(EnvDBDriver, "")
	t.Setenv(EnvDBDSN, "")
	t.Setenv(EnvContentDir, "testdata/content")

	module, err := BuildModule(Options{})
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	defer module.Close()

	if module.DB() != nil {
		t.Fatal("no driver configured, database handle must be nil")
	}
}

func TestBuildModuleFlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvDBDriver, "postgres")
	t.Setenv(EnvDBDSN, "postgres://ignored")

	module, err := BuildModule(Options{Driver: "sqlite"})
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	defer module.Close()

	if module.DB() == nil {
		t.Fatal("sqlite driver must open a database handle")
	}
}
