package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsWhenRunnerTableOmitted(t *testing.T) {
	path := writeScript(t, `
[root]
kind = "delay"
duration_ms = 100
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Runner.Level != "info" || cfg.Runner.Format != "console" {
		t.Errorf("runner defaults = %+v, want level=info format=console", cfg.Runner)
	}
	if cfg.Runner.Speed != 1 {
		t.Errorf("Speed = %v, want 1", cfg.Runner.Speed)
	}
}

func TestLoadOverridesDefaultsFromScript(t *testing.T) {
	path := writeScript(t, `
[runner]
level = "debug"
format = "json"
speed = 2.5

[root]
kind = "delay"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Runner.Level != "debug" || cfg.Runner.Format != "json" || cfg.Runner.Speed != 2.5 {
		t.Errorf("runner = %+v, want debug/json/2.5", cfg.Runner)
	}
}

func TestLoadDecodesNestedBlockTree(t *testing.T) {
	path := writeScript(t, `
[[elements]]
name = "box"
tag = "div"

[root]
kind = "sequence"

  [[root.children]]
  kind = "tween"
  target = "box"
  duration_ms = 200

    [root.children.properties]
    opacity = 1

  [[root.children]]
  kind = "delay"
  duration_ms = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Elements) != 1 || cfg.Elements[0].Name != "box" {
		t.Fatalf("elements = %+v, want one element named box", cfg.Elements)
	}
	if cfg.Root.Kind != "sequence" || len(cfg.Root.Children) != 2 {
		t.Fatalf("root = %+v, want sequence with 2 children", cfg.Root)
	}
	if cfg.Root.Children[0].Kind != "tween" || cfg.Root.Children[0].Target != "box" {
		t.Errorf("children[0] = %+v", cfg.Root.Children[0])
	}
	if cfg.Root.Children[1].Kind != "delay" || cfg.Root.Children[1].DurationMS != 50 {
		t.Errorf("children[1] = %+v", cfg.Root.Children[1])
	}
}

func TestLoadRejectsMissingRootKind(t *testing.T) {
	path := writeScript(t, `
[runner]
level = "info"
`)

	if _, err := Load(path); err == nil {
		t.Error("expected an error for a script with no [root] block")
	}
}

func TestLoadReturnsErrorForMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml")); err == nil {
		t.Error("expected an error for a missing script file")
	}
}
