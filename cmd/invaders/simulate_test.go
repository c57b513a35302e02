package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func TestSimulationFrame(t *testing.T) {
	sim := simulation{FireEvery: 3, Right: true}

	tests := []struct {
		i    int
		fire bool
	}{
		{0, true},
		{1, false},
		{2, false},
		{3, true},
	}
	for _, tc := range tests {
		in := sim.frame(tc.i)
		if in.Has(core.ActionFire) != tc.fire {
			t.Errorf("frame %d: fire = %v, expected %v", tc.i, in.Has(core.ActionFire), tc.fire)
		}
		if !in.Has(core.ActionRight) || in.Has(core.ActionLeft) {
			t.Errorf("frame %d: expected only right held", tc.i)
		}
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	sim := simulation{Ticks: 60, FireEvery: 4, Left: true}
	cfg := config.DefaultInvadersConfig()

	g1, err := sim.run(cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	g2, err := sim.run(cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Error("the same script should produce the same state")
	}
	if s1.Tick != 60 {
		t.Errorf("tick = %d, expected 60", s1.Tick)
	}
}

func TestSimulationStopsAtGameOver(t *testing.T) {
	sim := simulation{Ticks: 10000}

	g, err := sim.run(config.DefaultInvadersConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !g.GameOver() {
		t.Fatal("an idle run should end in game over")
	}
	if g.State().Tick >= 10000 {
		t.Error("the run should stop when the game ends")
	}
}

func TestSimulationRejectsNegativeFlags(t *testing.T) {
	cfg := config.DefaultInvadersConfig()

	if _, err := (simulation{Ticks: -1}).run(cfg); err == nil {
		t.Error("negative ticks should fail")
	}
	if _, err := (simulation{Ticks: 1, FireEvery: -2}).run(cfg); err == nil {
		t.Error("negative fire interval should fail")
	}
}

func TestSimulationContinuesFromReport(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	script := simulation{FireEvery: 4, Right: true}

	whole := script
	whole.Ticks = 60
	want, err := whole.run(cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	first := script
	first.Ticks = 25
	g, err := first.run(cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Round trip through a report file like the CLI does
	snap := g.Snapshot()
	data, err := yaml.Marshal(simulationReport{Hash: snap.Hash(), Snapshot: snap})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	report, err := loadReport(path)
	if err != nil {
		t.Fatalf("loadReport failed: %v", err)
	}
	if report.Hash != snap.Hash() {
		t.Fatal("report should keep the snapshot intact")
	}

	rest := script
	rest.Ticks = 35
	rest.From = &report.Snapshot
	got, err := rest.run(cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	gotSnap, wantSnap := got.Snapshot(), want.Snapshot()
	if gotSnap.Hash() != wantSnap.Hash() {
		t.Error("a continued run should end where a single run ends")
	}
}

func TestSimulationRejectsOverfullReport(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	g, err := simulation{Ticks: 1}.run(cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// A hand-edited report with one bullet more than may be in flight
	snap := g.Snapshot()
	for i := 0; i <= cfg.Bullet.MaxInFlight; i++ {
		snap.Bullets = append(snap.Bullets, invaders.PointSnapshot{X: 100, Y: float64(400 - 20*i)})
	}

	if _, err := (simulation{Ticks: 10, From: &snap}).run(cfg); err == nil {
		t.Error("a report with too many bullets should be rejected")
	}
}

func TestLoadReportMissingFile(t *testing.T) {
	if _, err := loadReport(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loading a missing report should fail")
	}
}
