package sim

import (
	"math/rand"
	"testing"

	"github.com/mkraev/lanedash/internal/config"
)

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		score    int
		expected float64
	}{
		{0, 800},
		{4, 800},   // Below the first step
		{5, 790},   // First step
		{25, 750},  // 800 - 5*10
		{224, 360}, // Near the floor
		{225, 350}, // At the floor
		{1000, 350},
	}

	for _, tc := range tests {
		if got := SpawnInterval(tc.score); got != tc.expected {
			t.Errorf("SpawnInterval(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestSpawnerEmitsOnePerElapsedTimer(t *testing.T) {
	cfg := config.Default()
	sp := NewSpawner(&cfg, rand.New(rand.NewSource(1)))
	sp.Reset()

	// Timer starts at zero: the very first tick spawns
	if e := sp.Tick(16, 0); e == nil {
		t.Fatal("first tick after reset should spawn")
	}

	// Timer re-armed at 800ms for score 0: nothing until it elapses
	total := 0.0
	for total+16 < 800 {
		total += 16
		if e := sp.Tick(16, 0); e != nil {
			t.Fatalf("unexpected spawn at %vms into the interval", total)
		}
	}
	if e := sp.Tick(32, 0); e == nil {
		t.Error("expected a spawn once the interval elapsed")
	}
}

func TestSpawnerKindDistribution(t *testing.T) {
	cfg := config.Default()
	sp := NewSpawner(&cfg, rand.New(rand.NewSource(7)))

	counts := map[Kind]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		sp.Reset()
		e := sp.Tick(16, 0)
		if e == nil {
			t.Fatal("reset spawner must spawn on the next tick")
		}
		counts[e.Kind]++

		if e.Lane < 0 || e.Lane >= cfg.Field.Lanes {
			t.Fatalf("lane %d out of range", e.Lane)
		}
		kc := kindConfig(&cfg.Entities, e.Kind)
		if e.VY < kc.MinSpeed || e.VY >= kc.MaxSpeed {
			t.Fatalf("%v velocity %v outside [%v,%v)", e.Kind, e.VY, kc.MinSpeed, kc.MaxSpeed)
		}
		if e.Y != kc.SpawnY {
			t.Fatalf("%v spawn y = %v, expected off-screen %v", e.Kind, e.Y, kc.SpawnY)
		}
	}

	// Thresholds 0.18/0.34 give an 18/16/66 split; slack for a finite sample
	assertShare := func(kind Kind, want float64) {
		got := float64(counts[kind]) / n
		if got < want-0.03 || got > want+0.03 {
			t.Errorf("%v share = %.3f, expected about %.2f", kind, got, want)
		}
	}
	assertShare(KindPositive, 0.18)
	assertShare(KindNegative, 0.16)
	assertShare(KindObstacle, 0.66)
}

func TestMotionScaleConstant(t *testing.T) {
	s := newTestSim(3)
	s.Start(0)

	e := Entity{Kind: KindObstacle, Lane: 0, Y: 100, VY: 200, Size: 44}
	s.obstacles = append(s.obstacles, e)

	s.advanceEntities(0.016)

	// y += vy * dt * 60 * 0.016, the 60 Hz frame normalization
	want := 100 + 200*0.016*60*0.016
	got := s.obstacles[0].Y
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("y = %v, expected %v", got, want)
	}
}

func TestDespawnPastVisibleArea(t *testing.T) {
	s := newTestSim(3)
	s.Start(0)

	h := s.cfg.Field.Height
	margin := s.cfg.Entities.Obstacle.DespawnMargin
	s.obstacles = append(s.obstacles,
		Entity{Kind: KindObstacle, Lane: 0, Y: h + margin + 1, Size: 44},
		Entity{Kind: KindObstacle, Lane: 1, Y: h + margin - 1, Size: 44},
	)

	s.advanceEntities(0)

	if len(s.obstacles) != 1 {
		t.Fatalf("expected 1 surviving obstacle, got %d", len(s.obstacles))
	}
	if s.obstacles[0].Lane != 1 {
		t.Error("the wrong obstacle was despawned")
	}
}

func TestMagnetPullsNearbyPositives(t *testing.T) {
	s := newTestSim(3)
	s.Start(0)
	s.power.ActivateMagnet(0)
	s.lane = 1 // Center lane: both neighbors within pull range

	near := Entity{Kind: KindPositive, Lane: 0, Y: 100, VY: 0, Size: 28}
	s.positives = append(s.positives, near)

	s.advanceEntities(0.016)

	// Extra pull of 40*dt*60 on top of the (zero) natural fall
	want := 100 + 40*0.016*60
	if got := s.positives[0].Y; got != want {
		t.Errorf("pulled y = %v, expected %v", got, want)
	}
}

func TestMagnetIgnoresFarLanes(t *testing.T) {
	s := newTestSim(3)
	s.Start(0)
	s.power.ActivateMagnet(0)
	s.lane = 0

	far := Entity{Kind: KindPositive, Lane: 2, Y: 100, VY: 0, Size: 28} // 240 units away
	s.positives = append(s.positives, far)

	s.advanceEntities(0.016)

	if got := s.positives[0].Y; got != 100 {
		t.Errorf("far pickup y = %v, expected no pull beyond range", got)
	}
}

func TestMagnetDoesNotPullObstacles(t *testing.T) {
	s := newTestSim(3)
	s.Start(0)
	s.power.ActivateMagnet(0)

	s.obstacles = append(s.obstacles, Entity{Kind: KindObstacle, Lane: s.lane, Y: 100, VY: 0, Size: 44})
	s.negatives = append(s.negatives, Entity{Kind: KindNegative, Lane: s.lane, Y: 100, VY: 0, Size: 28})

	s.advanceEntities(0.016)

	if s.obstacles[0].Y != 100 || s.negatives[0].Y != 100 {
		t.Error("magnet must only pull positive pickups")
	}
}
