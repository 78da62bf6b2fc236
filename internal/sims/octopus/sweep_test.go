package octopus

import "testing"

func TestSweepOrdersBySeed(t *testing.T) {
	seeds := []int64{5, 0, 3, 1}
	results := Sweep(DefaultConfig(), seeds, 3)
	if len(results) != len(seeds) {
		t.Fatalf("got %d results, want %d", len(results), len(seeds))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Seed <= results[i-1].Seed {
			t.Fatalf("results not sorted: %d after %d", results[i].Seed, results[i-1].Seed)
		}
	}
	first := results[0]
	if first.Seed != 0 || first.Total != 1601 || first.SyncStep != 368 {
		t.Fatalf("seed 0 should replay the built-in grid, got %+v", first)
	}
}

func TestSweepMatchesSequentialRun(t *testing.T) {
	seeds := []int64{11, 12}
	parallel := Sweep(DefaultConfig(), seeds, 2)
	for i, seed := range seeds {
		if want := runSeed(DefaultConfig(), seed); parallel[i] != want {
			t.Fatalf("seed %d: parallel %+v, sequential %+v", seed, parallel[i], want)
		}
	}
}

func TestSummarize(t *testing.T) {
	results := []SeedResult{
		{Seed: 1, Total: 100, Reported: true, SyncStep: 300, Synced: true},
		{Seed: 2, Total: 200, Reported: true},
		{Seed: 3, Total: 300, Reported: true, SyncStep: 150, Synced: true},
		{Seed: 4, SyncStep: 40, Synced: true},
	}
	s := Summarize(results)
	if s.Runs != 4 || s.Synced != 3 {
		t.Fatalf("runs/synced = %d/%d", s.Runs, s.Synced)
	}
	if s.MinSync != 40 || s.MaxSync != 300 || s.MedianSync != 150 {
		t.Fatalf("sync stats = %d/%d/%d", s.MinSync, s.MedianSync, s.MaxSync)
	}
	if s.MeanTotal != 200 {
		t.Fatalf("mean total = %f, want 200", s.MeanTotal)
	}

	if empty := Summarize(nil); empty.Runs != 0 || empty.Synced != 0 || empty.MeanTotal != 0 {
		t.Fatalf("empty summary = %+v", empty)
	}
}
