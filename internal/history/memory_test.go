package history

import (
	"context"
	"slices"
	"testing"
)

func sampleRun(id string) Run {
	return Run{
		ID:      id,
		Rule:    "conway",
		Width:   16,
		Height:  12,
		Seed:    5,
		Density: 0.3,
		Samples: []Sample{
			{Generation: 1, Population: 40, Births: 10, Deaths: 27},
			{Generation: 2, Population: 44, Births: 12, Deaths: 8},
			{Generation: 3, Population: 31, Births: 2, Deaths: 15},
		},
	}
}

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	run := sampleRun("r1")
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save run: %v", err)
	}
	run.Samples[0].Population = -1

	loaded, ok, err := store.GetRun(ctx, "r1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatal("expected run r1")
	}
	if loaded.Samples[0].Population != 40 {
		t.Fatal("store must not alias the caller's samples")
	}
	if loaded.Final().Generation != 3 || loaded.Peak() != 44 {
		t.Fatalf("unexpected summary final=%+v peak=%d", loaded.Final(), loaded.Peak())
	}

	if _, ok, err := store.GetRun(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing run, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreListRunsSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, id := range []string{"seeds", "conway", "maze"} {
		if err := store.SaveRun(ctx, sampleRun(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	ids, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !slices.Equal(ids, []string{"conway", "maze", "seeds"}) {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestMemoryStoreRequiresInitAndID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.SaveRun(ctx, sampleRun("r1")); err == nil {
		t.Fatal("save before init should fail")
	}
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := store.SaveRun(ctx, Run{}); err == nil {
		t.Fatal("save without id should fail")
	}
}

func TestEmptyRunSummary(t *testing.T) {
	var r Run
	if r.Final() != (Sample{}) || r.Peak() != 0 {
		t.Fatal("empty run should summarize to zero values")
	}
}
