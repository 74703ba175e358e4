package resolver

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"BourseDash/internal/mapping"
	"BourseDash/internal/model"
)

// probeStub counts probe calls and returns canned data per symbol.
type probeStub struct {
	tables map[string]model.PriceTable
	err    error
	calls  int
}

func (p *probeStub) FetchDailyHistory(symbols []string, days int) (model.PriceTable, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	var table model.PriceTable
	for _, s := range symbols {
		table = append(table, p.tables[s]...)
	}
	return table, nil
}

func oneBar(symbol string) model.PriceTable {
	return model.PriceTable{{
		Symbol: symbol,
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Open:   10, High: 11, Low: 9, Close: 10.5,
	}}
}

func newTestResolver(t *testing.T, probe Prober) (*Resolver, *mapping.Store) {
	t.Helper()
	store := mapping.NewStore(filepath.Join(t.TempDir(), "mapping.json"))
	return New(store, probe, ".PA", 5), store
}

func TestResolve_BlankInput(t *testing.T) {
	probe := &probeStub{}
	r, store := newTestResolver(t, probe)

	for _, raw := range []string{"", "   ", "\t\n"} {
		if sym, src, ok := r.Resolve(raw); ok || sym != "" || src != "" {
			t.Errorf("blank %q: expected absent, got %q/%q", raw, sym, src)
		}
	}
	if probe.calls != 0 {
		t.Errorf("blank input must not probe, got %d calls", probe.calls)
	}
	if len(store.All()) != 0 {
		t.Error("blank input must not mutate the store")
	}
}

func TestGuess_SeparatorIsCanonical(t *testing.T) {
	r, _ := newTestResolver(t, &probeStub{})
	guess, ok := r.Guess("aapl.o")
	if !ok || guess != "AAPL.O" {
		t.Errorf("expected AAPL.O kept as-is, got %q/%v", guess, ok)
	}
}

func TestGuess_ShortAlnumGetsSuffix(t *testing.T) {
	r, _ := newTestResolver(t, &probeStub{})
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"AIR", "AIR.PA", true},
		{" mc ", "MC.PA", true},
		{"TOTB", "TOTB.PA", true},
		{"US0378331005", "", false}, // too long for the suffix heuristic
		{"A B", "", false},          // not alphanumeric
		{"", "", false},
	}
	for _, tt := range tests {
		guess, ok := r.Guess(tt.raw)
		if ok != tt.wantOK || guess != tt.want {
			t.Errorf("Guess(%q) = %q/%v, want %q/%v", tt.raw, guess, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolve_MappingHitSkipsNetwork(t *testing.T) {
	probe := &probeStub{}
	r, store := newTestResolver(t, probe)
	if err := store.Put("TOTB", "TTE.PA"); err != nil {
		t.Fatal(err)
	}

	sym, src, ok := r.Resolve("totb")
	if !ok || sym != "TTE.PA" || src != SourceMapping {
		t.Fatalf("expected mapping hit TTE.PA, got %q/%q/%v", sym, src, ok)
	}
	if probe.calls != 0 {
		t.Errorf("mapping path must not probe, got %d calls", probe.calls)
	}
}

func TestResolve_HeuristicProbeSuccessPersists(t *testing.T) {
	probe := &probeStub{tables: map[string]model.PriceTable{"MC.PA": oneBar("MC.PA")}}
	r, store := newTestResolver(t, probe)

	sym, src, ok := r.Resolve("MC")
	if !ok || sym != "MC.PA" || src != SourceHeuristic {
		t.Fatalf("expected heuristic MC.PA, got %q/%q/%v", sym, src, ok)
	}
	if got, ok := store.Get("MC"); !ok || got != "MC.PA" {
		t.Errorf("expected mapping persisted, got %q/%v", got, ok)
	}
}

func TestResolve_ProbeEmptyLeavesStoreUnchanged(t *testing.T) {
	probe := &probeStub{tables: map[string]model.PriceTable{}}
	r, store := newTestResolver(t, probe)

	if _, _, ok := r.Resolve("MC"); ok {
		t.Fatal("expected absent when probe returns no bars")
	}
	if len(store.All()) != 0 {
		t.Error("negative probe must not be cached")
	}
}

func TestResolve_ProbeErrorTreatedAsNoData(t *testing.T) {
	probe := &probeStub{err: errors.New("connection reset")}
	r, store := newTestResolver(t, probe)

	if _, _, ok := r.Resolve("MC"); ok {
		t.Fatal("expected absent on transient probe failure")
	}
	if probe.calls != 1 {
		t.Errorf("failed probe must not be retried, got %d calls", probe.calls)
	}
	if len(store.All()) != 0 {
		t.Error("transient failure must not mutate the store")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	probe := &probeStub{tables: map[string]model.PriceTable{"AIR.PA": oneBar("AIR.PA")}}
	r, _ := newTestResolver(t, probe)

	first, src1, ok := r.Resolve("AIR")
	if !ok || src1 != SourceHeuristic {
		t.Fatalf("first resolve failed: %q/%q/%v", first, src1, ok)
	}
	second, src2, ok := r.Resolve("AIR")
	if !ok || second != first {
		t.Fatalf("second resolve differs: %q vs %q", second, first)
	}
	if src2 != SourceMapping {
		t.Errorf("second resolve should use the mapping path, got %q", src2)
	}
	if probe.calls != 1 {
		t.Errorf("second resolve must not probe again, got %d calls", probe.calls)
	}
}
