package coherence

import (
	"math"
	"testing"

	"github.com/pdiddy/review-triage/pkg/types"
)

func TestSimilarityIdenticalTexts(t *testing.T) {
	got := Similarity("portfolio optimization", "portfolio optimization")
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("Similarity(identical) = %v, want 1", got)
	}
}

func TestSimilarityNoOverlap(t *testing.T) {
	got := Similarity("Unrelated Topic", "Completely different subject matter with no overlap.")
	if got != 0 {
		t.Errorf("Similarity(disjoint) = %v, want exactly 0", got)
	}
}

func TestSimilarityKnownValue(t *testing.T) {
	// One shared term out of two. Shared terms weigh 1, unshared
	// ln(1.5)+1, both vectors L2-normalized before the dot product.
	got := Similarity("alpha", "alpha beta")
	single := math.Log(1.5) + 1
	want := 1 / math.Sqrt(1+single*single)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Similarity = %v, want %v", got, want)
	}
}

func TestSimilarityCanonicalPair(t *testing.T) {
	got := Similarity(
		"Portfolio Optimization Using AI",
		"This paper studies portfolio optimization with deep learning.",
	)
	if math.Abs(got-0.2605556710562624) > 1e-9 {
		t.Errorf("Similarity = %v, want ~0.26056", got)
	}
}

func TestSimilarityDegenerateCases(t *testing.T) {
	tests := []struct {
		name            string
		title, abstract string
	}{
		{"empty title", "", "some abstract text"},
		{"empty abstract", "real title", ""},
		{"title all stop words", "the and of", "real abstract here"},
		{"title only short tokens", "a b c", "real abstract here"},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.title, tt.abstract); got != 0 {
				t.Errorf("Similarity = %v, want 0", got)
			}
		})
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"Deep hedging", "Deep hedging of derivatives with neural networks and transaction costs."},
		{"Mean-variance analysis", "Mean variance mean variance mean variance."},
		{"Risk parity portfolios", "Risk parity allocates by risk contribution rather than capital."},
		{"A", "B"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestSimilarityTokenization(t *testing.T) {
	// Punctuation splits tokens, case folds, single characters drop.
	a := Similarity("Black-Litterman", "black litterman")
	if math.Abs(a-1) > 1e-12 {
		t.Errorf("hyphen should split into the same two tokens, got %v", a)
	}
	b := Similarity("AI", "ai systems")
	if b == 0 {
		t.Errorf("two-character token should stay in vocabulary, got %v", b)
	}
}

func TestScorePartition(t *testing.T) {
	records := types.Collection{
		{Title: "Portfolio Optimization Using AI", Abstract: "This paper studies portfolio optimization with deep learning.", Year: 2021},
		{Title: "Unrelated Topic", Abstract: "Completely different subject matter with no overlap.", Year: 2015},
		{Title: "Deep hedging", Abstract: "Deep hedging of derivative portfolios.", Year: 2020},
	}
	cfg := types.CoherenceConfig{Threshold: 0.2}

	incoherent, coherent := Score(records, cfg)

	if got := len(incoherent) + len(coherent); got != len(records) {
		t.Fatalf("partition sizes sum to %d, want %d", got, len(records))
	}
	for _, r := range incoherent {
		if r.Similarity == nil || *r.Similarity >= cfg.Threshold {
			t.Errorf("incoherent record %q has similarity %v", r.Title, r.Similarity)
		}
	}
	for _, r := range coherent {
		if r.Similarity == nil || *r.Similarity < cfg.Threshold {
			t.Errorf("coherent record %q has similarity %v", r.Title, r.Similarity)
		}
	}

	// The input records carry their scores after the run.
	for i, r := range records {
		if r.Similarity == nil {
			t.Errorf("record %d not scored in place", i)
		}
	}

	if len(incoherent) != 1 || incoherent[0].Title != "Unrelated Topic" {
		t.Errorf("incoherent = %+v, want only the unrelated record", incoherent)
	}
}

func TestScoreThresholdBoundaryInclusive(t *testing.T) {
	records := types.Collection{
		{Title: "portfolio optimization", Abstract: "portfolio optimization", Year: 2020},
	}
	// Similarity is exactly 1; a threshold of 1 must keep it coherent.
	incoherent, coherent := Score(records, types.CoherenceConfig{Threshold: 1})
	if len(incoherent) != 0 || len(coherent) != 1 {
		t.Errorf("boundary record routed to incoherent; threshold must be inclusive on the coherent side")
	}
}

func TestScorePreservesOrder(t *testing.T) {
	records := make(types.Collection, 50)
	for i := range records {
		records[i] = types.Record{Title: "portfolio optimization", Abstract: "portfolio optimization studies", Year: 2000 + i}
	}
	_, coherent := Score(records, types.CoherenceConfig{Threshold: 0.2})
	if len(coherent) != len(records) {
		t.Fatalf("len(coherent) = %d, want %d", len(coherent), len(records))
	}
	for i, r := range coherent {
		if r.Year != 2000+i {
			t.Fatalf("order broken at %d: year %d", i, r.Year)
		}
	}
}

func TestScoreEmpty(t *testing.T) {
	incoherent, coherent := Score(nil, types.CoherenceConfig{Threshold: 0.2})
	if len(incoherent) != 0 || len(coherent) != 0 {
		t.Errorf("Score(nil) = %v, %v, want empty", incoherent, coherent)
	}
}
