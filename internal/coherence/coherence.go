// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coherence scores how much a record's abstract lexically
// overlaps its own title. Each record is scored against a private
// two-document corpus of exactly its title and its abstract: term
// frequencies are weighted by smoothed inverse document frequency over
// that pair, and the score is the cosine between the two weighted
// vectors. IDF is never computed across records, so the score measures
// title/abstract overlap, not cross-record term rarity.
package coherence

import (
	"math"
	"runtime"
	"strings"
	"sync"
	"unicode"

	"github.com/pdiddy/review-triage/pkg/types"
)

// Similarity returns the TF-IDF cosine similarity between title and
// abstract in [0,1]. If either text has no in-vocabulary terms after
// stop-word removal, the similarity is 0: no vocabulary means no
// shared vocabulary.
func Similarity(title, abstract string) float64 {
	tf1 := termFrequencies(title)
	tf2 := termFrequencies(abstract)
	if len(tf1) == 0 || len(tf2) == 0 {
		return 0
	}

	// Smoothed IDF over the two-document corpus: ln((1+n)/(1+df)) + 1
	// with n = 2, so terms in both documents weigh 1 and terms in one
	// weigh ln(3/2) + 1.
	const (
		idfShared = 1.0
		idfSingle = 1.4054651081081644 // math.Log(1.5) + 1
	)

	var dot, norm1, norm2 float64
	for term, f1 := range tf1 {
		if f2, shared := tf2[term]; shared {
			w1 := float64(f1) * idfShared
			w2 := float64(f2) * idfShared
			dot += w1 * w2
			norm1 += w1 * w1
			norm2 += w2 * w2
		} else {
			w := float64(f1) * idfSingle
			norm1 += w * w
		}
	}
	for term, f2 := range tf2 {
		if _, shared := tf1[term]; !shared {
			w := float64(f2) * idfSingle
			norm2 += w * w
		}
	}

	if dot == 0 {
		return 0
	}
	return math.Min(1, dot/math.Sqrt(norm1*norm2))
}

// termFrequencies tokenizes text and counts occurrences of each
// in-vocabulary term. Tokens are maximal runs of letters, digits, and
// underscores, lowercased; single-character tokens and stop words are
// dropped.
func termFrequencies(text string) map[string]int {
	tf := make(map[string]int)
	var token []rune
	flush := func() {
		if len(token) >= 2 {
			term := string(token)
			if !englishStopWords[term] {
				tf[term]++
			}
		}
		token = token[:0]
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			token = append(token, r)
			continue
		}
		flush()
	}
	flush()
	return tf
}

// Score computes the similarity of every record, stores it on the
// record, and partitions the collection at the threshold: below it
// incoherent, at or above it coherent. The records themselves carry the
// score afterwards, so the caller's collection shows it too. Records
// are scored concurrently; each worker touches only its own index, and
// both partitions come out in input order.
func Score(records types.Collection, cfg types.CoherenceConfig) (incoherent, coherent types.Collection) {
	workers := runtime.NumCPU()
	if workers > len(records) {
		workers = len(records)
	}

	var wg sync.WaitGroup
	indexes := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				sim := Similarity(records[i].Title, records[i].Abstract)
				records[i].Similarity = &sim
			}
		}()
	}
	for i := range records {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	for _, r := range records {
		if *r.Similarity < cfg.Threshold {
			incoherent = append(incoherent, r)
		} else {
			coherent = append(coherent, r)
		}
	}
	return incoherent, coherent
}
