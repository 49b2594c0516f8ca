// Copyright 2020 ConsenSys AG
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine orchestrates the full selection pipeline of spec.md §2:
// recognize -> synthesize -> (validate + estimate norms, inside synth) ->
// rank -> (optionally) test-sieve. Grounded on the driving logic scattered
// across snfs_find_form/gen_brent_poly/snfs_scale_difficulty/
// snfs_test_sieve in _examples/original_source/factor/nfs/snfs.c, which the
// original leaves inline in its factoring driver rather than as a single
// entry point.
package engine

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/blang/semver/v4"

	"github.com/nfscore/snfspoly/form"
	"github.com/nfscore/snfspoly/internal/fingerprint"
	"github.com/nfscore/snfspoly/internal/snfslog"
	"github.com/nfscore/snfspoly/poly"
	"github.com/nfscore/snfspoly/rank"
	"github.com/nfscore/snfspoly/synth"
	"github.com/nfscore/snfspoly/testsieve"
)

// Version is stamped into log records and the CBOR candidate dump, but not
// into the poly file itself, which spec.md §6.2 fixes at exactly five
// header lines (SPEC_FULL.md §4.P).
var Version = semver.MustParse("0.1.0")

// Result is the outcome of one Select call: the recognized form, every
// ranked candidate, and the index of the chosen winner within Candidates.
type Result struct {
	Form       form.Form
	Candidates []poly.Candidate
	WinnerIdx  int
}

// Winner returns a deep copy of the chosen candidate, safe to retain after
// the engine's own candidate slice is discarded (spec.md §3's "winner must
// be cloned out before the arena is freed").
func (r Result) Winner() poly.Candidate {
	return r.Candidates[r.WinnerIdx].Clone()
}

// Engine runs the selection pipeline for a configured set of bounds and
// collaborators, memoizing synthesis results per (N, bounds) within the
// process (SPEC_FULL.md §4.M).
type Engine struct {
	Config Config

	mu    sync.Mutex
	cache map[string]Result
}

// New constructs an Engine with cfg.
func New(cfg Config) *Engine {
	return &Engine{Config: cfg, cache: make(map[string]Result)}
}

// Select runs the pipeline for N: recognize its form, synthesize and rank
// candidates, and (if warranted) consult the configured test-sieve oracle.
// When recognition fails it returns form.ErrNoFormFound wrapped, so that
// errors.Is matches it (spec.md §7: "caller chooses general NFS"). When no
// synthesized candidate passes validation it returns a wrapped
// poly.ErrInvalidCandidate.
func (e *Engine) Select(n *big.Int) (Result, error) {
	log := snfslog.Logger().With().
		Str("component", "engine.Select").
		Str("engine_version", Version.String()).
		Logger()

	key := fingerprint.CacheKey(n, e.Config.MaxBase, e.Config.MaxBits)
	e.mu.Lock()
	if cached, ok := e.cache[key]; ok {
		e.mu.Unlock()
		log.Debug().Str("cache_key", key).Msg("synthesis cache hit")
		return cached, nil
	}
	e.mu.Unlock()

	f, err := form.Recognize(n, form.Options{MaxBase: e.Config.MaxBase, MaxBits: e.Config.MaxBits})
	if err != nil {
		log.Info().Err(err).Msg("no special form recognized")
		return Result{}, fmt.Errorf("engine: recognize: %w", err)
	}

	candidates := synth.Synthesize(f, n)
	if len(candidates) == 0 {
		return Result{}, fmt.Errorf("engine: synthesize %s: %w", f.Description(), poly.ErrInvalidCandidate)
	}

	rank.Rank(candidates)

	arbiter := testsieve.Arbiter{
		Oracle:      e.Config.Oracle,
		ParamSource: e.Config.ParamSource,
		Threshold:   e.Config.TestSieveThreshold,
		K:           e.Config.TestSieveK,
	}
	winnerIdx := arbiter.Choose(candidates, n, f)

	result := Result{Form: f, Candidates: candidates, WinnerIdx: winnerIdx}

	e.mu.Lock()
	e.cache[key] = result
	e.mu.Unlock()

	log.Info().
		Str("form", f.Description()).
		Int("candidates", len(candidates)).
		Int("winner", winnerIdx).
		Float64("sdifficulty", candidates[winnerIdx].SDifficulty).
		Msg("selection complete")
	return result, nil
}
