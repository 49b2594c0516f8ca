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

// Package testsieve implements the test-sieve arbiter (component I) of
// spec.md §4.I: when any of the top K candidates has a scaled difficulty
// above the threshold, delegate the choice among them to an external
// test-sieving oracle. How close the candidates are to each other is not
// checked. Grounded on snfs_test_sieve in
// _examples/original_source/factor/nfs/snfs.c.
package testsieve

import (
	"errors"
	"math/big"

	"github.com/nfscore/snfspoly/form"
	"github.com/nfscore/snfspoly/internal/fingerprint"
	"github.com/nfscore/snfspoly/internal/snfslog"
	"github.com/nfscore/snfspoly/poly"
)

// ErrOracleUnavailable is logged (never returned to the caller) when the
// oracle signals failure; the arbiter degrades to candidate 0 (spec.md §7:
// "TestSieveUnavailable — arbiter degrades to returning candidate 0 with a
// warning").
var ErrOracleUnavailable = errors.New("snfs: test-sieve oracle unavailable")

// Job is one sieving job descriptor handed to the oracle: a candidate poly,
// a stable job ID, and the ggnfs parameters populated by a ParamSource.
type Job struct {
	ID        string
	Candidate poly.Candidate
	Params    map[string]string
}

// ParamSource realizes get_ggnfs_params(fobj, job): populate Params in place
// for a job built from a ranked candidate.
type ParamSource interface {
	GetGGNFSParams(job *Job) error
}

// Oracle realizes test_sieve(fobj, jobs, K) -> best index or negative on
// failure.
type Oracle interface {
	TestSieve(jobs []Job) (bestIndex int, err error)
}

// Arbiter holds the external collaborators and threshold used to decide
// whether test sieving is worth invoking.
type Arbiter struct {
	Oracle      Oracle
	ParamSource ParamSource
	Threshold   float64
	K           int // defaults to 3 if <= 0
}

func (a Arbiter) topK() int {
	if a.K <= 0 {
		return 3
	}
	return a.K
}

// Choose implements spec.md §4.I. candidates must already be ranked
// ascending by sdifficulty (rank.Rank). It returns the index into
// candidates of the chosen winner.
func (a Arbiter) Choose(candidates []poly.Candidate, n *big.Int, f form.Form) int {
	log := snfslog.Logger().With().Str("component", "testsieve.Arbiter").Logger()

	if len(candidates) < 2 {
		return 0
	}

	k := a.topK()
	if k > len(candidates) {
		k = len(candidates)
	}

	dotest := false
	for i := 0; i < k; i++ {
		if candidates[i].SDifficulty > a.Threshold {
			dotest = true
			break
		}
	}
	if !dotest {
		return 0
	}
	if a.Oracle == nil {
		log.Warn().Msg("test sieving justified but no oracle configured, falling back to candidate 0")
		return 0
	}

	jobs := make([]Job, k)
	for i := 0; i < k; i++ {
		jobs[i] = Job{
			ID:        fingerprint.JobID(n, f.Description(), i),
			Candidate: candidates[i],
			Params:    map[string]string{},
		}
		if a.ParamSource != nil {
			if err := a.ParamSource.GetGGNFSParams(&jobs[i]); err != nil {
				log.Warn().Err(err).Int("index", i).Msg("get_ggnfs_params failed")
			}
		}
	}

	id, err := a.Oracle.TestSieve(jobs)
	if err != nil || id < 0 || id >= k {
		log.Warn().Err(ErrOracleUnavailable).AnErr("cause", err).Int("index", id).Msg("test_sieve oracle failed, falling back to candidate 0")
		return 0
	}
	return id
}
