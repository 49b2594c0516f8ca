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

package engine

import "github.com/nfscore/snfspoly/testsieve"

// Config carries every tunable the original collects under fact_obj_t's
// nfs_obj grouping (SPEC_FULL.md §4.J).
type Config struct {
	MaxBase            int
	MaxBits            int
	Verbosity          int
	TestSieveThreshold float64
	TestSieveK         int
	Oracle             testsieve.Oracle
	ParamSource        testsieve.ParamSource
}

// DefaultConfig returns spec.md §4.D's default bounds and a conservative
// test-sieve threshold.
func DefaultConfig() Config {
	return Config{
		MaxBase:            100,
		MaxBits:            1000,
		Verbosity:          0,
		TestSieveThreshold: 100.0,
		TestSieveK:         3,
	}
}
