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

// Package snfslog wraps a single zerolog.Logger for the whole engine, the
// way github.com/consensys/gnark/logger wraps zerolog for gnark's prover and
// solver packages (see famouswizard-gnark/backend/fflonk/bn254/prove.go,
// which calls logger.Logger().With()...Logger() to attach call-scoped fields,
// then log.Debug().Dur("took", ...).Msg("prover done")).
package snfslog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)
)

// Logger returns the package-wide logger. Callers attach request-scoped
// fields with .With()...Logger(), exactly like gnark's logger package.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &log
}

// SetLogger replaces the package-wide logger, for embedding in a larger
// application that already owns its own zerolog configuration.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// SetVerbosity maps the engine's integer verbosity knob (spec.md §6.1) onto
// zerolog levels: the original gates diagnostics behind VFLAG > 0 and
// VFLAG > 1, a two-tier scheme this mirrors with three tiers for finer
// downstream control.
func SetVerbosity(v int) {
	var level zerolog.Level
	switch {
	case v <= 0:
		level = zerolog.WarnLevel
	case v == 1:
		level = zerolog.InfoLevel
	default:
		level = zerolog.DebugLevel
	}
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(level)
}
