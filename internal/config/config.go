// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// listdiff.Option.
package config

// NoLimit disables truncation.
const NoLimit = -1

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Limit is the maximum number of edits before the search is abandoned. A negative value means
	// that there is no limit.
	Limit int

	// If set, the inputs are assumed to be sorted consistently with the comparison function and
	// the linear time merge algorithm is used.
	Presorted bool

	// If set, textdiff compares lines with leading and trailing whitespace removed.
	IgnoreWhitespace bool

	// If set, textdiff reports are sorted by line content instead of discovery order.
	Sorted bool
}

// Default is the default configuration.
var Default = Config{
	Limit:            NoLimit,
	Presorted:        false,
	IgnoreWhitespace: false,
	Sorted:           false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Limit Flag = 1 << iota
	Presorted
	IgnoreWhitespace
	Sorted
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Limit:
		return "listdiff.Limit"
	case Presorted:
		return "listdiff.Presorted"
	case IgnoreWhitespace:
		return "textdiff.IgnoreWhitespace"
	case Sorted:
		return "textdiff.Sorted"
	default:
		panic("never reached")
	}
}
