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

package textdiff

import (
	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/config"
)

// IgnoreWhitespace compares lines with leading and trailing whitespace removed. The script still
// contains the lines as they are in the input.
func IgnoreWhitespace() listdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// Sorted orders the lines of a [Report] by their content instead of the order in which the edits
// were found. Edits of identical lines are ordered by position.
func Sorted() listdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Sorted = true
		return config.Sorted
	}
}
