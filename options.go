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

package listdiff

import "znkr.io/listdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Limit sets the maximum number of edits. If the shortest edit script has more edits, the search
// is abandoned and the edits found so far are returned in a [Script] with Truncated set.
//
// A negative limit disables truncation, this is the default.
func Limit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Limit = max(NoLimit, n)
		return config.Limit
	}
}

// Presorted declares that both inputs are sorted consistently with the comparison function. The
// inputs are then compared in a single pass in O(N) time.
//
// This is not verified. Unsorted inputs produce an incorrect edit script. The edit limit is
// ignored.
func Presorted() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Presorted = true
		return config.Presorted
	}
}
