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

import (
	"cmp"
	"reflect"
)

type comparer[T any] interface {
	Compare(T) int
}

// naturalOrder returns a comparison function for T if T has a natural order.
func naturalOrder[T any]() (func(a, b T) int, bool) {
	var zero T
	if _, ok := any(zero).(comparer[T]); ok {
		return func(a, b T) int { return any(a).(comparer[T]).Compare(b) }, true
	}

	// Fast path for predeclared types.
	var f any
	switch any(zero).(type) {
	case int:
		f = cmp.Compare[int]
	case int8:
		f = cmp.Compare[int8]
	case int16:
		f = cmp.Compare[int16]
	case int32:
		f = cmp.Compare[int32]
	case int64:
		f = cmp.Compare[int64]
	case uint:
		f = cmp.Compare[uint]
	case uint8:
		f = cmp.Compare[uint8]
	case uint16:
		f = cmp.Compare[uint16]
	case uint32:
		f = cmp.Compare[uint32]
	case uint64:
		f = cmp.Compare[uint64]
	case uintptr:
		f = cmp.Compare[uintptr]
	case float32:
		f = cmp.Compare[float32]
	case float64:
		f = cmp.Compare[float64]
	case string:
		f = cmp.Compare[string]
	}
	if f != nil {
		return f.(func(a, b T) int), true
	}

	// Named types, e.g. type Level int.
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	default:
		return nil, false
	}
}
