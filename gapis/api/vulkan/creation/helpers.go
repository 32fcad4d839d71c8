// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package creation

import (
	"context"

	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
	"github.com/scottmarsland/renderdoc/gapis/config"
	"golang.org/x/exp/constraints"
)

// sized returns a zeroed slice of exactly n elements.
func sized[T any, N constraints.Integer](n N) []T {
	if n < 0 {
		n = 0
	}
	return make([]T, n)
}

// copySized returns a slice of exactly n elements holding the head of src.
// Missing elements are zero.
func copySized[T any, N constraints.Integer](src []T, n N) []T {
	out := sized[T](n)
	copy(out, src)
	return out
}

// convert maps every element of src through f.
func convert[In, Out any](src []In, f func(In) Out) []Out {
	out := make([]Out, len(src))
	for i, v := range src {
		out[i] = f(v)
	}
	return out
}

// optional returns def when the block is absent and the converted block
// otherwise.
func optional[In, Out any](block *In, def Out, f func(*In) Out) Out {
	if block == nil {
		return def
	}
	return f(block)
}

func boolean(b vulkan.VkBool32) bool { return b != 0 }

// invariant reports a violated creation contract. It panics when
// config.CheckCreationInvariants is set and logs an error otherwise.
// It returns ok.
func invariant(ctx context.Context, ok bool, format string, args ...interface{}) bool {
	if ok {
		return true
	}
	if config.CheckCreationInvariants {
		panic(errors.Errorf(format, args...))
	}
	log.E(ctx, format, args...)
	return false
}
