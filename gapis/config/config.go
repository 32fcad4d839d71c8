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

// Package config contains a list of build configuration flags.
package config

const (
	// CheckCreationInvariants turns creation-record contract violations
	// (unregistered references, duplicate inserts, misaligned bytecode) into
	// panics. When false they are logged and the record degrades.
	CheckCreationInvariants = false
	// LogReflectionComputation logs every shader reflection cache fill.
	LogReflectionComputation = false
)
