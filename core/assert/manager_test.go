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

package assert_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/assert"
	"github.com/scottmarsland/renderdoc/core/fault"
)

type fakeT struct {
	fatal bytes.Buffer
	error bytes.Buffer
	log   bytes.Buffer
}

func (f *fakeT) Fatal(args ...interface{}) {
	fmt.Fprintln(&f.fatal, args...)
}
func (f *fakeT) Error(args ...interface{}) {
	fmt.Fprintln(&f.error, args...)
}
func (f *fakeT) Log(args ...interface{}) {
	fmt.Fprintln(&f.log, args...)
}

func TestPassingAssertionsAreSilent(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	ok := a.For("value").That(3).Equals(3) &&
		a.For("nil").That((*int)(nil)).IsNil() &&
		a.For("slice").ThatSlice([]int{1, 2}).Equals([]int{1, 2}) &&
		a.For("deep").That(struct{ a []int }{[]int{1}}).DeepEquals(struct{ a []int }{[]int{1}}) &&
		a.For("string").ThatString("shader module").Contains("module") &&
		a.For("error").ThatError(nil).Succeeded()
	if !ok {
		t.Errorf("Passing assertions returned false")
	}
	if fake.error.Len() != 0 || fake.fatal.Len() != 0 {
		t.Errorf("Passing assertions wrote output: %q %q", fake.error.String(), fake.fatal.String())
	}
}

func TestFailingAssertionsReport(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	if a.For("value").That(3).Equals(4) {
		t.Errorf("Equals(4) on 3 succeeded")
	}
	if a.For("slice").ThatSlice([]int{1}).IsLength(2) {
		t.Errorf("IsLength(2) on a single element slice succeeded")
	}
	if a.For("deep").That([]int{1, 2}).DeepEquals([]int{1, 3}) {
		t.Errorf("DeepEquals on different slices succeeded")
	}
	if got := strings.Count(fake.error.String(), "Error:"); got != 3 {
		t.Errorf("Expected 3 reported errors, got %d:\n%s", got, fake.error.String())
	}
	a.For("critical").Critical().That(true).Equals(false)
	if !strings.HasPrefix(fake.fatal.String(), "Critical:critical") {
		t.Errorf("Critical assertion was not reported as fatal: %q", fake.fatal.String())
	}
}

func TestErrorCause(t *testing.T) {
	const cause = fault.Const("root cause")
	fake := &fakeT{}
	err := errors.Wrap(cause, "wrapped")
	if !assert.To(fake).For("cause").ThatError(err).HasCause(cause) {
		t.Errorf("HasCause did not see through errors.Wrap: %s", fake.error.String())
	}
	if !assert.To(fake).For("message").ThatError(err).HasMessageContaining("wrapped") {
		t.Errorf("HasMessageContaining failed: %s", fake.error.String())
	}
}

func TestSameAs(t *testing.T) {
	fake := &fakeT{}
	a, b := new(int), new(int)
	if !assert.To(fake).For("same").That(a).IsSameAs(a) {
		t.Errorf("A pointer was not the same as itself")
	}
	if assert.To(fake).For("different").That(a).IsSameAs(b) {
		t.Errorf("Distinct pointers were reported as the same")
	}
}
