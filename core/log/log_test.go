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

package log_test

import (
	"context"
	"testing"
	"time"

	"github.com/scottmarsland/renderdoc/core/log"
)

var testClock log.Clock

func init() {
	t, err := time.Parse("Mon Jan _2 15:04:05.999 2006", "Mon Jan 22 12:34:56.789 2000")
	if err != nil {
		panic(err)
	}
	testClock = log.FixedClock(t)
}

type testMessage struct {
	msg      string
	args     []interface{}
	values   log.V
	severity log.Severity
	tag      string

	normal string
}

func (m testMessage) send(h log.Handler) {
	ctx := context.Background()
	ctx = log.PutHandler(ctx, h)
	ctx = log.PutTag(ctx, m.tag)
	ctx = log.PutClock(ctx, testClock)
	ctx = m.values.Bind(ctx)
	log.From(ctx).Logf(m.severity, false, m.msg, m.args...)
}

var testMessages = []testMessage{
	{
		msg:      "plain warning",
		severity: log.Warning,
		normal:   "12:34:56.789 W: plain warning",
	}, {
		msg:      "info with values",
		severity: log.Info,
		values:   log.V{"cat": "meow", "dog": "woof"},
		normal:   "12:34:56.789 I: info with values\n    cat: meow\n    dog: woof",
	}, {
		msg:      "tagged %s",
		args:     []interface{}{"error"},
		severity: log.Error,
		tag:      "shader",
		normal:   "12:34:56.789 E: [shader] tagged error",
	},
}

func TestMessages(t *testing.T) {
	for _, m := range testMessages {
		c := &log.Capture{}
		m.send(c)
		got := c.Messages()
		if len(got) != 1 {
			t.Fatalf("Expected 1 message, got %d", len(got))
		}
		if s := got[0].String(); s != m.normal {
			t.Errorf("Message %q formatted as %q, expected %q", m.msg, s, m.normal)
		}
	}
}

func TestFilter(t *testing.T) {
	c := &log.Capture{}
	ctx := log.PutHandler(context.Background(), c)
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "dropped")
	log.I(ctx, "dropped")
	log.W(ctx, "kept")
	log.E(ctx, "kept")
	if n := len(c.Messages()); n != 2 {
		t.Errorf("Expected 2 messages past the filter, got %d", n)
	}
	if n := c.Count(log.Error); n != 1 {
		t.Errorf("Expected 1 error message, got %d", n)
	}
}

func TestBoundValuesShadow(t *testing.T) {
	c := &log.Capture{}
	ctx := log.PutHandler(context.Background(), c)
	ctx = log.V{"id": 1, "kind": "image"}.Bind(ctx)
	ctx = log.V{"id": 2}.Bind(ctx)
	log.I(ctx, "message")
	m := c.Messages()[0]
	if got := m.Values.Get("id"); got != 2 {
		t.Errorf("Expected the innermost value to win, got %v", got)
	}
	if got := m.Values.Get("kind"); got != "image" {
		t.Errorf("Expected outer values to be kept, got %v", got)
	}
	if len(m.Values) != 2 {
		t.Errorf("Expected shadowed values to be dropped, got %d values", len(m.Values))
	}
}

func TestNoHandler(t *testing.T) {
	// Must not panic.
	log.E(context.Background(), "nowhere to go")
}

func TestParseSeverity(t *testing.T) {
	for _, test := range []struct {
		name   string
		expect log.Severity
		ok     bool
	}{
		{"warning", log.Warning, true},
		{"Debug", log.Debug, true},
		{"FATAL", log.Fatal, true},
		{"loud", log.Info, false},
	} {
		got, ok := log.ParseSeverity(test.name)
		if got != test.expect || ok != test.ok {
			t.Errorf("ParseSeverity(%q) returned (%v, %v), expected (%v, %v)", test.name, got, ok, test.expect, test.ok)
		}
	}
}
