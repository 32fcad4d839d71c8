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

package log

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Message is a single logging entry.
type Message struct {
	// Text is the message body.
	Text string
	// Time is the time the message was created.
	Time time.Time
	// Severity is the severity of the message.
	Severity Severity
	// StopProcess indicates the message asks for the process to stop.
	StopProcess bool
	// Tag is the optional tag of the message.
	Tag string
	// Values is the list of values bound to the logger, sorted by name.
	Values Values
}

// Value is a named value bound to a message.
type Value struct {
	Name  string
	Value interface{}
}

// Values is a sortable list of Value.
type Values []*Value

func (v Values) Len() int           { return len(v) }
func (v Values) Less(i, j int) bool { return v[i].Name < v[j].Name }
func (v Values) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }

// Get returns the value with the given name, or nil if there is none.
func (v Values) Get(name string) interface{} {
	i := sort.Search(len(v), func(i int) bool { return v[i].Name >= name })
	if i < len(v) && v[i].Name == name {
		return v[i].Value
	}
	return nil
}

// String returns the message in the normal style:
// <severity>: [<tag>] <text> <name>: <value>...
func (m *Message) String() string {
	sb := strings.Builder{}
	if !m.Time.IsZero() {
		sb.WriteString(m.Time.Format("15:04:05.000 "))
	}
	sb.WriteRune(m.Severity.Short())
	sb.WriteString(": ")
	if m.Tag != "" {
		sb.WriteString("[")
		sb.WriteString(m.Tag)
		sb.WriteString("] ")
	}
	sb.WriteString(m.Text)
	for _, v := range m.Values {
		fmt.Fprintf(&sb, "\n    %v: %v", v.Name, v.Value)
	}
	return sb.String()
}
