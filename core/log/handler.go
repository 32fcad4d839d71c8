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
	"context"
	"io"
	"os"
	"sync"
)

// Handler is the handler of log messages.
type Handler interface {
	Handle(*Message)
	Close()
}

type handler struct {
	handle func(*Message)
	close  func()
}

func (h handler) Handle(m *Message) { h.handle(m) }
func (h handler) Close() {
	if h.close != nil {
		h.close()
	}
}

// NewHandler returns a Handler that calls handle for each message and close
// when the handler is closed.
func NewHandler(handle func(*Message), close func()) Handler {
	return handler{handle, close}
}

type handlerKeyTy string

const handlerKey handlerKeyTy = "log.handlerKey"

// PutHandler returns a new context with the Handler assigned to h.
func PutHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey, h)
}

// GetHandler returns the Handler assigned to ctx.
func GetHandler(ctx context.Context) Handler {
	out, _ := ctx.Value(handlerKey).(Handler)
	return out
}

// Writer returns a Handler that writes each message on its own line to w.
// The handler is safe to use from multiple goroutines.
func Writer(w io.Writer) Handler {
	mutex := sync.Mutex{}
	return handler{
		handle: func(m *Message) {
			mutex.Lock()
			defer mutex.Unlock()
			io.WriteString(w, m.String())
			io.WriteString(w, "\n")
		},
	}
}

// Std returns a Handler that writes messages of Error and above to os.Stderr
// and everything else to os.Stdout.
func Std() Handler {
	out, err := Writer(os.Stdout), Writer(os.Stderr)
	return handler{
		handle: func(m *Message) {
			if m.Severity >= Error {
				err.Handle(m)
			} else {
				out.Handle(m)
			}
		},
	}
}

// Capture is a Handler that records every message it handles.
type Capture struct {
	mutex    sync.Mutex
	messages []*Message
}

// Handle implements Handler.
func (c *Capture) Handle(m *Message) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.messages = append(c.messages, m)
}

// Close implements Handler.
func (c *Capture) Close() {}

// Messages returns a copy of the recorded messages.
func (c *Capture) Messages() []*Message {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]*Message{}, c.messages...)
}

// Count returns the number of recorded messages of at least severity s.
func (c *Capture) Count(s Severity) int {
	n := 0
	for _, m := range c.Messages() {
		if m.Severity >= s {
			n++
		}
	}
	return n
}

// Fork returns a Handler that forwards all messages to all of handlers.
func Fork(handlers ...Handler) Handler {
	return handler{
		handle: func(m *Message) {
			for _, h := range handlers {
				h.Handle(m)
			}
		},
		close: func() {
			for _, h := range handlers {
				h.Close()
			}
		},
	}
}
