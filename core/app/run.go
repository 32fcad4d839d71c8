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

// Package app provides the common entry point for command line tools.
package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/fault"
	"github.com/scottmarsland/renderdoc/core/log"
)

var (
	// Name is the full name of the application
	Name string
	// ExitFuncForTesting can be set to change the behaviour when there is a command line parsing failure.
	// It defaults to os.Exit
	ExitFuncForTesting = os.Exit
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
)

// ErrUsage is returned by a task to report bad command line arguments.
const ErrUsage = fault.Const("Invalid usage")

// Task is the signature of the function run by Run.
type Task func(ctx context.Context) error

var logLevel = flag.String("log-level", "Info", "the minimum severity of log messages to display")

func init() {
	Name = filepath.Base(os.Args[0])
}

// Usage prints the usage text for the application, followed by message.
func Usage(message string, args ...interface{}) {
	out := flag.CommandLine.Output()
	if ShortHelp != "" {
		fmt.Fprintln(out, ShortHelp)
	}
	fmt.Fprintf(out, "Usage: %s [flags] %s\n", Name, ShortUsage)
	flag.PrintDefaults()
	if message != "" {
		fmt.Fprintf(out, "\n"+message+"\n", args...)
	}
}

// Run parses the command line, builds a logging context that is cancelled on
// interrupt and runs main with it. A non-nil error from main is logged and the
// process exits with a non-zero code.
func Run(main Task) {
	flag.CommandLine.Usage = func() { Usage("") }
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = log.PutHandler(ctx, log.Std())
	ctx = log.PutClock(ctx, log.NoClock)
	ctx = log.PutTag(ctx, Name)
	severity, ok := log.ParseSeverity(*logLevel)
	if !ok {
		Usage("Unknown log level %q", *logLevel)
		ExitFuncForTesting(2)
		return
	}
	ctx = log.PutFilter(ctx, log.SeverityFilter(severity))

	err := main(ctx)
	switch {
	case err == nil:
	case errors.Cause(err) == ErrUsage:
		Usage("%v", err)
		ExitFuncForTesting(2)
	default:
		log.E(ctx, "%v", err)
		ExitFuncForTesting(1)
	}
}
