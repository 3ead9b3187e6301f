/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Debug is defined to simplify testing of logrus.Debug calls.
var Debug func(args ...interface{}) = logrus.Debug

// terminationSignals end the run when received.
var terminationSignals = []os.Signal{
	syscall.SIGHUP,
	syscall.SIGINT,
	syscall.SIGQUIT,
	syscall.SIGTERM,
}

// Watch returns a copy of parent that is canceled when the process receives
// a termination signal. The returned stop function releases the signal
// handler and must be called once the run is over.
func Watch(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	c := make(chan os.Signal, 1)
	signal.Notify(c, terminationSignals...)

	done := make(chan struct{})
	go func() {
		Debug("Watching for OS Signals...")
		handle(c, done, cancel)
	}()

	return ctx, func() {
		signal.Stop(c)
		close(done)
		cancel()
	}
}

// handle consumes signals until a termination signal arrives or done is
// closed. On termination it cancels the run.
func handle(c <-chan os.Signal, done <-chan struct{}, cancel context.CancelFunc) {
	for {
		select {
		case sig := <-c:
			Debug("Encountered signal: ", sig.String())
			if IsTermination(sig) {
				Debug("Canceling run from signal: ", sig.String())
				cancel()
				return
			}
		case <-done:
			return
		}
	}
}

// IsTermination reports whether sig ends the run.
func IsTermination(sig os.Signal) bool {
	for _, s := range terminationSignals {
		if sig == s {
			return true
		}
	}
	return false
}
