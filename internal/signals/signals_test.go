//go:build !windows
// +build !windows

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
	"fmt"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsTermination(t *testing.T) {
	for _, sig := range []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT} {
		require.True(t, IsTermination(sig), sig.String())
	}
	for _, sig := range []os.Signal{syscall.SIGALRM, syscall.SIGCHLD, syscall.SIGPIPE} {
		require.False(t, IsTermination(sig), sig.String())
	}
}

func TestHandle(t *testing.T) {
	var mu sync.Mutex
	logs := []string{}
	Debug = func(args ...interface{}) {
		mu.Lock()
		defer mu.Unlock()
		logs = append(logs, fmt.Sprint(args...))
	}

	c := make(chan os.Signal, 4)
	c <- syscall.SIGALRM
	c <- syscall.SIGCHLD
	c <- syscall.SIGTERM

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handle(c, make(chan struct{}), cancel)

	require.Error(t, ctx.Err(), "termination signal did not cancel the run")

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{
		fmt.Sprintf("Encountered signal: %s", syscall.SIGALRM.String()),
		fmt.Sprintf("Encountered signal: %s", syscall.SIGCHLD.String()),
		fmt.Sprintf("Encountered signal: %s", syscall.SIGTERM.String()),
		fmt.Sprintf("Canceling run from signal: %s", syscall.SIGTERM.String()),
	}, logs)
}

func TestWatchStop(t *testing.T) {
	Debug = func(args ...interface{}) {}

	ctx, stop := Watch(context.Background())
	require.NoError(t, ctx.Err())

	stop()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not cancel the watched context")
	}
}

func TestWatchCancelsOnSignal(t *testing.T) {
	ctx, stop := Watch(context.Background())
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGHUP))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("SIGHUP did not cancel the watched context")
	}
}
