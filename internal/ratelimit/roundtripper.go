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

package ratelimit

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// DefaultBurst allows a short burst, enough for the handful of calls a
	// single run makes (token exchange, lookup, mutation).
	DefaultBurst = 3

	// backoffDuration is how long to pause after receiving a 429 response.
	backoffDuration = 5 * time.Second

	// backoffCooldown is the minimum interval between backoff events so
	// repeated 429s do not keep extending the pause.
	backoffCooldown = 10 * time.Second
)

// RoundTripper wraps an http.RoundTripper with rate limiting and adaptive
// backoff on 429 responses. It sits beneath the OAuth2 transport so both
// token exchanges and IAM API calls count against the same limit.
type RoundTripper struct {
	name         string
	rateLimiter  *rate.Limiter
	roundTripper http.RoundTripper

	mu            sync.Mutex
	lastBackoff   time.Time
	backoffUntil  time.Time
	totalWaited   time.Duration
	totalRequests int64
}

var _ http.RoundTripper = &RoundTripper{}

// NewRoundTripper creates a rate-limited transport on top of
// http.DefaultTransport.
func NewRoundTripper(name string, limit rate.Limit) *RoundTripper {
	return NewRoundTripperWithTransport(name, limit, DefaultBurst, http.DefaultTransport)
}

// NewRoundTripperWithTransport creates a rate-limited transport on top of
// base. A nil base means http.DefaultTransport.
func NewRoundTripperWithTransport(
	name string, limit rate.Limit, burst int, base http.RoundTripper,
) *RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RoundTripper{
		name:         name,
		rateLimiter:  rate.NewLimiter(limit, burst),
		roundTripper: base,
	}
}

// RoundTrip executes the HTTP request with rate limiting. If a 429 response
// is received, an adaptive backoff pauses future requests.
func (rt *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	rt.waitForBackoff(ctx)

	start := time.Now()
	if err := rt.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	rt.mu.Lock()
	rt.totalRequests++
	rt.totalWaited += time.Since(start)
	rt.mu.Unlock()

	resp, err := rt.roundTripper.RoundTrip(r)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		rt.triggerBackoff()
	}

	return resp, nil
}

// Stats returns the number of requests sent and the time spent waiting
// for the limiter.
func (rt *RoundTripper) Stats() (totalRequests int64, totalWaited time.Duration) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.totalRequests, rt.totalWaited
}

// Name returns the name of this rate limiter.
func (rt *RoundTripper) Name() string {
	return rt.name
}

func (rt *RoundTripper) waitForBackoff(ctx context.Context) {
	rt.mu.Lock()
	until := rt.backoffUntil
	rt.mu.Unlock()

	if until.IsZero() || time.Now().After(until) {
		return
	}

	wait := time.Until(until)
	logrus.WithField("limiter", rt.name).Warnf(
		"Backoff active, waiting %s before next request", wait.Round(time.Millisecond),
	)

	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}

	rt.mu.Lock()
	rt.totalWaited += wait
	rt.mu.Unlock()
}

func (rt *RoundTripper) triggerBackoff() {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	now := time.Now()
	if now.Sub(rt.lastBackoff) < backoffCooldown {
		return
	}

	rt.lastBackoff = now
	rt.backoffUntil = now.Add(backoffDuration)
	logrus.WithField("limiter", rt.name).Warnf(
		"Received 429 Too Many Requests, backing off for %s", backoffDuration,
	)
}
