// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import "time"

// RetryPolicy is a bounded-attempt, fixed-delay retry wrapper. The firmware
// probe and the raw read transfer both poll the device in a retry loop; this
// is the single abstraction behind both.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration

	// sleep is swappable so tests can observe delays without waiting.
	sleep func(time.Duration)
}

// WithRetries invokes op up to p.Attempts times, sleeping p.Delay between
// failed attempts, and returns the first successful result. Once attempts
// are exhausted the last observed error is returned.
func WithRetries[T any](p RetryPolicy, op func() (T, error)) (T, error) {
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var result T
	var err error
	for attempt := 0; attempt < p.Attempts; attempt++ {
		if attempt > 0 && p.Delay > 0 {
			sleep(p.Delay)
		}
		result, err = op()
		if err == nil {
			return result, nil
		}
	}
	return result, err
}
