package httpclient

import (
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy is the exponential backoff applied to every outbound request.
// The wait before retry n (0-based) is min(MaxInterval, MinInterval * Exponent^n).
type RetryPolicy struct {
	MaxRetries  int
	MinInterval time.Duration
	MaxInterval time.Duration
	Exponent    float64
}

// DefaultRetryPolicy mirrors the index service's published client guidance.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:  25,
		MinInterval: time.Second,
		MaxInterval: 15 * time.Second,
		Exponent:    2,
	}
}

// Delay returns the wait before the given 0-based retry.
func (p RetryPolicy) Delay(retry int) time.Duration {
	d := float64(p.MinInterval) * math.Pow(p.Exponent, float64(retry))
	if d > float64(p.MaxInterval) || math.IsInf(d, 1) {
		return p.MaxInterval
	}
	return time.Duration(d)
}

// newBackOff builds a fresh, jitter-free schedule. BackOff values are stateful,
// so one is created per request.
func (p RetryPolicy) newBackOff() backoff.BackOff {
	exp := &backoff.ExponentialBackOff{
		InitialInterval:     p.MinInterval,
		RandomizationFactor: 0,
		Multiplier:          p.Exponent,
		MaxInterval:         p.MaxInterval,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	exp.Reset()

	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithMaxRetries(exp, uint64(retries))
}
