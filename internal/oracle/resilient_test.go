package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedOracle fails a fixed number of times before answering.
type scriptedOracle struct {
	failures int
	err      error
	answer   string
	calls    int
}

func (s *scriptedOracle) Invoke(ctx context.Context, systemText, userText string, maxTokens int, temperature float64) (string, error) {
	s.calls++
	if s.calls <= s.failures {
		return "", s.err
	}
	return s.answer, nil
}

func fastResilient(inner Oracle) *ResilientOracle {
	r := NewResilientOracle(inner, time.Second, 0, zerolog.Nop())
	r.retryConfig.BaseDelay = time.Millisecond
	r.retryConfig.MaxDelay = 5 * time.Millisecond
	r.retryConfig.Jitter = false
	return r
}

func TestResilientOraclePassesThrough(t *testing.T) {
	inner := &scriptedOracle{answer: "1. Do a soil test"}
	r := fastResilient(inner)

	got, err := r.Invoke(context.Background(), "system", "user", 1024, 0.3)

	require.NoError(t, err)
	assert.Equal(t, "1. Do a soil test", got)
	assert.Equal(t, 1, inner.calls)
}

func TestResilientOracleRetriesTransientFailures(t *testing.T) {
	inner := &scriptedOracle{
		failures: 2,
		err:      errors.New("503 service unavailable"),
		answer:   "1. Apply fertilizer",
	}
	r := fastResilient(inner)

	got, err := r.Invoke(context.Background(), "system", "user", 1024, 0.3)

	require.NoError(t, err)
	assert.Equal(t, "1. Apply fertilizer", got)
	assert.Equal(t, 3, inner.calls)
}

func TestResilientOracleFailsFastOnPermanentErrors(t *testing.T) {
	inner := &scriptedOracle{
		failures: 10,
		err:      errors.New("invalid api key"),
	}
	r := fastResilient(inner)

	_, err := r.Invoke(context.Background(), "system", "user", 1024, 0.3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAdvisoryGenerationFailed)
	assert.Equal(t, 1, inner.calls)
}

func TestResilientOracleWrapsExhaustedRetries(t *testing.T) {
	inner := &scriptedOracle{
		failures: 10,
		err:      errors.New("connection refused"),
	}
	r := fastResilient(inner)

	_, err := r.Invoke(context.Background(), "system", "user", 1024, 0.3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAdvisoryGenerationFailed)
	assert.Equal(t, 4, inner.calls)
}

func TestResilientOracleHonorsCancelledContext(t *testing.T) {
	inner := &scriptedOracle{answer: "unreachable"}
	r := NewResilientOracle(inner, time.Second, 0.001, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Invoke(ctx, "system", "user", 1024, 0.3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAdvisoryGenerationFailed)
}
