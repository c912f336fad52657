package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/krishisahayak/internal/retry"
)

// ResilientOracle wraps an Oracle with a request timeout, retry with
// exponential backoff, and a shared rate limiter so concurrent farmer
// requests cannot stampede the model endpoint. Retries live here, not in the
// pipeline: the pipeline sees exactly one Invoke per request.
type ResilientOracle struct {
	inner       Oracle
	retryConfig retry.Config
	timeout     time.Duration
	limiter     *rate.Limiter
	logger      zerolog.Logger
}

// NewResilientOracle wraps inner with the given timeout and retry policy.
// requestsPerSecond bounds the aggregate call rate across all requests;
// zero disables rate limiting.
func NewResilientOracle(inner Oracle, timeout time.Duration, requestsPerSecond float64, logger zerolog.Logger) *ResilientOracle {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return &ResilientOracle{
		inner:       inner,
		retryConfig: retry.OracleConfig(),
		timeout:     timeout,
		limiter:     limiter,
		logger:      logger,
	}
}

// Invoke calls the wrapped oracle. Timeouts, transient network failures and
// exhausted retries all collapse into ErrAdvisoryGenerationFailed.
func (r *ResilientOracle) Invoke(ctx context.Context, systemText, userText string, maxTokens int, temperature float64) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", ErrAdvisoryGenerationFailed, err)
		}
	}

	var response string
	result := retry.WithBackoff(ctx, r.retryConfig, r.logger, func() (error, string) {
		raw, err := r.inner.Invoke(ctx, systemText, userText, maxTokens, temperature)
		if err != nil {
			if retry.IsRetryableError(err) {
				return err, err.Error()
			}
			return retry.Permanent(err), err.Error()
		}
		response = raw
		return nil, "success"
	})

	if !result.Success {
		r.logger.Error().
			Err(result.LastError).
			Int("attempts", result.Attempts).
			Dur("total_duration", result.TotalDuration).
			Msg("oracle invocation failed")
		return "", fmt.Errorf("%w: %v", ErrAdvisoryGenerationFailed, result.LastError)
	}

	return response, nil
}
