package hwid

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/valentin-kaiser/hwident/logging"
	"github.com/valentin-kaiser/hwident/wmi"
)

var logger = logging.GetPackageLogger("hwid")

// collector reads one representative value per enabled category from the
// attribute source
type collector struct {
	source wmi.Source
	cfg    Config
}

// collect gathers the enabled categories. Queries run concurrently, each
// result lands in a fixed slot so the output never depends on completion
// order. An unavailable category maps to an empty string, absence is
// normal here and never surfaces as an error.
func (c *collector) collect(ctx context.Context) map[Category]string {
	categories := c.cfg.categories()
	values := make([]string, len(categories))

	var group errgroup.Group
	for i, category := range categories {
		group.Go(func() error {
			values[i] = c.component(ctx, category)
			return nil
		})
	}
	_ = group.Wait()

	components := make(map[Category]string, len(categories))
	for i, category := range categories {
		components[category] = values[i]
	}
	return components
}

// component resolves a single category to its value or an empty string
func (c *collector) component(ctx context.Context, category Category) string {
	if category == CategoryTPM {
		return c.tpm(ctx)
	}

	spec := queries[category]
	logger.Info().
		Field("category", string(category)).
		Field("class", spec.class).
		Msg("collecting hardware component")

	value, ok := retryQuery(ctx, c.cfg.attempts(), expBackoff(backoffBase), func(ctx context.Context) (string, bool) {
		return c.attempt(ctx, category, spec)
	})
	if !ok {
		logger.Warn().
			Field("category", string(category)).
			Field("attempts", c.cfg.attempts()).
			Msg("component unavailable after all attempts")
		return ""
	}
	return value
}

// attempt issues one bounded query. The boolean reports whether the
// outcome is final: found and not-found end the retry loop, timeouts and
// transient failures allow another attempt.
func (c *collector) attempt(ctx context.Context, category Category, spec querySpec) (string, bool) {
	qctx, cancel := context.WithTimeout(ctx, c.cfg.queryTimeout())
	defer cancel()

	result := c.source.Query(qctx, spec.class, spec.property)
	switch result.State {
	case wmi.StateFound:
		return componentValue(result), true
	case wmi.StateNotFound:
		logger.Debug().
			Field("category", string(category)).
			Msg("component not present")
		return "", true
	case wmi.StateTimedOut:
		logger.Debug().
			Field("category", string(category)).
			Field("timeout_ms", c.cfg.QueryTimeoutMS).
			Msg("attribute query timed out")
		return "", false
	default:
		logger.Debug().
			Err(result.Err).
			Field("category", string(category)).
			Msg("attribute query failed")
		return "", false
	}
}

// tpm resolves the TPM category. The metadata class is probed first so
// machines without a TPM resolve quietly instead of producing a failing
// value query.
func (c *collector) tpm(ctx context.Context) string {
	spec := queries[CategoryTPM]
	logger.Info().
		Field("category", string(CategoryTPM)).
		Field("class", spec.class).
		Msg("collecting hardware component")

	pctx, cancel := context.WithTimeout(ctx, c.cfg.queryTimeout())
	exists, err := c.source.ClassExists(pctx, spec.class)
	cancel()
	if err != nil {
		logger.Warn().
			Err(err).
			Field("category", string(CategoryTPM)).
			Msg("tpm class probe failed")
		return ""
	}
	if !exists {
		logger.Debug().
			Field("category", string(CategoryTPM)).
			Msg("tpm not present, skipping value query")
		return ""
	}

	value, ok := retryQuery(ctx, c.cfg.attempts(), expBackoff(backoffBase), func(ctx context.Context) (string, bool) {
		return c.tpmAttempt(ctx, spec)
	})
	if !ok {
		logger.Warn().
			Field("category", string(CategoryTPM)).
			Field("attempts", c.cfg.attempts()).
			Msg("unexpected tpm failure, component unavailable")
		return ""
	}
	return value
}

// tpmAttempt issues one bounded TPM value query. A vanished class is
// treated as absence, not as a failure worth retrying or warning about.
func (c *collector) tpmAttempt(ctx context.Context, spec querySpec) (string, bool) {
	qctx, cancel := context.WithTimeout(ctx, c.cfg.queryTimeout())
	defer cancel()

	result := c.source.Query(qctx, spec.class, spec.property)
	switch {
	case result.State == wmi.StateFound:
		return componentValue(result), true
	case result.State == wmi.StateNotFound:
		logger.Debug().
			Field("category", string(CategoryTPM)).
			Msg("tpm reported no manufacturer data")
		return "", true
	case result.State == wmi.StateFailed && errors.Is(result.Err, wmi.ErrClassNotFound):
		logger.Debug().
			Field("category", string(CategoryTPM)).
			Msg("tpm class not found")
		return "", true
	default:
		logger.Debug().
			Err(result.Err).
			Field("category", string(CategoryTPM)).
			Msg("tpm query failed")
		return "", false
	}
}

// componentValue renders a result value, byte sequences are hex encoded
// uppercase
func componentValue(result wmi.Result) string {
	if result.Bytes != nil {
		return strings.ToUpper(hex.EncodeToString(result.Bytes))
	}
	return result.Value
}
