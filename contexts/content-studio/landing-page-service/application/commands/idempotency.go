package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "storefront/contexts/content-studio/landing-page-service/application"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

const defaultIdempotencyTTL = 7 * 24 * time.Hour

type idempotentRun struct {
	Store  ports.IdempotencyStore
	Now    time.Time
	TTL    time.Duration
	Logger *slog.Logger
}

// run replays a stored payload for a known key, or executes and records it.
// It reports whether the result came from a replay.
func (r idempotentRun) run(
	ctx context.Context,
	key string,
	requestHash string,
	decode func([]byte) error,
	exec func() ([]byte, error),
) (bool, error) {
	record, found, err := r.Store.Get(ctx, key, r.Now)
	if err != nil {
		return false, err
	}
	if found {
		// A reused key must map to an identical request payload.
		if record.RequestHash != requestHash {
			return false, domainerrors.ErrIdempotencyConflict
		}
		return true, decode(record.Payload)
	}

	payload, err := exec()
	if err != nil {
		return false, err
	}
	ttl := r.TTL
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	if err := r.Store.Put(ctx, ports.IdempotencyRecord{
		Key:         key,
		RequestHash: requestHash,
		Payload:     payload,
		ExpiresAt:   r.Now.Add(ttl),
	}); err != nil {
		return false, err
	}

	application.ResolveLogger(r.Logger).Debug("landing idempotent operation committed",
		"event", "landing_idempotent_operation_committed",
		"module", "content-studio/landing-page-service",
		"layer", "application",
		"idempotency_key", key,
	)
	return false, decode(payload)
}

func hashStrings(values ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(values, "|")))
	return hex.EncodeToString(sum[:])
}

// hashRequest fingerprints a request from its scope strings and a JSON
// encoding of its options.
func hashRequest(payload any, values ...string) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request for idempotency hash: %w", err)
	}
	return hashStrings(append(values, string(encoded))...), nil
}

func resolveNow(clock ports.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now().UTC()
}
