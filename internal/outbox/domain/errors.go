package domain

import (
	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// ErrOutboxClaimLost indicates the event is no longer IN_PROGRESS under the caller's claim,
// because another relay reclaimed it after the claim went stale.
var ErrOutboxClaimLost = apperrors.NewCoded(
	apperrors.ErrConflict,
	"OUTBOX_CLAIM_LOST",
	"outbox event was reclaimed by another relay",
)
