package model

import (
	"time"

	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

// TokenIssuanceRecord is one audit row per issued token. It carries scope
// metadata only; the token value itself is never recorded.
type TokenIssuanceRecord struct {
	RequestID  types.RequestID
	InstallID  int64
	BatchIndex int
	RepoCount  int
	IssuedAt   time.Time
	ExpiresAt  time.Time

	// Timestamp is IssuedAt in microseconds for BigQuery partitioning.
	Timestamp int64
}
