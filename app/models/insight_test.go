package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInsightIsExpired(t *testing.T) {
	now := time.Now()
	insight := &Insight{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, insight.IsExpired(now))
	assert.True(t, insight.IsExpired(now.Add(2*time.Hour)))

	// Expiry is exclusive: an insight whose expiry equals the probe time
	// no longer counts as live.
	assert.True(t, insight.IsExpired(insight.ExpiresAt))
}
