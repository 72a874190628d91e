package tui

import (
	"time"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/fetch"
)

// --- Fetch result messages ---
//
// Every fetch command carries the generation it was started under. The
// dashboard model drops any result whose generation has been
// superseded by later navigation.

type instancesMsg struct {
	gen       uint64
	client    fetch.Client
	instances []domain.Instance
	err       error
}

type metricsMsg struct {
	gen    uint64
	series []domain.Series
	err    error
}

// --- Ticks ---

// refreshTickMsg drives the metrics auto-refresh.
type refreshTickMsg time.Time

// loadingTickMsg polls the loading state for its timeout while a
// spinner is visible.
type loadingTickMsg time.Time
