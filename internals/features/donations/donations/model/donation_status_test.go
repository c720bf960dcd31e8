package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapGatewayStatus(t *testing.T) {
	cases := map[string]string{
		"settlement": StatusSettlement,
		"cancel":     StatusFailed,
		"deny":       StatusFailed,
		"expire":     StatusFailed,
		"pending":    StatusPending,
		"capture":    "capture",
		"refund":     "refund",
		// case-sensitive: tidak dipetakan
		"SETTLEMENT": "SETTLEMENT",
	}
	for raw, want := range cases {
		assert.Equal(t, want, MapGatewayStatus(raw), raw)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusSettlement))
	assert.True(t, IsTerminal(StatusFailed))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal("capture"))
	assert.ElementsMatch(t, []string{StatusSettlement, StatusFailed}, TerminalStatuses)
}
