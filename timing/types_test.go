package timing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/velanor/signoff/timing"
)

// TestMinMax_Opposite verifies the early/late views are mutual opposites.
func TestMinMax_Opposite(t *testing.T) {
	assert.Equal(t, timing.Late, timing.Early.Opposite(), "opposite of early is late")
	assert.Equal(t, timing.Early, timing.Late.Opposite(), "opposite of late is early")
}

// TestMinMax_Select verifies the view picks its representative value:
// minimum under Early, maximum under Late.
func TestMinMax_Select(t *testing.T) {
	assert.Equal(t, 1.0, timing.Early.Select(1.0, 2.0), "early selects the minimum")
	assert.Equal(t, 2.0, timing.Late.Select(1.0, 2.0), "late selects the maximum")
}

// TestRiseFall_Opposite verifies transitions are mutual opposites.
func TestRiseFall_Opposite(t *testing.T) {
	assert.Equal(t, timing.Fall, timing.Rise.Opposite(), "opposite of rise is fall")
	assert.Equal(t, timing.Rise, timing.Fall.Opposite(), "opposite of fall is rise")
}

// TestTimingRole_GenericRole verifies every role collapses onto setup or
// hold and the collapse decides the analysis view pairing.
func TestTimingRole_GenericRole(t *testing.T) {
	setupLike := []timing.TimingRole{
		timing.RoleSetup,
		timing.RoleLatchSetup,
		timing.RoleGatedClockSetup,
		timing.RoleDataSetup,
		timing.RoleMaxDelay,
	}
	for _, role := range setupLike {
		assert.Equal(t, timing.RoleSetup, role.GenericRole(), "%s collapses to setup", role)
		assert.Equal(t, timing.Late, role.PathMinMax(), "%s constrains the late path view", role)
		assert.Equal(t, timing.Early, role.TgtClkEarlyLate(), "%s captures with the early clock view", role)
	}

	holdLike := []timing.TimingRole{
		timing.RoleHold,
		timing.RoleLatchHold,
		timing.RoleGatedClockHold,
		timing.RoleDataHold,
		timing.RoleMinDelay,
	}
	for _, role := range holdLike {
		assert.Equal(t, timing.RoleHold, role.GenericRole(), "%s collapses to hold", role)
		assert.Equal(t, timing.Early, role.PathMinMax(), "%s constrains the early path view", role)
		assert.Equal(t, timing.Late, role.TgtClkEarlyLate(), "%s captures with the late clock view", role)
	}
}

// TestTimingArc_Margins verifies margins are stored and looked up per
// view and transition, independent cells.
func TestTimingArc_Margins(t *testing.T) {
	arc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleSetup)
	arc.SetMargin(timing.Late, timing.Rise, 0.8)
	arc.SetMargin(timing.Late, timing.Fall, 0.9)

	assert.Equal(t, 0.8, arc.Margin(timing.Late, timing.Rise), "late rise margin")
	assert.Equal(t, 0.9, arc.Margin(timing.Late, timing.Fall), "late fall margin")
	assert.Equal(t, 0.0, arc.Margin(timing.Early, timing.Rise), "unset margin defaults to zero")
	assert.Equal(t, timing.RoleSetup, arc.Role(), "role fixed at construction")
}
