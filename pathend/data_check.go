package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// DataCheck is a data-to-data setback check: the constrained pin is
// timed against another data pin rather than a clock, with no implicit
// cycle relationship. The related pin's path plays the capture role in
// the shared formulas; the clock sub-path feeding the related pin is
// owned separately for reporting.
type DataCheck struct {
	clkConstrainedMcp
	check       *sdc.DataCheck
	dataClkPath *timing.Path
}

// NewDataCheck builds a data-check path end. relatedPath is the realized
// path to the related (reference) pin and is mandatory; dataClkPath is
// the clock sub-path feeding it and may be nil when the related pin is
// unclocked.
func NewDataCheck(path *timing.Path, check *sdc.DataCheck, relatedPath, dataClkPath *timing.Path, mcp *sdc.MultiCyclePath, opts ...Option) (*DataCheck, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if check == nil {
		return nil, ErrNilException
	}
	if relatedPath == nil {
		return nil, ErrNilClkPath
	}
	pe := &DataCheck{check: check, dataClkPath: dataClkPath}
	pe.initMcp(path, relatedPath, mcp, pe, buildOptions(opts))

	return pe, nil
}

// Type returns TypeDataCheck.
func (pe *DataCheck) Type() Type { return TypeDataCheck }

// TypeName returns the display name of the variant.
func (pe *DataCheck) TypeName() string { return TypeDataCheck.String() }

// IsDataCheck reports true.
func (pe *DataCheck) IsDataCheck() bool { return true }

// Copy returns an independent clone with its own owned paths.
func (pe *DataCheck) Copy() PathEnd {
	var dataClkPath *timing.Path
	if pe.dataClkPath != nil {
		dataClkPath = pe.dataClkPath.Clone()
	}
	cp, _ := NewDataCheck(pe.path.Clone(), pe.check, pe.clkPath.Clone(), dataClkPath, pe.mcp, pe.crprOptions()...)

	return cp
}

// DataClkPath returns the clock sub-path feeding the related pin, nil
// when the related pin is unclocked.
func (pe *DataCheck) DataClkPath() *timing.Path { return pe.dataClkPath }

// CheckRole is the data setback role for this path's view.
func (pe *DataCheck) CheckRole(_ *Context) (timing.TimingRole, bool) {
	if pe.path.MinMax() == timing.Late {
		return timing.RoleDataSetup, true
	}

	return timing.RoleDataHold, true
}

// Margin is the declared setback for this path's view.
func (pe *DataCheck) Margin(_ *Context) timing.Delay {
	return pe.check.Margin(pe.path.MinMax())
}

// SetupDefaultCycles is zero: a data check compares same-cycle arrivals,
// with no implicit next-edge cycle shift.
func (pe *DataCheck) SetupDefaultCycles() int { return 0 }
