package game

import (
	"errors"
	"fmt"
)

var ErrInvalidRules = errors.New("invalid rules")

const (
	MinHop = 2
	MaxHop = 5
)

// DisplacementRule picks where a hopped-over token is sent
type DisplacementRule int

const (
	// DisplaceHome tries the four squares nearest the bumped side's start:
	// 8,7,6,5 for Black and 1,2,3,4 for White
	DisplaceHome DisplacementRule = iota
	// DisplaceScan takes the first free square walking back from the hopped
	// square toward the bumped side's start
	DisplaceScan
)

func (d DisplacementRule) String() string {
	switch d {
	case DisplaceHome:
		return "home"
	case DisplaceScan:
		return "scan"
	}
	return fmt.Sprintf("displacement(%d)", int(d))
}

func (d *DisplacementRule) UnmarshalText(text []byte) error {
	switch string(text) {
	case "home":
		*d = DisplaceHome
	case "scan":
		*d = DisplaceScan
	default:
		return fmt.Errorf("%w: unknown displacement %q", ErrInvalidRules, text)
	}
	return nil
}

func (d DisplacementRule) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// TerminalRule decides how many tokens must exit to win
type TerminalRule int

const (
	AnyTokenExits TerminalRule = iota
	BothTokensExit
)

func (t TerminalRule) String() string {
	switch t {
	case AnyTokenExits:
		return "any"
	case BothTokensExit:
		return "both"
	}
	return fmt.Sprintf("terminal(%d)", int(t))
}

func (t *TerminalRule) UnmarshalText(text []byte) error {
	switch string(text) {
	case "any":
		*t = AnyTokenExits
	case "both":
		*t = BothTokensExit
	default:
		return fmt.Errorf("%w: unknown terminal rule %q", ErrInvalidRules, text)
	}
	return nil
}

func (t TerminalRule) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Rules is the tagged configuration of a rule variant
type Rules struct {
	MaxHop       int              `yaml:"max_hop"`
	Displacement DisplacementRule `yaml:"displacement"`
	Terminal     TerminalRule     `yaml:"terminal"`
}

func (r Rules) Validate() error {
	if r.MaxHop < MinHop || r.MaxHop > MaxHop {
		return fmt.Errorf("%w: max hop %d not in [%d,%d]", ErrInvalidRules, r.MaxHop, MinHop, MaxHop)
	}
	if r.Displacement != DisplaceHome && r.Displacement != DisplaceScan {
		return fmt.Errorf("%w: %s", ErrInvalidRules, r.Displacement)
	}
	if r.Terminal != AnyTokenExits && r.Terminal != BothTokensExit {
		return fmt.Errorf("%w: %s", ErrInvalidRules, r.Terminal)
	}
	return nil
}

// Winner reports the side that has won on b. White is checked first, so a
// board on which both sides qualify counts as a White win.
func (r Rules) Winner(b Board) (Side, bool) {
	need := 1
	if r.Terminal == BothTokensExit {
		need = 2
	}
	if b.exitedCount(White) >= need {
		return White, true
	}
	if b.exitedCount(Black) >= need {
		return Black, true
	}
	return White, false
}

func (r Rules) IsTerminal(b Board) bool {
	_, over := r.Winner(b)
	return over
}

func (r Rules) String() string {
	return fmt.Sprintf("hop<=%d/%s/%s", r.MaxHop, r.Displacement, r.Terminal)
}
