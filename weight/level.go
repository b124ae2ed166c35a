// SPDX-License-Identifier: MIT

package weight

import "fmt"

// NewLevel returns the level with the given 1-based ordinal carrying w.
// Ordinals outside 1..4 fail with ErrUnsupportedLevel.
//
// Complexity: O(1)
func NewLevel(ordinal int, w Weight) (Level, error) {
	if ordinal < int(Primary) || ordinal > int(MaxOrdinal) {
		return Level{}, fmt.Errorf("%w: %d", ErrUnsupportedLevel, ordinal)
	}

	return Level{ordinal: Ordinal(ordinal), weight: w}, nil
}

// Ordinal returns the level position (1..4).
func (l Level) Ordinal() Ordinal { return l.ordinal }

// Weight returns the weight carried at this level.
func (l Level) Weight() Weight { return l.weight }

// IsIgnorable reports whether the carried weight is ignorable.
func (l Level) IsIgnorable() bool {
	return l.weight.IsIgnorable()
}

// String renders the level as "L<n>=<weight>", e.g. "L1=06D9".
func (l Level) String() string {
	return fmt.Sprintf("L%d=%s", int(l.ordinal), l.weight)
}

// String returns the UTS #10 name of the ordinal.
func (o Ordinal) String() string {
	switch o {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	case Tertiary:
		return "Tertiary"
	case Quaternary:
		return "Quaternary"
	default:
		return fmt.Sprintf("Ordinal(%d)", int(o))
	}
}
