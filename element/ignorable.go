// SPDX-License-Identifier: MIT

package element

import "fmt"

// isLevelCollationElement reports whether the weight at 1-based level n is
// not ignorable. A missing level counts as non-ignorable.
func (e Element) isLevelCollationElement(n int) bool {
	if n > len(e.weights) {
		return true
	}

	return !e.weights[n-1].IsIgnorable()
}

// IsPrimary reports whether e is a primary collation element (UTS10-D9):
// its Level 1 weight is not ignorable.
func (e Element) IsPrimary() bool { return e.isLevelCollationElement(1) }

// IsSecondary reports whether the Level 2 weight of e is not ignorable.
// Lower levels are not inspected; use Class for the exclusive D10 reading.
func (e Element) IsSecondary() bool { return e.isLevelCollationElement(2) }

// IsTertiary reports whether the Level 3 weight of e is not ignorable.
// Lower levels are not inspected; use Class for the exclusive D11 reading.
func (e Element) IsTertiary() bool { return e.isLevelCollationElement(3) }

// IsQuaternary reports whether the Level 4 weight of e is not ignorable.
// Lower levels are not inspected; use Class for the exclusive D12 reading.
func (e Element) IsQuaternary() bool { return e.isLevelCollationElement(4) }

// IsCompletelyIgnorable reports whether every weight of e is ignorable (D13).
func (e Element) IsCompletelyIgnorable() bool {
	for _, w := range e.weights {
		if !w.IsIgnorable() {
			return false
		}
	}

	return true
}

// IsIgnorable reports whether e is an ignorable collation element (D14),
// that is, not a primary collation element.
func (e Element) IsIgnorable() bool {
	return !e.IsPrimary()
}

// IsNIgnorable reports whether e is Level n ignorable (D15): the weight at
// level n is ignorable and the weight at level n+1, if present, is not.
//
// Errors:
//   - ErrInvalidLevelIndex if n < 1.
//   - ErrLevelOutOfRange   if n > Len().
func (e Element) IsNIgnorable(n int) (bool, error) {
	if n < 1 {
		return false, fmt.Errorf("%w: %d", ErrInvalidLevelIndex, n)
	}
	if n > len(e.weights) {
		return false, fmt.Errorf("%w: level %d of %d", ErrLevelOutOfRange, n, len(e.weights))
	}

	if !e.weights[n-1].IsIgnorable() {
		return false, nil
	}
	if n == len(e.weights) {
		return true, nil
	}

	return !e.weights[n].IsIgnorable(), nil
}

// Class returns the mutually exclusive category of e: the level of its
// first non-ignorable weight, or ClassCompletelyIgnorable if there is none.
func (e Element) Class() Class {
	for i, w := range e.weights {
		if w.IsIgnorable() {
			continue
		}
		if i >= int(ClassOther)-1 {
			return ClassOther
		}

		return Class(i + 1)
	}

	return ClassCompletelyIgnorable
}
