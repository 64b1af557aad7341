// Package length provides unit-typed distance values and their addition.
package length

import "fmt"

// MillimetersPerMeter is the fixed scale applied on cross-unit addition.
const MillimetersPerMeter = 1000

// Millimeters is the base unit. Arithmetic wraps on uint32 overflow.
type Millimeters uint32

// Meters is the larger unit; it is always folded into Millimeters before summing.
type Meters uint32

// Length is any value that can be expressed in the base unit.
type Length interface {
	InMillimeters() Millimeters
}

func (m Millimeters) InMillimeters() Millimeters { return m }

func (m Meters) InMillimeters() Millimeters {
	return Millimeters(m) * MillimetersPerMeter
}

// Add is same-unit addition.
func (m Millimeters) Add(other Millimeters) Millimeters {
	return m + other
}

// AddMeters is cross-unit addition; the result stays in Millimeters.
func (m Millimeters) AddMeters(other Meters) Millimeters {
	return m + other.InMillimeters()
}

// Plus dispatches on the operand's unit.
func (m Millimeters) Plus(other Length) Millimeters {
	switch v := other.(type) {
	case Millimeters:
		return m.Add(v)
	case Meters:
		return m.AddMeters(v)
	default:
		return m + other.InMillimeters()
	}
}

func (m Millimeters) String() string { return fmt.Sprintf("%dmm", uint32(m)) }

func (m Meters) String() string { return fmt.Sprintf("%dm", uint32(m)) }
