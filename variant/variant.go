// Package variant resolves slot class strings from a declarative variant table.
//
// A Table lists the base classes of each slot, the classes contributed by every value
// of every axis, and compound rules that add classes when several axis values hold at
// once. Resolution is a pure lookup: the table is data and is never mutated.
package variant

import (
	"strconv"

	"github.com/samber/lo"
)

// Slot names a sub-part of a component that receives its own class string.
type Slot string

// SlotBase is the slot targeted by plain string classes.
const SlotBase Slot = "base"

// Classes maps slots to space separated class lists.
type Classes map[Slot]string

// Base targets class at the base slot.
func Base(class string) Classes {
	return Classes{SlotBase: class}
}

// SlotDef declares a slot and its unconditional classes.
type SlotDef struct {
	Slot  Slot
	Class string
}

// Value is one allowed value of an axis and the classes it contributes.
type Value struct {
	Name  string
	Class Classes
}

// Axis is one configuration dimension with its closed set of values.
type Axis struct {
	Name   string
	Values []Value
}

// Condition requires Axis to hold Value.
type Condition struct {
	Axis  string
	Value string
}

// Is builds a Condition.
func Is(axis, value string) Condition {
	return Condition{Axis: axis, Value: value}
}

// Compound adds Class when every condition in When holds.
// A "false" condition also holds for an axis without a value.
type Compound struct {
	When  []Condition
	Class Classes
}

// Selection maps axis names to chosen values. Flags use "true" and "false".
type Selection map[string]string

// Table is a complete variant definition for one component.
type Table struct {
	Slots     []SlotDef
	Axes      []Axis
	Compounds []Compound
	Defaults  Selection
}

// Bool converts a flag into its selection value.
func Bool(b bool) string {
	return strconv.FormatBool(b)
}

// Axis returns the axis called name.
func (t Table) Axis(name string) (Axis, bool) {
	return lo.Find(t.Axes, func(a Axis) bool { return a.Name == name })
}

// Value returns the value called name.
func (a Axis) Value(name string) (Value, bool) {
	return lo.Find(a.Values, func(v Value) bool { return v.Name == name })
}

// Names lists the axis values in declaration order.
func (a Axis) Names() []string {
	return lo.Map(a.Values, func(v Value, _ int) string { return v.Name })
}

// IsFlag reports whether the axis only declares boolean values.
func (a Axis) IsFlag() bool {
	return len(a.Values) > 0 && lo.EveryBy(a.Values, func(v Value) bool {
		return v.Name == "true" || v.Name == "false"
	})
}

// SlotNames lists the declared slots in declaration order.
func (t Table) SlotNames() []Slot {
	return lo.Map(t.Slots, func(s SlotDef, _ int) Slot { return s.Slot })
}
