package variant

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// classValue renders classes the way variant tables are written by hand:
// a plain string when only the base slot is targeted, an object otherwise.
func (t Table) classValue(c Classes) any {
	if class, ok := c[SlotBase]; ok && len(c) == 1 {
		return class
	}

	m := orderedmap.New[string, string]()
	for _, slot := range t.SlotNames() {
		if class, ok := c[slot]; ok {
			m.Set(string(slot), class)
		}
	}
	return m
}

// MarshalJSON encodes t with the slots, variants, compoundVariants and defaultVariants keys,
// preserving declaration order.
func (t Table) MarshalJSON() ([]byte, error) {
	slots := orderedmap.New[string, string]()
	for _, s := range t.Slots {
		slots.Set(string(s.Slot), s.Class)
	}

	variants := orderedmap.New[string, *orderedmap.OrderedMap[string, any]]()
	for _, axis := range t.Axes {
		values := orderedmap.New[string, any]()
		for _, v := range axis.Values {
			values.Set(v.Name, t.classValue(v.Class))
		}
		variants.Set(axis.Name, values)
	}

	compounds := make([]*orderedmap.OrderedMap[string, any], 0, len(t.Compounds))
	for _, c := range t.Compounds {
		rule := orderedmap.New[string, any]()
		for _, cond := range c.When {
			rule.Set(cond.Axis, flagOrString(cond.Value))
		}
		rule.Set("class", t.classValue(c.Class))
		compounds = append(compounds, rule)
	}

	defaults := orderedmap.New[string, string]()
	for _, axis := range t.Axes {
		if v, ok := t.Defaults[axis.Name]; ok {
			defaults.Set(axis.Name, v)
		}
	}

	return json.Marshal(struct {
		Slots            any `json:"slots"`
		Variants         any `json:"variants"`
		CompoundVariants any `json:"compoundVariants"`
		DefaultVariants  any `json:"defaultVariants"`
	}{slots, variants, compounds, defaults})
}

// flagOrString keeps boolean conditions boolean in the encoded table.
func flagOrString(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	default:
		return v
	}
}
