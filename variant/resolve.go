package variant

import (
	"strings"

	"github.com/samber/lo"
)

// Resolve computes the class string of every slot of t for sel, using defaults for unset axes.
func Resolve(t Table, sel, defaults Selection) map[Slot]string {
	t.Defaults = defaults
	return t.Resolve(sel)
}

// Resolve computes the class string of every declared slot for sel.
//
// Classes are applied in this order: slot base classes, then the selected value of each
// axis in declaration order, then every matching compound rule in declaration order.
// Later classes are appended, never substituted.
func (t Table) Resolve(sel Selection) map[Slot]string {
	effective := t.Effective(sel)
	tokens := make(map[Slot][]string, len(t.Slots))

	add := func(classes Classes) {
		for slot, class := range classes {
			tokens[slot] = append(tokens[slot], strings.Fields(class)...)
		}
	}

	for _, s := range t.Slots {
		tokens[s.Slot] = append(tokens[s.Slot], strings.Fields(s.Class)...)
	}

	for _, axis := range t.Axes {
		value, ok := axis.Value(effective[axis.Name])
		if ok {
			add(value.Class)
		}
	}

	for _, c := range t.Compounds {
		if c.Matches(effective) {
			add(c.Class)
		}
	}

	resolved := make(map[Slot]string, len(t.Slots))
	for _, s := range t.Slots {
		resolved[s.Slot] = strings.Join(lo.Uniq(tokens[s.Slot]), " ")
	}
	return resolved
}

// Effective fills the unset axes of sel from the defaults.
// A flag axis that declares a "false" value resolves to it when neither sel nor the defaults set it.
func (t Table) Effective(sel Selection) Selection {
	effective := make(Selection, len(t.Axes))
	for _, axis := range t.Axes {
		switch {
		case sel[axis.Name] != "":
			effective[axis.Name] = sel[axis.Name]
		case t.Defaults[axis.Name] != "":
			effective[axis.Name] = t.Defaults[axis.Name]
		default:
			if _, ok := axis.Value("false"); ok {
				effective[axis.Name] = "false"
			}
		}
	}
	return effective
}

// Matches reports whether every condition of c holds in the effective selection.
func (c Compound) Matches(effective Selection) bool {
	return lo.EveryBy(c.When, func(cond Condition) bool {
		got := effective[cond.Axis]
		if cond.Value == "false" && got == "" {
			return true
		}
		return got == cond.Value
	})
}
