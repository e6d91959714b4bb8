package variant

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Validate reports every reference in t to an undeclared slot, axis or value.
func (t Table) Validate() error {
	var errs []error

	slots := lo.SliceToMap(t.Slots, func(s SlotDef) (Slot, struct{}) { return s.Slot, struct{}{} })
	checkSlots := func(owner string, classes Classes) {
		for slot := range classes {
			if _, ok := slots[slot]; !ok {
				errs = append(errs, fmt.Errorf("%s: unknown slot %q", owner, slot))
			}
		}
	}

	if dup := lo.FindDuplicatesBy(t.Axes, func(a Axis) string { return a.Name }); len(dup) > 0 {
		errs = append(errs, fmt.Errorf("duplicate axis %q", dup[0].Name))
	}

	for _, axis := range t.Axes {
		for _, v := range axis.Values {
			checkSlots(fmt.Sprintf("%s=%s", axis.Name, v.Name), v.Class)
		}
	}

	for i, c := range t.Compounds {
		owner := fmt.Sprintf("compound #%d", i)
		checkSlots(owner, c.Class)
		for _, cond := range c.When {
			axis, ok := t.Axis(cond.Axis)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: unknown axis %q", owner, cond.Axis))
				continue
			}
			if _, ok := axis.Value(cond.Value); !ok && !(cond.Value == "false" && axis.IsFlag()) {
				errs = append(errs, fmt.Errorf("%s: %s has no value %q", owner, cond.Axis, cond.Value))
			}
		}
	}

	for name, value := range t.Defaults {
		axis, ok := t.Axis(name)
		if !ok {
			errs = append(errs, fmt.Errorf("default: unknown axis %q", name))
			continue
		}
		if _, ok := axis.Value(value); !ok {
			errs = append(errs, fmt.Errorf("default: %s has no value %q", name, value))
		}
	}

	return errors.Join(errs...)
}

// UnknownValueError reports a selection value that the table does not declare.
type UnknownValueError struct {
	Axis       string
	Value      string
	Suggestion string
}

func (e *UnknownValueError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("unknown axis %q", e.Value)
	}
	msg := fmt.Sprintf("unknown %s %q", e.Axis, e.Value)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

// Check verifies that every axis and value in sel is declared. Flags also accept "false".
func (t Table) Check(sel Selection) error {
	names := lo.Map(t.Axes, func(a Axis, _ int) string { return a.Name })
	keys := lo.Keys(sel)
	sort.Strings(keys)

	for _, name := range keys {
		value := sel[name]
		axis, ok := t.Axis(name)
		if !ok {
			return &UnknownValueError{Value: name, Suggestion: Suggest(name, names)}
		}
		if value == "" {
			continue
		}
		if _, ok := axis.Value(value); ok || (value == "false" && axis.IsFlag()) {
			continue
		}
		return &UnknownValueError{Axis: name, Value: value, Suggestion: Suggest(value, axis.Names())}
	}
	return nil
}

// Suggest returns the candidate closest to input, or "" when nothing resembles it.
func Suggest(input string, candidates []string) string {
	ranks := fuzzy.RankFindNormalizedFold(input, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
