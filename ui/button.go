package ui

import "github.com/kollel-app/kollel/variant"

// Button slots.
const (
	SlotBase              = variant.SlotBase
	SlotLabel             = variant.Slot("label")
	SlotLeadingIcon       = variant.Slot("leadingIcon")
	SlotLeadingAvatar     = variant.Slot("leadingAvatar")
	SlotLeadingAvatarSize = variant.Slot("leadingAvatarSize")
	SlotTrailingIcon      = variant.Slot("trailingIcon")
)

// Button axes.
const (
	AxisButtonGroup = "buttonGroup"
	AxisColor       = "color"
	AxisVariant     = "variant"
	AxisSize        = "size"
	AxisBlock       = "block"
	AxisSquare      = "square"
	AxisLeading     = "leading"
	AxisTrailing    = "trailing"
	AxisLoading     = "loading"
	AxisActive      = "active"
)

// Vocabularies shared with the rendering engine.
var (
	Colors   = []string{"primary", "secondary", "success", "info", "warning", "error", "neutral"}
	Variants = []string{"solid", "outline", "soft", "subtle", "ghost", "link"}
	Sizes    = []string{"xs", "sm", "md", "lg", "xl"}
	Groups   = []string{"horizontal", "vertical"}
)

// blank lists every value of an axis that contributes no classes on its own.
func blank(names []string) []variant.Value {
	values := make([]variant.Value, 0, len(names))
	for _, n := range names {
		values = append(values, variant.Value{Name: n, Class: variant.Base("")})
	}
	return values
}

func sized(base, icon, avatar string) variant.Classes {
	return variant.Classes{
		SlotBase:              base,
		SlotLeadingIcon:       icon,
		SlotLeadingAvatarSize: avatar,
		SlotTrailingIcon:      icon,
	}
}

func colored(color, v, class string) variant.Compound {
	return variant.Compound{
		When:  []variant.Condition{variant.Is(AxisColor, color), variant.Is(AxisVariant, v)},
		Class: variant.Base(class),
	}
}

func square(size, class string) variant.Compound {
	return variant.Compound{
		When:  []variant.Condition{variant.Is(AxisSize, size), variant.Is(AxisSquare, "true")},
		Class: variant.Base(class),
	}
}

// Button is the variant table of the button component.
var Button = variant.Table{
	Slots: []variant.SlotDef{
		{Slot: SlotBase, Class: "rounded-md font-medium inline-flex items-center disabled:cursor-not-allowed aria-disabled:cursor-not-allowed disabled:opacity-75 aria-disabled:opacity-75 transition-colors"},
		{Slot: SlotLabel, Class: "truncate"},
		{Slot: SlotLeadingIcon, Class: "shrink-0"},
		{Slot: SlotLeadingAvatar, Class: "shrink-0"},
		{Slot: SlotLeadingAvatarSize, Class: ""},
		{Slot: SlotTrailingIcon, Class: "shrink-0"},
	},
	Axes: []variant.Axis{
		{Name: AxisButtonGroup, Values: []variant.Value{
			{Name: "horizontal", Class: variant.Base("not-only:first:rounded-e-none not-only:last:rounded-s-none not-last:not-first:rounded-none focus-visible:z-[1]")},
			{Name: "vertical", Class: variant.Base("not-only:first:rounded-b-none not-only:last:rounded-t-none not-last:not-first:rounded-none focus-visible:z-[1]")},
		}},
		{Name: AxisColor, Values: blank(Colors)},
		{Name: AxisVariant, Values: blank(Variants)},
		{Name: AxisSize, Values: []variant.Value{
			{Name: "xs", Class: sized("px-2 py-1 text-xs gap-1", "size-4", "3xs")},
			{Name: "sm", Class: sized("px-2.5 py-1.5 text-xs gap-1.5", "size-4", "3xs")},
			{Name: "md", Class: sized("px-2.5 py-1.5 text-sm gap-1.5", "size-5", "2xs")},
			{Name: "lg", Class: sized("px-3 py-2 text-sm gap-2", "size-5", "2xs")},
			{Name: "xl", Class: sized("px-3 py-2 text-base gap-2", "size-6", "xs")},
		}},
		{Name: AxisBlock, Values: []variant.Value{
			{Name: "true", Class: variant.Classes{SlotBase: "w-full justify-center", SlotTrailingIcon: "ms-auto"}},
		}},
		{Name: AxisSquare, Values: blank([]string{"true"})},
		{Name: AxisLeading, Values: blank([]string{"true"})},
		{Name: AxisTrailing, Values: blank([]string{"true"})},
		{Name: AxisLoading, Values: blank([]string{"true"})},
		{Name: AxisActive, Values: blank([]string{"true", "false"})},
	},
	Compounds: []variant.Compound{
		colored("primary", "solid", "bg-indigo-600 text-white hover:bg-indigo-500 cursor-pointer active:bg-indigo/75 disabled:bg-indigo aria-disabled:bg-indigo focus-visible:outline-2 focus-visible:outline-offset-2 focus-visible:outline-indigo"),
		colored("primary", "outline", "cursor-pointer ring ring-inset ring-primary/50 text-primary hover:bg-primary/10 active:bg-primary/10 disabled:bg-transparent aria-disabled:bg-transparent dark:disabled:bg-transparent dark:aria-disabled:bg-transparent focus:outline-none focus-visible:ring-2 focus-visible:ring-primary"),
		colored("primary", "soft", "cursor-pointer text-primary bg-primary/10 hover:bg-primary/15 active:bg-primary/15 focus:outline-none focus-visible:bg-primary/15 disabled:bg-primary/10 aria-disabled:bg-primary/10"),
		colored("primary", "subtle", "cursor-pointer text-primary ring ring-inset ring-primary/25 bg-primary/10 hover:bg-primary/15 active:bg-primary/15 disabled:bg-primary/10 aria-disabled:bg-primary/10 focus:outline-none focus-visible:ring-2 focus-visible:ring-primary"),
		colored("primary", "ghost", "cursor-pointer text-primary hover:bg-primary/10 active:bg-primary/10 focus:outline-none focus-visible:bg-primary/10 disabled:bg-transparent aria-disabled:bg-transparent dark:disabled:bg-transparent dark:aria-disabled:bg-transparent"),
		colored("primary", "link", "cursor-pointer text-primary hover:text-primary/75 active:text-primary/75 disabled:text-primary aria-disabled:text-primary focus:outline-none focus-visible:ring-2 focus-visible:ring-inset focus-visible:ring-primary"),
		colored("neutral", "solid", "cursor-pointer text-inverted bg-inverted hover:bg-inverted/90 active:bg-inverted/90 disabled:bg-inverted aria-disabled:bg-inverted focus-visible:outline-2 focus-visible:outline-offset-2 focus-visible:outline-inverted"),
		colored("neutral", "outline", "cursor-pointer ring ring-inset ring-accented text-default bg-default hover:bg-elevated active:bg-elevated disabled:bg-default aria-disabled:bg-default focus:outline-none focus-visible:ring-2 focus-visible:ring-inverted"),
		colored("neutral", "soft", "cursor-pointer text-default bg-elevated hover:bg-accented/75 active:bg-accented/75 focus:outline-none focus-visible:bg-accented/75 disabled:bg-elevated aria-disabled:bg-elevated"),
		colored("neutral", "subtle", "cursor-pointer ring ring-inset ring-accented text-default bg-elevated hover:bg-accented/75 active:bg-accented/75 disabled:bg-elevated aria-disabled:bg-elevated focus:outline-none focus-visible:ring-2 focus-visible:ring-inverted"),
		colored("neutral", "ghost", "cursor-pointer text-default hover:bg-elevated active:bg-elevated focus:outline-none focus-visible:bg-elevated hover:disabled:bg-transparent dark:hover:disabled:bg-transparent hover:aria-disabled:bg-transparent dark:hover:aria-disabled:bg-transparent"),
		colored("neutral", "link", "cursor-pointer text-muted hover:text-default active:text-default disabled:text-muted aria-disabled:text-muted focus:outline-none focus-visible:ring-inset focus-visible:ring-2 focus-visible:ring-inverted"),
		square("xs", "cursor-pointer p-1"),
		square("sm", "cursor-pointer p-1.5"),
		square("md", "cursor-pointer p-1.5"),
		square("lg", "cursor-pointer p-2"),
		square("xl", "cursor-pointer p-2"),
		{
			When:  []variant.Condition{variant.Is(AxisLoading, "true"), variant.Is(AxisLeading, "true")},
			Class: variant.Classes{SlotLeadingIcon: "animate-spin"},
		},
		{
			When:  []variant.Condition{variant.Is(AxisLoading, "true"), variant.Is(AxisLeading, "false"), variant.Is(AxisTrailing, "true")},
			Class: variant.Classes{SlotTrailingIcon: "animate-spin"},
		},
	},
	Defaults: variant.Selection{
		AxisColor:   "primary",
		AxisVariant: "solid",
		AxisSize:    "md",
	},
}
