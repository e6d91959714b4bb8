package ui

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kollel-app/kollel/variant"
	. "github.com/smartystreets/goconvey/convey"
)

func tokens(s string) []string {
	return strings.Fields(s)
}

func TestButtonTable(t *testing.T) {
	Convey("The button table", t, func() {
		Convey("Is internally consistent", func() {
			So(Button.Validate(), ShouldBeNil)
		})

		Convey("Declares the shared vocabularies", func() {
			color, _ := Button.Axis(AxisColor)
			size, _ := Button.Axis(AxisSize)
			v, _ := Button.Axis(AxisVariant)
			So(color.Names(), ShouldResemble, Colors)
			So(size.Names(), ShouldResemble, Sizes)
			So(v.Names(), ShouldResemble, Variants)
		})

		Convey("Defaults to primary solid md", func() {
			So(Button.Defaults, ShouldResemble, variant.Selection{"color": "primary", "variant": "solid", "size": "md"})
		})
	})
}

func TestButtonResolve(t *testing.T) {
	Convey("Resolving button classes", t, func() {
		Convey("primary solid md is indigo and carries no neutral classes", func() {
			base := Button.Resolve(variant.Selection{"color": "primary", "variant": "solid", "size": "md"})[SlotBase]
			So(tokens(base), ShouldContain, "bg-indigo-600")
			So(base, ShouldNotContainSubstring, "inverted")
			So(base, ShouldNotContainSubstring, "bg-elevated")
		})

		Convey("No selection equals the default selection", func() {
			So(Button.Resolve(nil), ShouldResemble, Button.Resolve(variant.Selection{"color": "primary", "variant": "solid", "size": "md"}))
			So(Button.Resolve(variant.Selection{}), ShouldResemble, Button.Resolve(Button.Defaults))
		})

		Convey("square xs appends p-1 whatever the color and variant", func() {
			for _, color := range Colors {
				for _, v := range Variants {
					base := Button.Resolve(variant.Selection{"size": "xs", "square": "true", "color": color, "variant": v})[SlotBase]
					So(tokens(base), ShouldContain, "p-1")
				}
			}
			base := Button.Resolve(variant.Selection{"size": "xs", "square": "true"})[SlotBase]
			So(strings.HasSuffix(base, "p-1"), ShouldBeTrue)
		})

		Convey("Size sets the icon and avatar slots", func() {
			got := Button.Resolve(variant.Selection{"size": "xs"})
			So(got[SlotLeadingIcon], ShouldEqual, "shrink-0 size-4")
			So(got[SlotTrailingIcon], ShouldEqual, "shrink-0 size-4")
			So(got[SlotLeadingAvatarSize], ShouldEqual, "3xs")
		})

		Convey("Block widens the button and pushes the trailing icon", func() {
			got := Button.Resolve(variant.Selection{"block": "true"})
			So(tokens(got[SlotBase]), ShouldContain, "w-full")
			So(tokens(got[SlotTrailingIcon]), ShouldContain, "ms-auto")
		})

		Convey("Loading spins exactly one icon", func() {
			leading := Button.Resolve(variant.Selection{"loading": "true", "leading": "true", "trailing": "true"})
			So(tokens(leading[SlotLeadingIcon]), ShouldContain, "animate-spin")
			So(tokens(leading[SlotTrailingIcon]), ShouldNotContain, "animate-spin")

			trailing := Button.Resolve(variant.Selection{"loading": "true", "trailing": "true"})
			So(tokens(trailing[SlotLeadingIcon]), ShouldNotContain, "animate-spin")
			So(tokens(trailing[SlotTrailingIcon]), ShouldContain, "animate-spin")

			idle := Button.Resolve(variant.Selection{"leading": "true", "trailing": "true"})
			So(idle[SlotLeadingIcon], ShouldNotContainSubstring, "animate-spin")
			So(idle[SlotTrailingIcon], ShouldNotContainSubstring, "animate-spin")
		})

		Convey("Colors without compounds add no background", func() {
			base := Button.Resolve(variant.Selection{"color": "success"})[SlotBase]
			So(base, ShouldNotContainSubstring, "bg-")
		})
	})
}

func TestAppConfig(t *testing.T) {
	Convey("The app config", t, func() {
		data, err := json.Marshal(App)
		So(err, ShouldBeNil)

		var decoded map[string]any
		So(json.Unmarshal(data, &decoded), ShouldBeNil)

		Convey("Keeps the original key names", func() {
			So(decoded["primary"], ShouldEqual, "blue")
			So(decoded["gray"], ShouldEqual, "cool")
			So(decoded["toaster"], ShouldResemble, map[string]any{"position": "bottom-right", "expand": true, "duration": float64(2000)})

			button := decoded["button"].(map[string]any)
			So(button, ShouldContainKey, "slots")
			So(button, ShouldContainKey, "variants")
			So(button, ShouldContainKey, "compoundVariants")
			So(button["defaultVariants"], ShouldResemble, map[string]any{"color": "primary", "variant": "solid", "size": "md"})
			So(button["compoundVariants"], ShouldHaveLength, 19)
		})

		Convey("Has a schema describing the button table", func() {
			schema, err := json.Marshal(Schema())
			So(err, ShouldBeNil)
			So(string(schema), ShouldContainSubstring, `"compoundVariants"`)
			So(string(schema), ShouldContainSubstring, `"toaster"`)
		})
	})
}
