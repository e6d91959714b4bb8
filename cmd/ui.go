package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kollel-app/kollel/color"
	"github.com/kollel-app/kollel/style"
	"github.com/kollel-app/kollel/ui"
	"github.com/kollel-app/kollel/util"
	"github.com/kollel-app/kollel/variant"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// axisFlags maps value flags of `ui classes` to their axis.
var axisFlags = map[string]string{
	"color":   ui.AxisColor,
	"variant": ui.AxisVariant,
	"size":    ui.AxisSize,
	"group":   ui.AxisButtonGroup,
}

// flagAxes maps boolean flags of `ui classes` to their axis.
var flagAxes = map[string]string{
	"block":    ui.AxisBlock,
	"square":   ui.AxisSquare,
	"leading":  ui.AxisLeading,
	"trailing": ui.AxisTrailing,
	"loading":  ui.AxisLoading,
	"active":   ui.AxisActive,
}

func completionAxis(name string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		axis, _ := ui.Button.Axis(name)
		return axis.Names(), cobra.ShellCompDirectiveNoFileComp
	}
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Inspect the application UI configuration",
}

func init() {
	uiCmd.AddCommand(uiClassesCmd)

	for flag, axis := range axisFlags {
		uiClassesCmd.Flags().String(flag, "", fmt.Sprintf("Button %s", axis))
		lo.Must0(uiClassesCmd.RegisterFlagCompletionFunc(flag, completionAxis(axis)))
	}
	for flag, axis := range flagAxes {
		uiClassesCmd.Flags().Bool(flag, false, fmt.Sprintf("Button %s", axis))
	}

	uiClassesCmd.Flags().StringP("slot", "s", "", "Print the classes of a single slot")
	uiClassesCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(uiClassesCmd.RegisterFlagCompletionFunc("slot", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(ui.Button.SlotNames(), func(s variant.Slot, _ int) string { return string(s) }), cobra.ShellCompDirectiveNoFileComp
	}))

	uiClassesCmd.SetOut(os.Stdout)
}

// selectionFromFlags collects the axes set on the command line.
func selectionFromFlags(cmd *cobra.Command) variant.Selection {
	sel := variant.Selection{}
	for flag, axis := range axisFlags {
		if cmd.Flags().Changed(flag) {
			sel[axis] = lo.Must(cmd.Flags().GetString(flag))
		}
	}
	for flag, axis := range flagAxes {
		if cmd.Flags().Changed(flag) {
			sel[axis] = variant.Bool(lo.Must(cmd.Flags().GetBool(flag)))
		}
	}
	return sel
}

// printClasses lists the slots of resolved in declaration order.
func printClasses(w io.Writer, table variant.Table, sel variant.Selection, resolved map[variant.Slot]string) {
	effective := table.Effective(sel)
	heading := fmt.Sprintf("%s %s %s", effective[ui.AxisColor], effective[ui.AxisVariant], effective[ui.AxisSize])
	_, _ = fmt.Fprintln(w, style.Tag(color.New("230"), color.Semantic(effective[ui.AxisColor]))(heading))

	matched := lo.CountBy(table.Compounds, func(c variant.Compound) bool { return c.Matches(effective) })
	_, _ = fmt.Fprintln(w, style.Faint(util.Quantify(matched, "compound rule", "compound rules")+" applied"))

	for _, slot := range table.SlotNames() {
		_, _ = fmt.Fprintf(w, "%s %s\n", style.Key(string(slot)+":"), resolved[slot])
	}
}

var uiClassesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Resolve the classes of a button",
	Example: `  kollel ui classes --color neutral --variant outline
  kollel ui classes --size xs --square --slot base
  kollel ui classes --loading --trailing --json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sel := selectionFromFlags(cmd)
		handleErr(ui.Button.Check(sel))

		resolved := ui.App.Resolve(sel)

		if slot := lo.Must(cmd.Flags().GetString("slot")); slot != "" {
			classes, ok := resolved[variant.Slot(slot)]
			if !ok {
				names := lo.Map(ui.Button.SlotNames(), func(s variant.Slot, _ int) string { return string(s) })
				handleErr(&variant.UnknownValueError{Axis: "slot", Value: slot, Suggestion: variant.Suggest(slot, names)})
			}
			cmd.Println(classes)
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encodeJSON(cmd.OutOrStdout(), resolved))
			return
		}

		printClasses(cmd.OutOrStdout(), ui.Button, sel, resolved)
	},
}

func init() {
	uiCmd.AddCommand(uiShowCmd)
	uiShowCmd.Flags().BoolP("yaml", "y", false, "Format the output as YAML")
	uiShowCmd.SetOut(os.Stdout)
}

var uiShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the application UI configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(encode(cmd.OutOrStdout(), ui.App, lo.Must(cmd.Flags().GetBool("yaml"))))
	},
}

func init() {
	uiCmd.AddCommand(uiSchemaCmd)
	uiSchemaCmd.SetOut(os.Stdout)
}

var uiSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the application UI configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(encodeJSON(cmd.OutOrStdout(), ui.Schema()))
	},
}
