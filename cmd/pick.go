package cmd

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kollel-app/kollel/ui"
	"github.com/kollel-app/kollel/variant"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// pickPrompts asks for every value axis of table, then for its flags in one multi select.
func pickPrompts(table variant.Table) (values []*survey.Select, flags *survey.MultiSelect) {
	flags = &survey.MultiSelect{Message: "Flags"}

	for _, axis := range table.Axes {
		if axis.IsFlag() {
			flags.Options = append(flags.Options, axis.Name)
			continue
		}

		prompt := &survey.Select{
			Message: axis.Name,
			Options: append([]string{"(none)"}, axis.Names()...),
		}
		prompt.Default = lo.Ternary(table.Defaults[axis.Name] != "", table.Defaults[axis.Name], "(none)")
		values = append(values, prompt)
	}
	return values, flags
}

// pickedSelection converts prompt answers into a selection. Unchecked flags are left unset.
func pickedSelection(values []*survey.Select, answers []string, checked []string) variant.Selection {
	sel := variant.Selection{}
	for i, prompt := range values {
		if answers[i] != "(none)" {
			sel[prompt.Message] = answers[i]
		}
	}
	for _, flag := range checked {
		sel[flag] = variant.Bool(true)
	}
	return sel
}

func init() {
	uiCmd.AddCommand(uiPickCmd)
	uiPickCmd.SetOut(os.Stdout)
}

var uiPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose button variants interactively and print the classes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		values, flags := pickPrompts(ui.Button)

		answers := make([]string, len(values))
		for i, prompt := range values {
			handleErr(survey.AskOne(prompt, &answers[i]))
		}

		var checked []string
		handleErr(survey.AskOne(flags, &checked))

		sel := pickedSelection(values, answers, checked)
		handleErr(ui.Button.Check(sel))
		printClasses(cmd.OutOrStdout(), ui.Button, sel, ui.App.Resolve(sel))
	},
}
