package cmd

import (
	"os"
	"strings"

	"github.com/kollel-app/kollel/api"
	"github.com/kollel-app/kollel/color"
	"github.com/kollel-app/kollel/icon"
	"github.com/kollel-app/kollel/key"
	"github.com/kollel-app/kollel/open"
	"github.com/kollel-app/kollel/site"
	"github.com/kollel-app/kollel/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(siteCmd)
}

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Inspect the page metadata",
}

func init() {
	siteCmd.AddCommand(siteHeadCmd)
	siteHeadCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	siteHeadCmd.Flags().BoolP("yaml", "y", false, "Format the output as YAML")
	siteHeadCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	siteHeadCmd.SetOut(os.Stdout)
}

var siteHeadCmd = &cobra.Command{
	Use:   "head",
	Short: "Print the document head",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		asJSON := lo.Must(cmd.Flags().GetBool("json"))
		asYAML := lo.Must(cmd.Flags().GetBool("yaml"))
		if asJSON || asYAML {
			handleErr(encode(cmd.OutOrStdout(), site.App, asYAML))
			return
		}

		head := site.App.Head
		cmd.Println(style.Title(head.Title))
		cmd.Printf("%s %s\n", style.Key("baseURL:"), site.App.BaseURL)
		cmd.Printf("%s %s\n", style.Key("charset:"), head.Charset)
		cmd.Printf("%s %s\n", style.Key("viewport:"), head.Viewport)
		for _, link := range head.Link {
			cmd.Printf("%s rel=%s type=%s\n", style.Key("link:"), link.Rel, link.Type)
			cmd.Println(style.Fg(color.Gray)(link.Href))
		}
	},
}

func init() {
	siteCmd.AddCommand(siteIconCmd)
	siteIconCmd.Flags().StringP("letter", "l", site.IconLetter, "Letter drawn on the icon")
	siteIconCmd.Flags().StringP("fill", "f", site.IconFill, "Background color of the icon")
	siteIconCmd.Flags().Bool("svg", false, "Print the svg markup instead of the data URI")
	siteIconCmd.SetOut(os.Stdout)
}

var siteIconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Print the favicon data URI",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		letter := lo.Must(cmd.Flags().GetString("letter"))
		fill := lo.Must(cmd.Flags().GetString("fill"))

		if lo.Must(cmd.Flags().GetBool("svg")) {
			cmd.Println(site.SVG(letter, fill))
			return
		}
		cmd.Println(site.Favicon(letter, fill))
	},
}

func init() {
	siteCmd.AddCommand(siteOpenCmd)
	siteOpenCmd.Flags().Bool("print", false, "Print the resolved URL instead of opening it")
	siteOpenCmd.SetOut(os.Stdout)
}

var siteOpenCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a backend path in the default browser",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := api.JoinURL(viper.GetString(key.APIURL), strings.Join(args, ""))

		if lo.Must(cmd.Flags().GetBool("print")) {
			cmd.Println(target)
			return
		}

		handleErr(open.Start(target))
		cmd.Printf("%s opened %s\n", style.Fg(color.Green)(icon.Get(icon.Link)), target)
	},
}
