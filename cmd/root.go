// Package cmd implements the command-line interface for rtgrab.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rtgrab-cli/rtgrab/color"
	"github.com/rtgrab-cli/rtgrab/constant"
	"github.com/rtgrab-cli/rtgrab/icon"
	"github.com/rtgrab-cli/rtgrab/inline"
	"github.com/rtgrab-cli/rtgrab/key"
	"github.com/rtgrab-cli/rtgrab/log"
	"github.com/rtgrab-cli/rtgrab/rt"
	"github.com/rtgrab-cli/rtgrab/style"
	"github.com/rtgrab-cli/rtgrab/util"
	"github.com/rtgrab-cli/rtgrab/version"
	"github.com/rtgrab-cli/rtgrab/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().BoolP("resolve", "r", false, "Resolve every episode of a series into a full record")
	rootCmd.Flags().BoolP("pretty", "p", false, "Render a human-readable summary instead of JSON")
	rootCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the rtgrab application.
var rootCmd = &cobra.Command{
	Use:   constant.Rtgrab + " [url]",
	Short: "A command-line extractor for Rooster Teeth episodes and series",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A command-line extractor for Rooster Teeth episodes and series"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		out := os.Stdout
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			f, err := os.Create(path)
			handleErr(err)
			defer util.Ignore(f.Close)
			out = f
		}

		options := &inline.Options{
			URL:      args[0],
			Resolver: rt.New(rt.Options{}),
			Resolve:  lo.Must(cmd.Flags().GetBool("resolve")),
			Pretty:   lo.Must(cmd.Flags().GetBool("pretty")),
			Out:      out,
		}
		handleErr(inline.Run(options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
