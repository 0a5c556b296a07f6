// A command line tool extracting values from text with parsefmt templates
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = struct {
	cobra.Command
	template      string
	caseSensitive bool
	engine        string
	withDate      bool
	withTime      bool
	verbose       bool
}{
	Command: cobra.Command{
		Use:           "parsefmt",
		SilenceUsage:  true,
		SilenceErrors: true,
		Short:         "Extract values from text with {name:type} templates",
		Long: `Extract values from text with {name:type} templates

Template fields:
   {}            anonymous field
   {name}        named field
   {:type}       anonymous typed field
   {name:type}   named typed field
   {{ and }}     literal braces

Types: d, f, w, tg, ta, te, th, ts, ti (date and time with --date, --time)

Every result is printed as one JSON object per line.`,
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootCmd.template, "template", "t", "", "Set template")
	rootCmd.MarkPersistentFlagRequired("template")
	flags.BoolVarP(&rootCmd.caseSensitive, "case-sensitive", "c", false, "Match template literals case sensitively")
	flags.StringVar(&rootCmd.engine, "engine", "native", "Set regex engine: native or re2")
	flags.BoolVar(&rootCmd.withDate, "date", false, "Register date converter")
	flags.BoolVar(&rootCmd.withTime, "time", false, "Register time converter")
	flags.BoolVarP(&rootCmd.verbose, "verbose", "v", false, "Log compiled expressions and skipped matches")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
