// Package cmd implements the command-line interface for rtgrab.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/rtgrab-cli/rtgrab/inline"
	"github.com/rtgrab-cli/rtgrab/source"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("episode", "e", false, "Generate the JSON Schema for a single episode record")
}

// schemaCmd generates JSON schemas for the structured output records.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the structured output records",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "episode", "video", "thumbnail", "series", "seriesoutput", "failure":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("episode")):
			schema = reflector.Reflect(&source.Episode{})
		default:
			schema = reflector.Reflect(&inline.SeriesOutput{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
