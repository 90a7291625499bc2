package cmd

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"

	"github.com/usebeehiiv/beehiiv-mcp/internal/mcp/tools"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalog",
	Long:  "Print the Beehiiv tools this server exposes, with their parameters.",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "print the catalog as JSON")
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	descriptors := tools.Descriptors()

	if toolsJSON {
		b, err := json.MarshalIndent(descriptors, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	cyan := color.New(color.FgCyan)

	fmt.Printf("Tools (%d):\n\n", len(descriptors))
	for _, t := range descriptors {
		cyan.Printf("  %s\n", t.Name)
		fmt.Printf("    %s\n", t.Description)

		schema := t.InputSchema.(*jsonschema.Schema)
		required := make(map[string]bool)
		for _, r := range schema.Required {
			required[r] = true
		}
		names := make([]string, 0, len(schema.Properties))
		for name := range schema.Properties {
			names = append(names, name)
		}
		slices.Sort(names)

		if len(names) == 0 {
			fmt.Printf("    %s\n\n", color.HiBlackString("no parameters"))
			continue
		}
		for _, name := range names {
			if required[name] {
				fmt.Printf("    - %s\n", color.GreenString("%s (required)", name))
			} else {
				fmt.Printf("    - %s\n", name)
			}
		}
		fmt.Println()
	}

	return nil
}
