package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/dcntforecast/internal/catalog"
)

var catalogSections = []string{"regions", "analyses", "granularities", "diseases"}

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:       "catalog [regions|analyses|granularities|diseases]",
	Short:     "List the choices offered by the console",
	Long:      `Prints the federative units, analysis types, granularities and disease classes with the codes passed to the extractor.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: catalogSections,
	RunE: func(cmd *cobra.Command, args []string) error {
		sections := catalogSections
		if len(args) == 1 {
			sections = args
		}
		out := cmd.OutOrStdout()
		for i, s := range sections {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printCatalogSection(out, s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func printCatalogSection(w io.Writer, section string) {
	switch section {
	case "regions":
		fmt.Fprintf(w, "Regions (UF, IBGE code):\n")
		for _, r := range catalog.Regions() {
			fmt.Fprintf(w, "  %-3s %-3s %s\n", r.Code, r.IBGE, r.Name)
		}
	case "analyses":
		fmt.Fprintf(w, "Analysis types (system, folder suffix):\n")
		for _, a := range catalog.AnalysisTypes() {
			fmt.Fprintf(w, "  %-14s %-14s %s\n", a.System, a.Slug, a.Label)
		}
	case "granularities":
		fmt.Fprintf(w, "Granularities:\n")
		for _, g := range catalog.Granularities() {
			fmt.Fprintf(w, "  %-6s %s\n", g.Mode, g.Label)
		}
	case "diseases":
		fmt.Fprintf(w, "Disease classes (ICD-10 prefixes):\n")
		for _, d := range catalog.DiseaseClasses() {
			fmt.Fprintf(w, "  %-14s %-32s %s\n", d.Slug, strings.Join(d.FilterCodes, ","), d.Label)
		}
	}
}
