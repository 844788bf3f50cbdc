package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobmatch/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:       "catalog {job-types|locations|skills}",
	Short:     "List the selectable job types, locations or skills",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"job-types", "locations", "skills"},
	RunE:      runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch args[0] {
	case "job-types":
		table := newTable(out, []string{"Major", "Middle", "Minor"})
		for _, major := range catalog.JobTypes() {
			for _, middle := range major.Middle {
				table.Append([]string{major.Name, middle.Name, strings.Join(middle.Minor, "、")})
			}
		}
		table.Render()
	case "locations":
		table := newTable(out, []string{"Prefecture", "Cities"})
		for _, p := range catalog.Locations() {
			table.Append([]string{p.Name, strings.Join(p.Cities, "、")})
		}
		table.Render()
	case "skills":
		for _, s := range catalog.Skills() {
			fmt.Fprintln(out, s)
		}
	default:
		return fmt.Errorf("unknown catalog %q (want job-types, locations or skills)", args[0])
	}
	return nil
}
