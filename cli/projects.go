// ABOUTME: Project CLI commands
// ABOUTME: Read-only views over the project collection
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/venaworks/studiodesk/store"
)

// ListProjectsCommand lists all projects, newest event first.
func ListProjectsCommand(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-projects", flag.ExitOnError)
	fs.Parse(args)

	if err := st.Projects.Load(ctx); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	projects := st.Projects.Items()
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROJECT\tCLIENT\tDATE\tSTATUS\tPAYMENT\tREVISIONS\tID")
	fmt.Fprintln(w, "-------\t------\t----\t------\t-------\t---------\t--")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ProjectName, p.ClientName, p.Date, p.Status, p.PaymentStatus, len(p.Revisions), shortID(p.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d project(s)\n", len(projects))
	return nil
}
