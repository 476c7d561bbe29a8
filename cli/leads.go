// ABOUTME: Lead CLI commands
// ABOUTME: Track prospects before they convert to clients
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/venaworks/studiodesk/models"
	"github.com/venaworks/studiodesk/store"
)

// AddLeadCommand creates a new lead.
func AddLeadCommand(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-lead", flag.ExitOnError)
	name := fs.String("name", "", "Lead name (required)")
	channel := fs.String("channel", "WhatsApp", "Contact channel")
	location := fs.String("location", "", "Location")
	notes := fs.String("notes", "", "Notes")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	lead := models.Lead{
		Name:           *name,
		ContactChannel: *channel,
		Location:       *location,
		Status:         models.LeadStatusDiscussion,
		Date:           time.Now().Format("2006-01-02"),
		Notes:          *notes,
	}

	created, err := st.Leads.Create(ctx, lead)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	fmt.Printf("✓ Lead created: %s (ID: %s)\n", created.Name, created.ID)
	return nil
}

// ListLeadsCommand lists all leads, newest first.
func ListLeadsCommand(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-leads", flag.ExitOnError)
	fs.Parse(args)

	if err := st.Leads.Load(ctx); err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	leads := st.Leads.Items()
	if len(leads) == 0 {
		fmt.Println("No leads found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHANNEL\tSTATUS\tDATE\tID")
	fmt.Fprintln(w, "----\t-------\t------\t----\t--")
	for _, l := range leads {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.Name, l.ContactChannel, l.Status, l.Date, shortID(l.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d lead(s)\n", len(leads))
	return nil
}
