// ABOUTME: Client CLI commands
// ABOUTME: Human-friendly commands for managing clients
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

// AddClientCommand creates a new client.
func AddClientCommand(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-client", flag.ExitOnError)
	name := fs.String("name", "", "Client name (required)")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	instagram := fs.String("instagram", "", "Instagram handle")
	clientType := fs.String("type", "Langsung", "Client type")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	now := time.Now()
	client := models.Client{
		Name:           *name,
		Email:          *email,
		Phone:          *phone,
		Instagram:      *instagram,
		Since:          now.Format("2006-01-02"),
		Status:         models.ClientStatusActive,
		ClientType:     *clientType,
		LastContact:    now.Format(time.RFC3339),
		PortalAccessID: models.NewPortalAccessID(),
	}

	created, err := st.Clients.Create(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	fmt.Printf("✓ Client created: %s (ID: %s)\n", created.Name, created.ID)
	fmt.Printf("  Portal access: %s\n", created.PortalAccessID)
	return nil
}

// ListClientsCommand lists all clients, newest first.
func ListClientsCommand(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-clients", flag.ExitOnError)
	fs.Parse(args)

	if err := st.Clients.Load(ctx); err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	clients := st.Clients.Items()
	if len(clients) == 0 {
		fmt.Println("No clients found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tTYPE\tPHONE\tID")
	fmt.Fprintln(w, "----\t------\t----\t-----\t--")
	for _, c := range clients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Status, c.ClientType, c.Phone, shortID(c.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d client(s)\n", len(clients))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
