// ABOUTME: Status CLI command
// ABOUTME: Loads everything and reports per-collection counts and failures
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/venaworks/studiodesk/store"
)

// StatusCommand loads all collections and prints a summary. Partial
// failures are reported per collection; the data that did load is still
// counted.
func StatusCommand(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	fs.Parse(args)

	loadErr := st.Load(ctx)

	fmt.Println(st.Summary())
	if profile := st.Profile.Get(); profile != nil {
		fmt.Printf("profile: %s <%s>\n", profile.CompanyName, profile.Email)
	} else if st.Profile.Err() == nil {
		fmt.Println("profile: not created yet")
	}

	if loadErr != nil {
		for _, name := range st.FailedCollections() {
			fmt.Printf("✗ %s failed to load\n", name)
		}
		return fmt.Errorf("some collections failed to load: %w", loadErr)
	}

	fmt.Println("✓ All collections loaded")
	return nil
}
