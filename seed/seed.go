// ABOUTME: Demo data importer writing embedded fixtures to the remote store
// ABOUTME: Upserts under fixed ids so repeated imports stay idempotent
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/venaworks/studiodesk/models"
	"github.com/venaworks/studiodesk/remote"
)

//go:embed fixtures.json
var fixturesFS embed.FS

type fixtures struct {
	Profile             models.Profile              `json:"profile"`
	Packages            []models.Package            `json:"packages"`
	AddOns              []models.AddOn              `json:"addOns"`
	Cards               []models.Card               `json:"cards"`
	FinancialPockets    []models.FinancialPocket    `json:"financialPockets"`
	TeamMembers         []models.TeamMember         `json:"teamMembers"`
	Clients             []models.Client             `json:"clients"`
	PromoCodes          []models.PromoCode          `json:"promoCodes"`
	Projects            []models.Project            `json:"projects"`
	Revisions           []models.Revision           `json:"revisions"`
	Transactions        []models.Transaction        `json:"transactions"`
	Leads               []models.Lead               `json:"leads"`
	Assets              []models.Asset              `json:"assets"`
	Contracts           []models.Contract           `json:"contracts"`
	ClientFeedback      []models.ClientFeedback     `json:"clientFeedback"`
	SocialMediaPosts    []models.SocialMediaPost    `json:"socialMediaPosts"`
	SOPs                []models.SOP                `json:"sops"`
	Notifications       []models.Notification       `json:"notifications"`
	TeamProjectPayments []models.TeamProjectPayment `json:"teamProjectPayments"`
	TeamPaymentRecords  []models.TeamPaymentRecord  `json:"teamPaymentRecords"`
	RewardLedgerEntries []models.RewardLedgerEntry  `json:"rewardLedgerEntries"`
}

func loadFixtures() (*fixtures, error) {
	buf, err := fixturesFS.ReadFile("fixtures.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	var f fixtures
	if err := json.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

// Import writes the embedded demo dataset to the remote store. Parents
// go before the records that reference them, so partial imports never
// leave dangling ids.
func Import(ctx context.Context, client *remote.Client, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := loadFixtures()
	if err != nil {
		return err
	}

	if _, err := remote.NewProfileAPI(client).Save(ctx, f.Profile); err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	if err := upsertAll(ctx, client, remote.PackagesTable, f.Packages); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.AddOnsTable, f.AddOns); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.CardsTable, f.Cards); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.PocketsTable, f.FinancialPockets); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.TeamMembersTable, f.TeamMembers); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.ClientsTable, f.Clients); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.PromoCodesTable, f.PromoCodes); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.ProjectsTable, f.Projects); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.RevisionsTable, f.Revisions); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.TransactionsTable, f.Transactions); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.LeadsTable, f.Leads); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.AssetsTable, f.Assets); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.ContractsTable, f.Contracts); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.ClientFeedbackTable, f.ClientFeedback); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.SocialMediaPostsTable, f.SocialMediaPosts); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.SOPsTable, f.SOPs); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.NotificationsTable, f.Notifications); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.TeamProjectPaymentsTable, f.TeamProjectPayments); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.TeamPaymentRecordsTable, f.TeamPaymentRecords); err != nil {
		return err
	}
	if err := upsertAll(ctx, client, remote.RewardLedgerEntriesTable, f.RewardLedgerEntries); err != nil {
		return err
	}

	logger.Info("seed import complete")
	return nil
}

func upsertAll[T models.Entity](ctx context.Context, client *remote.Client, mapping remote.Mapping, items []T) error {
	api := remote.NewAPI[T](client, mapping)
	for _, item := range items {
		if _, err := api.Upsert(ctx, item.EntityID(), item); err != nil {
			return fmt.Errorf("failed to seed %s: %w", mapping.Table, err)
		}
	}
	return nil
}
