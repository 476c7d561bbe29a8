// ABOUTME: Integration tests against a real Postgres instance
// ABOUTME: Skipped unless STUDIODESK_TEST_DATABASE_URL is set
package remote

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venaworks/studiodesk/models"
)

func openTestClient(t *testing.T) (*Client, context.Context) {
	t.Helper()

	url := os.Getenv("STUDIODESK_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("STUDIODESK_TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	client, err := Open(ctx, url, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)
	t.Cleanup(client.Close)

	require.NoError(t, client.InitSchema(ctx))
	return client, ctx
}

func TestIntegrationClientCRUD(t *testing.T) {
	client, ctx := openTestClient(t)
	api := NewAPI[models.Client](client, ClientsTable)

	name := fmt.Sprintf("Integration Client %d", time.Now().UnixNano())
	created, err := api.Create(ctx, models.Client{
		Name:       name,
		Email:      "integration@example.com",
		Status:     models.ClientStatusActive,
		ClientType: "Langsung",
		Since:      "2025-08-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	t.Cleanup(func() { _ = api.Delete(ctx, created.ID) })

	all, err := api.GetAll(ctx)
	require.NoError(t, err)
	found := false
	for _, c := range all {
		if c.ID == created.ID {
			found = true
			assert.Equal(t, name, c.Name)
		}
	}
	assert.True(t, found, "created client should appear in GetAll")

	updated, err := api.Update(ctx, created.ID, Patch{"status": models.ClientStatusInactive})
	require.NoError(t, err)
	assert.Equal(t, models.ClientStatusInactive, updated.Status)
	assert.Equal(t, name, updated.Name)

	require.NoError(t, api.Delete(ctx, created.ID))
	all, err = api.GetAll(ctx)
	require.NoError(t, err)
	for _, c := range all {
		assert.NotEqual(t, created.ID, c.ID)
	}
}

func TestIntegrationUpdateMissingRowIsErrNotFound(t *testing.T) {
	client, ctx := openTestClient(t)
	api := NewAPI[models.Lead](client, LeadsTable)

	_, err := api.Update(ctx, "does-not-exist", Patch{"status": models.LeadStatusRejected})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIntegrationProjectCarriesRevisions(t *testing.T) {
	client, ctx := openTestClient(t)
	revisions := NewRevisionAPI(client)
	projects := NewProjectAPI(client, revisions)

	created, err := projects.Create(ctx, models.Project{
		ProjectName:   fmt.Sprintf("Integration Project %d", time.Now().UnixNano()),
		Date:          "2025-09-01",
		Status:        "Dikonfirmasi",
		PaymentStatus: models.PaymentStatusUnpaid,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Revisions)
	assert.Empty(t, created.Revisions)
	t.Cleanup(func() { _ = projects.Delete(ctx, created.ID) })

	rev, err := revisions.Create(ctx, models.Revision{
		ProjectID:  created.ID,
		Date:       time.Now().Format(time.RFC3339),
		AdminNotes: "Integration revision",
		Status:     models.RevisionStatusPending,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = revisions.Delete(ctx, rev.ID) })

	all, err := projects.GetAll(ctx)
	require.NoError(t, err)
	for _, p := range all {
		if p.ID == created.ID {
			require.Len(t, p.Revisions, 1)
			assert.Equal(t, rev.ID, p.Revisions[0].ID)
		}
	}
}

func TestIntegrationProfileSingleton(t *testing.T) {
	client, ctx := openTestClient(t)
	api := NewProfileAPI(client)

	saved, err := api.Save(ctx, models.Profile{
		FullName:    "Integration Vendor",
		CompanyName: "Integration Pictures",
	})
	require.NoError(t, err)
	assert.Equal(t, "Integration Pictures", saved.CompanyName)

	// Saving again must update the same row, not add a second one.
	saved, err = api.Save(ctx, models.Profile{
		FullName:    "Integration Vendor",
		CompanyName: "Integration Pictures Updated",
	})
	require.NoError(t, err)
	assert.Equal(t, "Integration Pictures Updated", saved.CompanyName)

	got, err := api.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Integration Pictures Updated", got.CompanyName)

	rows, err := client.selectLimit(ctx, ProfileTable.Table, 5)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
