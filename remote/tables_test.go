// ABOUTME: Sanity tests over every mapping table and the entity codec
// ABOUTME: Guards against duplicate fields and columns drifting apart
package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venaworks/studiodesk/models"
)

func allMappings() []Mapping {
	return []Mapping{
		ClientsTable, ProjectsTable, RevisionsTable, TeamMembersTable,
		TransactionsTable, PackagesTable, AddOnsTable, CardsTable,
		PocketsTable, LeadsTable, AssetsTable, ContractsTable,
		ClientFeedbackTable, SocialMediaPostsTable, PromoCodesTable,
		SOPsTable, NotificationsTable, TeamProjectPaymentsTable,
		TeamPaymentRecordsTable, RewardLedgerEntriesTable, ProfileTable,
	}
}

func TestMappingsAreWellFormed(t *testing.T) {
	tables := map[string]bool{}
	for _, m := range allMappings() {
		assert.NotEmpty(t, m.Table)
		assert.False(t, tables[m.Table], "duplicate table %s", m.Table)
		tables[m.Table] = true

		if !m.Singleton {
			assert.NotEmpty(t, m.OrderBy, "%s needs an order", m.Table)
		}

		names := map[string]bool{}
		cols := map[string]bool{}
		for _, f := range m.Fields {
			assert.NotEmpty(t, f.Name, "%s has an unnamed field", m.Table)
			assert.NotEmpty(t, f.Column, "%s field %s has no column", m.Table, f.Name)
			assert.False(t, names[f.Name], "%s duplicates field %s", m.Table, f.Name)
			assert.False(t, cols[f.Column], "%s duplicates column %s", m.Table, f.Column)
			names[f.Name] = true
			cols[f.Column] = true

			// The id is implicit, never declared.
			assert.NotEqual(t, "id", f.Name, "%s declares id explicitly", m.Table)
		}
	}
}

func TestClientRoundTrip(t *testing.T) {
	client := models.Client{
		ID: "c1", Name: "Budi & Sinta", Email: "budi@example.com",
		Status: models.ClientStatusActive, ClientType: "Langsung",
		PortalAccessID: models.NewPortalAccessID(),
	}

	row, err := encodeEntity(ClientsTable, client)
	require.NoError(t, err)
	assert.Equal(t, "Budi & Sinta", row["name"])
	assert.Equal(t, "Langsung", row["client_type"])
	_, ok := row["id"]
	assert.False(t, ok)

	row["id"] = client.ID
	decoded, err := decodeEntity[models.Client](ClientsTable, row)
	require.NoError(t, err)
	assert.Equal(t, client, decoded)
}

func TestProjectRoundTripKeepsNestedStructures(t *testing.T) {
	project := models.Project{
		ID: "p1", ProjectName: "Pernikahan Budi & Sinta", ClientID: "c1",
		Date: "2025-09-14", Status: "Editing", Progress: 60,
		TotalCost: 24500000, AmountPaid: 12250000,
		PaymentStatus: models.PaymentStatusPartial,
		AddOns:        []models.AddOn{{ID: "a1", Name: "Drone Aerial", Price: 2000000}},
		Team: []models.ProjectTeamAssignment{
			{MemberID: "m1", Name: "Bambang", Role: "Fotografer", Fee: 1500000, Reward: 250000},
		},
		ActiveSubStatuses:           []string{"Editing Foto"},
		ConfirmedSubStatuses:        []string{},
		ClientSubStatusNotes:        map[string]string{"Seleksi Foto": "480 foto dipilih"},
		SubStatusConfirmationSentAt: map[string]string{},
		PrintingDetails:             []models.PrintingItem{},
		CompletedDigitalItems:       []string{},
		Revisions:                   []models.Revision{},
	}

	row, err := encodeEntity(ProjectsTable, project)
	require.NoError(t, err)

	// Revisions live in their own table and never reach a project row.
	_, ok := row["revisions"]
	assert.False(t, ok)

	row["id"] = project.ID
	decoded, err := decodeEntity[models.Project](ProjectsTable, row)
	require.NoError(t, err)

	// The revisions slice is nil after decode; the project API fills it.
	project.Revisions = nil
	assert.Equal(t, project, decoded)
}

func TestProjectDecodeDefaultsNullContainers(t *testing.T) {
	row := map[string]any{"id": "p1"}
	for _, f := range ProjectsTable.Fields {
		row[f.Column] = nil
	}
	row["project_name"] = "Prewedding Dewi"

	decoded, err := decodeEntity[models.Project](ProjectsTable, row)
	require.NoError(t, err)
	assert.NotNil(t, decoded.AddOns)
	assert.NotNil(t, decoded.Team)
	assert.NotNil(t, decoded.ActiveSubStatuses)
	assert.NotNil(t, decoded.ClientSubStatusNotes)
	assert.Len(t, decoded.AddOns, 0)
}

func TestProfileRoundTripWithoutID(t *testing.T) {
	// NULL containers come back as empty, so start from empty ones to
	// make the round-trip exact.
	profile := models.Profile{
		FullName: "Andi Vena", CompanyName: "Vena Pictures",
		IncomeCategories:     []string{"DP Proyek"},
		ExpenseCategories:    []string{},
		ProjectTypes:         []string{"Pernikahan"},
		EventTypes:           []string{},
		AssetCategories:      []string{},
		SOPCategories:        []string{},
		ProjectStatusConfig:  []models.ProjectStatusConfig{{ID: "s1", Name: "Editing", Color: "#f97316", SubStatuses: []string{"Editing Foto"}}},
		NotificationSettings: map[string]bool{"newProject": true},
		SecuritySettings:     map[string]bool{},
	}

	patch, err := PatchOf(profile)
	require.NoError(t, err)
	row := ProfileTable.ToRow(patch)
	_, ok := row["id"]
	assert.False(t, ok)

	decoded, err := decodeEntity[models.Profile](ProfileTable, row)
	require.NoError(t, err)
	assert.Equal(t, profile, decoded)
}

func TestMismatchedShapeIsDecodeError(t *testing.T) {
	row := map[string]any{"id": "c1"}
	for _, f := range ClientsTable.Fields {
		row[f.Column] = nil
	}
	row["name"] = []any{"not", "a", "string"}

	_, err := decodeEntity[models.Client](ClientsTable, row)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "clients", decodeErr.Table)
}
