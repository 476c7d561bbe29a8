// ABOUTME: Tests for the embedded demo dataset
// ABOUTME: Checks parseability and referential integrity between fixtures
package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venaworks/studiodesk/models"
)

func TestFixturesParse(t *testing.T) {
	f, err := loadFixtures()
	require.NoError(t, err)

	assert.NotEmpty(t, f.Profile.CompanyName)
	assert.NotEmpty(t, f.Packages)
	assert.NotEmpty(t, f.Clients)
	assert.NotEmpty(t, f.Projects)
	assert.NotEmpty(t, f.Revisions)
}

func TestFixturesHaveStableIDs(t *testing.T) {
	f, err := loadFixtures()
	require.NoError(t, err)

	for _, c := range f.Clients {
		assert.NotEmpty(t, c.ID, "client %s needs a fixed id", c.Name)
	}
	for _, p := range f.Projects {
		assert.NotEmpty(t, p.ID, "project %s needs a fixed id", p.ProjectName)
	}
	for _, r := range f.Revisions {
		assert.NotEmpty(t, r.ID)
	}
}

func TestFixtureReferencesResolve(t *testing.T) {
	f, err := loadFixtures()
	require.NoError(t, err)

	clients := idSet(f.Clients)
	projects := idSet(f.Projects)
	packages := idSet(f.Packages)
	members := idSet(f.TeamMembers)
	cards := idSet(f.Cards)

	for _, p := range f.Projects {
		assert.Contains(t, clients, p.ClientID, "project %s references unknown client", p.ProjectName)
		assert.Contains(t, packages, p.PackageID, "project %s references unknown package", p.ProjectName)
		for _, member := range p.Team {
			assert.Contains(t, members, member.MemberID)
		}
	}
	for _, r := range f.Revisions {
		assert.Contains(t, projects, r.ProjectID, "revision %s references unknown project", r.ID)
		assert.Contains(t, members, r.FreelancerID)
	}
	for _, txn := range f.Transactions {
		if txn.ProjectID != "" {
			assert.Contains(t, projects, txn.ProjectID)
		}
		if txn.CardID != "" {
			assert.Contains(t, cards, txn.CardID)
		}
	}
	for _, pocket := range f.FinancialPockets {
		if pocket.SourceCardID != "" {
			assert.Contains(t, cards, pocket.SourceCardID)
		}
	}
	for _, payment := range f.TeamProjectPayments {
		assert.Contains(t, projects, payment.ProjectID)
		assert.Contains(t, members, payment.TeamMemberID)
	}
}

func TestFixtureStatusesUseKnownValues(t *testing.T) {
	f, err := loadFixtures()
	require.NoError(t, err)

	validLead := map[string]bool{
		models.LeadStatusDiscussion: true,
		models.LeadStatusFollowUp:   true,
		models.LeadStatusConverted:  true,
		models.LeadStatusRejected:   true,
	}
	for _, l := range f.Leads {
		assert.True(t, validLead[l.Status], "lead %s has unknown status %q", l.Name, l.Status)
	}

	validRevision := map[string]bool{
		models.RevisionStatusPending:    true,
		models.RevisionStatusInProgress: true,
		models.RevisionStatusCompleted:  true,
	}
	for _, r := range f.Revisions {
		assert.True(t, validRevision[r.Status], "revision %s has unknown status %q", r.ID, r.Status)
	}
}

func idSet[T models.Entity](items []T) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		out[item.EntityID()] = true
	}
	return out
}
