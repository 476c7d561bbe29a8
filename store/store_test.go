// ABOUTME: Tests for the aggregate store: parallel load and revision plumbing
// ABOUTME: Builds stores from in-memory fakes for every collection
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venaworks/studiodesk/models"
	"github.com/venaworks/studiodesk/remote"
)

// genericFake is a read-only collectionAPI for load tests.
type genericFake[T models.Entity] struct {
	items []T
	err   error
}

func (g *genericFake[T]) GetAll(ctx context.Context) ([]T, error) {
	if g.err != nil {
		return nil, g.err
	}
	out := make([]T, len(g.items))
	copy(out, g.items)
	return out, nil
}

func (g *genericFake[T]) Create(ctx context.Context, item T) (*T, error) {
	return nil, errors.New("not supported")
}

func (g *genericFake[T]) Update(ctx context.Context, id string, patch remote.Patch) (*T, error) {
	return nil, errors.New("not supported")
}

func (g *genericFake[T]) Delete(ctx context.Context, id string) error {
	return errors.New("not supported")
}

type fakeRevisions struct {
	nextID int
	update func(rev models.Revision, patch remote.Patch) models.Revision
	byID   map[string]models.Revision
}

func (f *fakeRevisions) Create(ctx context.Context, rev models.Revision) (*models.Revision, error) {
	f.nextID++
	rev.ID = fmt.Sprintf("rev-%d", f.nextID)
	if f.byID == nil {
		f.byID = map[string]models.Revision{}
	}
	f.byID[rev.ID] = rev
	return &rev, nil
}

func (f *fakeRevisions) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeRevisions) Update(ctx context.Context, id string, patch remote.Patch) (*models.Revision, error) {
	rev, ok := f.byID[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	if f.update != nil {
		rev = f.update(rev, patch)
	}
	f.byID[id] = rev
	return &rev, nil
}

type fakeStoreOpts struct {
	clientsErr  error
	projects    []models.Project
	clients     []models.Client
	profile     *models.Profile
	revisionAPI *fakeRevisions
}

func newTestStore(opts fakeStoreOpts) *Store {
	revs := opts.revisionAPI
	if revs == nil {
		revs = &fakeRevisions{}
	}
	return &Store{
		Clients:             NewResource[models.Client](&genericFake[models.Client]{items: opts.clients, err: opts.clientsErr}),
		Projects:            NewResource[models.Project](&genericFake[models.Project]{items: opts.projects}),
		TeamMembers:         NewResource[models.TeamMember](&genericFake[models.TeamMember]{}),
		Transactions:        NewResource[models.Transaction](&genericFake[models.Transaction]{}),
		Packages:            NewResource[models.Package](&genericFake[models.Package]{}),
		AddOns:              NewResource[models.AddOn](&genericFake[models.AddOn]{}),
		Cards:               NewResource[models.Card](&genericFake[models.Card]{}),
		Pockets:             NewResource[models.FinancialPocket](&genericFake[models.FinancialPocket]{}),
		Leads:               NewResource[models.Lead](&genericFake[models.Lead]{}),
		Assets:              NewResource[models.Asset](&genericFake[models.Asset]{}),
		Contracts:           NewResource[models.Contract](&genericFake[models.Contract]{}),
		ClientFeedback:      NewResource[models.ClientFeedback](&genericFake[models.ClientFeedback]{}),
		SocialMediaPosts:    NewResource[models.SocialMediaPost](&genericFake[models.SocialMediaPost]{}),
		PromoCodes:          NewResource[models.PromoCode](&genericFake[models.PromoCode]{}),
		SOPs:                NewResource[models.SOP](&genericFake[models.SOP]{}),
		Notifications:       NewResource[models.Notification](&genericFake[models.Notification]{}),
		TeamProjectPayments: NewResource[models.TeamProjectPayment](&genericFake[models.TeamProjectPayment]{}),
		TeamPaymentRecords:  NewResource[models.TeamPaymentRecord](&genericFake[models.TeamPaymentRecord]{}),
		RewardLedgerEntries: NewResource[models.RewardLedgerEntry](&genericFake[models.RewardLedgerEntry]{}),
		Profile:             NewProfileState(&fakeProfileAPI{profile: opts.profile}),
		revisions:           revs,
		log:                 slog.Default(),
	}
}

func TestLoadAllCollections(t *testing.T) {
	st := newTestStore(fakeStoreOpts{
		clients:  []models.Client{{ID: "c1", Name: "Budi & Sinta"}},
		projects: []models.Project{{ID: "p1", ProjectName: "Pernikahan Budi & Sinta"}},
	})

	require.NoError(t, st.Load(context.Background()))
	assert.Equal(t, 1, st.Clients.Len())
	assert.Equal(t, 1, st.Projects.Len())
	assert.True(t, st.Leads.Loaded())
	assert.Empty(t, st.FailedCollections())
}

func TestInitRunsExactlyOnce(t *testing.T) {
	st := newTestStore(fakeStoreOpts{
		clients: []models.Client{{ID: "c1"}},
	})

	require.NoError(t, st.Init(context.Background()))
	assert.Equal(t, 1, st.Clients.Len())

	// A second Init is a no-op even if the backend changed.
	fake := &genericFake[models.Client]{items: []models.Client{{ID: "c1"}, {ID: "c2"}}}
	st.Clients = NewResource[models.Client](fake)
	require.NoError(t, st.Init(context.Background()))
	assert.Equal(t, 0, st.Clients.Len())
}

func TestLoadPartialFailureKeepsSiblings(t *testing.T) {
	boom := errors.New("clients table unreachable")
	st := newTestStore(fakeStoreOpts{
		clientsErr: boom,
		projects:   []models.Project{{ID: "p1", ProjectName: "Prewedding Dewi"}},
	})

	err := st.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "clients")

	// The failing collection reports its error; siblings load normally.
	assert.Equal(t, []string{"clients"}, st.FailedCollections())
	assert.Equal(t, 1, st.Projects.Len())
	assert.True(t, st.Projects.Loaded())
	assert.False(t, st.Clients.Loaded())
}

func TestCreateRevisionAttachesToProject(t *testing.T) {
	st := newTestStore(fakeStoreOpts{
		projects: []models.Project{{
			ID:          "p1",
			ProjectName: "Pernikahan Budi & Sinta",
			Revisions:   []models.Revision{{ID: "rev-old", ProjectID: "p1"}},
		}},
	})
	require.NoError(t, st.Projects.Load(context.Background()))

	created, err := st.CreateRevision(context.Background(), models.Revision{
		ProjectID:  "p1",
		AdminNotes: "Cerahkan foto keluarga.",
		Status:     models.RevisionStatusPending,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	project, ok := st.Projects.Get("p1")
	require.True(t, ok)
	require.Len(t, project.Revisions, 2)
	assert.Equal(t, created.ID, project.Revisions[0].ID)
	assert.Equal(t, "rev-old", project.Revisions[1].ID)
}

func TestUpdateRevisionReplacesInsideProject(t *testing.T) {
	revs := &fakeRevisions{
		update: func(rev models.Revision, patch remote.Patch) models.Revision {
			if v, ok := patch["status"]; ok {
				rev.Status = v.(string)
			}
			return rev
		},
	}
	st := newTestStore(fakeStoreOpts{
		projects:    []models.Project{{ID: "p1", ProjectName: "Prewedding Dewi"}},
		revisionAPI: revs,
	})
	require.NoError(t, st.Projects.Load(context.Background()))

	created, err := st.CreateRevision(context.Background(), models.Revision{
		ProjectID: "p1",
		Status:    models.RevisionStatusPending,
	})
	require.NoError(t, err)

	updated, err := st.UpdateRevision(context.Background(), created.ID,
		remote.Patch{"status": models.RevisionStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.RevisionStatusCompleted, updated.Status)

	project, _ := st.Projects.Get("p1")
	require.Len(t, project.Revisions, 1)
	assert.Equal(t, models.RevisionStatusCompleted, project.Revisions[0].Status)
}

func TestDeleteRevisionDetachesFromProject(t *testing.T) {
	st := newTestStore(fakeStoreOpts{
		projects: []models.Project{{ID: "p1", ProjectName: "Pernikahan Budi & Sinta"}},
	})
	require.NoError(t, st.Projects.Load(context.Background()))

	first, err := st.CreateRevision(context.Background(), models.Revision{ProjectID: "p1"})
	require.NoError(t, err)
	second, err := st.CreateRevision(context.Background(), models.Revision{ProjectID: "p1"})
	require.NoError(t, err)

	require.NoError(t, st.DeleteRevision(context.Background(), first.ID))

	project, ok := st.Projects.Get("p1")
	require.True(t, ok)
	require.Len(t, project.Revisions, 1)
	assert.Equal(t, second.ID, project.Revisions[0].ID)
}

func TestSummaryCountsEveryCollection(t *testing.T) {
	st := newTestStore(fakeStoreOpts{
		clients: []models.Client{{ID: "c1"}, {ID: "c2"}},
	})
	require.NoError(t, st.Load(context.Background()))

	summary := st.Summary()
	assert.Contains(t, summary, "clients=2")
	assert.Contains(t, summary, "projects=0")
	assert.Contains(t, summary, "rewardLedgerEntries=0")
}
