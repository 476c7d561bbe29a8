// ABOUTME: Aggregate application state: one resource per remote collection
// ABOUTME: Bulk load runs all collections in parallel; one failure never blanks the rest
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/venaworks/studiodesk/models"
	"github.com/venaworks/studiodesk/remote"
)

// revisionAPI is the slice of the remote revision API the store uses
// when mutating revisions through their owning project.
type revisionAPI interface {
	Create(ctx context.Context, rev models.Revision) (*models.Revision, error)
	Update(ctx context.Context, id string, patch remote.Patch) (*models.Revision, error)
	Delete(ctx context.Context, id string) error
}

// Store holds every local collection plus the profile. Collections are
// independent: each tracks its own loaded flag and last error.
type Store struct {
	Clients             *Resource[models.Client]
	Projects            *Resource[models.Project]
	TeamMembers         *Resource[models.TeamMember]
	Transactions        *Resource[models.Transaction]
	Packages            *Resource[models.Package]
	AddOns              *Resource[models.AddOn]
	Cards               *Resource[models.Card]
	Pockets             *Resource[models.FinancialPocket]
	Leads               *Resource[models.Lead]
	Assets              *Resource[models.Asset]
	Contracts           *Resource[models.Contract]
	ClientFeedback      *Resource[models.ClientFeedback]
	SocialMediaPosts    *Resource[models.SocialMediaPost]
	PromoCodes          *Resource[models.PromoCode]
	SOPs                *Resource[models.SOP]
	Notifications       *Resource[models.Notification]
	TeamProjectPayments *Resource[models.TeamProjectPayment]
	TeamPaymentRecords  *Resource[models.TeamPaymentRecord]
	RewardLedgerEntries *Resource[models.RewardLedgerEntry]
	Profile             *ProfileState

	revisions revisionAPI
	log       *slog.Logger

	initOnce sync.Once
	initErr  error
}

// New wires every resource to its remote API.
func New(client *remote.Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	revisions := remote.NewRevisionAPI(client)
	return &Store{
		Clients:  NewResource[models.Client](remote.NewAPI[models.Client](client, remote.ClientsTable)),
		Projects: NewResource[models.Project](remote.NewProjectAPI(client, revisions)),
		TeamMembers: NewSortedResource[models.TeamMember](remote.NewAPI[models.TeamMember](client, remote.TeamMembersTable),
			func(a, b models.TeamMember) bool { return a.Name < b.Name }),
		Transactions:        NewResource[models.Transaction](remote.NewAPI[models.Transaction](client, remote.TransactionsTable)),
		Packages:            NewAppendResource[models.Package](remote.NewAPI[models.Package](client, remote.PackagesTable)),
		AddOns:              NewAppendResource[models.AddOn](remote.NewAPI[models.AddOn](client, remote.AddOnsTable)),
		Cards:               NewResource[models.Card](remote.NewAPI[models.Card](client, remote.CardsTable)),
		Pockets:             NewResource[models.FinancialPocket](remote.NewAPI[models.FinancialPocket](client, remote.PocketsTable)),
		Leads:               NewResource[models.Lead](remote.NewAPI[models.Lead](client, remote.LeadsTable)),
		Assets:              NewResource[models.Asset](remote.NewAPI[models.Asset](client, remote.AssetsTable)),
		Contracts:           NewResource[models.Contract](remote.NewAPI[models.Contract](client, remote.ContractsTable)),
		ClientFeedback:      NewResource[models.ClientFeedback](remote.NewAPI[models.ClientFeedback](client, remote.ClientFeedbackTable)),
		SocialMediaPosts:    NewResource[models.SocialMediaPost](remote.NewAPI[models.SocialMediaPost](client, remote.SocialMediaPostsTable)),
		PromoCodes:          NewResource[models.PromoCode](remote.NewAPI[models.PromoCode](client, remote.PromoCodesTable)),
		SOPs:                NewResource[models.SOP](remote.NewAPI[models.SOP](client, remote.SOPsTable)),
		Notifications:       NewResource[models.Notification](remote.NewAPI[models.Notification](client, remote.NotificationsTable)),
		TeamProjectPayments: NewResource[models.TeamProjectPayment](remote.NewAPI[models.TeamProjectPayment](client, remote.TeamProjectPaymentsTable)),
		TeamPaymentRecords:  NewResource[models.TeamPaymentRecord](remote.NewAPI[models.TeamPaymentRecord](client, remote.TeamPaymentRecordsTable)),
		RewardLedgerEntries: NewResource[models.RewardLedgerEntry](remote.NewAPI[models.RewardLedgerEntry](client, remote.RewardLedgerEntriesTable)),
		Profile:             NewProfileState(remote.NewProfileAPI(client)),
		revisions:           revisions,
		log:                 logger,
	}
}

type loader struct {
	name string
	load func(ctx context.Context) error
}

func (s *Store) loaders() []loader {
	return []loader{
		{"clients", s.Clients.Load},
		{"projects", s.Projects.Load},
		{"teamMembers", s.TeamMembers.Load},
		{"transactions", s.Transactions.Load},
		{"packages", s.Packages.Load},
		{"addOns", s.AddOns.Load},
		{"cards", s.Cards.Load},
		{"pockets", s.Pockets.Load},
		{"leads", s.Leads.Load},
		{"assets", s.Assets.Load},
		{"contracts", s.Contracts.Load},
		{"clientFeedback", s.ClientFeedback.Load},
		{"socialMediaPosts", s.SocialMediaPosts.Load},
		{"promoCodes", s.PromoCodes.Load},
		{"sops", s.SOPs.Load},
		{"notifications", s.Notifications.Load},
		{"teamProjectPayments", s.TeamProjectPayments.Load},
		{"teamPaymentRecords", s.TeamPaymentRecords.Load},
		{"rewardLedgerEntries", s.RewardLedgerEntries.Load},
		{"profile", s.Profile.Load},
	}
}

// Init runs the initial bulk load exactly once. Repeated calls return
// the first load's result without refetching; use Load for an explicit
// refresh.
func (s *Store) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.Load(ctx)
	})
	return s.initErr
}

// Load fetches every collection in parallel. All loads run to
// completion regardless of sibling failures; the returned error joins
// every per-collection failure, each tagged with its collection name.
func (s *Store) Load(ctx context.Context) error {
	var g errgroup.Group
	var mu sync.Mutex
	var errs []error

	for _, l := range s.loaders() {
		l := l
		g.Go(func() error {
			if err := l.load(ctx); err != nil {
				s.log.Error("collection load failed", "collection", l.name, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", l.name, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.log.Info("all collections loaded")
	return nil
}

// FailedCollections lists the names of collections whose last load
// failed, in load order.
func (s *Store) FailedCollections() []string {
	var failed []string
	for _, l := range s.loaders() {
		name := l.name
		switch name {
		case "profile":
			if s.Profile.Err() != nil {
				failed = append(failed, name)
			}
		default:
			if s.errFor(name) != nil {
				failed = append(failed, name)
			}
		}
	}
	return failed
}

func (s *Store) errFor(name string) error {
	switch name {
	case "clients":
		return s.Clients.Err()
	case "projects":
		return s.Projects.Err()
	case "teamMembers":
		return s.TeamMembers.Err()
	case "transactions":
		return s.Transactions.Err()
	case "packages":
		return s.Packages.Err()
	case "addOns":
		return s.AddOns.Err()
	case "cards":
		return s.Cards.Err()
	case "pockets":
		return s.Pockets.Err()
	case "leads":
		return s.Leads.Err()
	case "assets":
		return s.Assets.Err()
	case "contracts":
		return s.Contracts.Err()
	case "clientFeedback":
		return s.ClientFeedback.Err()
	case "socialMediaPosts":
		return s.SocialMediaPosts.Err()
	case "promoCodes":
		return s.PromoCodes.Err()
	case "sops":
		return s.SOPs.Err()
	case "notifications":
		return s.Notifications.Err()
	case "teamProjectPayments":
		return s.TeamProjectPayments.Err()
	case "teamPaymentRecords":
		return s.TeamPaymentRecords.Err()
	case "rewardLedgerEntries":
		return s.RewardLedgerEntries.Err()
	}
	return nil
}

// CreateRevision writes a new revision and attaches it to its project's
// local revision list, newest first.
func (s *Store) CreateRevision(ctx context.Context, rev models.Revision) (*models.Revision, error) {
	created, err := s.revisions.Create(ctx, rev)
	if err != nil {
		return nil, err
	}

	s.Projects.Mutate(created.ProjectID, func(p *models.Project) {
		p.Revisions = append([]models.Revision{*created}, p.Revisions...)
	})
	return created, nil
}

// UpdateRevision patches a revision and replaces it inside its
// project's local revision list.
func (s *Store) UpdateRevision(ctx context.Context, id string, patch remote.Patch) (*models.Revision, error) {
	updated, err := s.revisions.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.Projects.Mutate(updated.ProjectID, func(p *models.Project) {
		for i := range p.Revisions {
			if p.Revisions[i].ID == id {
				p.Revisions[i] = *updated
				break
			}
		}
	})
	return updated, nil
}

// DeleteRevision removes a revision remotely and drops it from its
// project's local revision list.
func (s *Store) DeleteRevision(ctx context.Context, id string) error {
	if err := s.revisions.Delete(ctx, id); err != nil {
		return err
	}

	for _, project := range s.Projects.Items() {
		for _, rev := range project.Revisions {
			if rev.ID != id {
				continue
			}
			s.Projects.Mutate(project.ID, func(p *models.Project) {
				for i := range p.Revisions {
					if p.Revisions[i].ID == id {
						p.Revisions = append(p.Revisions[:i], p.Revisions[i+1:]...)
						break
					}
				}
			})
			return nil
		}
	}
	return nil
}

// Summary returns a short human-readable count line per loaded
// collection, for the status command.
func (s *Store) Summary() string {
	parts := []string{
		fmt.Sprintf("clients=%d", s.Clients.Len()),
		fmt.Sprintf("projects=%d", s.Projects.Len()),
		fmt.Sprintf("teamMembers=%d", s.TeamMembers.Len()),
		fmt.Sprintf("transactions=%d", s.Transactions.Len()),
		fmt.Sprintf("packages=%d", s.Packages.Len()),
		fmt.Sprintf("addOns=%d", s.AddOns.Len()),
		fmt.Sprintf("cards=%d", s.Cards.Len()),
		fmt.Sprintf("pockets=%d", s.Pockets.Len()),
		fmt.Sprintf("leads=%d", s.Leads.Len()),
		fmt.Sprintf("assets=%d", s.Assets.Len()),
		fmt.Sprintf("contracts=%d", s.Contracts.Len()),
		fmt.Sprintf("clientFeedback=%d", s.ClientFeedback.Len()),
		fmt.Sprintf("socialMediaPosts=%d", s.SocialMediaPosts.Len()),
		fmt.Sprintf("promoCodes=%d", s.PromoCodes.Len()),
		fmt.Sprintf("sops=%d", s.SOPs.Len()),
		fmt.Sprintf("notifications=%d", s.Notifications.Len()),
		fmt.Sprintf("teamProjectPayments=%d", s.TeamProjectPayments.Len()),
		fmt.Sprintf("teamPaymentRecords=%d", s.TeamPaymentRecords.Len()),
		fmt.Sprintf("rewardLedgerEntries=%d", s.RewardLedgerEntries.Len()),
	}
	return strings.Join(parts, " ")
}
