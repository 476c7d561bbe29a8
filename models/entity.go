// ABOUTME: Entity interface and id helpers shared by the remote and store layers
// ABOUTME: Every collection entity exposes its backend-assigned id through EntityID
package models

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// Entity is any record with a backend-assigned unique id. The store
// layer matches local sequence elements against remote results by this
// id alone.
type Entity interface {
	EntityID() string
}

func (c Client) EntityID() string             { return c.ID }
func (p Project) EntityID() string            { return p.ID }
func (r Revision) EntityID() string           { return r.ID }
func (m TeamMember) EntityID() string         { return m.ID }
func (t Transaction) EntityID() string        { return t.ID }
func (p Package) EntityID() string            { return p.ID }
func (a AddOn) EntityID() string              { return a.ID }
func (c Card) EntityID() string               { return c.ID }
func (f FinancialPocket) EntityID() string    { return f.ID }
func (l Lead) EntityID() string               { return l.ID }
func (a Asset) EntityID() string              { return a.ID }
func (c Contract) EntityID() string           { return c.ID }
func (f ClientFeedback) EntityID() string     { return f.ID }
func (s SocialMediaPost) EntityID() string    { return s.ID }
func (p PromoCode) EntityID() string          { return p.ID }
func (s SOP) EntityID() string                { return s.ID }
func (n Notification) EntityID() string       { return n.ID }
func (t TeamProjectPayment) EntityID() string { return t.ID }
func (t TeamPaymentRecord) EntityID() string  { return t.ID }
func (r RewardLedgerEntry) EntityID() string  { return r.ID }

// NewPortalAccessID generates an opaque id handed to clients and team
// members for portal links. ULIDs keep these sortable by issue time
// without leaking row ids.
func NewPortalAccessID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
