// ABOUTME: Local mirror of the singleton vendor profile
// ABOUTME: Missing profile is a normal first-run state, not an error
package store

import (
	"context"
	"sync"

	"github.com/venaworks/studiodesk/models"
)

type profileAPI interface {
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, profile models.Profile) (*models.Profile, error)
}

// ProfileState holds the single vendor profile. Nil means no profile
// has been created yet.
type ProfileState struct {
	api profileAPI

	mu      sync.RWMutex
	profile *models.Profile
	err     error
}

// NewProfileState builds the profile mirror.
func NewProfileState(api profileAPI) *ProfileState {
	return &ProfileState{api: api}
}

// Load fetches the profile. Like resource loads, failure keeps whatever
// was loaded before.
func (p *ProfileState) Load(ctx context.Context) error {
	profile, err := p.api.Get(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.err = err
		return err
	}
	p.profile = profile
	p.err = nil
	return nil
}

// Get returns the local profile, or nil when none exists.
func (p *ProfileState) Get() *models.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.profile == nil {
		return nil
	}
	copied := *p.profile
	return &copied
}

// Err returns the error from the most recent failed load, or nil.
func (p *ProfileState) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}

// SetProfile replaces the local profile without a remote call, the raw
// setter counterpart of Set on collection resources. Nil clears it.
func (p *ProfileState) SetProfile(profile *models.Profile) {
	var copied *models.Profile
	if profile != nil {
		c := *profile
		copied = &c
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.profile = copied
}

// Save writes the full profile remotely and replaces the local copy on
// success.
func (p *ProfileState) Save(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	saved, err := p.api.Save(ctx, profile)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.profile = saved
	p.mu.Unlock()
	return saved, nil
}
