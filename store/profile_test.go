// ABOUTME: Tests for the singleton profile mirror
// ABOUTME: Covers first-run nil profile and save-through behavior
package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venaworks/studiodesk/models"
)

type fakeProfileAPI struct {
	profile *models.Profile
	getErr  error
	saveErr error
	saves   int
}

func (f *fakeProfileAPI) Get(ctx context.Context) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.profile == nil {
		return nil, nil
	}
	copied := *f.profile
	return &copied, nil
}

func (f *fakeProfileAPI) Save(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saves++
	f.profile = &profile
	return &profile, nil
}

func TestProfileLoadMissingIsNotAnError(t *testing.T) {
	p := NewProfileState(&fakeProfileAPI{})
	require.NoError(t, p.Load(context.Background()))
	assert.Nil(t, p.Get())
	assert.NoError(t, p.Err())
}

func TestProfileSaveCreatesThenReplaces(t *testing.T) {
	api := &fakeProfileAPI{}
	p := NewProfileState(api)
	require.NoError(t, p.Load(context.Background()))

	saved, err := p.Save(context.Background(), models.Profile{CompanyName: "Vena Pictures"})
	require.NoError(t, err)
	assert.Equal(t, "Vena Pictures", saved.CompanyName)
	assert.Equal(t, 1, api.saves)

	_, err = p.Save(context.Background(), models.Profile{CompanyName: "Vena Pictures", FullName: "Andi Vena"})
	require.NoError(t, err)
	assert.Equal(t, 2, api.saves)
	assert.Equal(t, "Andi Vena", p.Get().FullName)
}

func TestSetProfileIsLocalOnly(t *testing.T) {
	api := &fakeProfileAPI{}
	p := NewProfileState(api)
	require.NoError(t, p.Load(context.Background()))

	p.SetProfile(&models.Profile{CompanyName: "Vena Pictures"})
	require.NotNil(t, p.Get())
	assert.Equal(t, "Vena Pictures", p.Get().CompanyName)
	assert.Equal(t, 0, api.saves)

	p.SetProfile(nil)
	assert.Nil(t, p.Get())
}

func TestProfileSaveFailureKeepsLocalCopy(t *testing.T) {
	api := &fakeProfileAPI{profile: &models.Profile{CompanyName: "Vena Pictures"}}
	p := NewProfileState(api)
	require.NoError(t, p.Load(context.Background()))

	api.saveErr = errors.New("write failed")
	_, err := p.Save(context.Background(), models.Profile{CompanyName: "Changed"})
	require.Error(t, err)
	assert.Equal(t, "Vena Pictures", p.Get().CompanyName)
}

func TestProfileLoadFailureKeepsPreviousProfile(t *testing.T) {
	api := &fakeProfileAPI{profile: &models.Profile{CompanyName: "Vena Pictures"}}
	p := NewProfileState(api)
	require.NoError(t, p.Load(context.Background()))

	api.getErr = errors.New("read failed")
	require.Error(t, p.Load(context.Background()))
	assert.NotNil(t, p.Get())
	assert.Error(t, p.Err())
}
