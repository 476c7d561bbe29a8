// ABOUTME: Singleton profile access with existence-checked save
// ABOUTME: The profile row id never leaves this file
package remote

import (
	"context"
	"fmt"

	"github.com/venaworks/studiodesk/models"
)

// ProfileAPI manages the single vendor profile row. There is no delete:
// once a profile exists it can only be replaced.
type ProfileAPI struct {
	client *Client
}

// NewProfileAPI builds the profile API.
func NewProfileAPI(client *Client) *ProfileAPI {
	return &ProfileAPI{client: client}
}

// Get fetches the profile, or nil when none has been created yet. An
// empty table is a normal first-run state, not an error.
func (a *ProfileAPI) Get(ctx context.Context) (profile *models.Profile, err error) {
	defer func() { observe(ProfileTable.Table, "get", err) }()

	rows, err := a.client.selectLimit(ctx, ProfileTable.Table, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	decoded, err := decodeEntity[models.Profile](ProfileTable, rows[0])
	if err != nil {
		return nil, err
	}
	return &decoded, nil
}

// Save writes the full profile, inserting on first save and updating
// the existing row afterwards.
func (a *ProfileAPI) Save(ctx context.Context, profile models.Profile) (saved *models.Profile, err error) {
	defer func() { observe(ProfileTable.Table, "save", err) }()

	patch, err := PatchOf(profile)
	if err != nil {
		return nil, &DecodeError{Table: ProfileTable.Table, Err: err}
	}
	row := ProfileTable.ToRow(patch)

	id, err := a.client.selectID(ctx, ProfileTable.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing profile: %w", err)
	}

	var stored map[string]any
	if id == "" {
		stored, err = a.client.insert(ctx, ProfileTable.Table, row)
	} else {
		stored, err = a.client.updateByID(ctx, ProfileTable.Table, id, row)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	decoded, err := decodeEntity[models.Profile](ProfileTable, stored)
	if err != nil {
		return nil, err
	}
	a.client.log.Info("saved profile", "created", id == "")
	return &decoded, nil
}
