// ABOUTME: Revision API with per-project lookup on top of the generic CRUD
// ABOUTME: Revisions live in their own table keyed by project_id
package remote

import (
	"context"
	"fmt"

	"github.com/venaworks/studiodesk/models"
)

// RevisionAPI adds the per-project fetch used when assembling projects.
type RevisionAPI struct {
	*API[models.Revision]
}

// NewRevisionAPI builds the revision API.
func NewRevisionAPI(client *Client) *RevisionAPI {
	return &RevisionAPI{API: NewAPI[models.Revision](client, RevisionsTable)}
}

// GetByProject fetches all revisions belonging to one project, newest
// first.
func (a *RevisionAPI) GetByProject(ctx context.Context, projectID string) (out []models.Revision, err error) {
	defer func() { observe(a.mapping.Table, "get_by_project", err) }()

	rows, err := a.client.selectEq(ctx, a.mapping.Table, "project_id", projectID,
		a.mapping.OrderBy, a.mapping.Descending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch revisions for project %s: %w", projectID, err)
	}

	out = make([]models.Revision, 0, len(rows))
	for _, row := range rows {
		rev, err := decodeEntity[models.Revision](a.mapping, row)
		if err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, nil
}
