// ABOUTME: Project API that stitches owned revisions onto each project
// ABOUTME: Revisions come from their own table in a second round of queries
package remote

import (
	"context"

	"github.com/venaworks/studiodesk/models"
)

// ProjectAPI layers revision assembly over the generic project CRUD.
// Reads return projects with their Revisions populated; writes never
// touch the revisions table.
type ProjectAPI struct {
	*API[models.Project]
	revisions *RevisionAPI
}

// NewProjectAPI builds the project API sharing one revision API.
func NewProjectAPI(client *Client, revisions *RevisionAPI) *ProjectAPI {
	return &ProjectAPI{
		API:       NewAPI[models.Project](client, ProjectsTable),
		revisions: revisions,
	}
}

// GetAll fetches every project and attaches its revisions. A project
// with no revisions gets an empty slice, never nil.
func (a *ProjectAPI) GetAll(ctx context.Context) ([]models.Project, error) {
	projects, err := a.API.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		revs, err := a.revisions.GetByProject(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Revisions = revs
	}
	return projects, nil
}

// Create inserts a project. New projects start with no revisions.
func (a *ProjectAPI) Create(ctx context.Context, project models.Project) (*models.Project, error) {
	created, err := a.API.Create(ctx, project)
	if err != nil {
		return nil, err
	}
	created.Revisions = []models.Revision{}
	return created, nil
}

// Update patches a project and re-attaches its current revisions so the
// returned record is as complete as one from GetAll.
func (a *ProjectAPI) Update(ctx context.Context, id string, patch Patch) (*models.Project, error) {
	updated, err := a.API.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	revs, err := a.revisions.GetByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.Revisions = revs
	return updated, nil
}
