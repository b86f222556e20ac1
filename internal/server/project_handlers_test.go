package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"atelier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectStartsInPlanningWithMoodboard(t *testing.T) {
	_, app, db := newTestServer(t)
	token := signUpAndIn(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/projects", token, map[string]string{"name": "Portfolio"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Portfolio", body["name"])

	projectID := uint(body["id"].(float64))

	var project models.Project
	require.NoError(t, db.Preload("Status").First(&project, projectID).Error)
	assert.Equal(t, models.StatusPlanning, project.Status.Name)

	var moodboard models.Moodboard
	require.NoError(t, db.Where("project_id = ?", projectID).First(&moodboard).Error)
}

func TestCreateProjectNameConflictIsCaseInsensitive(t *testing.T) {
	_, app, _ := newTestServer(t)
	token := signUpAndIn(t, app)

	createProjectVia(t, app, token, "Portfolio")

	resp, body := doJSON(t, app, http.MethodPost, "/projects", token, map[string]string{"name": "PORTFOLIO"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "There is already a project with given name", body["error"])
}

func TestProjectNamesAreScopedPerOwner(t *testing.T) {
	_, app, _ := newTestServer(t)
	alice := signUpAndIn(t, app)
	bob := signUpAndIn(t, app)

	createProjectVia(t, app, alice, "Portfolio")
	// A different owner can reuse the name.
	createProjectVia(t, app, bob, "Portfolio")
}

func TestGetProjectsReturnsOnlyOwn(t *testing.T) {
	_, app, _ := newTestServer(t)
	alice := signUpAndIn(t, app)
	bob := signUpAndIn(t, app)

	createProjectVia(t, app, alice, "Alpha")
	createProjectVia(t, app, alice, "Beta")
	createProjectVia(t, app, bob, "Gamma")

	resp, projects := doJSONList(t, app, "/projects", alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, projects, 2)

	names := []string{projects[0]["name"].(string), projects[1]["name"].(string)}
	assert.ElementsMatch(t, []string{"Alpha", "Beta"}, names)
}

func TestRenameProjectToItsOwnNameConflicts(t *testing.T) {
	_, app, _ := newTestServer(t)
	token := signUpAndIn(t, app)
	id := createProjectVia(t, app, token, "Portfolio")

	// The uniqueness re-check does not exclude the project itself.
	resp, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/projects/%d", id), token, map[string]string{"name": "Portfolio"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/projects/%d", id), token, map[string]string{"name": "Folio"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRenameForeignProjectForbidden(t *testing.T) {
	_, app, _ := newTestServer(t)
	alice := signUpAndIn(t, app)
	bob := signUpAndIn(t, app)
	id := createProjectVia(t, app, alice, "Portfolio")

	resp, body := doJSON(t, app, http.MethodPut, fmt.Sprintf("/projects/%d", id), bob, map[string]string{"name": "Hijack"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "You are not the owner", body["error"])
}

func TestUnparseableProjectIDIsNotFound(t *testing.T) {
	_, app, _ := newTestServer(t)
	token := signUpAndIn(t, app)

	resp, body := doJSON(t, app, http.MethodPut, "/projects/abc", token, map[string]string{"name": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "There is no project with given id", body["error"])

	resp, _ = doJSON(t, app, http.MethodDelete, "/projects/abc", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProjectCascades(t *testing.T) {
	_, app, db := newTestServer(t)
	token := signUpAndIn(t, app)

	doomed := createProjectVia(t, app, token, "Doomed")
	spared := createProjectVia(t, app, token, "Spared")

	// Populate both projects with lanes, cards, and moodboard images.
	populate := func(projectID uint) {
		for _, title := range []string{"To Do", "Done"} {
			resp, lane := doJSON(t, app, http.MethodPost, "/lanes", token, map[string]any{
				"title": title, "project_id": projectID,
			})
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			laneID := uint(lane["id"].(float64))

			resp, _ = doJSON(t, app, http.MethodPost, "/cards", token, map[string]any{
				"title": "task", "lane_id": laneID,
			})
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		}

		var moodboard models.Moodboard
		require.NoError(t, db.Where("project_id = ?", projectID).First(&moodboard).Error)
		resp, _ := doJSON(t, app, http.MethodPost, "/images", token, map[string]any{
			"url": "https://example.com/ref.png", "moodboard_id": moodboard.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	populate(doomed)
	populate(spared)

	resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/projects/%d", doomed), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/projects/%d/lanes", doomed), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "There is no project with given id", body["error"])

	countFor := func(model any, query string, id uint) int64 {
		var n int64
		require.NoError(t, db.Model(model).Where(query, id).Count(&n).Error)
		return n
	}

	assert.Zero(t, countFor(&models.Project{}, "id = ?", doomed))
	assert.Zero(t, countFor(&models.Moodboard{}, "project_id = ?", doomed))
	assert.Zero(t, countFor(&models.Lane{}, "project_id = ?", doomed))

	// The surviving project keeps all of its rows.
	assert.Equal(t, int64(1), countFor(&models.Project{}, "id = ?", spared))
	assert.Equal(t, int64(1), countFor(&models.Moodboard{}, "project_id = ?", spared))
	assert.Equal(t, int64(2), countFor(&models.Lane{}, "project_id = ?", spared))

	var cards, images int64
	require.NoError(t, db.Model(&models.Card{}).Count(&cards).Error)
	require.NoError(t, db.Model(&models.Image{}).Count(&images).Error)
	assert.Equal(t, int64(2), cards)
	assert.Equal(t, int64(1), images)
}

func TestGetProjectLanesNewestFirstWithCards(t *testing.T) {
	_, app, db := newTestServer(t)
	token := signUpAndIn(t, app)
	projectID := createProjectVia(t, app, token, "Portfolio")

	for _, title := range []string{"To Do", "In Progress", "Done"} {
		resp, lane := doJSON(t, app, http.MethodPost, "/lanes", token, map[string]any{
			"title": title, "project_id": projectID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodPost, "/cards", token, map[string]any{
			"title": "task in " + title, "lane_id": uint(lane["id"].(float64)),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// sqlite timestamps share a second; force a stable order for the assert.
	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"To Do", "In Progress", "Done"} {
		require.NoError(t, db.Model(&models.Lane{}).
			Where("title = ?", title).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	resp, lanes := doJSONList(t, app, fmt.Sprintf("/projects/%d/lanes", projectID), token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, lanes, 3)

	assert.Equal(t, "Done", lanes[0]["title"])
	assert.Equal(t, "To Do", lanes[2]["title"])
	for _, lane := range lanes {
		cards, ok := lane["cards"].([]any)
		require.True(t, ok)
		assert.Len(t, cards, 1)
	}
}

func TestGetProjectMoodboard(t *testing.T) {
	_, app, db := newTestServer(t)
	token := signUpAndIn(t, app)
	projectID := createProjectVia(t, app, token, "Portfolio")

	var moodboard models.Moodboard
	require.NoError(t, db.Where("project_id = ?", projectID).First(&moodboard).Error)

	resp, _ := doJSON(t, app, http.MethodPost, "/images", token, map[string]any{
		"url": "https://example.com/ref.png", "moodboard_id": moodboard.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/projects/%d/moodboard", projectID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "Portfolio", body["project_name"])
	assert.Equal(t, float64(moodboard.ID), body["moodboard_id"])
	images, ok := body["images"].([]any)
	require.True(t, ok)
	require.Len(t, images, 1)
}
