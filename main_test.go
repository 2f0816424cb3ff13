package main

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/workout-tracker/config"
	"github.com/blogem/workout-tracker/confirmgate"
	"github.com/blogem/workout-tracker/database"
)

// ServerTestSuite drives the full router over HTTP with a real database
type ServerTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
	// added to the wall clock seen by the ticket store
	skew atomic.Int64
}

func (suite *ServerTestSuite) advance(d time.Duration) {
	suite.skew.Add(int64(d))
}

func (suite *ServerTestSuite) SetupTest() {
	db, err := database.InitializeDatabase(filepath.Join(suite.T().TempDir(), "workouts.db"))
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Port:            "0",
		SessionLifetime: 3600,
		BcryptCost:      bcrypt.MinCost,
		ConfirmTTL:      time.Hour,
	}

	suite.skew.Store(0)
	tokens := confirmgate.NewMemoryTokenStore(cfg.ConfirmTTL, confirmgate.WithClock(func() time.Time {
		return time.Now().Add(time.Duration(suite.skew.Load()))
	}))

	reg := prometheus.NewRegistry()
	r, err := newServer(context.Background(), cfg, db, tokens, reg, reg)
	suite.Require().NoError(err)

	suite.server = httptest.NewServer(r)
	suite.T().Cleanup(suite.server.Close)

	jar, err := cookiejar.New(nil)
	suite.Require().NoError(err)
	suite.client = &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (suite *ServerTestSuite) get(path string) (int, string, http.Header) {
	resp, err := suite.client.Get(suite.server.URL + path)
	suite.Require().NoError(err)
	return suite.read(resp)
}

func (suite *ServerTestSuite) post(path string, form url.Values) (int, string, http.Header) {
	resp, err := suite.client.PostForm(suite.server.URL+path, form)
	suite.Require().NoError(err)
	return suite.read(resp)
}

func (suite *ServerTestSuite) read(resp *http.Response) (int, string, http.Header) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)
	return resp.StatusCode, string(body), resp.Header
}

func (suite *ServerTestSuite) signUp() {
	status, _, header := suite.post("/register", url.Values{
		"username":              {"lifter"},
		"email":                 {"lifter@example.com"},
		"password":              {"squats4days"},
		"password_confirmation": {"squats4days"},
		"tos_accept":            {"on"},
	})
	suite.Require().Equal(http.StatusSeeOther, status)
	suite.Require().Equal("/dashboard", header.Get("Location"))
}

func (suite *ServerTestSuite) createWorkout() string {
	status, _, header := suite.post("/workouts", url.Values{"name": {"Leg day"}, "description": {"Squats and lunges"}})
	suite.Require().Equal(http.StatusSeeOther, status)
	location := header.Get("Location")
	suite.Require().Regexp(`^/workouts/\d+$`, location)
	return location
}

// ticketFor extracts the confirmation ticket rendered in the form posting to action
func (suite *ServerTestSuite) ticketFor(page, action string) string {
	re := regexp.MustCompile(`(?s)action="` + regexp.QuoteMeta(action) + `".*?name="confirm_token" value="([0-9a-f-]+)"`)
	m := re.FindStringSubmatch(page)
	suite.Require().Len(m, 2, "no ticket rendered for %s", action)
	return m[1]
}

func (suite *ServerTestSuite) deletedCount() string {
	_, body, _ := suite.get("/metrics")
	m := regexp.MustCompile(`(?m)^workout_tracker_workouts_deleted_total (\S+)$`).FindStringSubmatch(body)
	suite.Require().Len(m, 2)
	return m[1]
}

func (suite *ServerTestSuite) TestHealth() {
	status, body, _ := suite.get("/health")
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Contains(suite.T(), body, "healthy")
}

func (suite *ServerTestSuite) TestGuardedRoutesRequireLogin() {
	status, _, header := suite.post("/workouts/1/delete", url.Values{"confirm_decision": {"affirm"}})
	assert.Equal(suite.T(), http.StatusSeeOther, status)
	assert.Equal(suite.T(), "/login", header.Get("Location"))
}

func (suite *ServerTestSuite) TestWorkoutPageBindsEveryPrompt() {
	suite.signUp()
	workoutPath := suite.createWorkout()
	status, _, _ := suite.post(workoutPath+"/exercises", url.Values{"name": {"Squat"}, "sets": {"5"}, "repetitions": {"5"}, "weight": {"100"}})
	suite.Require().Equal(http.StatusSeeOther, status)

	status, page, _ := suite.get(workoutPath)
	suite.Require().Equal(http.StatusOK, status)

	assert.Contains(suite.T(), page, `id="end-workout"`)
	assert.Contains(suite.T(), page, `data-confirm="Are you sure you want to end your workout?"`)
	assert.Contains(suite.T(), page, `id="delete-workout"`)
	assert.Contains(suite.T(), page, `data-confirm="Are you sure you want to delete this workout? This cannot be undone."`)
	assert.Contains(suite.T(), page, `data-guard="delete-exercise"`)
	assert.Contains(suite.T(), page, `data-confirm="Are you sure you want to delete this exercise?"`)
	assert.Contains(suite.T(), page, `src="/static/js/confirm.js"`)
}

func (suite *ServerTestSuite) TestDeleteWorkout_DeclineThenAffirm() {
	suite.signUp()
	workoutPath := suite.createWorkout()
	deletePath := workoutPath + "/delete"

	// Decline: nothing is deleted
	_, page, _ := suite.get(workoutPath)
	status, _, header := suite.post(deletePath, url.Values{
		"confirm_token":    {suite.ticketFor(page, deletePath)},
		"confirm_decision": {"decline"},
		"return_to":        {workoutPath},
	})
	suite.Require().Equal(http.StatusSeeOther, status)
	assert.Equal(suite.T(), workoutPath, header.Get("Location"))
	status, _, _ = suite.get(workoutPath)
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Equal(suite.T(), "0", suite.deletedCount())

	// Affirm: deleted exactly once
	_, page, _ = suite.get(workoutPath)
	affirm := url.Values{
		"confirm_token":    {suite.ticketFor(page, deletePath)},
		"confirm_decision": {"affirm"},
		"return_to":        {workoutPath},
	}
	status, _, header = suite.post(deletePath, affirm)
	suite.Require().Equal(http.StatusSeeOther, status)
	assert.Equal(suite.T(), "/workouts", header.Get("Location"))
	status, _, _ = suite.get(workoutPath)
	assert.Equal(suite.T(), http.StatusNotFound, status)
	assert.Equal(suite.T(), "1", suite.deletedCount())

	// Replaying the same activation asks again and does not delete twice
	status, body, _ := suite.post(deletePath, affirm)
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Contains(suite.T(), body, "no longer valid")
	assert.Equal(suite.T(), "1", suite.deletedCount())
}

func (suite *ServerTestSuite) TestEndWorkout_WithoutScriptShowsPrompt() {
	suite.signUp()
	workoutPath := suite.createWorkout()
	endPath := workoutPath + "/end"

	// A submit without an answer gets the confirmation page
	status, body, _ := suite.post(endPath, url.Values{"return_to": {workoutPath}})
	suite.Require().Equal(http.StatusOK, status)
	assert.Contains(suite.T(), body, "Are you sure you want to end your workout?")
	assert.Contains(suite.T(), body, `value="affirm"`)
	assert.Contains(suite.T(), body, `value="decline"`)

	status, page, _ := suite.get(workoutPath)
	suite.Require().Equal(http.StatusOK, status)
	assert.Contains(suite.T(), page, "In progress")

	// Answering on the confirmation page ends the workout
	status, _, header := suite.post(endPath, url.Values{
		"confirm_token":    {suite.ticketFor(body, endPath)},
		"confirm_decision": {"affirm"},
		"return_to":        {workoutPath},
	})
	suite.Require().Equal(http.StatusSeeOther, status)
	assert.Equal(suite.T(), workoutPath, header.Get("Location"))

	_, page, _ = suite.get(workoutPath)
	assert.Contains(suite.T(), page, "Completed")
	assert.NotContains(suite.T(), page, `id="end-workout"`)
}

func (suite *ServerTestSuite) TestEndWorkout_AffirmAfterLongSession() {
	suite.signUp()
	workoutPath := suite.createWorkout()
	endPath := workoutPath + "/end"

	_, page, _ := suite.get(workoutPath)
	token := suite.ticketFor(page, endPath)

	// Training for longer than ten minutes before answering
	suite.advance(45 * time.Minute)

	status, body, header := suite.post(endPath, url.Values{
		"confirm_token":    {token},
		"confirm_decision": {"affirm"},
		"return_to":        {workoutPath},
	})
	suite.Require().Equal(http.StatusSeeOther, status, body)
	assert.Equal(suite.T(), workoutPath, header.Get("Location"))

	_, page, _ = suite.get(workoutPath)
	assert.Contains(suite.T(), page, "Completed")
}

func (suite *ServerTestSuite) TestWorkoutPage_ReloadKeepsTickets() {
	suite.signUp()
	workoutPath := suite.createWorkout()
	deletePath := workoutPath + "/delete"

	_, first, _ := suite.get(workoutPath)
	_, second, _ := suite.get(workoutPath)
	token := suite.ticketFor(first, deletePath)
	assert.Equal(suite.T(), token, suite.ticketFor(second, deletePath))

	// Either rendering of the page can still be answered once
	status, _, header := suite.post(deletePath, url.Values{
		"confirm_token":    {token},
		"confirm_decision": {"affirm"},
		"return_to":        {workoutPath},
	})
	suite.Require().Equal(http.StatusSeeOther, status)
	assert.Equal(suite.T(), "/workouts", header.Get("Location"))
	assert.Equal(suite.T(), "1", suite.deletedCount())
}

func (suite *ServerTestSuite) TestDeleteExercise() {
	suite.signUp()
	workoutPath := suite.createWorkout()
	status, _, _ := suite.post(workoutPath+"/exercises", url.Values{"name": {"Squat"}, "sets": {"5"}, "repetitions": {"5"}})
	suite.Require().Equal(http.StatusSeeOther, status)

	_, page, _ := suite.get(workoutPath)
	m := regexp.MustCompile(`action="(` + regexp.QuoteMeta(workoutPath) + `/exercises/\d+/delete)"`).FindStringSubmatch(page)
	suite.Require().Len(m, 2)
	deletePath := m[1]

	status, _, _ = suite.post(deletePath, url.Values{
		"confirm_token":    {suite.ticketFor(page, deletePath)},
		"confirm_decision": {"affirm"},
		"return_to":        {workoutPath},
	})
	suite.Require().Equal(http.StatusSeeOther, status)

	_, page, _ = suite.get(workoutPath)
	assert.Contains(suite.T(), page, "No exercises logged yet.")
}

func (suite *ServerTestSuite) TestLoginMessages() {
	suite.signUp()
	suite.get("/logout")

	status, body, _ := suite.post("/login", url.Values{"username": {"lifter"}, "password": {"wrong-password"}})
	assert.Equal(suite.T(), http.StatusBadRequest, status)
	assert.Contains(suite.T(), body, "Username or password is incorrect.")

	status, _, header := suite.post("/login", url.Values{"username": {"lifter"}, "password": {"squats4days"}})
	assert.Equal(suite.T(), http.StatusSeeOther, status)
	assert.Equal(suite.T(), "/dashboard", header.Get("Location"))

	status, body, _ = suite.get("/dashboard")
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.True(suite.T(), strings.Contains(body, "Newbie"))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestNewServer_RejectsBrokenOIDC(t *testing.T) {
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "workouts.db"))
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{BcryptCost: bcrypt.MinCost, ConfirmTTL: time.Minute, SessionLifetime: 60}
	cfg.OIDC.Domain = "example.invalid"

	reg := prometheus.NewRegistry()
	_, err = newServer(context.Background(), cfg, db, confirmgate.NewMemoryTokenStore(cfg.ConfirmTTL), reg, reg)
	assert.ErrorContains(t, err, "client ID is required")
}
