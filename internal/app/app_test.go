package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/repositories"
)

var testInitOnce sync.Once

type testServer struct {
	server *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	testInitOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.Init("test")
	})

	cfg := &config.Config{}
	cfg.Server.Env = "test"

	store := repositories.NewStore()
	require.NoError(t, repositories.Seed(store))

	srv := httptest.NewServer(SetupRouter(cfg, store))
	t.Cleanup(srv.Close)

	return &testServer{server: srv}
}

// sendRequest performs a JSON request against the test server and returns
// the response together with its decoded body.
func (ts *testServer) sendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.server.Client().Do(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	return res, string(raw)
}

func (ts *testServer) getJSON(t *testing.T, path string, out interface{}) *http.Response {
	t.Helper()

	res, body := ts.sendRequest(t, "GET", path, nil)
	require.NoError(t, json.Unmarshal([]byte(body), out), "body: %s", body)
	return res
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	registerBody := map[string]interface{}{
		"email":     "newuser@test.com",
		"password":  "super_password123",
		"firstName": "Nina",
		"lastName":  "Park",
	}
	regRes, regBodyStr := ts.sendRequest(t, "POST", "/api/auth/register", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, `"email":"newuser@test.com"`)
	assert.NotContains(t, regBodyStr, "password")

	loginBody := map[string]interface{}{
		"email":    "newuser@test.com",
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.sendRequest(t, "POST", "/api/auth/login", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, `"firstName":"Nina"`)
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	// sarah@example.com is part of the demo data.
	registerBody := map[string]interface{}{
		"email":     "SARAH@example.com",
		"password":  "super_password123",
		"firstName": "Impostor",
		"lastName":  "User",
	}
	res, body := ts.sendRequest(t, "POST", "/api/auth/register", registerBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "ALREADY_EXISTS")
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "sarah@example.com",
		"password": "wrong_password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// An unknown email is indistinguishable from a wrong password.
	res, _ = ts.sendRequest(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "ghost@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMentors_ListAndGet(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	var mentors []map[string]interface{}
	res := ts.getJSON(t, "/api/mentors", &mentors)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, mentors, 6)
	assert.Equal(t, "Sarah", mentors[0]["firstName"])

	var mentor map[string]interface{}
	res = ts.getJSON(t, "/api/mentors/1", &mentor)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Chen", mentor["lastName"])

	// A mentee id is not a mentor.
	res, body := ts.sendRequest(t, "GET", "/api/mentors/7", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "NOT_FOUND")

	res, _ = ts.sendRequest(t, "GET", "/api/mentors/999", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestMentors_Search(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	var mentors []map[string]interface{}
	res := ts.getJSON(t, "/api/mentors/search?skills=React", &mentors)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, mentors, 1)
	assert.Equal(t, "Sarah", mentors[0]["firstName"])

	res = ts.getJSON(t, "/api/mentors/search?query=gOOgl", &mentors)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, mentors, 1)
	assert.Equal(t, "Sarah", mentors[0]["firstName"])

	res = ts.getJSON(t, "/api/mentors/search?minPrice=101&maxPrice=200", &mentors)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	for _, m := range mentors {
		rate := int(m["monthlyRate"].(float64))
		assert.GreaterOrEqual(t, rate, 101)
		assert.LessOrEqual(t, rate, 200)
	}

	// An empty filter falls back to the full mentor list.
	res = ts.getJSON(t, "/api/mentors/search", &mentors)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, mentors, 6)

	res, _ = ts.sendRequest(t, "GET", "/api/mentors/search?minPrice=cheap", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSkills(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	var skills []map[string]interface{}
	res := ts.getJSON(t, "/api/skills", &skills)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, skills, 18)

	res = ts.getJSON(t, "/api/skills/category/Frontend", &skills)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, skills, 3)

	// Unknown categories are empty, not errors.
	res = ts.getJSON(t, "/api/skills/category/Juggling", &skills)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, skills)
}

func TestReviews(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	var reviews []map[string]interface{}
	res := ts.getJSON(t, "/api/mentors/1/reviews", &reviews)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, reviews, 1)

	mentee, ok := reviews[0]["mentee"].(map[string]interface{})
	require.True(t, ok, "review should embed the mentee summary")
	assert.Equal(t, "Jessica", mentee["firstName"])

	createBody := map[string]interface{}{
		"menteeId": 8,
		"rating":   4,
		"comment":  "Great sessions on system design.",
	}
	createRes, createBodyStr := ts.sendRequest(t, "POST", "/api/mentors/1/reviews", createBody)
	assert.Equal(t, http.StatusCreated, createRes.StatusCode)
	assert.Contains(t, createBodyStr, `"rating":4`)

	res = ts.getJSON(t, "/api/mentors/1/reviews", &reviews)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, reviews, 2)

	// Rating outside 1..5 fails validation.
	res, _ = ts.sendRequest(t, "POST", "/api/mentors/1/reviews", map[string]interface{}{
		"menteeId": 8,
		"rating":   6,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Reviews can only target mentors.
	res, _ = ts.sendRequest(t, "POST", "/api/mentors/7/reviews", createBody)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestBookingLifecycle(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	start := time.Date(2026, 10, 12, 10, 0, 0, 0, time.UTC)
	createBody := map[string]interface{}{
		"mentorId":  1,
		"menteeId":  7,
		"startTime": start.Format(time.RFC3339),
		"endTime":   start.Add(time.Hour).Format(time.RFC3339),
		"status":    "pending",
		"notes":     "Intro session",
	}
	createRes, createBodyStr := ts.sendRequest(t, "POST", "/api/bookings", createBody)
	assert.Equal(t, http.StatusCreated, createRes.StatusCode)
	assert.Contains(t, createBodyStr, `"status":"pending"`)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(createBodyStr), &created))
	bookingID := int(created["id"].(float64))

	var menteeBookings []map[string]interface{}
	res := ts.getJSON(t, "/api/mentees/7/bookings", &menteeBookings)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, menteeBookings, 1)
	mentor, ok := menteeBookings[0]["mentor"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sarah", mentor["firstName"])

	var mentorBookings []map[string]interface{}
	res = ts.getJSON(t, "/api/mentors/1/bookings", &mentorBookings)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, mentorBookings, 1)
	mentee, ok := mentorBookings[0]["mentee"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jessica", mentee["firstName"])

	patchRes, patchBodyStr := ts.sendRequest(t, "PATCH",
		"/api/bookings/"+itoa(bookingID)+"/status",
		map[string]interface{}{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, patchRes.StatusCode)
	assert.Contains(t, patchBodyStr, `"status":"confirmed"`)
}

func TestBooking_Errors(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	base := map[string]interface{}{
		"startTime": "2026-10-12T10:00:00Z",
		"endTime":   "2026-10-12T11:00:00Z",
		"status":    "pending",
	}

	// The mentor side must be an actual mentor.
	body := map[string]interface{}{"mentorId": 7, "menteeId": 8}
	for k, v := range base {
		body[k] = v
	}
	res, resBody := ts.sendRequest(t, "POST", "/api/bookings", body)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, resBody, "NOT_FOUND")

	body = map[string]interface{}{"mentorId": 1, "menteeId": 999}
	for k, v := range base {
		body[k] = v
	}
	res, _ = ts.sendRequest(t, "POST", "/api/bookings", body)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	body = map[string]interface{}{"mentorId": 1, "menteeId": 7}
	for k, v := range base {
		body[k] = v
	}
	body["status"] = "maybe"
	res, _ = ts.sendRequest(t, "POST", "/api/bookings", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.sendRequest(t, "PATCH", "/api/bookings/1/status", map[string]interface{}{"status": "maybe"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.sendRequest(t, "PATCH", "/api/bookings/999/status", map[string]interface{}{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	sendRes, sendBodyStr := ts.sendRequest(t, "POST", "/api/messages", map[string]interface{}{
		"senderId":   7,
		"receiverId": 1,
		"content":    "Hi Sarah, could we set up a session?",
	})
	assert.Equal(t, http.StatusCreated, sendRes.StatusCode)
	assert.Contains(t, sendBodyStr, `"read":false`)

	replyRes, _ := ts.sendRequest(t, "POST", "/api/messages", map[string]interface{}{
		"senderId":   1,
		"receiverId": 7,
		"content":    "Sure, weekends work for me.",
	})
	assert.Equal(t, http.StatusCreated, replyRes.StatusCode)

	var conversation []map[string]interface{}
	res := ts.getJSON(t, "/api/messages/7/1", &conversation)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, conversation, 2)
	assert.Equal(t, "Hi Sarah, could we set up a session?", conversation[0]["content"])

	messageID := int(conversation[0]["id"].(float64))
	markRes, markBodyStr := ts.sendRequest(t, "PATCH", "/api/messages/"+itoa(messageID)+"/read", nil)
	assert.Equal(t, http.StatusOK, markRes.StatusCode)
	assert.Contains(t, markBodyStr, `"read":true`)

	res = ts.getJSON(t, "/api/messages/7/1", &conversation)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, conversation[0]["read"])
}

func TestMessage_UnknownParticipants(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, "POST", "/api/messages", map[string]interface{}{
		"senderId":   999,
		"receiverId": 1,
		"content":    "hello",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.sendRequest(t, "POST", "/api/messages", map[string]interface{}{
		"senderId":   1,
		"receiverId": 999,
		"content":    "hello",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.sendRequest(t, "PATCH", "/api/messages/999/read", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "PATCH", "/api/users/7", map[string]interface{}{
		"company":  "Figma",
		"position": "Product Designer",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"company":"Figma"`)
	// Untouched fields survive a partial update.
	assert.Contains(t, body, `"firstName":"Jessica"`)

	res, _ = ts.sendRequest(t, "PATCH", "/api/users/999", map[string]interface{}{"company": "Figma"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
