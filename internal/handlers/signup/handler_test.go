// internal/handlers/signup/handler_test.go
package signup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/registry"
)

// ==========================
// Test Helper Functions
// ==========================

type captureNotifier struct {
	calls chan [2]string
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{calls: make(chan [2]string, 8)}
}

func (n *captureNotifier) SignupConfirmation(_ context.Context, activityName, email string) error {
	n.calls <- [2]string{activityName, email}
	return nil
}

func createTestConfig() *Config {
	return &Config{Timeout: 5 * time.Second}
}

func createTestHandler(t *testing.T, reg *registry.Registry, notifier *captureNotifier) *Handler {
	testLog := logger.NewTestLogger(t)
	return NewHandler(createTestConfig(), reg, notifier, testLog)
}

func doSignup(h *Handler, activityName, email string) *httptest.ResponseRecorder {
	target := "/activities/" + url.PathEscape(activityName) + "/signup"
	if email != "" {
		target += "?email=" + url.QueryEscape(email)
	}
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.SetPathValue("activity_name", activityName)

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

// ==========================
// Handler Tests
// ==========================

func TestHandle_Success(t *testing.T) {
	reg := registry.NewDefault()
	notifier := newCaptureNotifier()
	h := createTestHandler(t, reg, notifier)

	rec := doSignup(h, "Chess Club", "newstudent@mergington.edu")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body Output
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "Signed up newstudent@mergington.edu")

	a, ok := reg.Get("Chess Club")
	require.True(t, ok)
	assert.Contains(t, a.Participants, "newstudent@mergington.edu")

	select {
	case call := <-notifier.calls:
		assert.Equal(t, "Chess Club", call[0])
		assert.Equal(t, "newstudent@mergington.edu", call[1])
	case <-time.After(2 * time.Second):
		t.Fatal("signup confirmation was never sent")
	}
}

func TestHandle_ActivityNotFound(t *testing.T) {
	reg := registry.NewDefault()
	h := createTestHandler(t, reg, newCaptureNotifier())

	rec := doSignup(h, "NonExistent Activity", "student@mergington.edu")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Activity not found", body["detail"])
}

func TestHandle_MissingEmail(t *testing.T) {
	reg := registry.NewDefault()
	h := createTestHandler(t, reg, newCaptureNotifier())

	rec := doSignup(h, "Chess Club", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email is required", body["detail"])

	// The registry must be untouched.
	a, _ := reg.Get("Chess Club")
	assert.Len(t, a.Participants, 2)
}

func TestHandle_DuplicateSignup(t *testing.T) {
	reg := registry.NewDefault()
	h := createTestHandler(t, reg, newCaptureNotifier())

	rec := doSignup(h, "Chess Club", "michael@mergington.edu")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Participant already signed up", body["detail"])
}

func TestHandle_MultipleStudents(t *testing.T) {
	reg := registry.NewDefault()
	h := createTestHandler(t, reg, newCaptureNotifier())

	rec1 := doSignup(h, "Chess Club", "student1@mergington.edu")
	assert.Equal(t, http.StatusOK, rec1.Code)
	<-time.After(10 * time.Millisecond)

	rec2 := doSignup(h, "Chess Club", "student2@mergington.edu")
	assert.Equal(t, http.StatusOK, rec2.Code)

	a, _ := reg.Get("Chess Club")
	assert.Contains(t, a.Participants, "student1@mergington.edu")
	assert.Contains(t, a.Participants, "student2@mergington.edu")
}

// ==========================
// Core Operation Tests
// ==========================

func TestExecute_ReturnsConfirmationMessage(t *testing.T) {
	reg := registry.NewDefault()
	h := createTestHandler(t, reg, newCaptureNotifier())

	output, err := h.Execute(context.Background(), &Input{
		ActivityName: "Art Club",
		Email:        "painter@mergington.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, "Signed up painter@mergington.edu for Art Club", output.Message)
}
