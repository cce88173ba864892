package activity

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ไล่ scenario เต็ม: สมัคร -> สมัครซ้ำ -> ลบ -> สมัครกลับ บน Chess Club
func TestChessClubScenario(t *testing.T) {
	app := newActivityApp()

	// seed: michael + daniel, max 12
	all := getActivities(t, app)
	require.Len(t, all["Chess Club"].Participants, 2)

	// สมัครคนใหม่
	resp := doRequest(t, app, http.MethodPost,
		"/activities/Chess%20Club/signup?email=test@mergington.edu")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	all = getActivities(t, app)
	assert.Len(t, all["Chess Club"].Participants, 3)
	assert.Contains(t, all["Chess Club"].Participants, "test@mergington.edu")

	// สมัครซ้ำต้องโดน 400
	resp = doRequest(t, app, http.MethodPost,
		"/activities/Chess%20Club/signup?email=test@mergington.edu")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, resp, &errBody)
	assert.Contains(t, strings.ToLower(errBody.Detail), "already")

	// ลบ michael ออก
	resp = doRequest(t, app, http.MethodDelete,
		"/activities/Chess%20Club/participants/michael@mergington.edu")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	all = getActivities(t, app)
	assert.Len(t, all["Chess Club"].Participants, 2)
	assert.NotContains(t, all["Chess Club"].Participants, "michael@mergington.edu")

	// michael สมัครกลับเข้ามาใหม่ได้
	resp = doRequest(t, app, http.MethodPost,
		"/activities/Chess%20Club/signup?email=michael@mergington.edu")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	all = getActivities(t, app)
	assert.Len(t, all["Chess Club"].Participants, 3)
	assert.Contains(t, all["Chess Club"].Participants, "michael@mergington.edu")
}

func TestMultipleSignupsAndRemovals(t *testing.T) {
	app := newActivityApp()
	activity := "Programming%20Class"

	initial := len(getActivities(t, app)["Programming Class"].Participants)

	emails := []string{
		"student1@mergington.edu",
		"student2@mergington.edu",
		"student3@mergington.edu",
	}
	for _, email := range emails {
		resp := doRequest(t, app, http.MethodPost,
			fmt.Sprintf("/activities/%s/signup?email=%s", activity, email))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Len(t, getActivities(t, app)["Programming Class"].Participants, initial+3)

	for _, email := range emails[:2] {
		resp := doRequest(t, app, http.MethodDelete,
			fmt.Sprintf("/activities/%s/participants/%s", activity, email))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Len(t, getActivities(t, app)["Programming Class"].Participants, initial+1)
}

// สมัครกิจกรรมคนละกิจกรรมด้วย email เดียวกันต้องได้ (unique ต่อกิจกรรม ไม่ใช่ทั้งระบบ)
func TestSameEmailAcrossActivities(t *testing.T) {
	app := newActivityApp()
	email := "busy@mergington.edu"

	for _, name := range []string{"Chess%20Club", "Programming%20Class", "Gym%20Class"} {
		resp := doRequest(t, app, http.MethodPost,
			fmt.Sprintf("/activities/%s/signup?email=%s", name, email))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	all := getActivities(t, app)
	assert.Contains(t, all["Chess Club"].Participants, email)
	assert.Contains(t, all["Programming Class"].Participants, email)
	assert.Contains(t, all["Gym Class"].Participants, email)
}
