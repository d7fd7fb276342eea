package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
)

type recordingNotifier struct {
	got chan services.ContactMessage
	err error
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{got: make(chan services.ContactMessage, 1), err: err}
}

func (n *recordingNotifier) NotifyContact(_ context.Context, msg services.ContactMessage) error {
	n.got <- msg
	return n.err
}

func validContact() map[string]any {
	return map[string]any{
		"name":    "Grace",
		"email":   "grace@example.com",
		"subject": "Hello",
		"message": "I would like to hire you for a project.",
	}
}

func submitContact(t *testing.T, a *testAPI, body map[string]any) string {
	t.Helper()
	rec := a.do(http.MethodPost, "/api/contact", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decodeObject(t, rec)
	return resp["data"].(map[string]any)["id"].(string)
}

func TestContactSubmit(t *testing.T) {
	notifier := newRecordingNotifier(nil)
	a := newTestAPI(t, Dependencies{Notifier: notifier}, nil)

	body := validContact()
	body["phone"] = "+62 812 0000"
	rec := a.do(http.MethodPost, "/api/contact", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decodeObject(t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Message sent successfully", resp["message"])
	data := resp["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	assert.NotEmpty(t, data["createdAt"])

	contacts, total, err := a.db.ContactRepo().List(context.Background(), contactQuery())
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.False(t, contacts[0].Read)
	assert.Equal(t, "Phone: +62 812 0000\n\nI would like to hire you for a project.", contacts[0].Message)

	select {
	case msg := <-notifier.got:
		assert.Equal(t, data["id"], msg.ID)
		assert.Equal(t, "Hello", msg.Subject)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestContactNotifierFailureStillCreates(t *testing.T) {
	failures := map[string]error{
		"smtp down":    errors.New("smtp down"),
		"rate limited": errs.NewUpstreamError("resend", http.StatusTooManyRequests, "slow down"),
	}
	for name, failure := range failures {
		t.Run(name, func(t *testing.T) {
			notifier := newRecordingNotifier(failure)
			a := newTestAPI(t, Dependencies{Notifier: notifier}, nil)

			submitContact(t, a, validContact())

			select {
			case <-notifier.got:
			case <-time.After(2 * time.Second):
				t.Fatal("notifier was not called")
			}
			_, total, err := a.db.ContactRepo().List(context.Background(), database.ContactQuery{})
			require.NoError(t, err)
			assert.EqualValues(t, 1, total)
		})
	}
}

func TestContactSubmitRejectsShortMessage(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	body := validContact()
	body["message"] = "too short"
	rec := a.do(http.MethodPost, "/api/contact", body, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeObject(t, rec)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Validation failed", resp["error"])
	details := resp["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "message", details[0].(map[string]any)["field"])

	rec = a.do(http.MethodPost, "/api/contact", map[string]any{}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp = decodeObject(t, rec)
	assert.Equal(t, "Validation failed", resp["error"])
	assert.Len(t, resp["details"], 4)

	_, total, err := a.db.ContactRepo().List(context.Background(), contactQuery())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestContactAdminLifecycle(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	first := submitContact(t, a, validContact())
	submitContact(t, a, validContact())

	rec := a.admin(http.MethodPatch, "/api/contact/"+first, map[string]any{"read": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeObject(t, rec)
	assert.Equal(t, "Contact marked as read", resp["message"])
	assert.Equal(t, true, resp["data"].(map[string]any)["read"])

	rec = a.admin(http.MethodPatch, "/api/contact/"+first, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid read status", decodeObject(t, rec)["error"])

	rec = a.admin(http.MethodGet, "/api/contact?read=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeObject(t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Len(t, resp["data"], 1)
	assert.Equal(t, float64(1), resp["pagination"].(map[string]any)["total"])

	rec = a.admin(http.MethodGet, "/api/contact?limit=1&page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeObject(t, rec)
	assert.Len(t, resp["data"], 1)
	assert.Equal(t, float64(2), resp["pagination"].(map[string]any)["totalPages"])

	rec = a.admin(http.MethodGet, "/api/contact/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"total":2,"unread":1,"thisMonth":2}}`, rec.Body.String())

	rec = a.admin(http.MethodGet, "/api/contact/"+first, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first, decodeObject(t, rec)["data"].(map[string]any)["id"])

	rec = a.admin(http.MethodPatch, "/api/contact/"+first, map[string]any{"read": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Contact marked as unread", decodeObject(t, rec)["message"])

	rec = a.admin(http.MethodDelete, "/api/contact/"+first, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Contact deleted successfully"}`, rec.Body.String())

	rec = a.admin(http.MethodDelete, "/api/contact/"+first, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Contact not found"}`, rec.Body.String())

	rec = a.admin(http.MethodPatch, "/api/contact/"+first, map[string]any{"read": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func contactQuery() database.ContactQuery {
	return database.ContactQuery{Page: database.Page{Page: 1, Limit: 10}}
}
