package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salespulse/models"
	"salespulse/session"
)

type staticSessions struct {
	sess *session.Session
}

func (s *staticSessions) Current() (*session.Session, error) { return s.sess, nil }

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sessions := &staticSessions{sess: &session.Session{UserID: 1, Token: "tok-123"}}
	return NewClient(srv.URL, sessions, zap.NewNop(), 5*time.Second), srv
}

func TestClient_BearerTokenAndHeaders(t *testing.T) {
	var got *http.Request
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{"contacts":[]}`))
	}))

	_, err := client.Contacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
}

func TestClient_NoSessionNoAuthHeader(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"ok","token":"t","user":{"id":1}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, &staticSessions{}, zap.NewNop(), time.Second)
	_, _, err := client.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestClient_Login(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "op@essa.in", body["email"])
		w.Write([]byte(`{"message":"Welcome","token":"fresh-token",
			"user":{"id":5,"name":"Operator","email":"op@essa.in","role":"admin"}}`))
	}))

	sess, msg, err := client.Login(context.Background(), "op@essa.in", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Welcome", msg)
	assert.Equal(t, 5, sess.UserID)
	assert.Equal(t, "fresh-token", sess.Token)
	assert.Equal(t, "admin", sess.Role)
}

func TestClient_UpdateUsesMethodOverride(t *testing.T) {
	var method, rawQuery string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"message":"Contact updated"}`))
	}))

	msg, err := client.UpdateContact(context.Background(), 3, models.ContactPayload{Name: "GLOBE"})
	require.NoError(t, err)
	assert.Equal(t, "Contact updated", msg)
	assert.Equal(t, http.MethodPost, method, "updates tunnel through POST")
	assert.Equal(t, "_method=PUT", rawQuery)
}

func TestClient_Order_CoercesStringNumbers(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/7", r.URL.Path)
		w.Write([]byte(`{
			"orderMaster":[{"contact_id":"7","remarks":"urgent"}],
			"orderDetails":[
				{"size_id":"2","brand":"ACME KNITS","style":"S1","size":"M","qty":"3"},
				{"size_id":1,"brand":"ACME KNITS","style":"S1","size":"S","qty":5}
			]}`))
	}))

	master, items, err := client.Order(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, master.ContactID)
	assert.Equal(t, "urgent", master.Remarks)
	require.Len(t, items, 2)
	assert.Equal(t, models.OrderItem{SizeID: 2, Brand: "ACME KNITS", Style: "S1", Size: "M", Qty: 3}, items[0])
	assert.Equal(t, 5, items[1].Qty)
}

func TestClient_OrderWithoutMasterFails(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orderMaster":[],"orderDetails":[]}`))
	}))
	_, _, err := client.Order(context.Background(), 7)
	assert.Error(t, err)
}

func TestClient_Non2xxIsAPIError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":[{"description":"The name field is required."}]}`))
	}))

	_, err := client.CreateContact(context.Background(), models.ContactPayload{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
}

func TestOptions_SizesSeedZeroQty(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ACME", r.URL.Query().Get("brand"))
		assert.Equal(t, "S1", r.URL.Query().Get("style"))
		w.Write([]byte(`{"sizes":[{"size_id":"1","size":"S"},{"size_id":2,"size":"M"}]}`))
	}))

	entries, err := client.Options().Sizes(context.Background(), "ACME", "S1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.SizeCatalogEntry{SizeID: 1, Size: "S", Qty: 0}, entries[0])
	assert.Equal(t, models.SizeCatalogEntry{SizeID: 2, Size: "M", Qty: 0}, entries[1])
}

func TestClient_CreateVisitMultipart(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "12", r.FormValue("contact_id"))
		assert.Equal(t, "3", r.FormValue("purpose_id"))
		assert.Equal(t, "42", r.FormValue("user_id"))

		files := r.MultipartForm.File["visit_images[]"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.jpg", files[0].Filename)
		w.Write([]byte(`{"message":"Visit created"}`))
	}))

	payload := models.VisitPayload{ContactID: "12", PurposeID: "3", UserID: 42}
	photos := []FilePart{
		{Field: "visit_images[]", Name: "a.jpg", Data: []byte("jpeg-a")},
		{Field: "visit_images[]", Name: "b.jpg", Data: []byte("jpeg-b")},
	}
	msg, err := client.CreateVisit(context.Background(), payload, photos)
	require.NoError(t, err)
	assert.Equal(t, "Visit created", msg)
}

func TestClient_UpdateVisitSendsExistingImages(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, []string{"visits/1.jpg", "visits/2.jpg"}, r.MultipartForm.Value["existing_images[]"])
		assert.Equal(t, "PUT", r.URL.Query().Get("_method"))
		w.Write([]byte(`{"message":"Visit updated"}`))
	}))

	payload := models.VisitPayload{
		ContactID: "12", PurposeID: "3", UserID: 42,
		ExistingImages: []string{"visits/1.jpg", "visits/2.jpg"},
	}
	_, err := client.UpdateVisit(context.Background(), 9, payload, nil)
	require.NoError(t, err)
}
