package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallgrim/bokat/internal/adapter/handler"
	"github.com/hallgrim/bokat/internal/adapter/repository/flatfile"
	"github.com/hallgrim/bokat/internal/core/locale"
	"github.com/hallgrim/bokat/internal/core/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := flatfile.NewStore(t.TempDir())
	require.NoError(t, err)

	svc := services.NewBookingService(store, nil, locale.Match("sv"))

	mux := http.NewServeMux()
	handler.NewBookingHandler(svc).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestBookingLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/bookings", map[string]string{
		"title":       "Standup",
		"description": "daily",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]string](t, resp)
	id := created["booking_id"]
	require.NotEmpty(t, id)

	resp = doJSON(t, http.MethodPost, srv.URL+"/bookings/"+id+"/occasions", map[string]string{
		"date": "2024-01-02", "time_start": "09:00", "time_end": "09:30",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/bookings/"+id+"/respondents", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/bookings/"+id+"/answers", map[string]any{
		"occasion": 0, "name": "Alice", "answer": 1,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/bookings/" + id + "/table")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	table := decode[struct {
		Title  string
		Header []string
		Rows   []struct {
			Rank  int
			Cells []string
		}
	}](t, resp)

	assert.Equal(t, "Standup", table.Title)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, 1, table.Rows[0].Rank)
	assert.Equal(t, "1/1", table.Rows[0].Cells[4])
}

func TestErrorMapping(t *testing.T) {
	srv := newTestServer(t)

	// Validation failure: empty title.
	resp := doJSON(t, http.MethodPost, srv.URL+"/bookings", map[string]string{"title": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// Unknown booking.
	resp, err := http.Get(srv.URL + "/bookings/nope/table")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Duplicate respondent registration.
	resp = doJSON(t, http.MethodPost, srv.URL+"/bookings", map[string]string{"title": "t"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode[map[string]string](t, resp)["booking_id"]

	resp = doJSON(t, http.MethodPost, srv.URL+"/bookings/"+id+"/occasions", map[string]string{
		"date": "2024-01-02", "time_start": "09:00", "time_end": "09:30",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		resp = doJSON(t, http.MethodPost, srv.URL+"/bookings/"+id+"/respondents", map[string]string{"name": "Alice"})
		assert.Equal(t, want, resp.StatusCode, fmt.Sprintf("attempt %d", i+1))
		resp.Body.Close()
	}

	// Malformed body.
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/bookings", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListBookingsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var ids []string
	for _, title := range []string{"One", "Two"} {
		resp := doJSON(t, http.MethodPost, srv.URL+"/bookings", map[string]string{"title": title})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		ids = append(ids, decode[map[string]string](t, resp)["booking_id"])
	}

	resp := doJSON(t, http.MethodPut, srv.URL+"/bookings/"+ids[1]+"/active", map[string]bool{"active": false})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/bookings?limit=10")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	bookings := decode[[]struct{ ID string }](t, resp)
	require.Len(t, bookings, 1)
	assert.Equal(t, ids[0], bookings[0].ID)
}
