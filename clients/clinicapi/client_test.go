package clinicapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"klinik/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func TestPublicGeneralSchedules(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/public/data/jadwal-dokter-umum", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"data":[{"id":1,"waktu":"08:00:00 - 12:00:00"},{"id":"2","waktu":"22:00:00 - 02:00:00"}],"message":"ok"}`)
	})

	got, err := c.PublicGeneralSchedules(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.FlexID("1"), got[0].ID)
	assert.Equal(t, "22:00:00 - 02:00:00", got[1].Waktu)
}

func TestPatientCalls_ForwardBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/v1/pasien/data/layanan-spesialisasi/7":
			_, _ = io.WriteString(w, `{"data":{"id":7,"nama":"Gigi","hari":"Senin - Rabu","jam_mulai":"09:00:00","jam_selesai":null},"message":"ok"}`)
		case "/v1/pasien/profil":
			_, _ = io.WriteString(w, `{"data":{"id":12,"nama":"Siti","username":"siti"},"message":"ok"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	spec, err := c.PatientSpecialization(context.Background(), "tok", "7")
	require.NoError(t, err)
	assert.Equal(t, "Senin - Rabu", spec.Hari)
	assert.Empty(t, spec.JamSelesai)

	p, err := c.PatientProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "12", p.ID.String())
	assert.Equal(t, "Siti", p.Nama)
}

func TestCreateQueue(t *testing.T) {
	var got map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pasien/data/antrean", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"data":null,"message":"Antrean berhasil dibuat"}`)
	})

	payload := models.NewQueuePayload("12", "2026-10-20", "09:30:00", models.Registrant{
		Name: "Siti", Age: 30, PhoneNumber: "0812", Address: "Jl. Mawar", Gender: "P",
	})
	payload.GeneralScheduleID = "3"

	msg, err := c.CreateQueue(context.Background(), "tok", payload)
	require.NoError(t, err)
	assert.Equal(t, "Antrean berhasil dibuat", msg)

	assert.Equal(t, "2026-10-20", got["tanggal"])
	assert.Equal(t, "09:30:00", got["waktu"])
	assert.Equal(t, float64(12), got["fk_dt_pasien"])
	assert.Equal(t, float64(3), got["fk_dt_jadwal_dokter_umum"])
	assert.NotContains(t, got, "fk_dt_layanan_spesialisasi")
	assert.Equal(t, "Siti", got["nama_pendaftar"])
}

func TestStatusUpdateAndDelete(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.RequestURI())
		if r.Method == http.MethodPut {
			var body models.StatusUpdate
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "5", body.ID.String())
		}
		_, _ = io.WriteString(w, `{"data":null,"message":"ok"}`)
	})

	ctx := context.Background()
	require.NoError(t, c.UpdatePatientQueueStatus(ctx, "tok", "5", models.QueueStatusCancelled))
	require.NoError(t, c.DeletePatientQueue(ctx, "tok", "5"))
	require.NoError(t, c.UpdateAdminQueueStatus(ctx, "tok", "5", models.QueueStatusDone))
	require.NoError(t, c.DeleteAdminQueue(ctx, "tok", "5"))

	assert.Equal(t, []string{
		"PUT /v1/pasien/data/antrean",
		"DELETE /v1/pasien/data/antrean?id=5",
		"PUT /v1/admin/data/antrean",
		"DELETE /v1/admin/data/antrean?id=5",
	}, calls)
}

func TestAdminQueue_Pagination(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "5", q.Get("per_page"))
		assert.Equal(t, "true", q.Get("is_today"))
		assert.Equal(t, "siti", q.Get("name"))
		_, _ = io.WriteString(w, `{"data":[{"id":1,"tanggal":"2026-10-19","waktu":"09:00:00","nama_pendaftar":"Siti","status":"Menunggu"}],"next":"/v1/admin/data/antrean?page=3","last":4,"message":"ok"}`)
	})

	page, err := c.AdminQueue(context.Background(), "tok", models.QueueQuery{Page: 2, PerPage: 5, Name: "siti", TodayOnly: true})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.True(t, page.Next)
	assert.Equal(t, 4, page.Last)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "rahasia" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"data":null,"message":"Username atau password salah"}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":"token-123","message":"ok"}`)
	})

	token, err := c.LoginPatient(context.Background(), "siti", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)

	_, err = c.LoginAdmin(context.Background(), "siti", "salah")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Username atau password salah", apiErr.Message)
}

func TestErrorWithoutEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := c.PublicSpecializations(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
	assert.Contains(t, err.Error(), "Bad Gateway")
	assert.False(t, IsNotFound(err))
}

func TestTransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	_, err := c.PublicSpecializationSchedules(context.Background())
	require.Error(t, err)
	assert.Zero(t, StatusOf(err))
}
