package clinicapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"klinik/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/admin/data/jadwal-dokter-umum", r.URL.Path)
		assert.Equal(t, "Bearer adm", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "08:00", r.URL.Query().Get("waktu"))
		assert.Empty(t, r.URL.Query().Get("name"))
		_, _ = io.WriteString(w, `{"data":[{"id":1,"waktu":"08:00:00 - 12:00:00"}],"hasNext":true,"last":3,"message":"ok"}`)
	})

	page, err := c.AdminList(context.Background(), "adm", models.ResourceGeneralSchedules,
		models.CatalogueQuery{Page: 2, PerPage: 5, Search: "08:00"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.JSONEq(t, `{"id":1,"waktu":"08:00:00 - 12:00:00"}`, string(page.Items[0]))
	assert.True(t, page.Next)
	assert.Equal(t, 3, page.Last)
}

func TestAdminList_DoctorSearchByName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/admin/data/dokter", r.URL.Path)
		assert.Equal(t, "Budi", r.URL.Query().Get("name"))
		_, _ = io.WriteString(w, `{"data":null,"message":"ok"}`)
	})

	page, err := c.AdminList(context.Background(), "adm", models.ResourceDoctors, models.CatalogueQuery{Search: "Budi"})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.Next)
}

func TestAdminGet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/admin/data/dokter-umum", r.URL.Path)
		if r.URL.Query().Get("id") == "4" {
			_, _ = io.WriteString(w, `{"data":{"id":4,"nama":"dr. Ani","aktif":true},"message":"ok"}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":null,"message":"ok"}`)
	})

	got, err := c.AdminGet(context.Background(), "adm", models.ResourceGeneralDoctors, "4")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"nama":"dr. Ani","aktif":true}`, string(got))

	_, err = c.AdminGet(context.Background(), "adm", models.ResourceGeneralDoctors, "5")
	assert.True(t, IsNotFound(err))
}

func TestAdminSave_PostsOrPuts(t *testing.T) {
	var calls []string
	var bodies []map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/admin/data/dokter", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		calls = append(calls, r.Method+" "+r.URL.Query().Get("id"))
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		_, _ = io.WriteString(w, `{"data":null,"message":"Data dokter disimpan"}`)
	})

	in := models.DoctorInput{Name: "dr. Budi", SpecializationID: "7", Active: true}
	msg, err := c.AdminSave(context.Background(), "adm", models.ResourceDoctors, "", in)
	require.NoError(t, err)
	assert.Equal(t, "Data dokter disimpan", msg)

	_, err = c.AdminSave(context.Background(), "adm", models.ResourceDoctors, "9", in)
	require.NoError(t, err)

	assert.Equal(t, []string{"POST ", "PUT 9"}, calls)
	assert.Equal(t, "dr. Budi", bodies[0]["nama"])
	assert.Equal(t, float64(7), bodies[0]["fk_dt_layanan_spesialisasi"])
	assert.Equal(t, true, bodies[0]["aktif"])
}

func TestSaveSpecialization_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/admin/data/layanan-spesialisasi", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}

		assert.Equal(t, "Gigi", r.FormValue("nama"))
		assert.Equal(t, "09:00:00", r.FormValue("jam_mulai"))
		assert.Equal(t, "Senin", r.FormValue("hari_mulai"))
		assert.Equal(t, "Rabu", r.FormValue("hari_selesai"))
		assert.Equal(t, "true", r.FormValue("aktif"))
		_, hasEnd := r.MultipartForm.Value["jam_selesai"]
		assert.False(t, hasEnd)

		f, hdr, err := r.FormFile("foto_layanan_spesialisasi")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		assert.Equal(t, "gigi.png", hdr.Filename)
		content, _ := io.ReadAll(f)
		assert.Equal(t, "png-bytes", string(content))

		_, _ = io.WriteString(w, `{"data":null,"message":"Spesialisasi diperbarui"}`)
	})

	in := models.SpecializationInput{Name: "Gigi", JamMulai: "09:00:00", HariMulai: "Senin", HariSelesai: "Rabu", Active: true}
	msg, err := c.SaveSpecialization(context.Background(), "adm", "7", in,
		&models.Upload{Filename: "gigi.png", Body: strings.NewReader("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "Spesialisasi diperbarui", msg)
}
