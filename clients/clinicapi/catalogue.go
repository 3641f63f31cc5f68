package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"klinik/models"
)

const adminDataPath = "/v1/admin/data/"

func cataloguePath(r models.CatalogueResource) string {
	return adminDataPath + string(r)
}

// AdminList lists one page of an admin-managed collection.
func (c *Client) AdminList(ctx context.Context, token string, r models.CatalogueResource, q models.CatalogueQuery) (*models.CataloguePage, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Search != "" {
		query.Set(r.SearchParam(), q.Search)
	}

	page := &models.CataloguePage{}
	raw, err := c.do(ctx, http.MethodGet, cataloguePath(r), token, query, nil, &page.Items)
	if err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []json.RawMessage{}
	}

	var meta struct {
		HasNext interface{} `json:"hasNext"`
		Next    interface{} `json:"next"`
		Last    interface{} `json:"last"`
	}
	if err := json.Unmarshal(raw, &meta); err == nil {
		page.Next = truthy(meta.HasNext) || truthy(meta.Next)
		page.Last = asInt(meta.Last)
	}
	return page, nil
}

// AdminGet fetches one record of an admin-managed collection. A null record is
// reported as not found.
func (c *Client) AdminGet(ctx context.Context, token string, r models.CatalogueResource, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, cataloguePath(r), token, url.Values{"id": {id}}, nil, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, &APIError{Status: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound)}
	}
	return out, nil
}

// AdminSave creates a record when id is empty and updates record id otherwise.
func (c *Client) AdminSave(ctx context.Context, token string, r models.CatalogueResource, id string, body interface{}) (string, error) {
	method, query := saveTarget(id)
	raw, err := c.do(ctx, method, cataloguePath(r), token, query, body, nil)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

// SaveSpecialization sends a specialist service as a multipart form. Empty
// optional fields are left out so the clinic API stores them as null.
func (c *Client) SaveSpecialization(ctx context.Context, token, id string, in models.SpecializationInput, photo *models.Upload) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"nama", in.Name},
		{"jam_mulai", in.JamMulai},
		{"jam_selesai", in.JamSelesai},
		{"hari_mulai", in.HariMulai},
		{"hari_selesai", in.HariSelesai},
		{"aktif", strconv.FormatBool(in.Active)},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return "", fmt.Errorf("clinicapi: encode specialization: %w", err)
		}
	}
	if photo != nil {
		part, err := mw.CreateFormFile("foto_layanan_spesialisasi", photo.Filename)
		if err != nil {
			return "", fmt.Errorf("clinicapi: encode specialization photo: %w", err)
		}
		if _, err := io.Copy(part, photo.Body); err != nil {
			return "", fmt.Errorf("clinicapi: encode specialization photo: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("clinicapi: encode specialization: %w", err)
	}

	method, query := saveTarget(id)
	raw, err := c.send(ctx, method, cataloguePath(models.ResourceSpecializations), token, query, mw.FormDataContentType(), &buf, nil)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

func saveTarget(id string) (string, url.Values) {
	if id == "" {
		return http.MethodPost, nil
	}
	return http.MethodPut, url.Values{"id": {id}}
}
