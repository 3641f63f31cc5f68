package clinicapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"klinik/models"
)

const (
	patientQueuePath = "/v1/pasien/data/antrean"
	adminQueuePath   = "/v1/admin/data/antrean"
)

// CreateQueue submits a reservation and returns the upstream message.
func (c *Client) CreateQueue(ctx context.Context, token string, payload models.QueuePayload) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, patientQueuePath, token, nil, payload, nil)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

// PatientQueue lists the caller's own reservations.
func (c *Client) PatientQueue(ctx context.Context, token string) ([]models.QueueEntry, error) {
	var out []models.QueueEntry
	_, err := c.do(ctx, http.MethodGet, patientQueuePath, token, nil, nil, &out)
	return out, err
}

func (c *Client) UpdatePatientQueueStatus(ctx context.Context, token, id, status string) error {
	_, err := c.do(ctx, http.MethodPut, patientQueuePath, token, nil, statusUpdate(id, status), nil)
	return err
}

func (c *Client) DeletePatientQueue(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, patientQueuePath, token, url.Values{"id": {id}}, nil, nil)
	return err
}

// AdminQueue lists one page of the clinic queue.
func (c *Client) AdminQueue(ctx context.Context, token string, q models.QueueQuery) (*models.QueuePage, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Name != "" {
		query.Set("name", q.Name)
	}
	if q.TodayOnly {
		query.Set("is_today", "true")
	}

	page := &models.QueuePage{}
	raw, err := c.do(ctx, http.MethodGet, adminQueuePath, token, query, nil, &page.Entries)
	if err != nil {
		return nil, err
	}
	if page.Entries == nil {
		page.Entries = []models.QueueEntry{}
	}

	var meta struct {
		Next interface{} `json:"next"`
		Last interface{} `json:"last"`
	}
	if err := json.Unmarshal(raw, &meta); err == nil {
		page.Next = truthy(meta.Next)
		page.Last = asInt(meta.Last)
	}
	return page, nil
}

func (c *Client) UpdateAdminQueueStatus(ctx context.Context, token, id, status string) error {
	_, err := c.do(ctx, http.MethodPut, adminQueuePath, token, nil, statusUpdate(id, status), nil)
	return err
}

func (c *Client) DeleteAdminQueue(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, adminQueuePath, token, url.Values{"id": {id}}, nil, nil)
	return err
}

func statusUpdate(id, status string) models.StatusUpdate {
	return models.StatusUpdate{ID: models.FlexID(id), Payload: models.StatusUpdateValue{Status: status}}
}

// truthy follows the loose truthiness the clinic API relies on for "next".
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

func asInt(v interface{}) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	}
	return 0
}
