package clinicapi

import (
	"context"
	"net/http"

	"klinik/models"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registration struct {
	Nama     string `json:"nama"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginPatient exchanges patient credentials for a bearer token.
func (c *Client) LoginPatient(ctx context.Context, username, password string) (string, error) {
	return c.login(ctx, "/v1/auth/pasien/login", username, password)
}

// LoginAdmin exchanges admin credentials for a bearer token.
func (c *Client) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	return c.login(ctx, "/v1/auth/admin/login", username, password)
}

func (c *Client) login(ctx context.Context, path, username, password string) (string, error) {
	var token string
	_, err := c.do(ctx, http.MethodPost, path, "", nil, credentials{Username: username, Password: password}, &token)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", &APIError{Status: http.StatusBadGateway, Message: "clinic api returned an empty token"}
	}
	return token, nil
}

// RegisterPatient creates a patient account and returns the upstream message.
func (c *Client) RegisterPatient(ctx context.Context, req models.RegisterRequest) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/v1/auth/pasien/register", "", nil,
		registration{Nama: req.Name, Username: req.Username, Password: req.Password}, nil)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

// PatientProfile hydrates the patient behind token.
func (c *Client) PatientProfile(ctx context.Context, token string) (*models.Profile, error) {
	return c.profile(ctx, "/v1/pasien/profil", token)
}

// AdminProfile hydrates the admin behind token.
func (c *Client) AdminProfile(ctx context.Context, token string) (*models.Profile, error) {
	return c.profile(ctx, "/v1/admin/profil", token)
}

func (c *Client) profile(ctx context.Context, path, token string) (*models.Profile, error) {
	var p models.Profile
	if _, err := c.do(ctx, http.MethodGet, path, token, nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
