package remotestore

import (
	"bytes"
	"context"
	"docbook/cmd/internal/domain/entity"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// RemoteStoreInterface is the subset of the backend API the booking screen uses.
type RemoteStoreInterface interface {
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
	ListAppointments(ctx context.Context) ([]entity.Appointment, error)
	CreateAppointment(ctx context.Context, appt entity.Appointment) (*entity.Appointment, error)
	CompleteAppointment(ctx context.Context, id int64) (*entity.Appointment, error)
}

// StatusError is returned when the store answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remotestore: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *Client) ListAppointments(ctx context.Context) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// CreateAppointment posts appt and returns the record as stored remotely,
// which may carry a different id than the one sent.
func (c *Client) CreateAppointment(ctx context.Context, appt entity.Appointment) (*entity.Appointment, error) {
	var created entity.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", appt, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CompleteAppointment(ctx context.Context, id int64) (*entity.Appointment, error) {
	body := map[string]entity.Status{"status": entity.StatusDone}
	var updated entity.Appointment
	if err := c.do(ctx, http.MethodPatch, "/appointments/"+strconv.FormatInt(id, 10), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remotestore: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("remotestore: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("remotestore: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remotestore: decode %s %s: %w", method, path, err)
	}
	return nil
}
