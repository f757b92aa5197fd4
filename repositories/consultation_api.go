// Package repositories contains the request/response data access of the
// client. Wire DTOs stay here; callers only ever see domain types.
package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"

	"consultation-lab/domain"
	apperrors "consultation-lab/errors"
)

// sessionDTO is the wire shape of a consultation session.
type sessionDTO struct {
	ID                   string    `json:"id"`
	CounterpartName      string    `json:"counterpartName"`
	CounterpartOwnerName string    `json:"counterpartOwnerName"`
	CreatedAt            time.Time `json:"createdAt"`
}

type messageDTO struct {
	SessionID string    `json:"sessionId"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sentAt"`
}

// ConsultationClient talks to the Consultation endpoints. Every request
// carries the current bearer token and an explicit timeout, so a stalled
// server can never block the caller indefinitely.
type ConsultationClient struct {
	log     *slog.Logger
	base    string
	client  *http.Client
	timeout time.Duration
	token   func() string
}

func NewConsultationClient(log *slog.Logger, baseURL string, timeout time.Duration, token func() string) *ConsultationClient {
	return &ConsultationClient{
		log:     log,
		base:    strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		timeout: timeout,
		token:   token,
	}
}

// CreateSession opens a conversation between a guardian profile and a
// center profile.
func (c *ConsultationClient) CreateSession(ctx context.Context, parentProfileID, centerProfileID string) (domain.Session, error) {
	query := url.Values{}
	query.Set("parentProfileId", parentProfileID)
	query.Set("centerProfileId", centerProfileID)

	var dto sessionDTO
	if err := c.do(ctx, http.MethodPost, "/Consultation/Session?"+query.Encode(), nil, &dto); err != nil {
		return domain.Session{}, err
	}
	return toSession(dto), nil
}

// UserSessions lists the sessions of the authenticated party, in
// server-supplied order.
func (c *ConsultationClient) UserSessions(ctx context.Context) ([]domain.Session, error) {
	var dtos []sessionDTO
	if err := c.do(ctx, http.MethodGet, "/Consultation/User/Sessions", nil, &dtos); err != nil {
		return nil, err
	}
	return lo.Map(dtos, func(dto sessionDTO, _ int) domain.Session {
		return toSession(dto)
	}), nil
}

// SessionMessages returns the message history of one session.
func (c *ConsultationClient) SessionMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	var dtos []messageDTO
	if err := c.do(ctx, http.MethodGet, "/Consultation/User/"+url.PathEscape(sessionID), nil, &dtos); err != nil {
		return nil, err
	}
	return lo.Map(dtos, func(dto messageDTO, _ int) domain.Message {
		return domain.Message{
			SessionID: dto.SessionID,
			SenderID:  dto.SenderID,
			Content:   dto.Content,
			SentAt:    dto.SentAt,
		}
	}), nil
}

// SendMessage posts one chat turn. The body is the JSON-encoded content
// string, matching the server contract.
func (c *ConsultationClient) SendMessage(ctx context.Context, sessionID, content string) error {
	body, err := json.Marshal(content)
	if err != nil {
		return err
	}
	query := url.Values{}
	query.Set("sessionId", sessionID)
	return c.do(ctx, http.MethodPost, "/Consultation/Chat?"+query.Encode(), body, nil)
}

// Session fetches a single session's info.
func (c *ConsultationClient) Session(ctx context.Context, sessionID string) (domain.Session, error) {
	var dto sessionDTO
	if err := c.do(ctx, http.MethodGet, "/Consultation/Session/"+url.PathEscape(sessionID), nil, &dto); err != nil {
		return domain.Session{}, err
	}
	return toSession(dto), nil
}

func (c *ConsultationClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("consultation api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("Consultation API call failed",
			"method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s %s returned %d",
			apperrors.ErrUnexpectedStatus, method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("consultation api %s %s: decoding response: %w", method, path, err)
	}
	return nil
}

func toSession(dto sessionDTO) domain.Session {
	return domain.Session{
		ID:                   dto.ID,
		CounterpartName:      dto.CounterpartName,
		CounterpartOwnerName: dto.CounterpartOwnerName,
		CreatedAt:            dto.CreatedAt,
	}
}
