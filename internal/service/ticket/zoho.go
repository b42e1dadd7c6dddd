package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"support-chat-backend/internal/env"
	"support-chat-backend/internal/model"

	"github.com/tidwall/gjson"
)

// Service raises support tickets in Zoho Desk.
type Service struct {
	baseURL      string
	orgID        string
	departmentID string
	contactID    string
	oauthToken   string
	client       *http.Client
}

type ticketPayload struct {
	Subject      string `json:"subject"`
	Email        string `json:"email"`
	DepartmentID string `json:"departmentId"`
	ContactID    string `json:"contactId,omitempty"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	Channel      string `json:"channel"`
}

func New() *Service {
	return NewWithConfig(Config{
		BaseURL:      env.MustGet(env.ZohoDeskURL),
		OrgID:        env.MustGet(env.ZohoOrgID),
		DepartmentID: env.MustGet(env.ZohoDepartmentID),
		ContactID:    env.Get(env.ZohoContactID),
		OAuthToken:   env.MustGet(env.ZohoOAuthToken),
	}, &http.Client{Timeout: 15 * time.Second})
}

type Config struct {
	BaseURL      string
	OrgID        string
	DepartmentID string
	ContactID    string
	OAuthToken   string
}

func NewWithConfig(cfg Config, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Service{
		baseURL:      cfg.BaseURL,
		orgID:        cfg.OrgID,
		departmentID: cfg.DepartmentID,
		contactID:    cfg.ContactID,
		oauthToken:   cfg.OAuthToken,
		client:       client,
	}
}

// NeedsEmail reports whether an email still has to be collected before a
// ticket can be raised for this conversation.
func (s *Service) NeedsEmail(conversation *model.Conversation) bool {
	return conversation.Metadata.Email == ""
}

// CreateTicket opens a Zoho Desk ticket carrying the conversation
// transcript and returns the ticket id.
func (s *Service) CreateTicket(ctx context.Context, email string, conversation *model.Conversation) (string, error) {
	payload := preparePayload(email, conversation, s.departmentID, s.contactID)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal ticket payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/v1/tickets", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("orgId", s.orgID)
	req.Header.Set("Authorization", "Zoho-oauthtoken "+s.oauthToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("create ticket: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read ticket response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("zoho api %s: %s", resp.Status, respBody)
	}

	ticketID := gjson.GetBytes(respBody, "id").String()
	if ticketID == "" {
		return "", fmt.Errorf("zoho api: ticket created without an id")
	}
	return ticketID, nil
}

func preparePayload(email string, conversation *model.Conversation, departmentID, contactID string) ticketPayload {
	var transcript bytes.Buffer
	for _, msg := range conversation.Messages {
		fmt.Fprintf(&transcript, "%s: %s\n", msg.Sender, msg.Content.Text)
	}

	subject := "Customer Support Request"
	if first, ok := conversation.FirstUserMessage(); ok {
		if len(first) > 50 {
			subject = first[:50] + "..."
		} else {
			subject = first
		}
	}

	description := "Chat Conversation History:\n" + transcript.String()
	if conversation.Metadata.OrderNumber != "" {
		description += "\nOrder Number: " + conversation.Metadata.OrderNumber
	}

	return ticketPayload{
		Subject:      subject,
		Email:        email,
		DepartmentID: departmentID,
		ContactID:    contactID,
		Description:  description,
		Priority:     "Medium",
		Status:       "Open",
		Channel:      "Chat",
	}
}
