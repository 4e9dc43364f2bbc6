package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

func baseURL() string {
	if url := os.Getenv("E2E_BASE_URL"); url != "" {
		return url
	}
	switch os.Getenv("ENV") {
	case "CI":
		return "http://core-app:8080/api/v1"
	}
	return "http://localhost:8080/api/v1"
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	InvitationCode string    `json:"invitationCode"`
}

type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type MatchResponse struct {
	ID      uuid.UUID     `json:"id"`
	Status  string        `json:"status"`
	Partner *UserResponse `json:"partner"`
}

type apiClient struct {
	http *http.Client
}

func newClient() *apiClient {
	return &apiClient{http: &http.Client{Timeout: 30 * time.Second}}
}

// call sends body as JSON and decodes the answer into out when it is not nil.
func (c *apiClient) call(method, path, token string, body, out any, expected int) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL()+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != expected {
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *apiClient) waitForService() bool {
	for i := 0; i < 10; i++ {
		if err := c.call(http.MethodGet, "/health", "", nil, nil, http.StatusOK); err == nil {
			return true
		}
		time.Sleep(2 * time.Second)
	}
	return false
}

func (c *apiClient) register(username, invitationCode string) (SessionResponse, error) {
	var session SessionResponse
	err := c.call(http.MethodPost, "/auth/register", "", map[string]string{
		"username":       username,
		"email":          username + "@example.com",
		"password":       "e2e-password",
		"firstName":      "E2E",
		"lastName":       username,
		"invitationCode": invitationCode,
	}, &session, http.StatusCreated)
	return session, err
}

// runInvitationFlow registers an inviter and an invitee and returns the match
// the invitation created for them.
func runInvitationFlow(c *apiClient) (MatchResponse, error) {
	suffix := uuid.NewString()[:8]

	inviter, err := c.register("ana"+suffix, "")
	if err != nil {
		return MatchResponse{}, err
	}
	invitee, err := c.register("bob"+suffix, inviter.User.InvitationCode)
	if err != nil {
		return MatchResponse{}, err
	}

	var matches []MatchResponse
	if err := c.call(http.MethodGet, "/matches", invitee.Token, nil, &matches, http.StatusOK); err != nil {
		return MatchResponse{}, err
	}
	if len(matches) != 1 {
		return MatchResponse{}, fmt.Errorf("expected one match, got %d", len(matches))
	}

	if err := c.call(http.MethodPost, "/auth/logout", invitee.Token, nil, nil, http.StatusNoContent); err != nil {
		return MatchResponse{}, err
	}
	if err := c.call(http.MethodGet, "/matches", invitee.Token, nil, nil, http.StatusUnauthorized); err != nil {
		return MatchResponse{}, err
	}
	return matches[0], nil
}

func main() {
	c := newClient()
	if !c.waitForService() {
		fmt.Println("service did not start in time")
		os.Exit(1)
	}

	match, err := runInvitationFlow(c)
	if err != nil {
		fmt.Printf("invitation flow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("match %s is %s\n", match.ID, match.Status)
}
