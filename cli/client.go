package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the staff training bot
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("STAFFBOT_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// CheckHealth checks if the API is up and running
func (c *ApiClient) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API health check failed with status code: %d", resp.StatusCode)
	}
	return true, nil
}

// ChatResponse is the bot's answer to one message
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	UserRole  string `json:"userRole"`
	UserName  string `json:"userName"`
	Error     string `json:"error,omitempty"`
}

// Chat sends one message and returns the bot's reply
func (c *ApiClient) Chat(message, role, name string) (*ChatResponse, error) {
	payload := map[string]string{
		"message":  message,
		"userRole": role,
		"userName": name,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.BaseURL+"/api/chat", bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat failed: %s", string(body))
	}

	var chat ChatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// Suggestions retrieves starter questions for a role
func (c *ApiClient) Suggestions(role string) ([]string, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/suggestions/" + role)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get suggestions with status code: %d", resp.StatusCode)
	}

	var payload struct {
		Role        string   `json:"role"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Suggestions, nil
}
