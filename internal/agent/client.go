// Package agent is the HTTP client for the external AI agent service
// that generates weekly meal plans and eating-pattern insights. The
// service is a black box: responses are validated for shape before use
// and transport failures translate into the typed upstream error kinds.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/apperr"
	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
)

// PlanOption is one generated weekly plan variant.
type PlanOption struct {
	OptionName string              `json:"option_name"`
	Days       []mealplan.DayMeals `json:"days"`
}

// Client talks to the AI agent service. Construct it explicitly with a
// base URL and timeout so tests can point it at a double.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new agent Client. The timeout bounds the whole
// call; the agent may fetch auxiliary media per meal, so callers should
// allow on the order of two minutes.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Name        string               `json:"name"`
	Preferences mealplan.Preferences `json:"preferences"`
}

// generateResponse accepts both key spellings the agent has been seen
// to use.
type generateResponse struct {
	MealPlans      []PlanOption `json:"mealPlans"`
	MealPlansSnake []PlanOption `json:"meal_plans"`
}

func (r generateResponse) options() []PlanOption {
	if len(r.MealPlans) > 0 {
		return r.MealPlans
	}
	return r.MealPlansSnake
}

// GenerateWeeklyPlan asks the agent for a weekly plan and returns the
// first option after validating its shape.
func (c *Client) GenerateWeeklyPlan(ctx context.Context, name string, prefs mealplan.Preferences) (*PlanOption, error) {
	body, err := c.post(ctx, "/api/meal-plan/generate-weekly", generateRequest{
		Name:        name,
		Preferences: prefs,
	})
	if err != nil {
		return nil, err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidUpstreamResponse,
			"AI service returned an unreadable meal plan", err).WithDetail(string(body))
	}
	options := resp.options()
	if len(options) == 0 || len(options[0].Days) == 0 {
		return nil, apperr.New(apperr.KindInvalidUpstreamResponse,
			"AI service returned no meal plan days").WithDetail(string(body))
	}

	option := options[0]
	if option.OptionName == "" {
		option.OptionName = "Weekly Meal Plan"
	}
	return &option, nil
}

type insightRequest struct {
	UserProfile    any             `json:"userProfile"`
	CompletedMeals []mealplan.Meal `json:"completedMeals"`
}

// GenerateInsights forwards the completed-meal history plus a profile
// snapshot and relays the agent's response verbatim.
func (c *Client) GenerateInsights(ctx context.Context, profile any, completedMeals []mealplan.Meal) (json.RawMessage, error) {
	body, err := c.post(ctx, "/api/insights/generate", insightRequest{
		UserProfile:    profile,
		CompletedMeals: completedMeals,
	})
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, apperr.New(apperr.KindInvalidUpstreamResponse,
			"AI service returned invalid insight data").WithDetail(string(body))
	}
	return json.RawMessage(body), nil
}

// post sends a JSON request and returns the raw response body of a 2xx
// response, translating every transport failure into a typed error.
func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, translateTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamError, "Failed to read AI service response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := upstreamMessage(body)
		if message == "" {
			message = fmt.Sprintf("AI service returned status %d", resp.StatusCode)
		}
		return nil, apperr.New(apperr.KindUpstreamError, message).WithDetail(string(body))
	}

	return body, nil
}

func translateTransportError(err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return apperr.Wrap(apperr.KindUpstreamUnavailable,
			"AI service is unavailable, please try again later", err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperr.Wrap(apperr.KindUpstreamTimeout,
			"AI service took too long to respond", err)
	}

	return apperr.Wrap(apperr.KindUpstreamError, "Failed to reach AI service", err)
}

// upstreamMessage pulls a human-readable message out of an error payload
// if the agent sent one.
func upstreamMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
