package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dabirisdesserts/order-intake/internal/orders"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// APIError is returned for any non-2xx response or transport failure.
// StatusCode is zero when the request never produced a response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("airtable: transport error: %s", e.Body)
	}
	return fmt.Sprintf("airtable: API error: %d - %s", e.StatusCode, e.Body)
}

// Record is one row of the orders table as returned by the list endpoint.
type Record struct {
	ID     string                 `json:"id"`
	Fields map[string]interface{} `json:"fields"`
}

type listResponse struct {
	Records []Record `json:"records"`
}

type createResponse struct {
	ID string `json:"id"`
}

// Client talks to a single table of a single Airtable base over the v0
// REST API. There is no retry policy: a failed attempt is surfaced
// immediately, which is the right trade at this request volume. The
// client is constructed once at process start and reused across requests.
type Client struct {
	http    *resty.Client
	baseID  string
	tableID string
}

// New returns a Client bound to a base and table. Every outbound call is
// bounded by timeout.
func New(apiKey, baseID, tableID string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetAuthToken(apiKey).
			SetTimeout(timeout).
			SetRetryCount(0),
		baseID:  baseID,
		tableID: tableID,
	}
}

// WithBaseURL points the client at a different API endpoint, primarily
// for tests against a stub server.
func (c *Client) WithBaseURL(url string) *Client {
	c.http.SetBaseURL(url)
	return c
}

// CreateOrder persists the canonical order as one record, mapping every
// order field to its named column, and returns the remote record id.
func (c *Client) CreateOrder(ctx context.Context, o orders.Order) (string, error) {
	details, err := json.Marshal(o.LineItems)
	if err != nil {
		return "", fmt.Errorf("marshal order details: %w", err)
	}

	payload := map[string]interface{}{
		"fields": map[string]interface{}{
			"Order ID":             o.OrderID,
			"Customer Name":        o.CustomerName,
			"Email":                o.Email,
			"Phone Number":         o.Phone,
			"Pickup Date":          o.PickupDate.Format(orders.PickupDateLayout),
			"Order Details":        string(details),
			"Special Instructions": o.Annotations.SpecialInstructions,
			"Design Requests":      o.Annotations.DesignRequests,
			"Cake Text":            o.Annotations.CakeText,
			"Color Requests":       o.Annotations.ColorRequests,
			"Custom Flavor":        o.Annotations.CustomFlavor,
			"Additional Specs":     o.Annotations.AdditionalSpecs,
			"Allergies":            o.Annotations.Allergies,
			"How Did You Hear":     o.Annotations.HowDidYouHear,
			"Total Price":          o.TotalPrice,
			"Order Status":         o.Status,
			"Order Date":           o.SubmittedAt.Format(orders.PickupDateLayout),
		},
	}

	var out createResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post(c.tablePath())
	if err != nil {
		return "", &APIError{Body: err.Error()}
	}
	if resp.IsError() {
		return "", &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return out.ID, nil
}

// ListOrders fetches the store's default page of records. Pagination is
// intentionally not implemented.
func (c *Client) ListOrders(ctx context.Context) ([]Record, error) {
	var out listResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(c.tablePath())
	if err != nil {
		return nil, &APIError{Body: err.Error()}
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return out.Records, nil
}

// Healthcheck issues a one-record read to verify credentials and
// connectivity before committing to a write.
func (c *Client) Healthcheck(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("maxRecords", "1").
		Get(c.tablePath())
	if err != nil {
		return &APIError{Body: err.Error()}
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}

func (c *Client) tablePath() string {
	return fmt.Sprintf("/%s/%s", c.baseID, c.tableID)
}
