package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/infrastructure/config"
)

const (
	accessTokenHeader = "X-Shopify-Access-Token"
	maxResponseBytes  = 8 << 20
	bodySnippetLength = 512
)

// Client talks to the platform's Admin GraphQL endpoint.
//
// It performs no retries. Callers can branch on entities.IsRetryable.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewClient(cfg config.CommerceConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		endpoint: cfg.GraphQLEndpoint(),
		token:    cfg.AccessToken,
		http:     httpClient,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Execute runs one GraphQL document and returns its data object. Any
// userErrors reported by a mutation payload become a RemoteOperationError.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	data, userErrors, err := c.do(ctx, query, variables)
	if err != nil {
		return nil, err
	}
	if len(userErrors) > 0 {
		return nil, operationError(userErrors)
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, query string, variables map[string]any) (json.RawMessage, []entities.UserError, error) {
	if c.endpoint == "" || c.token == "" {
		return nil, nil, entities.NewError(entities.KindConfiguration, "commerce endpoint or access token is not configured")
	}

	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, nil, entities.WrapError(entities.KindRemoteProtocol, "encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, entities.WrapError(entities.KindConfiguration, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(accessTokenHeader, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[commerce][client] request failed err=%v", err)
		return nil, nil, entities.WrapError(entities.KindRemoteTransport, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, entities.WrapError(entities.KindRemoteTransport, "read response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[commerce][client] unexpected status=%d", resp.StatusCode)
		return nil, nil, &entities.Error{
			Kind:       entities.KindRemoteTransport,
			Message:    "unexpected response status",
			HTTPStatus: resp.StatusCode,
			Body:       snippet(body),
		}
	}

	var env graphQLResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, &entities.Error{Kind: entities.KindRemoteProtocol, Message: "response is not a graphql envelope", Err: err, HTTPStatus: resp.StatusCode, Body: snippet(body)}
	}
	if len(env.Errors) > 0 {
		log.Printf("[commerce][client] graphql errors count=%d first=%q", len(env.Errors), env.Errors[0].Message)
		return nil, nil, &entities.Error{Kind: entities.KindRemoteProtocol, Message: env.Errors[0].Message, HTTPStatus: resp.StatusCode, Body: snippet(body)}
	}
	return env.Data, collectUserErrors(env.Data), nil
}

// collectUserErrors scans every top-level payload in data for userErrors.
func collectUserErrors(data json.RawMessage) []entities.UserError {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	var out []entities.UserError
	for _, name := range names {
		var payload struct {
			UserErrors []entities.UserError `json:"userErrors"`
		}
		if err := json.Unmarshal(fields[name], &payload); err != nil {
			continue
		}
		out = append(out, payload.UserErrors...)
	}
	return out
}

func operationError(userErrors []entities.UserError) *entities.Error {
	return &entities.Error{
		Kind:       entities.KindRemoteOperation,
		Message:    userErrors[0].Message,
		UserErrors: userErrors,
	}
}

func decodeData(data json.RawMessage, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return entities.WrapError(entities.KindRemoteProtocol, fmt.Sprintf("unexpected data shape for %T", out), err)
	}
	return nil
}

func snippet(b []byte) string {
	if len(b) > bodySnippetLength {
		return string(b[:bodySnippetLength])
	}
	return string(b)
}
