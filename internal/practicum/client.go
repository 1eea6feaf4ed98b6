package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	errs "homework_bot/internal/errors"
)

// Ответ со статусами занимает единицы килобайт, больше не читаем.
const maxBodySize = 1 << 20

// Client ходит в API статусов домашних работ.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewClient(endpoint, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     httpClient,
	}
}

// GetAPIAnswer запрашивает статусы, изменившиеся после fromDate (unix-время),
// и возвращает разобранный JSON как есть. Числа остаются json.Number.
func (c *Client) GetAPIAnswer(ctx context.Context, fromDate int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	params := url.Values{}
	params.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.NewAPIUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewUnexpectedStatus(resp.StatusCode)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, errs.NewMalformedResponse("ответ API не является JSON", err)
	}

	return body, nil
}
