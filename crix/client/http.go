package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// reqEnvelope wraps POST parameters under the single "req" key the API
// expects.
type reqEnvelope struct {
	Req any `json:"req"`
}

// do issues one HTTP call and decodes the response into out.
//
// Classification: transport errors propagate unmodified from resty; a
// non-2xx status becomes an *APIError carrying op, status and raw body;
// a malformed success body becomes a wrapped decode error. No retries
// are performed at this layer.
func (c *Client) do(ctx context.Context, op, method, path string, payload []byte, headers map[string]string, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(payload)
	}
	for k, v := range headers {
		req.SetHeader(k, v)
	}

	var (
		resp *resty.Response
		err  error
	)
	switch method {
	case http.MethodGet:
		resp, err = req.Get(path)
	case http.MethodPost:
		resp, err = req.Post(path)
	default:
		return errors.Errorf("%s: unsupported method %s", op, method)
	}
	if err != nil {
		return err
	}

	c.log.WithFields(logrus.Fields{
		"op":     op,
		"status": resp.StatusCode(),
		"path":   path,
	}).Debug("crix request")

	if resp.IsError() {
		return &APIError{Op: op, StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrapf(err, "%s: decode response", op)
	}
	return nil
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, nil, out)
}

// post serializes body once and sends those bytes. Unauthenticated POST.
func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "%s: encode request", op)
	}
	return c.do(ctx, op, http.MethodPost, path, payload, nil, out)
}
