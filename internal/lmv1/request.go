package lmv1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

const (
	AuthScheme = "LMv1"
	APIVersion = "3"
)

type Credentials struct {
	AccessID  string
	AccessKey string
}

func (c Credentials) Validate() error {
	if c.AccessID == "" {
		return fmt.Errorf("%w: access id is required", domain.ErrConfiguration)
	}

	if c.AccessKey == "" {
		return fmt.Errorf("%w: access key is required", domain.ErrConfiguration)
	}

	return nil
}

type SignedRequest struct {
	Method          string
	Path            string
	TimestampMillis int64
	Body            []byte
	Signature       string
	AuthHeaderValue string
}

func (r *SignedRequest) Header() http.Header {
	h := make(http.Header, 3)
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", r.AuthHeaderValue)
	h.Set("X-Version", APIVersion)

	return h
}

type RequestBuilder struct {
	creds Credentials
	now   func() time.Time
}

type Option func(*RequestBuilder)

func WithClock(now func() time.Time) Option {
	return func(b *RequestBuilder) {
		b.now = now
	}
}

func NewRequestBuilder(creds Credentials, opts ...Option) (*RequestBuilder, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	b := &RequestBuilder{
		creds: creds,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

func (b *RequestBuilder) Build(method, path string, body []byte) (*SignedRequest, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("unsupported method %q", method)
	}

	// the same timestamp goes into the signature and the header
	ts := b.now().UnixMilli()

	signature, err := Sign(b.creds.AccessKey, method, path, ts, body)
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	return &SignedRequest{
		Method:          method,
		Path:            path,
		TimestampMillis: ts,
		Body:            body,
		Signature:       signature,
		AuthHeaderValue: AuthScheme + " " + b.creds.AccessID + ":" + signature + ":" + strconv.FormatInt(ts, 10),
	}, nil
}
