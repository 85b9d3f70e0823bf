// Package ledgerapi talks to the ledger verification service over HTTP+JSON.
// A single Client implements every collaborator the core needs: signature
// checks, inclusion checks, the entropy reading and the transaction feed.
package ledgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabapcia/txproof/internal/enrichment"
	"github.com/gabapcia/txproof/internal/entropywatch"
	"github.com/gabapcia/txproof/internal/monitor"
	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/pkg/validator"
	"github.com/gabapcia/txproof/internal/proofcheck"
	"github.com/gabapcia/txproof/internal/sigcheck"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	pathVerifySignature   = "/api/verify-signature"
	pathVerifyTransaction = "/api/verify-transaction"
	pathLatestEntropy     = "/api/latest-entropy"
	pathGetTransactions   = "/api/get-transactions"

	maxResponseBytes = 4 << 20
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse is returned when a response body is missing a
	// required field.
	ErrMalformedResponse = errors.New("malformed response")
)

// Client is the HTTP adapter for the ledger verification service.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

var (
	_ sigcheck.Checker        = (*Client)(nil)
	_ proofcheck.Checker      = (*Client)(nil)
	_ entropywatch.Source     = (*Client)(nil)
	_ monitor.TransactionFeed = (*Client)(nil)
)

// NewClient returns a Client rooted at baseURL (for example
// "http://127.0.0.1:5000").
func NewClient(baseURL string, httpClient *retryablehttp.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type verdictResponse struct {
	Valid *bool `json:"valid"`
}

func (r verdictResponse) verdict() (bool, error) {
	if r.Valid == nil {
		return false, fmt.Errorf("%w: missing 'valid'", ErrMalformedResponse)
	}
	return *r.Valid, nil
}

// CheckSignature calls POST /api/verify-signature.
func (c *Client) CheckSignature(ctx context.Context, req sigcheck.Request) (bool, error) {
	if err := validator.Validate(req); err != nil {
		return false, err
	}

	var res verdictResponse
	if err := c.do(ctx, http.MethodPost, pathVerifySignature, req, &res); err != nil {
		return false, err
	}

	return res.verdict()
}

// CheckInclusion calls POST /api/verify-transaction.
func (c *Client) CheckInclusion(ctx context.Context, req proofcheck.Request) (bool, error) {
	if err := validator.Validate(req); err != nil {
		return false, err
	}

	var res verdictResponse
	if err := c.do(ctx, http.MethodPost, pathVerifyTransaction, req, &res); err != nil {
		return false, err
	}

	return res.verdict()
}

// LatestEntropy calls GET /api/latest-entropy.
func (c *Client) LatestEntropy(ctx context.Context) (entropywatch.Reading, error) {
	var res entropywatch.Reading
	if err := c.do(ctx, http.MethodGet, pathLatestEntropy, nil, &res); err != nil {
		return entropywatch.Reading{}, err
	}

	return res, nil
}

type feedResponse struct {
	Transactions *[]json.RawMessage `json:"transactions"`
}

// FetchTransactions calls GET /api/get-transactions. Every record is kept:
// fields that cannot be decoded are flagged on the transaction so the
// affected check fails closed instead of the record disappearing.
func (c *Client) FetchTransactions(ctx context.Context) ([]enrichment.Transaction, error) {
	var res feedResponse
	if err := c.do(ctx, http.MethodGet, pathGetTransactions, nil, &res); err != nil {
		return nil, err
	}

	if res.Transactions == nil {
		return nil, fmt.Errorf("%w: missing 'transactions'", ErrMalformedResponse)
	}

	txs := make([]enrichment.Transaction, 0, len(*res.Transactions))
	for i, raw := range *res.Transactions {
		tx, bad := decodeRecord(raw)
		if len(bad) > 0 {
			logger.Warn(ctx, "malformed transaction record",
				"feed.index", i,
				"transaction.hash", tx.Hash,
				"feed.fields", bad,
			)
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// decodeRecord decodes one feed record field by field. It returns the
// transaction and the names of the fields that could not be decoded. Feed
// annotations are ignored.
func decodeRecord(raw json.RawMessage) (enrichment.Transaction, []string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return enrichment.Transaction{
			Defects: enrichment.Defects{SignatureInputs: true, ProofInputs: true},
		}, []string{"record"}
	}

	var (
		tx  enrichment.Transaction
		bad []string
	)
	decode := func(key string, dst any) bool {
		v, ok := fields[key]
		if !ok {
			return true
		}
		if err := json.Unmarshal(v, dst); err != nil {
			bad = append(bad, key)
			return false
		}
		return true
	}

	tx.Defects.SignatureInputs = !all(
		decode("sender", &tx.Sender),
		decode("recipient", &tx.Recipient),
		decode("amount", &tx.Amount),
		decode("signature", &tx.Signature),
		decode("public_key", &tx.PublicKey),
	)
	tx.Defects.ProofInputs = !all(
		decode("hash", &tx.Hash),
		decode("proof", &tx.Proof),
		decode("merkle_root", &tx.MerkleRoot),
	)
	if tx.Defects.ProofInputs {
		tx.Proof = nil
	}

	return tx, bad
}

func all(oks ...bool) bool {
	for _, ok := range oks {
		if !ok {
			return false
		}
	}
	return true
}

// do sends one request and decodes a 2xx JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedStatus, method, path, res.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(res.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}
