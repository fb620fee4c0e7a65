// Package rpc implements the ledger node JSON-RPC client over HTTP.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/payouts7000-backend/internal/ledger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for RPC calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	doer interface {
		DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
	}
)

// Client talks to a single ledger node.
type Client struct {
	url     string
	timeout time.Duration
	http    doer
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewClient builds a client for the node at rawURL. rps <= 0 disables rate limiting.
func NewClient(rawURL string, timeout time.Duration, rps int, metrics Metrics) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	return &Client{
		url:     parsed.String(),
		timeout: timeout,
		http: &fasthttp.Client{
			Name:         "payouts7000",
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		limiter: limiter,
		metrics: metrics,
	}, nil
}

type request struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

type envelope struct {
	Result json.RawMessage `json:"result"`
}

type baseResult struct {
	Status       string `json:"status"`
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

type txJSON struct {
	TransactionType string               `json:"TransactionType"`
	Account         string               `json:"Account"`
	Destination     string               `json:"Destination"`
	Amount          ledger.PaymentAmount `json:"Amount"`
	Sequence        uint32               `json:"Sequence"`
	Fee             string               `json:"Fee,omitempty"`
}

type signResult struct {
	baseResult
	TxBlob string `json:"tx_blob"`
	TxJSON struct {
		Hash string `json:"hash"`
	} `json:"tx_json"`
}

type submitResult struct {
	baseResult
	EngineResult        string `json:"engine_result"`
	EngineResultCode    int    `json:"engine_result_code"`
	EngineResultMessage string `json:"engine_result_message"`
}

type txResult struct {
	baseResult
	Hash     string `json:"hash"`
	InLedger uint64 `json:"inLedger"`
	Meta     *struct {
		TransactionResult string `json:"TransactionResult"`
	} `json:"meta"`
}

type accountInfoResult struct {
	baseResult
	AccountData struct {
		Sequence uint32 `json:"Sequence"`
	} `json:"account_data"`
}

// SignPayment asks the node to sign a payment with the given sequence.
func (c *Client) SignPayment(ctx context.Context, req ledger.PaymentRequest) (signed ledger.SignedTransaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("sign", err, started)
	}()

	tx := txJSON{
		TransactionType: "Payment",
		Account:         req.Account,
		Destination:     req.Destination,
		Amount:          req.Amount,
		Sequence:        req.Sequence,
	}
	if req.Fee > 0 {
		tx.Fee = fmt.Sprintf("%d", req.Fee)
	}
	params := map[string]any{
		"secret":  req.Secret,
		"tx_json": tx,
		"offline": true,
	}

	var res signResult
	if err = c.call(ctx, "sign", params, &res); err != nil {
		return ledger.SignedTransaction{}, err
	}
	if res.TxBlob == "" || res.TxJSON.Hash == "" {
		err = &ledger.RPCError{Method: "sign", Code: "malformedResponse", Message: "missing tx_blob or hash"}
		return ledger.SignedTransaction{}, err
	}
	return ledger.SignedTransaction{Blob: res.TxBlob, Hash: res.TxJSON.Hash}, nil
}

// SubmitTransaction submits a signed blob and returns the preliminary engine result.
func (c *Client) SubmitTransaction(ctx context.Context, blob string) (result ledger.SubmitResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit", err, started)
	}()

	var res submitResult
	if err = c.call(ctx, "submit", map[string]any{"tx_blob": blob}, &res); err != nil {
		return ledger.SubmitResult{}, err
	}
	return ledger.SubmitResult{
		EngineResult: res.EngineResult,
		Code:         res.EngineResultCode,
		Message:      res.EngineResultMessage,
	}, nil
}

// Transaction looks up a transaction by hash. Unknown hashes are reported with Found == false.
func (c *Client) Transaction(ctx context.Context, hash string) (status ledger.TransactionStatus, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("tx", err, started)
	}()

	var res txResult
	err = c.call(ctx, "tx", map[string]any{"transaction": hash}, &res)
	var rpcErr *ledger.RPCError
	if errors.As(err, &rpcErr) && rpcErr.Code == ledger.CodeTransactionNotFound {
		return ledger.TransactionStatus{}, nil
	}
	if err != nil {
		return ledger.TransactionStatus{}, err
	}

	status = ledger.TransactionStatus{Found: true, InLedger: res.InLedger > 0}
	if res.Meta != nil {
		status.HasMeta = true
		status.Result = res.Meta.TransactionResult
	}
	return status, nil
}

// AccountSequence returns the account's next sequence number as seen by the node.
func (c *Client) AccountSequence(ctx context.Context, address string) (sequence uint32, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("account_info", err, started)
	}()

	var res accountInfoResult
	if err = c.call(ctx, "account_info", map[string]any{"account": address}, &res); err != nil {
		return 0, err
	}
	return res.AccountData.Sequence, nil
}

func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(request{Method: method, Params: []any{params}})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", method, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBody(body)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	c.limiter.Take()
	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return fmt.Errorf("%w: %s: %v", ledger.ErrNetwork, method, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("%w: %s: unexpected status code %d", ledger.ErrNetwork, method, resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if len(env.Result) == 0 {
		return fmt.Errorf("decode %s response: missing result", method)
	}

	var base baseResult
	if err := json.Unmarshal(env.Result, &base); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	if base.Error != "" {
		return &ledger.RPCError{Method: method, Code: base.Error, Message: base.ErrorMessage}
	}

	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
