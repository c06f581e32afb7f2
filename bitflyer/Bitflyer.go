package bitflyer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	. "github.com/deforceHK/gobitflyer"
)

const (
	/*Rest Endpoint*/
	ENDPOINT       = "https://api.bitflyer.com"
	PUBLIC_PREFIX  = "/v1/"
	PRIVATE_PREFIX = "/v1/me/"

	// metrics label of requests sent outside the endpoint table.
	RAW_REQUEST_LABEL = "raw"
)

var _ RestAPI = (*Bitflyer)(nil)

type Bitflyer struct {
	config     APIConfig
	httpClient *http.Client
	logger     *zerolog.Logger
	metrics    *Metrics

	Market  *Market
	Account *Account
	Trade   *Trade
}

// RequestSpec is one call: built per request and never kept.
type RequestSpec struct {
	Path   string
	Method string
	Params Params
}

func New(config *APIConfig) (*Bitflyer, error) {
	cfg := APIConfig{}
	if config != nil {
		cfg = *config
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = ENDPOINT
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")

	httpClient := cfg.HttpClient
	if httpClient == nil {
		var err error
		httpClient, err = NewHttpClient(cfg.ConnectTimeout, cfg.ReadTimeout, cfg.ProxyUrl)
		if err != nil {
			return nil, fmt.Errorf("build http client: %w", err)
		}
	}

	metrics, err := NewMetrics(cfg.Registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	bf := &Bitflyer{
		config:     cfg,
		httpClient: httpClient,
		logger:     LoggerOf(&cfg),
		metrics:    metrics,
	}
	bf.Market = &Market{bf}
	bf.Account = &Account{bf}
	bf.Trade = &Trade{bf}
	return bf, nil
}

func (bf *Bitflyer) GetExchangeName() string {
	return BITFLYER
}

func (bf *Bitflyer) HasCredentials() bool {
	return bf.config.HasCredentials()
}

/*
Request sends one request to path (eg: /v1/ticker) and returns the decoded
JSON with the raw body. It signs when the client holds credentials. The http
status is not checked, an exchange error payload comes back as a value.
*/
func (bf *Bitflyer) Request(path, method string, params Params) (JsonValue, []byte, error) {
	return bf.do(RAW_REQUEST_LABEL, RequestSpec{Path: path, Method: method, Params: params})
}

func (bf *Bitflyer) DoRequest(spec RequestSpec) (JsonValue, []byte, error) {
	return bf.do(RAW_REQUEST_LABEL, spec)
}

// Call dispatches through the endpoint table, eg: Call("ticker", Params{"product_code": "BTC_JPY"}).
func (bf *Bitflyer) Call(name string, params Params) (JsonValue, []byte, error) {
	return bf.CallRegion(name, REGION_JP, params)
}

func (bf *Bitflyer) CallRegion(name, region string, params Params) (JsonValue, []byte, error) {
	endpoint, exist := LookupEndpoint(name)
	if !exist {
		return nil, nil, fmt.Errorf("%w: %s", ErrIllegalEndpoint, name)
	}
	return bf.call(endpoint, region, params)
}

func (bf *Bitflyer) call(endpoint Endpoint, region string, params Params) (JsonValue, []byte, error) {
	if err := bf.requireAuth(endpoint); err != nil {
		bf.metrics.Observe(endpoint.Name, endpoint.Method, 0, err)
		return nil, nil, err
	}
	path, err := endpoint.URI(region)
	if err != nil {
		return nil, nil, err
	}
	return bf.do(endpoint.Name, RequestSpec{Path: path, Method: endpoint.Method, Params: params})
}

func (bf *Bitflyer) requireAuth(endpoint Endpoint) error {
	if endpoint.Private && !bf.config.HasCredentials() {
		return &AuthRequiredError{Endpoint: endpoint.Name}
	}
	return nil
}

func (bf *Bitflyer) do(label string, spec RequestSpec) (JsonValue, []byte, error) {
	method := strings.ToUpper(spec.Method)
	if method == "" {
		method = GET
	}

	// serialized once, the same string is signed and sent.
	body, err := CanonicalBody(method, spec.Params)
	if err != nil {
		return nil, nil, fmt.Errorf("build request body of %s: %w", spec.Path, err)
	}

	url := bf.config.Endpoint + spec.Path
	postData := ""
	if method == POST {
		postData = body
	} else {
		url += body
	}

	var headers map[string]string
	if bf.config.HasCredentials() {
		signed := signBody(
			Timestamp(time.Now()),
			bf.config.ApiSecretKey, bf.config.ApiKey,
			method, spec.Path, body,
		)
		headers = signed.Map()
	} else if method == POST {
		headers = map[string]string{CONTENT_TYPE: APPLICATION_JSON}
	}

	requestId := UUID()
	start := time.Now()
	resp, status, err := NewHttpRequest(bf.httpClient, method, url, postData, headers)
	elapsed := time.Since(start)
	if err != nil {
		bf.logger.Error().
			Err(err).
			Str("request_id", requestId).
			Str("method", method).
			Str("path", spec.Path).
			Dur("elapsed", elapsed).
			Msg("bitflyer request failed")
		bf.metrics.Observe(label, method, elapsed, err)
		return nil, nil, err
	}

	bf.logger.Debug().
		Str("request_id", requestId).
		Str("method", method).
		Str("path", spec.Path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("bitflyer request")

	value, err := DecodeResponse(url, status, resp)
	bf.metrics.Observe(label, method, elapsed, err)
	if err != nil {
		return nil, resp, err
	}
	return value, resp, nil
}

/*
DecodeResponse parses a UTF-8 JSON body. Anything else, an empty body included,
is a *ResponseDecodeError carrying the raw bytes and the status.
*/
func DecodeResponse(url string, status int, body []byte) (JsonValue, error) {
	if !utf8.Valid(body) {
		return nil, &ResponseDecodeError{
			Url: url, StatusCode: status, Body: body,
			Err: errors.New("body is not valid utf-8"),
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var value JsonValue
	if err := decoder.Decode(&value); err != nil {
		return nil, &ResponseDecodeError{Url: url, StatusCode: status, Body: body, Err: err}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &ResponseDecodeError{
			Url: url, StatusCode: status, Body: body,
			Err: errors.New("unexpected data after the json value"),
		}
	}
	return value, nil
}
