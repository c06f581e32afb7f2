package bitflyer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	. "github.com/deforceHK/gobitflyer"
)

/*
Sign builds the auth headers of one request:

	ACCESS-KEY: the api key
	ACCESS-TIMESTAMP: unix time of the request
	ACCESS-SIGN: hex HMAC-SHA256, keyed by the secret, of
	             ACCESS-TIMESTAMP + method + path + body

path must be byte for byte the path put on the wire. The headers are single
use, sign again for every request.
*/
func Sign(secret, key, method, path string, params Params) (*SignedHeaders, error) {
	return SignAt(time.Now(), secret, key, method, path, params)
}

func SignAt(now time.Time, secret, key, method, path string, params Params) (*SignedHeaders, error) {
	body, err := CanonicalBody(method, params)
	if err != nil {
		return nil, err
	}
	return signBody(Timestamp(now), secret, key, method, path, body), nil
}

/*
CanonicalBody is the body part of the signing input, and also exactly what is
sent: the JSON body for POST, the query string (with its leading "?") otherwise.

	POST {}                       => {}
	GET  {}                       => ""
	GET  {"product_code":"BTC_JPY"} => ?product_code=BTC_JPY
*/
func CanonicalBody(method string, params Params) (string, error) {
	if strings.ToUpper(method) == POST {
		return params.JSON()
	}
	if len(params) == 0 {
		return "", nil
	}
	return "?" + params.Encode(), nil
}

// Timestamp renders unix seconds keeping the clock's fractional part as is,
// eg: 1700000000.123456 or 1700000000.0 on a whole second.
func Timestamp(now time.Time) string {
	frac := strings.TrimRight(fmt.Sprintf("%09d", now.Nanosecond()), "0")
	if frac == "" {
		frac = "0"
	}
	return strconv.FormatInt(now.Unix(), 10) + "." + frac
}

func SigningInput(timestamp, method, path, body string) string {
	return timestamp + method + path + body
}

func signBody(timestamp, secret, key, method, path, body string) *SignedHeaders {
	sign, _ := GetParamHmacSHA256HexSign(secret, SigningInput(timestamp, method, path, body))
	return &SignedHeaders{
		AccessKey:   key,
		Timestamp:   timestamp,
		Signature:   sign,
		ContentType: APPLICATION_JSON,
	}
}
