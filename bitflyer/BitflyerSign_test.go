package bitflyer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/deforceHK/gobitflyer"
)

const (
	TEST_API_KEY       = "test-key"
	TEST_API_SECRETKEY = "test-secret"
)

var fixedNow = time.Unix(1700000000, 123456000)

func expectedSign(secret, text string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(text))
	return hex.EncodeToString(mac.Sum(nil))
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "1700000000.123456", Timestamp(fixedNow))
	assert.Equal(t, "1700000000.0", Timestamp(time.Unix(1700000000, 0)))
	assert.Equal(t, "1700000000.000000001", Timestamp(time.Unix(1700000000, 1)))
}

func TestCanonicalBody(t *testing.T) {
	cases := []struct {
		name   string
		method string
		params Params
		want   string
	}{
		{"get without params", GET, nil, ""},
		{"get with empty params", GET, Params{}, ""},
		{"get with product code", GET, Params{"product_code": "BTC_JPY"}, "?product_code=BTC_JPY"},
		{"get with sorted keys", GET, Params{"product_code": "BTC_JPY", "count": 10}, "?count=10&product_code=BTC_JPY"},
		{"get escapes values", GET, Params{"from_date": "2024-01-01T00:00:00"}, "?from_date=2024-01-01T00%3A00%3A00"},
		{"post without params", POST, nil, "{}"},
		{"post with empty params", POST, Params{}, "{}"},
		{"post with params", POST, Params{"product_code": "BTC_JPY", "size": 0.01}, `{"product_code":"BTC_JPY","size":0.01}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body, err := CanonicalBody(c.method, c.params)
			require.NoError(t, err)
			assert.Equal(t, c.want, body)
		})
	}
}

func TestSignAt_GetWithoutParams(t *testing.T) {
	headers, err := SignAt(fixedNow, TEST_API_SECRETKEY, TEST_API_KEY, GET, "/v1/me/getbalance", nil)
	require.NoError(t, err)

	text := "1700000000.123456" + "GET" + "/v1/me/getbalance"
	assert.Equal(t, TEST_API_KEY, headers.AccessKey)
	assert.Equal(t, "1700000000.123456", headers.Timestamp)
	assert.Equal(t, expectedSign(TEST_API_SECRETKEY, text), headers.Signature)
	assert.Equal(t, APPLICATION_JSON, headers.ContentType)
}

func TestSignAt_GetWithParams(t *testing.T) {
	params := Params{"product_code": "BTC_JPY"}
	headers, err := SignAt(fixedNow, TEST_API_SECRETKEY, TEST_API_KEY, GET, "/v1/me/getchildorders", params)
	require.NoError(t, err)

	text := "1700000000.123456GET/v1/me/getchildorders?product_code=BTC_JPY"
	assert.Equal(t, expectedSign(TEST_API_SECRETKEY, text), headers.Signature)
}

func TestSignAt_Post(t *testing.T) {
	params := NewChildOrderParams(
		"BTC_JPY", SIDE_BUY, CHILD_ORDER_LIMIT,
		dec("3000000"), dec("0.001"),
	)
	headers, err := SignAt(fixedNow, TEST_API_SECRETKEY, TEST_API_KEY, POST, "/v1/me/sendchildorder", params)
	require.NoError(t, err)

	body := `{"child_order_type":"LIMIT","price":3000000,"product_code":"BTC_JPY","side":"BUY","size":0.001}`
	text := "1700000000.123456POST/v1/me/sendchildorder" + body
	assert.Equal(t, expectedSign(TEST_API_SECRETKEY, text), headers.Signature)
}

func TestSignAt_Deterministic(t *testing.T) {
	params := Params{"product_code": "FX_BTC_JPY", "count": 100, "before": 2000}
	for _, method := range []string{GET, POST} {
		first, err := SignAt(fixedNow, TEST_API_SECRETKEY, TEST_API_KEY, method, "/v1/me/getexecutions", params)
		require.NoError(t, err)
		second, err := SignAt(fixedNow, TEST_API_SECRETKEY, TEST_API_KEY, method, "/v1/me/getexecutions", params)
		require.NoError(t, err)
		assert.Equal(t, first, second, method)
	}

	other, err := SignAt(fixedNow.Add(time.Microsecond), TEST_API_SECRETKEY, TEST_API_KEY, GET, "/v1/me/getexecutions", params)
	require.NoError(t, err)
	first, _ := SignAt(fixedNow, TEST_API_SECRETKEY, TEST_API_KEY, GET, "/v1/me/getexecutions", params)
	assert.NotEqual(t, first.Signature, other.Signature)
}

func TestSignAt_EmptySecretStillSigns(t *testing.T) {
	headers, err := SignAt(fixedNow, "", TEST_API_KEY, GET, "/v1/me/getbalance", nil)
	require.NoError(t, err)
	assert.Equal(t, expectedSign("", "1700000000.123456GET/v1/me/getbalance"), headers.Signature)
}

func TestSignAt_UnsupportedParam(t *testing.T) {
	_, err := SignAt(fixedNow, TEST_API_SECRETKEY, TEST_API_KEY, POST, "/v1/me/withdraw", Params{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestSign_UsesCurrentClock(t *testing.T) {
	before := time.Now().Unix()
	headers, err := Sign(TEST_API_SECRETKEY, TEST_API_KEY, GET, "/v1/me/getbalance", nil)
	require.NoError(t, err)

	ts, err := decimal.NewFromString(headers.Timestamp)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts.IntPart(), before)
	assert.Equal(
		t,
		expectedSign(TEST_API_SECRETKEY, headers.Timestamp+"GET/v1/me/getbalance"),
		headers.Signature,
	)
}

func TestNewChildOrderParams_MarketOmitsPrice(t *testing.T) {
	params := NewChildOrderParams(
		"BTC_JPY", SIDE_SELL, CHILD_ORDER_MARKET,
		decimal.Zero, dec("0.01"),
	)
	body, err := params.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"child_order_type":"MARKET","product_code":"BTC_JPY","side":"SELL","size":0.01}`, body)
}
