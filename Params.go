package gobitflyer

import (
	"encoding/json"
	"net/url"
	"sort"

	"github.com/shopspring/decimal"
)

// Params are the caller supplied request parameters, forwarded verbatim.
type Params map[string]interface{}

func (p Params) Set(key string, value interface{}) Params {
	p[key] = value
	return p
}

// SetDecimal stores d as a JSON number with every digit kept, e.g. 0.001 for a size.
func (p Params) SetDecimal(key string, d decimal.Decimal) Params {
	p[key] = json.Number(d.String())
	return p
}

func (p Params) SetPair(pair CurrencyPair) Params {
	p["product_code"] = pair.ProductCode()
	return p
}

func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

/*
Encode renders the params as application/x-www-form-urlencoded, keys sorted.
A []string value becomes repeated keys.

	eg: count=10&product_code=BTC_JPY
*/
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range p {
		switch vv := v.(type) {
		case []string:
			for _, item := range vv {
				values.Add(k, item)
			}
		default:
			values.Set(k, ToString(v))
		}
	}
	return values.Encode()
}

// JSON serializes the params for a request body. Empty or nil params give "{}".
func (p Params) JSON() (string, error) {
	if p == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]interface{}(p))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
