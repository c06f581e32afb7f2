package bitflyer

import (
	"fmt"
	"sort"
	"strings"

	. "github.com/deforceHK/gobitflyer"
)

// Endpoint is one row of the rest catalog. Name is the path under /v1/ and is unique.
type Endpoint struct {
	Name     string
	Path     string
	Method   string
	Private  bool
	Regional bool
}

// URI appends the region suffix when the endpoint takes one, eg: /v1/getmarkets/usa.
func (ep Endpoint) URI(region string) (string, error) {
	if region == REGION_JP {
		return ep.Path, nil
	}
	if !ep.Regional {
		return "", fmt.Errorf("%w: %s takes no region", ErrIllegalEndpoint, ep.Name)
	}
	if region != REGION_USA && region != REGION_EU {
		return "", fmt.Errorf("%w: unknown region %q", ErrIllegalEndpoint, region)
	}
	return ep.Path + "/" + region, nil
}

const (
	/* public, GET */
	EP_MARKETS                = "markets"
	EP_GET_MARKETS            = "getmarkets"
	EP_BOARD                  = "board"
	EP_GET_BOARD              = "getboard"
	EP_TICKER                 = "ticker"
	EP_GET_TICKER             = "getticker"
	EP_EXECUTIONS             = "executions"
	EP_GET_EXECUTIONS         = "getexecutions"
	EP_GET_BOARD_STATE        = "getboardstate"
	EP_GET_HEALTH             = "gethealth"
	EP_GET_CORPORATE_LEVERAGE = "getcorporateleverage"
	EP_GET_CHATS              = "getchats"

	/* private, account */
	EP_GET_PERMISSIONS         = "me/getpermissions"
	EP_GET_BALANCE             = "me/getbalance"
	EP_GET_COLLATERAL          = "me/getcollateral"
	EP_GET_COLLATERAL_ACCOUNTS = "me/getcollateralaccounts"
	EP_GET_ADDRESSES           = "me/getaddresses"
	EP_GET_COIN_INS            = "me/getcoinins"
	EP_GET_COIN_OUTS           = "me/getcoinouts"
	EP_GET_BANK_ACCOUNTS       = "me/getbankaccounts"
	EP_GET_DEPOSITS            = "me/getdeposits"
	EP_WITHDRAW                = "me/withdraw"
	EP_GET_WITHDRAWALS         = "me/getwithdrawals"
	EP_GET_BALANCE_HISTORY     = "me/getbalancehistory"
	EP_GET_COLLATERAL_HISTORY  = "me/getcollateralhistory"
	EP_GET_TRADING_COMMISSION  = "me/gettradingcommission"

	/* private, trade */
	EP_SEND_CHILD_ORDER        = "me/sendchildorder"
	EP_CANCEL_CHILD_ORDER      = "me/cancelchildorder"
	EP_SEND_PARENT_ORDER       = "me/sendparentorder"
	EP_CANCEL_PARENT_ORDER     = "me/cancelparentorder"
	EP_CANCEL_ALL_CHILD_ORDERS = "me/cancelallchildorders"
	EP_GET_CHILD_ORDERS        = "me/getchildorders"
	EP_GET_PARENT_ORDERS       = "me/getparentorders"
	EP_GET_PARENT_ORDER        = "me/getparentorder"
	EP_GET_MY_EXECUTIONS       = "me/getexecutions"
	EP_GET_POSITIONS           = "me/getpositions"
)

var endpoints = []Endpoint{
	public(EP_MARKETS, true),
	public(EP_GET_MARKETS, true),
	public(EP_BOARD, false),
	public(EP_GET_BOARD, false),
	public(EP_TICKER, false),
	public(EP_GET_TICKER, false),
	public(EP_EXECUTIONS, false),
	public(EP_GET_EXECUTIONS, false),
	public(EP_GET_BOARD_STATE, false),
	public(EP_GET_HEALTH, false),
	public(EP_GET_CORPORATE_LEVERAGE, false),
	public(EP_GET_CHATS, true),

	private(EP_GET_PERMISSIONS, GET),
	private(EP_GET_BALANCE, GET),
	private(EP_GET_COLLATERAL, GET),
	private(EP_GET_COLLATERAL_ACCOUNTS, GET),
	private(EP_GET_ADDRESSES, GET),
	private(EP_GET_COIN_INS, GET),
	private(EP_GET_COIN_OUTS, GET),
	private(EP_GET_BANK_ACCOUNTS, GET),
	private(EP_GET_DEPOSITS, GET),
	private(EP_WITHDRAW, POST),
	private(EP_GET_WITHDRAWALS, GET),
	private(EP_GET_BALANCE_HISTORY, GET),
	private(EP_GET_COLLATERAL_HISTORY, GET),
	private(EP_GET_TRADING_COMMISSION, GET),

	private(EP_SEND_CHILD_ORDER, POST),
	private(EP_CANCEL_CHILD_ORDER, POST),
	private(EP_SEND_PARENT_ORDER, POST),
	private(EP_CANCEL_PARENT_ORDER, POST),
	private(EP_CANCEL_ALL_CHILD_ORDERS, POST),
	private(EP_GET_CHILD_ORDERS, GET),
	private(EP_GET_PARENT_ORDERS, GET),
	private(EP_GET_PARENT_ORDER, GET),
	private(EP_GET_MY_EXECUTIONS, GET),
	private(EP_GET_POSITIONS, GET),
}

var endpointIndex = indexEndpoints(endpoints)

func public(name string, regional bool) Endpoint {
	return Endpoint{
		Name:     name,
		Path:     PUBLIC_PREFIX + name,
		Method:   GET,
		Regional: regional,
	}
}

func private(name, method string) Endpoint {
	return Endpoint{
		Name:    name,
		Path:    PRIVATE_PREFIX + strings.TrimPrefix(name, "me/"),
		Method:  method,
		Private: true,
	}
}

func indexEndpoints(eps []Endpoint) map[string]Endpoint {
	index := make(map[string]Endpoint, len(eps))
	for _, ep := range eps {
		if _, exist := index[ep.Name]; exist {
			panic("duplicate bitflyer endpoint: " + ep.Name)
		}
		index[ep.Name] = ep
	}
	return index
}

func LookupEndpoint(name string) (Endpoint, bool) {
	ep, exist := endpointIndex[name]
	return ep, exist
}

// Endpoints returns the catalog sorted by name.
func Endpoints() []Endpoint {
	eps := make([]Endpoint, len(endpoints))
	copy(eps, endpoints)
	sort.Slice(eps, func(i, j int) bool { return eps[i].Name < eps[j].Name })
	return eps
}

func mustEndpoint(name string) Endpoint {
	ep, exist := endpointIndex[name]
	if !exist {
		panic("unknown bitflyer endpoint: " + name)
	}
	return ep
}
