package gobitflyer

const (
	GO_BIRTHDAY = "2006-01-02 15:04:05"
)

/*
  http methods
*/
const (
	GET  = "GET"
	POST = "POST"
)

/*
  http headers
*/
const (
	ACCESS_KEY       = "ACCESS-KEY"
	ACCESS_TIMESTAMP = "ACCESS-TIMESTAMP"
	ACCESS_SIGN      = "ACCESS-SIGN"

	CONTENT_TYPE = "Content-Type"
	ACCEPT       = "Accept"
	USER_AGENT   = "User-Agent"

	APPLICATION_JSON = "application/json"
)

// default timeouts, in seconds, used when the config leaves them empty.
const (
	DEFAULT_CONNECT_TIMEOUT = 10.0
	DEFAULT_READ_TIMEOUT    = 30.0
)

// exchanges const
const (
	BITFLYER = "bitflyer"
)

// bitflyer order sides and types
const (
	SIDE_BUY  = "BUY"
	SIDE_SELL = "SELL"

	CHILD_ORDER_LIMIT  = "LIMIT"
	CHILD_ORDER_MARKET = "MARKET"

	TIME_IN_FORCE_GTC = "GTC"
	TIME_IN_FORCE_IOC = "IOC"
	TIME_IN_FORCE_FOK = "FOK"
)

// regions accepted by markets, getmarkets and getchats. The empty region is Japan.
const (
	REGION_JP  = ""
	REGION_USA = "usa"
	REGION_EU  = "eu"
)
