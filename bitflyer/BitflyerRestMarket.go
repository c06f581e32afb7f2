package bitflyer

import (
	. "github.com/deforceHK/gobitflyer"
)

type Market struct {
	*Bitflyer
}

// region: REGION_JP, REGION_USA or REGION_EU
func (market *Market) Markets(region string) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_MARKETS), region, nil)
}

func (market *Market) GetMarkets(region string) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_GET_MARKETS), region, nil)
}

/*
product_code: a product code or alias from the market list,
eg: BTC_JPY, XRP_JPY, ETH_JPY
*/
func (market *Market) Board(params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_BOARD), REGION_JP, params)
}

func (market *Market) GetBoard(params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_GET_BOARD), REGION_JP, params)
}

func (market *Market) Ticker(params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_TICKER), REGION_JP, params)
}

func (market *Market) GetTicker(params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_GET_TICKER), REGION_JP, params)
}

/*
product_code, count, before, after
*/
func (market *Market) Executions(params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_EXECUTIONS), REGION_JP, params)
}

func (market *Market) GetExecutions(params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_GET_EXECUTIONS), REGION_JP, params)
}

func (market *Market) GetBoardState(params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_GET_BOARD_STATE), REGION_JP, params)
}

func (market *Market) GetHealth(params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_GET_HEALTH), REGION_JP, params)
}

func (market *Market) GetCorporateLeverage() (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_GET_CORPORATE_LEVERAGE), REGION_JP, nil)
}

// from_date: chats after this date (yyyy-mm-ddTHH:MM:SS), defaults to the last 5 days.
func (market *Market) GetChats(region string, params Params) (JsonValue, []byte, error) {
	return market.call(mustEndpoint(EP_GET_CHATS), region, params)
}
