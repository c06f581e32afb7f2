package bitflyer

import (
	"github.com/shopspring/decimal"

	. "github.com/deforceHK/gobitflyer"
)

// Every call here needs the api key and secret.
type Trade struct {
	*Bitflyer
}

/*
NewChildOrderParams builds the sendchildorder body. price is left out of a
MARKET order. Price and size are sent as JSON numbers with every digit kept.

	eg: {"child_order_type":"LIMIT","price":30000,"product_code":"BTC_JPY","side":"BUY","size":0.1}
*/
func NewChildOrderParams(
	productCode,
	side,
	childOrderType string,
	price,
	size decimal.Decimal,
) Params {
	params := Params{
		"product_code":     productCode,
		"child_order_type": childOrderType,
		"side":             side,
	}
	if childOrderType != CHILD_ORDER_MARKET {
		params.SetDecimal("price", price)
	}
	return params.SetDecimal("size", size)
}

/*
product_code, child_order_type, side, price, size,
minute_to_expire, time_in_force

	eg: {"child_order_acceptance_id": "JRF20150707-050237-639234"}
*/
func (trade *Trade) SendChildOrder(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_SEND_CHILD_ORDER), REGION_JP, params)
}

// product_code with child_order_id or child_order_acceptance_id
func (trade *Trade) CancelChildOrder(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_CANCEL_CHILD_ORDER), REGION_JP, params)
}

/*
order_method (SIMPLE, IFD, OCO, IFDOCO), minute_to_expire, time_in_force,
parameters: up to three conditions, each with product_code, condition_type,
side, size, price, trigger_price and offset.
*/
func (trade *Trade) SendParentOrder(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_SEND_PARENT_ORDER), REGION_JP, params)
}

// product_code with parent_order_id or parent_order_acceptance_id
func (trade *Trade) CancelParentOrder(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_CANCEL_PARENT_ORDER), REGION_JP, params)
}

// product_code
func (trade *Trade) CancelAllChildOrders(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_CANCEL_ALL_CHILD_ORDERS), REGION_JP, params)
}

/*
product_code, count, before, after, child_order_state,
child_order_id, child_order_acceptance_id, parent_order_id
*/
func (trade *Trade) GetChildOrders(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_GET_CHILD_ORDERS), REGION_JP, params)
}

// product_code, count, before, after, parent_order_state
func (trade *Trade) GetParentOrders(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_GET_PARENT_ORDERS), REGION_JP, params)
}

// parent_order_id or parent_order_acceptance_id
func (trade *Trade) GetParentOrder(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_GET_PARENT_ORDER), REGION_JP, params)
}

// Own executions, unlike Market.GetExecutions.
// product_code, count, before, after, child_order_id, child_order_acceptance_id
func (trade *Trade) GetExecutions(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_GET_MY_EXECUTIONS), REGION_JP, params)
}

// product_code: FX_BTC_JPY only
func (trade *Trade) GetPositions(params Params) (JsonValue, []byte, error) {
	return trade.call(mustEndpoint(EP_GET_POSITIONS), REGION_JP, params)
}
