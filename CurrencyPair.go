package gobitflyer

import (
	"strings"
)

type Currency struct {
	Symbol string `json:"symbol"`
	Desc   string `json:"-"`
}

func (c Currency) String() string {
	return c.Symbol
}

func (c Currency) Eq(c2 Currency) bool {
	return c.Symbol == c2.Symbol
}

type CurrencyPair struct {
	//The target currency, you want to buy or long
	CurrencyBasis Currency
	//The counter currency, you use it to buy or to mortgage
	CurrencyCounter Currency
}

var (
	UNKNOWN = Currency{"UNKNOWN", ""}

	JPY = Currency{"JPY", ""}
	USD = Currency{"USD", ""}
	EUR = Currency{"EUR", ""}

	BTC  = Currency{"BTC", "https://bitcoin.org/"}
	ETH  = Currency{"ETH", ""}
	ETC  = Currency{"ETC", ""}
	LTC  = Currency{"LTC", ""}
	BCH  = Currency{"BCH", ""}
	MONA = Currency{"MONA", ""}
	LSK  = Currency{"LSK", ""}
	XRP  = Currency{"XRP", ""}
	BAT  = Currency{"BAT", ""}
	XLM  = Currency{"XLM", ""}
	XEM  = Currency{"XEM", ""}

	BTC_JPY = CurrencyPair{BTC, JPY}
	BTC_USD = CurrencyPair{BTC, USD}
	BTC_EUR = CurrencyPair{BTC, EUR}
	ETH_JPY = CurrencyPair{ETH, JPY}
	ETH_BTC = CurrencyPair{ETH, BTC}
	BCH_BTC = CurrencyPair{BCH, BTC}
	XRP_JPY = CurrencyPair{XRP, JPY}

	UNKNOWN_PAIR = CurrencyPair{UNKNOWN, UNKNOWN}
)

const FX_PREFIX = "FX_"

var currencyRelation = map[string]Currency{
	"JPY":  JPY,
	"USD":  USD,
	"EUR":  EUR,
	"BTC":  BTC,
	"ETH":  ETH,
	"ETC":  ETC,
	"LTC":  LTC,
	"BCH":  BCH,
	"MONA": MONA,
	"LSK":  LSK,
	"XRP":  XRP,
	"BAT":  BAT,
	"XLM":  XLM,
	"XEM":  XEM,
}

func NewCurrency(symbol, desc string) Currency {
	currency, exist := currencyRelation[strings.ToUpper(symbol)]
	if exist {
		return currency
	}
	return Currency{strings.ToUpper(symbol), desc}
}

// NewCurrencyPair parses btc_jpy, BTC_JPY or the FX_BTC_JPY product code.
func NewCurrencyPair(currencyPairSymbol string) CurrencyPair {
	symbol := strings.TrimPrefix(strings.ToUpper(currencyPairSymbol), FX_PREFIX)
	currencys := strings.Split(symbol, "_")
	if len(currencys) == 2 && currencys[0] != "" && currencys[1] != "" {
		return CurrencyPair{NewCurrency(currencys[0], ""), NewCurrency(currencys[1], "")}
	}
	return UNKNOWN_PAIR
}

func (pair CurrencyPair) String() string {
	return pair.ToSymbol("_")
}

func (pair CurrencyPair) Eq(c2 CurrencyPair) bool {
	return pair.String() == c2.String()
}

func (pair CurrencyPair) ToSymbol(joinChar string) string {
	return strings.Join([]string{pair.CurrencyBasis.Symbol, pair.CurrencyCounter.Symbol}, joinChar)
}

// ProductCode is the spot product code, eg: BTC_JPY.
func (pair CurrencyPair) ProductCode() string {
	return strings.ToUpper(pair.ToSymbol("_"))
}

// FxProductCode is the lightning fx product code, eg: FX_BTC_JPY.
func (pair CurrencyPair) FxProductCode() string {
	return FX_PREFIX + pair.ProductCode()
}
