package bitflyer

import (
	. "github.com/deforceHK/gobitflyer"
)

// Every call here needs the api key and secret.
type Account struct {
	*Bitflyer
}

func (account *Account) GetPermissions() (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_PERMISSIONS), REGION_JP, nil)
}

func (account *Account) GetBalance() (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_BALANCE), REGION_JP, nil)
}

func (account *Account) GetCollateral() (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_COLLATERAL), REGION_JP, nil)
}

func (account *Account) GetCollateralAccounts() (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_COLLATERAL_ACCOUNTS), REGION_JP, nil)
}

func (account *Account) GetAddresses() (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_ADDRESSES), REGION_JP, nil)
}

// count, before, after
func (account *Account) GetCoinIns(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_COIN_INS), REGION_JP, params)
}

// count, before, after
func (account *Account) GetCoinOuts(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_COIN_OUTS), REGION_JP, params)
}

func (account *Account) GetBankAccounts(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_BANK_ACCOUNTS), REGION_JP, params)
}

// count, before, after
func (account *Account) GetDeposits(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_DEPOSITS), REGION_JP, params)
}

/*
currency_code: JPY only
bank_account_id: id of the registered bank account
amount: withdrawal amount
code: two-factor authentication code, when required

	eg: {"message_id": "69476620-5056-4003-bcbe-42658a2b041b"}
*/
func (account *Account) Withdraw(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_WITHDRAW), REGION_JP, params)
}

// count, before, after, message_id
func (account *Account) GetWithdrawals(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_WITHDRAWALS), REGION_JP, params)
}

// currency_code, count, before, after
func (account *Account) GetBalanceHistory(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_BALANCE_HISTORY), REGION_JP, params)
}

func (account *Account) GetCollateralHistory(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_COLLATERAL_HISTORY), REGION_JP, params)
}

// product_code
func (account *Account) GetTradingCommission(params Params) (JsonValue, []byte, error) {
	return account.call(mustEndpoint(EP_GET_TRADING_COMMISSION), REGION_JP, params)
}
