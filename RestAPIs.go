package gobitflyer

// api interface
type RestAPI interface {
	GetExchangeName() string
	HasCredentials() bool

	// raw request against a path, eg: /v1/ticker
	Request(path, method string, params Params) (JsonValue, []byte, error)

	// request through the endpoint catalog
	Call(name string, params Params) (JsonValue, []byte, error)
	CallRegion(name, region string, params Params) (JsonValue, []byte, error)
}
