package gobitflyer

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// JsonValue is a decoded response body: an object, an array or a scalar.
// Numbers are kept as json.Number so nothing is rounded on the way through.
type JsonValue = interface{}

/*
	models about API config
*/
type APIConfig struct {
	HttpClient   *http.Client
	Endpoint     string
	ApiKey       string
	ApiSecretKey string

	// Only used when HttpClient is nil.
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	ProxyUrl       string

	Logger     *zerolog.Logger
	Registerer prometheus.Registerer
}

// HasCredentials reports whether both the key and the secret are set.
func (config *APIConfig) HasCredentials() bool {
	return config.ApiKey != "" && config.ApiSecretKey != ""
}

// Seconds converts a float number of seconds into a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

/*
	models about signing
*/
type SignedHeaders struct {
	AccessKey   string
	Timestamp   string
	Signature   string
	ContentType string
}

func (h *SignedHeaders) Map() map[string]string {
	return map[string]string{
		ACCESS_KEY:       h.AccessKey,
		ACCESS_TIMESTAMP: h.Timestamp,
		ACCESS_SIGN:      h.Signature,
		CONTENT_TYPE:     h.ContentType,
	}
}
