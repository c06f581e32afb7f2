package gobitflyer

import (
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "gobitflyer/1.0"

/*
NewHttpClient builds a client whose connect phase (dial and TLS handshake) is
bounded by connectTimeout and whose wait for the response headers is bounded by
readTimeout. The whole exchange never exceeds connectTimeout + readTimeout.
*/
func NewHttpClient(connectTimeout, readTimeout time.Duration, proxyUrl string) (*http.Client, error) {
	if connectTimeout <= 0 {
		connectTimeout = Seconds(DEFAULT_CONNECT_TIMEOUT)
	}
	if readTimeout <= 0 {
		readTimeout = Seconds(DEFAULT_READ_TIMEOUT)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: readTimeout,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
	}
	if proxyUrl != "" {
		proxy, err := url.Parse(proxyUrl)
		if err != nil {
			return nil, err
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   connectTimeout + readTimeout,
	}, nil
}

/*
NewHttpRequest sends one request and returns the raw body with the status code.
The status code is not judged here: bitflyer reports business errors as JSON
bodies on 4xx/5xx and those belong to the caller. Only a failed exchange
(dns, refused connection, timeout, broken body) is an error.
*/
func NewHttpRequest(
	client *http.Client,
	reqType,
	reqUrl,
	postData string,
	requstHeaders map[string]string,
) ([]byte, int, error) {
	var body io.Reader
	if postData != "" {
		body = strings.NewReader(postData)
	}
	req, err := http.NewRequest(reqType, reqUrl, body)
	if err != nil {
		return nil, 0, &TransportError{Method: reqType, Url: reqUrl, Err: err}
	}
	req.Header.Set(USER_AGENT, userAgent)
	req.Header.Set(ACCEPT, APPLICATION_JSON)
	for k, v := range requstHeaders {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Method: reqType, Url: reqUrl, Err: err}
	}

	defer resp.Body.Close()

	bodyData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &TransportError{Method: reqType, Url: reqUrl, Err: err}
	}

	return bodyData, resp.StatusCode, nil
}
