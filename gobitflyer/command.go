package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	. "github.com/deforceHK/gobitflyer"
	"github.com/deforceHK/gobitflyer/bitflyer"
)

// Config is read from BITFLYER_* environment variables.
type Config struct {
	Key            string  `envconfig:"KEY"`
	Secret         string  `envconfig:"SECRET"`
	ConnectTimeout float64 `envconfig:"CONNECT_TIMEOUT" default:"10"`
	ReadTimeout    float64 `envconfig:"READ_TIMEOUT" default:"30"`
	Endpoint       string  `envconfig:"ENDPOINT" default:"https://api.bitflyer.com"`
	Proxy          string  `envconfig:"PROXY"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process("BITFLYER", config); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return config, nil
}

func initClient(config *Config) (*bitflyer.Bitflyer, error) {
	return bitflyer.New(&APIConfig{
		Endpoint:       config.Endpoint,
		ApiKey:         config.Key,
		ApiSecretKey:   config.Secret,
		ConnectTimeout: Seconds(config.ConnectTimeout),
		ReadTimeout:    Seconds(config.ReadTimeout),
		ProxyUrl:       config.Proxy,
	})
}

type Command struct {
	config *Config
	client RestAPI
	out    io.Writer
}

func (c *Command) Endpoints() error {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMETHOD\tPATH\tAUTH\tREGIONAL")
	for _, ep := range bitflyer.Endpoints() {
		auth := "public"
		if ep.Private {
			auth = "private"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", ep.Name, ep.Method, ep.Path, auth, ep.Regional)
	}
	return w.Flush()
}

func (c *Command) Call(name, region string, args []string) error {
	params, err := parseParams(args)
	if err != nil {
		return err
	}
	value, _, err := c.client.CallRegion(name, region, params)
	if err != nil {
		return err
	}
	return c.print(value)
}

func (c *Command) Sign(method, path string, args []string) error {
	params, err := parseParams(args)
	if err != nil {
		return err
	}
	headers, err := bitflyer.Sign(c.config.Secret, c.config.Key, strings.ToUpper(method), path, params)
	if err != nil {
		return err
	}
	return c.print(headers.Map())
}

func (c *Command) print(v interface{}) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

/*
parseParams turns key=value args into params. Numbers keep every digit and go
out as JSON numbers, everything else stays a string.

	eg: product_code=BTC_JPY size=0.001 => {"product_code":"BTC_JPY","size":0.001}
*/
func parseParams(args []string) (Params, error) {
	params := Params{}
	for _, arg := range args {
		kv := strings.SplitN(arg, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("param %q is not key=value", arg)
		}
		if d, err := decimal.NewFromString(kv[1]); err == nil && isPlainNumber(kv[1]) {
			params.SetDecimal(kv[0], d)
		} else {
			params.Set(kv[0], kv[1])
		}
	}
	return params, nil
}

// isPlainNumber rejects forms decimal accepts but JSON does not, eg: 1e5, .5, +1.
func isPlainNumber(s string) bool {
	if s == "" {
		return false
	}
	var number json.Number
	if err := json.Unmarshal([]byte(s), &number); err != nil {
		return false
	}
	return !strings.ContainsAny(s, "eE")
}

func newEndpointsCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the bitflyer rest endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Endpoints()
		},
	}
}

func newCallCmd(c *Command) *cobra.Command {
	var region string
	cmd := &cobra.Command{
		Use:   "call <endpoint> [key=value ...]",
		Short: "Call one endpoint and print the json response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Call(args[0], region, args[1:])
		},
	}
	cmd.Flags().StringVar(&region, "region", REGION_JP, "region suffix for markets, getmarkets and getchats: usa or eu")
	return cmd
}

func newSignCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <method> <path> [key=value ...]",
		Short: "Print the auth headers for a request",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Sign(args[0], args[1], args[2:])
		},
	}
}
