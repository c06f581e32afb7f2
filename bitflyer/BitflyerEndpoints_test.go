package bitflyer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/deforceHK/gobitflyer"
)

func TestEndpoints_OneEntryPerPath(t *testing.T) {
	paths := map[string]string{}
	for _, ep := range Endpoints() {
		other, exist := paths[ep.Path]
		assert.False(t, exist, "%s and %s share %s", ep.Name, other, ep.Path)
		paths[ep.Path] = ep.Name
	}
	assert.Len(t, paths, len(endpoints))
}

func TestEndpoints_Prefixes(t *testing.T) {
	for _, ep := range Endpoints() {
		if ep.Private {
			assert.True(t, strings.HasPrefix(ep.Path, PRIVATE_PREFIX), ep.Name)
			assert.False(t, ep.Regional, ep.Name)
		} else {
			assert.True(t, strings.HasPrefix(ep.Path, PUBLIC_PREFIX), ep.Name)
			assert.False(t, strings.HasPrefix(ep.Path, PRIVATE_PREFIX), ep.Name)
			assert.Equal(t, GET, ep.Method, ep.Name)
		}
		assert.Equal(t, ep.Path, "/v1/"+ep.Name)
	}
}

func TestEndpoints_MutatingCallsArePost(t *testing.T) {
	posts := []string{}
	for _, ep := range Endpoints() {
		if ep.Method == POST {
			posts = append(posts, ep.Name)
		}
	}
	assert.ElementsMatch(t, []string{
		EP_WITHDRAW,
		EP_SEND_CHILD_ORDER,
		EP_CANCEL_CHILD_ORDER,
		EP_SEND_PARENT_ORDER,
		EP_CANCEL_PARENT_ORDER,
		EP_CANCEL_ALL_CHILD_ORDERS,
	}, posts)
}

func TestEndpoints_ExecutionsAreDistinct(t *testing.T) {
	public, exist := LookupEndpoint(EP_GET_EXECUTIONS)
	require.True(t, exist)
	private, exist := LookupEndpoint(EP_GET_MY_EXECUTIONS)
	require.True(t, exist)

	assert.Equal(t, "/v1/getexecutions", public.Path)
	assert.False(t, public.Private)
	assert.Equal(t, "/v1/me/getexecutions", private.Path)
	assert.True(t, private.Private)
}

func TestEndpoint_URI(t *testing.T) {
	markets, _ := LookupEndpoint(EP_MARKETS)
	uri, err := markets.URI(REGION_JP)
	require.NoError(t, err)
	assert.Equal(t, "/v1/markets", uri)

	uri, err = markets.URI(REGION_EU)
	require.NoError(t, err)
	assert.Equal(t, "/v1/markets/eu", uri)

	_, err = markets.URI("jp")
	assert.True(t, errors.Is(err, ErrIllegalEndpoint))

	balance, _ := LookupEndpoint(EP_GET_BALANCE)
	_, err = balance.URI(REGION_USA)
	assert.True(t, errors.Is(err, ErrIllegalEndpoint))
}

func TestIndexEndpoints_PanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		indexEndpoints([]Endpoint{public(EP_TICKER, false), public(EP_TICKER, false)})
	})
	assert.Panics(t, func() { mustEndpoint("nothing") })
}
