package cashout

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the public Coinbase API.
// Spot price reads require no credentials.

// PriceSource provides the current spot price of an asset in USD.
type PriceSource interface {
	SpotPrice(asset string) (Money, error)
}

const coinbaseAPI = "https://api.coinbase.com/v2"

// CoinbaseAPI fetches spot prices from the public Coinbase price endpoint.
//
// The zero value is ready to use. Spot prices are always fetched with a plain
// client: a quote must be fresh on every run.
type CoinbaseAPI struct {
	BaseURL string // defaults to the public API
}

func (c *CoinbaseAPI) base() string {
	if c.BaseURL == "" {
		return coinbaseAPI
	}
	return c.BaseURL
}

// SpotPrice returns the current price of one coin of asset in USD.
func (c *CoinbaseAPI) SpotPrice(asset string) (Money, error) {
	// https://api.coinbase.com/v2/prices/BTC-USD/spot
	// {"data":{"amount":"117051.45","base":"BTC","currency":"USD"}}
	addr := fmt.Sprintf("%s/prices/%s-USD/spot", c.base(), url.PathEscape(asset))

	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("cannot fetch spot price for %q: %w", asset, err)
	}
	jval, err := jsonpath.Get("$.data.amount", jobj)
	if err != nil {
		return Money{}, fmt.Errorf("unexpected spot price payload for %q: %w", asset, err)
	}
	s, ok := jval.(string)
	if !ok {
		return Money{}, fmt.Errorf("unexpected spot price payload for %q: amount %v is not a string", asset, jval)
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid spot price %q for %q: %w", s, asset, err)
	}
	return M(value, "USD"), nil
}

// CurrencyNames returns the display name of every crypto currency Coinbase
// lists, keyed by ticker. The listing moves slowly, so it is fetched through
// the daily cached client.
func (c *CoinbaseAPI) CurrencyNames() (map[string]string, error) {
	// https://api.coinbase.com/v2/currencies/crypto
	// {"data":[{"code":"BTC","name":"Bitcoin",...},...]}
	addr := c.base() + "/currencies/crypto"

	type info struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	var content struct {
		Data []info `json:"data"`
	}
	if err := jwget(daily(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch currency listing: %w", err)
	}
	names := make(map[string]string, len(content.Data))
	for _, i := range content.Data {
		names[i.Code] = i.Name
	}
	return names, nil
}

// Quotes fetches the spot price of every asset in positions, sequentially.
//
// Any failed lookup aborts the whole run: a report missing an asset would be
// silently wrong, which is worse than no report.
func Quotes(src PriceSource, positions map[string]Position) (map[string]Money, error) {
	quotes := make(map[string]Money, len(positions))
	for _, asset := range slices.Sorted(maps.Keys(positions)) {
		price, err := src.SpotPrice(asset)
		if err != nil {
			return nil, err
		}
		quotes[asset] = price
	}
	return quotes, nil
}
