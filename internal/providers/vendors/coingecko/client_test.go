package coingecko_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipto/swipto-api/internal/mocks"
	"github.com/swipto/swipto-api/internal/providers/vendors/coingecko"
)

func TestCoinGeckoClient_ListMarkets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := coingecko.NewClient(mockHTTPClient, "https://api.coingecko.com/api/v3/", "demo-key")

	responseJSON := `[
		{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":64000.5,"market_cap":1260000000000,"market_cap_rank":1,"total_volume":31000000000},
		{"id":"obscure","symbol":"obs","name":"Obscure","current_price":null,"market_cap":null,"market_cap_rank":null,"total_volume":null}
	]`

	expectedURL := "https://api.coingecko.com/api/v3/coins/markets?category=layer-1&order=market_cap_desc&page=1&per_page=50&vs_currency=usd"
	mockHTTPClient.EXPECT().
		Get(gomock.Any(), expectedURL, map[string]string{"x-cg-demo-api-key": "demo-key"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return json.Unmarshal([]byte(responseJSON), result)
		})

	markets, err := client.ListMarkets(context.Background(), coingecko.MarketQuery{Category: "layer-1", PerPage: 50})
	require.NoError(t, err)
	require.Len(t, markets, 2)

	assert.Equal(t, "bitcoin", markets[0].ID)
	require.NotNil(t, markets[0].CurrentPrice)
	assert.InDelta(t, 64000.5, *markets[0].CurrentPrice, 0.0001)
	require.NotNil(t, markets[0].MarketCapRank)
	assert.Equal(t, 1, *markets[0].MarketCapRank)
	assert.Nil(t, markets[1].CurrentPrice)
	assert.Nil(t, markets[1].TotalVolume)
}

func TestCoinGeckoClient_ListMarketsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := coingecko.NewClient(mockHTTPClient, "https://api.coingecko.com/api/v3", "")

	mockHTTPClient.EXPECT().
		Get(gomock.Any(), "https://api.coingecko.com/api/v3/coins/markets?order=market_cap_desc&page=1&per_page=250&vs_currency=usd", map[string]string{}, gomock.Any()).
		Return(errors.New("unexpected status code 500"))

	_, err := client.ListMarkets(context.Background(), coingecko.MarketQuery{PerPage: 1000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call CoinGecko markets API")
}
