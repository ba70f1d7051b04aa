package handlers_test

import (
	"net/http"
	"testing"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationHandler_CoreItemsRoundTrip(t *testing.T) {
	ts := testutil.NewTestServer(t)

	champion := testutil.NewChampionBuilder().WithName("Jinx").Build(t, ts.DB.DB)
	first := testutil.NewItemBuilder().WithName("Kraken Slayer").Build(t, ts.DB.DB)
	second := testutil.NewItemBuilder().WithName("Runaan's Hurricane").Build(t, ts.DB.DB)

	resp := postJSON(t, ts.URL("/save-core-items"), map[string]interface{}{
		"champion_id": champion.ID,
		"item1":       first.ID,
		"item2":       second.ID,
		"pickRate":    23.4,
		"games":       15000,
		"winRate":     54.2,
	})
	resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	listResp, err := http.Get(ts.URL("/core-items"))
	require.NoError(t, err)
	defer listResp.Body.Close()

	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var body struct {
		Data []domain.ItemSetRow `json:"data"`
	}
	testutil.AssertJSONResponse(t, listResp, &body)
	require.Len(t, body.Data, 1)

	row := body.Data[0]
	assert.Equal(t, "Jinx", row.ChampionName)
	assert.Equal(t, "Kraken Slayer", *row.Item1Name)
	assert.Equal(t, "Runaan's Hurricane", *row.Item2Name)
	assert.Nil(t, row.Item3Name)
	assert.Equal(t, 54.2, *row.WinRate)
}

func TestRecommendationHandler_StarterItemsRoundTrip(t *testing.T) {
	ts := testutil.NewTestServer(t)

	champion := testutil.NewChampionBuilder().WithName("Malphite").Build(t, ts.DB.DB)
	shield := testutil.NewItemBuilder().WithName("Doran's Shield").Build(t, ts.DB.DB)

	resp := postJSON(t, ts.URL("/save-starter-items"), map[string]interface{}{
		"champion_id": champion.ID,
		"item1":       shield.ID,
		"pickRate":    61.0,
	})
	defer resp.Body.Close()
	testutil.AssertMessageResponse(t, resp, http.StatusCreated, "StarterItems guardados correctamente")

	listResp, err := http.Get(ts.URL("/starter-items"))
	require.NoError(t, err)
	defer listResp.Body.Close()

	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var body struct {
		Data []domain.ItemSetRow `json:"data"`
	}
	testutil.AssertJSONResponse(t, listResp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Malphite", body.Data[0].ChampionName)
	require.NotNil(t, body.Data[0].Item1Name)
	assert.Equal(t, "Doran's Shield", *body.Data[0].Item1Name)
	assert.Nil(t, body.Data[0].Item2Name)
}

func TestRecommendationHandler_BootsRoundTrip(t *testing.T) {
	ts := testutil.NewTestServer(t)

	champion := testutil.NewChampionBuilder().WithName("Lux").Build(t, ts.DB.DB)
	boots := testutil.NewItemBuilder().WithName("Sorcerer's Shoes").Build(t, ts.DB.DB)

	resp := postJSON(t, ts.URL("/save-botas"), map[string]interface{}{
		"champion_id": champion.ID,
		"item":        boots.ID,
		"pickRate":    88.9,
		"games":       9000,
		"winRate":     52.8,
	})
	defer resp.Body.Close()
	testutil.AssertMessageResponse(t, resp, http.StatusCreated, "Objeto guardado correctamente en boots")

	listResp, err := http.Get(ts.URL("/botas"))
	require.NoError(t, err)
	defer listResp.Body.Close()

	var body struct {
		Data []domain.SingleItemRow `json:"data"`
	}
	testutil.AssertJSONResponse(t, listResp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Lux", body.Data[0].ChampionName)
	assert.Equal(t, "Sorcerer's Shoes", body.Data[0].ItemName)
}

func TestRecommendationHandler_ObjetosRequireExistingItem(t *testing.T) {
	ts := testutil.NewTestServer(t)

	champion := testutil.NewChampionBuilder().Build(t, ts.DB.DB)
	item := testutil.NewItemBuilder().Build(t, ts.DB.DB)

	resp := postJSON(t, ts.URL("/save-objetos"), map[string]interface{}{
		"champion_id": champion.ID,
		"item":        item.ID,
		"pickRate":    44.1,
	})
	resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	// A rec pointing at a deleted or unknown item is stored but drops
	// out of the joined listing
	resp = postJSON(t, ts.URL("/save-objetos"), map[string]interface{}{
		"champion_id": champion.ID,
		"item":        999999,
	})
	resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	listResp, err := http.Get(ts.URL("/objetos"))
	require.NoError(t, err)
	defer listResp.Body.Close()

	var body struct {
		Data []domain.SingleItemRow `json:"data"`
	}
	testutil.AssertJSONResponse(t, listResp, &body)
	require.Len(t, body.Data, 1, "inner join hides rows without a matching item")
	assert.Equal(t, item.Name, body.Data[0].ItemName)
}
