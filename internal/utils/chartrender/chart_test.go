package chartrender

import (
	"testing"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, png []byte) {
	t.Helper()
	require.NotEmpty(t, png)
	assert.Equal(t, byte(0x89), png[0])
	assert.Equal(t, []byte("PNG"), png[1:4])
}

func TestRenderBalanceChart_MultiplePoints(t *testing.T) {
	points := []domain.ChartPoint{
		{Date: "20/12", Balance: decimal.NewFromInt(900)},
		{Date: "05/01", Balance: decimal.NewFromInt(1100)},
		{Date: "10/01", Balance: decimal.NewFromInt(1050)},
	}

	png, err := RenderBalanceChart(points)

	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRenderBalanceChart_SingleAnchorPoint(t *testing.T) {
	// A freshly set up account has only the creation-date anchor.
	points := []domain.ChartPoint{
		{Date: "20/12", Balance: decimal.NewFromInt(850)},
	}

	png, err := RenderBalanceChart(points)

	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRenderBalanceChart_FlatBalance(t *testing.T) {
	// Equal gains and losses leave the balance constant across points.
	points := []domain.ChartPoint{
		{Date: "20/12", Balance: decimal.NewFromInt(500)},
		{Date: "05/01", Balance: decimal.NewFromInt(500)},
		{Date: "10/01", Balance: decimal.NewFromInt(500)},
	}

	png, err := RenderBalanceChart(points)

	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRenderBalanceChart_NoPoints(t *testing.T) {
	png, err := RenderBalanceChart(nil)

	require.Error(t, err)
	assert.Nil(t, png)
}
