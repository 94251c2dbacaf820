package profiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacexdash/domain/launch"
)

func TestWilsonInterval(t *testing.T) {
	z := zScore(0.95)
	assert.InDelta(t, 1.959964, z, 1e-5)

	// 8 successes out of 10 at 95%: textbook Wilson interval is [0.4902, 0.9433].
	lo, hi := WilsonInterval(8, 10, z)
	assert.InDelta(t, 0.4902, lo, 1e-3)
	assert.InDelta(t, 0.9433, hi, 1e-3)

	lo, hi = WilsonInterval(0, 0, z)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	lo, hi = WilsonInterval(5, 5, z)
	assert.Less(t, lo, 1.0)
	assert.InDelta(t, 1.0, hi, 1e-12)
}

func TestSuccessRates(t *testing.T) {
	view := launch.FilteredView{
		{Site: "Cape Canaveral", Class: launch.Success},
		{Site: "Vandenberg", Class: launch.Failure},
		{Site: "Cape Canaveral", Class: launch.Failure},
		{Site: "Cape Canaveral", Class: launch.Success},
	}

	rates := SuccessRates(view, 0.95)

	require.Len(t, rates, 2)
	assert.Equal(t, "Cape Canaveral", rates[0].Site)
	assert.Equal(t, 3, rates[0].Launches)
	assert.Equal(t, 2, rates[0].Successes)
	assert.InDelta(t, 2.0/3.0, rates[0].Rate, 1e-9)
	assert.True(t, rates[0].Lower <= rates[0].Rate && rates[0].Rate <= rates[0].Upper)

	assert.Equal(t, "Vandenberg", rates[1].Site)
	assert.Equal(t, 0.0, rates[1].Rate)

	assert.Empty(t, SuccessRates(nil, 0.95))
}

func TestPayloadOutcomeCorrelation(t *testing.T) {
	view := launch.FilteredView{
		{PayloadMassKg: 1000, Class: launch.Failure},
		{PayloadMassKg: 2000, Class: launch.Failure},
		{PayloadMassKg: 3000, Class: launch.Success},
		{PayloadMassKg: 4000, Class: launch.Success},
	}
	r, ok := PayloadOutcomeCorrelation(view)
	require.True(t, ok)
	assert.InDelta(t, 0.8944, r, 1e-3)

	_, ok = PayloadOutcomeCorrelation(view[:1])
	assert.False(t, ok)

	allSuccess := launch.FilteredView{
		{PayloadMassKg: 1000, Class: launch.Success},
		{PayloadMassKg: 2000, Class: launch.Success},
	}
	_, ok = PayloadOutcomeCorrelation(allSuccess)
	assert.False(t, ok, "constant outcome has no correlation")
}

func TestProfileView(t *testing.T) {
	view := launch.FilteredView{
		{Site: "A", PayloadMassKg: 1000, Class: launch.Failure},
		{Site: "A", PayloadMassKg: 2000, Class: launch.Success},
		{Site: "B", PayloadMassKg: 3000, Class: launch.Success},
	}

	profile, err := NewProfiler(0.95).ProfileView("ALL", view)

	require.NoError(t, err)
	assert.Equal(t, "ALL", profile.Selection)
	assert.Equal(t, 3, profile.Payload.Count)
	assert.InDelta(t, 2000, profile.Payload.Mean, 1e-9)
	assert.InDelta(t, 2000, profile.Payload.Median, 1e-9)
	assert.InDelta(t, 2.0/3.0, profile.SuccessRate, 1e-9)
	assert.Len(t, profile.Sites, 2)
	require.NotNil(t, profile.Correlation)
	assert.False(t, math.IsNaN(*profile.Correlation))
}

func TestProfileEmptyView(t *testing.T) {
	profile, err := NewProfiler(0.95).ProfileView("Vandenberg", launch.FilteredView{})

	require.NoError(t, err)
	assert.Equal(t, 0, profile.Payload.Count)
	assert.Equal(t, 0.0, profile.SuccessRate)
	assert.Empty(t, profile.Sites)
	assert.Nil(t, profile.Correlation)
}
