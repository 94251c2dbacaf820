package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"spacexdash/domain/launch"
	"spacexdash/internal/errors"
)

func TestControls(t *testing.T) {
	svc := newTestDataService()

	controls := svc.Controls()

	assert.Equal(t, "SpaceX Launch Records Dashboard", controls.Title)
	assert.Contains(t, string(controls.About), "<strong>launch site</strong>")
	assert.Equal(t, launch.AllSitesValue, controls.Dropdown.Value)
	assert.True(t, controls.Dropdown.Searchable)
	require.Len(t, controls.Dropdown.Options, 5)
	assert.Equal(t, "All Sites", controls.Dropdown.Options[0].Label)

	slider := controls.Slider
	assert.Equal(t, 0, slider.Min)
	assert.Equal(t, 9600, slider.Max)
	assert.Equal(t, 1000, slider.Step)
	assert.Equal(t, [2]int{0, 9600}, slider.Value)
	assert.Len(t, slider.Marks, 10)
}

func TestParseSite(t *testing.T) {
	svc := newTestDataService()

	all, err := svc.ParseSite("")
	require.NoError(t, err)
	assert.True(t, all.IsAll())

	all, err = svc.ParseSite("ALL")
	require.NoError(t, err)
	assert.True(t, all.IsAll())

	site, err := svc.ParseSite("Vandenberg")
	require.NoError(t, err)
	assert.Equal(t, "Vandenberg", site.Name())

	_, err = svc.ParseSite("Baikonur")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestSuccessPieIgnoresPayloadRange(t *testing.T) {
	svc := newTestDataService()

	fig := svc.SuccessPie(launch.SpecificSite("Cape Canaveral"))

	require.Len(t, fig.Data, 1)
	assert.Equal(t, []string{"0", "1"}, fig.Data[0].Labels)
	assert.Equal(t, []int{2, 1}, fig.Data[0].Values)
	assert.Equal(t, "Success Counts for Cape Canaveral Launch Site", fig.Layout.Title.Text)
}

func TestSuccessPieSiteWithoutLaunches(t *testing.T) {
	fig := newTestDataService().SuccessPie(launch.SpecificSite("Guiana Space Centre"))

	assert.Empty(t, fig.Data[0].Values)
	assert.Len(t, fig.Layout.Annotations, 1)
}

func TestPayloadScatterAppliesRange(t *testing.T) {
	svc := newTestDataService()

	fig := svc.PayloadScatter(launch.AllSites(), launch.PayloadRange{Lower: 500, Upper: 3170})

	var names []string
	total := 0
	for _, tr := range fig.Data {
		names = append(names, tr.Name)
		total += len(tr.X)
	}
	assert.Equal(t, []string{"v1.0", "v1.1", "FT"}, names)
	assert.Equal(t, 4, total)
}

func TestPayloadScatterInvertedRangeIsEmpty(t *testing.T) {
	fig := newTestDataService().PayloadScatter(launch.AllSites(), launch.PayloadRange{Lower: 5000, Upper: 1000})

	assert.Empty(t, fig.Data)
	assert.Len(t, fig.Layout.Annotations, 1)
}

func TestSummary(t *testing.T) {
	svc := newTestDataService()

	profile, err := svc.Summary(launch.SiteOnly(launch.SpecificSite("Vandenberg")))

	require.NoError(t, err)
	assert.Equal(t, "Vandenberg", profile.Selection)
	assert.Equal(t, 2, profile.Payload.Count)
	assert.InDelta(t, 0.5, profile.SuccessRate, 1e-9)
}

func TestExportWritesSelection(t *testing.T) {
	svc := newTestDataService()
	var buf bytes.Buffer

	require.NoError(t, svc.Export(&buf, launch.SiteAndPayload(launch.AllSites(), 0, 600)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestInfo(t *testing.T) {
	info := newTestDataService().Info()

	assert.Equal(t, 6, info.Records)
	assert.Equal(t, []string{"Cape Canaveral", "Vandenberg", "Kennedy Space Center"}, info.Sites)
	assert.Equal(t, "test.csv", info.Source)
}
