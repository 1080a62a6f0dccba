package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCosts() ReportCosts {
	return ReportCosts{
		{Category: CategoryFood, Items: []CostItem{{Sum: decimal.RequireFromString("25.50"), Description: "Lunch", Day: 10}}},
		{Category: CategoryHealth},
		{Category: CategoryHousing, Items: []CostItem{}},
		{Category: CategorySports, Items: []CostItem{{Sum: decimal.NewFromInt(45), Description: "Gym", Day: 15}}},
		{Category: CategoryEducation, Items: []CostItem{}},
	}
}

func TestMonthlyReport_JSONShape(t *testing.T) {
	report := MonthlyReport{UserID: 1, Year: 2024, Month: 1, Costs: sampleCosts()}

	body, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{"userid":1,"year":2024,"month":1,"costs":[
		{"food":[{"sum":25.5,"description":"Lunch","day":10}]},
		{"health":[]},
		{"housing":[]},
		{"sports":[{"sum":45,"description":"Gym","day":15}]},
		{"education":[]}
	]}`, string(body))
}

func TestReportCosts_StorageRoundTripPreservesOrder(t *testing.T) {
	value, err := sampleCosts().Value()
	require.NoError(t, err)

	var scanned ReportCosts
	require.NoError(t, scanned.Scan(value))

	assert.True(t, scanned.MatchesTaxonomy(Taxonomy()))
	assert.Equal(t, "25.5", scanned.Items(CategoryFood)[0].Sum.String())
	assert.NotNil(t, scanned.Items(CategoryHealth))
	assert.Empty(t, scanned.Items(CategoryHealth))
}

func TestReportCosts_ScanRejectsUnknownType(t *testing.T) {
	var rc ReportCosts
	assert.Error(t, rc.Scan(42))
}

func TestCategoryCosts_UnmarshalRequiresSingleKey(t *testing.T) {
	var cc CategoryCosts
	assert.Error(t, json.Unmarshal([]byte(`{"food":[],"health":[]}`), &cc))
}

func TestReportCosts_MatchesTaxonomy(t *testing.T) {
	assert.True(t, sampleCosts().MatchesTaxonomy(Taxonomy()))

	swapped := sampleCosts()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	assert.False(t, swapped.MatchesTaxonomy(Taxonomy()))

	assert.False(t, sampleCosts()[:4].MatchesTaxonomy(Taxonomy()))
}

func TestReport_ConversionsKeepCosts(t *testing.T) {
	mr := &MonthlyReport{UserID: 3, Year: 2023, Month: 12, Costs: sampleCosts()}

	back := NewReport(mr).ToMonthlyReport()

	assert.Equal(t, mr, back)
}
