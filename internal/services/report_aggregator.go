package services

import (
	"time"

	"expense-tracker/internal/models"
)

type reportAggregator struct {
	location *time.Location
}

// NewReportAggregator returns an aggregator that reads days of month in loc
func NewReportAggregator(loc *time.Location) ReportAggregatorInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &reportAggregator{location: loc}
}

// Aggregate groups records by category in taxonomy order. Every category gets an
// entry, empty ones included, and items keep the relative order of records.
// Records whose category is outside the taxonomy are skipped.
func (a *reportAggregator) Aggregate(records []models.Cost, taxonomy []models.Category) models.ReportCosts {
	costs := make(models.ReportCosts, len(taxonomy))
	index := make(map[models.Category]int, len(taxonomy))
	for i, category := range taxonomy {
		costs[i] = models.CategoryCosts{Category: category, Items: []models.CostItem{}}
		index[category] = i
	}

	for _, record := range records {
		i, ok := index[record.Category]
		if !ok {
			continue
		}
		costs[i].Items = append(costs[i].Items, models.CostItem{
			Sum:         record.Sum,
			Description: record.Description,
			Day:         record.OccurredAt.In(a.location).Day(),
		})
	}

	return costs
}
