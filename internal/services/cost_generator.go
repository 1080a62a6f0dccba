package services

import (
	"fmt"
	"time"

	"expense-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type costGenerator struct {
	faker *gofakeit.Faker
}

// NewCostGenerator creates a random cost generator. A zero seed picks a random one.
func NewCostGenerator(seed uint64) CostGeneratorInterface {
	return &costGenerator{faker: gofakeit.New(seed)}
}

// GenerateCost returns an unsaved cost for userID on a random day of month
func (g *costGenerator) GenerateCost(userID int64, month time.Time) models.Cost {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	days := first.AddDate(0, 1, -1).Day()

	occurredAt := first.
		AddDate(0, 0, g.faker.Number(0, days-1)).
		Add(time.Duration(g.faker.Number(8, 21)) * time.Hour).
		Add(time.Duration(g.faker.Number(0, 59)) * time.Minute)

	taxonomy := models.Taxonomy()
	category := taxonomy[g.faker.Number(0, len(taxonomy)-1)]

	return models.Cost{
		Description: g.describe(category),
		Category:    category,
		UserID:      userID,
		Sum:         g.sum(category),
		OccurredAt:  occurredAt,
	}
}

// GenerateCosts returns count costs spread round robin over userIDs
func (g *costGenerator) GenerateCosts(userIDs []int64, count int, month time.Time) []models.Cost {
	if len(userIDs) == 0 || count <= 0 {
		return nil
	}

	costs := make([]models.Cost, 0, count)
	for i := 0; i < count; i++ {
		costs = append(costs, g.GenerateCost(userIDs[i%len(userIDs)], month))
	}
	return costs
}

func (g *costGenerator) describe(category models.Category) string {
	switch category {
	case models.CategoryFood:
		if g.faker.Bool() {
			return g.faker.Lunch()
		}
		return g.faker.Dinner()
	case models.CategoryHealth:
		return fmt.Sprintf("Pharmacy - %s", g.faker.Company())
	case models.CategoryHousing:
		return fmt.Sprintf("Rent %s", g.faker.Street())
	case models.CategorySports:
		return g.faker.Hobby()
	case models.CategoryEducation:
		return g.faker.BookTitle()
	default:
		return g.faker.Sentence(3)
	}
}

func (g *costGenerator) sum(category models.Category) decimal.Decimal {
	var min, max float64
	switch category {
	case models.CategoryHousing:
		min, max = 400, 2500
	case models.CategoryEducation:
		min, max = 20, 600
	default:
		min, max = 3, 150
	}
	return decimal.NewFromFloat(g.faker.Price(min, max)).Round(2)
}
