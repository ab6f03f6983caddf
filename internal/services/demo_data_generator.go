package services

import (
	"fmt"
	"time"

	"rewards-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	maxDemoRecords = 1000
	maxDemoDays    = 365
)

type demoCategory struct {
	name     string
	minPrice float64
	maxPrice float64
}

// Price bands per purchase category, in dollars
var demoCategories = []demoCategory{
	{"groceries", 15, 250},
	{"dining", 8, 120},
	{"fuel", 20, 90},
	{"electronics", 40, 1200},
	{"apparel", 25, 300},
	{"travel", 120, 900},
	{"entertainment", 10, 80},
	{"home", 30, 600},
}

type demoDataGenerator struct {
	faker     *gofakeit.Faker
	clock     Clock
	customers []string
}

// NewDemoDataGenerator creates a generator of fake feed records. The same seed
// yields the same records for the same clock reading.
func NewDemoDataGenerator(clock Clock, seed uint64) DemoDataGeneratorInterface {
	if clock == nil {
		clock = NewSystemClock(nil)
	}
	faker := gofakeit.New(seed)

	// a small customer pool so searches and per-customer rewards have repeats
	customers := make([]string, 12)
	for i := range customers {
		customers[i] = faker.Name()
	}

	return &demoDataGenerator{
		faker:     faker,
		clock:     clock,
		customers: customers,
	}
}

// Generate returns count records dated within the last days days, counting today.
// count and days are clamped to [1, 1000] and [1, 365].
func (g *demoDataGenerator) Generate(count, days int) []models.TransactionRecord {
	count = clamp(count, 1, maxDemoRecords)
	days = clamp(days, 1, maxDemoDays)

	today := g.clock.Now()
	records := make([]models.TransactionRecord, count)
	for i := range records {
		category := demoCategories[g.faker.IntRange(0, len(demoCategories)-1)]
		price := decimal.NewFromFloat(g.faker.Float64Range(category.minPrice, category.maxPrice)).Round(2)
		date := today.AddDate(0, 0, -g.faker.IntRange(0, days-1))

		records[i] = models.TransactionRecord{
			TransactionID: fmt.Sprintf("TX-%06d", g.faker.IntRange(0, 999999)),
			CustomerName:  g.customers[g.faker.IntRange(0, len(g.customers)-1)],
			Date:          date.Format(time.DateOnly),
			Price:         price,
			Extra: models.JSONBMap{
				"product":  g.faker.ProductName(),
				"category": category.name,
			},
		}
	}
	return records
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
