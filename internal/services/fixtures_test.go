package services

import (
	"time"

	"github.com/joshua-takyi/eventbook/internal/models"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func fixtureVenues() []models.Venue {
	return []models.Venue{
		{ID: "v-small", Name: "Rooftop", Capacity: 100, BasePrice: 20000},
		{ID: "v-medium", Name: "Courtyard", Capacity: 250, BasePrice: 80000},
		{ID: "v-large", Name: "Convention Hall", Capacity: 2000, BasePrice: 350000},
	}
}

func fixtureServices() []models.Service {
	return []models.Service{
		{ID: "s-snacks", Name: "Snacks", BasePrice: 200, Unit: models.UnitPerPerson, Category: models.CategoryFood},
		{ID: "s-photo", Name: "Photography", BasePrice: 35000, Unit: models.UnitPerEvent, Category: models.CategoryPhotography},
		{ID: "s-dj", Name: "DJ", BasePrice: 25000, Unit: models.UnitPerEvent, Category: models.CategoryEntertainment},
	}
}

func fixtureCatalog() *models.StaticCatalog {
	return models.NewStaticCatalog(fixtureVenues(), fixtureServices())
}

func validPersonal() models.PersonalDetails {
	return models.PersonalDetails{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "+919876543210",
		Address:  "221B Baker Street, Mumbai",
	}
}

func validEvent() models.EventDetails {
	return models.EventDetails{
		EventType:     models.EventBirthday,
		PreferredDate: fixedNow.AddDate(0, 0, 1).Format("2006-01-02"),
		Attendees:     50,
		BudgetRange:   models.Budget50kTo1L,
	}
}

// sequence returns an intn stub that replays values, repeating the last one.
func sequence(values ...int) func(int) int {
	i := 0
	return func(int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}
