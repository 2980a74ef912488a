package main

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/braincapital/braincap/app/models"
	"github.com/braincapital/braincap/internal/pkg/config"
	"github.com/braincapital/braincap/internal/pkg/database"
	"github.com/braincapital/braincap/internal/pkg/env"
)

func main() {
	env.SetupEnvFile()
	cfg := config.Load()

	db, err := database.SetupDatabase(cfg)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	log.Println("Starting database seeding...")

	seedCountries(db)
	seedPillars(db)
	seedDimensions(db)
	seedIndicators(db)
	seedIndicatorValues(db)

	log.Println("Database seeding completed")
}

func fptr(f float64) *float64 { return &f }
func iptr(i int64) *int64     { return &i }

func seedCountries(db *gorm.DB) {
	countries := []models.Country{
		{Code: "USA", Name: "United States", Region: "North America", Latitude: fptr(37.0902), Longitude: fptr(-95.7129), Population: iptr(331000000), GDPUsd: fptr(21427700)},
		{Code: "GBR", Name: "United Kingdom", Region: "Europe", Latitude: fptr(55.3781), Longitude: fptr(-3.4360), Population: iptr(67000000), GDPUsd: fptr(2827000)},
		{Code: "DEU", Name: "Germany", Region: "Europe", Latitude: fptr(51.1657), Longitude: fptr(10.4515), Population: iptr(83000000), GDPUsd: fptr(3845000)},
		{Code: "FRA", Name: "France", Region: "Europe", Latitude: fptr(46.2276), Longitude: fptr(2.2137), Population: iptr(65000000), GDPUsd: fptr(2716000)},
		{Code: "JPN", Name: "Japan", Region: "Asia", Latitude: fptr(36.2048), Longitude: fptr(138.2529), Population: iptr(126000000), GDPUsd: fptr(5082000)},
		{Code: "CHN", Name: "China", Region: "Asia", Latitude: fptr(35.8617), Longitude: fptr(104.1954), Population: iptr(1400000000), GDPUsd: fptr(14342000)},
		{Code: "IND", Name: "India", Region: "Asia", Latitude: fptr(20.5937), Longitude: fptr(78.9629), Population: iptr(1380000000), GDPUsd: fptr(2875000)},
		{Code: "BRA", Name: "Brazil", Region: "South America", Latitude: fptr(-14.2350), Longitude: fptr(-51.9253), Population: iptr(212000000), GDPUsd: fptr(1839000)},
		{Code: "AUS", Name: "Australia", Region: "Oceania", Latitude: fptr(-25.2744), Longitude: fptr(133.7751), Population: iptr(25000000), GDPUsd: fptr(1393000)},
		{Code: "CAN", Name: "Canada", Region: "North America", Latitude: fptr(56.1304), Longitude: fptr(-106.3468), Population: iptr(38000000), GDPUsd: fptr(1736000)},
	}

	count := 0
	for i := range countries {
		var existing models.Country
		err := db.Where("code = ?", countries[i].Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&countries[i]).Error; err != nil {
				log.Printf("Error seeding country %s: %v", countries[i].Code, err)
				continue
			}
			count++
		}
	}
	log.Printf("Seeded %d countries", count)
}

func seedPillars(db *gorm.DB) {
	pillars := []models.Pillar{
		{Name: "Brain Capital Drivers", Description: "Factors that enable brain capital development", DisplayOrder: 1},
		{Name: "Brain Health", Description: "Mental and neurological wellbeing indicators", DisplayOrder: 2},
		{Name: "Brain Skills", Description: "Cognitive and educational capabilities", DisplayOrder: 3},
	}

	count := 0
	for i := range pillars {
		var existing models.Pillar
		err := db.Where("name = ?", pillars[i].Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&pillars[i]).Error; err != nil {
				log.Printf("Error seeding pillar %s: %v", pillars[i].Name, err)
				continue
			}
			count++
		}
	}
	log.Printf("Seeded %d pillars", count)
}

func seedDimensions(db *gorm.DB) {
	pillarIDs := map[string]uint{}
	var pillars []models.Pillar
	db.Find(&pillars)
	for _, p := range pillars {
		pillarIDs[p.Name] = p.ID
	}

	dimensions := []models.Dimension{
		{PillarID: pillarIDs["Brain Capital Drivers"], Name: "Digitalization", Description: "Digital infrastructure and access", DisplayOrder: 1},
		{PillarID: pillarIDs["Brain Capital Drivers"], Name: "Education", Description: "Educational systems and access", DisplayOrder: 2},
		{PillarID: pillarIDs["Brain Health"], Name: "Mental Wellbeing", Description: "Psychological health indicators", DisplayOrder: 1},
		{PillarID: pillarIDs["Brain Health"], Name: "Neurological Health", Description: "Brain health and disease prevention", DisplayOrder: 2},
		{PillarID: pillarIDs["Brain Skills"], Name: "Cognitive Abilities", Description: "Cognitive performance metrics", DisplayOrder: 1},
		{PillarID: pillarIDs["Brain Skills"], Name: "Workforce Skills", Description: "Professional and technical skills", DisplayOrder: 2},
	}

	count := 0
	for i := range dimensions {
		var existing models.Dimension
		err := db.Where("pillar_id = ? AND name = ?", dimensions[i].PillarID, dimensions[i].Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&dimensions[i]).Error; err != nil {
				log.Printf("Error seeding dimension %s: %v", dimensions[i].Name, err)
				continue
			}
			count++
		}
	}
	log.Printf("Seeded %d dimensions", count)
}

func seedIndicators(db *gorm.DB) {
	dimensionIDs := map[string]uint{}
	var dimensions []models.Dimension
	db.Find(&dimensions)
	for _, d := range dimensions {
		dimensionIDs[d.Name] = d.ID
	}

	indicators := []models.Indicator{
		{DimensionID: dimensionIDs["Digitalization"], Name: "Digital Infrastructure Index", Description: "Composite index of digital connectivity and infrastructure", Unit: "score 0-100", DataSource: "World Bank", DisplayOrder: 1, IsActive: true},
		{DimensionID: dimensionIDs["Education"], Name: "Education Access Rate", Description: "Percentage of population with access to quality education", Unit: "%", DataSource: "UNESCO", DisplayOrder: 1, IsActive: true},
		{DimensionID: dimensionIDs["Mental Wellbeing"], Name: "Depression Rate", Description: "Prevalence of depression per 100,000 population", Unit: "per 100k", DataSource: "WHO", DisplayOrder: 1, IsActive: true},
		{DimensionID: dimensionIDs["Neurological Health"], Name: "Dementia Prevalence", Description: "Prevalence of dementia per 100,000 population", Unit: "per 100k", DataSource: "WHO", DisplayOrder: 1, IsActive: true},
		{DimensionID: dimensionIDs["Cognitive Abilities"], Name: "Cognitive Performance Index", Description: "Composite index of cognitive test performance", Unit: "score 0-100", DataSource: "OECD", DisplayOrder: 1, IsActive: true},
		{DimensionID: dimensionIDs["Workforce Skills"], Name: "Skills Match Index", Description: "Alignment between workforce skills and job market needs", Unit: "score 0-100", DataSource: "World Economic Forum", DisplayOrder: 1, IsActive: true},
	}

	count := 0
	for i := range indicators {
		var existing models.Indicator
		err := db.Where("dimension_id = ? AND name = ?", indicators[i].DimensionID, indicators[i].Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&indicators[i]).Error; err != nil {
				log.Printf("Error seeding indicator %s: %v", indicators[i].Name, err)
				continue
			}
			count++
		}
	}
	log.Printf("Seeded %d indicators", count)
}

// seedIndicatorValues fills 2020-2023 for every country/indicator pair with
// deterministic values so repeated runs produce the same dataset.
func seedIndicatorValues(db *gorm.DB) {
	var countries []models.Country
	var indicators []models.Indicator
	db.Find(&countries)
	db.Find(&indicators)
	years := []int{2020, 2021, 2022, 2023}

	count := 0
	for ci, country := range countries {
		for ii, indicator := range indicators {
			for yi, year := range years {
				var existing models.IndicatorValue
				err := db.Where("country_id = ? AND indicator_id = ? AND year = ?",
					country.ID, indicator.ID, year).First(&existing).Error
				if err != gorm.ErrRecordNotFound {
					continue
				}

				value := syntheticValue(indicator.Name, ci, ii, yi)
				confidence := 0.70 + float64((ci+ii+yi)%26)/100.0

				row := models.IndicatorValue{
					CountryID:       country.ID,
					IndicatorID:     indicator.ID,
					Year:            year,
					Value:           &value,
					ConfidenceScore: &confidence,
				}
				if err := db.Create(&row).Error; err != nil {
					log.Printf("Error seeding value %s/%s/%d: %v", country.Code, indicator.Name, year, err)
					continue
				}
				count++
			}
		}
	}
	log.Printf("Seeded %d indicator values", count)
}

// syntheticValue derives a plausible value for the indicator kind from the
// seed indices. Rates and indexes fall in 40-95, prevalences in 500-5000.
func syntheticValue(indicatorName string, ci, ii, yi int) float64 {
	lower := strings.ToLower(indicatorName)
	spread := float64((ci*7 + ii*11 + yi*3) % 50)
	switch {
	case strings.Contains(lower, "prevalence"):
		return 500 + spread*90
	case strings.Contains(lower, "rate"), strings.Contains(lower, "index"):
		return 40 + spread*1.1
	default:
		return 50 + spread*0.8
	}
}
