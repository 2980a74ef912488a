package catalog

import (
	"github.com/braincapital/braincap/app/models"
	"github.com/braincapital/braincap/app/repository"
)

// Service exposes the four-level taxonomy: ordered hierarchy listings, point
// lookups and the country reference data set. Point lookups return nil when
// the id does not match; the transport layer turns that into a 404.
type Service struct {
	repos *repository.Repositories
}

// NewService creates a catalog service from the repository set.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

// ListPillars returns all pillars ordered by display order, then name.
func (s *Service) ListPillars() ([]models.Pillar, error) {
	return s.repos.Pillar.GetAll()
}

// GetPillar returns a pillar by id, or nil when it does not exist.
func (s *Service) GetPillar(id uint) (*models.Pillar, error) {
	return s.repos.Pillar.GetByID(id)
}

// ListDimensions returns the ordered dimensions of a pillar.
func (s *Service) ListDimensions(pillarID uint) ([]models.Dimension, error) {
	return s.repos.Dimension.GetByPillarID(pillarID)
}

// GetDimension returns a dimension with its owning pillar, or nil.
func (s *Service) GetDimension(id uint) (*models.Dimension, error) {
	return s.repos.Dimension.GetByID(id)
}

// ListIndicators returns the ordered active indicators of a dimension.
func (s *Service) ListIndicators(dimensionID uint) ([]models.Indicator, error) {
	return s.repos.Indicator.GetByDimensionID(dimensionID)
}

// GetIndicator returns an indicator with its dimension and pillar, or nil.
func (s *Service) GetIndicator(id uint) (*models.Indicator, error) {
	return s.repos.Indicator.GetByID(id)
}

// ListActiveIndicators returns every active indicator in display order.
func (s *Service) ListActiveIndicators() ([]models.Indicator, error) {
	return s.repos.Indicator.GetAllActive()
}

// ListCountries returns countries with pagination plus the total count.
func (s *Service) ListCountries(offset, limit int) ([]models.Country, int64, error) {
	countries, err := s.repos.Country.List(offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repos.Country.Count()
	if err != nil {
		return nil, 0, err
	}
	return countries, total, nil
}

// GetCountryByCode returns a country by ISO code, or nil.
func (s *Service) GetCountryByCode(code string) (*models.Country, error) {
	return s.repos.Country.GetByCode(code)
}

// GetCountriesByRegion returns all countries of a region.
func (s *Service) GetCountriesByRegion(region string) ([]models.Country, error) {
	return s.repos.Country.GetByRegion(region)
}

// CreateCountry validates and persists a new country.
func (s *Service) CreateCountry(country *models.Country) error {
	if err := country.Validate(); err != nil {
		return err
	}
	return s.repos.Country.Create(country)
}

// UpdateCountry validates and saves changes to an existing country.
// Returns nil, nil when the country does not exist.
func (s *Service) UpdateCountry(id uint, update *models.Country) (*models.Country, error) {
	country, err := s.repos.Country.GetByID(id)
	if err != nil || country == nil {
		return nil, err
	}

	country.Name = update.Name
	country.Region = update.Region
	country.Latitude = update.Latitude
	country.Longitude = update.Longitude
	country.Population = update.Population
	country.GDPUsd = update.GDPUsd
	if update.Code != "" {
		country.Code = update.Code
	}

	if err := country.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Country.Update(country); err != nil {
		return nil, err
	}
	return country, nil
}

// DeleteCountry removes a country and, through the store's cascade
// constraints, its indicator values and insights. Reports whether a row
// was actually deleted.
func (s *Service) DeleteCountry(id uint) (bool, error) {
	country, err := s.repos.Country.GetByID(id)
	if err != nil || country == nil {
		return false, err
	}
	if err := s.repos.Country.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}
