package filters

import (
	"gorm.io/gorm"
)

// Service executes cascading filter queries over the joined
// Country x IndicatorValue x Indicator x Dimension x Pillar hierarchy.
type Service struct {
	db *gorm.DB
}

// NewService creates a filter service from a GORM DB handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// joinedValues builds the five-table join restricted to active indicators.
func (s *Service) joinedValues() *gorm.DB {
	return s.db.Table("indicator_values").
		Joins("JOIN countries ON indicator_values.country_id = countries.id").
		Joins("JOIN indicators ON indicator_values.indicator_id = indicators.id").
		Joins("JOIN dimensions ON indicators.dimension_id = dimensions.id").
		Joins("JOIN pillars ON dimensions.pillar_id = pillars.id").
		Where("indicators.is_active = ?", true)
}

// apply narrows the join with every present filter field. Predicates compose
// conjunctively; an unknown id simply matches nothing. An inverted year range
// yields an empty set, not an error.
func apply(tx *gorm.DB, params *FilterParams) *gorm.DB {
	if params.PillarID != 0 {
		tx = tx.Where("pillars.id = ?", params.PillarID)
	}
	if params.DimensionID != 0 {
		tx = tx.Where("dimensions.id = ?", params.DimensionID)
	}
	if params.IndicatorID != 0 {
		tx = tx.Where("indicators.id = ?", params.IndicatorID)
	}
	if codes := params.CountryCodeList(); codes != nil {
		tx = tx.Where("countries.code IN ?", codes)
	}
	if params.YearStart != 0 {
		tx = tx.Where("indicator_values.year >= ?", params.YearStart)
	}
	if params.YearEnd != 0 {
		tx = tx.Where("indicator_values.year <= ?", params.YearEnd)
	}
	return tx
}

// FilterValues returns the paginated, denormalized rows matching the filter
// along with the unpaginated total for the same predicate.
func (s *Service) FilterValues(params *FilterParams) ([]FlatValueRow, int64, error) {
	params.Normalize()

	total, err := s.CountValues(params)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]FlatValueRow, 0, params.Limit)
	err = apply(s.joinedValues(), params).
		Select(`indicator_values.id,
			countries.code AS country_code,
			countries.name AS country_name,
			countries.latitude,
			countries.longitude,
			indicators.name AS indicator_name,
			indicators.unit,
			dimensions.name AS dimension_name,
			pillars.name AS pillar_name,
			indicator_values.year,
			indicator_values.value,
			indicator_values.confidence_score`).
		Order("indicator_values.id ASC").
		Offset(params.Offset).Limit(params.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// CountValues applies the identical predicate without pagination and returns
// the match count.
func (s *Service) CountValues(params *FilterParams) (int64, error) {
	var count int64
	err := apply(s.joinedValues(), params).Count(&count).Error
	return count, err
}

// MapData returns the geospatial view for one indicator and year: countries
// with known coordinates and their values. This path is keyed directly by
// indicator id and deliberately skips the is_active gate and the general
// filter predicate.
func (s *Service) MapData(indicatorID uint, year int) ([]MapRow, error) {
	rows := make([]MapRow, 0)
	err := s.db.Table("countries").
		Select(`countries.code AS country_code,
			countries.name AS country_name,
			countries.latitude,
			countries.longitude,
			indicator_values.value,
			indicators.unit`).
		Joins("JOIN indicator_values ON countries.id = indicator_values.country_id").
		Joins("JOIN indicators ON indicator_values.indicator_id = indicators.id").
		Where("indicator_values.indicator_id = ? AND indicator_values.year = ?", indicatorID, year).
		Where("countries.latitude IS NOT NULL AND countries.longitude IS NOT NULL").
		Scan(&rows).Error
	return rows, err
}
