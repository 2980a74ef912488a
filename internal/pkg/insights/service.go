package insights

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/braincapital/braincap/app/models"
	"github.com/braincapital/braincap/app/repository"
)

// Service implements the insight cache policy: look up an unexpired insight
// for the requested scope, generate and persist on a miss, and record user
// feedback. The cache is the insights table itself; concurrent misses for
// the same scope may both generate, which is tolerated.
type Service struct {
	insights  repository.InsightRepository
	countries repository.CountryRepository
	generator Generator
	cacheTTL  time.Duration
}

// NewService creates an insight service.
func NewService(repos *repository.Repositories, generator Generator, cacheTTL time.Duration) *Service {
	return &Service{
		insights:  repos.Insight,
		countries: repos.Country,
		generator: generator,
		cacheTTL:  cacheTTL,
	}
}

// GetCached returns an unexpired insight matching the type and, when the
// supplied country code resolves to a known country, that country. A code
// that resolves to nothing drops the country constraint rather than forcing
// a miss. indicatorIDs is accepted for interface symmetry but does not
// narrow the match. Returns nil on a miss.
func (s *Service) GetCached(insightType, countryCode string, indicatorIDs []uint) (*models.Insight, error) {
	_ = indicatorIDs

	var countryID *uint
	if countryCode != "" {
		country, err := s.countries.GetByCode(countryCode)
		if err != nil {
			return nil, err
		}
		if country != nil {
			countryID = &country.ID
		}
	}

	return s.insights.FindCached(insightType, countryID, time.Now())
}

// Generate produces a new insight for the request, persists it with a fresh
// expiry and returns it. The filter parameters are stored as a provenance
// snapshot alongside the generated text.
func (s *Service) Generate(req *GenerateRequest) (*models.Insight, error) {
	text, confidence := s.generator.Generate(req)

	var countryID *uint
	if req.CountryCode != "" {
		country, err := s.countries.GetByCode(req.CountryCode)
		if err != nil {
			return nil, err
		}
		if country != nil {
			countryID = &country.ID
		}
	}

	snapshot, err := json.Marshal(filterSnapshot{
		InsightType:  req.InsightType,
		CountryCode:  req.CountryCode,
		IndicatorIDs: req.IndicatorIDs,
	})
	if err != nil {
		return nil, err
	}

	insight := &models.Insight{
		InsightType:     req.InsightType,
		CountryID:       countryID,
		PillarID:        req.PillarID,
		DimensionID:     req.DimensionID,
		YearStart:       req.YearStart,
		YearEnd:         req.YearEnd,
		FilterParams:    datatypes.JSON(snapshot),
		InsightText:     text,
		ConfidenceScore: &confidence,
		ModelVersion:    s.generator.ModelVersion(),
		GeneratedAt:     time.Now(),
		ExpiresAt:       time.Now().Add(s.cacheTTL),
	}

	if err := s.insights.Create(insight); err != nil {
		return nil, err
	}
	return insight, nil
}

// GetOrGenerate is the full cache-miss path: return a cached insight when
// one matches, otherwise generate, persist and return a new one.
func (s *Service) GetOrGenerate(req *GenerateRequest) (*models.Insight, bool, error) {
	cached, err := s.GetCached(req.InsightType, req.CountryCode, req.IndicatorIDs)
	if err != nil {
		return nil, false, err
	}
	if cached != nil {
		return cached, true, nil
	}

	insight, err := s.Generate(req)
	if err != nil {
		return nil, false, err
	}
	return insight, false, nil
}

// GetByID returns an insight by id, or nil when it does not exist.
func (s *Service) GetByID(id uint) (*models.Insight, error) {
	return s.insights.GetByID(id)
}

// SubmitFeedback overwrites the user rating of an insight. The latest
// submission wins; there is no averaging or history. Returns nil, nil when
// the insight does not exist.
func (s *Service) SubmitFeedback(id uint, rating int) (*models.Insight, error) {
	insight, err := s.insights.GetByID(id)
	if err != nil || insight == nil {
		return nil, err
	}

	insight.UserFeedback = &rating
	if err := s.insights.Update(insight); err != nil {
		return nil, err
	}
	return insight, nil
}
