// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"time"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"
	"streampoint-be/internal/repository/unitofwork"
	"streampoint-be/pkg/rewards"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const landingCacheKey = "catalog_landing"

type ICatalogService interface {
	Landing(ctx context.Context) (*dto.LandingResponse, error)
	Catalog(ctx context.Context, categoryName string) (*dto.CatalogResponse, error)
	// ServiceDetail annotates plans with affordability when viewerId is set.
	ServiceDetail(ctx context.Context, serviceId uuid.UUID, viewerId *uuid.UUID) (*dto.ServiceDetailResponse, error)
}

type catalogService struct {
	uowFactory     unitofwork.RepositoryFactory
	loyaltyService ILoyaltyService
	cache          *gocache.Cache
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, loyaltyService ILoyaltyService) ICatalogService {
	return &catalogService{
		uowFactory:     uowFactory,
		loyaltyService: loyaltyService,
		cache:          gocache.New(time.Minute, 5*time.Minute),
	}
}

func toServiceSummary(s *entity.StreamingService) dto.ServiceSummaryResponse {
	res := dto.ServiceSummaryResponse{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		SiteURL:     s.SiteURL,
	}
	if s.Category != nil {
		res.Category = s.Category.Name
	}
	return res
}

func toPlanResponse(p *entity.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		Id:                  p.Id,
		Name:                p.Name,
		Price:               p.Price,
		Duration:            string(p.Duration),
		DurationDays:        p.DurationDays(),
		Features:            p.Features,
		FirstPurchasePoints: p.FirstPurchasePoints,
		RenewalPoints:       p.RenewalPoints,
	}
}

func (s *catalogService) Landing(ctx context.Context) (*dto.LandingResponse, error) {
	if cached, found := s.cache.Get(landingCacheKey); found {
		return cached.(*dto.LandingResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	services, err := uow.CatalogRepository().FindAllServices(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 6, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	categories, err := uow.CatalogRepository().FindAllCategories(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.LandingResponse{
		FeaturedServices: make([]dto.ServiceSummaryResponse, 0, len(services)),
		Categories:       make([]dto.CategoryResponse, 0, len(categories)),
	}
	for _, svc := range services {
		res.FeaturedServices = append(res.FeaturedServices, toServiceSummary(svc))
	}
	for _, cat := range categories {
		res.Categories = append(res.Categories, dto.CategoryResponse{
			Id:          cat.Id,
			Name:        cat.Name,
			Description: cat.Description,
			Icon:        cat.Icon,
		})
	}

	s.cache.Set(landingCacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

func (s *catalogService) Catalog(ctx context.Context, categoryName string) (*dto.CatalogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ActiveOnly{},
		specification.OrderBy{Field: "name", Desc: false},
	}

	if categoryName != "" {
		category, err := uow.CatalogRepository().FindOneCategory(ctx, specification.ByName{Name: categoryName})
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrNotFound
		}
		specs = append(specs, specification.ByCategoryID{CategoryID: category.Id})
	}

	services, err := uow.CatalogRepository().FindAllServices(ctx, specs...)
	if err != nil {
		return nil, err
	}

	categories, err := uow.CatalogRepository().FindAllCategories(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.CatalogResponse{
		Services:   make([]dto.ServiceSummaryResponse, 0, len(services)),
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
		Category:   categoryName,
	}
	for _, svc := range services {
		res.Services = append(res.Services, toServiceSummary(svc))
	}
	for _, cat := range categories {
		res.Categories = append(res.Categories, dto.CategoryResponse{
			Id:          cat.Id,
			Name:        cat.Name,
			Description: cat.Description,
			Icon:        cat.Icon,
		})
	}
	return res, nil
}

func (s *catalogService) ServiceDetail(ctx context.Context, serviceId uuid.UUID, viewerId *uuid.UUID) (*dto.ServiceDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	service, err := uow.CatalogRepository().FindServiceWithPlans(ctx, serviceId)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.Active {
		return nil, ErrNotFound
	}

	var availablePoints int
	annotate := viewerId != nil
	if annotate {
		profile, err := s.loyaltyService.EnsureProfile(ctx, *viewerId)
		if err != nil {
			return nil, err
		}
		availablePoints = profile.AvailablePoints
	}
	cfg := s.loyaltyService.ActiveConfig(ctx)

	res := &dto.ServiceDetailResponse{
		ServiceSummaryResponse: toServiceSummary(service),
		Plans:                  make([]dto.AnnotatedPlanResponse, 0, len(service.Plans)),
	}
	for i := range service.Plans {
		plan := &service.Plans[i]
		annotated := dto.AnnotatedPlanResponse{PlanResponse: toPlanResponse(plan)}
		if annotate {
			pointsPrice := rewards.PointsPrice(plan.Price, cfg)
			missing := pointsPrice - availablePoints
			if missing < 0 {
				missing = 0
			}
			annotated.Affordability = &dto.PlanAffordability{
				PointsPrice:      pointsPrice,
				CanPayWithPoints: availablePoints >= pointsPrice,
				PointsMissing:    missing,
			}
		}
		res.Plans = append(res.Plans, annotated)
	}
	return res, nil
}
