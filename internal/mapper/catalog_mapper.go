package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) CategoryToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Active:      c.Active,
	}
}

func (m *CatalogMapper) CategoryToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Active:      c.Active,
	}
}

func (m *CatalogMapper) ServiceToEntity(s *model.StreamingService) *entity.StreamingService {
	if s == nil {
		return nil
	}
	svc := &entity.StreamingService{
		Id:          s.Id,
		CategoryId:  s.CategoryId,
		Name:        s.Name,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		SiteURL:     s.SiteURL,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		Category:    m.CategoryToEntity(s.Category),
	}
	for i := range s.Plans {
		if p := m.PlanToEntity(&s.Plans[i]); p != nil {
			svc.Plans = append(svc.Plans, *p)
		}
	}
	return svc
}

func (m *CatalogMapper) ServiceToModel(s *entity.StreamingService) *model.StreamingService {
	if s == nil {
		return nil
	}
	return &model.StreamingService{
		Id:          s.Id,
		CategoryId:  s.CategoryId,
		Name:        s.Name,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		SiteURL:     s.SiteURL,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *CatalogMapper) PlanToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	var features []string
	if len(p.Features) > 0 {
		// A malformed features column degrades to an empty list.
		_ = json.Unmarshal(p.Features, &features)
	}
	return &entity.Plan{
		Id:                  p.Id,
		ServiceId:           p.ServiceId,
		Name:                p.Name,
		Price:               p.Price,
		Duration:            entity.PlanDuration(p.Duration),
		Features:            features,
		FirstPurchasePoints: p.FirstPurchasePoints,
		RenewalPoints:       p.RenewalPoints,
		Active:              p.Active,
		CreatedAt:           p.CreatedAt,
		Service:             m.ServiceToEntity(p.Service),
	}
}

func (m *CatalogMapper) PlanToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	features := datatypes.JSON([]byte("[]"))
	if p.Features != nil {
		if raw, err := json.Marshal(p.Features); err == nil {
			features = raw
		}
	}
	return &model.Plan{
		Id:                  p.Id,
		ServiceId:           p.ServiceId,
		Name:                p.Name,
		Price:               p.Price,
		Duration:            string(p.Duration),
		Features:            features,
		FirstPurchasePoints: p.FirstPurchasePoints,
		RenewalPoints:       p.RenewalPoints,
		Active:              p.Active,
		CreatedAt:           p.CreatedAt,
	}
}
