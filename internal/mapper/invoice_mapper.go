package mapper

import (
	"streampoint-be/internal/entity"
	"streampoint-be/internal/model"
)

type InvoiceMapper struct {
	subscriptionMapper *SubscriptionMapper
}

func NewInvoiceMapper() *InvoiceMapper {
	return &InvoiceMapper{
		subscriptionMapper: NewSubscriptionMapper(),
	}
}

func (m *InvoiceMapper) ToEntity(i *model.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}
	return &entity.Invoice{
		Id:              i.Id,
		SubscriptionId:  i.SubscriptionId,
		Number:          i.Number,
		FullName:        i.FullName,
		Email:           i.Email,
		Phone:           i.Phone,
		PaymentMethod:   entity.PaymentMethod(i.PaymentMethod),
		Total:           i.Total,
		PointsUsed:      i.PointsUsed,
		PointsValue:     i.PointsValue,
		PendingAmount:   i.PendingAmount,
		SecondaryMethod: entity.PaymentMethod(i.SecondaryMethod),
		Paid:            i.Paid,
		PaidAt:          i.PaidAt,
		MidtransOrderId: i.MidtransOrderId,
		CreatedAt:       i.CreatedAt,
		Subscription:    m.subscriptionMapper.ToEntity(i.Subscription),
	}
}

func (m *InvoiceMapper) ToModel(i *entity.Invoice) *model.Invoice {
	if i == nil {
		return nil
	}
	return &model.Invoice{
		Id:              i.Id,
		SubscriptionId:  i.SubscriptionId,
		Number:          i.Number,
		FullName:        i.FullName,
		Email:           i.Email,
		Phone:           i.Phone,
		PaymentMethod:   string(i.PaymentMethod),
		Total:           i.Total,
		PointsUsed:      i.PointsUsed,
		PointsValue:     i.PointsValue,
		PendingAmount:   i.PendingAmount,
		SecondaryMethod: string(i.SecondaryMethod),
		Paid:            i.Paid,
		PaidAt:          i.PaidAt,
		MidtransOrderId: i.MidtransOrderId,
		CreatedAt:       i.CreatedAt,
	}
}
