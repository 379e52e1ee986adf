package main

import (
	"streampoint-be/internal/model"

	"github.com/fatih/color"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedNotificationTypes populates the catalog of in-app notification types.
// Templates use {placeholder} substitution against the event payload.
func seedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_REGISTERED",
			DisplayName: "Nuevo usuario registrado",
			Template:    "Nuevo usuario registrado: {email}",
			TargetType:  "STAFF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "SUBSCRIPTION_CREATED",
			DisplayName: "Suscripción pendiente",
			Template:    "Nueva suscripción al plan {plan_name} pendiente de validación",
			TargetType:  "STAFF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SUBSCRIPTION_VALIDATED",
			DisplayName: "Suscripción validada",
			Template:    "Tu suscripción al plan {plan_name} fue validada. Puntos ganados: {points_awarded}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SUBSCRIPTION_REJECTED",
			DisplayName: "Suscripción rechazada",
			Template:    "Tu suscripción al plan {plan_name} fue rechazada. Motivo: {reason}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "PURCHASE_SUBMITTED",
			DisplayName: "Compra registrada",
			Template:    "Nueva compra en {service_name} pendiente de aprobación",
			TargetType:  "STAFF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "PURCHASE_APPROVED",
			DisplayName: "Compra aprobada",
			Template:    "Tu compra en {service_name} fue aprobada. Puntos ganados: {points_awarded}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "PURCHASE_REJECTED",
			DisplayName: "Compra rechazada",
			Template:    "Tu compra en {service_name} fue rechazada. Motivo: {reason}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "POINTS_ADJUSTED",
			DisplayName: "Puntos ajustados",
			Template:    "Tu saldo de puntos fue ajustado: {reason}",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "CHECKOUT_COMPLETED",
			DisplayName: "Compra completada",
			Template:    "Tu compra quedó registrada con la factura {invoice_number}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "Anuncio del sistema",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	for _, t := range types {
		if err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error; err != nil {
			color.Red("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	color.Green("Seeded %d notification types", len(types))
}
