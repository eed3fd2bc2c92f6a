package memory

import "feria/internal/domain/entity"

// SeedVendors returns the feria's starting catalog.
func SeedVendors() []*entity.Vendor {
	return []*entity.Vendor{
		{
			ID:              "v1",
			Name:            "Lo de Doña Rosa",
			PuestoNumber:    "12-A",
			Sector:          "Pasillo Norte - Sector A",
			Category:        "Comida",
			Description:     "Empanadas tucumanas auténticas y pasteles caseros. Todo hecho a mano con amor.",
			Image:           "https://images.unsplash.com/photo-1541518763669-27f70451fce0?w=600&h=400&fit=crop",
			Schedule:        "Martes y Sábados 8:00 - 14:00",
			Phone:           "+54 11 1234 5678",
			WhatsApp:        "5491112345678",
			IsActiveToday:   true,
			AcceptsCash:     true,
			AcceptsTransfer: true,
			SalesCount:      124,
			ViewCount:       450,
			FavoritedCount:  89,
			Products: []entity.Product{
				{
					ID:          "p1",
					Name:        "Empanada de Carne (Docena)",
					Description: "Carne cortada a cuchillo, aceitunas y el secreto de la casa.",
					Price:       8500,
					Image:       "https://images.unsplash.com/photo-1628102420743-306915f6068d?w=200&h=200&fit=crop",
					QRCodeURL:   "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=p1-empanada",
				},
				{
					ID:          "p2",
					Name:        "Pastel de Batata",
					Description: "Dulce de batata artesanal con masa hojaldrada.",
					Price:       1200,
					Image:       "https://images.unsplash.com/photo-1558326567-98ae2405596b?w=200&h=200&fit=crop",
					QRCodeURL:   "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=p2-pastel",
				},
			},
			Reviews: []entity.Review{
				{ID: "r1", UserName: "Carlos G.", Rating: 5, Comment: "Las mejores empanadas del barrio, sin dudas.", Date: "2023-10-25"},
				{ID: "r2", UserName: "Marta R.", Rating: 4, Comment: "Muy ricas, aunque a veces hay mucha fila.", Date: "2023-11-02"},
			},
		},
		{
			ID:              "v2",
			Name:            "Huerta Juan",
			PuestoNumber:    "05",
			Sector:          "Entrada Principal",
			Category:        "Verdulería",
			Description:     "Frutas y verduras directo del productor.",
			Image:           "https://images.unsplash.com/photo-1488459711635-0c0028974444?w=600&h=400&fit=crop",
			Schedule:        "Sábados 7:30 - 13:00",
			Phone:           "+54 11 8765 4321",
			WhatsApp:        "5491187654321",
			IsActiveToday:   false,
			AcceptsCash:     true,
			AcceptsTransfer: false,
			SalesCount:      342,
			ViewCount:       1200,
			FavoritedCount:  210,
		},
	}
}

// SeedAnnouncements returns the feria-wide notices.
func SeedAnnouncements() []*entity.Announcement {
	return []*entity.Announcement{
		{
			ID:      "a1",
			Title:   "¡Feria Suspendida!",
			Message: "Hoy Martes 31 la feria se suspende por fuertes lluvias.",
			Type:    entity.AnnouncementAlert,
			Date:    "Hoy 07:00",
		},
	}
}
