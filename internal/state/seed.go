package state

import "github.com/BruksfildServices01/petcare-marketplace/internal/models"

func seedWalkers() []models.Provider {
	return []models.Provider{
		{
			ID:         101,
			Name:       "María González",
			Rating:     4.9,
			Experience: "3 años",
			Price:      15,
			Location:   "Centro",
			Services:   []string{"Paseos", "Entrenamiento Básico"},
			Avatar:     "https://placekitten.com/151/151",
			Reviews:    127,
			Verified:   true,
		},
		{
			ID:         102,
			Name:       "Carlos Ruiz",
			Rating:     4.8,
			Experience: "5 años",
			Price:      18,
			Location:   "Norte",
			Services:   []string{"Paseos", "Entrenamiento Avanzado"},
			Avatar:     "https://placekitten.com/152/152",
			Reviews:    89,
			Verified:   true,
		},
		{
			ID:         103,
			Name:       "Javier Soto",
			Rating:     4.7,
			Experience: "4 años",
			Price:      16,
			Location:   "Este",
			Services:   []string{"Paseos", "Cuidado diurno"},
			Avatar:     "https://placekitten.com/153/153",
			Reviews:    110,
			Verified:   false,
		},
	}
}

func seedPetSitters() []models.Provider {
	return []models.Provider{
		{
			ID:         201,
			Name:       "Ana López",
			Rating:     5.0,
			Experience: "2 años",
			Price:      12,
			Location:   "Sur",
			Services:   []string{"Cuidado en casa", "Hospedaje nocturno"},
			Avatar:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Reviews:    156,
			Verified:   true,
		},
		{
			ID:         202,
			Name:       "Sofía Pérez",
			Rating:     4.9,
			Experience: "6 años",
			Price:      20,
			Location:   "Oriente",
			Services:   []string{"Hospedaje", "Cuidado en casa", "Medicación"},
			Avatar:     "https://images.unsplash.com/photo-1573496359142-b8d87734b584?w=150&h=150&fit=crop&crop=face",
			Reviews:    210,
			Verified:   true,
		},
		{
			ID:         203,
			Name:       "Diego Castro",
			Rating:     4.6,
			Experience: "1 año",
			Price:      10,
			Location:   "Poniente",
			Services:   []string{"Cuidado en casa", "Alimentación a domicilio"},
			Avatar:     "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
			Reviews:    45,
			Verified:   false,
		},
	}
}

func seedFavorites() []models.Provider {
	return []models.Provider{seedWalkers()[0], seedPetSitters()[0]}
}
