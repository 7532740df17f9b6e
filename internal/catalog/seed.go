package catalog

import (
	"context"

	"griya/mdp/internal/models"
)

// SeedSource supplies the housing list a catalog view starts from.
type SeedSource interface {
	Housing(ctx context.Context) ([]models.Housing, error)
}

// StaticSource serves the built-in sample listings.
type StaticSource struct{}

func (StaticSource) Housing(context.Context) ([]models.Housing, error) {
	return SampleHousing(), nil
}

func days(n int) *int { return &n }

// SampleHousing returns the listings shown on the home page.
func SampleHousing() []models.Housing {
	return []models.Housing{
		{
			ID:          1,
			Title:       "Griya Asri Residence",
			Location:    "Palembang, Sumatera Selatan",
			Price:       450000000,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        120,
			Image:       "https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=400&h=250&fit=crop",
			Rating:      4.5,
			Status:      models.StatusAvailable,
			Type:        "Rumah",
			Description: "Rumah dua lantai dekat pusat kota dengan carport dan taman.",
			PostedDays:  days(2),
		},
		{
			ID:         2,
			Title:      "Modern Apartment",
			Location:   "Jakarta Selatan",
			Price:      850000000,
			Bedrooms:   2,
			Bathrooms:  1,
			Area:       45,
			Image:      "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=400&h=250&fit=crop",
			Rating:     4.7,
			Status:     models.StatusAvailable,
			Type:       "Apartemen",
			PostedDays: days(5),
		},
		{
			ID:          3,
			Title:       "Beautiful Villa",
			Location:    "Bali, Indonesia",
			Price:       2000000000,
			Bedrooms:    5,
			Bathrooms:   4,
			Area:        200,
			Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400&h=250&fit=crop",
			Rating:      4.9,
			Status:      models.StatusSold,
			Type:        "Villa",
			Description: "Villa dengan kolam renang pribadi dan pemandangan sawah.",
		},
		{
			ID:         4,
			Title:      "Perumahan Bukit Sejahtera",
			Location:   "Palembang, Sumatera Selatan",
			Price:      320000000,
			Bedrooms:   2,
			Bathrooms:  1,
			Area:       72,
			Image:      "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=400&h=250&fit=crop",
			Rating:     4.2,
			Status:     models.StatusAvailable,
			Type:       "Rumah",
			PostedDays: days(11),
		},
		{
			ID:        5,
			Title:     "Townhouse Cendana",
			Location:  "Bandung, Jawa Barat",
			Price:     675000000,
			Bedrooms:  3,
			Bathrooms: 3,
			Area:      98,
			Image:     "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=400&h=250&fit=crop",
			Rating:    4.4,
			Status:    models.StatusAvailable,
			Type:      "Townhouse",
		},
	}
}

// SampleProfile returns the profile card of the demo user.
func SampleProfile() models.Profile {
	return models.Profile{
		Name:        "John Doe",
		Email:       "john.doe@email.com",
		Phone:       "+62 812-3456-7890",
		Location:    "Jakarta, Indonesia",
		Avatar:      "https://ui-avatars.com/api/?name=John+Doe&size=150&background=667eea&color=fff&bold=true",
		IsPremium:   true,
		IsVerified:  true,
		MemberSince: "Jan 2024",
		Bio:         "Seorang profesional yang mencari properti berkualitas...",
		Job:         "Software Developer",
		Birthdate:   "15 Januari 1990",
		Status:      "Married",
	}
}

func SampleStats() models.ProfileStats {
	return models.ProfileStats{Properties: 3, Favorites: 12, Rating: 4.8}
}

func SampleSocialLinks() models.SocialLinks {
	return models.SocialLinks{
		Facebook:  "https://facebook.com/johndoe",
		Twitter:   "https://twitter.com/johndoe",
		Instagram: "https://instagram.com/johndoe",
		LinkedIn:  "https://linkedin.com/in/johndoe",
	}
}

// SampleProperties returns the properties the demo user has listed.
func SampleProperties() []models.Housing {
	return []models.Housing{
		{
			ID:        1,
			Title:     "Modern Apartment",
			Location:  "Jakarta Selatan",
			Price:     5000000,
			Image:     "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=400&h=250&fit=crop",
			Bedrooms:  2,
			Bathrooms: 1,
			Area:      45,
			Status:    models.StatusActive,
		},
		{
			ID:        2,
			Title:     "Rumah Minimalis",
			Location:  "Depok, Jawa Barat",
			Price:     3500000,
			Image:     "https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=400&h=250&fit=crop",
			Bedrooms:  3,
			Bathrooms: 2,
			Area:      90,
			Status:    models.StatusActive,
		},
		{
			ID:        3,
			Title:     "Studio Kemang",
			Location:  "Jakarta Selatan",
			Price:     2750000,
			Image:     "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=400&h=250&fit=crop",
			Bedrooms:  1,
			Bathrooms: 1,
			Area:      28,
			Status:    models.StatusRented,
		},
	}
}

// SampleFavorites returns the listings the demo user saved.
func SampleFavorites() []models.Housing {
	return []models.Housing{
		{
			ID:        101,
			Title:     "Beautiful Villa",
			Location:  "Bali, Indonesia",
			Price:     20000000,
			Image:     "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400&h=250&fit=crop",
			Bedrooms:  5,
			Bathrooms: 4,
			Area:      200,
			Rating:    4.9,
		},
		{
			ID:        102,
			Title:     "Townhouse Cendana",
			Location:  "Bandung, Jawa Barat",
			Price:     6750000,
			Image:     "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=400&h=250&fit=crop",
			Bedrooms:  3,
			Bathrooms: 3,
			Area:      98,
			Rating:    4.4,
		},
	}
}

// SampleHistory returns the demo user's activity feed.
func SampleHistory() []models.HistoryItem {
	return []models.HistoryItem{
		{
			ID:          1,
			Icon:        "bi-check-circle-fill",
			IconColor:   "success",
			Title:       "Pembayaran Berhasil",
			Description: "Modern Apartment - November 2024",
			Time:        "2 hari yang lalu",
			Badge:       "Rp 5.000.000",
			BadgeColor:  "success",
		},
		{
			ID:          2,
			Icon:        "bi-heart-fill",
			IconColor:   "danger",
			Title:       "Ditambahkan ke Favorit",
			Description: "Beautiful Villa - Bali",
			Time:        "1 minggu yang lalu",
		},
	}
}

// SampleCV returns the content of the CV app.
func SampleCV() models.CV {
	return models.CV{
		Name:     "John Doe",
		Headline: "Software Developer",
		Summary:  "Pengembang web dengan pengalaman membangun aplikasi properti dan portofolio.",
		Experience: []models.Experience{
			{Role: "Software Developer", Company: "Griya MDP", Period: "2022 - sekarang", Description: "Membangun katalog perumahan dan halaman profil."},
			{Role: "Web Developer Intern", Company: "Universitas MDP", Period: "2021 - 2022"},
		},
		Education: []models.Education{
			{School: "Universitas Multi Data Palembang", Degree: "S1 Sistem Informasi", Period: "2018 - 2022"},
		},
		Skills: []string{"Go", "TypeScript", "MongoDB", "HTML/CSS"},
		Contact: models.CVContact{
			Email:    "john.doe@email.com",
			Phone:    "+62 812-3456-7890",
			Location: "Palembang, Indonesia",
			Social: models.SocialLinks{
				LinkedIn: "https://linkedin.com/in/johndoe",
			},
		},
	}
}
