// Package seed loads the demo property catalog.
package seed

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"propertyhub/internal/model"
	"propertyhub/internal/utils"
)

// Store replaces the property catalog
type Store interface {
	ReplaceProperties(ctx context.Context, properties []model.Property) error
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// DemoProperties returns the demo catalog. Creation times are spaced one
// minute apart starting at base, in list order.
func DemoProperties(base time.Time) []model.Property {
	properties := []model.Property{
		{
			Slug:            "modern-condo-bgc",
			Title:           "Modern 2BR Condo in BGC",
			Description:     "Beautiful modern condo with city views, perfect for young professionals. Features open-plan living, modern kitchen, and access to building amenities.",
			PriceAmount:     85000,
			City:            "Taguig",
			Area:            "BGC",
			Beds:            2,
			Baths:           2,
			FloorAreaSqm:    65,
			Parking:         true,
			HeroImage:       "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800",
			Badges:          "Furnished, Pool, Gym",
			AffiliateSource: "PropertyGuru",
			Commissionable:  true,
		},
		{
			Slug:            "luxury-penthouse-makati",
			Title:           "Luxury Penthouse in Makati",
			Description:     "Stunning penthouse with panoramic city views. Features high-end finishes, private terrace, and premium location in the heart of Makati.",
			PriceAmount:     250000,
			City:            "Makati",
			Area:            "Ayala Avenue",
			Beds:            3,
			Baths:           3,
			FloorAreaSqm:    120,
			Parking:         true,
			HeroImage:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800",
			Badges:          "Luxury, Penthouse, City View",
			AffiliateSource: "Lamudi",
			Commissionable:  true,
		},
		{
			Slug:            "cozy-studio-ortigas",
			Title:           "Cozy Studio in Ortigas",
			Description:     "Affordable studio unit perfect for students or young professionals. Walking distance to offices and shopping centers.",
			PriceAmount:     35000,
			City:            "Pasig",
			Area:            "Ortigas Center",
			Beds:            1,
			Baths:           1,
			FloorAreaSqm:    25,
			Parking:         false,
			HeroImage:       "https://images.unsplash.com/photo-1522708323598-d192d84dfb3b?w=800",
			Badges:          "Student-friendly, Near MRT",
			AffiliateSource: "MyProperty",
			Commissionable:  true,
		},
		{
			Slug:            "family-house-quezon-city",
			Title:           "Spacious Family House in QC",
			Description:     "Perfect family home with garden space and multiple bedrooms. Quiet neighborhood with good schools nearby.",
			PriceAmount:     120000,
			City:            "Quezon City",
			Area:            "Diliman",
			Beds:            4,
			Baths:           3,
			FloorAreaSqm:    180,
			Parking:         true,
			HeroImage:       "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800",
			Badges:          "Family-friendly, Garden, Near Schools",
			AffiliateSource: "Property24",
			Commissionable:  true,
		},
		{
			Slug:            "executive-condo-bgc",
			Title:           "Executive 1BR in BGC",
			Description:     "Executive condo unit with premium amenities. Perfect for business professionals working in BGC.",
			PriceAmount:     95000,
			City:            "Taguig",
			Area:            "BGC",
			Beds:            1,
			Baths:           1,
			FloorAreaSqm:    45,
			Parking:         true,
			HeroImage:       "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
			Badges:          "Executive, Business District",
			AffiliateSource: "PropertyGuru",
			Commissionable:  true,
		},
		{
			Slug:            "modern-townhouse-pasig",
			Title:           "Modern Townhouse in Pasig",
			Description:     "Contemporary townhouse with modern design and smart home features. Great for growing families.",
			PriceAmount:     180000,
			City:            "Pasig",
			Area:            "Capitol Commons",
			Beds:            3,
			Baths:           2,
			FloorAreaSqm:    150,
			Parking:         true,
			HeroImage:       "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
			Badges:          "Modern, Smart Home, Family",
			AffiliateSource: "Lamudi",
			Commissionable:  true,
		},
		{
			Slug:            "budget-friendly-makati",
			Title:           "Budget-Friendly Studio in Makati",
			Description:     "Affordable studio unit in the heart of Makati. Perfect for those starting their career in the business district.",
			PriceAmount:     45000,
			City:            "Makati",
			Area:            "Poblacion",
			Beds:            1,
			Baths:           1,
			FloorAreaSqm:    20,
			Parking:         false,
			HeroImage:       "https://images.unsplash.com/photo-1522708323598-d192d84dfb3b?w=800",
			Badges:          "Budget-friendly, Central Location",
			AffiliateSource: "MyProperty",
			Commissionable:  true,
		},
		{
			Slug:            "premium-condo-quezon-city",
			Title:           "Premium 3BR Condo in QC",
			Description:     "Premium condo with luxury amenities and great views. Perfect for families who want comfort and convenience.",
			PriceAmount:     150000,
			City:            "Quezon City",
			Area:            "Eastwood",
			Beds:            3,
			Baths:           2,
			FloorAreaSqm:    95,
			Parking:         true,
			HeroImage:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800",
			Badges:          "Premium, Family, Amenities",
			AffiliateSource: "Property24",
			Commissionable:  true,
		},
	}

	for i := range properties {
		properties[i].CreatedAt = base.Add(time.Duration(i) * time.Minute).UTC()
	}
	return properties
}

// Validate checks the catalog invariants: URL-safe unique slugs, a title,
// and non-negative numeric fields.
func Validate(properties []model.Property) error {
	seen := make(map[string]bool, len(properties))
	for _, p := range properties {
		if !slugPattern.MatchString(p.Slug) {
			return fmt.Errorf("%w: slug %q is not URL-safe", model.ErrInvalidInput, p.Slug)
		}
		if seen[p.Slug] {
			return fmt.Errorf("%w: duplicate slug %q", model.ErrInvalidInput, p.Slug)
		}
		seen[p.Slug] = true

		if p.Title == "" {
			return fmt.Errorf("%w: property %q has no title", model.ErrInvalidInput, p.Slug)
		}
		if p.PriceAmount < 0 || p.Beds < 0 || p.Baths < 0 || p.FloorAreaSqm < 0 {
			return fmt.Errorf("%w: property %q has a negative numeric field", model.ErrInvalidInput, p.Slug)
		}
	}
	return nil
}

// Run validates the demo catalog and replaces the stored catalog with it
func Run(ctx context.Context, store Store, base time.Time) (int, error) {
	properties := DemoProperties(base)
	for i := range properties {
		properties[i].Badges = utils.NormalizeCSV(properties[i].Badges)
	}
	if err := Validate(properties); err != nil {
		return 0, err
	}

	if err := store.ReplaceProperties(ctx, properties); err != nil {
		return 0, fmt.Errorf("failed to seed properties: %w", err)
	}

	for _, p := range properties {
		log.Printf("🌱 Created property: %s", p.Title)
	}
	return len(properties), nil
}
