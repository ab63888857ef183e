package service

import (
	"fmt"
	"strings"

	"turnero/internal/entities"
)

// CatalogService serves the static service catalog. The catalog is fixed at
// startup; get_services is a pure read.
type CatalogService struct {
	catalog entities.ServiceCatalog
}

func NewCatalogService(catalog entities.ServiceCatalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// DefaultCatalog is the built-in wellness center offering.
func DefaultCatalog() entities.ServiceCatalog {
	return entities.ServiceCatalog{
		Title: "Wellness Partners Services",
		Categories: []entities.ServiceCategory{
			{Name: "Primary Care", Resources: []string{"Dr. Smith", "Dr. Johnson"}},
			{Name: "Dermatology", Resources: []string{"Dr. Brown"}},
			{Name: "Physical Therapy", Resources: []string{"Dr. Wilson"}},
			{Name: "Mental Health", Resources: []string{"Dr. Taylor"}},
		},
		Hours:   "Monday-Friday 8:00 AM - 5:00 PM, Saturday 9:00 AM - 12:00 PM",
		Contact: "(555) 123-HEAL",
	}
}

func (s *CatalogService) Catalog() entities.ServiceCatalog {
	return s.catalog
}

// Narration renders the catalog as the text read back by a voice assistant.
func (s *CatalogService) Narration() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", s.catalog.Title)
	for _, cat := range s.catalog.Categories {
		fmt.Fprintf(&b, "- %s: %s\n", cat.Name, strings.Join(cat.Resources, ", "))
	}
	fmt.Fprintf(&b, "\nHours: %s\n", s.catalog.Hours)
	fmt.Fprintf(&b, "Contact: %s", s.catalog.Contact)
	return b.String()
}
