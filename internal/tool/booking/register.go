// Package booking defines the callable tools of the reservation service and
// binds them to the domain services. The declared names, parameters and
// required flags are part of the external contract and must not change.
package booking

import (
	"turnero/internal/service"
	"turnero/internal/tool"
)

// Defaults substituted in permissive dispatch mode, kept for compatibility
// with historic caller behavior.
const (
	defaultSubject  = "Test Patient"
	defaultContact  = "+1234567890"
	defaultDate     = "2024-01-01"
	defaultTime     = "14:00"
	defaultCategory = "Primary Care"
	defaultResource = "Dr. Smith"
)

// Register installs the four booking tools into the registry.
func Register(reg *tool.Registry, reservations *service.ReservationService, availability *service.AvailabilityService, catalog *service.CatalogService) error {
	entries := []struct {
		desc    tool.Descriptor
		handler tool.Handler
	}{
		{checkAvailabilityDescriptor(), checkAvailabilityHandler(availability)},
		{bookAppointmentDescriptor(), bookAppointmentHandler(reservations)},
		{getServicesDescriptor(), getServicesHandler(catalog)},
		{cancelAppointmentDescriptor(), cancelAppointmentHandler(reservations)},
	}
	for _, e := range entries {
		if err := reg.Register(e.desc, e.handler); err != nil {
			return err
		}
	}
	return nil
}
