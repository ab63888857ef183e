package booking

import (
	"context"
	"fmt"

	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
	"turnero/internal/service"
	"turnero/internal/tool"
)

func bookAppointmentDescriptor() tool.Descriptor {
	return tool.Descriptor{
		Name:        "book_appointment",
		Description: "Schedule a new appointment in an open slot",
		Params: []tool.Param{
			{Name: "subject_name", Type: tool.TypeString, Description: "Name of the person booking", Required: true, Default: defaultSubject},
			{Name: "contact", Type: tool.TypeString, Description: "Phone number or other contact", Required: true, Default: defaultContact},
			{Name: "date", Type: tool.TypeString, Description: "Appointment date, YYYY-MM-DD", Required: true, Default: defaultDate},
			{Name: "time", Type: tool.TypeString, Description: "Appointment time, HH:MM (24h)", Required: true, Default: defaultTime},
			{Name: "category", Type: tool.TypeString, Description: "Service category", Required: true, Default: defaultCategory},
			{Name: "resource", Type: tool.TypeString, Description: "Provider name", Required: true, Default: defaultResource},
			{Name: "notes", Type: tool.TypeString, Description: "Optional free-text notes", Required: false},
		},
	}
}

func bookAppointmentHandler(svc *service.ReservationService) tool.Handler {
	return func(ctx context.Context, args tool.Args) (*tool.Result, error) {
		req := entities.SlotRequest{
			SubjectName: args.String("subject_name"),
			Contact:     args.String("contact"),
			Resource:    args.String("resource"),
			Category:    args.String("category"),
			Date:        args.String("date"),
			Time:        args.String("time"),
			Notes:       args.String("notes"),
		}

		conf, err := svc.Book(ctx, req)
		if err != nil {
			if apperrors.IsSlotTaken(err) {
				return &tool.Result{
					Success: false,
					Message: fmt.Sprintf("The %s slot with %s on %s is already booked. Please choose another time.",
						req.Time, req.Resource, req.Date),
				}, nil
			}
			if apperrors.IsMalformedRequest(err) {
				return &tool.Result{Success: false, Message: "Could not book the appointment: " + err.Error()}, nil
			}
			return nil, err
		}

		return &tool.Result{
			Success: true,
			Message: fmt.Sprintf("Appointment confirmed. Confirmation %s for %s with %s on %s at %s (%s).",
				conf.Code, conf.SubjectName, conf.Resource, conf.Date, conf.Time, conf.Category),
			Data: map[string]any{
				"id":                conf.ID,
				"confirmation_code": conf.Code,
				"subject_name":      conf.SubjectName,
				"resource":          conf.Resource,
				"category":          conf.Category,
				"date":              conf.Date,
				"time":              conf.Time,
			},
		}, nil
	}
}
