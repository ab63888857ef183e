package booking

import (
	"context"
	"fmt"

	apperrors "turnero/internal/errors"
	"turnero/internal/service"
	"turnero/internal/tool"
)

func cancelAppointmentDescriptor() tool.Descriptor {
	return tool.Descriptor{
		Name:        "cancel_appointment",
		Description: "Cancel booked appointments for a person on a given date",
		Params: []tool.Param{
			{Name: "subject_name", Type: tool.TypeString, Description: "Name the booking was made under", Required: true, Default: defaultSubject},
			{Name: "contact", Type: tool.TypeString, Description: "Contact the booking was made with", Required: true, Default: defaultContact},
			{Name: "date", Type: tool.TypeString, Description: "Date of the appointments, YYYY-MM-DD", Required: true, Default: defaultDate},
		},
	}
}

func cancelAppointmentHandler(svc *service.ReservationService) tool.Handler {
	return func(ctx context.Context, args tool.Args) (*tool.Result, error) {
		subject := args.String("subject_name")
		contact := args.String("contact")
		date := args.String("date")

		count, err := svc.Cancel(ctx, subject, contact, date)
		if err != nil {
			if apperrors.IsMalformedRequest(err) {
				return &tool.Result{Success: false, Message: "Could not cancel: " + err.Error()}, nil
			}
			return nil, err
		}

		if count == 0 {
			return &tool.Result{
				Success: false,
				Message: fmt.Sprintf("No appointments found for %s with contact %s on %s.", subject, contact, date),
				Data:    map[string]any{"cancelled": int64(0)},
			}, nil
		}

		return &tool.Result{
			Success: true,
			Message: fmt.Sprintf("Cancelled %d appointment(s) for %s on %s.", count, subject, date),
			Data:    map[string]any{"cancelled": count},
		}, nil
	}
}
