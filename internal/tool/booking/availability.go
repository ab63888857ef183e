package booking

import (
	"context"
	"fmt"
	"strings"

	apperrors "turnero/internal/errors"
	"turnero/internal/service"
	"turnero/internal/tool"
)

func checkAvailabilityDescriptor() tool.Descriptor {
	return tool.Descriptor{
		Name:        "check_availability",
		Description: "Check whether an appointment slot is open for a provider",
		Params: []tool.Param{
			{Name: "date", Type: tool.TypeString, Description: "Requested date, YYYY-MM-DD", Required: true, Default: defaultDate},
			{Name: "time", Type: tool.TypeString, Description: "Requested time, HH:MM (24h)", Required: true, Default: defaultTime},
			{Name: "resource", Type: tool.TypeString, Description: "Provider name", Required: true, Default: defaultResource},
			{Name: "category", Type: tool.TypeString, Description: "Service category", Required: true, Default: defaultCategory},
		},
	}
}

func checkAvailabilityHandler(svc *service.AvailabilityService) tool.Handler {
	return func(ctx context.Context, args tool.Args) (*tool.Result, error) {
		report, err := svc.CheckAvailability(ctx,
			args.String("resource"), args.String("date"), args.String("time"), args.String("category"))
		if err != nil {
			if apperrors.IsMalformedRequest(err) {
				return &tool.Result{Success: false, Message: "Could not check availability: " + err.Error()}, nil
			}
			return nil, err
		}

		alternatives := strings.Join(report.SuggestedTimes[1:], ", ")
		var msg string
		if report.Available {
			msg = fmt.Sprintf("%s is available for %s on %s at %s. Other times to consider: %s.",
				report.Resource, report.Category, report.Date, report.RequestedTime, alternatives)
		} else {
			msg = fmt.Sprintf("%s is not available on %s at %s. Times to try instead: %s.",
				report.Resource, report.Date, report.RequestedTime, alternatives)
		}

		return &tool.Result{
			Success: true,
			Message: msg,
			Data: map[string]any{
				"resource":        report.Resource,
				"category":        report.Category,
				"date":            report.Date,
				"requested_time":  report.RequestedTime,
				"available":       report.Available,
				"suggested_times": report.SuggestedTimes,
			},
		}, nil
	}
}
