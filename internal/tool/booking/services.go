package booking

import (
	"context"

	"turnero/internal/service"
	"turnero/internal/tool"
)

func getServicesDescriptor() tool.Descriptor {
	return tool.Descriptor{
		Name:        "get_services",
		Description: "List available services, providers, hours and contact details",
		Params:      nil,
	}
}

func getServicesHandler(svc *service.CatalogService) tool.Handler {
	return func(ctx context.Context, args tool.Args) (*tool.Result, error) {
		catalog := svc.Catalog()

		categories := make([]map[string]any, 0, len(catalog.Categories))
		for _, cat := range catalog.Categories {
			categories = append(categories, map[string]any{
				"name":      cat.Name,
				"resources": cat.Resources,
			})
		}

		return &tool.Result{
			Success: true,
			Message: svc.Narration(),
			Data: map[string]any{
				"title":      catalog.Title,
				"categories": categories,
				"hours":      catalog.Hours,
				"contact":    catalog.Contact,
			},
		}, nil
	}
}
