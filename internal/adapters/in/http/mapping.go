package http

import (
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toCompany(c *company.Company) servers.Company {
	resp := servers.Company{
		Id:           c.ID().Bytes(),
		Name:         c.Name(),
		Email:        openapi_types.Email(c.Email().String()),
		ProcessSteps: c.ProcessSteps().Names(),
	}
	if d := c.Description(); d != "" {
		resp.Description = &d
	}
	return resp
}

func toOrder(view queries.OrderView) servers.Order {
	o := view.Order
	resp := servers.Order{
		Id:                 o.ID().Bytes(),
		OrderNumber:        o.Number(),
		CustomerName:       o.Customer().Name(),
		ProductDescription: o.ProductDescription(),
		TotalAmount:        o.TotalAmount(),
		Status:             servers.OrderStatus(o.Status().String()),
		CreatedAt:          view.CreatedAt,
		Steps:              toSteps(view.Steps),
		Progress:           toProgress(view.Progress),
	}
	if email := o.Customer().Email(); email != nil {
		e := openapi_types.Email(email.String())
		resp.CustomerEmail = &e
	}
	if phone := o.Customer().Phone(); phone != "" {
		resp.CustomerPhone = &phone
	}
	return resp
}

func toTrackedOrder(resp queries.GetOrderWithProgressQueryResponse) servers.TrackedOrder {
	return servers.TrackedOrder{
		OrderNumber:        resp.Order.Number(),
		ProductDescription: resp.Order.ProductDescription(),
		Status:             servers.TrackedOrderStatus(resp.Order.Status().String()),
		CreatedAt:          resp.CreatedAt,
		Company: servers.CompanyContact{
			Name:  resp.CompanyName,
			Email: openapi_types.Email(resp.CompanyEmail),
		},
		Steps:    toSteps(resp.Steps),
		Progress: toProgress(resp.Progress),
	}
}

func toSteps(steps []*progress.Step) []servers.Step {
	resp := make([]servers.Step, 0, len(steps))
	for _, s := range steps {
		step := servers.Step{
			Id:          s.ID().Bytes(),
			StepName:    s.Name(),
			StepOrder:   s.Position(),
			Status:      servers.StepStatus(s.Status().String()),
			StartedAt:   s.StartedAt(),
			CompletedAt: s.CompletedAt(),
		}
		if notes := s.Notes(); notes != "" {
			step.Notes = &notes
		}
		resp = append(resp, step)
	}
	return resp
}

func toProgress(summary services.ProgressSummary) servers.Progress {
	resp := servers.Progress{
		Percentage: summary.Percentage,
		Stage:      servers.ProgressStage(summary.Stage.String()),
		Summary:    summary.Description(),
		Completed:  summary.Completed,
		Total:      summary.Total,
	}
	if summary.CurrentStep != "" {
		current := summary.CurrentStep
		resp.CurrentStep = &current
	}
	return resp
}
