package usecase

import (
	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
)

// Mapeo entidad → DTO de respuesta. El núcleo nunca devuelve entidades crudas.

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	out := dto.CustomerResponse{
		ID:          c.ID,
		Kind:        string(c.Kind()),
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		Notes:       c.Notes,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	switch s := c.Subtype.(type) {
	case entity.IndividualDetails:
		out.Individual = &dto.CustomerIndividualPayload{
			FirstName: s.FirstName,
			LastName:  s.LastName,
		}
	case entity.CompanyDetails:
		out.Company = &dto.CustomerCompanyPayload{
			CompanyName:   s.CompanyName,
			ContactPerson: s.ContactPerson,
			Position:      s.Position,
		}
	}
	return out
}

// customerDisplayName nombre presentable del cliente según su subtipo.
func customerDisplayName(c *entity.Customer) string {
	switch s := c.Subtype.(type) {
	case entity.IndividualDetails:
		return s.FirstName + " " + s.LastName
	case entity.CompanyDetails:
		return s.CompanyName
	}
	return ""
}

func toVehicleResponse(v *entity.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:          v.ID,
		PlateNumber: v.PlateNumber,
		VIN:         v.VIN,
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Color:       v.Color,
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toOwnershipResponse(o *entity.VehicleOwnership) dto.OwnershipResponse {
	return dto.OwnershipResponse{
		ID:                 o.ID,
		VehicleID:          o.VehicleID,
		CustomerID:         o.CustomerID,
		IsCurrentOwner:     o.IsCurrentOwner,
		OwnershipStartDate: o.OwnershipStartDate,
		OwnershipEndDate:   o.OwnershipEndDate,
		Notes:              o.Notes,
		RegisteredAt:       o.RegisteredAt,
	}
}

func toTechnicianResponse(t *entity.Technician) dto.TechnicianResponse {
	return dto.TechnicianResponse{
		ID:             t.ID,
		FullName:       t.FullName,
		PhoneNumber:    t.PhoneNumber,
		Specialization: t.Specialization,
		Status:         string(t.Status),
		RegisteredAt:   t.RegisteredAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toJobOrderResponse(jo *entity.JobOrder, c *entity.Customer, v *entity.Vehicle, t *entity.Technician) dto.JobOrderResponse {
	out := dto.JobOrderResponse{
		ID:             jo.ID,
		JobOrderNumber: jo.JobOrderNumber,
		Status:         string(jo.Status),
		CreatedAt:      jo.CreatedAt,
		UpdatedAt:      jo.UpdatedAt,
	}
	if c != nil {
		out.Customer = &dto.JobOrderCustomerSummary{
			ID:          c.ID,
			Kind:        string(c.Kind()),
			DisplayName: customerDisplayName(c),
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
		}
	}
	if v != nil {
		out.Vehicle = &dto.JobOrderVehicleSummary{
			ID:          v.ID,
			PlateNumber: v.PlateNumber,
			Make:        v.Make,
			Model:       v.Model,
			Year:        v.Year,
		}
	}
	if t != nil {
		out.Technician = &dto.JobOrderTechnicianSummary{
			ID:       t.ID,
			FullName: t.FullName,
		}
	}
	return out
}

func toIssueResponse(i *entity.ReportedIssue) dto.ReportedIssueResponse {
	return dto.ReportedIssueResponse{
		ID:          i.ID,
		JobOrderID:  i.JobOrderID,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toFindingResponse(f *entity.InspectionFinding) dto.FindingResponse {
	return dto.FindingResponse{
		ID:             f.ID,
		JobOrderID:     f.JobOrderID,
		Description:    f.Description,
		Recommendation: f.Recommendation,
		Severity:       string(f.Severity),
		IsResolved:     f.IsResolved,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}
