package service

import (
	"time"

	"renovation-marketplace-api/internal/entity"
)

func mapUser(u *entity.User) entity.UserOutputModel {
	return entity.UserOutputModel{
		Id:               u.Id.String(),
		Username:         u.Username,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Role:             u.Role,
		Phone:            u.Phone,
		RegistrationDate: u.RegistrationDate,
	}
}

func mapProperty(p *entity.Property) *entity.PropertyOutputModel {
	m := &entity.PropertyOutputModel{
		Id:               p.Id.String(),
		HomeownerId:      p.HomeownerId.String(),
		Title:            p.Title,
		Description:      p.Description,
		Address:          p.Address,
		City:             p.City,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		PlotNumber:       p.PlotNumber,
		PropertyType:     p.PropertyType,
		Size:             p.Size,
		NumberOfFloors:   p.NumberOfFloors,
		NumberOfRooms:    p.NumberOfRooms,
		Condition:        p.Condition,
		WorkAreas:        p.WorkAreas,
		WorkDetails:      p.WorkDetails,
		Status:           p.Status.String(),
		EvaluationReport: p.EvaluationReport,
		CompletionNote:   p.CompletionNote,
		CreatedAt:        p.CreatedAt,
	}
	if p.AssignedContractorId.Valid {
		m.AssignedContractorId = p.AssignedContractorId.UUID.String()
	}
	if p.Rating.Valid {
		rating := p.Rating.Float64
		m.Rating = &rating
	}
	if p.EvaluationDate.Valid {
		m.EvaluationDate = p.EvaluationDate.Time.Format(time.RFC3339)
	}

	return m
}

func mapProperties(properties []entity.Property) []entity.PropertyOutputModel {
	s := make([]entity.PropertyOutputModel, 0)
	for _, property := range properties {
		s = append(s, *mapProperty(&property))
	}

	return s
}

func mapImage(i *entity.PropertyImage) entity.PropertyImageOutputModel {
	return entity.PropertyImageOutputModel{
		Id:          i.Id.String(),
		URL:         i.URL,
		IsThumbnail: i.IsThumbnail,
		Order:       i.Order,
	}
}

func mapImages(images []entity.PropertyImage) []entity.PropertyImageOutputModel {
	s := make([]entity.PropertyImageOutputModel, 0)
	for _, image := range images {
		s = append(s, mapImage(&image))
	}

	return s
}

func mapOffer(o *entity.PriceOffer) *entity.PriceOfferOutputModel {
	return &entity.PriceOfferOutputModel{
		Id:            o.Id.String(),
		PropertyId:    o.PropertyId.String(),
		PropertyTitle: o.PropertyTitle,
		ContractorId:  o.ContractorId.String(),
		Amount:        o.Amount,
		Description:   o.Description,
		Status:        o.Status,
		ProposedAt:    o.ProposedAt,
	}
}

func mapOffers(offers []entity.PriceOffer) []entity.PriceOfferOutputModel {
	s := make([]entity.PriceOfferOutputModel, 0)
	for _, offer := range offers {
		s = append(s, *mapOffer(&offer))
	}

	return s
}

func mapContractor(c *entity.Contractor) *entity.ContractorOutputModel {
	return &entity.ContractorOutputModel{
		Id:              c.Id.String(),
		UserId:          c.UserId.String(),
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Specialization:  c.Specialization,
		ExperienceYears: c.ExperienceYears,
		LicenseNumber:   c.LicenseNumber,
	}
}

func mapContractors(contractors []entity.Contractor) []entity.ContractorOutputModel {
	s := make([]entity.ContractorOutputModel, 0)
	for _, contractor := range contractors {
		s = append(s, *mapContractor(&contractor))
	}

	return s
}

func mapEvaluationRequests(requests []entity.EvaluationRequest) []entity.EvaluationRequestOutputModel {
	s := make([]entity.EvaluationRequestOutputModel, 0)
	for _, request := range requests {
		s = append(s, entity.EvaluationRequestOutputModel{
			Id:         request.Id.String(),
			PropertyId: request.PropertyId.String(),
			AssignedAt: request.AssignedAt,
			Completed:  request.Completed,
		})
	}

	return s
}
