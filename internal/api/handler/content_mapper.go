package handler

import "github.com/atelier-interiors/studio-cms/internal/core/domain"

// Request → domain mapping. Optional flags default to active.

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func (r founderRequest) toDomain() domain.Founder {
	return domain.Founder{
		Name:               r.Name,
		Title:              r.Title,
		Description:        r.Description,
		PhotoURL:           r.PhotoURL,
		ProjectsCompleted:  r.ProjectsCompleted,
		YearsOfExperience:  r.YearsOfExperience,
		ClientSatisfaction: r.ClientSatisfaction,
	}
}

func (r portfolioRequest) toDomain() domain.PortfolioItem {
	return domain.PortfolioItem{
		Title:       r.Title,
		Category:    r.Category,
		Image:       r.Image,
		Description: r.Description,
		Order:       r.Order,
		IsActive:    boolOr(r.IsActive, true),
	}
}

func (r videoRequest) toDomain() domain.Video {
	return domain.Video{
		Title:        r.Title,
		Description:  r.Description,
		ThumbnailURL: r.ThumbnailURL,
		VideoURL:     r.VideoURL,
		Order:        r.Order,
		IsActive:     boolOr(r.IsActive, true),
	}
}

func (r testimonialRequest) toDomain() domain.Testimonial {
	return domain.Testimonial{
		Name:     r.Name,
		Location: r.Location,
		Project:  r.Project,
		Rating:   r.Rating,
		Review:   r.Review,
		Image:    r.Image,
		Order:    r.Order,
		IsActive: boolOr(r.IsActive, true),
	}
}

func (r statisticsRequest) toDomain() domain.Statistics {
	st := domain.DefaultStatistics()
	if r.HappyClients != nil {
		st.HappyClients = *r.HappyClients
	}
	if r.AverageRating != nil {
		st.AverageRating = *r.AverageRating
	}
	if r.Satisfaction != nil {
		st.Satisfaction = *r.Satisfaction
	}
	if r.AwardsWon != nil {
		st.AwardsWon = *r.AwardsWon
	}
	st.IsActive = boolOr(r.IsActive, true)
	st.DisplayOrder = r.DisplayOrder
	return st
}
