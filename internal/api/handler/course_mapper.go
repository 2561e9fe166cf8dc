package handler

import (
	"github.com/smartlms/elearning-system/internal/core/domain"
)

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		VideoLink:   c.VideoLink,
		Thumbnail:   c.Thumbnail,
		Rating:      c.Rating,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
	}
}

func toListCoursesResponse(courses []*domain.Course) listCoursesResponse {
	data := make([]courseResponse, 0, len(courses))
	for _, c := range courses {
		data = append(data, toCourseResponse(c))
	}
	return listCoursesResponse{Data: data, Total: len(data)}
}
