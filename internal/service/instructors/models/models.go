package models

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// Request модели

// CreateInstructorRequest запрос на добавление преподавателя
type CreateInstructorRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// UpdateInstructorRequest запрос на изменение данных преподавателя
type UpdateInstructorRequest struct {
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active bool    `json:"active"`
}

// Response модели

// InstructorResponse преподаватель в ответе API
type InstructorResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListInstructorsResponse список преподавателей
type ListInstructorsResponse struct {
	Instructors []*InstructorResponse `json:"instructors"`
	Total       int                   `json:"total"`
}

// FromDomainInstructor конвертирует доменного преподавателя в response
func FromDomainInstructor(instructor *domain.Instructor) *InstructorResponse {
	return &InstructorResponse{
		ID:        instructor.ID,
		Name:      instructor.Name,
		Email:     instructor.Email,
		Phone:     instructor.Phone,
		Active:    instructor.Active,
		CreatedAt: instructor.CreatedAt,
		UpdatedAt: instructor.UpdatedAt,
	}
}

// FromDomainInstructors конвертирует список преподавателей в response
func FromDomainInstructors(instructors []*domain.Instructor) *ListInstructorsResponse {
	responses := make([]*InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		responses = append(responses, FromDomainInstructor(instructor))
	}
	return &ListInstructorsResponse{
		Instructors: responses,
		Total:       len(responses),
	}
}
