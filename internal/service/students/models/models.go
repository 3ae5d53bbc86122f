package models

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// Request модели

// CreateStudentRequest запрос на добавление ученика
type CreateStudentRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Level *string `json:"level,omitempty"`
}

// UpdateStudentRequest запрос на изменение данных ученика
type UpdateStudentRequest struct {
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Level  *string `json:"level,omitempty"`
	Active bool    `json:"active"`
}

// Response модели

// StudentResponse ученик в ответе API
type StudentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Level     *string   `json:"level,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListStudentsResponse список учеников
type ListStudentsResponse struct {
	Students []*StudentResponse `json:"students"`
	Total    int                `json:"total"`
}

// FromDomainStudent конвертирует доменного ученика в response
func FromDomainStudent(student *domain.Student) *StudentResponse {
	return &StudentResponse{
		ID:        student.ID,
		Name:      student.Name,
		Email:     student.Email,
		Phone:     student.Phone,
		Level:     student.Level,
		Active:    student.Active,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
}

// FromDomainStudents конвертирует список учеников в response
func FromDomainStudents(students []*domain.Student) *ListStudentsResponse {
	responses := make([]*StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, FromDomainStudent(student))
	}
	return &ListStudentsResponse{
		Students: responses,
		Total:    len(responses),
	}
}
