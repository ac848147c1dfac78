// internal/service/event_service.go
package service

import (
    "github.com/piebomber/piebomber-api/internal/model"
    "github.com/piebomber/piebomber-api/internal/repository"
)

type EventService struct {
    EventRepo repository.EventRepositoryInterface
}

// List returns all events matching the filters, in store order.
func (s *EventService) List(f repository.EventFilter) ([]model.Event, error) {
    return s.EventRepo.List(f)
}

func (s *EventService) Get(id int) (*model.Event, error) {
    return s.EventRepo.GetByID(id)
}
