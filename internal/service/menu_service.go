// internal/service/menu_service.go
package service

import (
    "github.com/piebomber/piebomber-api/internal/model"
    "github.com/piebomber/piebomber-api/internal/repository"
)

type MenuService struct {
    MenuRepo repository.MenuRepositoryInterface
}

// List returns all menu items matching the filters, in store order.
func (s *MenuService) List(f repository.MenuFilter) ([]model.MenuItem, error) {
    return s.MenuRepo.List(f)
}

func (s *MenuService) Get(id int) (*model.MenuItem, error) {
    return s.MenuRepo.GetByID(id)
}
