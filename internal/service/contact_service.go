package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/repository"
)

// ContactService manages external people, typically property owners.
type ContactService struct {
	contacts *repository.ContactRepository
	logger   *zap.Logger
}

func NewContactService(contacts *repository.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{contacts: contacts, logger: logger}
}

func (s *ContactService) Create(ctx context.Context, req *domain.CreateContactRequest) (*domain.Contact, error) {
	tenantID, err := repository.TenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		TenantID: tenantID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.logger.Info("contact created", zap.String("contact_id", contact.ID.String()))
	return contact, nil
}

func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) List(ctx context.Context, page, pageSize int, search string) ([]domain.Contact, int64, error) {
	return s.contacts.List(ctx, page, pageSize, search)
}
