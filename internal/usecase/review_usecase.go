package usecase

import (
	"context"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	"go-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, doctorID uuid.UUID, reviewerID *uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetDoctorReviews(ctx context.Context, doctorID uuid.UUID) (*dto.ReviewListResponse, error)
}

type reviewUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	reviewRepo   repository.ReviewRepository
	auditService service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	reviewRepo repository.ReviewRepository,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		reviewRepo:   reviewRepo,
		auditService: auditService,
	}
}

// CreateReview records a rating for a doctor. The reviewer is optional so
// anonymized reviews survive account deletion.
func (u *reviewUsecase) CreateReview(ctx context.Context, doctorID uuid.UUID, reviewerID *uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	review := &entity.DoctorReview{
		DoctorID:   doctorID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := u.reviewRepo.Create(tx, review); err != nil {
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	// Audit log - review created
	if err := u.auditService.LogCreate(ctx, tx, reviewerID, entity.AuditActionReviewCreate, "review", doctorID.String(), converter.ReviewToResponse(review)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) GetDoctorReviews(ctx context.Context, doctorID uuid.UUID) (*dto.ReviewListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	reviews, err := u.reviewRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find reviews: %+v", err)
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}, nil
}
