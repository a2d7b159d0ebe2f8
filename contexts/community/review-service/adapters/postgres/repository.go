package postgresadapter

import (
	"context"
	"time"

	"gorm.io/gorm"

	"toolhub/contexts/community/review-service/ports"
)

type reviewModel struct {
	ReviewID  string    `gorm:"column:review_id;primaryKey"`
	UserEmail string    `gorm:"column:user_email;index"`
	UserName  string    `gorm:"column:user_name"`
	Rating    int       `gorm:"column:rating"`
	Comment   string    `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string {
	return "reviews"
}

func (m reviewModel) toEntity() ports.Review {
	return ports.Review{
		ReviewID:  m.ReviewID,
		UserEmail: m.UserEmail,
		UserName:  m.UserName,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(ctx context.Context, review ports.Review, now time.Time) (ports.Review, error) {
	row := reviewModel{
		ReviewID:  review.ReviewID,
		UserEmail: review.UserEmail,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: now.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return ports.Review{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]ports.Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC, review_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	reviews := make([]ports.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.toEntity())
	}
	return reviews, nil
}

var _ ports.Repository = (*Repository)(nil)
