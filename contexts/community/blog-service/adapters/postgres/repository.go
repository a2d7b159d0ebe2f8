package postgresadapter

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domainerrors "toolhub/contexts/community/blog-service/domain/errors"
	"toolhub/contexts/community/blog-service/ports"
)

type postModel struct {
	PostID      string    `gorm:"column:post_id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Author      string    `gorm:"column:author"`
	Summary     string    `gorm:"column:summary"`
	Content     string    `gorm:"column:content"`
	ImageURL    string    `gorm:"column:image_url"`
	PublishedAt time.Time `gorm:"column:published_at"`
}

func (postModel) TableName() string {
	return "blog_posts"
}

func (m postModel) toEntity() ports.Post {
	return ports.Post{
		PostID:      m.PostID,
		Title:       m.Title,
		Author:      m.Author,
		Summary:     m.Summary,
		Content:     m.Content,
		ImageURL:    m.ImageURL,
		PublishedAt: m.PublishedAt,
	}
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, post ports.Post, now time.Time) (ports.Post, error) {
	row := postModel{
		PostID:      post.PostID,
		Title:       post.Title,
		Author:      post.Author,
		Summary:     post.Summary,
		Content:     post.Content,
		ImageURL:    post.ImageURL,
		PublishedAt: now.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return ports.Post{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) Get(ctx context.Context, postID string) (ports.Post, error) {
	var row postModel
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.Post{}, domainerrors.ErrPostNotFound
	}
	if err != nil {
		return ports.Post{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]ports.Post, error) {
	var rows []postModel
	err := r.db.WithContext(ctx).
		Order("published_at DESC, post_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	posts := make([]ports.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toEntity())
	}
	return posts, nil
}

var _ ports.Repository = (*Repository)(nil)
