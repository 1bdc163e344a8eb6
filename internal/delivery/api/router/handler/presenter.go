package handler

import (
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/feed"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. The password hash never
// leaves the service.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	IsPremium bool        `json:"isPremium"`
	CreatedAt time.Time   `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PostResponse struct {
	ID           uuid.UUID         `json:"id"`
	AuthorID     uuid.UUID         `json:"authorId"`
	ShopID       *uuid.UUID        `json:"shopId,omitempty"`
	CategoryID   uuid.UUID         `json:"categoryId"`
	Category     *CategoryResponse `json:"category,omitempty"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Location     string            `json:"location"`
	ImageURL     string            `json:"imageUrl"`
	PriceMin     *int              `json:"priceMin,omitempty"`
	PriceMax     *int              `json:"priceMax,omitempty"`
	Status       entity.PostStatus `json:"status"`
	IsPremium    bool              `json:"isPremium"`
	RejectReason *string           `json:"rejectReason,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// RankedPostResponse is a post with its interaction signals.
type RankedPostResponse struct {
	PostResponse
	AvgRating    float64 `json:"avgRating"`
	Score        int     `json:"score"`
	CommentCount int     `json:"commentCount"`
	VoteCount    int     `json:"voteCount"`
}

type CommentAuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CommentResponse struct {
	ID        uuid.UUID              `json:"id"`
	PostID    uuid.UUID              `json:"postId"`
	UserID    uuid.UUID              `json:"userId"`
	Author    *CommentAuthorResponse `json:"author,omitempty"`
	Content   string                 `json:"content"`
	Rating    int                    `json:"rating"`
	CreatedAt time.Time              `json:"createdAt"`
}

type VoteResponse struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	PostID    uuid.UUID        `json:"postId"`
	Value     entity.VoteValue `json:"value"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type ShopResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ShopDetailResponse is a shop with its approved posts, newest first.
type ShopDetailResponse struct {
	ShopResponse
	Posts []*PostResponse `json:"posts"`
}

type SubscriptionResponse struct {
	ID            uuid.UUID                 `json:"id"`
	UserID        uuid.UUID                 `json:"userId"`
	Provider      entity.PaymentProvider    `json:"provider"`
	Status        entity.SubscriptionStatus `json:"status"`
	TransactionID *string                   `json:"transactionId,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

type SubscriptionStatusResponse struct {
	IsPremium    bool                  `json:"isPremium"`
	Subscription *SubscriptionResponse `json:"subscription"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsPremium: u.IsPremium,
		CreatedAt: u.CreatedAt,
	}
}

func toCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}

	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}

	return out
}

func toPostResponse(p *entity.Post) *PostResponse {
	if p == nil {
		return nil
	}

	return &PostResponse{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		ShopID:       p.ShopID,
		CategoryID:   p.CategoryID,
		Category:     toCategoryResponse(p.Category),
		Title:        p.Title,
		Description:  p.Description,
		Location:     p.Location,
		ImageURL:     p.ImageURL,
		PriceMin:     p.PriceMin,
		PriceMax:     p.PriceMax,
		Status:       p.Status,
		IsPremium:    p.IsPremium,
		RejectReason: p.RejectReason,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPostResponses(posts []*entity.Post) []*PostResponse {
	out := make([]*PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}

	return out
}

func toRankedPostResponse(p *feed.RankedPost) *RankedPostResponse {
	return &RankedPostResponse{
		PostResponse: *toPostResponse(p.Post),
		AvgRating:    p.AvgRating,
		Score:        p.Score,
		CommentCount: p.CommentCount,
		VoteCount:    p.VoteCount,
	}
}

func toRankedPostResponses(posts []*feed.RankedPost) []*RankedPostResponse {
	out := make([]*RankedPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toRankedPostResponse(p))
	}

	return out
}

func toCommentResponse(c *entity.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		Rating:    c.Rating,
		CreatedAt: c.CreatedAt,
	}
	if c.Author != nil {
		resp.Author = &CommentAuthorResponse{ID: c.Author.ID, Name: c.Author.Name}
	}

	return resp
}

func toCommentResponses(comments []*entity.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}

	return out
}

func toVoteResponse(v *entity.Vote) *VoteResponse {
	return &VoteResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		PostID:    v.PostID,
		Value:     v.Value,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toShopResponse(s *entity.Shop) *ShopResponse {
	return &ShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		OwnerID:     s.OwnerID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toShopResponses(shops []*entity.Shop) []*ShopResponse {
	out := make([]*ShopResponse, 0, len(shops))
	for _, s := range shops {
		out = append(out, toShopResponse(s))
	}

	return out
}

func toSubscriptionResponse(s *entity.Subscription) *SubscriptionResponse {
	if s == nil {
		return nil
	}

	return &SubscriptionResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Provider:      s.Provider,
		Status:        s.Status,
		TransactionID: s.TransactionID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
