package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"commerce/internal/auctionerrors"
	"commerce/internal/models"
	"commerce/internal/repositories"
)

// maxCommentLength is the longest comment body accepted, in characters.
const maxCommentLength = 500

// CommentService handles business logic related to listing comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	listingRepo repositories.ListingRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, listingRepo repositories.ListingRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		listingRepo: listingRepo,
	}
}

// PostComment validates and records a comment on a listing.
func (s *CommentService) PostComment(listingID, commenterID, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, auctionerrors.ErrCommentBodyEmpty
	}
	if utf8.RuneCountInString(body) > maxCommentLength {
		return nil, auctionerrors.ErrCommentBodyTooLong
	}

	if _, err := s.listingRepo.GetByID(listingID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ListingID:   listingID,
		CommenterID: commenterID,
		Body:        body,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to post comment on listing %s: %w", listingID, err)
	}
	return comment, nil
}

// GetCommentsForListing returns a listing's comments, oldest first.
func (s *CommentService) GetCommentsForListing(listingID string) ([]models.Comment, error) {
	if _, err := s.listingRepo.GetByID(listingID); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByListing(listingID)
}
