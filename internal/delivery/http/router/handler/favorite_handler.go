package handler

import (
	"net/http"
	"strconv"

	"shelf/internal/delivery/http/middleware"
	"shelf/internal/delivery/http/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteRequest identifies the book targeted by an add or remove.
type FavoriteRequest struct {
	BookID int64 `json:"bookId" validate:"required,gt=0"`
}

// FavoriteHandler holds dependencies for favorite-related handlers.
type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// List returns the authenticated user's favorites, ordered by book title.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid session")
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved")
}

// Add marks a book as a favorite of the authenticated user. Re-adding an
// existing favorite succeeds with the already stored record.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid session")
	}

	var input *FavoriteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	favorite, err := h.uc.AddFavorite(c.Request().Context(), userID, input.BookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite added")
}

// Remove deletes the authenticated user's favorite for a book and returns
// the removed record. Repeating the remove yields a 404.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid session")
	}

	var input *FavoriteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	removed, err := h.uc.RemoveFavorite(c.Request().Context(), userID, input.BookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, removed, "Favorite removed")
}

// Check reports whether the bookId query parameter names a favorite of the
// authenticated user.
func (h *FavoriteHandler) Check(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid session")
	}

	bookID, err := strconv.ParseInt(c.QueryParam("bookId"), 10, 64)
	if err != nil || bookID <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "bookId must be a positive integer")
	}

	favorited, err := h.uc.IsFavorite(c.Request().Context(), userID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "Favorite state")
}
