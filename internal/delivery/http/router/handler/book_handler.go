package handler

import (
	"net/http"
	"strconv"

	"shelf/internal/delivery/http/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for catalog-related handlers.
type BookHandler struct {
	uc usecase.BookUsecase
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase) *BookHandler {
	return &BookHandler{uc: uc}
}

// List returns the whole catalog ordered by title.
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.uc.ListBooks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Books retrieved")
}

// Get returns a single book by ID.
func (h *BookHandler) Get(c echo.Context) error {
	id, err := bookIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a positive integer")
	}

	book, err := h.uc.GetBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book retrieved")
}

// Create adds a new book to the catalog.
func (h *BookHandler) Create(c echo.Context) error {
	var input *usecase.CreateBookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.CreateBook(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, book, "Book created")
}

// Update applies a partial update to an existing book.
func (h *BookHandler) Update(c echo.Context) error {
	id, err := bookIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a positive integer")
	}

	var input *usecase.UpdateBookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.UpdateBook(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book updated")
}

// Delete removes a book from the catalog and returns the removed record.
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := bookIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a positive integer")
	}

	book, err := h.uc.DeleteBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book deleted")
}

// bookIDParam parses the :id path parameter.
func bookIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid book id")
	}

	return id, nil
}
