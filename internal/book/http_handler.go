package book

import (
	"errors"
	"io"
	"net/http"

	"booksapi/internal/errs"
	"booksapi/internal/httpx"
)

type listResponse struct {
	Books []Book `json:"books"`
}

type bookResponse struct {
	Book Book `json:"book"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {object} listResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONErrorFrom(w, r, err)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, listResponse{Books: books})
}

// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} bookResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		httpx.JSONErrorFrom(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{Book: b})
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} bookResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBody(r, CreateSchema)
	if err != nil {
		httpx.JSONErrorFrom(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		httpx.JSONErrorFrom(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, bookResponse{Book: created})
}

// @Summary Replace book
// @Tags books
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} bookResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBody(r, UpdateSchema)
	if err != nil {
		httpx.JSONErrorFrom(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), r.PathValue("isbn"), input)
	if err != nil {
		httpx.JSONErrorFrom(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{Book: updated})
}

// @Summary Delete book
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} messageResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("isbn")); err != nil {
		httpx.JSONErrorFrom(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, messageResponse{Message: "Book deleted"})
}

func decodeBody(r *http.Request, schema Schema) (Book, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return Book{}, errs.NewPayloadTooLargeError(err)
		}
		return Book{}, errs.NewBadRequestError("could not read request body", err)
	}
	return schema.Decode(body)
}
