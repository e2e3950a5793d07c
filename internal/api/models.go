package api

import (
	"github.com/phrazzld/purrfect-pixels/internal/domain"
)

// MaxPromptLength bounds the prompt length, in characters (runes). The
// validate tags below use the same bound.
const MaxPromptLength = 2000

// CreateCatRequest defines the payload for POST /api/cats.
type CreateCatRequest struct {
	Prompt string `json:"prompt" validate:"required,max=2000"`
}

// UpdatePromptRequest defines the payload for PUT /api/prompt. An empty
// prompt clears the draft.
type UpdatePromptRequest struct {
	Prompt string `json:"prompt" validate:"max=2000"`
}

// CatResponse is the JSON representation of one generated cat.
type CatResponse struct {
	ID          string `json:"id"`
	ImageURL    string `json:"image_url"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// CreatedAt is milliseconds since the Unix epoch.
	CreatedAt int64 `json:"created_at"`

	// DownloadFilename is the suggested filename when saving the image.
	DownloadFilename string `json:"download_filename"`

	// ImagePath serves the decoded image bytes.
	ImagePath string `json:"image_path"`
}

// CatListResponse is the response of GET /api/cats.
type CatListResponse struct {
	Cats  []CatResponse `json:"cats"`
	Count int           `json:"count"`
}

// StatusResponse is the response of GET /api/status.
type StatusResponse struct {
	IsLoading bool   `json:"is_loading"`
	Error     string `json:"error,omitempty"`
	Prompt    string `json:"prompt"`
}

func catToResponse(cat *domain.GeneratedCat) CatResponse {
	return CatResponse{
		ID:               cat.ID.String(),
		ImageURL:         cat.ImageURL,
		Name:             cat.Name,
		Description:      cat.Description,
		CreatedAt:        cat.CreatedAt,
		DownloadFilename: cat.DownloadFilename(),
		ImagePath:        "/api/cats/" + cat.ID.String() + "/image",
	}
}

func catsToResponse(cats []*domain.GeneratedCat) CatListResponse {
	resp := CatListResponse{
		Cats:  make([]CatResponse, 0, len(cats)),
		Count: len(cats),
	}
	for _, cat := range cats {
		resp.Cats = append(resp.Cats, catToResponse(cat))
	}
	return resp
}
