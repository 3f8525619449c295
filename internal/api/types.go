package api

// GenerateRequest is the POST /generate body.
type GenerateRequest struct {
	Link string `json:"link"`
}

// GenerateResponse is the success payload: the video title and the
// synthesized article.
type GenerateResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ErrorResponse is the error payload for every non-200 response.
type ErrorResponse struct {
	Error string `json:"error"`
}
