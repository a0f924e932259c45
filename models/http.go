package models

// DocumentRequest is the body of POST /documents and PUT /documents/{id}.
type DocumentRequest struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// DocumentListResponse is the body of GET /documents.
type DocumentListResponse struct {
	Documents []Document `json:"documents"`
}
