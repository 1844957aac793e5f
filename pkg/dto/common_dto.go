package dto

import "io"

// UploadFile is a multipart file handed from a handler to a service.
type UploadFile struct {
	Reader   io.Reader
	FileName string
}

// FileResponse is a rendered document ready to be sent as a download.
type FileResponse struct {
	FileBytes   []byte `json:"-"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
