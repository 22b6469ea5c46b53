package legalapi

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

const documentUploadPath = "documents/upload/"

// DocumentUpload is a case file destined for the document archive.
// Uploads switch from JSON to multipart form encoding; everything
// else about the request (base URL, credentials) is unchanged.
type DocumentUpload struct {
	CaseID   int
	Title    string
	FileName string
	Content  io.Reader
}

// UploadDocument posts a document as a multipart form.
func (c *Client) UploadDocument(ctx context.Context, upload DocumentUpload) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("case_id", strconv.Itoa(upload.CaseID)); err != nil {
		return errors.Wrap(err, "[legalapi.UploadDocument] writing case_id")
	}
	if err := writer.WriteField("title", upload.Title); err != nil {
		return errors.Wrap(err, "[legalapi.UploadDocument] writing title")
	}

	part, err := writer.CreateFormFile("file", upload.FileName)
	if err != nil {
		return errors.Wrap(err, "[legalapi.UploadDocument] creating file part")
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return errors.Wrap(err, "[legalapi.UploadDocument] copying file content")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "[legalapi.UploadDocument] finalising form")
	}

	req, err := c.newRequest(ctx, http.MethodPost, documentUploadPath, &buf)
	if err != nil {
		return err
	}
	req.Header.Set(contentTypeHeader, writer.FormDataContentType())
	return c.send(req, nil)
}
