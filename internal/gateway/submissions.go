package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
)

// Submission is one recorded response against a published form.
type Submission struct {
	ID        DocID                  `json:"id"`
	FormID    DocID                  `json:"form_id"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt string                 `json:"created_at"`
}

// FileValue is an uploaded file accompanying a submission.
type FileValue struct {
	FieldID  string
	FileName string
	FileType string
	Content  []byte
}

// SubmitForm posts a public submission as multipart form data: plain values
// JSON-encoded under data[fieldId], files under files[fieldId] with
// companion fileData[fieldId] metadata. Required-field checks happen before
// this is called; the gateway only ships what it is given.
func (c *Client) SubmitForm(ctx context.Context, formID string, values map[string]interface{}, files []FileValue) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for fieldID, value := range values {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode value for field %s: %v", fieldID, err)
		}
		if err := writer.WriteField(fmt.Sprintf("data[%s]", fieldID), string(encoded)); err != nil {
			return err
		}
	}

	for _, f := range files {
		part, err := writer.CreateFormFile(fmt.Sprintf("files[%s]", f.FieldID), f.FileName)
		if err != nil {
			return err
		}
		if _, err := part.Write(f.Content); err != nil {
			return err
		}
		meta, _ := json.Marshal(map[string]string{
			"fieldId":  f.FieldID,
			"fileName": f.FileName,
			"fileType": f.FileType,
		})
		if err := writer.WriteField(fmt.Sprintf("fileData[%s]", f.FieldID), string(meta)); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/forms/"+formID+"/submit", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	_, err = c.decode(resp, nil)
	return err
}

// FetchSubmissions lists a form's submissions, newest first.
func (c *Client) FetchSubmissions(ctx context.Context, sess *Session, formID string) ([]Submission, error) {
	data, err := c.doJSON(ctx, sess, http.MethodGet, "/api/forms/"+formID+"/submissions", nil)
	if err != nil {
		return nil, err
	}
	var subs []Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("malformed submission list: %v", err)
	}
	return subs, nil
}

// DeleteSubmission removes one submission.
func (c *Client) DeleteSubmission(ctx context.Context, sess *Session, id string) error {
	_, err := c.doJSON(ctx, sess, http.MethodDelete, "/api/submissions/"+id, nil)
	return err
}
