package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eventtalk/formbuilder/internal/builder"
	"github.com/eventtalk/formbuilder/internal/schema"
)

// FormPayload is the request body for create/update form calls.
type FormPayload struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Schema      schema.Schema `json:"schema"`
	Status      string        `json:"status"`
	UserID      string        `json:"userId"`
}

// PayloadFromForm builds the wire payload from a store snapshot.
func PayloadFromForm(f builder.Form, userID string) FormPayload {
	name := f.Name
	if name == "" {
		name = "Untitled Form"
	}
	return FormPayload{
		Name:        name,
		Description: f.Description,
		Schema:      schema.Schema{Fields: f.Fields},
		Status:      builder.StatusDraft,
		UserID:      userID,
	}
}

// RemoteForm is the backend's form document.
type RemoteForm struct {
	ID           DocID         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Schema       schema.Schema `json:"schema"`
	Status       string        `json:"status"`
	PublishedURL string        `json:"publishedUrl"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

// ToForm converts a fetched document into editor state.
func (r RemoteForm) ToForm() builder.Form {
	return builder.Form{
		ID:           string(r.ID),
		Name:         r.Name,
		Description:  r.Description,
		Fields:       r.Schema.Fields,
		Status:       r.Status,
		PublishedURL: r.PublishedURL,
	}
}

// FetchForm retrieves one form by id; ErrNotFound when it doesn't exist.
func (c *Client) FetchForm(ctx context.Context, sess *Session, id string) (*RemoteForm, error) {
	data, err := c.doJSON(ctx, sess, http.MethodGet, "/api/forms/"+id, nil)
	if err != nil {
		return nil, err
	}
	var form RemoteForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("malformed form document: %v", err)
	}
	return &form, nil
}

// ListForms retrieves the caller's form summaries.
func (c *Client) ListForms(ctx context.Context, sess *Session) ([]RemoteForm, error) {
	data, err := c.doJSON(ctx, sess, http.MethodGet, "/api/forms", nil)
	if err != nil {
		return nil, err
	}
	var forms []RemoteForm
	if err := json.Unmarshal(data, &forms); err != nil {
		return nil, fmt.Errorf("malformed form list: %v", err)
	}
	return forms, nil
}

// CreateForm persists a new draft and returns the server-assigned id,
// whatever shape the backend reports it in. A success response with no
// extractable id is an explicit failure, not a silent orphan.
func (c *Client) CreateForm(ctx context.Context, sess *Session, payload FormPayload) (string, error) {
	data, err := c.doJSON(ctx, sess, http.MethodPost, "/api/forms", payload)
	if err != nil {
		return "", err
	}
	return ExtractID(data)
}

// UpdateForm overwrites an existing form document.
func (c *Client) UpdateForm(ctx context.Context, sess *Session, id string, payload FormPayload) error {
	_, err := c.doJSON(ctx, sess, http.MethodPut, "/api/forms/"+id, payload)
	return err
}

// DeleteForm removes a form document.
func (c *Client) DeleteForm(ctx context.Context, sess *Session, id string) error {
	_, err := c.doJSON(ctx, sess, http.MethodDelete, "/api/forms/"+id, nil)
	return err
}

// PublishForm flips the form to published and returns its public URL. The
// caller only updates local status after this succeeds.
func (c *Client) PublishForm(ctx context.Context, sess *Session, id string) (string, error) {
	data, err := c.doJSON(ctx, sess, http.MethodPost, "/api/forms/"+id+"/publish", nil)
	if err != nil {
		return "", err
	}
	var out struct {
		PublishedURL string `json:"publishedUrl"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("malformed publish response: %v", err)
	}
	return out.PublishedURL, nil
}

// FetchPublicForm retrieves a published form without authentication.
func (c *Client) FetchPublicForm(ctx context.Context, id string) (*RemoteForm, error) {
	data, err := c.doJSON(ctx, nil, http.MethodGet, "/api/public-forms/"+id, nil)
	if err != nil {
		return nil, err
	}
	var form RemoteForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("malformed form document: %v", err)
	}
	return &form, nil
}

// CurrentUser validates the session token and returns the profile.
func (c *Client) CurrentUser(ctx context.Context, sess *Session) (*User, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	data, err := c.doJSON(ctx, sess, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	user, err := parseUser(data)
	if err != nil {
		return nil, err
	}
	sess.User = user
	return user, nil
}

// parseUser extracts the profile, tolerating the _id document shape.
func parseUser(data []byte) (*User, error) {
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("malformed user document: %v", err)
	}
	if user.ID == "" {
		if id, err := ExtractID(data); err == nil {
			user.ID = DocID(id)
		}
	}
	return &user, nil
}

// Login exchanges credentials for a token+user pair and initializes the
// session.
func (c *Client) Login(ctx context.Context, sess *Session, username, password string) error {
	data, err := c.doJSON(ctx, nil, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}
	return applyAuthResponse(sess, data)
}

// Register creates an account and initializes the session.
func (c *Client) Register(ctx context.Context, sess *Session, username, email, password string) error {
	data, err := c.doJSON(ctx, nil, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	return applyAuthResponse(sess, data)
}

func applyAuthResponse(sess *Session, data []byte) error {
	var out struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("malformed auth response: %v", err)
	}
	if out.Token == "" {
		return fmt.Errorf("auth response missing token")
	}
	sess.Token = out.Token
	if len(out.User) > 0 {
		user, err := parseUser(out.User)
		if err != nil {
			return err
		}
		sess.User = user
	}
	return nil
}
