// Package editor orchestrates the form builder: it owns the definition
// store, talks to the backend through the gateway, and reports every outcome
// through a Notifier. Failed requests never partially overwrite the
// in-memory form.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/eventtalk/formbuilder/internal/builder"
	"github.com/eventtalk/formbuilder/internal/gateway"
)

const defaultFormName = "Untitled Form"

var (
	ErrNameRequired    = errors.New("form name is required")
	ErrNoFields        = errors.New("form has no fields")
	ErrRequestInFlight = errors.New("a request for this form is already in flight")
)

type Editor struct {
	mu       sync.Mutex
	store    *builder.Builder
	client   *gateway.Client
	session  *gateway.Session
	notifier Notifier

	// inFlight gives at-most-one-outstanding-request semantics per editor:
	// the triggering actions stay disabled while a save or publish is out.
	inFlight atomic.Bool
}

func New(client *gateway.Client, session *gateway.Session, notifier Notifier) *Editor {
	if notifier == nil {
		notifier = &NoticeLog{}
	}
	return &Editor{
		store:    builder.New(),
		client:   client,
		session:  session,
		notifier: notifier,
	}
}

// Do runs a synchronous store mutation or read. Async completion callbacks
// go through the same lock, so no reader ever observes torn state.
func (e *Editor) Do(fn func(*builder.Builder)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.store)
}

// Snapshot returns a deep copy of the current form.
func (e *Editor) Snapshot() builder.Form {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Snapshot()
}

// Load fetches an existing form into the editor.
func (e *Editor) Load(ctx context.Context, id string) error {
	remote, err := e.client.FetchForm(ctx, e.session, id)
	if err != nil {
		e.notifier.Notify(Notice{Level: LevelError, Title: "Error",
			Message: fmt.Sprintf("Failed to load form: %v", err)})
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Load(remote.ToForm())
	return nil
}

// validate runs the client-side checks that block a save or publish before
// any network call is made.
func (e *Editor) validate(form builder.Form, action string) error {
	if form.Name == "" || form.Name == defaultFormName {
		e.notifier.Notify(Notice{Level: LevelWarning, Title: "Form Name Required",
			Message: fmt.Sprintf("Please add a name to your form before %s.", action)})
		return ErrNameRequired
	}
	if len(form.Fields) == 0 {
		e.notifier.Notify(Notice{Level: LevelWarning, Title: "Warning",
			Message: fmt.Sprintf("Please add at least one field to your form before %s.", action)})
		return ErrNoFields
	}
	return nil
}

func (e *Editor) acquire() error {
	if !e.inFlight.CompareAndSwap(false, true) {
		e.notifier.Notify(Notice{Level: LevelWarning, Title: "Please wait",
			Message: "A save is already in progress."})
		return ErrRequestInFlight
	}
	return nil
}

// SaveDraft validates the form, then issues exactly one create-or-update
// call. On a create, the server-assigned id is recorded; a success response
// with no extractable id is a reported failure.
func (e *Editor) SaveDraft(ctx context.Context) error {
	form := e.Snapshot()
	if err := e.validate(form, "saving"); err != nil {
		return err
	}
	if err := e.acquire(); err != nil {
		return err
	}
	defer e.inFlight.Store(false)

	user, err := e.client.CurrentUser(ctx, e.session)
	if err != nil {
		e.notifyAuthError(err)
		return err
	}

	payload := gateway.PayloadFromForm(form, string(user.ID))
	if form.ID != "" {
		if err := e.client.UpdateForm(ctx, e.session, form.ID, payload); err != nil {
			e.notifySaveError(err)
			return err
		}
		e.notifier.Notify(Notice{Level: LevelSuccess, Title: "Success",
			Message: "Form saved as draft successfully"})
		return nil
	}

	newID, err := e.client.CreateForm(ctx, e.session, payload)
	if err != nil {
		e.notifySaveError(err)
		return err
	}
	e.Do(func(b *builder.Builder) { b.SetID(newID) })
	e.notifier.Notify(Notice{Level: LevelSuccess, Title: "Success",
		Message: "Form created and saved as draft"})
	return nil
}

// Publish saves the draft (create or update) and then publishes it, in that
// order. Local status flips to published only after the publish call
// succeeds. Publishing an already-published form re-confirms status and URL.
func (e *Editor) Publish(ctx context.Context) error {
	form := e.Snapshot()
	if err := e.validate(form, "publishing"); err != nil {
		return err
	}
	if err := e.acquire(); err != nil {
		return err
	}
	defer e.inFlight.Store(false)

	user, err := e.client.CurrentUser(ctx, e.session)
	if err != nil {
		e.notifyAuthError(err)
		return err
	}

	payload := gateway.PayloadFromForm(form, string(user.ID))
	formID := form.ID
	if formID == "" {
		newID, err := e.client.CreateForm(ctx, e.session, payload)
		if err != nil {
			e.notifyPublishError(err)
			return err
		}
		formID = newID
		e.Do(func(b *builder.Builder) { b.SetID(newID) })
	} else {
		if err := e.client.UpdateForm(ctx, e.session, formID, payload); err != nil {
			e.notifyPublishError(err)
			return err
		}
	}

	publishedURL, err := e.client.PublishForm(ctx, e.session, formID)
	if err != nil {
		e.notifyPublishError(err)
		return err
	}

	e.Do(func(b *builder.Builder) {
		b.MarkPublished(publishedURL)
		b.ShowPublishModal = true
	})
	e.notifier.Notify(Notice{Level: LevelSuccess, Title: "Success",
		Message: "Form published successfully"})
	return nil
}

func (e *Editor) notifyAuthError(err error) {
	if errors.Is(err, gateway.ErrNotAuthenticated) {
		e.notifier.Notify(Notice{Level: LevelError, Title: "Not authenticated",
			Message: "Please log in again to continue."})
		return
	}
	e.notifier.Notify(Notice{Level: LevelError, Title: "Error",
		Message: fmt.Sprintf("Authentication failed: %v", err)})
}

func (e *Editor) notifySaveError(err error) {
	e.notifier.Notify(Notice{Level: LevelError, Title: "Error",
		Message: fmt.Sprintf("Failed to save form: %v", err)})
}

func (e *Editor) notifyPublishError(err error) {
	e.notifier.Notify(Notice{Level: LevelError, Title: "Error",
		Message: fmt.Sprintf("Failed to publish form: %v", err)})
}
