package market

import (
	"bytes"
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"schoolhub/internal/api"
	"schoolhub/internal/session"
)

// ValidationMessage is shown when a required field is missing; no request
// is sent in that case.
const ValidationMessage = "please fill all required fields"

// ErrValidation rejects a draft locally, before any network call.
var ErrValidation = errors.New(ValidationMessage)

// Draft holds the create-product form fields as typed. Price and
// DiscountPrice stay text until the backend parses them.
type Draft struct {
	Title         string
	Description   string
	Price         string
	DiscountPrice string // Optional
	CategoryID    int    // 0 means not selected
	ImageName     string
	Image         []byte // Raw image bytes; nil means not chosen
}

// CreateForm is the create-product screen state.
type CreateForm struct {
	backend Backend
	log     logrus.FieldLogger
	sess    session.Session

	Draft      Draft
	categories []api.MarketCategory
	Busy       bool   // Cleared on every path out of Submit
	Message    string // Validation or server message
	closed     bool
}

// NewCreateForm builds the create-product view-model.
func NewCreateForm(backend Backend, sess session.Session, log logrus.FieldLogger) *CreateForm {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CreateForm{backend: backend, sess: sess, log: log}
}

// LoadCategories fills the category picker.
func (f *CreateForm) LoadCategories(ctx context.Context) {
	f.Busy = true
	defer func() { f.Busy = false }()
	env, err := f.backend.MarketCategories(ctx)
	if f.closed {
		return
	}
	if err != nil {
		f.Message = "failed to load categories"
		f.log.WithField("error", err.Error()).Warn("Category load failed")
		return
	}
	if !env.OK() || env.Data == nil {
		f.Message = "failed to load categories"
		return
	}
	f.categories = *env.Data
}

// Categories returns the picker options.
func (f *CreateForm) Categories() []api.MarketCategory {
	return f.categories
}

// Validate rejects a draft missing any required field. Description and
// discount price are the only optional fields.
func (f *CreateForm) Validate() error {
	d := f.Draft
	if d.Title == "" || d.Price == "" || d.CategoryID == 0 || len(d.Image) == 0 {
		return ErrValidation
	}
	return nil
}

// Submit validates the draft and uploads it. On success it returns the
// category id the caller should navigate back to (the next screen's own
// fetch picks up the new product; nothing is patched locally). On failure
// the server's message, or a generic one, lands in Message and the form
// stays editable. Busy is always cleared.
func (f *CreateForm) Submit(ctx context.Context) (int, error) {
	if err := f.Validate(); err != nil {
		f.Message = ValidationMessage
		return 0, err // Zero network calls on a bad draft
	}
	f.Busy = true
	defer func() { f.Busy = false }()

	env, err := f.backend.CreateProduct(ctx, api.NewProduct{
		Title:         f.Draft.Title,
		Description:   f.Draft.Description,
		Price:         f.Draft.Price,
		DiscountPrice: f.Draft.DiscountPrice,
		CategoryID:    f.Draft.CategoryID,
		ImageName:     f.Draft.ImageName,
		Image:         bytes.NewReader(f.Draft.Image),
		UserID:        f.sess.UserID,
	})
	if f.closed {
		return 0, nil
	}
	if err != nil {
		f.Message = "upload failed"
		f.log.WithFields(logrus.Fields{
			"title": f.Draft.Title,
			"error": err.Error(),
		}).Warn("Product upload failed")
		return 0, err
	}
	if !env.OK() {
		if env.Message != "" {
			f.Message = env.Message
		} else {
			f.Message = "unknown error"
		}
		return 0, errors.New(f.Message)
	}
	f.Message = "product created"
	return f.Draft.CategoryID, nil
}

// Close detaches the view-model; late completions become no-ops.
func (f *CreateForm) Close() {
	f.closed = true
}
