// Package movements orchestrates the movement lifecycle: creation, start
// and end evidence uploads, and list refreshes.
package movements

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"logistica/internal/alert"
	"logistica/internal/api"
	custom_error "logistica/pkg/errors"
	"logistica/pkg/metadata"
	"logistica/pkg/models"

	"go.uber.org/zap"
)

const (
	createFileName   = "file.jpg"
	evidenceFileName = "image.jpg"

	createKey         = "create"
	movementKeyPrefix = "movement:"
)

type API interface {
	ListMovements(ctx context.Context) ([]models.Movement, *api.Response, error)
	CreateMovement(ctx context.Context, req models.CreateMovementRequest) (models.ID, *api.Response, error)
	StartMovement(ctx context.Context, id models.ID, file api.FormFile, fields []api.Field) (*api.Response, error)
	EndMovement(ctx context.Context, id models.ID, file api.FormFile, fields []api.Field) (*api.Response, error)
}

// Image is an evidence photo captured or picked by the user.
type Image struct {
	URI  string
	Data []byte
}

type CreateResult struct {
	ID      models.ID
	Started bool
	// StartErr is set when the movement was created but could not be started.
	StartErr error
}

type transitionMessages struct {
	success string
	failure string
}

var (
	startFromCreate = transitionMessages{
		success: "Movimentação iniciada com sucesso!",
		failure: "Falha ao iniciar a movimentação. Tente novamente.",
	}
	startMessages = transitionMessages{
		success: "Entrega iniciada com sucesso!",
		failure: "Não foi possível iniciar a entrega.",
	}
	endMessages = transitionMessages{
		success: "Entrega finalizada com sucesso!",
		failure: "Não foi possível finalizar a entrega.",
	}
)

type Flow struct {
	api       API
	alerts    *alert.Gateway
	log       *zap.Logger
	guard     *Guard
	onRefresh func([]models.Movement)
}

func NewFlow(a API, alerts *alert.Gateway, log *zap.Logger) *Flow {
	return &Flow{
		api:    a,
		alerts: alerts,
		log:    log,
		guard:  NewGuard(),
	}
}

// OnRefresh registers the listener receiving every re-fetched list.
func (f *Flow) OnRefresh(fn func([]models.Movement)) {
	f.onRefresh = fn
}

// Validate checks a form without touching the network.
func (f *Flow) Validate(form Form) (models.CreateMovementRequest, error) {
	return Validate(form)
}

// List re-fetches every movement. There is no cache.
func (f *Flow) List(ctx context.Context) ([]models.Movement, error) {
	movements, _, err := f.api.ListMovements(ctx)
	if err != nil {
		f.log.Error("Unable to fetch movements", zap.Error(err))
		f.alerts.NotifyError("Erro ao buscar movimentações")
		return nil, err
	}

	if f.onRefresh != nil {
		f.onRefresh(movements)
	}
	return movements, nil
}

// Create validates the form and registers the movement. When an image is
// given, the movement is started right away; a failed start does not undo
// the creation.
func (f *Flow) Create(ctx context.Context, form Form, image *Image) (CreateResult, error) {
	release, ok := f.guard.TryAcquire(createKey)
	if !ok {
		return CreateResult{}, ErrInFlight
	}
	defer release()

	req, err := f.Validate(form)
	if err != nil {
		f.notifyValidation(err)
		return CreateResult{}, err
	}

	id, _, err := f.api.CreateMovement(ctx, req)
	if err != nil {
		f.log.Error("Unable to create movement", zap.Error(err))
		f.alerts.NotifyError("Não foi possível criar a movimentação. Verifique os dados e tente novamente.")
		return CreateResult{}, fmt.Errorf("create movement: %w", err)
	}

	f.alerts.NotifySuccess("Movimentação criada com sucesso!")
	result := CreateResult{ID: id}

	if image == nil {
		return result, nil
	}

	fields := []api.Field{{Name: "motorista", Value: req.Motorista}}
	if err := f.submit(ctx, id, metadata.TransitionStart, image, createFileName, fields, startFromCreate); err != nil {
		result.StartErr = err
		return result, nil
	}

	result.Started = true
	return result, nil
}

// Start uploads the start evidence of a created movement.
func (f *Flow) Start(ctx context.Context, m models.Movement, image *Image) error {
	return f.transition(ctx, m, metadata.TransitionStart, image, startMessages)
}

// End uploads the delivery evidence of a movement in transit.
func (f *Flow) End(ctx context.Context, m models.Movement, image *Image) error {
	return f.transition(ctx, m, metadata.TransitionEnd, image, endMessages)
}

func (f *Flow) transition(ctx context.Context, m models.Movement, t metadata.Transition, image *Image, msgs transitionMessages) error {
	release, ok := f.guard.TryAcquire(movementKeyPrefix + m.ID.String())
	if !ok {
		return ErrInFlight
	}
	defer release()

	if _, err := m.Status.Apply(t); err != nil {
		f.log.Warn("Rejected movement transition",
			zap.String("movement_id", m.ID.String()),
			zap.String("status", m.Status.String()),
			zap.String("transition", string(t)),
		)
		f.alerts.NotifyError(msgs.failure)
		return err
	}

	if image == nil {
		err := custom_error.NewValidationError("image", msgMissingImage)
		f.notifyValidation(err)
		return err
	}

	var fields []api.Field
	if m.Motorista != "" {
		fields = append(fields, api.Field{Name: "motorista", Value: m.Motorista})
	}

	return f.submit(ctx, m.ID, t, image, evidenceFileName, fields, msgs)
}

func (f *Flow) submit(ctx context.Context, id models.ID, t metadata.Transition, image *Image, fileName string, fields []api.Field, msgs transitionMessages) error {
	file := api.FormFile{
		Field:       api.DefaultFileField,
		FileName:    fileName,
		ContentType: api.ImageJPEG,
		Content:     bytes.NewReader(image.Data),
	}

	var err error
	switch t {
	case metadata.TransitionStart:
		_, err = f.api.StartMovement(ctx, id, file, fields)
	case metadata.TransitionEnd:
		_, err = f.api.EndMovement(ctx, id, file, fields)
	default:
		err = fmt.Errorf("%w: %s", metadata.ErrInvalidTransition, t)
	}

	if err != nil {
		f.log.Error("Unable to submit movement evidence",
			zap.String("movement_id", id.String()),
			zap.String("transition", string(t)),
			zap.Error(err),
		)
		f.alerts.NotifyError(msgs.failure)
		return err
	}

	f.alerts.NotifySuccess(msgs.success)
	_, _ = f.List(ctx)
	return nil
}

func (f *Flow) notifyValidation(err error) {
	var validationErr *custom_error.ValidationError
	if errors.As(err, &validationErr) {
		f.alerts.NotifyError(validationErr.Message)
		return
	}
	f.alerts.NotifyError(err.Error())
}
