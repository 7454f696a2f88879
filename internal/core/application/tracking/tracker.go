package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

var (
	ErrTrackerAlreadyStarted = errors.New("tracker is already started")
	ErrTrackerStopped        = errors.New("tracker is stopped")
)

const (
	msgProgressNotSaved = "Não foi possível salvar o andamento do pedido."
	msgHistoryNotSaved  = "Não foi possível salvar o pedido no histórico."
	msgRatingNotSaved   = "Não foi possível salvar sua avaliação."
	msgRatingThanks     = "Obrigado pela avaliação!"
)

// Dependencies are the collaborators shared by every tracker.
type Dependencies struct {
	Store       ports.OrderStore
	Notifier    ports.Notifier
	Sink        ports.ProgressSink
	Scheduler   ports.Scheduler
	Progression services.Progression
	Logger      *slog.Logger
}

func (d Dependencies) validate() error {
	var errList []error
	if d.Store == nil {
		errList = append(errList, errs.NewValueIsRequiredError("order store"))
	}
	if d.Notifier == nil {
		errList = append(errList, errs.NewValueIsRequiredError("notifier"))
	}
	if d.Sink == nil {
		errList = append(errList, errs.NewValueIsRequiredError("progress sink"))
	}
	if d.Scheduler == nil {
		errList = append(errList, errs.NewValueIsRequiredError("scheduler"))
	}
	if d.Logger == nil {
		errList = append(errList, errs.NewValueIsRequiredError("logger"))
	}
	errList = append(errList, d.Progression.Validate())
	return errors.Join(errList...)
}

// Tracker is the lifecycle state machine of a single order.
type Tracker struct {
	mu sync.Mutex

	store       ports.OrderStore
	notifier    ports.Notifier
	sink        ports.ProgressSink
	scheduler   ports.Scheduler
	progression services.Progression
	logger      *slog.Logger

	userKey string
	order   *order.Order
	ctx     context.Context
	cancels []ports.CancelFunc

	started      bool
	stopped      bool
	ratingPrompt bool
}

// NewTracker prepares a tracker for o. The tracker works on its own copy of
// the order; nothing is scheduled until Start.
func NewTracker(deps Dependencies, userKey string, o *order.Order) (*Tracker, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if userKey == "" {
		return nil, errs.NewValueIsRequiredError("user key")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Tracker{
		store:       deps.Store,
		notifier:    deps.Notifier,
		sink:        deps.Sink,
		scheduler:   deps.Scheduler,
		progression: deps.Progression,
		logger:      deps.Logger.With("component", "order_tracker", "order_number", o.Number()),
		userKey:     userKey,
		order:       o.Clone(),
		ctx:         context.Background(),
	}, nil
}

// Start schedules every transition after the order's current status. An order
// that is already delivered schedules nothing and only surfaces the rating
// prompt when it has no rating yet. ctx only carries values into the
// transitions; its cancellation does not stop the tracker, Stop does.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return ErrTrackerStopped
	}
	if t.started {
		return ErrTrackerAlreadyStarted
	}

	plan, err := t.progression.Plan(t.order.Status())
	if err != nil {
		return fmt.Errorf("plan progression: %w", err)
	}

	t.ctx = context.WithoutCancel(ctx)
	t.started = true

	if t.order.Status().IsTerminal() {
		t.ratingPrompt = t.order.CanBeRated()
		t.logger.InfoContext(t.ctx, "Order already delivered, nothing to schedule",
			"rating_prompt", t.ratingPrompt)
		return nil
	}

	for _, step := range plan {
		cancel, scheduleErr := t.scheduler.After(step.At, func() { t.advance(step) })
		if scheduleErr != nil {
			t.cancelAll()
			t.stopped = true
			return fmt.Errorf("schedule %s: %w", step.Status, scheduleErr)
		}
		t.cancels = append(t.cancels, cancel)
	}

	t.logger.InfoContext(t.ctx, "Order tracking started",
		"status", t.order.Status().String(),
		"transitions", len(plan))
	return nil
}

// Stop cancels every pending transition. It is safe to call more than once.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	t.stopped = true
	t.cancelAll()
	t.logger.InfoContext(t.ctx, "Order tracking stopped", "status", t.order.Status().String())
}

// Rate applies the customer's rating. It reports false, without error, when
// the order is not delivered yet or was already rated. Only an invalid rating
// value is an error.
func (t *Tracker) Rate(ctx context.Context, rating kernel.Rating) (bool, error) {
	if !rating.IsSet() {
		return false, errs.NewValueIsRequiredError("rating")
	}
	if err := rating.Validate(); err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.order.CanBeRated() {
		t.logger.DebugContext(ctx, "Rating ignored",
			"status", t.order.Status().String(),
			"rated", t.order.Rating().IsSet())
		return false, nil
	}
	if err := t.order.Rate(rating); err != nil {
		return false, err
	}
	t.ratingPrompt = false

	t.report(ctx, t.store.WriteCurrentOrder(ctx, t.userKey, t.order), "write rated order", msgRatingNotSaved)
	t.report(ctx, t.store.UpdateHistoryRating(ctx, t.userKey, t.order.Number(), rating),
		"update history rating", msgRatingNotSaved)
	t.notifier.Notify(ctx, t.userKey, msgRatingThanks, ports.NotificationSuccess)

	t.logger.InfoContext(ctx, "Order rated", "rating", rating.Int())
	return true, nil
}

// Snapshot returns a copy of the tracked order.
func (t *Tracker) Snapshot() *order.Order {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.order.Clone()
}

// ShowRatingPrompt reports whether the UI should ask for a rating.
func (t *Tracker) ShowRatingPrompt() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ratingPrompt
}

func (t *Tracker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Finished reports whether no transition can happen anymore.
func (t *Tracker) Finished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped || t.order.Status().IsTerminal()
}

func (t *Tracker) UserKey() string {
	return t.userKey
}

// OrderNumber never changes, so it is read without locking.
func (t *Tracker) OrderNumber() string {
	return t.order.Number()
}

func (t *Tracker) advance(step services.PlannedStep) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	if err := t.order.Advance(step.Status, step.ETA); err != nil {
		t.logger.WarnContext(t.ctx, "Transition skipped", "target", step.Status.String(), "error", err)
		return
	}

	t.logger.InfoContext(t.ctx, "Order advanced",
		"status", step.Status.String(),
		"estimated_delivery", step.ETA)

	t.report(t.ctx, t.store.WriteCurrentOrder(t.ctx, t.userKey, t.order), "write current order", msgProgressNotSaved)
	t.sink.OnProgress(t.ctx, t.userKey, t.order.Clone())

	if !step.Status.IsTerminal() {
		return
	}

	t.ratingPrompt = true
	t.report(t.ctx, t.store.AppendToHistory(t.ctx, t.userKey, t.order), "append to history", msgHistoryNotSaved)
	t.report(t.ctx, t.store.AppendToGlobalHistory(t.ctx, t.order), "append to global history", msgHistoryNotSaved)
	t.sink.OnTerminalReached(t.ctx, t.userKey, t.order.Clone())

	// every token has fired; release them so the scheduler can drop its entries
	t.cancelAll()
}

func (t *Tracker) cancelAll() {
	for _, cancel := range t.cancels {
		cancel()
	}
	t.cancels = nil
}

func (t *Tracker) report(ctx context.Context, err error, action, message string) {
	if err == nil {
		return
	}
	t.logger.WarnContext(ctx, "Order store write failed", "action", action, "error", err)
	t.notifier.Notify(ctx, t.userKey, message, ports.NotificationWarning)
}
