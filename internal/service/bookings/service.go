package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	addonRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/addon"
	bookingRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/booking"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings/models"
	"github.com/arnakr/AeroPark-Service/internal/service/notifications"
)

// Actor the authenticated caller of an operation
type Actor struct {
	UserID   int64
	Operator bool
}

// transitionEvents maps a committed target status to the customer email it
// produces. in_progress is internal service progress and sends nothing.
var transitionEvents = map[domain.BookingStatus]notifications.Event{
	domain.StatusConfirmed:  notifications.EventBookingConfirmed,
	domain.StatusCheckedIn:  notifications.EventCheckedIn,
	domain.StatusReady:      notifications.EventVehicleReady,
	domain.StatusCheckedOut: notifications.EventCheckedOut,
	domain.StatusCancelled:  notifications.EventCancelled,
	domain.StatusNoShow:     notifications.EventNoShow,
}

// Service is the booking lifecycle manager. Every status change in the
// system funnels through its transition method, which is the only place
// the lifecycle graph and the add-on checkout gate are enforced.
type Service struct {
	bookingRepo BookingRepository
	addonRepo   AddonRepository
	lotRepo     LotRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewService creates the booking lifecycle service
func NewService(
	bookingRepo BookingRepository,
	addonRepo AddonRepository,
	lotRepo LotRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		addonRepo:   addonRepo,
		lotRepo:     lotRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByReference fetches a booking with its addons. Customers may only see
// their own bookings; operators see everything.
func (s *Service) GetByReference(ctx context.Context, reference string, actor Actor) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, reference, "GetByReference")
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(booking, actor); err != nil {
		s.logger.Warn("GetByReference: access denied for user=%d to booking=%s", actor.UserID, reference)
		return nil, err
	}

	addons, err := s.addonRepo.GetByBookingID(ctx, booking.ID)
	if err != nil {
		s.logger.Error("GetByReference: failed to load addons for booking=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - load addons: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, addons), nil
}

// GetUserBookings lists a user's booking history, optionally filtered by status
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: user=%d status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetLotBookings lists a lot's bookings for the operator console
func (s *Service) GetLotBookings(ctx context.Context, req *models.GetLotBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetLotBookings: lot=%d status=%v includeInactive=%v", req.LotID, req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetLotBookings: invalid filter for lot=%d: %v", req.LotID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByLotWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetLotBookings: repository error for lot=%d: %v", req.LotID, err)
		return nil, fmt.Errorf("%w: GetLotBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Confirm moves a booking to confirmed after a successful payment.
// Idempotent: confirming an already confirmed booking is a no-op, so the
// payment provider may retry its webhook freely.
func (s *Service) Confirm(ctx context.Context, reference string) error {
	booking, err := s.getBooking(ctx, reference, "Confirm")
	if err != nil {
		return err
	}

	if booking.Status == domain.StatusConfirmed {
		s.logger.Info("Confirm: booking=%s already confirmed, ignoring", reference)
		return nil
	}

	return s.transition(ctx, reference, domain.StatusConfirmed, "")
}

// CheckIn marks the vehicle as dropped off at the lot (operator action)
func (s *Service) CheckIn(ctx context.Context, reference string) error {
	return s.transition(ctx, reference, domain.StatusCheckedIn, "")
}

// Advance moves a checked-in booking through the service pipeline
// (in_progress, ready) or marks it as a no-show (operator action)
func (s *Service) Advance(ctx context.Context, reference string, status string) error {
	target, err := models.ToDomainBookingStatus(status)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	switch target {
	case domain.StatusInProgress, domain.StatusReady, domain.StatusNoShow:
		return s.transition(ctx, reference, target, "")
	default:
		// Statuses with dedicated preconditions or side effects have
		// their own entry points and are not reachable through Advance
		return fmt.Errorf("%w: cannot advance to %q", ErrIllegalTransition, target)
	}
}

// CheckOut releases the vehicle to the customer (operator action).
// Rejected while any addon is still pending or in progress.
func (s *Service) CheckOut(ctx context.Context, reference string) error {
	return s.transition(ctx, reference, domain.StatusCheckedOut, "")
}

// Cancel cancels a booking. Customers may cancel their own bookings while
// pending or confirmed; operators may cancel any cancellable booking.
func (s *Service) Cancel(ctx context.Context, reference string, actor Actor, req *models.CancelBookingRequest) error {
	booking, err := s.getBooking(ctx, reference, "Cancel")
	if err != nil {
		return err
	}

	if err := s.checkAccess(booking, actor); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking=%s", actor.UserID, reference)
		return err
	}

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	return s.transition(ctx, reference, domain.StatusCancelled, req.Reason)
}

// UpdateAddonStatus sets the status of one addon on a booking (operator
// action). Rejected once the parent booking is terminal.
func (s *Service) UpdateAddonStatus(ctx context.Context, reference string, addonID int64, status string) error {
	target := domain.AddonStatus(status)
	if !domain.ValidAddonStatus(target) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	booking, err := s.getBooking(ctx, reference, "UpdateAddonStatus")
	if err != nil {
		return err
	}

	if booking.IsTerminal() {
		s.logger.Warn("UpdateAddonStatus: booking=%s is terminal (%s)", reference, booking.Status)
		return ErrTerminalBooking
	}

	if err := s.addonRepo.UpdateStatus(ctx, booking.ID, addonID, target); err != nil {
		if errors.Is(err, addonRepo.ErrAddonNotFound) {
			s.logger.Warn("UpdateAddonStatus: addon=%d not found on booking=%s", addonID, reference)
			return ErrAddonNotFound
		}
		s.logger.Error("UpdateAddonStatus: repository error for booking=%s addon=%d: %v", reference, addonID, err)
		return fmt.Errorf("%w: UpdateAddonStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAddonStatus: booking=%s addon=%d -> %s", reference, addonID, target)
	return nil
}

// transition is the single authoritative state-change path. It re-reads
// the booking inside a transaction (locking the row), validates the edge
// against the lifecycle graph, enforces the add-on checkout gate, and
// persists the change. The notification fires only after the commit and
// never rolls it back.
func (s *Service) transition(ctx context.Context, reference string, target domain.BookingStatus, cancelReason string) error {
	var updated *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, reference, "transition")
		if err != nil {
			return err
		}

		if !booking.CanTransitionTo(target) {
			s.logger.Warn("transition: booking=%s %s -> %s rejected", reference, booking.Status, target)
			if target == domain.StatusCancelled {
				return ErrCannotCancel
			}
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, target)
		}

		// The one cross-entity invariant: no check-out with open add-ons
		if target == domain.StatusCheckedOut {
			addons, err := s.addonRepo.GetByBookingID(txCtx, booking.ID)
			if err != nil {
				s.logger.Error("transition: failed to load addons for booking=%s: %v", reference, err)
				return fmt.Errorf("%w: transition - load addons: %v", ErrInternal, err)
			}
			if domain.AnyAddonOpen(addons) {
				s.logger.Warn("transition: booking=%s has open addons, check-out rejected", reference)
				return ErrAddonsIncomplete
			}
		}

		if target == domain.StatusCancelled {
			err = s.bookingRepo.Cancel(txCtx, booking.ID, cancelReason)
		} else {
			err = s.bookingRepo.UpdateStatus(txCtx, booking.ID, target)
		}
		if err != nil {
			s.logger.Error("transition: failed to persist booking=%s -> %s: %v", reference, target, err)
			return fmt.Errorf("%w: transition - persist status: %v", ErrInternal, err)
		}

		booking.Status = target
		updated = booking
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("transition: booking=%s -> %s", reference, target)
	s.notify(ctx, updated)

	return nil
}

// notify dispatches the email for a committed transition, best-effort
func (s *Service) notify(ctx context.Context, booking *domain.Booking) {
	event, ok := transitionEvents[booking.Status]
	if !ok {
		return
	}

	lotName := ""
	if lot, err := s.lotRepo.GetByID(ctx, booking.LotID); err == nil {
		lotName = lot.Name
	} else {
		s.logger.Warn("notify: failed to resolve lot=%d for booking=%s: %v", booking.LotID, booking.Reference, err)
	}

	s.notifier.Dispatch(ctx, event, booking, lotName)
}

func (s *Service) getBooking(ctx context.Context, reference, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking=%s not found", op, reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking=%s: %v", op, reference, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkAccess allows the booking owner and any operator.
// Guest bookings have no owner account, so only operators pass.
func (s *Service) checkAccess(booking *domain.Booking, actor Actor) error {
	if actor.Operator {
		return nil
	}
	if booking.UserID != nil && *booking.UserID == actor.UserID {
		return nil
	}
	return ErrAccessDenied
}
