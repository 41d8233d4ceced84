package services

import (
	"errors"
	"testing"
	"time"

	"serenity-spa-backend/models"
)

func TestCreateBooking_Accept(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "accept@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	booking, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("expected pending status, got %q", booking.Status)
	}
	if booking.TotalPrice != service.Price {
		t.Fatalf("expected price snapshot %v, got %v", service.Price, booking.TotalPrice)
	}
}

func TestCreateBooking_PriceSnapshotSurvivesPriceChange(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "snapshot@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	booking, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := db.Model(service).Update("price", 999).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	var reloaded models.Booking
	if err := db.First(&reloaded, "id = ?", booking.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.TotalPrice != 80 {
		t.Fatalf("expected snapshot 80 after price change, got %v", reloaded.TotalPrice)
	}
}

func TestCreateBooking_InPast(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "past@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	_, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  time.Now().AddDate(0, 0, -1),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if !errors.Is(err, ErrBookingInPast) {
		t.Fatalf("expected %q, got %v", ErrBookingInPast, err)
	}
}

func TestCreateBooking_DayUnavailable(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "sunday@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	// No Sunday window exists
	_, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Sunday),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if !errors.Is(err, ErrDayUnavailable) {
		t.Fatalf("expected %q, got %v", ErrDayUnavailable, err)
	}
}

func TestCreateBooking_DisabledWindowIsUnavailable(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "disabled@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	err := db.Model(&models.Availability{}).
		Where("service_id = ?", service.ID).
		Update("is_available", false).Error
	if err != nil {
		t.Fatalf("disable window: %v", err)
	}

	_, err = svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if !errors.Is(err, ErrDayUnavailable) {
		t.Fatalf("expected %q, got %v", ErrDayUnavailable, err)
	}
}

func TestCreateBooking_OutsideHours(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "hours@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	_, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "08:00",
		ContactPhone: "+12025551234",
	})
	if !errors.Is(err, ErrOutsideHours) {
		t.Fatalf("expected %q for 08:00, got %v", ErrOutsideHours, err)
	}
}

func TestCreateBooking_InclusiveClosingBound(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "bound@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	// 17:00 matches the window's end time exactly and is accepted
	_, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "17:00",
		ContactPhone: "+12025551234",
	})
	if err != nil {
		t.Fatalf("expected accept at closing bound, got %v", err)
	}
}

func TestCreateBooking_CapacityAndCancelFreesSlot(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	carol := seedUser(t, db, "carol@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	monday := nextDate(time.Monday)

	first, err := svc.Create(alice.ID, service, CreateBookingInput{
		BookingDate:  monday,
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err = svc.Create(bob.ID, service, CreateBookingInput{
		BookingDate:  monday,
		BookingTime:  "10:00",
		ContactPhone: "+12025555678",
	})
	if !errors.Is(err, ErrNoCapacity) {
		t.Fatalf("expected %q for full slot, got %v", ErrNoCapacity, err)
	}

	if err := svc.Cancel(first, "change of plans"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err = svc.Create(carol.ID, service, CreateBookingInput{
		BookingDate:  monday,
		BookingTime:  "10:00",
		ContactPhone: "+12025559999",
	})
	if err != nil {
		t.Fatalf("expected accept after cancellation freed the slot, got %v", err)
	}
}

func TestCreateBooking_TerminalStatusesDoNotOccupySlot(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "terminal@example.com")
	other := seedUser(t, db, "other@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	monday := nextDate(time.Monday)

	for _, status := range []string{
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	} {
		booking := &models.Booking{
			UserID:       other.ID,
			ServiceID:    service.ID,
			BookingDate:  monday,
			BookingTime:  "11:00",
			Status:       status,
			ContactPhone: "+12025551234",
			TotalPrice:   service.Price,
		}
		if err := db.Create(booking).Error; err != nil {
			t.Fatalf("seed %s booking: %v", status, err)
		}
	}

	_, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  monday,
		BookingTime:  "11:00",
		ContactPhone: "+12025555678",
	})
	if err != nil {
		t.Fatalf("terminal bookings should not block the slot, got %v", err)
	}
}

func TestCreateBooking_CapacityTwo(t *testing.T) {
	db := openTestDB(t)
	service := seedService(t, db, 60, 2)
	svc := NewBookingService(db, nil)

	monday := nextDate(time.Monday)

	for i, email := range []string{"one@example.com", "two@example.com"} {
		user := seedUser(t, db, email)
		_, err := svc.Create(user.ID, service, CreateBookingInput{
			BookingDate:  monday,
			BookingTime:  "12:00",
			ContactPhone: "+12025551234",
		})
		if err != nil {
			t.Fatalf("booking %d: %v", i+1, err)
		}
	}

	third := seedUser(t, db, "three@example.com")
	_, err := svc.Create(third.ID, service, CreateBookingInput{
		BookingDate:  monday,
		BookingTime:  "12:00",
		ContactPhone: "+12025551234",
	})
	if !errors.Is(err, ErrNoCapacity) {
		t.Fatalf("expected %q for third booking, got %v", ErrNoCapacity, err)
	}
}

func TestCreateBooking_InvalidTime(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "badtime@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	_, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "9am",
		ContactPhone: "+12025551234",
	})
	if !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("expected %q, got %v", ErrInvalidTime, err)
	}
}

func TestCancel_CompletedFails(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "cancelcompleted@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	booking := &models.Booking{
		UserID:       user.ID,
		ServiceID:    service.ID,
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		Status:       models.BookingStatusCompleted,
		ContactPhone: "+12025551234",
		TotalPrice:   service.Price,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	err := svc.Cancel(booking, "too late")
	if !errors.Is(err, ErrNotCancellable) {
		t.Fatalf("expected %q, got %v", ErrNotCancellable, err)
	}

	var reloaded models.Booking
	if err := db.First(&reloaded, "id = ?", booking.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.BookingStatusCompleted {
		t.Fatalf("state changed on failed cancel: %q", reloaded.Status)
	}
	if reloaded.CancelledAt != nil {
		t.Fatal("cancelled_at set on failed cancel")
	}
}

func TestCancel_PastBookingFails(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "cancelpast@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	booking := &models.Booking{
		UserID:       user.ID,
		ServiceID:    service.ID,
		BookingDate:  time.Now().AddDate(0, 0, -7),
		BookingTime:  "10:00",
		Status:       models.BookingStatusConfirmed,
		ContactPhone: "+12025551234",
		TotalPrice:   service.Price,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	if err := svc.Cancel(booking, "oops"); !errors.Is(err, ErrNotCancellable) {
		t.Fatalf("expected %q, got %v", ErrNotCancellable, err)
	}
}

func TestCancel_SetsReasonAndTimestamp(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "cancelok@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	booking, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Cancel(booking, "schedule conflict"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	var reloaded models.Booking
	if err := db.First(&reloaded, "id = ?", booking.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.BookingStatusCancelled {
		t.Fatalf("expected cancelled, got %q", reloaded.Status)
	}
	if reloaded.CancelledAt == nil {
		t.Fatal("cancelled_at not set")
	}
	if reloaded.CancellationReason != "schedule conflict" {
		t.Fatalf("expected reason recorded, got %q", reloaded.CancellationReason)
	}
}

func TestTransition_Lifecycle(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "lifecycle@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	booking, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Transition(booking, models.BookingStatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending -> completed should be rejected, got %v", err)
	}
	if err := svc.Transition(booking, models.BookingStatusConfirmed); err != nil {
		t.Fatalf("pending -> confirmed: %v", err)
	}
	if err := svc.Transition(booking, models.BookingStatusCompleted); err != nil {
		t.Fatalf("confirmed -> completed: %v", err)
	}

	// completed is terminal
	for _, status := range []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	} {
		if err := svc.Transition(booking, status); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("completed -> %s should be rejected, got %v", status, err)
		}
	}
}

func TestTransition_NoShowFromConfirmed(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "noshow@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	booking, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Transition(booking, models.BookingStatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := svc.Transition(booking, models.BookingStatusNoShow); err != nil {
		t.Fatalf("confirmed -> no_show: %v", err)
	}
	if err := svc.Transition(booking, models.BookingStatusConfirmed); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("no_show is terminal, got %v", err)
	}
}

func TestMarkPaid(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "paid@example.com")
	service := seedService(t, db, 60, 1)
	svc := NewBookingService(db, nil)

	booking, err := svc.Create(user.ID, service, CreateBookingInput{
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		ContactPhone: "+12025551234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.MarkPaid(booking); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if !booking.Paid || booking.PaymentDate == nil {
		t.Fatal("paid flag or payment date missing")
	}

	firstPayment := *booking.PaymentDate
	if err := svc.MarkPaid(booking); err != nil {
		t.Fatalf("second mark paid: %v", err)
	}
	if !booking.PaymentDate.Equal(firstPayment) {
		t.Fatal("payment date changed on repeated mark paid")
	}
}
