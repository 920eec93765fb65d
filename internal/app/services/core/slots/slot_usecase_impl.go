package slots

import (
	"context"
	"fmt"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/exceptions"
	"medipass-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

type slotUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewSlotUsecase(
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			DoctorRepository:      doctorRepository,
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
			now:                   time.Now,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) GetAvailableSlots(ctx context.Context, request *requests.GetAvailableSlots) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("slotUsecase.GetAvailableSlots error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	response := &responses.AvailableSlots{
		DoctorID: request.DoctorID,
		Date:     request.Date,
		Slots:    []string{},
	}

	// An unknown doctor simply has no slots to offer.
	if doctor == nil {
		return response, nil
	}

	requestedDate, err := time.Parse(constvars.DateLayoutISO, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	if !worksOnDay(doctor.WorkDays, requestedDate.Weekday()) {
		return response, nil
	}

	generated, err := generateSlots(doctor.StartTime, doctor.EndTime, doctor.SlotDurationMinutes)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorAndDate(ctx, request.DoctorID, request.Date)
	if err != nil {
		uc.Log.Error("slotUsecase.GetAvailableSlots error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	booked := make(map[string]bool, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == constvars.AppointmentStatusPending ||
			appointment.Status == constvars.AppointmentStatusApproved {
			booked[utils.NormalizeTimeHHMM(appointment.SlotTime)] = true
		}
	}

	currentTime := uc.now()
	sameDay := utils.IsSameDate(requestedDate, currentTime)
	currentMinutes := currentTime.Hour()*60 + currentTime.Minute()

	for _, slot := range generated {
		if booked[slot] {
			continue
		}
		if sameDay {
			slotMinutes, err := utils.MinutesOfDay(slot)
			if err != nil || slotMinutes <= currentMinutes {
				continue
			}
		}
		response.Slots = append(response.Slots, slot)
	}

	uc.Log.Info("slotUsecase.GetAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(response.Slots)),
	)
	return response, nil
}

func worksOnDay(workDays []string, weekday time.Weekday) bool {
	for _, day := range workDays {
		if strings.EqualFold(day, weekday.String()) {
			return true
		}
	}
	return false
}

func generateSlots(startTime, endTime string, durationMinutes int) ([]string, error) {
	// A non-positive duration would never advance the cursor below.
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", durationMinutes)
	}
	start, err := time.Parse(constvars.TimeLayoutHHMM, utils.NormalizeTimeHHMM(startTime))
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(constvars.TimeLayoutHHMM, utils.NormalizeTimeHHMM(endTime))
	if err != nil {
		return nil, err
	}

	slots := []string{}
	step := time.Duration(durationMinutes) * time.Minute
	for current := start; current.Before(end); current = current.Add(step) {
		slots = append(slots, current.Format(constvars.TimeLayoutHHMM))
	}
	return slots, nil
}
