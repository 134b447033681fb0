package create_appointment

import "errors"

var (
	// ErrSelfBooking возвращается при попытке мастера записаться к самому себе
	ErrSelfBooking = errors.New("create_appointment: client and professional are the same identity")

	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrProfessionalInactive возвращается, когда мастер деактивирован
	ErrProfessionalInactive = errors.New("create_appointment: professional is not active")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDayNotWorking возвращается, когда мастер не работает в выбранный день
	ErrDayNotWorking = errors.New("create_appointment: professional does not work on this day")

	// ErrTimeInPast возвращается, когда выбранное время уже прошло
	ErrTimeInPast = errors.New("create_appointment: start time is in the past")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочие часы
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrLunchConflict возвращается, когда слот пересекается с обеденным перерывом
	ErrLunchConflict = errors.New("create_appointment: slot overlaps lunch break")

	// ErrSlotTaken возвращается, когда слот пересекается с существующей записью
	ErrSlotTaken = errors.New("create_appointment: slot overlaps an existing appointment")

	// ErrInvalidDuration возвращается при недопустимой длительности услуги
	ErrInvalidDuration = errors.New("create_appointment: invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
