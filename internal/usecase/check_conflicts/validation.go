package check_conflicts

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.BoatID <= 0 {
		return fmt.Errorf("%w: boatID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Segments) == 0 {
		return fmt.Errorf("%w: at least 1 segment is required", ErrInvalidInput)
	}

	for i, seg := range req.Segments {
		if err := seg.DepartureTime.Validate(); err != nil {
			return fmt.Errorf("%w: segment %d: invalid departure time: %v", ErrInvalidInput, i+1, err)
		}
		if err := seg.ArrivalTime.Validate(); err != nil {
			return fmt.Errorf("%w: segment %d: invalid arrival time: %v", ErrInvalidInput, i+1, err)
		}
		if !seg.DepartureTime.IsBefore(seg.ArrivalTime) {
			return fmt.Errorf("%w: segment %d: departure time %s must be before arrival time %s",
				ErrInvalidInput, i+1, seg.DepartureTime, seg.ArrivalTime)
		}
	}

	return nil
}
