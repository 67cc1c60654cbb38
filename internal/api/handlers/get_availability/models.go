package get_availability

import (
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	getAvailability "github.com/m04kA/NutriCare-BookingEngine/internal/usecase/get_availability"
)

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(providerID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ProviderID: providerID,
		Date:       date,
	}, nil
}
