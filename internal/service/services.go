package service

import (
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
)

type Services struct {
	JournalService JournalService
	PeopleService  PeopleService
	ProfileService ProfileService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		JournalService: NewJournalService(storages.Entries, logger),
		PeopleService:  NewPeopleService(storages.People, storages.Entries, logger),
		ProfileService: NewProfileService(storages.Slots, logger),
	}
}
