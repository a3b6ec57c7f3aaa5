package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"itinera/internal/repositories"
	"itinera/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo,
	providePlaceEmbeddingRepo,
	services.NewRetrievalService,
	services.NewPlaceImportService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceEmbeddingRepo(db *gorm.DB) repositories.PlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}
