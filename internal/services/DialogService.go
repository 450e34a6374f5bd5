package services

import (
	"dialogd/internal/fakedata"
	"dialogd/internal/models"
	"dialogd/internal/structures"
	"go.uber.org/atomic"
	"math/rand/v2"
)

type DialogServiceInterface interface {
	Generate(seed int64) *models.DialogData
	CurrentSeed() int64
	Rotate() int64
	GetGeneratedCount() int64
	GetRotationCount() int64
}

// DialogService hands out reproducible fake dialogs. The "current" dialog is
// the one generated from the current seed; Rotate moves it to a fresh seed.
type DialogService struct {
	currentSeed atomic.Int64
	generated   atomic.Int64
	rotations   atomic.Int64
	nextSeed    func() int64
}

func (ds *DialogService) Generate(seed int64) *models.DialogData {
	ds.generated.Inc()
	return fakedata.GenerateSeeded(seed)
}

func (ds *DialogService) CurrentSeed() int64 {
	return ds.currentSeed.Load()
}

func (ds *DialogService) Rotate() int64 {
	prev := ds.currentSeed.Load()
	seed := ds.nextSeed()
	for seed == prev {
		seed = ds.nextSeed()
	}
	ds.currentSeed.Store(seed)
	ds.rotations.Inc()
	return seed
}

func (ds *DialogService) GetGeneratedCount() int64 {
	return ds.generated.Load()
}

func (ds *DialogService) GetRotationCount() int64 {
	return ds.rotations.Load()
}

func NewDialogService(conf *structures.Config) DialogServiceInterface {
	ds := &DialogService{nextSeed: rand.Int64}
	if conf.Rotation.Seed != 0 {
		ds.currentSeed.Store(conf.Rotation.Seed)
	} else {
		ds.currentSeed.Store(ds.nextSeed())
	}
	return ds
}
