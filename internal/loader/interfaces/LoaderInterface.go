package interfaces

import "umc/internal/models"

type LoaderInterface interface {
	Load(path string) []models.Record
	Close()
}
