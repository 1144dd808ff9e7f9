package pkguid

import "github.com/google/uuid"

type StringID interface {
	Generate() string
}

type uuidGenerator struct{}

func NewUUID() StringID {
	return &uuidGenerator{}
}

func (u *uuidGenerator) Generate() string {
	return uuid.NewString()
}
