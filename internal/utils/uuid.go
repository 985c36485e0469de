package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace identifiers.
// Time-ordered v7 UUIDs are preferred so that trace ids sort by arrival.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
