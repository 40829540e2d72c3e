package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fixture struct {
	Name  string    `validate:"required"`
	Kind  string    `validate:"omitempty,oneof=A B"`
	RefID uuid.UUID `validate:"uuid_required"`
	Items []item    `validate:"dive"`
}

type item struct {
	Quantity float64 `validate:"required"`
}

func TestValidateStructValid(t *testing.T) {
	fields := ValidateStruct(&fixture{Name: "x", RefID: uuid.New()})
	assert.Empty(t, fields)
}

func TestValidateStructFieldNames(t *testing.T) {
	fields := ValidateStruct(&fixture{
		Kind:  "C",
		Items: []item{{Quantity: 0}},
	})

	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "is required", fields["RefID"])
	assert.Equal(t, "must be one of: A B", fields["Kind"])
	// Struct name prefix is stripped, nested paths survive.
	assert.Equal(t, "is required", fields["Items[0].Quantity"])
}
