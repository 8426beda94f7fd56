package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Code     string `json:"code" validate:"required,max=8"`
	Quantity int    `json:"quantity" validate:"gte=1"`
	Ignored  string `json:"-"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Code: "SALE10", Quantity: 1}))

	err := v.Validate(&sampleRequest{Code: "TOO-LONG-CODE", Quantity: 0})
	require.Error(t, err)

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "max=8", fields["code"])
	assert.Equal(t, "gte=1", fields["quantity"])
}
