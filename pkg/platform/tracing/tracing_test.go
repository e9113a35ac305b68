package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "benefitd/pkg/domain-errors"
)

func TestStartEndWithNoopProvider(t *testing.T) {
	ctx, span := Start(context.Background(), "subsidy", "Calculate")
	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() {
		End(span, dErrors.New(dErrors.CodeForbidden, "caller is not the admin"))
	})

	_, span = Start(context.Background(), "usage", "RecordUsage")
	assert.NotPanics(t, func() { End(span, errors.New("boom")) })

	_, span = Start(context.Background(), "recipient", "Register")
	assert.NotPanics(t, func() { End(span, nil) })
}
