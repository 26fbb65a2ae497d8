//go:build unit || e2e

package testutil

import (
	"fmt"
	"testing"

	"commerce-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertErrorIs matches marks as well as wrapped causes, which assert.ErrorIs cannot see.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if errs.Is(err, target) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("expected %q to match %q", errString(err), errString(target)), msgAndArgs...)
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
