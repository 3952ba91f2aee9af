package models

import (
	"errors"
	"testing"

	"github.com/gobuffalo/pop/v6"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
)

// ModelSuite doesn't contain a buffalo suite.Model and can be used for tests that don't need access to the database
// or don't need the buffalo test runner to refresh the database
type ModelSuite struct {
	suite.Suite
	*require.Assertions
	DB *pop.Connection
}

func (ms *ModelSuite) SetupTest() {
	ms.Assertions = require.New(ms.T())
	DestroyAll()
}

// Test_ModelSuite runs the test suite
func Test_ModelSuite(t *testing.T) {
	ms := &ModelSuite{}
	c, err := pop.Connect(domain.Env.GoEnv)
	if err == nil {
		ms.DB = c
	}
	suite.Run(t, ms)
}

// EqualAppError verifies that the actual error contains an AppError and that a subset of the fields match
func (ms *ModelSuite) EqualAppError(expected api.AppError, actual error) {
	var appErr *api.AppError
	ms.True(errors.As(actual, &appErr), "error does not contain an api.AppError")
	ms.Equal(expected.Key, appErr.Key, "error key does not match")
	ms.Equal(expected.Category, appErr.Category, "error category does not match")
}

func (ms *ModelSuite) Test_Tx() {
	ctx := CreateTestContext(ms.DB)
	ms.Equal(ms.DB, Tx(ctx))

	empty := &TestBuffaloContext{params: map[any]any{}}
	ms.Equal(DB, Tx(empty))
}
