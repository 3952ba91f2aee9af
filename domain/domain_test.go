package domain

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TestSuite establishes a test suite for domain tests
type TestSuite struct {
	*require.Assertions
	suite.Suite
}

// Test_TestSuite runs the test suite
func Test_TestSuite(t *testing.T) {
	suite.Run(t, new(TestSuite))
}

// SetupTest sets the test suite to abort on first failure
func (ts *TestSuite) SetupTest() {
	ts.Assertions = require.New(ts.T())
}

func (ts *TestSuite) Test_IsOtherThanNoRows() {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "no rows error",
			err:  sql.ErrNoRows,
			want: false,
		},
		{
			name: "wrapped no rows error",
			err:  errors.New("query failed: " + sql.ErrNoRows.Error()),
			want: false,
		},
		{
			name: "other error",
			err:  errors.New("connection refused"),
			want: true,
		},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.want, IsOtherThanNoRows(tt.err))
		})
	}
}

func (ts *TestSuite) Test_GetFunctionName() {
	got := GetFunctionName(1)
	ts.Contains(got, "domain_test.go")
	ts.Contains(got, "Test_GetFunctionName")
}
