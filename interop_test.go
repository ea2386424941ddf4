package anyvalue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/toejough/anyvalue"
	"github.com/toejough/anyvalue/constraint"
)

// userService is a testify mock standing in for a system under test.
type userService struct {
	mock.Mock
}

func (s *userService) CreateUser(userID int, username, email string, age int) {
	s.Called(userID, username, email, age)
}

func (s *userService) Process(data string, timestamp time.Time, metadata map[string]string) {
	s.Called(data, timestamp, metadata)
}

// TestTestifyMockIntegration verifies AnyValue is substitutable for exact
// expected arguments in testify's mock framework via mock.MatchedBy.
func TestTestifyMockIntegration(t *testing.T) {
	t.Parallel()

	svc := &userService{}
	svc.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	svc.CreateUser(12345, "john_doe", "john@example.com", 25)

	svc.AssertCalled(t, "CreateUser",
		mock.MatchedBy(anyvalue.Of[int](constraint.Ge(1)).Matches),
		mock.MatchedBy(anyvalue.Of[string](constraint.Len(1, 50)).Matches),
		mock.MatchedBy(anyvalue.Of[string]().Matches),
		mock.MatchedBy(anyvalue.Of[int](constraint.Ge(0), constraint.Le(150)).Matches),
	)
}

// TestTestifyOptionalArgument verifies a nullable declaration matches a nil
// argument through the mock framework.
func TestTestifyOptionalArgument(t *testing.T) {
	t.Parallel()

	svc := &userService{}
	svc.On("Process", mock.Anything, mock.Anything, mock.Anything).Return()

	svc.Process("test", time.Now(), nil)

	optionalMetadata := anyvalue.New(anyvalue.Union(anyvalue.Type[map[string]string](), anyvalue.Null))

	svc.AssertCalled(t, "Process",
		mock.MatchedBy(anyvalue.Of[string]().Matches),
		mock.MatchedBy(anyvalue.Of[time.Time]().Matches),
		mock.MatchedBy(optionalMetadata.Matches),
	)
}

// TestTestifyCustomPredicate verifies a user-supplied predicate flows
// through the mock framework, matching the is-valid-email scenario.
func TestTestifyCustomPredicate(t *testing.T) {
	t.Parallel()

	isValidEmail := func(s string) bool {
		hasAt := false
		hasDot := false

		for _, r := range s {
			switch r {
			case '@':
				hasAt = true
			case '.':
				hasDot = true
			}
		}

		return hasAt && hasDot
	}

	svc := &userService{}
	svc.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	svc.CreateUser(1, "u", "user@example.com", 30)

	svc.AssertCalled(t, "CreateUser",
		mock.MatchedBy(anyvalue.Of[int]().Matches),
		mock.MatchedBy(anyvalue.Of[string]().Matches),
		mock.MatchedBy(anyvalue.Of[string](isValidEmail).Matches),
		mock.MatchedBy(anyvalue.Of[int]().Matches),
	)

	svc.AssertNotCalled(t, "CreateUser",
		mock.MatchedBy(anyvalue.Of[int]().Matches),
		mock.MatchedBy(anyvalue.Of[string]().Matches),
		mock.MatchedBy(anyvalue.Of[string](constraint.Len(0, 5)).Matches),
		mock.MatchedBy(anyvalue.Of[int]().Matches),
	)
}

// TestMatchValueWithTestifyAssertions verifies the explicit equality helper
// plays well alongside testify's own assertions.
func TestMatchValueWithTestifyAssertions(t *testing.T) {
	t.Parallel()

	av := anyvalue.Of[int](constraint.Ge(0))

	ok, msg := anyvalue.MatchValue(42, av)
	require.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = anyvalue.MatchValue(-1, av)
	require.False(t, ok)
	assert.Contains(t, msg, "Ge(ge=0)")
	assert.Contains(t, msg, "-1")
}
