package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihq/rai-go/pkg/constants"
	"github.com/raihq/rai-go/pkg/errors"
)

func validationBody() *errors.ErrorBody {
	return &errors.ErrorBody{
		Error: &errors.ResponseError{
			Name: "ValidationError",
			Errors: []errors.Violation{
				{Property: "brandDetails", Constraints: []string{"brandDetails must be an object"}},
				{Property: "factoryDetails", Constraints: []string{"factoryDetails must be an object"}},
			},
		},
	}
}

func TestClassifyValidation(t *testing.T) {
	err := errors.Classify(400, validationBody())

	var ve *errors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 400, ve.StatusCode())
	assert.Equal(t, constants.ErrCodeValidation, ve.Code())
	assert.NotNil(t, ve.OriginalError())
	assert.False(t, ve.Timestamp().IsZero())

	// No top-level message: joined from the flattened constraints.
	assert.Equal(t, "brandDetails must be an object; factoryDetails must be an object", ve.Error())
}

func TestClassifyValidationPrefersServerMessage(t *testing.T) {
	body := validationBody()
	body.Error.Message = "invalid item"

	err := errors.Classify(400, body)
	assert.EqualError(t, err, "invalid item")
}

func TestValidationFlattenDepthFirst(t *testing.T) {
	body := &errors.ErrorBody{
		Error: &errors.ResponseError{
			Errors: []errors.Violation{
				{
					Property:    "brandDetails",
					Constraints: []string{"brandDetails is required"},
					Children: []errors.Violation{
						{Property: "name", Constraints: []string{"name must be a string"}},
					},
				},
				{Property: "factoryDetails", Constraints: []string{"factoryDetails is required"}},
			},
		},
	}

	err := errors.Classify(400, body)
	var ve *errors.ValidationError
	require.ErrorAs(t, err, &ve)

	assert.Equal(t, []string{
		"brandDetails is required",
		"name must be a string",
		"factoryDetails is required",
	}, ve.Flatten())
}

func TestValidationForPropertyMatchesAnyDepth(t *testing.T) {
	body := &errors.ErrorBody{
		Error: &errors.ResponseError{
			Errors: []errors.Violation{
				{
					Property:    "brandDetails",
					Constraints: []string{"brandDetails is required"},
					Children: []errors.Violation{
						{Property: "name", Constraints: []string{"name must be a string"}},
					},
				},
				{
					Property: "factoryDetails",
					Children: []errors.Violation{
						{Property: "name", Constraints: []string{"name must not be empty"}},
					},
				},
			},
		},
	}

	err := errors.Classify(400, body)
	var ve *errors.ValidationError
	require.ErrorAs(t, err, &ve)

	brand := ve.ForProperty("brandDetails")
	require.Len(t, brand, 1)
	assert.Equal(t, []string{"brandDetails is required"}, brand[0].Constraints)

	// "name" appears under two different parents; both match.
	names := ve.ForProperty("name")
	require.Len(t, names, 2)
	assert.Equal(t, []string{"name must be a string"}, names[0].Constraints)
	assert.Equal(t, []string{"name must not be empty"}, names[1].Constraints)
}

func TestClassifyAuthentication(t *testing.T) {
	for _, status := range []int{401, 403} {
		err := errors.Classify(status, &errors.ErrorBody{})
		assert.True(t, errors.IsAuthenticationError(err), "status %d", status)
		assert.EqualError(t, err, "Authentication failed")

		re, ok := errors.AsRaiError(err)
		require.True(t, ok)
		assert.Equal(t, status, re.StatusCode())
	}
}

func TestClassifyServerErrorAsNetwork(t *testing.T) {
	err := errors.Classify(503, &errors.ErrorBody{})
	assert.True(t, errors.IsNetworkError(err))
	assert.EqualError(t, err, "Server error occurred")
}

func TestClassifyFallbackAPIError(t *testing.T) {
	err := errors.Classify(404, &errors.ErrorBody{})
	assert.True(t, errors.IsAPIError(err))
	assert.EqualError(t, err, "API request failed with status 404")
}

func TestClassifyValidationWinsOverStatus(t *testing.T) {
	// Validation match is checked before the status rules.
	err := errors.Classify(403, validationBody())
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, errors.IsAuthenticationError(err))
}

func TestClassifyUsesServerMessage(t *testing.T) {
	body := &errors.ErrorBody{Error: &errors.ResponseError{Message: "key expired"}}
	err := errors.Classify(401, body)
	assert.EqualError(t, err, "key expired")
}

func TestNewNetworkFault(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := errors.NewNetworkFault(cause)

	assert.True(t, errors.IsNetworkError(err))
	assert.Equal(t, constants.StatusNone, err.StatusCode())
	assert.EqualError(t, err, "Network request failed - check your internet connection and API endpoint")
	assert.Equal(t, cause.Error(), err.Context()["cause"])
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, err.OriginalError())
}

func TestNewSDKError(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := errors.NewSDKError("request construction failed", cause)

	assert.True(t, errors.IsSDKError(err))
	assert.Equal(t, constants.StatusNone, err.StatusCode())
	assert.ErrorIs(t, err, cause)
}

func TestPredicatesThroughWrapping(t *testing.T) {
	classified := errors.Classify(401, &errors.ErrorBody{})
	wrapped := fmt.Errorf("fetch inventory: %w", classified)

	assert.True(t, errors.IsRaiError(wrapped))
	assert.True(t, errors.IsAuthenticationError(wrapped))
	assert.False(t, errors.IsValidationError(wrapped))

	re, ok := errors.AsRaiError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 401, re.StatusCode())
}

func TestWithContext(t *testing.T) {
	err := errors.Classify(500, &errors.ErrorBody{}).WithContext("request_id", "r-1")
	assert.Equal(t, "r-1", err.Context()["request_id"])
}
