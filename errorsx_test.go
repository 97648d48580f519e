/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errorsx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/errorsx"
	"dirpx.dev/errorsx/apis"
	"dirpx.dev/errorsx/details"
)

func TestError_Message_Verbatim(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "plain", message: "x"},
		{name: "empty", message: ""},
		{name: "multiline", message: "line one\nline two"},
		{name: "unicode", message: "café != kafe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := errorsx.New(tt.message).Build()
			assert.Equal(t, tt.message, e.Message())
			assert.Equal(t, tt.message, e.Error())
		})
	}
}

func TestError_ErrorIncludesCause(t *testing.T) {
	inner := errors.New("disk full")
	e := errorsx.New("failed to process file").WithSource(inner).Build()

	assert.Equal(t, "failed to process file: disk full", e.Error())
	// Message stays verbatim regardless of the cause.
	assert.Equal(t, "failed to process file", e.Message())
}

func TestError_UnsetOptionalFieldsReportAbsent(t *testing.T) {
	e := errorsx.New("bare").Build()

	for name, get := range map[string]func() (string, bool){
		"status":     e.Status,
		"reason":     e.Reason,
		"debug":      e.Debug,
		"request_id": e.RequestID,
		"id":         e.ID,
	} {
		v, ok := get()
		assert.False(t, ok, "%s must report absent", name)
		assert.Empty(t, v, "%s must be empty when absent", name)
	}

	assert.Nil(t, e.Details())
	assert.Nil(t, e.Unwrap())
	assert.Nil(t, e.Cause())
}

func TestError_SetEmptyStringIsNotAbsent(t *testing.T) {
	e := errorsx.New("m").WithReason("").Build()

	v, ok := e.Reason()
	require.True(t, ok, "explicitly set empty reason must report present")
	assert.Equal(t, "", v)
}

func TestError_StatusCodeDefault(t *testing.T) {
	e := errorsx.New("m").Build()
	assert.Equal(t, 500, e.StatusCode())
	assert.Equal(t, apis.DefaultStatusCode, e.StatusCode())
}

func TestError_StatusCodeOverride(t *testing.T) {
	e := errorsx.New("m").WithStatusCode(404).Build()
	assert.Equal(t, 404, e.StatusCode())
}

func TestError_ContextNeverNil(t *testing.T) {
	e := errorsx.New("m").Build()
	require.NotNil(t, e.Context())
	assert.Empty(t, e.Context())
}

func TestError_AccessorsAreIdempotent(t *testing.T) {
	inner := errors.New("root")
	e := errorsx.New("m").
		WithContext("a").
		WithContext("b").
		WithSource(inner).
		WithStatusCode(429).
		WithReason("throttle.burst").
		WithDetail("attempt", 3).
		Build()

	assert.Equal(t, e.Message(), e.Message())
	assert.Equal(t, e.Error(), e.Error())
	assert.Equal(t, e.Context(), e.Context())
	assert.Equal(t, e.Location(), e.Location())
	assert.Equal(t, e.Trace(), e.Trace())
	assert.Equal(t, e.StatusCode(), e.StatusCode())
	assert.Same(t, e.Unwrap(), e.Unwrap())

	r1, ok1 := e.Reason()
	r2, ok2 := e.Reason()
	assert.Equal(t, r1, r2)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, e.Details(), e.Details())
}

func TestError_ReadCopiesAreUnshared(t *testing.T) {
	e := errorsx.New("m").
		WithContext("a").
		WithDetail("k", "v").
		Build()

	ctx := e.Context()
	ctx[0] = "mutated"
	assert.Equal(t, []string{"a"}, e.Context(), "context copy must not be shared")

	d := e.Details()
	d["k"] = "mutated"
	got, ok := details.Get[string](e.Details(), "k")
	require.True(t, ok)
	assert.Equal(t, "v", got, "details copy must not be shared")
}

func TestError_LocationAlwaysPopulated(t *testing.T) {
	e := errorsx.New("m").Build()

	loc := e.Location()
	assert.NotEmpty(t, loc.File)
	assert.Greater(t, loc.Line, 0)
	assert.Contains(t, loc.File, "errorsx_test.go")
}

func TestError_TraceAlwaysPopulated(t *testing.T) {
	e := errorsx.New("m").Build()
	assert.NotEmpty(t, e.Trace())
}

func TestError_ImplementsCapabilityTraits(t *testing.T) {
	var err error = errorsx.New("m").Build()

	_, ok := err.(apis.StatusCodedError)
	assert.True(t, ok)
	_, ok = err.(apis.StatusedError)
	assert.True(t, ok)
	_, ok = err.(apis.ReasonedError)
	assert.True(t, ok)
	_, ok = err.(apis.DebuggedError)
	assert.True(t, ok)
	_, ok = err.(apis.RequestIDError)
	assert.True(t, ok)
	_, ok = err.(apis.IdentifiedError)
	assert.True(t, ok)
	_, ok = err.(apis.DetailedError)
	assert.True(t, ok)
	_, ok = err.(apis.CausedError)
	assert.True(t, ok)
}

func TestError_ErrorsIsThroughChain(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := errorsx.New("outer").WithSource(sentinel).Build()

	assert.True(t, errors.Is(e, sentinel))
}
