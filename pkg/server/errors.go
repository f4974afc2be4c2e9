// Copyright (c) 2025, The Tempmon Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	tmerrors "github.com/tempmon/tempmond/pkg/errors"
	"github.com/tempmon/tempmond/pkg/serializer"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status.
// Unknown codes map to 500.
func HTTPStatusFromCode(code tmerrors.ErrorCode) int {
	switch code {
	case tmerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case tmerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case tmerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case tmerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case tmerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case tmerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case tmerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may retry the request for
// the given code.
func retryableFromCode(code tmerrors.ErrorCode) bool {
	switch code {
	case tmerrors.ErrCodeTimeout,
		tmerrors.ErrCodeUnavailable,
		tmerrors.ErrCodeRateLimitExceeded,
		tmerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, values in b winning on key
// collisions. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code tmerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err. Structured
// errors carry their own code, message, and context; anything else is
// reported as an internal error with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var structured *tmerrors.StructuredError
	if errors.As(err, &structured) {
		merged := mergeDetails(structured.Context, details)
		if structured.Cause != nil {
			if merged == nil {
				merged = make(map[string]any, 1)
			}
			merged["error"] = structured.Cause.Error()
		}

		WriteError(w, r, HTTPStatusFromCode(structured.Code), structured.Code,
			structured.Message, retryableFromCode(structured.Code), merged)
		return
	}

	merged := mergeDetails(details, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, tmerrors.ErrCodeInternal,
		fallbackMessage, retryableFromCode(tmerrors.ErrCodeInternal), merged)
}
