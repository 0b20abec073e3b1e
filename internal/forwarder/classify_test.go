// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forwarder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-webhook-relay/models"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func urlError(err error) error {
	return &url.Error{Op: "Post", URL: "http://router.internal/ingest", Err: err}
}

func TestClassify(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
	dialTimeout := &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}}

	tests := []struct {
		name string
		err  error
		want models.FailureKind
	}{
		{name: "nil", err: nil, want: models.FailureNone},
		{name: "deadline exceeded", err: urlError(context.DeadlineExceeded), want: models.FailureTimeout},
		{name: "net timeout", err: urlError(timeoutError{}), want: models.FailureTimeout},
		{name: "dial timeout wins over op error", err: urlError(dialTimeout), want: models.FailureTimeout},
		{name: "connection refused", err: urlError(refused), want: models.FailureConnection},
		{name: "dns failure", err: urlError(&net.DNSError{Err: "no such host", Name: "router.internal"}), want: models.FailureConnection},
		{name: "connection reset", err: urlError(syscall.ECONNRESET), want: models.FailureConnection},
		{name: "peer closed", err: urlError(io.EOF), want: models.FailureConnection},
		{name: "unsupported scheme", err: urlError(errors.New(`unsupported protocol scheme "gopher"`)), want: models.FailureUnexpected},
		{name: "cancelled", err: urlError(context.Canceled), want: models.FailureUnexpected},
		{name: "wrapped timeout sentinel", err: fmt.Errorf("%w: x", ErrUpstreamTimeout), want: models.FailureTimeout},
		{name: "wrapped unavailable sentinel", err: fmt.Errorf("%w: %w", ErrUpstreamUnavailable, refused), want: models.FailureUnavailable},
		{name: "wrapped unexpected sentinel", err: fmt.Errorf("%w: x", ErrUnexpected), want: models.FailureUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
