package codec

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zoobzio/confidential/audit"
)

// Option configures a Pipeline.
type Option func(*options)

type options struct {
	audit bool
}

// WithAudit makes pipeline construction fail when T has fields tagged
// `sensitive:"true"` that are not held in a confidential wrapper. Use it
// to catch bare secrets at startup instead of at the first leak.
func WithAudit() Option {
	return func(o *options) {
		o.audit = true
	}
}

// Pipeline binds a Codec to one concrete type T.
//
// Pipelines are safe for concurrent use: all state is set at construction.
// The type is inspected once (see Audit) and every Encode/Decode emits
// start/complete events.
type Pipeline[T any] struct {
	codec    Codec
	typeName string
	report   audit.Report
}

// NewPipeline creates a Pipeline for type T. T must be a struct type.
func NewPipeline[T any](c Codec, opts ...Option) (*Pipeline[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	report, err := audit.Inspect[T]()
	if err != nil {
		return nil, err
	}

	if o.audit && !report.Clean() {
		names := make([]string, len(report.Bare))
		for i, f := range report.Bare {
			names[i] = f.Name
		}
		return nil, fmt.Errorf("%w: type %s: %s", ErrBareSensitive, report.TypeName, strings.Join(names, ", "))
	}

	p := &Pipeline[T]{
		codec:    c,
		typeName: report.TypeName,
		report:   report,
	}

	emitPipelineCreated(context.Background(), c.ContentType(), report.TypeName)
	return p, nil
}

// Audit returns the inspection report computed at construction.
func (p *Pipeline[T]) Audit() audit.Report {
	return p.report
}

// ContentType returns the MIME type of the underlying codec.
func (p *Pipeline[T]) ContentType() string {
	return p.codec.ContentType()
}

// Encode marshals obj through the underlying codec. Confidential fields
// encode as their inner values would - the readable-format leak vector
// documented on the core package.
func (p *Pipeline[T]) Encode(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), retErr)
	}()

	if obj == nil {
		retData, retErr = p.codec.Marshal(nil)
		if retErr != nil {
			retErr = newCodecError(ErrMarshal, retErr)
			return nil, retErr
		}
		return retData, nil
	}

	retData, retErr = p.codec.Marshal(obj)
	if retErr != nil {
		retErr = newCodecError(ErrMarshal, retErr)
		return nil, retErr
	}
	return retData, nil
}

// Decode unmarshals data through the underlying codec. Failures inside a
// confidential field arrive already contained as the wrapper's
// DecodeError; the pipeline wraps whatever it gets with ErrUnmarshal.
func (p *Pipeline[T]) Decode(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitDecodeStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, p.codec.ContentType(), p.typeName,
			len(data), time.Since(start), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	return &obj, nil
}
