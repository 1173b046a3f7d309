package file

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/storage"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// File keeps student resumes in object storage.
type File struct {
	store storage.Storage
	ins   instrument.Instrumentation
}

func NewFile(store storage.Storage, ins instrument.Instrumentation) *File {
	return &File{store: store, ins: ins}
}

func (f *File) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return f.ins.Tracer("academic.outbound.file").Start(ctx, name)
}

func (f *File) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (f *File) PutResume(ctx context.Context, key string, data []byte, contentType string) (err error) {
	ctx, span := f.startSpan(ctx, "PutResume")
	defer func() { f.endSpan(span, err) }()

	return f.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
}

// OpenResume returns goerror.ErrNotFound when the object is gone.
func (f *File) OpenResume(ctx context.Context, key string) (_ io.ReadCloser, _ storage.Object, err error) {
	ctx, span := f.startSpan(ctx, "OpenResume")
	defer func() { f.endSpan(span, err) }()

	rc, obj, err := f.store.Get(ctx, key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, storage.Object{}, goerror.ErrNotFound
	}

	return rc, obj, err
}

func (f *File) DeleteResume(ctx context.Context, key string) (err error) {
	ctx, span := f.startSpan(ctx, "DeleteResume")
	defer func() { f.endSpan(span, err) }()

	return f.store.Delete(ctx, key)
}
