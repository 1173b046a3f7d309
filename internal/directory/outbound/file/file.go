package file

import (
	"bytes"
	"context"

	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/storage"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// File keeps staff pictures in object storage.
type File struct {
	store storage.Storage
	ins   instrument.Instrumentation
}

func NewFile(store storage.Storage, ins instrument.Instrumentation) *File {
	return &File{store: store, ins: ins}
}

func (f *File) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return f.ins.Tracer("directory.outbound.file").Start(ctx, name)
}

func (f *File) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (f *File) PutImage(ctx context.Context, key string, data []byte, contentType string) (err error) {
	ctx, span := f.startSpan(ctx, "PutImage")
	defer func() { f.endSpan(span, err) }()

	return f.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
}

func (f *File) DeleteImage(ctx context.Context, key string) (err error) {
	ctx, span := f.startSpan(ctx, "DeleteImage")
	defer func() { f.endSpan(span, err) }()

	return f.store.Delete(ctx, key)
}
