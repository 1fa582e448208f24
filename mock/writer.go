package mock

import (
	"context"

	"github.com/fwojciec/talmud"
)

var _ talmud.DataWriter = (*DataWriter)(nil)

// DataWriter is a mock implementation of talmud.DataWriter.
type DataWriter struct {
	WriteDataFn func(ctx context.Context, data *talmud.Data) error
}

func (w *DataWriter) WriteData(ctx context.Context, data *talmud.Data) error {
	return w.WriteDataFn(ctx, data)
}
