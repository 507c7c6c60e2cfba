package safe

import (
	"io"
	"log/slog"

	"github.com/secmon-lab/runboard/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Write writes data to w and logs error if any. It is for responses that
// have nothing to do on a failed write.
func Write(w io.Writer, data []byte) {
	if _, err := w.Write(data); err != nil {
		logging.Default().Warn("Fail to write data", slog.Any("error", err))
	}
}
