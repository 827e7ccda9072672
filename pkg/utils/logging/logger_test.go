package logging_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/batchtoken/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Run("valid combinations", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
		gt.NoError(t, logging.Configure("json", "debug", "stderr"))
		gt.NoError(t, logging.Configure("text", "warn", "-"))
	})

	t.Run("invalid log level", func(t *testing.T) {
		gt.Error(t, logging.Configure("text", "verbose", "stdout"))
	})

	t.Run("invalid log format", func(t *testing.T) {
		gt.Error(t, logging.Configure("xml", "info", "stdout"))
	})

	t.Cleanup(func() {
		_ = logging.Configure("text", "info", "stdout")
	})
}
